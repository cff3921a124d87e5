package service

import (
	"context"
	"sort"

	"shelfrent-backend/internal/domain"
	"shelfrent-backend/internal/logger"
	"shelfrent-backend/internal/utils"
)

// Statements computes the monthly rent owed by every customer holding at least one shelf.
// It reuses ListShelves and ListCustomers, so offline placeholder data flows through and
// the result is flagged as fallback.
func (s *inventoryService) Statements(ctx context.Context) Result[[]domain.RentStatement] {
	logger.EnterMethod("InventoryService.Statements")
	defer logger.ExitMethod("InventoryService.Statements")

	shelves := s.ListShelves(ctx)
	customers := s.ListCustomers(ctx)

	res := Result[[]domain.RentStatement]{
		Value:    BuildStatements(shelves.Value, customers.Value),
		Outcome:  OutcomeOK,
		Fallback: shelves.Fallback || customers.Fallback,
		Status:   statusStatementsReady,
	}
	switch {
	case !shelves.OK():
		res.Outcome, res.Status, res.Err = shelves.Outcome, shelves.Status, shelves.Err
	case !customers.OK():
		res.Outcome, res.Status, res.Err = customers.Outcome, customers.Status, customers.Err
	}

	// Failures were already logged by the list calls
	s.setStatus(res.Status)
	return res
}

// BuildStatements groups rented shelves by customer and prices them with the volume tier.
// Statements are ordered by customer id; shelves without a customer id are skipped.
func BuildStatements(shelves []domain.Shelf, customers []domain.Customer) []domain.RentStatement {
	byID := make(map[int]domain.Customer, len(customers))
	for _, c := range customers {
		byID[c.ID] = c
	}

	grouped := map[int]*domain.RentStatement{}
	for _, sh := range shelves {
		if !sh.IsRented || sh.CustomerID == nil {
			continue
		}
		id := *sh.CustomerID
		st, ok := grouped[id]
		if !ok {
			st = &domain.RentStatement{CustomerID: id, ShelfNumbers: []int{}}
			if c, known := byID[id]; known {
				st.CustomerName = c.Name
				st.CustomerEmail = c.Email
			}
			grouped[id] = st
		}
		st.ShelfNumbers = append(st.ShelfNumbers, sh.Number)
	}

	out := make([]domain.RentStatement, 0, len(grouped))
	for _, st := range grouped {
		st.ShelfCount = len(st.ShelfNumbers)
		st.PricePerShelf = utils.PricePerMonth(st.ShelfCount)
		st.MonthlyTotal = utils.MonthlyRent(st.ShelfCount)
		out = append(out, *st)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CustomerID < out[j].CustomerID })
	return out
}
