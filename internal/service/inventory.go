package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"shelfrent-backend/internal/domain"
	"shelfrent-backend/internal/errorlog"
	"shelfrent-backend/internal/logger"
	"shelfrent-backend/internal/repository"
	"shelfrent-backend/internal/utils"
)

const (
	statusCustomersRetrieved = "Customers retrieved from DB."
	statusCustomerAdded      = "Customer added."
	statusShelvesRetrieved   = "Shelves retrieved from DB."
	statusShelfRented        = "Shelf rented."
	statusStatementsReady    = "Statements calculated."
)

// InventoryOptions tunes failure handling of the inventory service
type InventoryOptions struct {
	// Fallback is served by reads when the store fails. A zero value selects domain.DefaultFallback.
	Fallback domain.Fallback
	// DisableFallback makes failed reads return an empty list instead of placeholder data.
	DisableFallback bool
	// QueryTimeout bounds every store round trip; zero leaves the caller's context untouched.
	QueryTimeout time.Duration
	// ErrorLog receives every store failure; nil discards them.
	ErrorLog errorlog.Recorder
	// Pinger backs Ping; nil makes Ping report the store as unavailable.
	Pinger repository.Pinger
}

type inventoryService struct {
	customerRepo repository.CustomerRepository
	shelfRepo    repository.ShelfRepository
	saleRepo     repository.SaleRepository
	pinger       repository.Pinger
	errLog       errorlog.Recorder
	fallback     domain.Fallback
	useFallback  bool
	timeout      time.Duration

	mu           sync.RWMutex
	latestStatus string
}

func NewInventoryService(customerRepo repository.CustomerRepository, shelfRepo repository.ShelfRepository, saleRepo repository.SaleRepository, opts InventoryOptions) InventoryService {
	fb := opts.Fallback
	if fb.Customers == nil && fb.Shelves == nil {
		fb = domain.DefaultFallback()
	}
	errLog := opts.ErrorLog
	if errLog == nil {
		errLog = errorlog.Discard{}
	}
	return &inventoryService{
		customerRepo: customerRepo,
		shelfRepo:    shelfRepo,
		saleRepo:     saleRepo,
		pinger:       opts.Pinger,
		errLog:       errLog,
		fallback:     fb,
		useFallback:  !opts.DisableFallback,
		timeout:      opts.QueryTimeout,
	}
}

func (s *inventoryService) ListCustomers(ctx context.Context) Result[[]domain.Customer] {
	logger.EnterMethod("InventoryService.ListCustomers")
	defer logger.ExitMethod("InventoryService.ListCustomers")

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	customers, err := s.customerRepo.List(ctx)
	logger.StoreResult("ListCustomers", int64(len(customers)), err)
	if err != nil {
		res := Result[[]domain.Customer]{
			Value:   []domain.Customer{},
			Outcome: Classify(err),
			Status:  offlineStatus(err),
			Err:     err,
		}
		if s.useFallback {
			res.Value = s.fallback.CustomersCopy()
			res.Fallback = true
			logger.WarnContext(ctx, "Serving placeholder customers", "count", len(res.Value))
		}
		return finish(s, res)
	}

	return finish(s, Result[[]domain.Customer]{Value: customers, Outcome: OutcomeOK, Status: statusCustomersRetrieved})
}

// AddCustomer inserts the customer as given; empty fields are accepted.
func (s *inventoryService) AddCustomer(ctx context.Context, name, email, phone string) Result[domain.Customer] {
	logger.EnterMethod("InventoryService.AddCustomer", "name", name)
	defer logger.ExitMethod("InventoryService.AddCustomer")

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	customer := domain.Customer{Name: name, Email: email, Phone: phone}
	if err := s.customerRepo.Create(ctx, &customer); err != nil {
		logger.StoreResult("AddCustomer", 0, err)
		return finish(s, Result[domain.Customer]{
			Value:   customer,
			Outcome: Classify(err),
			Status:  fmt.Sprintf("Error while adding customer – offline (%s)", err.Error()),
			Err:     err,
		})
	}
	logger.StoreResult("AddCustomer", 1, nil, "customer_id", customer.ID)

	return finish(s, Result[domain.Customer]{Value: customer, Outcome: OutcomeOK, Status: statusCustomerAdded})
}

func (s *inventoryService) ListShelves(ctx context.Context) Result[[]domain.Shelf] {
	logger.EnterMethod("InventoryService.ListShelves")
	defer logger.ExitMethod("InventoryService.ListShelves")

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	shelves, err := s.shelfRepo.List(ctx)
	logger.StoreResult("ListShelves", int64(len(shelves)), err)
	if err != nil {
		res := Result[[]domain.Shelf]{
			Value:   []domain.Shelf{},
			Outcome: Classify(err),
			Status:  offlineStatus(err),
			Err:     err,
		}
		if s.useFallback {
			res.Value = s.fallback.ShelvesCopy()
			res.Fallback = true
			logger.WarnContext(ctx, "Serving placeholder shelves", "count", len(res.Value))
		}
		return finish(s, res)
	}

	return finish(s, Result[[]domain.Shelf]{Value: shelves, Outcome: OutcomeOK, Status: statusShelvesRetrieved})
}

// RentShelf attaches customerID to the shelf whatever its prior state. An unknown
// shelf id is not an error; the result value reports zero rows affected.
func (s *inventoryService) RentShelf(ctx context.Context, shelfID, customerID int) Result[int64] {
	logger.EnterMethod("InventoryService.RentShelf", "shelf_id", shelfID, "customer_id", customerID)
	defer logger.ExitMethod("InventoryService.RentShelf")

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	affected, err := s.shelfRepo.Rent(ctx, shelfID, customerID)
	logger.StoreResult("RentShelf", affected, err, "shelf_id", shelfID)
	if err != nil {
		return finish(s, Result[int64]{
			Outcome: Classify(err),
			Status:  fmt.Sprintf("Error while renting shelf – offline (%s)", err.Error()),
			Err:     err,
		})
	}

	return finish(s, Result[int64]{Value: affected, Outcome: OutcomeOK, Status: statusShelfRented})
}

// RegisterSale persists the sale and reports the commission in the status text.
// Neither the shelf id nor the sign of amount is checked.
func (s *inventoryService) RegisterSale(ctx context.Context, shelfID int, amount float64) Result[domain.SaleReceipt] {
	logger.EnterMethod("InventoryService.RegisterSale", "shelf_id", shelfID, "amount", amount)
	defer logger.ExitMethod("InventoryService.RegisterSale")

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	sale := domain.Sale{ShelfID: shelfID, Amount: amount}
	if err := s.saleRepo.Create(ctx, &sale); err != nil {
		logger.StoreResult("RegisterSale", 0, err, "shelf_id", shelfID)
		return finish(s, Result[domain.SaleReceipt]{
			Value:   domain.SaleReceipt{Sale: sale},
			Outcome: Classify(err),
			Status:  fmt.Sprintf("Error while registering sale – offline (%s)", err.Error()),
			Err:     err,
		})
	}
	logger.StoreResult("RegisterSale", 1, nil, "sale_id", sale.ID)

	commission := utils.Commission(amount)
	return finish(s, Result[domain.SaleReceipt]{
		Value:   domain.SaleReceipt{Sale: sale, Commission: commission},
		Outcome: OutcomeOK,
		Status:  fmt.Sprintf("Sale registered. Commission: %s kr.", utils.FormatAmount(commission)),
	})
}

func (s *inventoryService) LatestStatus() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.latestStatus
}

func (s *inventoryService) Ping(ctx context.Context) error {
	if s.pinger == nil {
		return errors.New("store not configured")
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.pinger.PingContext(ctx)
}

func (s *inventoryService) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, s.timeout)
}

// record appends a failure to the error log; a broken log never fails the operation.
func (s *inventoryService) record(err error) {
	if logErr := s.errLog.Record(err); logErr != nil {
		logger.Error("Failed to append error log", "error", logErr, "cause", err)
	}
}

func (s *inventoryService) setStatus(status string) {
	s.mu.Lock()
	s.latestStatus = status
	s.mu.Unlock()
}

// finish records failures and publishes the status before handing the result back.
func finish[T any](s *inventoryService, res Result[T]) Result[T] {
	if res.Err != nil {
		s.record(res.Err)
	}
	s.setStatus(res.Status)
	return res
}

func offlineStatus(err error) string {
	return fmt.Sprintf("Offline – %s", err.Error())
}
