package utils

import "strconv"

const (
	// CommissionRate is the shop's flat cut of every registered sale.
	CommissionRate = 0.10

	singleShelfPrice = 850
	smallBulkPrice   = 825
	largeBulkPrice   = 800
)

// PricePerMonth returns the monthly price per shelf for a customer renting shelfCount shelves.
// 1 shelf costs 850, 2-3 shelves cost 825 each and 4 or more cost 800 each.
// Counts below one return 0 rather than the 2-3 shelf price, so an empty
// rental never produces a charge.
func PricePerMonth(shelfCount int) float64 {
	switch {
	case shelfCount < 1:
		return 0
	case shelfCount == 1:
		return singleShelfPrice
	case shelfCount <= 3:
		return smallBulkPrice
	default:
		return largeBulkPrice
	}
}

// MonthlyRent returns the total monthly rent for shelfCount shelves.
func MonthlyRent(shelfCount int) float64 {
	return float64(shelfCount) * PricePerMonth(shelfCount)
}

// Commission returns the commission on a sale. The amount is not rounded;
// display precision is left to the caller.
func Commission(saleAmount float64) float64 {
	return saleAmount * CommissionRate
}

// FormatAmount renders an amount in its shortest decimal form, e.g. 50 or 199.999.
func FormatAmount(amount float64) string {
	return strconv.FormatFloat(amount, 'f', -1, 64)
}
