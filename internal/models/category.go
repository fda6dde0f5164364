package models

// Display categories assigned to parsed or manual expenses
const (
	CategoryFood          = "Food"
	CategoryGroceries     = "Groceries"
	CategoryTransport     = "Transport"
	CategoryShopping      = "Shopping"
	CategoryEntertainment = "Entertainment"
	CategoryBills         = "Bills"
	CategoryHealth        = "Health"
	CategoryTravel        = "Travel"
	CategoryTransfers     = "Transfers"
	CategoryOther         = "Other"
)

// AllCategories returns all known category names
func AllCategories() []string {
	return []string{
		CategoryFood,
		CategoryGroceries,
		CategoryTransport,
		CategoryShopping,
		CategoryEntertainment,
		CategoryBills,
		CategoryHealth,
		CategoryTravel,
		CategoryTransfers,
		CategoryOther,
	}
}

// IsKnownCategory checks if a category string is one of AllCategories
func IsKnownCategory(category string) bool {
	for _, c := range AllCategories() {
		if category == c {
			return true
		}
	}
	return false
}
