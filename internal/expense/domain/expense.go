package domain

import "time"

// Category is the fixed set of expense categories.
type Category string

const (
	CategoryFood          Category = "food"
	CategoryTransport     Category = "transport"
	CategoryShopping      Category = "shopping"
	CategoryBills         Category = "bills"
	CategoryEntertainment Category = "entertainment"
	CategoryHealth        Category = "health"
	CategoryOther         Category = "other"
)

// Categories lists every valid category, in display order.
var Categories = []Category{
	CategoryFood,
	CategoryTransport,
	CategoryShopping,
	CategoryBills,
	CategoryEntertainment,
	CategoryHealth,
	CategoryOther,
}

// Valid reports whether c is one of the enumerated categories.
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Expense is a single spending record owned by exactly one user.
type Expense struct {
	ID          string    `json:"id" gorm:"primaryKey"`
	UserID      string    `json:"user_id" gorm:"index;not null"`
	Amount      float64   `json:"amount" gorm:"not null"`
	Category    Category  `json:"category" gorm:"not null"`
	Description string    `json:"description,omitempty"`
	Date        Date      `json:"date" gorm:"type:date;not null"`
	ReceiptURL  string    `json:"receipt_url,omitempty"`
	ReceiptID   string    `json:"-"` // External asset id of the receipt image
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Statistics aggregates a user's expenses on demand.
type Statistics struct {
	Total      TotalStat      `json:"total"`
	ByCategory []CategoryStat `json:"byCategory"`
}

type TotalStat struct {
	Count  int64   `json:"count"`
	Amount float64 `json:"amount"`
}

// CategoryStat is one row of the per-category breakdown, ordered by total
// spending descending.
type CategoryStat struct {
	Category Category `json:"category"`
	Count    int64    `json:"count"`
	Total    float64  `json:"total"`
}
