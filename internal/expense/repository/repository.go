package repository

import expensedomain "expense-tracker-api/internal/expense/domain"

// ExpenseRepository defines the interface for expense data access. Every
// id-scoped operation also matches on the owning user id, so a record owned
// by someone else behaves exactly like a missing one: (nil, nil).
type ExpenseRepository interface {
	// Create inserts a new expense
	Create(expense *expensedomain.Expense) error

	// FindByUserID returns one page of a user's expenses ordered by date
	// descending, then creation time descending, plus the total count
	FindByUserID(userID string, limit, offset int) ([]*expensedomain.Expense, int64, error)

	// FindByID finds an expense scoped to its owner
	FindByID(id, userID string) (*expensedomain.Expense, error)

	// Update applies the given column updates under ownership scoping and
	// returns the updated row
	Update(id, userID string, updates map[string]interface{}) (*expensedomain.Expense, error)

	// Delete removes an expense under ownership scoping and returns the
	// removed row
	Delete(id, userID string) (*expensedomain.Expense, error)

	// GetStatistics aggregates a user's expenses; zero-valued for users with
	// no expenses
	GetStatistics(userID string) (*expensedomain.Statistics, error)
}
