package usecase

import (
	"context"
	"errors"

	expensedomain "expense-tracker-api/internal/expense/domain"
	expensedto "expense-tracker-api/internal/expense/dto"
)

var (
	// ErrNotFound covers both a missing expense and one owned by another
	// user; callers must not be able to tell the two apart.
	ErrNotFound = errors.New("expense not found")
	ErrNoFields = errors.New("no fields to update")
)

// CreateExpenseInput is a pre-validated expense creation request.
// ReceiptPath, when set, is a local temp file pending upload.
type CreateExpenseInput struct {
	Amount      float64
	Category    expensedomain.Category
	Description string
	Date        expensedomain.Date
	ReceiptPath string
}

// UpdateExpenseInput carries only the fields to mutate; nil means "leave
// unchanged".
type UpdateExpenseInput struct {
	Amount      *float64
	Category    *expensedomain.Category
	Description *string
	Date        *expensedomain.Date
	ReceiptPath string
}

// ExpenseUsecase defines the interface for expense business logic. Every
// operation is scoped to the calling user.
type ExpenseUsecase interface {
	Create(ctx context.Context, userID string, in CreateExpenseInput) (*expensedomain.Expense, error)
	List(userID string, page, limit int) (*expensedto.ExpenseList, error)
	GetByID(userID, expenseID string) (*expensedomain.Expense, error)
	Update(ctx context.Context, userID, expenseID string, in UpdateExpenseInput) (*expensedomain.Expense, error)
	Delete(ctx context.Context, userID, expenseID string) (*expensedomain.Expense, error)
	GetStatistics(userID string) (*expensedomain.Statistics, error)
}
