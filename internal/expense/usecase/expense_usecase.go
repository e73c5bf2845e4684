package usecase

import (
	"context"
	"log"

	expensedomain "expense-tracker-api/internal/expense/domain"
	expensedto "expense-tracker-api/internal/expense/dto"
	"expense-tracker-api/internal/expense/repository"
	"expense-tracker-api/pkg/imagestore"
)

const (
	receiptFolder = "expense-tracker/receipts"
	defaultLimit  = 50
)

// expenseUsecase implements ExpenseUsecase interface
type expenseUsecase struct {
	expenseRepo repository.ExpenseRepository
	images      imagestore.Store
}

// NewExpenseUsecase creates a new instance of expenseUsecase
func NewExpenseUsecase(expenseRepo repository.ExpenseRepository, images imagestore.Store) ExpenseUsecase {
	return &expenseUsecase{
		expenseRepo: expenseRepo,
		images:      images,
	}
}

func (u *expenseUsecase) Create(ctx context.Context, userID string, in CreateExpenseInput) (*expensedomain.Expense, error) {
	expense := &expensedomain.Expense{
		UserID:      userID,
		Amount:      in.Amount,
		Category:    in.Category,
		Description: in.Description,
		Date:        in.Date,
	}

	// The upload happens outside any store transaction; a failed row write
	// afterwards leaves an orphaned asset that is logged, not rolled back.
	if in.ReceiptPath != "" {
		asset, err := u.images.Upload(ctx, in.ReceiptPath, receiptFolder)
		if err != nil {
			return nil, err
		}
		expense.ReceiptURL = asset.URL
		expense.ReceiptID = asset.PublicID
	}

	if err := u.expenseRepo.Create(expense); err != nil {
		if expense.ReceiptID != "" {
			log.Printf("orphaned receipt asset %s after failed insert: %v", expense.ReceiptID, err)
		}
		return nil, err
	}
	return expense, nil
}

func (u *expenseUsecase) List(userID string, page, limit int) (*expensedto.ExpenseList, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultLimit
	}
	offset := (page - 1) * limit

	expenses, total, err := u.expenseRepo.FindByUserID(userID, limit, offset)
	if err != nil {
		return nil, err
	}
	if expenses == nil {
		expenses = []*expensedomain.Expense{}
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))

	return &expensedto.ExpenseList{
		Expenses: expenses,
		Pagination: expensedto.Pagination{
			CurrentPage: page,
			TotalPages:  totalPages,
			TotalCount:  total,
			Limit:       limit,
		},
	}, nil
}

func (u *expenseUsecase) GetByID(userID, expenseID string) (*expensedomain.Expense, error) {
	expense, err := u.expenseRepo.FindByID(expenseID, userID)
	if err != nil {
		return nil, err
	}
	if expense == nil {
		return nil, ErrNotFound
	}
	return expense, nil
}

func (u *expenseUsecase) Update(ctx context.Context, userID, expenseID string, in UpdateExpenseInput) (*expensedomain.Expense, error) {
	existing, err := u.expenseRepo.FindByID(expenseID, userID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrNotFound
	}

	updates := map[string]interface{}{}
	if in.Amount != nil {
		updates["amount"] = *in.Amount
	}
	if in.Category != nil {
		updates["category"] = *in.Category
	}
	if in.Description != nil {
		updates["description"] = *in.Description
	}
	if in.Date != nil {
		updates["date"] = in.Date.Time
	}

	oldReceiptID := ""
	if in.ReceiptPath != "" {
		asset, err := u.images.Upload(ctx, in.ReceiptPath, receiptFolder)
		if err != nil {
			return nil, err
		}
		updates["receipt_url"] = asset.URL
		updates["receipt_id"] = asset.PublicID
		oldReceiptID = existing.ReceiptID
	}

	if len(updates) == 0 {
		return nil, ErrNoFields
	}

	updated, err := u.expenseRepo.Update(expenseID, userID, updates)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, ErrNotFound
	}

	// Best effort: replacing a receipt must not fail because the previous
	// asset could not be removed.
	if oldReceiptID != "" {
		if err := u.images.Delete(ctx, oldReceiptID); err != nil {
			log.Printf("failed to delete old receipt %s: %v", oldReceiptID, err)
		}
	}
	return updated, nil
}

func (u *expenseUsecase) Delete(ctx context.Context, userID, expenseID string) (*expensedomain.Expense, error) {
	removed, err := u.expenseRepo.Delete(expenseID, userID)
	if err != nil {
		return nil, err
	}
	if removed == nil {
		return nil, ErrNotFound
	}

	// The row is already gone; a failed asset cleanup is logged and swallowed.
	if removed.ReceiptID != "" {
		if err := u.images.Delete(ctx, removed.ReceiptID); err != nil {
			log.Printf("failed to delete receipt %s: %v", removed.ReceiptID, err)
		}
	}
	return removed, nil
}

func (u *expenseUsecase) GetStatistics(userID string) (*expensedomain.Statistics, error) {
	stats, err := u.expenseRepo.GetStatistics(userID)
	if err != nil {
		return nil, err
	}
	if stats.ByCategory == nil {
		stats.ByCategory = []expensedomain.CategoryStat{}
	}
	return stats, nil
}
