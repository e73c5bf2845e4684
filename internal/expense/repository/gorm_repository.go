package repository

import (
	"errors"
	"math"
	"time"

	expensedomain "expense-tracker-api/internal/expense/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// gormExpenseRepository implements ExpenseRepository using GORM
type gormExpenseRepository struct {
	db *gorm.DB
}

// NewGormExpenseRepository creates a new GORM-based ExpenseRepository
func NewGormExpenseRepository(db *gorm.DB) ExpenseRepository {
	return &gormExpenseRepository{db: db}
}

func (r *gormExpenseRepository) Create(expense *expensedomain.Expense) error {
	if expense.ID == "" {
		expense.ID = uuid.New().String()
	}
	expense.CreatedAt = time.Now()
	expense.UpdatedAt = time.Now()
	return r.db.Create(expense).Error
}

func (r *gormExpenseRepository) FindByUserID(userID string, limit, offset int) ([]*expensedomain.Expense, int64, error) {
	var expenses []*expensedomain.Expense
	var total int64

	query := r.db.Model(&expensedomain.Expense{}).Where("user_id = ?", userID)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// id breaks ties between rows sharing date and creation time.
	err := query.Order("date DESC, created_at DESC, id DESC").
		Limit(limit).Offset(offset).Find(&expenses).Error

	return expenses, total, err
}

func (r *gormExpenseRepository) FindByID(id, userID string) (*expensedomain.Expense, error) {
	var expense expensedomain.Expense
	err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&expense).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &expense, nil
}

func (r *gormExpenseRepository) Update(id, userID string, updates map[string]interface{}) (*expensedomain.Expense, error) {
	updates["updated_at"] = time.Now()

	result := r.db.Model(&expensedomain.Expense{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(updates)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}

	return r.FindByID(id, userID)
}

func (r *gormExpenseRepository) Delete(id, userID string) (*expensedomain.Expense, error) {
	expense, err := r.FindByID(id, userID)
	if err != nil {
		return nil, err
	}
	if expense == nil {
		return nil, nil
	}

	result := r.db.Where("id = ? AND user_id = ?", id, userID).Delete(&expensedomain.Expense{})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}
	return expense, nil
}

func (r *gormExpenseRepository) GetStatistics(userID string) (*expensedomain.Statistics, error) {
	var total expensedomain.TotalStat
	err := r.db.Model(&expensedomain.Expense{}).
		Where("user_id = ?", userID).
		Select("COUNT(*) AS count, COALESCE(SUM(amount), 0) AS amount").
		Scan(&total).Error
	if err != nil {
		return nil, err
	}

	byCategory := make([]expensedomain.CategoryStat, 0)
	err = r.db.Model(&expensedomain.Expense{}).
		Where("user_id = ?", userID).
		Select("category, COUNT(*) AS count, COALESCE(SUM(amount), 0) AS total").
		Group("category").
		Order("total DESC").
		Scan(&byCategory).Error
	if err != nil {
		return nil, err
	}

	total.Amount = roundCents(total.Amount)
	for i := range byCategory {
		byCategory[i].Total = roundCents(byCategory[i].Total)
	}

	return &expensedomain.Statistics{
		Total:      total,
		ByCategory: byCategory,
	}, nil
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
