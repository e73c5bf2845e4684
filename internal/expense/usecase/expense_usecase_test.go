package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"testing"
	"time"

	expensedomain "expense-tracker-api/internal/expense/domain"
	"expense-tracker-api/pkg/imagestore"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// fakeExpenseRepo is an in-memory ExpenseRepository with the same
// ownership-scoping contract as the GORM implementation.
type fakeExpenseRepo struct {
	expenses map[string]*expensedomain.Expense
}

func newFakeExpenseRepo() *fakeExpenseRepo {
	return &fakeExpenseRepo{expenses: make(map[string]*expensedomain.Expense)}
}

func (r *fakeExpenseRepo) Create(expense *expensedomain.Expense) error {
	if expense.ID == "" {
		expense.ID = uuid.New().String()
	}
	expense.CreatedAt = time.Now()
	expense.UpdatedAt = time.Now()
	copied := *expense
	r.expenses[expense.ID] = &copied
	return nil
}

func (r *fakeExpenseRepo) owned(userID string) []*expensedomain.Expense {
	var out []*expensedomain.Expense
	for _, e := range r.expenses {
		if e.UserID == userID {
			copied := *e
			out = append(out, &copied)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date.Time) {
			return out[i].Date.Time.After(out[j].Date.Time)
		}
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out
}

func (r *fakeExpenseRepo) FindByUserID(userID string, limit, offset int) ([]*expensedomain.Expense, int64, error) {
	all := r.owned(userID)
	total := int64(len(all))

	if offset >= len(all) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], total, nil
}

func (r *fakeExpenseRepo) FindByID(id, userID string) (*expensedomain.Expense, error) {
	e, ok := r.expenses[id]
	if !ok || e.UserID != userID {
		return nil, nil
	}
	copied := *e
	return &copied, nil
}

func (r *fakeExpenseRepo) Update(id, userID string, updates map[string]interface{}) (*expensedomain.Expense, error) {
	e, ok := r.expenses[id]
	if !ok || e.UserID != userID {
		return nil, nil
	}
	for column, value := range updates {
		switch column {
		case "amount":
			e.Amount = value.(float64)
		case "category":
			e.Category = value.(expensedomain.Category)
		case "description":
			e.Description = value.(string)
		case "date":
			e.Date = expensedomain.Date{Time: value.(time.Time)}
		case "receipt_url":
			e.ReceiptURL = value.(string)
		case "receipt_id":
			e.ReceiptID = value.(string)
		case "updated_at":
			e.UpdatedAt = value.(time.Time)
		}
	}
	copied := *e
	return &copied, nil
}

func (r *fakeExpenseRepo) Delete(id, userID string) (*expensedomain.Expense, error) {
	e, ok := r.expenses[id]
	if !ok || e.UserID != userID {
		return nil, nil
	}
	delete(r.expenses, id)
	return e, nil
}

func (r *fakeExpenseRepo) GetStatistics(userID string) (*expensedomain.Statistics, error) {
	stats := &expensedomain.Statistics{}
	perCategory := make(map[expensedomain.Category]*expensedomain.CategoryStat)

	for _, e := range r.expenses {
		if e.UserID != userID {
			continue
		}
		stats.Total.Count++
		stats.Total.Amount += e.Amount

		cs, ok := perCategory[e.Category]
		if !ok {
			cs = &expensedomain.CategoryStat{Category: e.Category}
			perCategory[e.Category] = cs
		}
		cs.Count++
		cs.Total += e.Amount
	}

	for _, cs := range perCategory {
		stats.ByCategory = append(stats.ByCategory, *cs)
	}
	sort.Slice(stats.ByCategory, func(i, j int) bool {
		return stats.ByCategory[i].Total > stats.ByCategory[j].Total
	})
	return stats, nil
}

// fakeImageStore records uploads and deletions.
type fakeImageStore struct {
	uploads   int
	deleted   []string
	uploadErr error
	deleteErr error
}

func (s *fakeImageStore) Upload(_ context.Context, _, _ string) (*imagestore.Asset, error) {
	if s.uploadErr != nil {
		return nil, s.uploadErr
	}
	s.uploads++
	return &imagestore.Asset{
		URL:      "https://images.example/receipt.png",
		PublicID: "receipt-" + uuid.New().String(),
	}, nil
}

func (s *fakeImageStore) Delete(_ context.Context, publicID string) error {
	if s.deleteErr != nil {
		return s.deleteErr
	}
	s.deleted = append(s.deleted, publicID)
	return nil
}

type ExpenseUsecaseSuite struct {
	suite.Suite
	repo   *fakeExpenseRepo
	images *fakeImageStore
	uc     ExpenseUsecase
}

func (s *ExpenseUsecaseSuite) SetupTest() {
	s.repo = newFakeExpenseRepo()
	s.images = &fakeImageStore{}
	s.uc = NewExpenseUsecase(s.repo, s.images)
}

func (s *ExpenseUsecaseSuite) createExpense(userID string, amount float64, category expensedomain.Category, day string) *expensedomain.Expense {
	date, err := expensedomain.ParseDate(day)
	require.NoError(s.T(), err)

	expense, err := s.uc.Create(context.Background(), userID, CreateExpenseInput{
		Amount:   amount,
		Category: category,
		Date:     date,
	})
	require.NoError(s.T(), err)
	return expense
}

func (s *ExpenseUsecaseSuite) TestCreateAndGetRoundTrip() {
	created := s.createExpense("user-a", 12.50, expensedomain.CategoryFood, "2025-06-01")

	got, err := s.uc.GetByID("user-a", created.ID)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), 12.50, got.Amount)
	assert.Equal(s.T(), expensedomain.CategoryFood, got.Category)
	assert.Equal(s.T(), "2025-06-01", got.Date.String())
}

func (s *ExpenseUsecaseSuite) TestCrossUserAccessLooksLikeNotFound() {
	created := s.createExpense("user-a", 30, expensedomain.CategoryBills, "2025-06-01")

	_, err := s.uc.GetByID("user-b", created.ID)
	assert.ErrorIs(s.T(), err, ErrNotFound)

	amount := 99.0
	_, err = s.uc.Update(context.Background(), "user-b", created.ID, UpdateExpenseInput{Amount: &amount})
	assert.ErrorIs(s.T(), err, ErrNotFound)

	_, err = s.uc.Delete(context.Background(), "user-b", created.ID)
	assert.ErrorIs(s.T(), err, ErrNotFound)

	// The owner still sees the untouched record.
	got, err := s.uc.GetByID("user-a", created.ID)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), 30.0, got.Amount)
}

func (s *ExpenseUsecaseSuite) TestListPagination() {
	for i := 0; i < 55; i++ {
		s.createExpense("user-a", float64(i+1), expensedomain.CategoryOther, fmt.Sprintf("2025-05-%02d", i%28+1))
	}

	page1, err := s.uc.List("user-a", 1, 50)
	require.NoError(s.T(), err)
	assert.Len(s.T(), page1.Expenses, 50)
	assert.Equal(s.T(), 1, page1.Pagination.CurrentPage)
	assert.Equal(s.T(), 2, page1.Pagination.TotalPages)
	assert.Equal(s.T(), int64(55), page1.Pagination.TotalCount)

	page2, err := s.uc.List("user-a", 2, 50)
	require.NoError(s.T(), err)
	assert.Len(s.T(), page2.Expenses, 5)
	assert.Equal(s.T(), 2, page2.Pagination.CurrentPage)
}

func (s *ExpenseUsecaseSuite) TestListOrderedByDateDescending() {
	s.createExpense("user-a", 1, expensedomain.CategoryFood, "2025-01-10")
	s.createExpense("user-a", 2, expensedomain.CategoryFood, "2025-03-05")
	s.createExpense("user-a", 3, expensedomain.CategoryFood, "2025-02-20")

	list, err := s.uc.List("user-a", 1, 50)
	require.NoError(s.T(), err)
	require.Len(s.T(), list.Expenses, 3)
	assert.Equal(s.T(), "2025-03-05", list.Expenses[0].Date.String())
	assert.Equal(s.T(), "2025-02-20", list.Expenses[1].Date.String())
	assert.Equal(s.T(), "2025-01-10", list.Expenses[2].Date.String())
}

func (s *ExpenseUsecaseSuite) TestListEmptyPage() {
	list, err := s.uc.List("user-a", 1, 50)
	require.NoError(s.T(), err)
	assert.NotNil(s.T(), list.Expenses)
	assert.Len(s.T(), list.Expenses, 0)
	assert.Equal(s.T(), 0, list.Pagination.TotalPages)
}

func (s *ExpenseUsecaseSuite) TestUpdatePartialFields() {
	created := s.createExpense("user-a", 10, expensedomain.CategoryFood, "2025-06-01")

	description := "team lunch"
	updated, err := s.uc.Update(context.Background(), "user-a", created.ID, UpdateExpenseInput{Description: &description})
	require.NoError(s.T(), err)
	assert.Equal(s.T(), "team lunch", updated.Description)
	assert.Equal(s.T(), 10.0, updated.Amount, "unsupplied fields stay unchanged")
	assert.Equal(s.T(), expensedomain.CategoryFood, updated.Category)
}

func (s *ExpenseUsecaseSuite) TestUpdateNoFields() {
	created := s.createExpense("user-a", 10, expensedomain.CategoryFood, "2025-06-01")

	_, err := s.uc.Update(context.Background(), "user-a", created.ID, UpdateExpenseInput{})
	assert.ErrorIs(s.T(), err, ErrNoFields)
}

func (s *ExpenseUsecaseSuite) TestCreateWithReceiptUploadFailure() {
	s.images.uploadErr = errors.New("asset store unreachable")

	date, err := expensedomain.ParseDate("2025-06-01")
	require.NoError(s.T(), err)

	_, err = s.uc.Create(context.Background(), "user-a", CreateExpenseInput{
		Amount:      10,
		Category:    expensedomain.CategoryFood,
		Date:        date,
		ReceiptPath: "/tmp/receipt.png",
	})
	require.Error(s.T(), err)
	assert.Empty(s.T(), s.repo.expenses, "nothing should be persisted when the upload fails")
}

func (s *ExpenseUsecaseSuite) TestDeleteSurvivesReceiptCleanupFailure() {
	date, err := expensedomain.ParseDate("2025-06-01")
	require.NoError(s.T(), err)

	created, err := s.uc.Create(context.Background(), "user-a", CreateExpenseInput{
		Amount:      10,
		Category:    expensedomain.CategoryFood,
		Date:        date,
		ReceiptPath: "/tmp/receipt.png",
	})
	require.NoError(s.T(), err)
	require.NotEmpty(s.T(), created.ReceiptID)

	s.images.deleteErr = errors.New("asset store unreachable")

	removed, err := s.uc.Delete(context.Background(), "user-a", created.ID)
	require.NoError(s.T(), err, "asset cleanup failure must not fail the delete")
	assert.Equal(s.T(), created.ID, removed.ID)

	_, err = s.uc.GetByID("user-a", created.ID)
	assert.ErrorIs(s.T(), err, ErrNotFound, "the row must be gone")
}

func (s *ExpenseUsecaseSuite) TestDeleteAttemptsReceiptCleanup() {
	date, err := expensedomain.ParseDate("2025-06-01")
	require.NoError(s.T(), err)

	created, err := s.uc.Create(context.Background(), "user-a", CreateExpenseInput{
		Amount:      10,
		Category:    expensedomain.CategoryFood,
		Date:        date,
		ReceiptPath: "/tmp/receipt.png",
	})
	require.NoError(s.T(), err)

	_, err = s.uc.Delete(context.Background(), "user-a", created.ID)
	require.NoError(s.T(), err)
	assert.Contains(s.T(), s.images.deleted, created.ReceiptID)
}

func (s *ExpenseUsecaseSuite) TestStatisticsEmptyUser() {
	stats, err := s.uc.GetStatistics("user-a")
	require.NoError(s.T(), err)
	assert.Equal(s.T(), int64(0), stats.Total.Count)
	assert.Equal(s.T(), 0.0, stats.Total.Amount)
	assert.NotNil(s.T(), stats.ByCategory)
	assert.Len(s.T(), stats.ByCategory, 0)
}

func (s *ExpenseUsecaseSuite) TestStatisticsOrderedByTotalDescending() {
	s.createExpense("user-a", 5, expensedomain.CategoryFood, "2025-06-01")
	s.createExpense("user-a", 7, expensedomain.CategoryFood, "2025-06-02")
	s.createExpense("user-a", 40, expensedomain.CategoryBills, "2025-06-03")
	s.createExpense("user-b", 1000, expensedomain.CategoryShopping, "2025-06-03")

	stats, err := s.uc.GetStatistics("user-a")
	require.NoError(s.T(), err)
	assert.Equal(s.T(), int64(3), stats.Total.Count)
	assert.Equal(s.T(), 52.0, stats.Total.Amount)

	require.Len(s.T(), stats.ByCategory, 2)
	assert.Equal(s.T(), expensedomain.CategoryBills, stats.ByCategory[0].Category)
	assert.Equal(s.T(), 40.0, stats.ByCategory[0].Total)
	assert.Equal(s.T(), expensedomain.CategoryFood, stats.ByCategory[1].Category)
	assert.Equal(s.T(), int64(2), stats.ByCategory[1].Count)
}

func TestExpenseUsecaseSuite(t *testing.T) {
	suite.Run(t, new(ExpenseUsecaseSuite))
}
