package delivery

import (
	"errors"
	"net/http"
	"strconv"

	expensedomain "expense-tracker-api/internal/expense/domain"
	expensedto "expense-tracker-api/internal/expense/dto"
	"expense-tracker-api/internal/expense/usecase"
	"expense-tracker-api/pkg/response"

	"github.com/gin-gonic/gin"
)

// ExpenseHandler handles expense-related HTTP requests
type ExpenseHandler struct {
	expenseUsecase usecase.ExpenseUsecase
}

// NewExpenseHandler creates a new ExpenseHandler
func NewExpenseHandler(expenseUsecase usecase.ExpenseUsecase) *ExpenseHandler {
	return &ExpenseHandler{
		expenseUsecase: expenseUsecase,
	}
}

// CreateExpense creates a new expense for the authenticated user
// POST /api/expenses (JSON or multipart form with optional receipt file)
func (h *ExpenseHandler) CreateExpense(c *gin.Context) {
	userID := c.GetString("userID")

	var req expensedto.CreateExpenseRequest
	if err := c.ShouldBind(&req); err != nil {
		response.ValidationFailed(c, response.BindingErrors(err))
		return
	}
	if errs := req.Validate(); len(errs) > 0 {
		response.ValidationFailed(c, errs)
		return
	}

	date, _ := expensedomain.ParseDate(req.Date)
	in := usecase.CreateExpenseInput{
		Amount:      req.Amount,
		Category:    expensedomain.Category(req.Category),
		Description: req.Description,
		Date:        date,
	}

	if file, err := c.FormFile("receipt"); err == nil {
		if ferr := validateImageUpload(file); ferr != nil {
			response.Error(c, http.StatusBadRequest, ferr.Error())
			return
		}
		path, cleanup, err := saveUploadTemp(c, file, "receipt")
		if err != nil {
			response.Error(c, http.StatusInternalServerError, "Failed to process uploaded file")
			return
		}
		defer cleanup()
		in.ReceiptPath = path
	}

	expense, err := h.expenseUsecase.Create(c.Request.Context(), userID, in)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to create expense")
		return
	}

	response.OK(c, http.StatusCreated, "Expense created successfully", expense)
}

// GetExpenses returns one page of the authenticated user's expenses
// GET /api/expenses?page=1&limit=50
func (h *ExpenseHandler) GetExpenses(c *gin.Context) {
	userID := c.GetString("userID")

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	list, err := h.expenseUsecase.List(userID, page, limit)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to retrieve expenses")
		return
	}

	response.OK(c, http.StatusOK, "Expenses retrieved successfully", list)
}

// GetExpenseByID returns a single expense owned by the authenticated user
// GET /api/expenses/:id
func (h *ExpenseHandler) GetExpenseByID(c *gin.Context) {
	userID := c.GetString("userID")
	expenseID := c.Param("id")

	expense, err := h.expenseUsecase.GetByID(userID, expenseID)
	if err != nil {
		if errors.Is(err, usecase.ErrNotFound) {
			response.Error(c, http.StatusNotFound, "Expense not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "Failed to retrieve expense")
		return
	}

	response.OK(c, http.StatusOK, "Expense retrieved successfully", expense)
}

// UpdateExpense applies a partial update to an owned expense
// PUT /api/expenses/:id (JSON or multipart form with optional receipt file)
func (h *ExpenseHandler) UpdateExpense(c *gin.Context) {
	userID := c.GetString("userID")
	expenseID := c.Param("id")

	var req expensedto.UpdateExpenseRequest
	if err := c.ShouldBind(&req); err != nil {
		response.ValidationFailed(c, response.BindingErrors(err))
		return
	}
	if errs := req.Validate(); len(errs) > 0 {
		response.ValidationFailed(c, errs)
		return
	}

	in := usecase.UpdateExpenseInput{
		Amount:      req.Amount,
		Description: req.Description,
	}
	if req.Category != nil {
		category := expensedomain.Category(*req.Category)
		in.Category = &category
	}
	if req.Date != nil {
		date, _ := expensedomain.ParseDate(*req.Date)
		in.Date = &date
	}

	if file, err := c.FormFile("receipt"); err == nil {
		if ferr := validateImageUpload(file); ferr != nil {
			response.Error(c, http.StatusBadRequest, ferr.Error())
			return
		}
		path, cleanup, err := saveUploadTemp(c, file, "receipt")
		if err != nil {
			response.Error(c, http.StatusInternalServerError, "Failed to process uploaded file")
			return
		}
		defer cleanup()
		in.ReceiptPath = path
	}

	expense, err := h.expenseUsecase.Update(c.Request.Context(), userID, expenseID, in)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrNotFound):
			response.Error(c, http.StatusNotFound, "Expense not found")
		case errors.Is(err, usecase.ErrNoFields):
			response.Error(c, http.StatusBadRequest, "No fields to update")
		default:
			response.Error(c, http.StatusInternalServerError, "Failed to update expense")
		}
		return
	}

	response.OK(c, http.StatusOK, "Expense updated successfully", expense)
}

// DeleteExpense removes an owned expense and best-effort deletes its receipt
// DELETE /api/expenses/:id
func (h *ExpenseHandler) DeleteExpense(c *gin.Context) {
	userID := c.GetString("userID")
	expenseID := c.Param("id")

	removed, err := h.expenseUsecase.Delete(c.Request.Context(), userID, expenseID)
	if err != nil {
		if errors.Is(err, usecase.ErrNotFound) {
			response.Error(c, http.StatusNotFound, "Expense not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "Failed to delete expense")
		return
	}

	response.OK(c, http.StatusOK, "Expense deleted successfully", gin.H{"id": removed.ID})
}

// GetStatistics returns aggregate statistics for the authenticated user
// GET /api/expenses/stats
func (h *ExpenseHandler) GetStatistics(c *gin.Context) {
	userID := c.GetString("userID")

	stats, err := h.expenseUsecase.GetStatistics(userID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to retrieve statistics")
		return
	}

	response.OK(c, http.StatusOK, "Statistics retrieved successfully", stats)
}
