package dto

import (
	"fmt"
	"math"
	"strings"

	expensedomain "expense-tracker-api/internal/expense/domain"
	"expense-tracker-api/pkg/response"
)

const (
	maxAmount            = 99999999.99
	maxDescriptionLength = 500
)

var categoryList = func() string {
	names := make([]string, len(expensedomain.Categories))
	for i, c := range expensedomain.Categories {
		names[i] = string(c)
	}
	return strings.Join(names, ", ")
}()

type CreateExpenseRequest struct {
	Amount      float64 `json:"amount" form:"amount"`
	Category    string  `json:"category" form:"category"`
	Description string  `json:"description" form:"description"`
	Date        string  `json:"date" form:"date"`
}

// Validate collects every violated field so the response can list them all.
func (r *CreateExpenseRequest) Validate() []response.FieldError {
	var errs []response.FieldError

	if err := checkAmount(r.Amount); err != "" {
		errs = append(errs, response.FieldError{Field: "amount", Message: err})
	}
	if err := checkCategory(r.Category); err != "" {
		errs = append(errs, response.FieldError{Field: "category", Message: err})
	}
	if err := checkDescription(r.Description); err != "" {
		errs = append(errs, response.FieldError{Field: "description", Message: err})
	}
	if r.Date == "" {
		errs = append(errs, response.FieldError{Field: "date", Message: "date is required"})
	} else if err := checkDate(r.Date); err != "" {
		errs = append(errs, response.FieldError{Field: "date", Message: err})
	}
	return errs
}

// UpdateExpenseRequest carries only the fields the caller supplied; nil means
// "leave unchanged".
type UpdateExpenseRequest struct {
	Amount      *float64 `json:"amount,omitempty" form:"amount"`
	Category    *string  `json:"category,omitempty" form:"category"`
	Description *string  `json:"description,omitempty" form:"description"`
	Date        *string  `json:"date,omitempty" form:"date"`
}

func (r *UpdateExpenseRequest) Validate() []response.FieldError {
	var errs []response.FieldError

	if r.Amount != nil {
		if err := checkAmount(*r.Amount); err != "" {
			errs = append(errs, response.FieldError{Field: "amount", Message: err})
		}
	}
	if r.Category != nil {
		if err := checkCategory(*r.Category); err != "" {
			errs = append(errs, response.FieldError{Field: "category", Message: err})
		}
	}
	if r.Description != nil {
		if err := checkDescription(*r.Description); err != "" {
			errs = append(errs, response.FieldError{Field: "description", Message: err})
		}
	}
	if r.Date != nil {
		if err := checkDate(*r.Date); err != "" {
			errs = append(errs, response.FieldError{Field: "date", Message: err})
		}
	}
	return errs
}

func checkAmount(amount float64) string {
	if amount < 0.01 || amount > maxAmount {
		return "Amount must be a positive number with max 2 decimal places"
	}
	cents := amount * 100
	if math.Abs(cents-math.Round(cents)) > 1e-6 {
		return "Amount must be a positive number with max 2 decimal places"
	}
	return ""
}

func checkCategory(category string) string {
	if category == "" {
		return "category is required"
	}
	if !expensedomain.Category(category).Valid() {
		return fmt.Sprintf("Invalid category. Must be one of: %s", categoryList)
	}
	return ""
}

func checkDescription(description string) string {
	if len(description) > maxDescriptionLength {
		return "Description must not exceed 500 characters"
	}
	return ""
}

func checkDate(date string) string {
	parsed, err := expensedomain.ParseDate(date)
	if err != nil {
		return "Invalid date format. Use YYYY-MM-DD"
	}
	if parsed.After(expensedomain.Today().Time) {
		return "Date cannot be in the future"
	}
	return ""
}

// Pagination is the page metadata returned alongside expense listings.
type Pagination struct {
	CurrentPage int   `json:"currentPage"`
	TotalPages  int   `json:"totalPages"`
	TotalCount  int64 `json:"totalCount"`
	Limit       int   `json:"limit"`
}

type ExpenseList struct {
	Expenses   []*expensedomain.Expense `json:"expenses"`
	Pagination Pagination               `json:"pagination"`
}
