// controllers/expense.go
package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/elsebastiann/agenda-detalling/config"
	"github.com/elsebastiann/agenda-detalling/models"
	"github.com/elsebastiann/agenda-detalling/utils"
)

type CreateExpenseCategoryInput struct {
	Name string `json:"name" binding:"required"`
}

type CreateExpenseInput struct {
	CategoryID  uuid.UUID  `json:"categoryId" binding:"required"`
	Description string     `json:"description" binding:"required"`
	Amount      int        `json:"amount" binding:"required,min=0"`
	ExpenseDate *time.Time `json:"expenseDate"`
	Notes       string     `json:"notes"`
}

func CreateExpenseCategory(c *gin.Context) {
	var input CreateExpenseCategoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	category := models.ExpenseCategory{Name: input.Name, IsActive: true}
	if err := config.DB.Create(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			utils.RespondWithError(c, http.StatusConflict, "Expense category name already exists")
			return
		}
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create expense category")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"ok": true, "category": category})
}

func GetExpenseCategories(c *gin.Context) {
	var categories []models.ExpenseCategory
	if err := config.DB.Order("name").Find(&categories).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve expense categories")
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "categories": categories})
}

// CreateExpense appends a row to the expense ledger.
func CreateExpense(c *gin.Context) {
	var input CreateExpenseInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var category models.ExpenseCategory
	if err := config.DB.Where("id = ? AND is_active = ?", input.CategoryID, true).
		First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusBadRequest, "Expense category not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	expenseDate := utils.BeginningOfDay(time.Now())
	if input.ExpenseDate != nil {
		expenseDate = *input.ExpenseDate
	}

	expense := models.Expense{
		CategoryID:  input.CategoryID,
		Description: input.Description,
		Amount:      input.Amount,
		ExpenseDate: expenseDate,
		Notes:       input.Notes,
	}

	if err := config.DB.Create(&expense).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create expense")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"ok": true, "expense": expense})
}

// GetExpenses lists the expense ledger, most recent first, optionally
// filtered by date range.
func GetExpenses(c *gin.Context) {
	query := config.DB.Preload("Category").Order("expense_date DESC")

	if from := c.Query("from"); from != "" {
		fromDate, err := time.Parse("2006-01-02", from)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid from date, expected YYYY-MM-DD")
			return
		}
		query = query.Where("expense_date >= ?", fromDate)
	}
	if to := c.Query("to"); to != "" {
		toDate, err := time.Parse("2006-01-02", to)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid to date, expected YYYY-MM-DD")
			return
		}
		query = query.Where("expense_date < ?", toDate.AddDate(0, 0, 1))
	}

	var expenses []models.Expense
	if err := query.Find(&expenses).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve expenses")
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "expenses": expenses})
}
