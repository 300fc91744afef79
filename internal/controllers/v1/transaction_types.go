package v1

import (
	"time"

	"github.com/centavo/backend/internal/models"
	centavo_uuid "github.com/centavo/backend/internal/uuid"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// TransactionEditable represents all user configurable parameters
type TransactionEditable struct {
	Description string                 `json:"description" example:"Sourdough loaf"`                                // Free text description
	Amount      decimal.Decimal        `json:"amount" example:"10.50"`                                              // Positive magnitude, the sign is carried by the kind
	Kind        models.TransactionKind `json:"kind" example:"expense" enums:"income,expense"`                       // Kind of the transaction
	Date        time.Time              `json:"date" example:"2024-01-15T12:00:00Z"`                                 // Date of the transaction, defaults to now
	CategoryID  *uuid.UUID             `json:"categoryId" example:"52d967d3-33f4-4b04-9ba7-772e5ab9d0ce"`           // ID of the category, optional
	Recurring   bool                   `json:"recurring" example:"true" default:"false"`                            // Is the transaction cloned into the next month by rollover?
}

func (editable TransactionEditable) model(userID uuid.UUID) models.Transaction {
	return models.Transaction{
		Description: editable.Description,
		Amount:      editable.Amount,
		Kind:        editable.Kind,
		Date:        editable.Date,
		UserID:      userID,
		CategoryID:  editable.CategoryID,
		Recurring:   editable.Recurring,
	}
}

type Transaction struct {
	models.DefaultModel
	TransactionEditable

	// These fields are resolved for display clients
	CategoryName string `json:"categoryName" example:"Groceries"` // Name of the category, if one is set
	CategoryIcon string `json:"categoryIcon" example:"🛒"`        // Icon of the category, if one is set
}

func newTransaction(db *gorm.DB, model models.Transaction) Transaction {
	transaction := Transaction{
		DefaultModel: model.DefaultModel,
		TransactionEditable: TransactionEditable{
			Description: model.Description,
			Amount:      model.Amount,
			Kind:        model.Kind,
			Date:        model.Date,
			CategoryID:  model.CategoryID,
			Recurring:   model.Recurring,
		},
	}

	if model.CategoryID != nil {
		var category models.Category
		if err := db.First(&category, *model.CategoryID).Error; err == nil {
			transaction.CategoryName = category.Name
			transaction.CategoryIcon = category.Icon
		}
	}

	return transaction
}

type TransactionResponse struct {
	Data  *Transaction `json:"data"`  // Data for the transaction
	Error *string      `json:"error"` // The error, if any occurred
}

type TransactionListResponse struct {
	Data       []Transaction `json:"data"`       // List of transactions
	Error      *string       `json:"error"`      // The error, if any occurred
	Pagination *Pagination   `json:"pagination"` // Pagination information
}

type TransactionQueryFilter struct {
	Month     string                 `form:"month" filterField:"false"`    // Only transactions in this YYYY-MM month
	Kind      models.TransactionKind `form:"kind"`                         // By kind
	Recurring bool                   `form:"recurring"`                    // Is the transaction recurring?
	Category  centavo_uuid.UUID      `form:"category" filterField:"false"` // By ID of the category
	Offset    uint                   `form:"offset" filterField:"false"`   // The offset of the first transaction returned. Defaults to 0.
	Limit     int                    `form:"limit" filterField:"false"`    // Maximum number of transactions to return. Defaults to 50.
}

func (f TransactionQueryFilter) model() models.Transaction {
	return models.Transaction{
		Kind:      f.Kind,
		Recurring: f.Recurring,
	}
}
