package v1

import (
	"github.com/centavo/backend/internal/models"
	"github.com/google/uuid"
)

// CategoryEditable represents all user configurable parameters
type CategoryEditable struct {
	Name  string                 `json:"name" example:"Groceries" default:""`     // Name of the category, unique per user
	Icon  string                 `json:"icon" example:"🛒" default:""`            // Icon token for display clients
	Color string                 `json:"color" example:"#4caf50" default:""`      // Color token for display clients
	Kind  models.TransactionKind `json:"kind" example:"expense" enums:"income,expense"` // Semantic kind of the category
}

func (editable CategoryEditable) model(userID uuid.UUID) models.Category {
	return models.Category{
		UserID: userID,
		Name:   editable.Name,
		Icon:   editable.Icon,
		Color:  editable.Color,
		Kind:   editable.Kind,
	}
}

type Category struct {
	models.DefaultModel
	CategoryEditable
}

func newCategory(model models.Category) Category {
	return Category{
		DefaultModel: model.DefaultModel,
		CategoryEditable: CategoryEditable{
			Name:  model.Name,
			Icon:  model.Icon,
			Color: model.Color,
			Kind:  model.Kind,
		},
	}
}

type CategoryResponse struct {
	Data  *Category `json:"data"`  // Data for the category
	Error *string   `json:"error"` // The error, if any occurred
}

type CategoryListResponse struct {
	Data  []Category `json:"data"`  // List of categories
	Error *string    `json:"error"` // The error, if any occurred
}
