package models

import (
	"github.com/google/uuid"
)

// Service is a catalog entry. Prices are whole pesos (CLP has no minor unit).
type Service struct {
	ID          uuid.UUID `json:"id" validate:"required"`
	Title       string    `json:"title" validate:"required"`
	Description string    `json:"description"`
	Price       int64     `json:"price" validate:"gt=0"`
	ImageURL    string    `json:"imageUrl" validate:"omitempty,url"`
}
