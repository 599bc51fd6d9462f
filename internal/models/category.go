package models

import "time"

type Category struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description *string   `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type CreateCategoryRequest struct {
	Name        string  `json:"name" validate:"required,max=255"`
	Slug        string  `json:"slug" validate:"required,slug,max=255"`
	Description *string `json:"description"`
}

type UpdateCategoryRequest struct {
	ID          int              `json:"id" validate:"required,min=1"`
	Name        *string          `json:"name" validate:"omitempty,max=255"`
	Slug        *string          `json:"slug" validate:"omitempty,slug,max=255"`
	Description Optional[string] `json:"description"`
}
