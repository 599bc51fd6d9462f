package models

import "time"

const (
	NewsStatusDraft     = "draft"
	NewsStatusPublished = "published"
	NewsStatusArchived  = "archived"
)

type News struct {
	ID            int        `json:"id"`
	Title         string     `json:"title"`
	Slug          string     `json:"slug"`
	Content       string     `json:"content"`
	Excerpt       *string    `json:"excerpt"`
	FeaturedImage *string    `json:"featured_image"`
	CategoryID    int        `json:"category_id"`
	AuthorID      int        `json:"author_id"`
	Status        string     `json:"status"`
	ViewsCount    int        `json:"views_count"`
	PublishedAt   *time.Time `json:"published_at"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// NewsSummary — краткая карточка новости для обогащения комментариев.
type NewsSummary struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
	Slug  string `json:"slug"`
}

type CreateNewsRequest struct {
	Title         string     `json:"title" validate:"required,max=255"`
	Slug          string     `json:"slug" validate:"required,slug,max=255"`
	Content       string     `json:"content" validate:"required"`
	Excerpt       *string    `json:"excerpt"`
	FeaturedImage *string    `json:"featured_image" validate:"omitempty,max=500"`
	CategoryID    int        `json:"category_id" validate:"required,min=1"`
	AuthorID      int        `json:"author_id" validate:"required,min=1"`
	Status        string     `json:"status" validate:"omitempty,oneof=draft published archived"`
	PublishedAt   *time.Time `json:"published_at"`
}

type UpdateNewsRequest struct {
	ID            int                  `json:"id" validate:"required,min=1"`
	Title         *string              `json:"title" validate:"omitempty,max=255"`
	Slug          *string              `json:"slug" validate:"omitempty,slug,max=255"`
	Content       *string              `json:"content"`
	Excerpt       Optional[string]     `json:"excerpt"`
	FeaturedImage Optional[string]     `json:"featured_image"`
	CategoryID    *int                 `json:"category_id" validate:"omitempty,min=1"`
	Status        *string              `json:"status" validate:"omitempty,oneof=draft published archived"`
	PublishedAt   Optional[time.Time]  `json:"published_at"`
}

// NewsByCategoryRequest — ровно один из фильтров: id или slug категории.
type NewsByCategoryRequest struct {
	CategoryID   *int    `json:"category_id" validate:"required_without=CategorySlug,excluded_with=CategorySlug,omitempty,min=1"`
	CategorySlug *string `json:"category_slug" validate:"required_without=CategoryID"`
	Pagination
}

type SearchNewsRequest struct {
	Query      string `json:"query" validate:"required,min=1"`
	CategoryID *int   `json:"category_id" validate:"omitempty,min=1"`
	Pagination
}

type FeaturedNewsRequest struct {
	Limit int `json:"limit" validate:"omitempty,min=1,max=100"`
}
