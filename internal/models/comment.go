package models

import "time"

const (
	CommentStatusPending  = "pending"
	CommentStatusApproved = "approved"
	CommentStatusRejected = "rejected"
)

type Comment struct {
	ID        int       `json:"id"`
	Content   string    `json:"content"`
	NewsID    int       `json:"news_id"`
	UserID    int       `json:"user_id"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CommentWithAuthor — одобренный комментарий с публичным профилем автора.
type CommentWithAuthor struct {
	Comment
	Author UserPublic `json:"author"`
}

// CommentModeration — комментарий для модераторской выборки: автор
// (с email) и карточка новости.
type CommentModeration struct {
	Comment
	Author UserContact `json:"author"`
	News   NewsSummary `json:"news"`
}

type CreateCommentRequest struct {
	Content string `json:"content" validate:"required,min=1"`
	NewsID  int    `json:"news_id" validate:"required,min=1"`
	UserID  int    `json:"user_id" validate:"required,min=1"`
}

type UpdateCommentRequest struct {
	ID      int     `json:"id" validate:"required,min=1"`
	Content *string `json:"content" validate:"omitempty,min=1"`
	Status  *string `json:"status" validate:"omitempty,oneof=pending approved rejected"`
}

type ModerateCommentRequest struct {
	ID     int    `json:"id" validate:"required,min=1"`
	Status string `json:"status" validate:"required,oneof=approved rejected"`
}

type CommentsByNewsRequest struct {
	NewsID int `json:"news_id" validate:"required,min=1"`
	Pagination
}
