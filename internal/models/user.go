package models

import "time"

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

type User struct {
	ID           int       `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	FullName     *string   `json:"full_name"`
	Avatar       *string   `json:"avatar"`
	Role         string    `json:"role"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// UserPublic — публичный профиль автора (для обогащения комментариев).
type UserPublic struct {
	ID       int     `json:"id"`
	Username string  `json:"username"`
	FullName *string `json:"full_name"`
	Avatar   *string `json:"avatar"`
}

// UserContact — профиль с email, отдаётся только в модераторских выборках.
type UserContact struct {
	ID       int     `json:"id"`
	Username string  `json:"username"`
	Email    string  `json:"email"`
	FullName *string `json:"full_name"`
	Avatar   *string `json:"avatar"`
}

type CreateUserRequest struct {
	Username string  `json:"username" validate:"required,min=3,max=50"`
	Email    string  `json:"email" validate:"required,email"`
	Password string  `json:"password" validate:"required,min=6,max=72"`
	FullName *string `json:"full_name" validate:"omitempty,max=255"`
	Avatar   *string `json:"avatar" validate:"omitempty,max=500"`
	Role     string  `json:"role" validate:"omitempty,oneof=admin user"`
}

// UpdateUserRequest — частичное обновление: nil-поле не трогаем,
// nullable-поля через Optional (null = очистить).
type UpdateUserRequest struct {
	ID       int              `json:"id" validate:"required,min=1"`
	Username *string          `json:"username" validate:"omitempty,min=3,max=50"`
	Email    *string          `json:"email" validate:"omitempty,email"`
	Password *string          `json:"password" validate:"omitempty,min=6,max=72"`
	FullName Optional[string] `json:"full_name"`
	Avatar   Optional[string] `json:"avatar"`
	Role     *string          `json:"role" validate:"omitempty,oneof=admin user"`
	IsActive *bool            `json:"is_active"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}
