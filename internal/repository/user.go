package repository

import (
	"context"
	"errors"
	"fmt"
	"newsportal/internal/apperrors"
	"newsportal/internal/logger"
	"newsportal/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type UserRepository struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

const userColumns = `id, username, email, password_hash, full_name, avatar, role, is_active, created_at, updated_at`

func scanUser(row pgx.Row) (*models.User, error) {
	var u models.User
	err := row.Scan(
		&u.ID,
		&u.Username,
		&u.Email,
		&u.PasswordHash,
		&u.FullName,
		&u.Avatar,
		&u.Role,
		&u.IsActive,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) CreateUser(ctx context.Context, user *models.User) error {
	logger.WithCtx(ctx).Info("Создание пользователя (repo)", zap.String("username", user.Username), zap.String("email", user.Email))
	query := `
	INSERT INTO users (username, email, password_hash, full_name, avatar, role)
	VALUES ($1, $2, $3, $4, $5, $6)
	RETURNING id, is_active, created_at, updated_at`
	err := r.db.QueryRow(ctx, query,
		user.Username,
		user.Email,
		user.PasswordHash,
		user.FullName,
		user.Avatar,
		user.Role,
	).Scan(&user.ID, &user.IsActive, &user.CreatedAt, &user.UpdatedAt)

	if constraint, ok := uniqueViolation(err); ok {
		// Страховка на случай гонки с явными проверками в сервисе
		switch constraint {
		case "users_username_key":
			return apperrors.Conflictf("имя пользователя %q уже занято", user.Username)
		default:
			return apperrors.Conflictf("email %q уже зарегистрирован", user.Email)
		}
	}
	if err != nil {
		logger.WithCtx(ctx).Error("Ошибка создания пользователя (repo)", zap.Error(err))
	}
	return err
}

// IsUsernameTaken проверяет занятость username; excludeID исключает
// собственную запись при обновлении (0 — без исключений).
func (r *UserRepository) IsUsernameTaken(ctx context.Context, username string, excludeID int) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM users WHERE username = $1 AND id <> $2)`
	var exists bool
	err := r.db.QueryRow(ctx, query, username, excludeID).Scan(&exists)
	if err != nil {
		logger.WithCtx(ctx).Error("Ошибка проверки username (repo)", zap.Error(err))
	}
	return exists, err
}

func (r *UserRepository) IsEmailTaken(ctx context.Context, email string, excludeID int) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM users WHERE email = $1 AND id <> $2)`
	var exists bool
	err := r.db.QueryRow(ctx, query, email, excludeID).Scan(&exists)
	if err != nil {
		logger.WithCtx(ctx).Error("Ошибка проверки email (repo)", zap.Error(err))
	}
	return exists, err
}

func (r *UserRepository) GetAllUsersPaginated(ctx context.Context, limit, offset int) ([]*models.User, int, error) {
	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + userColumns + ` FROM users ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		logger.WithCtx(ctx).Error("Ошибка получения пользователей (repo)", zap.Error(err))
		return nil, 0, err
	}
	defer rows.Close()

	var users []*models.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, 0, err
		}
		users = append(users, u)
	}
	return users, total, rows.Err()
}

// GetUserByID возвращает (nil, nil), если пользователя нет —
// «не найдено» в читающих операциях не считается ошибкой.
func (r *UserRepository) GetUserByID(ctx context.Context, id int) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	u, err := scanUser(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		logger.WithCtx(ctx).Error("Ошибка получения пользователя по ID (repo)", zap.Int("user_id", id), zap.Error(err))
		return nil, err
	}
	return u, nil
}

// GetUserByEmail — точное (регистрозависимое) совпадение email.
func (r *UserRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	u, err := scanUser(r.db.QueryRow(ctx, query, email))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		logger.WithCtx(ctx).Error("Ошибка получения пользователя по email (repo)", zap.Error(err))
		return nil, err
	}
	return u, nil
}

func (r *UserRepository) Exists(ctx context.Context, id int) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM users WHERE id = $1)`, id).Scan(&exists)
	return exists, err
}

// UpdateUserFields обновляет только переданные поля; updated_at
// обновляется всегда. passwordHash передаётся отдельно (уже захеширован).
func (r *UserRepository) UpdateUserFields(ctx context.Context, id int, input *models.UpdateUserRequest, passwordHash *string) error {
	logger.WithCtx(ctx).Info("Обновление пользователя (repo)", zap.Int("user_id", id))
	query := `UPDATE users SET`
	var args []interface{}
	argNum := 1

	add := func(col string, val interface{}) {
		query += fmt.Sprintf(" %s = $%d,", col, argNum)
		args = append(args, val)
		argNum++
	}

	if input.Username != nil {
		add("username", *input.Username)
	}
	if input.Email != nil {
		add("email", *input.Email)
	}
	if passwordHash != nil {
		add("password_hash", *passwordHash)
	}
	if input.FullName.Set {
		add("full_name", input.FullName.Ptr())
	}
	if input.Avatar.Set {
		add("avatar", input.Avatar.Ptr())
	}
	if input.Role != nil {
		add("role", *input.Role)
	}
	if input.IsActive != nil {
		add("is_active", *input.IsActive)
	}

	query += fmt.Sprintf(" updated_at = now() WHERE id = $%d", argNum)
	args = append(args, id)

	_, err := r.db.Exec(ctx, query, args...)
	if constraint, ok := uniqueViolation(err); ok {
		if constraint == "users_username_key" {
			return apperrors.Conflictf("имя пользователя уже занято")
		}
		return apperrors.Conflictf("email уже зарегистрирован")
	}
	if err != nil {
		logger.WithCtx(ctx).Error("Ошибка обновления пользователя (repo)", zap.Error(err), zap.Int("user_id", id))
	}
	return err
}

// SoftDelete переводит пользователя в is_active=false, строка остаётся.
func (r *UserRepository) SoftDelete(ctx context.Context, id int) (bool, error) {
	logger.WithCtx(ctx).Info("Мягкое удаление пользователя (repo)", zap.Int("user_id", id))
	tag, err := r.db.Exec(ctx, `UPDATE users SET is_active = false, updated_at = now() WHERE id = $1`, id)
	if err != nil {
		logger.WithCtx(ctx).Error("Ошибка мягкого удаления (repo)", zap.Error(err), zap.Int("user_id", id))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
