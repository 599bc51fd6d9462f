package repository

import (
	"context"
	"errors"
	"fmt"
	"newsportal/internal/apperrors"
	"newsportal/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CategoryRepository struct {
	db *pgxpool.Pool
}

func NewCategoryRepository(db *pgxpool.Pool) *CategoryRepository {
	return &CategoryRepository{db: db}
}

const categoryColumns = `id, name, slug, description, created_at, updated_at`

func scanCategory(row pgx.Row) (*models.Category, error) {
	var c models.Category
	err := row.Scan(&c.ID, &c.Name, &c.Slug, &c.Description, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CategoryRepository) Create(ctx context.Context, c *models.Category) error {
	query := `
	INSERT INTO categories (name, slug, description)
	VALUES ($1, $2, $3)
	RETURNING id, created_at, updated_at`
	err := r.db.QueryRow(ctx, query, c.Name, c.Slug, c.Description).
		Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	if _, ok := uniqueViolation(err); ok {
		return apperrors.Conflictf("категория со slug %q уже существует", c.Slug)
	}
	return err
}

// GetAll возвращает все категории по алфавиту.
func (r *CategoryRepository) GetAll(ctx context.Context) ([]*models.Category, error) {
	rows, err := r.db.Query(ctx, `SELECT `+categoryColumns+` FROM categories ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []*models.Category
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

func (r *CategoryRepository) GetByID(ctx context.Context, id int) (*models.Category, error) {
	c, err := scanCategory(r.db.QueryRow(ctx, `SELECT `+categoryColumns+` FROM categories WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return c, err
}

func (r *CategoryRepository) GetBySlug(ctx context.Context, slug string) (*models.Category, error) {
	c, err := scanCategory(r.db.QueryRow(ctx, `SELECT `+categoryColumns+` FROM categories WHERE slug = $1`, slug))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return c, err
}

func (r *CategoryRepository) Exists(ctx context.Context, id int) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM categories WHERE id = $1)`, id).Scan(&exists)
	return exists, err
}

// SlugExists проверяет занятость slug другой категорией (excludeID —
// собственный id при обновлении, 0 при создании).
func (r *CategoryRepository) SlugExists(ctx context.Context, slug string, excludeID int) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM categories WHERE slug = $1 AND id <> $2)`,
		slug, excludeID,
	).Scan(&exists)
	return exists, err
}

func (r *CategoryRepository) UpdateFields(ctx context.Context, id int, input *models.UpdateCategoryRequest) error {
	query := `UPDATE categories SET`
	var args []interface{}
	argNum := 1

	add := func(col string, val interface{}) {
		query += fmt.Sprintf(" %s = $%d,", col, argNum)
		args = append(args, val)
		argNum++
	}

	if input.Name != nil {
		add("name", *input.Name)
	}
	if input.Slug != nil {
		add("slug", *input.Slug)
	}
	if input.Description.Set {
		add("description", input.Description.Ptr())
	}

	query += fmt.Sprintf(" updated_at = now() WHERE id = $%d", argNum)
	args = append(args, id)

	_, err := r.db.Exec(ctx, query, args...)
	if _, ok := uniqueViolation(err); ok {
		return apperrors.Conflictf("категория с таким slug уже существует")
	}
	return err
}

func (r *CategoryRepository) Delete(ctx context.Context, id int) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
