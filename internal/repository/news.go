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

type NewsRepository struct {
	db *pgxpool.Pool
}

func NewNewsRepository(db *pgxpool.Pool) *NewsRepository {
	return &NewsRepository{db: db}
}

const newsColumns = `id, title, slug, content, excerpt, featured_image, category_id, author_id, status, views_count, published_at, created_at, updated_at`

func scanNews(row pgx.Row) (*models.News, error) {
	var n models.News
	err := row.Scan(
		&n.ID,
		&n.Title,
		&n.Slug,
		&n.Content,
		&n.Excerpt,
		&n.FeaturedImage,
		&n.CategoryID,
		&n.AuthorID,
		&n.Status,
		&n.ViewsCount,
		&n.PublishedAt,
		&n.CreatedAt,
		&n.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

func (r *NewsRepository) collect(rows pgx.Rows) ([]*models.News, error) {
	defer rows.Close()
	var list []*models.News
	for rows.Next() {
		n, err := scanNews(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, n)
	}
	return list, rows.Err()
}

func (r *NewsRepository) Create(ctx context.Context, n *models.News) error {
	query := `
	INSERT INTO news (title, slug, content, excerpt, featured_image, category_id, author_id, status, published_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	RETURNING id, views_count, created_at, updated_at`
	err := r.db.QueryRow(ctx, query,
		n.Title,
		n.Slug,
		n.Content,
		n.Excerpt,
		n.FeaturedImage,
		n.CategoryID,
		n.AuthorID,
		n.Status,
		n.PublishedAt,
	).Scan(&n.ID, &n.ViewsCount, &n.CreatedAt, &n.UpdatedAt)
	if _, ok := uniqueViolation(err); ok {
		return apperrors.Conflictf("новость со slug %q уже существует", n.Slug)
	}
	return err
}

// ListPublished — только опубликованные, свежие выше.
func (r *NewsRepository) ListPublished(ctx context.Context, limit, offset int) ([]*models.News, int, error) {
	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM news WHERE status = $1`, models.NewsStatusPublished).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.db.Query(ctx,
		`SELECT `+newsColumns+` FROM news
		 WHERE status = $1
		 ORDER BY published_at DESC NULLS LAST, id DESC
		 LIMIT $2 OFFSET $3`,
		models.NewsStatusPublished, limit, offset,
	)
	if err != nil {
		return nil, 0, err
	}
	list, err := r.collect(rows)
	return list, total, err
}

// ListAll — административная выборка без фильтра по статусу.
func (r *NewsRepository) ListAll(ctx context.Context, limit, offset int) ([]*models.News, int, error) {
	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM news`).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.db.Query(ctx,
		`SELECT `+newsColumns+` FROM news ORDER BY created_at DESC LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return nil, 0, err
	}
	list, err := r.collect(rows)
	return list, total, err
}

// GetByID — чтение без инкремента счётчика (для внутренних проверок
// и возврата строки после обновления).
func (r *NewsRepository) GetByID(ctx context.Context, id int) (*models.News, error) {
	n, err := scanNews(r.db.QueryRow(ctx, `SELECT `+newsColumns+` FROM news WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return n, err
}

// IncrementViewsByID атомарно увеличивает счётчик просмотров и возвращает
// строку после инкремента. Одним UPDATE ... RETURNING — конкурентные чтения
// не теряют инкременты. (nil, nil) — если новости нет.
func (r *NewsRepository) IncrementViewsByID(ctx context.Context, id int) (*models.News, error) {
	query := `UPDATE news SET views_count = views_count + 1 WHERE id = $1 RETURNING ` + newsColumns
	n, err := scanNews(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return n, err
}

func (r *NewsRepository) IncrementViewsBySlug(ctx context.Context, slug string) (*models.News, error) {
	query := `UPDATE news SET views_count = views_count + 1 WHERE slug = $1 RETURNING ` + newsColumns
	n, err := scanNews(r.db.QueryRow(ctx, query, slug))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return n, err
}

// ListByCategory фильтрует опубликованные по id или slug категории.
func (r *NewsRepository) ListByCategory(ctx context.Context, categoryID *int, categorySlug *string, limit, offset int) ([]*models.News, int, error) {
	where := `n.status = $1`
	args := []interface{}{models.NewsStatusPublished}

	if categoryID != nil {
		where += fmt.Sprintf(" AND n.category_id = $%d", len(args)+1)
		args = append(args, *categoryID)
	} else if categorySlug != nil {
		where += fmt.Sprintf(" AND n.category_id = (SELECT id FROM categories WHERE slug = $%d)", len(args)+1)
		args = append(args, *categorySlug)
	}

	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM news n WHERE `+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + prefixColumns("n") + ` FROM news n WHERE ` + where +
		fmt.Sprintf(" ORDER BY n.published_at DESC NULLS LAST, n.id DESC LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	list, err := r.collect(rows)
	return list, total, err
}

// Featured — опубликованные по убыванию просмотров.
func (r *NewsRepository) Featured(ctx context.Context, limit int) ([]*models.News, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+newsColumns+` FROM news WHERE status = $1 ORDER BY views_count DESC LIMIT $2`,
		models.NewsStatusPublished, limit,
	)
	if err != nil {
		return nil, err
	}
	return r.collect(rows)
}

// Search — регистронезависимый поиск подстроки в заголовке или тексте;
// всегда только опубликованные, опционально в рамках категории.
func (r *NewsRepository) Search(ctx context.Context, query string, categoryID *int, limit, offset int) ([]*models.News, int, error) {
	where := `status = $1 AND (title ILIKE '%' || $2 || '%' OR content ILIKE '%' || $2 || '%')`
	args := []interface{}{models.NewsStatusPublished, query}

	if categoryID != nil {
		where += fmt.Sprintf(" AND category_id = $%d", len(args)+1)
		args = append(args, *categoryID)
	}

	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM news WHERE `+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	sql := `SELECT ` + newsColumns + ` FROM news WHERE ` + where +
		fmt.Sprintf(" ORDER BY published_at DESC NULLS LAST, id DESC LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, err
	}
	list, err := r.collect(rows)
	return list, total, err
}

func (r *NewsRepository) Exists(ctx context.Context, id int) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM news WHERE id = $1)`, id).Scan(&exists)
	return exists, err
}

func (r *NewsRepository) SlugExists(ctx context.Context, slug string, excludeID int) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM news WHERE slug = $1 AND id <> $2)`,
		slug, excludeID,
	).Scan(&exists)
	return exists, err
}

// HasByCategory — есть ли новости, ссылающиеся на категорию
// (защита от удаления категории).
func (r *NewsRepository) HasByCategory(ctx context.Context, categoryID int) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM news WHERE category_id = $1)`, categoryID).Scan(&exists)
	return exists, err
}

func (r *NewsRepository) UpdateFields(ctx context.Context, id int, input *models.UpdateNewsRequest) error {
	query := `UPDATE news SET`
	var args []interface{}
	argNum := 1

	add := func(col string, val interface{}) {
		query += fmt.Sprintf(" %s = $%d,", col, argNum)
		args = append(args, val)
		argNum++
	}

	if input.Title != nil {
		add("title", *input.Title)
	}
	if input.Slug != nil {
		add("slug", *input.Slug)
	}
	if input.Content != nil {
		add("content", *input.Content)
	}
	if input.Excerpt.Set {
		add("excerpt", input.Excerpt.Ptr())
	}
	if input.FeaturedImage.Set {
		add("featured_image", input.FeaturedImage.Ptr())
	}
	if input.CategoryID != nil {
		add("category_id", *input.CategoryID)
	}
	if input.Status != nil {
		add("status", *input.Status)
	}
	if input.PublishedAt.Set {
		add("published_at", input.PublishedAt.Ptr())
	}

	query += fmt.Sprintf(" updated_at = now() WHERE id = $%d", argNum)
	args = append(args, id)

	_, err := r.db.Exec(ctx, query, args...)
	if _, ok := uniqueViolation(err); ok {
		return apperrors.Conflictf("новость с таким slug уже существует")
	}
	return err
}

func (r *NewsRepository) Delete(ctx context.Context, id int) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM news WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// prefixColumns возвращает список колонок новости с алиасом таблицы.
func prefixColumns(alias string) string {
	return alias + ".id, " + alias + ".title, " + alias + ".slug, " + alias + ".content, " +
		alias + ".excerpt, " + alias + ".featured_image, " + alias + ".category_id, " +
		alias + ".author_id, " + alias + ".status, " + alias + ".views_count, " +
		alias + ".published_at, " + alias + ".created_at, " + alias + ".updated_at"
}
