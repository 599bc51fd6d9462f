package repository

import (
	"context"
	"errors"
	"fmt"
	"newsportal/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CommentRepository struct {
	db *pgxpool.Pool
}

func NewCommentRepository(db *pgxpool.Pool) *CommentRepository {
	return &CommentRepository{db: db}
}

const commentColumns = `id, content, news_id, user_id, status, created_at, updated_at`

func scanComment(row pgx.Row) (*models.Comment, error) {
	var c models.Comment
	err := row.Scan(&c.ID, &c.Content, &c.NewsID, &c.UserID, &c.Status, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CommentRepository) Create(ctx context.Context, c *models.Comment) error {
	query := `
	INSERT INTO comments (content, news_id, user_id, status)
	VALUES ($1, $2, $3, $4)
	RETURNING id, created_at, updated_at`
	return r.db.QueryRow(ctx, query, c.Content, c.NewsID, c.UserID, c.Status).
		Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
}

func (r *CommentRepository) GetByID(ctx context.Context, id int) (*models.Comment, error) {
	c, err := scanComment(r.db.QueryRow(ctx, `SELECT `+commentColumns+` FROM comments WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return c, err
}

// ListApprovedByNews — одобренные комментарии новости с публичным
// профилем автора, свежие выше. Неизвестный news_id даёт пустой список.
func (r *CommentRepository) ListApprovedByNews(ctx context.Context, newsID, limit, offset int) ([]*models.CommentWithAuthor, int, error) {
	var total int
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM comments WHERE news_id = $1 AND status = $2`,
		newsID, models.CommentStatusApproved,
	).Scan(&total)
	if err != nil {
		return nil, 0, err
	}

	query := `
	SELECT c.id, c.content, c.news_id, c.user_id, c.status, c.created_at, c.updated_at,
	       u.id, u.username, u.full_name, u.avatar
	FROM comments c
	JOIN users u ON u.id = c.user_id
	WHERE c.news_id = $1 AND c.status = $2
	ORDER BY c.created_at DESC
	LIMIT $3 OFFSET $4`

	rows, err := r.db.Query(ctx, query, newsID, models.CommentStatusApproved, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var list []*models.CommentWithAuthor
	for rows.Next() {
		var c models.CommentWithAuthor
		if err := rows.Scan(
			&c.ID, &c.Content, &c.NewsID, &c.UserID, &c.Status, &c.CreatedAt, &c.UpdatedAt,
			&c.Author.ID, &c.Author.Username, &c.Author.FullName, &c.Author.Avatar,
		); err != nil {
			return nil, 0, err
		}
		list = append(list, &c)
	}
	return list, total, rows.Err()
}

// ListAll — все комментарии для модераторской разборки: сначала pending,
// затем approved и rejected, внутри группы — свежие выше.
func (r *CommentRepository) ListAll(ctx context.Context, limit, offset int) ([]*models.CommentModeration, int, error) {
	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM comments`).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `
	SELECT c.id, c.content, c.news_id, c.user_id, c.status, c.created_at, c.updated_at,
	       u.id, u.username, u.email, u.full_name, u.avatar,
	       n.id, n.title, n.slug
	FROM comments c
	JOIN users u ON u.id = c.user_id
	JOIN news n ON n.id = c.news_id
	ORDER BY CASE c.status
	           WHEN 'pending' THEN 0
	           WHEN 'approved' THEN 1
	           ELSE 2
	         END,
	         c.created_at DESC
	LIMIT $1 OFFSET $2`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	list, err := collectModeration(rows)
	return list, total, err
}

// ListPending — только pending, с email автора для связи модератора.
func (r *CommentRepository) ListPending(ctx context.Context, limit, offset int) ([]*models.CommentModeration, int, error) {
	var total int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM comments WHERE status = $1`, models.CommentStatusPending).Scan(&total)
	if err != nil {
		return nil, 0, err
	}

	query := `
	SELECT c.id, c.content, c.news_id, c.user_id, c.status, c.created_at, c.updated_at,
	       u.id, u.username, u.email, u.full_name, u.avatar,
	       n.id, n.title, n.slug
	FROM comments c
	JOIN users u ON u.id = c.user_id
	JOIN news n ON n.id = c.news_id
	WHERE c.status = $1
	ORDER BY c.created_at DESC
	LIMIT $2 OFFSET $3`

	rows, err := r.db.Query(ctx, query, models.CommentStatusPending, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	list, err := collectModeration(rows)
	return list, total, err
}

func collectModeration(rows pgx.Rows) ([]*models.CommentModeration, error) {
	defer rows.Close()
	var list []*models.CommentModeration
	for rows.Next() {
		var c models.CommentModeration
		if err := rows.Scan(
			&c.ID, &c.Content, &c.NewsID, &c.UserID, &c.Status, &c.CreatedAt, &c.UpdatedAt,
			&c.Author.ID, &c.Author.Username, &c.Author.Email, &c.Author.FullName, &c.Author.Avatar,
			&c.News.ID, &c.News.Title, &c.News.Slug,
		); err != nil {
			return nil, err
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

func (r *CommentRepository) UpdateFields(ctx context.Context, id int, input *models.UpdateCommentRequest) error {
	query := `UPDATE comments SET`
	var args []interface{}
	argNum := 1

	add := func(col string, val interface{}) {
		query += fmt.Sprintf(" %s = $%d,", col, argNum)
		args = append(args, val)
		argNum++
	}

	if input.Content != nil {
		add("content", *input.Content)
	}
	if input.Status != nil {
		add("status", *input.Status)
	}

	query += fmt.Sprintf(" updated_at = now() WHERE id = $%d", argNum)
	args = append(args, id)

	_, err := r.db.Exec(ctx, query, args...)
	return err
}

// SetStatus — модерация; повторная модерация в любую сторону допустима.
func (r *CommentRepository) SetStatus(ctx context.Context, id int, status string) (bool, error) {
	tag, err := r.db.Exec(ctx,
		`UPDATE comments SET status = $1, updated_at = now() WHERE id = $2`,
		status, id,
	)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *CommentRepository) Delete(ctx context.Context, id int) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM comments WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// DeleteByNews — каскад на уровне приложения при удалении новости.
func (r *CommentRepository) DeleteByNews(ctx context.Context, newsID int) error {
	_, err := r.db.Exec(ctx, `DELETE FROM comments WHERE news_id = $1`, newsID)
	return err
}
