package services

import (
	"context"
	"newsportal/internal/apperrors"
	"newsportal/internal/logger"
	"newsportal/internal/models"

	"go.uber.org/zap"
)

type CommentRepo interface {
	Create(ctx context.Context, c *models.Comment) error
	GetByID(ctx context.Context, id int) (*models.Comment, error)
	ListApprovedByNews(ctx context.Context, newsID, limit, offset int) ([]*models.CommentWithAuthor, int, error)
	ListAll(ctx context.Context, limit, offset int) ([]*models.CommentModeration, int, error)
	ListPending(ctx context.Context, limit, offset int) ([]*models.CommentModeration, int, error)
	UpdateFields(ctx context.Context, id int, input *models.UpdateCommentRequest) error
	SetStatus(ctx context.Context, id int, status string) (bool, error)
	Delete(ctx context.Context, id int) (bool, error)
}

// CommentNewsRepo / CommentUserRepo — проверки ссылок при создании.
type CommentNewsRepo interface {
	Exists(ctx context.Context, id int) (bool, error)
}

type CommentUserRepo interface {
	Exists(ctx context.Context, id int) (bool, error)
}

type CommentService struct {
	repo     CommentRepo
	newsRepo CommentNewsRepo
	userRepo CommentUserRepo
}

func NewCommentService(repo CommentRepo, newsRepo CommentNewsRepo, userRepo CommentUserRepo) *CommentService {
	return &CommentService{repo: repo, newsRepo: newsRepo, userRepo: userRepo}
}

// Create всегда создаёт комментарий в статусе pending — статус из
// запроса игнорируется.
func (s *CommentService) Create(ctx context.Context, req *models.CreateCommentRequest) (*models.Comment, error) {
	log := logger.WithCtx(ctx)
	log.Info("Сервис: создание комментария", zap.Int("news_id", req.NewsID), zap.Int("user_id", req.UserID))

	if exists, err := s.userRepo.Exists(ctx, req.UserID); err != nil {
		return nil, err
	} else if !exists {
		return nil, apperrors.NotFoundf("пользователь с id=%d не найден", req.UserID)
	}
	if exists, err := s.newsRepo.Exists(ctx, req.NewsID); err != nil {
		return nil, err
	} else if !exists {
		return nil, apperrors.NotFoundf("новость с id=%d не найдена", req.NewsID)
	}

	c := &models.Comment{
		Content: req.Content,
		NewsID:  req.NewsID,
		UserID:  req.UserID,
		Status:  models.CommentStatusPending,
	}
	if err := s.repo.Create(ctx, c); err != nil {
		log.Error("Сервис: ошибка создания комментария", zap.Error(err))
		return nil, err
	}

	log.Info("Сервис: комментарий создан", zap.Int("comment_id", c.ID))
	return c, nil
}

func (s *CommentService) ListByNews(ctx context.Context, req *models.CommentsByNewsRequest) ([]*models.CommentWithAuthor, int, error) {
	req.Normalize()
	return s.repo.ListApprovedByNews(ctx, req.NewsID, req.Limit, req.Offset)
}

func (s *CommentService) ListAll(ctx context.Context, p models.Pagination) ([]*models.CommentModeration, int, error) {
	p.Normalize()
	return s.repo.ListAll(ctx, p.Limit, p.Offset)
}

func (s *CommentService) ListPending(ctx context.Context, p models.Pagination) ([]*models.CommentModeration, int, error) {
	p.Normalize()
	return s.repo.ListPending(ctx, p.Limit, p.Offset)
}

func (s *CommentService) Update(ctx context.Context, req *models.UpdateCommentRequest) (*models.Comment, error) {
	log := logger.WithCtx(ctx)
	log.Info("Сервис: обновление комментария", zap.Int("comment_id", req.ID))

	existing, err := s.repo.GetByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, apperrors.NotFoundf("комментарий с id=%d не найден", req.ID)
	}

	if err := s.repo.UpdateFields(ctx, req.ID, req); err != nil {
		log.Error("Сервис: ошибка обновления комментария", zap.Error(err), zap.Int("comment_id", req.ID))
		return nil, err
	}
	return s.repo.GetByID(ctx, req.ID)
}

// Moderate переводит комментарий в approved или rejected; повторная
// модерация (в обе стороны) допустима.
func (s *CommentService) Moderate(ctx context.Context, id int, status string) (*models.Comment, error) {
	log := logger.WithCtx(ctx)
	log.Info("Сервис: модерация комментария", zap.Int("comment_id", id), zap.String("status", status))

	ok, err := s.repo.SetStatus(ctx, id, status)
	if err != nil {
		log.Error("Сервис: ошибка модерации", zap.Error(err), zap.Int("comment_id", id))
		return nil, err
	}
	if !ok {
		return nil, apperrors.NotFoundf("комментарий с id=%d не найден", id)
	}
	return s.repo.GetByID(ctx, id)
}

func (s *CommentService) Delete(ctx context.Context, id int) (bool, error) {
	log := logger.WithCtx(ctx)
	log.Info("Сервис: удаление комментария", zap.Int("comment_id", id))
	return s.repo.Delete(ctx, id)
}
