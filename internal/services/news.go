package services

import (
	"context"
	"newsportal/internal/apperrors"
	"newsportal/internal/logger"
	"newsportal/internal/models"

	"go.uber.org/zap"
)

const defaultFeaturedLimit = 5

type NewsRepo interface {
	Create(ctx context.Context, n *models.News) error
	ListPublished(ctx context.Context, limit, offset int) ([]*models.News, int, error)
	ListAll(ctx context.Context, limit, offset int) ([]*models.News, int, error)
	GetByID(ctx context.Context, id int) (*models.News, error)
	IncrementViewsByID(ctx context.Context, id int) (*models.News, error)
	IncrementViewsBySlug(ctx context.Context, slug string) (*models.News, error)
	ListByCategory(ctx context.Context, categoryID *int, categorySlug *string, limit, offset int) ([]*models.News, int, error)
	Featured(ctx context.Context, limit int) ([]*models.News, error)
	Search(ctx context.Context, query string, categoryID *int, limit, offset int) ([]*models.News, int, error)
	Exists(ctx context.Context, id int) (bool, error)
	SlugExists(ctx context.Context, slug string, excludeID int) (bool, error)
	UpdateFields(ctx context.Context, id int, input *models.UpdateNewsRequest) error
	Delete(ctx context.Context, id int) (bool, error)
}

// NewsCategoryRepo и NewsAuthorRepo — проверки существования ссылок
// при создании/обновлении новости.
type NewsCategoryRepo interface {
	Exists(ctx context.Context, id int) (bool, error)
}

type NewsAuthorRepo interface {
	Exists(ctx context.Context, id int) (bool, error)
}

// NewsCommentRepo — каскадное удаление комментариев вместе с новостью.
type NewsCommentRepo interface {
	DeleteByNews(ctx context.Context, newsID int) error
}

type NewsService struct {
	repo         NewsRepo
	categoryRepo NewsCategoryRepo
	userRepo     NewsAuthorRepo
	commentRepo  NewsCommentRepo
}

func NewNewsService(repo NewsRepo, categoryRepo NewsCategoryRepo, userRepo NewsAuthorRepo, commentRepo NewsCommentRepo) *NewsService {
	return &NewsService{
		repo:         repo,
		categoryRepo: categoryRepo,
		userRepo:     userRepo,
		commentRepo:  commentRepo,
	}
}

func (s *NewsService) Create(ctx context.Context, req *models.CreateNewsRequest) (*models.News, error) {
	log := logger.WithCtx(ctx)
	log.Info("Сервис: создание новости", zap.String("slug", req.Slug), zap.String("title", req.Title))

	if exists, err := s.categoryRepo.Exists(ctx, req.CategoryID); err != nil {
		return nil, err
	} else if !exists {
		return nil, apperrors.NotFoundf("категория с id=%d не найдена", req.CategoryID)
	}
	if exists, err := s.userRepo.Exists(ctx, req.AuthorID); err != nil {
		return nil, err
	} else if !exists {
		return nil, apperrors.NotFoundf("автор с id=%d не найден", req.AuthorID)
	}
	if taken, err := s.repo.SlugExists(ctx, req.Slug, 0); err != nil {
		return nil, err
	} else if taken {
		log.Warn("Сервис: slug новости занят", zap.String("slug", req.Slug))
		return nil, apperrors.Conflictf("новость со slug %q уже существует", req.Slug)
	}

	status := req.Status
	if status == "" {
		status = models.NewsStatusDraft
	}

	n := &models.News{
		Title:         req.Title,
		Slug:          req.Slug,
		Content:       req.Content,
		Excerpt:       req.Excerpt,
		FeaturedImage: req.FeaturedImage,
		CategoryID:    req.CategoryID,
		AuthorID:      req.AuthorID,
		Status:        status,
		PublishedAt:   req.PublishedAt,
	}
	if err := s.repo.Create(ctx, n); err != nil {
		log.Error("Сервис: ошибка создания новости", zap.Error(err))
		return nil, err
	}

	log.Info("Сервис: новость создана", zap.Int("news_id", n.ID))
	return n, nil
}

func (s *NewsService) ListPublished(ctx context.Context, p models.Pagination) ([]*models.News, int, error) {
	p.Normalize()
	return s.repo.ListPublished(ctx, p.Limit, p.Offset)
}

func (s *NewsService) ListAll(ctx context.Context, p models.Pagination) ([]*models.News, int, error) {
	p.Normalize()
	return s.repo.ListAll(ctx, p.Limit, p.Offset)
}

// GetByID — успешное чтение засчитывает ровно один просмотр,
// независимо от статуса новости. (nil, nil) — если новости нет.
func (s *NewsService) GetByID(ctx context.Context, id int) (*models.News, error) {
	n, err := s.repo.IncrementViewsByID(ctx, id)
	if err != nil {
		logger.WithCtx(ctx).Error("Сервис: ошибка чтения новости", zap.Int("news_id", id), zap.Error(err))
	}
	return n, err
}

func (s *NewsService) GetBySlug(ctx context.Context, slug string) (*models.News, error) {
	n, err := s.repo.IncrementViewsBySlug(ctx, slug)
	if err != nil {
		logger.WithCtx(ctx).Error("Сервис: ошибка чтения новости по slug", zap.String("slug", slug), zap.Error(err))
	}
	return n, err
}

func (s *NewsService) ListByCategory(ctx context.Context, req *models.NewsByCategoryRequest) ([]*models.News, int, error) {
	req.Normalize()
	return s.repo.ListByCategory(ctx, req.CategoryID, req.CategorySlug, req.Limit, req.Offset)
}

func (s *NewsService) Featured(ctx context.Context, limit int) ([]*models.News, error) {
	if limit <= 0 {
		limit = defaultFeaturedLimit
	}
	return s.repo.Featured(ctx, limit)
}

func (s *NewsService) Search(ctx context.Context, req *models.SearchNewsRequest) ([]*models.News, int, error) {
	req.Normalize()
	logger.WithCtx(ctx).Debug("Сервис: поиск новостей", zap.Int("query_len", len(req.Query)))
	return s.repo.Search(ctx, req.Query, req.CategoryID, req.Limit, req.Offset)
}

func (s *NewsService) Update(ctx context.Context, req *models.UpdateNewsRequest) (*models.News, error) {
	log := logger.WithCtx(ctx)
	log.Info("Сервис: обновление новости", zap.Int("news_id", req.ID))

	exists, err := s.repo.Exists(ctx, req.ID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperrors.NotFoundf("новость с id=%d не найдена", req.ID)
	}

	if req.CategoryID != nil {
		if ok, err := s.categoryRepo.Exists(ctx, *req.CategoryID); err != nil {
			return nil, err
		} else if !ok {
			return nil, apperrors.NotFoundf("категория с id=%d не найдена", *req.CategoryID)
		}
	}

	// Собственный текущий slug — не конфликт
	if req.Slug != nil {
		if taken, err := s.repo.SlugExists(ctx, *req.Slug, req.ID); err != nil {
			return nil, err
		} else if taken {
			log.Warn("Сервис: slug занят другой новостью", zap.String("slug", *req.Slug))
			return nil, apperrors.Conflictf("slug %q уже принадлежит другой новости", *req.Slug)
		}
	}

	if err := s.repo.UpdateFields(ctx, req.ID, req); err != nil {
		log.Error("Сервис: ошибка обновления новости", zap.Error(err), zap.Int("news_id", req.ID))
		return nil, err
	}

	log.Info("Сервис: новость обновлена", zap.Int("news_id", req.ID))
	return s.repo.GetByID(ctx, req.ID)
}

// Delete удаляет сначала комментарии новости, затем саму новость —
// каскад на уровне приложения, как и задумано схемой.
func (s *NewsService) Delete(ctx context.Context, id int) (bool, error) {
	log := logger.WithCtx(ctx)
	log.Info("Сервис: удаление новости", zap.Int("news_id", id))

	exists, err := s.repo.Exists(ctx, id)
	if err != nil {
		return false, err
	}
	if !exists {
		return false, nil
	}

	if err := s.commentRepo.DeleteByNews(ctx, id); err != nil {
		log.Error("Сервис: ошибка каскадного удаления комментариев", zap.Error(err), zap.Int("news_id", id))
		return false, err
	}

	ok, err := s.repo.Delete(ctx, id)
	if err != nil {
		log.Error("Сервис: ошибка удаления новости", zap.Error(err), zap.Int("news_id", id))
		return false, err
	}

	log.Info("Сервис: новость удалена", zap.Int("news_id", id))
	return ok, nil
}
