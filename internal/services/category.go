package services

import (
	"context"
	"newsportal/internal/apperrors"
	"newsportal/internal/logger"
	"newsportal/internal/models"

	"go.uber.org/zap"
)

type CategoryRepo interface {
	Create(ctx context.Context, c *models.Category) error
	GetAll(ctx context.Context) ([]*models.Category, error)
	GetByID(ctx context.Context, id int) (*models.Category, error)
	GetBySlug(ctx context.Context, slug string) (*models.Category, error)
	Exists(ctx context.Context, id int) (bool, error)
	SlugExists(ctx context.Context, slug string, excludeID int) (bool, error)
	UpdateFields(ctx context.Context, id int, input *models.UpdateCategoryRequest) error
	Delete(ctx context.Context, id int) (bool, error)
}

// CategoryNewsRepo — часть репозитория новостей, нужная для защиты
// от удаления категории с привязанными новостями.
type CategoryNewsRepo interface {
	HasByCategory(ctx context.Context, categoryID int) (bool, error)
}

type CategoryService struct {
	repo     CategoryRepo
	newsRepo CategoryNewsRepo
}

func NewCategoryService(repo CategoryRepo, newsRepo CategoryNewsRepo) *CategoryService {
	return &CategoryService{repo: repo, newsRepo: newsRepo}
}

func (s *CategoryService) Create(ctx context.Context, req *models.CreateCategoryRequest) (*models.Category, error) {
	log := logger.WithCtx(ctx)
	log.Info("Сервис: создание категории", zap.String("slug", req.Slug))

	if exists, err := s.repo.SlugExists(ctx, req.Slug, 0); err != nil {
		return nil, err
	} else if exists {
		log.Warn("Сервис: slug категории занят", zap.String("slug", req.Slug))
		return nil, apperrors.Conflictf("категория со slug %q уже существует", req.Slug)
	}

	c := &models.Category{
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
	}
	if err := s.repo.Create(ctx, c); err != nil {
		log.Error("Сервис: ошибка создания категории", zap.Error(err))
		return nil, err
	}

	log.Info("Сервис: категория создана", zap.Int("category_id", c.ID))
	return c, nil
}

func (s *CategoryService) List(ctx context.Context) ([]*models.Category, error) {
	return s.repo.GetAll(ctx)
}

func (s *CategoryService) GetByID(ctx context.Context, id int) (*models.Category, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *CategoryService) GetBySlug(ctx context.Context, slug string) (*models.Category, error) {
	return s.repo.GetBySlug(ctx, slug)
}

func (s *CategoryService) Update(ctx context.Context, req *models.UpdateCategoryRequest) (*models.Category, error) {
	log := logger.WithCtx(ctx)
	log.Info("Сервис: обновление категории", zap.Int("category_id", req.ID))

	exists, err := s.repo.Exists(ctx, req.ID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperrors.NotFoundf("категория с id=%d не найдена", req.ID)
	}

	// Обновление на собственный текущий slug — не конфликт
	if req.Slug != nil {
		if taken, err := s.repo.SlugExists(ctx, *req.Slug, req.ID); err != nil {
			return nil, err
		} else if taken {
			log.Warn("Сервис: slug занят другой категорией", zap.String("slug", *req.Slug))
			return nil, apperrors.Conflictf("slug %q уже принадлежит другой категории", *req.Slug)
		}
	}

	if err := s.repo.UpdateFields(ctx, req.ID, req); err != nil {
		log.Error("Сервис: ошибка обновления категории", zap.Error(err), zap.Int("category_id", req.ID))
		return nil, err
	}

	log.Info("Сервис: категория обновлена", zap.Int("category_id", req.ID))
	return s.repo.GetByID(ctx, req.ID)
}

// Delete возвращает false без удаления, если категории нет или на неё
// ссылается хотя бы одна новость. Проверка идёт до DELETE.
func (s *CategoryService) Delete(ctx context.Context, id int) (bool, error) {
	log := logger.WithCtx(ctx)
	log.Info("Сервис: удаление категории", zap.Int("category_id", id))

	referenced, err := s.newsRepo.HasByCategory(ctx, id)
	if err != nil {
		return false, err
	}
	if referenced {
		log.Warn("Сервис: категория используется новостями, удаление отклонено", zap.Int("category_id", id))
		return false, nil
	}

	ok, err := s.repo.Delete(ctx, id)
	if err != nil {
		log.Error("Сервис: ошибка удаления категории", zap.Error(err), zap.Int("category_id", id))
		return false, err
	}
	if ok {
		log.Info("Сервис: категория удалена", zap.Int("category_id", id))
	}
	return ok, nil
}
