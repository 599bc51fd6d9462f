package services

import (
	"context"
	"errors"
	"newsportal/internal/apperrors"
	"newsportal/internal/models"
	"testing"
)

type mockCategoryRepo struct {
	categories map[int]*models.Category
	nextID     int
}

func newMockCategoryRepo() *mockCategoryRepo {
	return &mockCategoryRepo{categories: make(map[int]*models.Category), nextID: 1}
}

func (m *mockCategoryRepo) Create(_ context.Context, c *models.Category) error {
	c.ID = m.nextID
	m.nextID++
	m.categories[c.ID] = c
	return nil
}

func (m *mockCategoryRepo) GetAll(_ context.Context) ([]*models.Category, error) {
	out := make([]*models.Category, 0, len(m.categories))
	for _, c := range m.categories {
		out = append(out, c)
	}
	return out, nil
}

func (m *mockCategoryRepo) GetByID(_ context.Context, id int) (*models.Category, error) {
	return m.categories[id], nil
}

func (m *mockCategoryRepo) GetBySlug(_ context.Context, slug string) (*models.Category, error) {
	for _, c := range m.categories {
		if c.Slug == slug {
			return c, nil
		}
	}
	return nil, nil
}

func (m *mockCategoryRepo) Exists(_ context.Context, id int) (bool, error) {
	_, ok := m.categories[id]
	return ok, nil
}

func (m *mockCategoryRepo) SlugExists(_ context.Context, slug string, excludeID int) (bool, error) {
	for _, c := range m.categories {
		if c.Slug == slug && c.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockCategoryRepo) UpdateFields(_ context.Context, id int, input *models.UpdateCategoryRequest) error {
	c, ok := m.categories[id]
	if !ok {
		return errors.New("нет такой категории")
	}
	if input.Name != nil {
		c.Name = *input.Name
	}
	if input.Slug != nil {
		c.Slug = *input.Slug
	}
	return nil
}

func (m *mockCategoryRepo) Delete(_ context.Context, id int) (bool, error) {
	if _, ok := m.categories[id]; !ok {
		return false, nil
	}
	delete(m.categories, id)
	return true, nil
}

// Заглушка для проверки привязанных новостей
type mockCategoryNewsRepo struct {
	referenced map[int]bool
}

func (m *mockCategoryNewsRepo) HasByCategory(_ context.Context, categoryID int) (bool, error) {
	return m.referenced[categoryID], nil
}

func TestCreateCategory_SlugConflict(t *testing.T) {
	repo := newMockCategoryRepo()
	service := NewCategoryService(repo, &mockCategoryNewsRepo{referenced: map[int]bool{}})

	_, err := service.Create(context.Background(), &models.CreateCategoryRequest{Name: "Спорт", Slug: "sport"})
	if err != nil {
		t.Fatalf("ошибка создания категории: %v", err)
	}

	_, err = service.Create(context.Background(), &models.CreateCategoryRequest{Name: "Спорт 2", Slug: "sport"})
	if !errors.Is(err, apperrors.ErrConflict) {
		t.Fatalf("ожидался конфликт по slug, получили: %v", err)
	}
}

func TestUpdateCategory_OwnSlugNotConflict(t *testing.T) {
	repo := newMockCategoryRepo()
	service := NewCategoryService(repo, &mockCategoryNewsRepo{referenced: map[int]bool{}})

	c, err := service.Create(context.Background(), &models.CreateCategoryRequest{Name: "Спорт", Slug: "sport"})
	if err != nil {
		t.Fatalf("ошибка создания категории: %v", err)
	}

	slug := "sport"
	name := "Спорт и здоровье"
	updated, err := service.Update(context.Background(), &models.UpdateCategoryRequest{ID: c.ID, Name: &name, Slug: &slug})
	if err != nil {
		t.Fatalf("обновление на собственный slug дало ошибку: %v", err)
	}
	if updated.Name != name {
		t.Fatalf("имя не обновилось: %q", updated.Name)
	}
}

func TestUpdateCategory_NotFound(t *testing.T) {
	repo := newMockCategoryRepo()
	service := NewCategoryService(repo, &mockCategoryNewsRepo{referenced: map[int]bool{}})

	_, err := service.Update(context.Background(), &models.UpdateCategoryRequest{ID: 99})
	if !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("ожидалась ошибка not found, получили: %v", err)
	}
}

func TestDeleteCategory_BlockedByNews(t *testing.T) {
	repo := newMockCategoryRepo()
	newsRepo := &mockCategoryNewsRepo{referenced: map[int]bool{}}
	service := NewCategoryService(repo, newsRepo)

	c, err := service.Create(context.Background(), &models.CreateCategoryRequest{Name: "Спорт", Slug: "sport"})
	if err != nil {
		t.Fatalf("ошибка создания категории: %v", err)
	}
	newsRepo.referenced[c.ID] = true

	ok, err := service.Delete(context.Background(), c.ID)
	if err != nil {
		t.Fatalf("неожиданная ошибка: %v", err)
	}
	if ok {
		t.Fatal("удаление категории с новостями должно быть отклонено")
	}
	if _, exists := repo.categories[c.ID]; !exists {
		t.Fatal("категория не должна была удалиться")
	}
}

func TestDeleteCategory_Empty(t *testing.T) {
	repo := newMockCategoryRepo()
	service := NewCategoryService(repo, &mockCategoryNewsRepo{referenced: map[int]bool{}})

	c, err := service.Create(context.Background(), &models.CreateCategoryRequest{Name: "Спорт", Slug: "sport"})
	if err != nil {
		t.Fatalf("ошибка создания категории: %v", err)
	}

	ok, err := service.Delete(context.Background(), c.ID)
	if err != nil || !ok {
		t.Fatalf("ожидалось успешное удаление, ok=%v err=%v", ok, err)
	}
}
