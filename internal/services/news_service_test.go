package services

import (
	"context"
	"errors"
	"newsportal/internal/apperrors"
	"newsportal/internal/models"
	"sort"
	"strings"
	"testing"
)

type mockNewsRepo struct {
	news   map[int]*models.News
	nextID int
	events *[]string
}

func newMockNewsRepo() *mockNewsRepo {
	return &mockNewsRepo{news: make(map[int]*models.News), nextID: 1}
}

func (m *mockNewsRepo) Create(_ context.Context, n *models.News) error {
	n.ID = m.nextID
	m.nextID++
	m.news[n.ID] = n
	return nil
}

func (m *mockNewsRepo) ListPublished(_ context.Context, limit, offset int) ([]*models.News, int, error) {
	out := make([]*models.News, 0)
	for _, n := range m.news {
		if n.Status == models.NewsStatusPublished {
			out = append(out, n)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, len(out), nil
}

func (m *mockNewsRepo) ListAll(_ context.Context, limit, offset int) ([]*models.News, int, error) {
	out := make([]*models.News, 0, len(m.news))
	for _, n := range m.news {
		out = append(out, n)
	}
	return out, len(out), nil
}

func (m *mockNewsRepo) GetByID(_ context.Context, id int) (*models.News, error) {
	return m.news[id], nil
}

func (m *mockNewsRepo) IncrementViewsByID(_ context.Context, id int) (*models.News, error) {
	n, ok := m.news[id]
	if !ok {
		return nil, nil
	}
	n.ViewsCount++
	return n, nil
}

func (m *mockNewsRepo) IncrementViewsBySlug(_ context.Context, slug string) (*models.News, error) {
	for _, n := range m.news {
		if n.Slug == slug {
			n.ViewsCount++
			return n, nil
		}
	}
	return nil, nil
}

func (m *mockNewsRepo) ListByCategory(_ context.Context, categoryID *int, categorySlug *string, limit, offset int) ([]*models.News, int, error) {
	out := make([]*models.News, 0)
	for _, n := range m.news {
		if categoryID != nil && n.CategoryID == *categoryID && n.Status == models.NewsStatusPublished {
			out = append(out, n)
		}
	}
	return out, len(out), nil
}

func (m *mockNewsRepo) Featured(_ context.Context, limit int) ([]*models.News, error) {
	out := make([]*models.News, 0)
	for _, n := range m.news {
		if n.Status == models.NewsStatusPublished {
			out = append(out, n)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ViewsCount > out[j].ViewsCount })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *mockNewsRepo) Search(_ context.Context, query string, categoryID *int, limit, offset int) ([]*models.News, int, error) {
	out := make([]*models.News, 0)
	for _, n := range m.news {
		if n.Status != models.NewsStatusPublished {
			continue
		}
		if strings.Contains(strings.ToLower(n.Title), strings.ToLower(query)) ||
			strings.Contains(strings.ToLower(n.Content), strings.ToLower(query)) {
			out = append(out, n)
		}
	}
	return out, len(out), nil
}

func (m *mockNewsRepo) Exists(_ context.Context, id int) (bool, error) {
	_, ok := m.news[id]
	return ok, nil
}

func (m *mockNewsRepo) SlugExists(_ context.Context, slug string, excludeID int) (bool, error) {
	for _, n := range m.news {
		if n.Slug == slug && n.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockNewsRepo) UpdateFields(_ context.Context, id int, input *models.UpdateNewsRequest) error {
	n, ok := m.news[id]
	if !ok {
		return errors.New("нет такой новости")
	}
	if input.Title != nil {
		n.Title = *input.Title
	}
	if input.Slug != nil {
		n.Slug = *input.Slug
	}
	if input.Status != nil {
		n.Status = *input.Status
	}
	return nil
}

func (m *mockNewsRepo) Delete(_ context.Context, id int) (bool, error) {
	if _, ok := m.news[id]; !ok {
		return false, nil
	}
	delete(m.news, id)
	if m.events != nil {
		*m.events = append(*m.events, "news")
	}
	return true, nil
}

type mockExistsRepo struct {
	ids map[int]bool
}

func (m *mockExistsRepo) Exists(_ context.Context, id int) (bool, error) {
	return m.ids[id], nil
}

type mockNewsCommentRepo struct {
	events *[]string
}

func (m *mockNewsCommentRepo) DeleteByNews(_ context.Context, newsID int) error {
	if m.events != nil {
		*m.events = append(*m.events, "comments")
	}
	return nil
}

func newNewsServiceForTest(repo *mockNewsRepo) *NewsService {
	return NewNewsService(
		repo,
		&mockExistsRepo{ids: map[int]bool{1: true}},
		&mockExistsRepo{ids: map[int]bool{1: true}},
		&mockNewsCommentRepo{},
	)
}

func TestCreateNews_DefaultsToDraft(t *testing.T) {
	repo := newMockNewsRepo()
	service := newNewsServiceForTest(repo)

	n, err := service.Create(context.Background(), &models.CreateNewsRequest{
		Title:      "Заголовок",
		Slug:       "zagolovok",
		Content:    "Текст новости",
		CategoryID: 1,
		AuthorID:   1,
	})
	if err != nil {
		t.Fatalf("ошибка создания новости: %v", err)
	}
	if n.Status != models.NewsStatusDraft {
		t.Fatalf("ожидался статус draft, получили %q", n.Status)
	}
}

func TestCreateNews_UnknownCategory(t *testing.T) {
	repo := newMockNewsRepo()
	service := newNewsServiceForTest(repo)

	_, err := service.Create(context.Background(), &models.CreateNewsRequest{
		Title:      "Заголовок",
		Slug:       "zagolovok",
		Content:    "Текст",
		CategoryID: 77,
		AuthorID:   1,
	})
	if !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("ожидалась ошибка not found по категории, получили: %v", err)
	}
	if err != nil && !strings.Contains(err.Error(), "77") {
		t.Fatalf("сообщение должно называть id категории: %q", err.Error())
	}
}

func TestCreateNews_SlugConflict(t *testing.T) {
	repo := newMockNewsRepo()
	service := newNewsServiceForTest(repo)

	req := &models.CreateNewsRequest{
		Title:      "Заголовок",
		Slug:       "zagolovok",
		Content:    "Текст",
		CategoryID: 1,
		AuthorID:   1,
	}
	if _, err := service.Create(context.Background(), req); err != nil {
		t.Fatalf("ошибка создания первой новости: %v", err)
	}
	_, err := service.Create(context.Background(), req)
	if !errors.Is(err, apperrors.ErrConflict) {
		t.Fatalf("ожидался конфликт по slug, получили: %v", err)
	}
}

func TestGetNewsByID_IncrementsViews(t *testing.T) {
	repo := newMockNewsRepo()
	service := newNewsServiceForTest(repo)

	repo.news[1] = &models.News{ID: 1, Slug: "zagolovok", Status: models.NewsStatusDraft}
	repo.nextID = 2

	n, err := service.GetByID(context.Background(), 1)
	if err != nil {
		t.Fatalf("ошибка чтения новости: %v", err)
	}
	if n.ViewsCount != 1 {
		t.Fatalf("ожидался 1 просмотр, получили %d", n.ViewsCount)
	}

	// повторное чтение по slug тоже засчитывается
	n, err = service.GetBySlug(context.Background(), "zagolovok")
	if err != nil {
		t.Fatalf("ошибка чтения по slug: %v", err)
	}
	if n.ViewsCount != 2 {
		t.Fatalf("ожидалось 2 просмотра, получили %d", n.ViewsCount)
	}
}

func TestGetNewsByID_Missing(t *testing.T) {
	repo := newMockNewsRepo()
	service := newNewsServiceForTest(repo)

	n, err := service.GetByID(context.Background(), 404)
	if err != nil {
		t.Fatalf("неожиданная ошибка: %v", err)
	}
	if n != nil {
		t.Fatal("для несуществующей новости ожидался nil")
	}
}

func TestUpdateNews_OwnSlugNotConflict(t *testing.T) {
	repo := newMockNewsRepo()
	service := newNewsServiceForTest(repo)

	n, err := service.Create(context.Background(), &models.CreateNewsRequest{
		Title:      "Заголовок",
		Slug:       "zagolovok",
		Content:    "Текст",
		CategoryID: 1,
		AuthorID:   1,
	})
	if err != nil {
		t.Fatalf("ошибка создания новости: %v", err)
	}

	slug := "zagolovok"
	title := "Новый заголовок"
	updated, err := service.Update(context.Background(), &models.UpdateNewsRequest{ID: n.ID, Title: &title, Slug: &slug})
	if err != nil {
		t.Fatalf("обновление на собственный slug дало ошибку: %v", err)
	}
	if updated.Title != title {
		t.Fatalf("заголовок не обновился: %q", updated.Title)
	}
}

func TestDeleteNews_CascadesComments(t *testing.T) {
	repo := newMockNewsRepo()
	events := []string{}
	repo.events = &events
	service := NewNewsService(
		repo,
		&mockExistsRepo{ids: map[int]bool{1: true}},
		&mockExistsRepo{ids: map[int]bool{1: true}},
		&mockNewsCommentRepo{events: &events},
	)

	repo.news[1] = &models.News{ID: 1, Slug: "zagolovok"}
	repo.nextID = 2

	ok, err := service.Delete(context.Background(), 1)
	if err != nil || !ok {
		t.Fatalf("ожидалось успешное удаление, ok=%v err=%v", ok, err)
	}
	// сначала комментарии, потом сама новость
	if len(events) != 2 || events[0] != "comments" || events[1] != "news" {
		t.Fatalf("неверный порядок каскада: %v", events)
	}
}

func TestDeleteNews_Missing(t *testing.T) {
	repo := newMockNewsRepo()
	service := newNewsServiceForTest(repo)

	ok, err := service.Delete(context.Background(), 404)
	if err != nil {
		t.Fatalf("неожиданная ошибка: %v", err)
	}
	if ok {
		t.Fatal("удаление несуществующей новости должно вернуть false")
	}
}

func TestFeaturedNews_DefaultLimit(t *testing.T) {
	repo := newMockNewsRepo()
	service := newNewsServiceForTest(repo)

	for i := 1; i <= 10; i++ {
		repo.news[i] = &models.News{ID: i, Status: models.NewsStatusPublished, ViewsCount: i}
	}
	repo.nextID = 11

	out, err := service.Featured(context.Background(), 0)
	if err != nil {
		t.Fatalf("неожиданная ошибка: %v", err)
	}
	if len(out) != defaultFeaturedLimit {
		t.Fatalf("ожидалось %d новостей, получили %d", defaultFeaturedLimit, len(out))
	}
	if out[0].ViewsCount != 10 {
		t.Fatalf("первой должна идти самая просматриваемая, получили %d", out[0].ViewsCount)
	}
}
