package services

import (
	"context"
	"errors"
	"newsportal/internal/apperrors"
	"newsportal/internal/models"
	"strings"
	"testing"
)

type mockCommentRepo struct {
	comments map[int]*models.Comment
	nextID   int
}

func newMockCommentRepo() *mockCommentRepo {
	return &mockCommentRepo{comments: make(map[int]*models.Comment), nextID: 1}
}

func (m *mockCommentRepo) Create(_ context.Context, c *models.Comment) error {
	c.ID = m.nextID
	m.nextID++
	m.comments[c.ID] = c
	return nil
}

func (m *mockCommentRepo) GetByID(_ context.Context, id int) (*models.Comment, error) {
	return m.comments[id], nil
}

func (m *mockCommentRepo) ListApprovedByNews(_ context.Context, newsID, limit, offset int) ([]*models.CommentWithAuthor, int, error) {
	out := make([]*models.CommentWithAuthor, 0)
	for _, c := range m.comments {
		if c.NewsID == newsID && c.Status == models.CommentStatusApproved {
			out = append(out, &models.CommentWithAuthor{Comment: *c})
		}
	}
	return out, len(out), nil
}

func (m *mockCommentRepo) ListAll(_ context.Context, limit, offset int) ([]*models.CommentModeration, int, error) {
	out := make([]*models.CommentModeration, 0, len(m.comments))
	for _, c := range m.comments {
		out = append(out, &models.CommentModeration{Comment: *c})
	}
	return out, len(out), nil
}

func (m *mockCommentRepo) ListPending(_ context.Context, limit, offset int) ([]*models.CommentModeration, int, error) {
	out := make([]*models.CommentModeration, 0)
	for _, c := range m.comments {
		if c.Status == models.CommentStatusPending {
			out = append(out, &models.CommentModeration{Comment: *c})
		}
	}
	return out, len(out), nil
}

func (m *mockCommentRepo) UpdateFields(_ context.Context, id int, input *models.UpdateCommentRequest) error {
	c, ok := m.comments[id]
	if !ok {
		return errors.New("нет такого комментария")
	}
	if input.Content != nil {
		c.Content = *input.Content
	}
	return nil
}

func (m *mockCommentRepo) SetStatus(_ context.Context, id int, status string) (bool, error) {
	c, ok := m.comments[id]
	if !ok {
		return false, nil
	}
	c.Status = status
	return true, nil
}

func (m *mockCommentRepo) Delete(_ context.Context, id int) (bool, error) {
	if _, ok := m.comments[id]; !ok {
		return false, nil
	}
	delete(m.comments, id)
	return true, nil
}

func newCommentServiceForTest(repo *mockCommentRepo) *CommentService {
	return NewCommentService(
		repo,
		&mockExistsRepo{ids: map[int]bool{1: true}},
		&mockExistsRepo{ids: map[int]bool{1: true}},
	)
}

func TestCreateComment_AlwaysPending(t *testing.T) {
	repo := newMockCommentRepo()
	service := newCommentServiceForTest(repo)

	c, err := service.Create(context.Background(), &models.CreateCommentRequest{
		Content: "Отличная статья!",
		NewsID:  1,
		UserID:  1,
	})
	if err != nil {
		t.Fatalf("ошибка создания комментария: %v", err)
	}
	if c.Status != models.CommentStatusPending {
		t.Fatalf("ожидался статус pending, получили %q", c.Status)
	}
}

func TestCreateComment_UnknownNews(t *testing.T) {
	repo := newMockCommentRepo()
	service := newCommentServiceForTest(repo)

	_, err := service.Create(context.Background(), &models.CreateCommentRequest{
		Content: "Комментарий",
		NewsID:  55,
		UserID:  1,
	})
	if !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("ожидалась ошибка not found по новости, получили: %v", err)
	}
	if err != nil && !strings.Contains(err.Error(), "55") {
		t.Fatalf("сообщение должно называть id новости: %q", err.Error())
	}
}

func TestCreateComment_UnknownUser(t *testing.T) {
	repo := newMockCommentRepo()
	service := newCommentServiceForTest(repo)

	_, err := service.Create(context.Background(), &models.CreateCommentRequest{
		Content: "Комментарий",
		NewsID:  1,
		UserID:  99,
	})
	if !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("ожидалась ошибка not found по пользователю, получили: %v", err)
	}
	if err != nil && !strings.Contains(err.Error(), "пользователь") {
		t.Fatalf("сообщение должно указывать на пользователя: %q", err.Error())
	}
}

func TestModerateComment(t *testing.T) {
	repo := newMockCommentRepo()
	service := newCommentServiceForTest(repo)

	c, err := service.Create(context.Background(), &models.CreateCommentRequest{
		Content: "Комментарий",
		NewsID:  1,
		UserID:  1,
	})
	if err != nil {
		t.Fatalf("ошибка создания комментария: %v", err)
	}

	moderated, err := service.Moderate(context.Background(), c.ID, models.CommentStatusApproved)
	if err != nil {
		t.Fatalf("ошибка модерации: %v", err)
	}
	if moderated.Status != models.CommentStatusApproved {
		t.Fatalf("ожидался статус approved, получили %q", moderated.Status)
	}

	// повторная модерация в обратную сторону допустима
	moderated, err = service.Moderate(context.Background(), c.ID, models.CommentStatusRejected)
	if err != nil {
		t.Fatalf("ошибка повторной модерации: %v", err)
	}
	if moderated.Status != models.CommentStatusRejected {
		t.Fatalf("ожидался статус rejected, получили %q", moderated.Status)
	}
}

func TestModerateComment_NotFound(t *testing.T) {
	repo := newMockCommentRepo()
	service := newCommentServiceForTest(repo)

	_, err := service.Moderate(context.Background(), 404, models.CommentStatusApproved)
	if !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("ожидалась ошибка not found, получили: %v", err)
	}
}

func TestListCommentsByNews_OnlyApproved(t *testing.T) {
	repo := newMockCommentRepo()
	service := newCommentServiceForTest(repo)

	repo.comments[1] = &models.Comment{ID: 1, NewsID: 1, Status: models.CommentStatusApproved}
	repo.comments[2] = &models.Comment{ID: 2, NewsID: 1, Status: models.CommentStatusPending}
	repo.comments[3] = &models.Comment{ID: 3, NewsID: 1, Status: models.CommentStatusRejected}
	repo.nextID = 4

	out, total, err := service.ListByNews(context.Background(), &models.CommentsByNewsRequest{NewsID: 1})
	if err != nil {
		t.Fatalf("неожиданная ошибка: %v", err)
	}
	if total != 1 || len(out) != 1 {
		t.Fatalf("ожидался один одобренный комментарий, получили %d", len(out))
	}
	if out[0].Status != models.CommentStatusApproved {
		t.Fatalf("в выдаче не одобренный комментарий: %q", out[0].Status)
	}
}
