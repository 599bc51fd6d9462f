package services

import (
	"context"
	"errors"
	"newsportal/internal/apperrors"
	"newsportal/internal/models"
	"newsportal/internal/utils"
	"testing"
)

// Мок-репозиторий (заглушка)
type mockUserRepo struct {
	users    map[int]*models.User
	nextID   int
	lastUser *models.User
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[int]*models.User), nextID: 1}
}

func (m *mockUserRepo) CreateUser(_ context.Context, user *models.User) error {
	user.ID = m.nextID
	m.nextID++
	user.IsActive = true
	m.users[user.ID] = user
	m.lastUser = user
	return nil
}

func (m *mockUserRepo) IsUsernameTaken(_ context.Context, username string, excludeID int) (bool, error) {
	for _, u := range m.users {
		if u.Username == username && u.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockUserRepo) IsEmailTaken(_ context.Context, email string, excludeID int) (bool, error) {
	for _, u := range m.users {
		if u.Email == email && u.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockUserRepo) GetAllUsersPaginated(_ context.Context, limit, offset int) ([]*models.User, int, error) {
	out := make([]*models.User, 0, len(m.users))
	for _, u := range m.users {
		out = append(out, u)
	}
	return out, len(out), nil
}

func (m *mockUserRepo) GetUserByID(_ context.Context, id int) (*models.User, error) {
	return m.users[id], nil
}

func (m *mockUserRepo) GetUserByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (m *mockUserRepo) UpdateUserFields(_ context.Context, id int, input *models.UpdateUserRequest, passwordHash *string) error {
	u, ok := m.users[id]
	if !ok {
		return errors.New("нет такого пользователя")
	}
	if input.Username != nil {
		u.Username = *input.Username
	}
	if input.Email != nil {
		u.Email = *input.Email
	}
	if passwordHash != nil {
		u.PasswordHash = *passwordHash
	}
	if input.IsActive != nil {
		u.IsActive = *input.IsActive
	}
	return nil
}

func (m *mockUserRepo) SoftDelete(_ context.Context, id int) (bool, error) {
	u, ok := m.users[id]
	if !ok {
		return false, nil
	}
	u.IsActive = false
	return true, nil
}

func TestCreateUser_HashesPassword(t *testing.T) {
	repo := newMockUserRepo()
	service := NewUserService(repo)

	user, err := service.Create(context.Background(), &models.CreateUserRequest{
		Username: "testuser",
		Email:    "test@example.com",
		Password: "secret123",
	})
	if err != nil {
		t.Fatalf("ошибка создания пользователя: %v", err)
	}

	if repo.lastUser == nil || repo.lastUser.PasswordHash == "" {
		t.Fatal("пароль не захеширован или пользователь не сохранён")
	}
	if repo.lastUser.PasswordHash == "secret123" {
		t.Fatal("пароль сохранён открытым текстом")
	}
	if user.Role != models.RoleUser {
		t.Fatalf("ожидалась роль по умолчанию %q, получили %q", models.RoleUser, user.Role)
	}
}

func TestCreateUser_UsernameTaken(t *testing.T) {
	repo := newMockUserRepo()
	service := NewUserService(repo)

	_, err := service.Create(context.Background(), &models.CreateUserRequest{
		Username: "testuser",
		Email:    "first@example.com",
		Password: "secret123",
	})
	if err != nil {
		t.Fatalf("ошибка создания первого пользователя: %v", err)
	}

	_, err = service.Create(context.Background(), &models.CreateUserRequest{
		Username: "testuser",
		Email:    "second@example.com",
		Password: "secret123",
	})
	if !errors.Is(err, apperrors.ErrConflict) {
		t.Fatalf("ожидался конфликт по username, получили: %v", err)
	}
}

func TestUpdateUser_NotFound(t *testing.T) {
	repo := newMockUserRepo()
	service := NewUserService(repo)

	_, err := service.Update(context.Background(), &models.UpdateUserRequest{ID: 42})
	if !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("ожидалась ошибка not found, получили: %v", err)
	}
}

func TestUpdateUser_OwnEmailNotConflict(t *testing.T) {
	repo := newMockUserRepo()
	service := NewUserService(repo)

	user, err := service.Create(context.Background(), &models.CreateUserRequest{
		Username: "testuser",
		Email:    "test@example.com",
		Password: "secret123",
	})
	if err != nil {
		t.Fatalf("ошибка создания пользователя: %v", err)
	}

	// обновление на собственный email не должно считаться конфликтом
	email := "test@example.com"
	if _, err := service.Update(context.Background(), &models.UpdateUserRequest{ID: user.ID, Email: &email}); err != nil {
		t.Fatalf("обновление на собственный email дало ошибку: %v", err)
	}
}

func TestLogin_Success(t *testing.T) {
	repo := newMockUserRepo()
	service := NewUserService(repo)

	hashed, _ := utils.HashPassword("secret123")
	repo.users[1] = &models.User{
		ID:           1,
		Username:     "testuser",
		Email:        "test@example.com",
		PasswordHash: hashed,
		Role:         models.RoleUser,
		IsActive:     true,
	}

	user, err := service.Login(context.Background(), &models.LoginRequest{
		Email:    "test@example.com",
		Password: "secret123",
	})
	if err != nil {
		t.Fatalf("ошибка логина: %v", err)
	}
	if user == nil || user.ID != 1 {
		t.Fatal("ожидался найденный пользователь")
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	repo := newMockUserRepo()
	service := NewUserService(repo)

	hashed, _ := utils.HashPassword("secret123")
	repo.users[1] = &models.User{
		ID:           1,
		Email:        "test@example.com",
		PasswordHash: hashed,
		IsActive:     true,
	}

	user, err := service.Login(context.Background(), &models.LoginRequest{
		Email:    "test@example.com",
		Password: "wrong-password",
	})
	if err != nil {
		t.Fatalf("неожиданная ошибка: %v", err)
	}
	if user != nil {
		t.Fatal("вход с неверным паролем должен вернуть nil")
	}
}

func TestLogin_InactiveUser(t *testing.T) {
	repo := newMockUserRepo()
	service := NewUserService(repo)

	hashed, _ := utils.HashPassword("secret123")
	repo.users[1] = &models.User{
		ID:           1,
		Email:        "test@example.com",
		PasswordHash: hashed,
		IsActive:     false,
	}

	user, err := service.Login(context.Background(), &models.LoginRequest{
		Email:    "test@example.com",
		Password: "secret123",
	})
	if err != nil {
		t.Fatalf("неожиданная ошибка: %v", err)
	}
	if user != nil {
		t.Fatal("неактивный пользователь не должен входить")
	}
}

func TestDeleteUser_SoftDelete(t *testing.T) {
	repo := newMockUserRepo()
	service := NewUserService(repo)

	user, err := service.Create(context.Background(), &models.CreateUserRequest{
		Username: "testuser",
		Email:    "test@example.com",
		Password: "secret123",
	})
	if err != nil {
		t.Fatalf("ошибка создания пользователя: %v", err)
	}

	ok, err := service.Delete(context.Background(), user.ID)
	if err != nil || !ok {
		t.Fatalf("ожидалось успешное удаление, ok=%v err=%v", ok, err)
	}
	if repo.users[user.ID] == nil {
		t.Fatal("мягкое удаление не должно убирать строку")
	}
	if repo.users[user.ID].IsActive {
		t.Fatal("после удаления пользователь должен стать неактивным")
	}
}
