package services

import (
	"context"
	"newsportal/internal/apperrors"
	"newsportal/internal/logger"
	"newsportal/internal/models"
	"newsportal/internal/utils"

	"go.uber.org/zap"
)

type UserRepo interface {
	CreateUser(ctx context.Context, user *models.User) error
	IsUsernameTaken(ctx context.Context, username string, excludeID int) (bool, error)
	IsEmailTaken(ctx context.Context, email string, excludeID int) (bool, error)
	GetAllUsersPaginated(ctx context.Context, limit, offset int) ([]*models.User, int, error)
	GetUserByID(ctx context.Context, id int) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	UpdateUserFields(ctx context.Context, id int, input *models.UpdateUserRequest, passwordHash *string) error
	SoftDelete(ctx context.Context, id int) (bool, error)
}

type UserService struct {
	repo UserRepo
}

func NewUserService(repo UserRepo) *UserService {
	return &UserService{repo: repo}
}

func (s *UserService) Create(ctx context.Context, req *models.CreateUserRequest) (*models.User, error) {
	log := logger.WithCtx(ctx)
	log.Info("Сервис: создание пользователя", zap.String("username", req.Username), zap.String("email", req.Email))

	if taken, err := s.repo.IsUsernameTaken(ctx, req.Username, 0); err != nil {
		return nil, err
	} else if taken {
		log.Warn("Сервис: username занят", zap.String("username", req.Username))
		return nil, apperrors.Conflictf("имя пользователя %q уже занято", req.Username)
	}
	if taken, err := s.repo.IsEmailTaken(ctx, req.Email, 0); err != nil {
		return nil, err
	} else if taken {
		log.Warn("Сервис: email занят", zap.String("email", req.Email))
		return nil, apperrors.Conflictf("email %q уже зарегистрирован", req.Email)
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		log.Error("Сервис: ошибка хеширования пароля", zap.Error(err))
		return nil, err
	}

	role := req.Role
	if role == "" {
		role = models.RoleUser
	}

	user := &models.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hashed,
		FullName:     req.FullName,
		Avatar:       req.Avatar,
		Role:         role,
	}
	if err := s.repo.CreateUser(ctx, user); err != nil {
		log.Error("Сервис: ошибка создания пользователя", zap.Error(err))
		return nil, err
	}

	log.Info("Сервис: пользователь создан", zap.Int("user_id", user.ID))
	return user, nil
}

func (s *UserService) List(ctx context.Context, p models.Pagination) ([]*models.User, int, error) {
	p.Normalize()
	return s.repo.GetAllUsersPaginated(ctx, p.Limit, p.Offset)
}

// GetByID возвращает (nil, nil), если пользователя нет.
func (s *UserService) GetByID(ctx context.Context, id int) (*models.User, error) {
	return s.repo.GetUserByID(ctx, id)
}

func (s *UserService) Update(ctx context.Context, req *models.UpdateUserRequest) (*models.User, error) {
	log := logger.WithCtx(ctx)
	log.Info("Сервис: обновление пользователя", zap.Int("user_id", req.ID))

	existing, err := s.repo.GetUserByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, apperrors.NotFoundf("пользователь с id=%d не найден", req.ID)
	}

	if req.Username != nil {
		if taken, err := s.repo.IsUsernameTaken(ctx, *req.Username, req.ID); err != nil {
			return nil, err
		} else if taken {
			return nil, apperrors.Conflictf("имя пользователя %q уже занято", *req.Username)
		}
	}
	if req.Email != nil {
		if taken, err := s.repo.IsEmailTaken(ctx, *req.Email, req.ID); err != nil {
			return nil, err
		} else if taken {
			return nil, apperrors.Conflictf("email %q уже зарегистрирован", *req.Email)
		}
	}

	var passwordHash *string
	if req.Password != nil {
		hashed, err := utils.HashPassword(*req.Password)
		if err != nil {
			log.Error("Сервис: ошибка хеширования пароля", zap.Error(err))
			return nil, err
		}
		passwordHash = &hashed
	}

	if err := s.repo.UpdateUserFields(ctx, req.ID, req, passwordHash); err != nil {
		log.Error("Сервис: ошибка обновления пользователя", zap.Error(err), zap.Int("user_id", req.ID))
		return nil, err
	}

	log.Info("Сервис: пользователь обновлён", zap.Int("user_id", req.ID))
	return s.repo.GetUserByID(ctx, req.ID)
}

// Delete — мягкое удаление: is_active=false, строка и ссылки на неё
// (news.author_id, comments.user_id) остаются.
func (s *UserService) Delete(ctx context.Context, id int) (bool, error) {
	log := logger.WithCtx(ctx)
	log.Info("Сервис: удаление пользователя", zap.Int("user_id", id))
	return s.repo.SoftDelete(ctx, id)
}

// Login возвращает (nil, nil) при любом несовпадении: нет такого email,
// пользователь неактивен или пароль не подошёл. Пароль сверяется только
// через bcrypt — сравнение с password_hash как со строкой недопустимо.
func (s *UserService) Login(ctx context.Context, req *models.LoginRequest) (*models.User, error) {
	log := logger.WithCtx(ctx)
	log.Info("Сервис: попытка входа", zap.String("email", req.Email))

	user, err := s.repo.GetUserByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if user == nil || !user.IsActive {
		log.Warn("Сервис: вход отклонён", zap.String("email", req.Email))
		return nil, nil
	}
	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		log.Warn("Сервис: неверный пароль", zap.String("email", req.Email))
		return nil, nil
	}

	log.Info("Сервис: вход выполнен", zap.Int("user_id", user.ID))
	return user, nil
}
