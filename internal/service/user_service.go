package service

import (
	"context"
	"errors"

	"github.com/haierkeys/content-organizer-service/internal/domain"
	"github.com/haierkeys/content-organizer-service/internal/dto"
	"github.com/haierkeys/content-organizer-service/pkg/app"
	"github.com/haierkeys/content-organizer-service/pkg/code"
	"github.com/haierkeys/content-organizer-service/pkg/timex"
	"github.com/haierkeys/content-organizer-service/pkg/util"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// UserService 定义用户业务服务接口
type UserService interface {
	// Register 用户注册
	Register(ctx context.Context, params *dto.UserCreateRequest) (*dto.UserDTO, error)

	// Login 用户登录
	Login(ctx context.Context, params *dto.UserLoginRequest, clientIP string) (*dto.UserDTO, error)

	// ChangePassword 修改密码
	ChangePassword(ctx context.Context, uid int64, params *dto.UserChangePasswordRequest) error

	// GetInfo 获取用户信息
	GetInfo(ctx context.Context, uid int64) (*dto.UserDTO, error)
}

// userService 实现 UserService 接口
type userService struct {
	userRepo     domain.UserRepository
	tokenManager app.TokenManager
	logger       *zap.Logger
	config       *ServiceConfig
}

// NewUserService 创建 UserService 实例
func NewUserService(userRepo domain.UserRepository, tokenManager app.TokenManager, logger *zap.Logger, config *ServiceConfig) UserService {
	return &userService{
		userRepo:     userRepo,
		tokenManager: tokenManager,
		logger:       logger,
		config:       config,
	}
}

// domainToDTO 将领域模型转换为 DTO
func (s *userService) domainToDTO(user *domain.User) *dto.UserDTO {
	if user == nil {
		return nil
	}
	return &dto.UserDTO{
		UID:       user.UID,
		Email:     user.Email,
		Nickname:  user.Nickname,
		Avatar:    user.Avatar,
		Plan:      string(user.Plan),
		Token:     user.Token,
		UpdatedAt: timex.Time(user.UpdatedAt),
		CreatedAt: timex.Time(user.CreatedAt),
	}
}

// Register 用户注册
func (s *userService) Register(ctx context.Context, params *dto.UserCreateRequest) (*dto.UserDTO, error) {
	if s.config == nil || !s.config.User.RegisterIsEnable {
		return nil, code.ErrorRegisterDisabled
	}

	if params.Password != params.ConfirmPassword {
		return nil, code.ErrorInvalidParams.WithDetails("password confirmation mismatch")
	}

	existing, err := s.userRepo.GetByEmail(ctx, params.Email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, code.ErrorUserExists
	}

	hash, err := util.GeneratePasswordHash(params.Password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Email:    params.Email,
		Nickname: params.Nickname,
		Password: hash,
		Plan:     domain.PlanFree,
	}
	uid, err := s.userRepo.Create(ctx, user)
	if err != nil {
		return nil, err
	}
	user.UID = uid

	s.logger.Info("user registered", zap.Int64("uid", uid), zap.String("email", params.Email))

	return s.domainToDTO(user), nil
}

// Login 用户登录，成功后签发新令牌
func (s *userService) Login(ctx context.Context, params *dto.UserLoginRequest, clientIP string) (*dto.UserDTO, error) {
	user, err := s.userRepo.GetByEmail(ctx, params.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, code.ErrorInvalidPassword
		}
		return nil, err
	}

	if !util.CheckPasswordHash(params.Password, user.Password) {
		return nil, code.ErrorInvalidPassword
	}

	token, err := s.tokenManager.Generate(user.UID, user.Nickname, clientIP)
	if err != nil {
		return nil, err
	}
	user.Token = token

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("user logged in", zap.Int64("uid", user.UID))

	return s.domainToDTO(user), nil
}

// ChangePassword 修改密码
func (s *userService) ChangePassword(ctx context.Context, uid int64, params *dto.UserChangePasswordRequest) error {
	if params.Password != params.ConfirmPassword {
		return code.ErrorInvalidParams.WithDetails("password confirmation mismatch")
	}

	user, err := s.userRepo.GetByUID(ctx, uid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return code.ErrorUserNotFound
		}
		return err
	}

	if !util.CheckPasswordHash(params.OldPassword, user.Password) {
		return code.ErrorInvalidPassword
	}

	hash, err := util.GeneratePasswordHash(params.Password)
	if err != nil {
		return err
	}
	return s.userRepo.UpdatePassword(ctx, uid, hash)
}

// GetInfo 获取用户信息
func (s *userService) GetInfo(ctx context.Context, uid int64) (*dto.UserDTO, error) {
	user, err := s.userRepo.GetByUID(ctx, uid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, code.ErrorUserNotFound
		}
		return nil, err
	}
	d := s.domainToDTO(user)
	// 令牌只在登录时返回
	d.Token = ""
	return d, nil
}
