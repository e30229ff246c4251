package dao

import (
	"context"
	"time"

	"github.com/haierkeys/content-organizer-service/internal/domain"
	"github.com/haierkeys/content-organizer-service/internal/model"
	"github.com/haierkeys/content-organizer-service/pkg/timex"
)

// userRepository 实现 domain.UserRepository 接口
type userRepository struct {
	dao *Dao
}

// NewUserRepository 创建 UserRepository 实例
func NewUserRepository(dao *Dao) domain.UserRepository {
	return &userRepository{dao: dao}
}

// toDomain 将数据库模型转换为领域模型
func (r *userRepository) toDomain(m *model.User) *domain.User {
	if m == nil {
		return nil
	}
	return &domain.User{
		UID:       m.UID,
		Email:     m.Email,
		Nickname:  m.Nickname,
		Password:  m.Password,
		Avatar:    m.Avatar,
		Plan:      domain.PlanTier(m.Plan),
		Token:     m.Token,
		IsDeleted: m.IsDeleted == 1,
		CreatedAt: time.Time(m.CreatedAt),
		UpdatedAt: time.Time(m.UpdatedAt),
	}
}

// toModel 将领域模型转换为数据库模型
func (r *userRepository) toModel(user *domain.User) *model.User {
	if user == nil {
		return nil
	}
	isDeleted := 0
	if user.IsDeleted {
		isDeleted = 1
	}
	return &model.User{
		UID:       user.UID,
		Email:     user.Email,
		Nickname:  user.Nickname,
		Password:  user.Password,
		Avatar:    user.Avatar,
		Plan:      string(user.Plan),
		Token:     user.Token,
		IsDeleted: isDeleted,
		CreatedAt: timex.Time(user.CreatedAt),
		UpdatedAt: timex.Time(user.UpdatedAt),
	}
}

// Create 创建用户
func (r *userRepository) Create(ctx context.Context, user *domain.User) (int64, error) {
	m := r.toModel(user)
	m.CreatedAt = timex.Now()
	m.UpdatedAt = timex.Now()

	if err := r.dao.db(ctx, "User").Create(m).Error; err != nil {
		return 0, err
	}
	return m.UID, nil
}

// GetByUID 根据UID获取用户
func (r *userRepository) GetByUID(ctx context.Context, uid int64) (*domain.User, error) {
	var m model.User
	err := r.dao.db(ctx, "User").
		Where("uid = ? AND is_deleted = ?", uid, 0).
		First(&m).Error
	if err != nil {
		return nil, err
	}
	return r.toDomain(&m), nil
}

// GetByEmail 根据邮箱获取用户
func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var m model.User
	err := r.dao.db(ctx, "User").
		Where("email = ? AND is_deleted = ?", email, 0).
		First(&m).Error
	if err != nil {
		return nil, err
	}
	return r.toDomain(&m), nil
}

// Update 更新用户
func (r *userRepository) Update(ctx context.Context, user *domain.User) error {
	m := r.toModel(user)
	m.UpdatedAt = timex.Now()
	return r.dao.db(ctx, "User").
		Where("uid = ?", user.UID).
		Select("email", "nickname", "avatar", "plan", "token", "updated_at").
		Updates(m).Error
}

// UpdatePassword 更新用户密码
func (r *userRepository) UpdatePassword(ctx context.Context, uid int64, password string) error {
	return r.dao.db(ctx, "User").
		Model(&model.User{}).
		Where("uid = ?", uid).
		Updates(map[string]interface{}{
			"password":   password,
			"updated_at": timex.Now(),
		}).Error
}
