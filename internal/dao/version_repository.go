package dao

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/haierkeys/content-organizer-service/internal/domain"
	"github.com/haierkeys/content-organizer-service/internal/model"
	"github.com/haierkeys/content-organizer-service/pkg/timex"

	"github.com/bytedance/sonic"
	"gorm.io/gorm"
)

// ErrVersionConflict 并发发布同一文件夹时版本号冲突
var ErrVersionConflict = errors.New("marketplace version number conflict")

// versionRepository 实现 domain.VersionRepository 接口
type versionRepository struct {
	dao *Dao
}

// NewVersionRepository 创建 VersionRepository 实例
func NewVersionRepository(dao *Dao) domain.VersionRepository {
	return &versionRepository{dao: dao}
}

// toDomain 将数据库模型转换为领域模型
func (r *versionRepository) toDomain(m *model.MarketplaceVersion) *domain.MarketplaceVersion {
	if m == nil {
		return nil
	}
	var snapshot domain.VersionSnapshot
	if m.Snapshot != "" {
		_ = sonic.UnmarshalString(m.Snapshot, &snapshot)
	}
	var tags []string
	if m.Tags != "" {
		tags = strings.Split(m.Tags, ",")
	}
	return &domain.MarketplaceVersion{
		ID:            m.ID,
		FolderID:      m.FolderID,
		UID:           m.UID,
		Number:        m.Number,
		Fingerprint:   m.Fingerprint,
		Snapshot:      snapshot,
		Title:         m.Title,
		Description:   m.Description,
		Category:      m.Category,
		Tags:          tags,
		Price:         m.Price,
		Currency:      m.Currency,
		CoverImage:    m.CoverImage,
		IsActive:      m.IsActive == 1,
		DownloadCount: m.DownloadCount,
		LikeCount:     m.LikeCount,
		ViewCount:     m.ViewCount,
		PublishedAt:   time.Time(m.PublishedAt),
		CreatedAt:     time.Time(m.CreatedAt),
	}
}

// toModel 将领域模型转换为数据库模型
func (r *versionRepository) toModel(v *domain.MarketplaceVersion) (*model.MarketplaceVersion, error) {
	if v == nil {
		return nil, nil
	}
	snapshot, err := sonic.MarshalString(v.Snapshot)
	if err != nil {
		return nil, err
	}
	isActive := 0
	if v.IsActive {
		isActive = 1
	}
	return &model.MarketplaceVersion{
		ID:            v.ID,
		FolderID:      v.FolderID,
		UID:           v.UID,
		Number:        v.Number,
		Fingerprint:   v.Fingerprint,
		Snapshot:      snapshot,
		Title:         v.Title,
		Description:   v.Description,
		Category:      v.Category,
		Tags:          strings.Join(v.Tags, ","),
		Price:         v.Price,
		Currency:      v.Currency,
		CoverImage:    v.CoverImage,
		IsActive:      isActive,
		DownloadCount: v.DownloadCount,
		LikeCount:     v.LikeCount,
		ViewCount:     v.ViewCount,
		PublishedAt:   timex.Time(v.PublishedAt),
		CreatedAt:     timex.Time(v.CreatedAt),
	}, nil
}

// PublishNewVersion 在单个事务内停用旧激活版本并插入新激活版本
func (r *versionRepository) PublishNewVersion(ctx context.Context, v *domain.MarketplaceVersion) error {
	m, err := r.toModel(v)
	if err != nil {
		return err
	}
	m.IsActive = 1
	m.CreatedAt = timex.Now()

	return r.dao.db(ctx, "MarketplaceVersion").Transaction(func(tx *gorm.DB) error {
		// 事务内复核版本号单调性，并发发布时宁可失败也不产生重号
		var maxNumber int64
		err := tx.Model(&model.MarketplaceVersion{}).
			Where("folder_id = ?", v.FolderID).
			Select("COALESCE(MAX(number), 0)").
			Scan(&maxNumber).Error
		if err != nil {
			return err
		}
		if m.Number <= maxNumber {
			return ErrVersionConflict
		}

		err = tx.Model(&model.MarketplaceVersion{}).
			Where("folder_id = ? AND is_active = ?", v.FolderID, 1).
			Update("is_active", 0).Error
		if err != nil {
			return err
		}

		return tx.Create(m).Error
	})
}

// Get 根据ID获取版本
func (r *versionRepository) Get(ctx context.Context, id string) (*domain.MarketplaceVersion, error) {
	var m model.MarketplaceVersion
	err := r.dao.db(ctx, "MarketplaceVersion").
		Where("id = ?", id).
		First(&m).Error
	if err != nil {
		return nil, err
	}
	return r.toDomain(&m), nil
}

// GetActiveByFolder 获取文件夹当前激活版本
func (r *versionRepository) GetActiveByFolder(ctx context.Context, folderID string) (*domain.MarketplaceVersion, error) {
	var m model.MarketplaceVersion
	err := r.dao.db(ctx, "MarketplaceVersion").
		Where("folder_id = ? AND is_active = ?", folderID, 1).
		First(&m).Error
	if err != nil {
		return nil, err
	}
	return r.toDomain(&m), nil
}

// ListByFolder 按版本号倒序列出文件夹的全部版本
func (r *versionRepository) ListByFolder(ctx context.Context, folderID string) ([]*domain.MarketplaceVersion, error) {
	var ms []*model.MarketplaceVersion
	err := r.dao.db(ctx, "MarketplaceVersion").
		Where("folder_id = ?", folderID).
		Order("number DESC").
		Find(&ms).Error
	if err != nil {
		return nil, err
	}
	versions := make([]*domain.MarketplaceVersion, 0, len(ms))
	for _, m := range ms {
		versions = append(versions, r.toDomain(m))
	}
	return versions, nil
}

// GetLatestNumber 返回文件夹历史上最大的版本号，无版本时返回 0
func (r *versionRepository) GetLatestNumber(ctx context.Context, folderID string) (int64, error) {
	var maxNumber int64
	err := r.dao.db(ctx, "MarketplaceVersion").
		Model(&model.MarketplaceVersion{}).
		Where("folder_id = ?", folderID).
		Select("COALESCE(MAX(number), 0)").
		Scan(&maxNumber).Error
	return maxNumber, err
}

// ListActive 分页列出市场内的激活版本，category 为空时不过滤分类
func (r *versionRepository) ListActive(ctx context.Context, category string, limit, offset int) ([]*domain.MarketplaceVersion, error) {
	db := r.dao.db(ctx, "MarketplaceVersion").
		Where("is_active = ?", 1)
	if category != "" {
		db = db.Where("category = ?", category)
	}
	var ms []*model.MarketplaceVersion
	err := db.Order("published_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&ms).Error
	if err != nil {
		return nil, err
	}
	versions := make([]*domain.MarketplaceVersion, 0, len(ms))
	for _, m := range ms {
		versions = append(versions, r.toDomain(m))
	}
	return versions, nil
}

// CountActiveByUID 统计用户当前激活的市场分享数
func (r *versionRepository) CountActiveByUID(ctx context.Context, uid int64) (int64, error) {
	var count int64
	err := r.dao.db(ctx, "MarketplaceVersion").
		Model(&model.MarketplaceVersion{}).
		Where("uid = ? AND is_active = ?", uid, 1).
		Count(&count).Error
	return count, err
}

// IncrementDownloads 下载计数加一
func (r *versionRepository) IncrementDownloads(ctx context.Context, id string) error {
	return r.dao.db(ctx, "MarketplaceVersion").
		Model(&model.MarketplaceVersion{}).
		Where("id = ?", id).
		Update("download_count", gorm.Expr("download_count + ?", 1)).Error
}

// IncrementLikes 点赞计数加一
func (r *versionRepository) IncrementLikes(ctx context.Context, id string) error {
	return r.dao.db(ctx, "MarketplaceVersion").
		Model(&model.MarketplaceVersion{}).
		Where("id = ?", id).
		Update("like_count", gorm.Expr("like_count + ?", 1)).Error
}

// IncrementViews 浏览计数加一
func (r *versionRepository) IncrementViews(ctx context.Context, id string) error {
	return r.dao.db(ctx, "MarketplaceVersion").
		Model(&model.MarketplaceVersion{}).
		Where("id = ?", id).
		Update("view_count", gorm.Expr("view_count + ?", 1)).Error
}

// Deactivate 将指定版本置为非激活，不删除
func (r *versionRepository) Deactivate(ctx context.Context, id string) error {
	return r.dao.db(ctx, "MarketplaceVersion").
		Model(&model.MarketplaceVersion{}).
		Where("id = ?", id).
		Update("is_active", 0).Error
}

// ListInactiveBefore 列出指定时间之前创建的非激活版本，供清理任务使用
func (r *versionRepository) ListInactiveBefore(ctx context.Context, before time.Time) ([]*domain.MarketplaceVersion, error) {
	var ms []*model.MarketplaceVersion
	err := r.dao.db(ctx, "MarketplaceVersion").
		Where("is_active = ? AND created_at < ?", 0, timex.Time(before)).
		Order("created_at ASC").
		Find(&ms).Error
	if err != nil {
		return nil, err
	}
	versions := make([]*domain.MarketplaceVersion, 0, len(ms))
	for _, m := range ms {
		versions = append(versions, r.toDomain(m))
	}
	return versions, nil
}

// Delete 物理删除版本，只应由清理任务调用
func (r *versionRepository) Delete(ctx context.Context, id string) error {
	return r.dao.db(ctx, "MarketplaceVersion").
		Where("id = ?", id).
		Delete(&model.MarketplaceVersion{}).Error
}
