package dao

import (
	"context"
	"time"

	"github.com/haierkeys/content-organizer-service/internal/domain"
	"github.com/haierkeys/content-organizer-service/internal/model"
	"github.com/haierkeys/content-organizer-service/pkg/timex"
)

// folderRepository 实现 domain.FolderRepository 接口
type folderRepository struct {
	dao *Dao
}

// NewFolderRepository 创建 FolderRepository 实例
func NewFolderRepository(dao *Dao) domain.FolderRepository {
	return &folderRepository{dao: dao}
}

// toDomain 将数据库模型转换为领域模型
func (r *folderRepository) toDomain(m *model.Folder) *domain.Folder {
	if m == nil {
		return nil
	}
	return &domain.Folder{
		ID:                  m.ID,
		Name:                m.Name,
		Description:         m.Description,
		Color:               m.Color,
		Icon:                m.Icon,
		ParentID:            m.ParentID,
		UID:                 m.UID,
		SharedStatus:        domain.SharedStatus(m.SharedStatus),
		SharedVersionID:     m.SharedVersionID,
		LastSharedAt:        time.Time(m.LastSharedAt),
		DownloadCount:       m.DownloadCount,
		SourceMarketplaceID: m.SourceMarketplaceID,
		CreatedAt:           time.Time(m.CreatedAt),
		UpdatedAt:           time.Time(m.UpdatedAt),
	}
}

// toModel 将领域模型转换为数据库模型
func (r *folderRepository) toModel(folder *domain.Folder) *model.Folder {
	if folder == nil {
		return nil
	}
	return &model.Folder{
		ID:                  folder.ID,
		Name:                folder.Name,
		Description:         folder.Description,
		Color:               folder.Color,
		Icon:                folder.Icon,
		ParentID:            folder.ParentID,
		UID:                 folder.UID,
		SharedStatus:        string(folder.SharedStatus),
		SharedVersionID:     folder.SharedVersionID,
		LastSharedAt:        timex.Time(folder.LastSharedAt),
		DownloadCount:       folder.DownloadCount,
		SourceMarketplaceID: folder.SourceMarketplaceID,
		CreatedAt:           timex.Time(folder.CreatedAt),
		UpdatedAt:           timex.Time(folder.UpdatedAt),
	}
}

// Create 创建文件夹
func (r *folderRepository) Create(ctx context.Context, folder *domain.Folder) error {
	m := r.toModel(folder)
	if m.SharedStatus == "" {
		m.SharedStatus = string(domain.SharedStatusPrivate)
	}
	m.CreatedAt = timex.Now()
	m.UpdatedAt = timex.Now()
	return r.dao.db(ctx, "Folder").Create(m).Error
}

// Get 根据ID获取文件夹
func (r *folderRepository) Get(ctx context.Context, id string, uid int64) (*domain.Folder, error) {
	var m model.Folder
	err := r.dao.db(ctx, "Folder").
		Where("id = ? AND uid = ? AND is_deleted = ?", id, uid, 0).
		First(&m).Error
	if err != nil {
		return nil, err
	}
	return r.toDomain(&m), nil
}

// ListByUID 列出用户的全部文件夹
func (r *folderRepository) ListByUID(ctx context.Context, uid int64) ([]*domain.Folder, error) {
	var ms []*model.Folder
	err := r.dao.db(ctx, "Folder").
		Where("uid = ? AND is_deleted = ?", uid, 0).
		Order("created_at ASC").
		Find(&ms).Error
	if err != nil {
		return nil, err
	}
	folders := make([]*domain.Folder, 0, len(ms))
	for _, m := range ms {
		folders = append(folders, r.toDomain(m))
	}
	return folders, nil
}

// CountByUID 统计用户的文件夹数
func (r *folderRepository) CountByUID(ctx context.Context, uid int64) (int64, error) {
	var count int64
	err := r.dao.db(ctx, "Folder").
		Model(&model.Folder{}).
		Where("uid = ? AND is_deleted = ?", uid, 0).
		Count(&count).Error
	return count, err
}

// Update 更新文件夹基础字段
func (r *folderRepository) Update(ctx context.Context, folder *domain.Folder) error {
	m := r.toModel(folder)
	m.UpdatedAt = timex.Now()
	return r.dao.db(ctx, "Folder").
		Where("id = ? AND uid = ?", folder.ID, folder.UID).
		Select("name", "description", "color", "icon", "parent_id", "updated_at").
		Updates(m).Error
}

// Delete 软删除文件夹
func (r *folderRepository) Delete(ctx context.Context, id string, uid int64) error {
	return r.dao.db(ctx, "Folder").
		Model(&model.Folder{}).
		Where("id = ? AND uid = ?", id, uid).
		Updates(map[string]interface{}{
			"is_deleted": 1,
			"updated_at": timex.Now(),
		}).Error
}

// UpdateShareState 更新文件夹的分享状态字段
func (r *folderRepository) UpdateShareState(ctx context.Context, id string, uid int64, status domain.SharedStatus, versionID string, sharedAt time.Time) error {
	return r.dao.db(ctx, "Folder").
		Model(&model.Folder{}).
		Where("id = ? AND uid = ?", id, uid).
		Updates(map[string]interface{}{
			"shared_status":     string(status),
			"shared_version_id": versionID,
			"last_shared_at":    timex.Time(sharedAt),
			"updated_at":        timex.Now(),
		}).Error
}
