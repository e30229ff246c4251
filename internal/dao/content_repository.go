package dao

import (
	"context"
	"time"

	"github.com/haierkeys/content-organizer-service/internal/domain"
	"github.com/haierkeys/content-organizer-service/internal/model"
	"github.com/haierkeys/content-organizer-service/pkg/timex"

	"github.com/bytedance/sonic"
	"gorm.io/gorm"
)

// contentRepository 实现 domain.ContentRepository 接口
type contentRepository struct {
	dao *Dao
}

// NewContentRepository 创建 ContentRepository 实例
func NewContentRepository(dao *Dao) domain.ContentRepository {
	return &contentRepository{dao: dao}
}

// toDomain 将数据库模型转换为领域模型
func (r *contentRepository) toDomain(m *model.Content) *domain.ContentItem {
	if m == nil {
		return nil
	}
	var metadata map[string]string
	if m.Metadata != "" {
		_ = sonic.UnmarshalString(m.Metadata, &metadata)
	}
	return &domain.ContentItem{
		ID:          m.ID,
		Title:       m.Title,
		Description: m.Description,
		Type:        domain.ContentType(m.Type),
		URL:         m.URL,
		Content:     m.Content,
		Thumbnail:   m.Thumbnail,
		FolderID:    m.FolderID,
		UID:         m.UID,
		Metadata:    metadata,
		CreatedAt:   time.Time(m.CreatedAt),
		UpdatedAt:   time.Time(m.UpdatedAt),
	}
}

// toModel 将领域模型转换为数据库模型
func (r *contentRepository) toModel(item *domain.ContentItem) *model.Content {
	if item == nil {
		return nil
	}
	metadata := ""
	if len(item.Metadata) > 0 {
		metadata, _ = sonic.MarshalString(item.Metadata)
	}
	return &model.Content{
		ID:          item.ID,
		Title:       item.Title,
		Description: item.Description,
		Type:        string(item.Type),
		URL:         item.URL,
		Content:     item.Content,
		Thumbnail:   item.Thumbnail,
		FolderID:    item.FolderID,
		UID:         item.UID,
		Metadata:    metadata,
		CreatedAt:   timex.Time(item.CreatedAt),
		UpdatedAt:   timex.Time(item.UpdatedAt),
	}
}

// Create 创建内容条目
func (r *contentRepository) Create(ctx context.Context, item *domain.ContentItem) error {
	m := r.toModel(item)
	m.CreatedAt = timex.Now()
	m.UpdatedAt = timex.Now()
	return r.dao.db(ctx, "Content").Create(m).Error
}

// Get 根据ID获取内容条目
func (r *contentRepository) Get(ctx context.Context, id string, uid int64) (*domain.ContentItem, error) {
	var m model.Content
	err := r.dao.db(ctx, "Content").
		Where("id = ? AND uid = ? AND is_deleted = ?", id, uid, 0).
		First(&m).Error
	if err != nil {
		return nil, err
	}
	return r.toDomain(&m), nil
}

// ListByFolder 列出文件夹内的全部条目
func (r *contentRepository) ListByFolder(ctx context.Context, folderID string, uid int64) ([]*domain.ContentItem, error) {
	var ms []*model.Content
	err := r.dao.db(ctx, "Content").
		Where("folder_id = ? AND uid = ? AND is_deleted = ?", folderID, uid, 0).
		Order("created_at ASC").
		Find(&ms).Error
	if err != nil {
		return nil, err
	}
	items := make([]*domain.ContentItem, 0, len(ms))
	for _, m := range ms {
		items = append(items, r.toDomain(m))
	}
	return items, nil
}

// ListByUID 列出用户的全部条目
func (r *contentRepository) ListByUID(ctx context.Context, uid int64) ([]*domain.ContentItem, error) {
	var ms []*model.Content
	err := r.dao.db(ctx, "Content").
		Where("uid = ? AND is_deleted = ?", uid, 0).
		Find(&ms).Error
	if err != nil {
		return nil, err
	}
	items := make([]*domain.ContentItem, 0, len(ms))
	for _, m := range ms {
		items = append(items, r.toDomain(m))
	}
	return items, nil
}

// CountByFolder 统计文件夹内的条目数
func (r *contentRepository) CountByFolder(ctx context.Context, folderID string, uid int64) (int64, error) {
	var count int64
	err := r.dao.db(ctx, "Content").
		Model(&model.Content{}).
		Where("folder_id = ? AND uid = ? AND is_deleted = ?", folderID, uid, 0).
		Count(&count).Error
	return count, err
}

// Update 更新内容条目。条目类型不可变更，不在更新列内。
func (r *contentRepository) Update(ctx context.Context, item *domain.ContentItem) error {
	m := r.toModel(item)
	m.UpdatedAt = timex.Now()
	return r.dao.db(ctx, "Content").
		Where("id = ? AND uid = ?", item.ID, item.UID).
		Select("title", "description", "url", "content", "thumbnail", "folder_id", "metadata", "updated_at").
		Updates(m).Error
}

// Delete 软删除内容条目
func (r *contentRepository) Delete(ctx context.Context, id string, uid int64) error {
	return r.dao.db(ctx, "Content").
		Model(&model.Content{}).
		Where("id = ? AND uid = ?", id, uid).
		Updates(map[string]interface{}{
			"is_deleted": 1,
			"updated_at": timex.Now(),
		}).Error
}

// DeleteByFolder 软删除文件夹内的全部条目，用于文件夹级联删除
func (r *contentRepository) DeleteByFolder(ctx context.Context, folderID string, uid int64) error {
	return r.dao.db(ctx, "Content").
		Model(&model.Content{}).
		Where("folder_id = ? AND uid = ? AND is_deleted = ?", folderID, uid, 0).
		Updates(map[string]interface{}{
			"is_deleted": 1,
			"updated_at": timex.Now(),
		}).Error
}

// CreateBatch 在单个事务内写入一批条目，用于市场导入
func (r *contentRepository) CreateBatch(ctx context.Context, items []*domain.ContentItem) error {
	if len(items) == 0 {
		return nil
	}
	return r.dao.db(ctx, "Content").Transaction(func(tx *gorm.DB) error {
		now := timex.Now()
		for _, item := range items {
			m := r.toModel(item)
			m.CreatedAt = now
			m.UpdatedAt = now
			if err := tx.Create(m).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
