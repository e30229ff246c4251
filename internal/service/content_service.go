package service

import (
	"context"
	"errors"

	"github.com/haierkeys/content-organizer-service/internal/domain"
	"github.com/haierkeys/content-organizer-service/internal/dto"
	"github.com/haierkeys/content-organizer-service/pkg/code"
	"github.com/haierkeys/content-organizer-service/pkg/timex"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ContentService 定义内容条目业务服务接口
type ContentService interface {
	// Create 新建内容条目，受存储与单文件夹条目数闸门约束
	Create(ctx context.Context, uid int64, params *dto.ContentCreateRequest) (*dto.ContentDTO, error)

	// Get 获取单个内容条目
	Get(ctx context.Context, uid int64, id string) (*dto.ContentDTO, error)

	// ListByFolder 列出文件夹内全部条目
	ListByFolder(ctx context.Context, uid int64, folderID string) ([]*dto.ContentDTO, error)

	// Update 更新内容条目。类型不可变更。
	Update(ctx context.Context, uid int64, params *dto.ContentUpdateRequest) (*dto.ContentDTO, error)

	// Delete 删除内容条目
	Delete(ctx context.Context, uid int64, id string) error
}

// contentService 实现 ContentService 接口
type contentService struct {
	contentRepo domain.ContentRepository
	folderRepo  domain.FolderRepository
	quota       QuotaService
	logger      *zap.Logger
}

// NewContentService 创建 ContentService 实例
func NewContentService(contentRepo domain.ContentRepository, folderRepo domain.FolderRepository, quota QuotaService, logger *zap.Logger) ContentService {
	return &contentService{
		contentRepo: contentRepo,
		folderRepo:  folderRepo,
		quota:       quota,
		logger:      logger,
	}
}

// domainToDTO 将领域模型转换为 DTO
func (s *contentService) domainToDTO(item *domain.ContentItem) *dto.ContentDTO {
	if item == nil {
		return nil
	}
	return &dto.ContentDTO{
		ID:            item.ID,
		Title:         item.Title,
		Description:   item.Description,
		Type:          string(item.Type),
		URL:           item.URL,
		Content:       item.Content,
		Thumbnail:     item.Thumbnail,
		FolderID:      item.FolderID,
		Metadata:      item.Metadata,
		EstimatedSize: s.quota.ItemSize(item),
		CreatedAt:     timex.Time(item.CreatedAt),
		UpdatedAt:     timex.Time(item.UpdatedAt),
	}
}

// Create 新建内容条目，受存储与单文件夹条目数闸门约束
func (s *contentService) Create(ctx context.Context, uid int64, params *dto.ContentCreateRequest) (*dto.ContentDTO, error) {
	contentType := domain.ContentType(params.Type)
	if !contentType.IsValid() {
		return nil, code.ErrorInvalidContentType
	}

	if _, err := s.folderRepo.Get(ctx, params.FolderID, uid); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, code.ErrorFolderNotFound
		}
		return nil, err
	}

	item := &domain.ContentItem{
		ID:          uuid.NewString(),
		Title:       params.Title,
		Description: params.Description,
		Type:        contentType,
		URL:         params.URL,
		Content:     params.Content,
		Thumbnail:   params.Thumbnail,
		FolderID:    params.FolderID,
		UID:         uid,
		Metadata:    params.Metadata,
	}

	usage, err := s.quota.GetUsage(ctx, uid)
	if err != nil {
		return nil, err
	}
	if gate := s.quota.CanAddItem(usage, item); !gate.Allowed {
		return nil, code.ErrorStorageQuotaReached.WithDetails(gate.Reason)
	}

	count, err := s.contentRepo.CountByFolder(ctx, params.FolderID, uid)
	if err != nil {
		return nil, err
	}
	if count >= usage.Limits.MaxItemsPerFolder {
		return nil, code.ErrorFolderItemsReached
	}

	if err := s.contentRepo.Create(ctx, item); err != nil {
		return nil, err
	}

	s.logger.Info("content created",
		zap.Int64("uid", uid),
		zap.String("itemId", item.ID),
		zap.String("folderId", item.FolderID),
		zap.String("type", params.Type))

	return s.domainToDTO(item), nil
}

// Get 获取单个内容条目
func (s *contentService) Get(ctx context.Context, uid int64, id string) (*dto.ContentDTO, error) {
	item, err := s.contentRepo.Get(ctx, id, uid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, code.ErrorContentNotFound
		}
		return nil, err
	}
	return s.domainToDTO(item), nil
}

// ListByFolder 列出文件夹内全部条目
func (s *contentService) ListByFolder(ctx context.Context, uid int64, folderID string) ([]*dto.ContentDTO, error) {
	if _, err := s.folderRepo.Get(ctx, folderID, uid); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, code.ErrorFolderNotFound
		}
		return nil, err
	}

	items, err := s.contentRepo.ListByFolder(ctx, folderID, uid)
	if err != nil {
		return nil, err
	}

	out := make([]*dto.ContentDTO, 0, len(items))
	for _, item := range items {
		out = append(out, s.domainToDTO(item))
	}
	return out, nil
}

// Update 更新内容条目。类型不可变更，请求中不携带类型。
func (s *contentService) Update(ctx context.Context, uid int64, params *dto.ContentUpdateRequest) (*dto.ContentDTO, error) {
	item, err := s.contentRepo.Get(ctx, params.ID, uid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, code.ErrorContentNotFound
		}
		return nil, err
	}

	if params.FolderID != item.FolderID {
		if _, err := s.folderRepo.Get(ctx, params.FolderID, uid); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, code.ErrorFolderNotFound
			}
			return nil, err
		}
	}

	item.Title = params.Title
	item.Description = params.Description
	item.URL = params.URL
	item.Content = params.Content
	item.Thumbnail = params.Thumbnail
	item.FolderID = params.FolderID
	item.Metadata = params.Metadata

	if err := s.contentRepo.Update(ctx, item); err != nil {
		return nil, err
	}
	return s.domainToDTO(item), nil
}

// Delete 删除内容条目
func (s *contentService) Delete(ctx context.Context, uid int64, id string) error {
	if _, err := s.contentRepo.Get(ctx, id, uid); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return code.ErrorContentNotFound
		}
		return err
	}
	return s.contentRepo.Delete(ctx, id, uid)
}
