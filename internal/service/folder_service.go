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

// FolderService 定义文件夹业务服务接口
type FolderService interface {
	// Create 新建文件夹，受文件夹数量闸门约束
	Create(ctx context.Context, uid int64, params *dto.FolderCreateRequest) (*dto.FolderDTO, error)

	// Get 获取单个文件夹
	Get(ctx context.Context, uid int64, id string) (*dto.FolderDTO, error)

	// List 列出用户全部文件夹
	List(ctx context.Context, uid int64) ([]*dto.FolderDTO, error)

	// Update 更新文件夹基础字段
	Update(ctx context.Context, uid int64, params *dto.FolderUpdateRequest) (*dto.FolderDTO, error)

	// Delete deletes a folder and cascades to its content items.
	// Published marketplace versions are left untouched: consumers
	// who imported them must not lose access.
	// Delete 删除文件夹并级联删除其内容条目。已发布的市场版本
	// 保持不动：已导入的消费者不能失去访问。
	Delete(ctx context.Context, uid int64, id string) error
}

// folderService 实现 FolderService 接口
type folderService struct {
	folderRepo  domain.FolderRepository
	contentRepo domain.ContentRepository
	quota       QuotaService
	logger      *zap.Logger
}

// NewFolderService 创建 FolderService 实例
func NewFolderService(folderRepo domain.FolderRepository, contentRepo domain.ContentRepository, quota QuotaService, logger *zap.Logger) FolderService {
	return &folderService{
		folderRepo:  folderRepo,
		contentRepo: contentRepo,
		quota:       quota,
		logger:      logger,
	}
}

// domainToDTO 将领域模型转换为 DTO
func (s *folderService) domainToDTO(folder *domain.Folder) *dto.FolderDTO {
	if folder == nil {
		return nil
	}
	return &dto.FolderDTO{
		ID:                  folder.ID,
		Name:                folder.Name,
		Description:         folder.Description,
		Color:               folder.Color,
		Icon:                folder.Icon,
		ParentID:            folder.ParentID,
		ItemCount:           folder.ItemCount,
		SharedStatus:        string(folder.SharedStatus),
		SharedVersionID:     folder.SharedVersionID,
		LastSharedAt:        timex.Time(folder.LastSharedAt),
		DownloadCount:       folder.DownloadCount,
		SourceMarketplaceID: folder.SourceMarketplaceID,
		CreatedAt:           timex.Time(folder.CreatedAt),
		UpdatedAt:           timex.Time(folder.UpdatedAt),
	}
}

// Create 新建文件夹，受文件夹数量闸门约束
func (s *folderService) Create(ctx context.Context, uid int64, params *dto.FolderCreateRequest) (*dto.FolderDTO, error) {
	usage, err := s.quota.GetUsage(ctx, uid)
	if err != nil {
		return nil, err
	}
	if gate := s.quota.CanCreateFolder(usage); !gate.Allowed {
		return nil, code.ErrorFolderQuotaReached.WithDetails(gate.Reason)
	}

	folder := &domain.Folder{
		ID:           uuid.NewString(),
		Name:         params.Name,
		Description:  params.Description,
		Color:        params.Color,
		Icon:         params.Icon,
		ParentID:     params.ParentID,
		UID:          uid,
		SharedStatus: domain.SharedStatusPrivate,
	}
	if err := s.folderRepo.Create(ctx, folder); err != nil {
		return nil, err
	}

	s.logger.Info("folder created", zap.Int64("uid", uid), zap.String("folderId", folder.ID))

	return s.domainToDTO(folder), nil
}

// Get 获取单个文件夹并补齐条目数
func (s *folderService) Get(ctx context.Context, uid int64, id string) (*dto.FolderDTO, error) {
	folder, err := s.folderRepo.Get(ctx, id, uid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, code.ErrorFolderNotFound
		}
		return nil, err
	}

	count, err := s.contentRepo.CountByFolder(ctx, id, uid)
	if err != nil {
		return nil, err
	}
	folder.ItemCount = count

	return s.domainToDTO(folder), nil
}

// List 列出用户全部文件夹
func (s *folderService) List(ctx context.Context, uid int64) ([]*dto.FolderDTO, error) {
	folders, err := s.folderRepo.ListByUID(ctx, uid)
	if err != nil {
		return nil, err
	}

	out := make([]*dto.FolderDTO, 0, len(folders))
	for _, folder := range folders {
		count, err := s.contentRepo.CountByFolder(ctx, folder.ID, uid)
		if err != nil {
			return nil, err
		}
		folder.ItemCount = count
		out = append(out, s.domainToDTO(folder))
	}
	return out, nil
}

// Update 更新文件夹基础字段
func (s *folderService) Update(ctx context.Context, uid int64, params *dto.FolderUpdateRequest) (*dto.FolderDTO, error) {
	folder, err := s.folderRepo.Get(ctx, params.ID, uid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, code.ErrorFolderNotFound
		}
		return nil, err
	}

	folder.Name = params.Name
	folder.Description = params.Description
	folder.Color = params.Color
	folder.Icon = params.Icon
	folder.ParentID = params.ParentID

	if err := s.folderRepo.Update(ctx, folder); err != nil {
		return nil, err
	}
	return s.domainToDTO(folder), nil
}

// Delete 删除文件夹并级联删除其内容条目
func (s *folderService) Delete(ctx context.Context, uid int64, id string) error {
	if _, err := s.folderRepo.Get(ctx, id, uid); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return code.ErrorFolderNotFound
		}
		return err
	}

	if err := s.contentRepo.DeleteByFolder(ctx, id, uid); err != nil {
		return err
	}

	if err := s.folderRepo.Delete(ctx, id, uid); err != nil {
		return err
	}

	s.logger.Info("folder deleted",
		zap.Int64("uid", uid),
		zap.String("folderId", id))
	return nil
}
