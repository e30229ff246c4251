package service

import (
	"context"
	"errors"
	"time"

	"github.com/haierkeys/content-organizer-service/internal/dao"
	"github.com/haierkeys/content-organizer-service/internal/domain"
	"github.com/haierkeys/content-organizer-service/pkg/fingerprint"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// PublishResult 发布结果。持久层错误一律转成 Success=false，
// 不向调用方抛出。
type PublishResult struct {
	Success bool
	Message string
	Version *domain.MarketplaceVersion
}

// PreviewResult 待发布变更预览
type PreviewResult struct {
	HasChanges bool
	Summary    string
	Details    fingerprint.DiffResult
}

// ImportResult 导入结果
type ImportResult struct {
	Success bool
	Message string
	Folder  *domain.Folder
}

const (
	msgPublished       = "published"
	msgAlreadyUpToDate = "already up to date"
	msgPublishConflict = "another publish for this folder is in progress, try again"
)

// SharingService defines the folder sharing service interface
// SharingService 定义文件夹分享服务接口
type SharingService interface {
	// Publish publishes the folder's current content as a new
	// marketplace version; a fingerprint match with the active
	// version makes it a successful no-op
	// Publish 将文件夹当前内容发布为新的市场版本;
	// 指纹与激活版本一致时为成功的空操作
	Publish(ctx context.Context, uid int64, folderID string, options domain.ShareOptions) *PublishResult

	// CheckSyncStatus recomputes the folder's three-state sharing status
	// CheckSyncStatus 重算文件夹的三态分享状态
	CheckSyncStatus(ctx context.Context, uid int64, folderID string) (domain.SharedStatus, error)

	// PreviewChanges diffs current items against the active version's snapshot
	// PreviewChanges 对比当前内容与激活版本快照的差异
	PreviewChanges(ctx context.Context, uid int64, folderID string) (*PreviewResult, error)

	// ImportVersion copies a marketplace version into a brand-new folder
	// ImportVersion 将市场版本复制为全新文件夹
	ImportVersion(ctx context.Context, versionID string, uid int64) *ImportResult

	// Unshare deactivates the folder's active version and returns it to private
	// Unshare 停用激活版本并将文件夹恢复为私有
	Unshare(ctx context.Context, uid int64, folderID string) error

	// ListVersions lists the folder's version history, newest first
	// ListVersions 列出文件夹的版本历史，新的在前
	ListVersions(ctx context.Context, uid int64, folderID string) ([]*domain.MarketplaceVersion, error)

	// BrowseMarketplace pages through active marketplace versions
	// BrowseMarketplace 分页浏览市场内的激活版本
	BrowseMarketplace(ctx context.Context, category string, page, pageSize int) ([]*domain.MarketplaceVersion, error)

	// GetVersion retrieves one marketplace version and counts the view
	// GetVersion 获取单个市场版本并记一次浏览
	GetVersion(ctx context.Context, versionID string) (*domain.MarketplaceVersion, error)

	// LikeVersion 点赞市场版本
	LikeVersion(ctx context.Context, versionID string) error
}

// sharingService implementation of SharingService interface
// sharingService 实现 SharingService 接口
type sharingService struct {
	folderRepo  domain.FolderRepository
	contentRepo domain.ContentRepository
	versionRepo domain.VersionRepository
	quota       QuotaService
	config      ShareServiceConfig
	logger      *zap.Logger
}

// NewSharingService 创建 SharingService 实例
func NewSharingService(
	folderRepo domain.FolderRepository,
	contentRepo domain.ContentRepository,
	versionRepo domain.VersionRepository,
	quota QuotaService,
	config ShareServiceConfig,
	logger *zap.Logger,
) SharingService {
	return &sharingService{
		folderRepo:  folderRepo,
		contentRepo: contentRepo,
		versionRepo: versionRepo,
		quota:       quota,
		config:      config,
		logger:      logger,
	}
}

// itemsToFingerprint 将内容条目投影为指纹输入
func itemsToFingerprint(items []*domain.ContentItem) []fingerprint.Item {
	out := make([]fingerprint.Item, 0, len(items))
	for _, item := range items {
		out = append(out, fingerprint.Item{
			ID:      item.ID,
			Title:   item.Title,
			Type:    string(item.Type),
			URL:     item.URL,
			Content: item.Content,
		})
	}
	return out
}

// snapshotToFingerprint 将快照条目投影为指纹输入
func snapshotToFingerprint(items []domain.SnapshotItem) []fingerprint.Item {
	out := make([]fingerprint.Item, 0, len(items))
	for _, item := range items {
		out = append(out, fingerprint.Item{
			ID:      item.ID,
			Title:   item.Title,
			Type:    string(item.Type),
			URL:     item.URL,
			Content: item.Content,
		})
	}
	return out
}

// buildSnapshot 对当前条目做深拷贝，生成与源内容完全独立的快照
func buildSnapshot(folder *domain.Folder, items []*domain.ContentItem) (domain.VersionSnapshot, error) {
	snapItems := make([]domain.SnapshotItem, 0, len(items))
	for _, item := range items {
		var si domain.SnapshotItem
		err := copier.CopyWithOption(&si, item, copier.Option{DeepCopy: true})
		if err != nil {
			return domain.VersionSnapshot{}, err
		}
		snapItems = append(snapItems, si)
	}
	return domain.VersionSnapshot{
		FolderName:        folder.Name,
		Description:       folder.Description,
		Items:             snapItems,
		ItemCount:         len(snapItems),
		OriginalCreatedAt: folder.CreatedAt,
	}, nil
}

// getActiveVersion 返回激活版本，无激活版本时返回 nil 而非错误
func (s *sharingService) getActiveVersion(ctx context.Context, folderID string) (*domain.MarketplaceVersion, error) {
	v, err := s.versionRepo.GetActiveByFolder(ctx, folderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return v, nil
}

// Publish 发布文件夹当前内容。指纹只计算一次，
// 同时用于冗余检查和新版本记录。
func (s *sharingService) Publish(ctx context.Context, uid int64, folderID string, options domain.ShareOptions) *PublishResult {
	fail := func(msg string, err error) *PublishResult {
		s.logger.Warn("publish failed",
			zap.Int64("uid", uid),
			zap.String("folderId", folderID),
			zap.Error(err))
		return &PublishResult{Success: false, Message: msg}
	}

	folder, err := s.folderRepo.Get(ctx, folderID, uid)
	if err != nil {
		return fail("folder not found", err)
	}

	items, err := s.contentRepo.ListByFolder(ctx, folderID, uid)
	if err != nil {
		return fail("failed to load folder content", err)
	}

	digest := fingerprint.Compute(itemsToFingerprint(items))

	active, err := s.getActiveVersion(ctx, folderID)
	if err != nil {
		return fail("failed to load active version", err)
	}

	if active != nil && active.Fingerprint == digest {
		return &PublishResult{Success: true, Message: msgAlreadyUpToDate, Version: active}
	}

	usage, err := s.quota.GetUsage(ctx, uid)
	if err != nil {
		return fail("failed to compute usage", err)
	}
	// 重复发布不增加分享数，只有首次分享参与数量闸门
	if active == nil {
		if gate := s.quota.CanShareToMarketplace(usage, options.Price > 0); !gate.Allowed {
			return &PublishResult{Success: false, Message: gate.Reason}
		}
	} else if options.Price > 0 && !usage.Limits.AllowPaidShares {
		return &PublishResult{Success: false, Message: "paid marketplace sales are not available on the current plan"}
	}

	latest, err := s.versionRepo.GetLatestNumber(ctx, folderID)
	if err != nil {
		return fail("failed to resolve version number", err)
	}

	snapshot, err := buildSnapshot(folder, items)
	if err != nil {
		return fail("failed to snapshot folder content", err)
	}

	title := options.Title
	if title == "" {
		title = folder.Name
	}
	currency := options.Currency
	if currency == "" && options.Price > 0 {
		currency = s.config.DefaultCurrency
	}

	now := time.Now()
	version := &domain.MarketplaceVersion{
		ID:          uuid.NewString(),
		FolderID:    folderID,
		UID:         uid,
		Number:      latest + 1,
		Fingerprint: digest,
		Snapshot:    snapshot,
		Title:       title,
		Description: options.Description,
		Category:    options.Category,
		Tags:        options.Tags,
		Price:       options.Price,
		Currency:    currency,
		CoverImage:  options.CoverImage,
		IsActive:    true,
		PublishedAt: now,
	}

	if err := s.versionRepo.PublishNewVersion(ctx, version); err != nil {
		if errors.Is(err, dao.ErrVersionConflict) {
			return fail(msgPublishConflict, err)
		}
		return fail("failed to persist new version", err)
	}

	if err := s.folderRepo.UpdateShareState(ctx, folderID, uid, domain.SharedStatusSynced, version.ID, now); err != nil {
		return fail("failed to update folder sharing state", err)
	}

	s.logger.Info("folder published",
		zap.Int64("uid", uid),
		zap.String("folderId", folderID),
		zap.String("versionId", version.ID),
		zap.Int64("versionNumber", version.Number),
		zap.String("fingerprint", digest))

	return &PublishResult{Success: true, Message: msgPublished, Version: version}
}

// SyncStatus 由激活版本与当前条目集推导三态状态，纯函数
func SyncStatus(active *domain.MarketplaceVersion, items []*domain.ContentItem) domain.SharedStatus {
	if active == nil {
		return domain.SharedStatusPrivate
	}
	if active.Fingerprint == fingerprint.Compute(itemsToFingerprint(items)) {
		return domain.SharedStatusSynced
	}
	return domain.SharedStatusOutdated
}

// CheckSyncStatus 重算文件夹的三态分享状态，只读不落库
func (s *sharingService) CheckSyncStatus(ctx context.Context, uid int64, folderID string) (domain.SharedStatus, error) {
	if _, err := s.folderRepo.Get(ctx, folderID, uid); err != nil {
		return "", err
	}

	items, err := s.contentRepo.ListByFolder(ctx, folderID, uid)
	if err != nil {
		return "", err
	}

	active, err := s.getActiveVersion(ctx, folderID)
	if err != nil {
		return "", err
	}

	return SyncStatus(active, items), nil
}

// PreviewChanges 对比当前内容与激活版本快照的差异。
// 无激活版本时返回中性的"无变更"结果而非报错。
func (s *sharingService) PreviewChanges(ctx context.Context, uid int64, folderID string) (*PreviewResult, error) {
	if _, err := s.folderRepo.Get(ctx, folderID, uid); err != nil {
		return nil, err
	}

	active, err := s.getActiveVersion(ctx, folderID)
	if err != nil {
		return nil, err
	}
	if active == nil {
		return &PreviewResult{HasChanges: false, Summary: fingerprint.NoChangesSummary}, nil
	}

	items, err := s.contentRepo.ListByFolder(ctx, folderID, uid)
	if err != nil {
		return nil, err
	}

	diff := fingerprint.Diff(snapshotToFingerprint(active.Snapshot.Items), itemsToFingerprint(items))
	return &PreviewResult{
		HasChanges: diff.HasChanges,
		Summary:    fingerprint.Summarize(diff),
		Details:    diff,
	}, nil
}

// ImportVersion 将市场版本深拷贝为全新文件夹。导入的文件夹与
// 原作者的文件夹彼此独立，条目分配新标识。
func (s *sharingService) ImportVersion(ctx context.Context, versionID string, uid int64) *ImportResult {
	fail := func(msg string, err error) *ImportResult {
		s.logger.Warn("import failed",
			zap.Int64("uid", uid),
			zap.String("versionId", versionID),
			zap.Error(err))
		return &ImportResult{Success: false, Message: msg}
	}

	version, err := s.versionRepo.Get(ctx, versionID)
	if err != nil {
		return fail("marketplace version not found", err)
	}

	usage, err := s.quota.GetUsage(ctx, uid)
	if err != nil {
		return fail("failed to compute usage", err)
	}
	if gate := s.quota.CanCreateFolder(usage); !gate.Allowed {
		return &ImportResult{Success: false, Message: gate.Reason}
	}

	folder := &domain.Folder{
		ID:                  uuid.NewString(),
		Name:                version.Snapshot.FolderName,
		Description:         version.Snapshot.Description,
		UID:                 uid,
		SharedStatus:        domain.SharedStatusPrivate,
		SourceMarketplaceID: version.ID,
	}
	if err := s.folderRepo.Create(ctx, folder); err != nil {
		return fail("failed to create folder", err)
	}

	items := make([]*domain.ContentItem, 0, len(version.Snapshot.Items))
	for _, si := range version.Snapshot.Items {
		item := &domain.ContentItem{
			ID:          uuid.NewString(),
			Title:       si.Title,
			Description: si.Description,
			Type:        si.Type,
			URL:         si.URL,
			Content:     si.Content,
			Thumbnail:   si.Thumbnail,
			FolderID:    folder.ID,
			UID:         uid,
		}
		if len(si.Metadata) > 0 {
			item.Metadata = make(map[string]string, len(si.Metadata))
			for k, v := range si.Metadata {
				item.Metadata[k] = v
			}
		}
		items = append(items, item)
	}
	if err := s.contentRepo.CreateBatch(ctx, items); err != nil {
		return fail("failed to copy version content", err)
	}

	if err := s.versionRepo.IncrementDownloads(ctx, versionID); err != nil {
		// 计数失败不影响已完成的导入
		s.logger.Warn("download counter update failed",
			zap.String("versionId", versionID),
			zap.Error(err))
	}

	s.logger.Info("version imported",
		zap.Int64("uid", uid),
		zap.String("versionId", versionID),
		zap.String("folderId", folder.ID),
		zap.Int("itemCount", len(items)))

	return &ImportResult{Success: true, Message: "imported", Folder: folder}
}

// Unshare 停用激活版本并将文件夹恢复为私有
func (s *sharingService) Unshare(ctx context.Context, uid int64, folderID string) error {
	if _, err := s.folderRepo.Get(ctx, folderID, uid); err != nil {
		return err
	}

	active, err := s.getActiveVersion(ctx, folderID)
	if err != nil {
		return err
	}
	if active == nil {
		return nil
	}

	if err := s.versionRepo.Deactivate(ctx, active.ID); err != nil {
		return err
	}
	return s.folderRepo.UpdateShareState(ctx, folderID, uid, domain.SharedStatusPrivate, "", time.Time{})
}

// ListVersions 列出文件夹的版本历史，新的在前
func (s *sharingService) ListVersions(ctx context.Context, uid int64, folderID string) ([]*domain.MarketplaceVersion, error) {
	if _, err := s.folderRepo.Get(ctx, folderID, uid); err != nil {
		return nil, err
	}
	return s.versionRepo.ListByFolder(ctx, folderID)
}

// BrowseMarketplace 分页浏览市场内的激活版本
func (s *sharingService) BrowseMarketplace(ctx context.Context, category string, page, pageSize int) ([]*domain.MarketplaceVersion, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}
	return s.versionRepo.ListActive(ctx, category, pageSize, (page-1)*pageSize)
}

// GetVersion 获取单个市场版本并记一次浏览
func (s *sharingService) GetVersion(ctx context.Context, versionID string) (*domain.MarketplaceVersion, error) {
	version, err := s.versionRepo.Get(ctx, versionID)
	if err != nil {
		return nil, err
	}

	if err := s.versionRepo.IncrementViews(ctx, versionID); err != nil {
		// 计数失败不影响读取
		s.logger.Warn("view counter update failed",
			zap.String("versionId", versionID),
			zap.Error(err))
	}

	return version, nil
}

// LikeVersion 点赞市场版本
func (s *sharingService) LikeVersion(ctx context.Context, versionID string) error {
	if _, err := s.versionRepo.Get(ctx, versionID); err != nil {
		return err
	}
	return s.versionRepo.IncrementLikes(ctx, versionID)
}
