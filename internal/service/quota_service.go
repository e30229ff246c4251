package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/haierkeys/content-organizer-service/internal/domain"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// Size estimation constants. Deliberately conservative: overestimate
// rather than underestimate so a quota breach never goes unnoticed.
// 体积估算常量。刻意保守：宁可高估也不低估，避免静默超限。
const (
	sizeKiB = int64(1024)
	sizeMiB = 1024 * sizeKiB

	itemOverheadSize     = 5 * sizeKiB   // per-item storage/indexing overhead // 每条目存储与索引开销
	linkThumbnailSize    = 500 * sizeKiB // thumbnail allowance for links // 链接缩略图预留
	linkMetadataSize     = 50 * sizeKiB  // metadata allowance for links // 链接元数据预留
	noteMinSize          = 1 * sizeKiB
	imageExternalSize    = 500 * sizeKiB // external http(s) reference, thumbnail only // 外链仅缩略图
	imageUploadedSize    = 5 * sizeMiB   // assumed uploaded binary // 视为已上传二进制
	documentExternalSize = 100 * sizeKiB
	documentUploadedSize = 10 * sizeMiB
	unknownTypeSize      = 10 * sizeKiB

	storageWarningPercent = 90.0
)

// GateResult 配额闸门判定结果
type GateResult struct {
	Allowed bool
	// Reason 拒绝原因，放行时为空
	Reason string
	// AddedSize 放行时返回的条目估算体积
	AddedSize int64
}

// Allow 放行
func Allow(addedSize int64) GateResult {
	return GateResult{Allowed: true, AddedSize: addedSize}
}

// Deny 拒绝并携带原因
func Deny(reason string) GateResult {
	return GateResult{Allowed: false, Reason: reason}
}

// QuotaService defines the quota estimation service interface.
// The gating methods are pure: they take a previously computed usage
// snapshot and never touch storage, so callers own usage freshness.
// QuotaService 定义配额估算服务接口。闸门方法是纯函数：
// 只接受事先算好的用量快照，不触达存储，快照新鲜度由调用方负责。
type QuotaService interface {
	// ItemSize estimates a single item's storage footprint
	// ItemSize 估算单个条目的存储占用
	ItemSize(item *domain.ContentItem) int64

	// FolderSize estimates the sum footprint of a folder's items
	// FolderSize 估算文件夹全部条目的存储占用
	FolderSize(items []*domain.ContentItem) int64

	// ComputeUsage builds a usage snapshot from supplied data
	// ComputeUsage 基于给定数据构建用量快照
	ComputeUsage(uid int64, items []*domain.ContentItem, folderCount, sharedCount int64, plan domain.PlanTier) *domain.UserUsage

	// GetUsage loads a user's data and computes a fresh usage snapshot
	// GetUsage 加载用户数据并计算最新用量快照
	GetUsage(ctx context.Context, uid int64) (*domain.UserUsage, error)

	// CanAddItem gates adding one item against the storage cap
	// CanAddItem 判定新增条目是否超出存储上限
	CanAddItem(usage *domain.UserUsage, item *domain.ContentItem) GateResult

	// CanCreateFolder gates creating a folder against the folder cap
	// CanCreateFolder 判定新建文件夹是否超出数量上限
	CanCreateFolder(usage *domain.UserUsage) GateResult

	// CanShareToMarketplace gates publishing a share
	// CanShareToMarketplace 判定市场分享是否超限
	CanShareToMarketplace(usage *domain.UserUsage, isPaidShare bool) GateResult
}

// quotaService implementation of QuotaService interface
// quotaService 实现 QuotaService 接口
type quotaService struct {
	userRepo    domain.UserRepository
	folderRepo  domain.FolderRepository
	contentRepo domain.ContentRepository
	versionRepo domain.VersionRepository
	logger      *zap.Logger

	// group 合并同一用户并发的用量计算
	group singleflight.Group
}

// NewQuotaService 创建 QuotaService 实例
func NewQuotaService(
	userRepo domain.UserRepository,
	folderRepo domain.FolderRepository,
	contentRepo domain.ContentRepository,
	versionRepo domain.VersionRepository,
	logger *zap.Logger,
) QuotaService {
	return &quotaService{
		userRepo:    userRepo,
		folderRepo:  folderRepo,
		contentRepo: contentRepo,
		versionRepo: versionRepo,
		logger:      logger,
	}
}

// textSize 返回 ceil(字符数 × 2.5) 字节。对混合单字节与多字节
// 码点的文本是足够悲观的近似，不追求逐字节精确的 UTF-8 编码长度。
func textSize(s string) int64 {
	n := int64(utf8.RuneCountInString(s))
	return (5*n + 1) / 2
}

// isExternalURL 判断 url 是否为外部 http(s) 引用
func isExternalURL(url string) bool {
	return strings.HasPrefix(url, "http://") || strings.HasPrefix(url, "https://")
}

// ItemSize 估算单个条目的存储占用。按类型封闭分派，
// 新增第五种类型必须在此显式扩展分支。
func (s *quotaService) ItemSize(item *domain.ContentItem) int64 {
	var size int64

	switch item.Type {
	case domain.ContentTypeLink:
		size = textSize(item.Title) + textSize(item.Description) + textSize(item.URL)
		if item.HasThumbnail() {
			size += linkThumbnailSize
		}
		if item.HasMetadata() {
			size += linkMetadataSize
		}
	case domain.ContentTypeNote:
		size = 2 * textSize(item.Content)
		if size < noteMinSize {
			size = noteMinSize
		}
	case domain.ContentTypeImage:
		if isExternalURL(item.URL) {
			size = imageExternalSize
		} else {
			size = imageUploadedSize
		}
	case domain.ContentTypeDocument:
		if isExternalURL(item.URL) {
			size = documentExternalSize
		} else {
			size = documentUploadedSize
		}
	default:
		size = unknownTypeSize
	}

	return size + itemOverheadSize
}

// FolderSize 估算文件夹全部条目的存储占用
func (s *quotaService) FolderSize(items []*domain.ContentItem) int64 {
	var total int64
	for _, item := range items {
		total += s.ItemSize(item)
	}
	return total
}

// clampPercent 计算 100*current/limit 并截断到 [0,100]
func clampPercent(current, limit int64) float64 {
	if limit <= 0 {
		return 100
	}
	p := 100 * float64(current) / float64(limit)
	if p > 100 {
		return 100
	}
	if p < 0 {
		return 0
	}
	return p
}

// ComputeUsage 基于给定数据构建用量快照
func (s *quotaService) ComputeUsage(uid int64, items []*domain.ContentItem, folderCount, sharedCount int64, plan domain.PlanTier) *domain.UserUsage {
	limits := domain.LimitsFor(plan)

	usedBytes := s.FolderSize(items)
	// 向上取整到 MiB
	storageMiB := (usedBytes + sizeMiB - 1) / sizeMiB

	usage := &domain.UserUsage{
		UID:         uid,
		Plan:        plan,
		Limits:      limits,
		UsedBytes:   usedBytes,
		StorageMiB:  storageMiB,
		FolderCount: folderCount,
		SharedCount: sharedCount,

		StoragePercent:     clampPercent(usedBytes, limits.StorageBytes),
		FolderPercent:      clampPercent(folderCount, limits.MaxFolders),
		MarketplacePercent: clampPercent(sharedCount, limits.MaxMarketplaceShares),

		CalculatedAt: time.Now(),
	}

	usage.IsStorageWarning = usage.StoragePercent >= storageWarningPercent
	usage.IsStorageFull = usage.StoragePercent >= 100
	usage.IsFoldersFull = folderCount >= limits.MaxFolders

	return usage
}

// GetUsage 加载用户数据并计算最新用量快照。
// 同一用户的并发调用通过 singleflight 合并为一次计算。
func (s *quotaService) GetUsage(ctx context.Context, uid int64) (*domain.UserUsage, error) {
	v, err, _ := s.group.Do(strconv.FormatInt(uid, 10), func() (interface{}, error) {
		return s.loadUsage(ctx, uid)
	})
	if err != nil {
		return nil, err
	}
	return v.(*domain.UserUsage), nil
}

func (s *quotaService) loadUsage(ctx context.Context, uid int64) (*domain.UserUsage, error) {
	user, err := s.userRepo.GetByUID(ctx, uid)
	if err != nil {
		return nil, err
	}

	items, err := s.contentRepo.ListByUID(ctx, uid)
	if err != nil {
		return nil, err
	}

	folderCount, err := s.folderRepo.CountByUID(ctx, uid)
	if err != nil {
		return nil, err
	}

	sharedCount, err := s.versionRepo.CountActiveByUID(ctx, uid)
	if err != nil {
		return nil, err
	}

	usage := s.ComputeUsage(uid, items, folderCount, sharedCount, user.Plan)

	s.logger.Debug("usage computed",
		zap.Int64("uid", uid),
		zap.Int64("usedBytes", usage.UsedBytes),
		zap.Int64("folderCount", folderCount),
		zap.Int64("sharedCount", sharedCount))

	return usage, nil
}

// CanAddItem 判定新增条目是否超出存储上限。放行时返回估算体积。
func (s *quotaService) CanAddItem(usage *domain.UserUsage, item *domain.ContentItem) GateResult {
	addedSize := s.ItemSize(item)
	projected := usage.UsedBytes + addedSize
	if projected > usage.Limits.StorageBytes {
		return Deny(fmt.Sprintf("adding this item requires %d KiB more storage, which exceeds the %d MiB plan limit",
			addedSize/sizeKiB, usage.Limits.StorageBytes/sizeMiB))
	}
	return Allow(addedSize)
}

// CanCreateFolder 判定新建文件夹是否超出数量上限
func (s *quotaService) CanCreateFolder(usage *domain.UserUsage) GateResult {
	if usage.IsFoldersFull {
		return Deny(fmt.Sprintf("folder limit of %d reached", usage.Limits.MaxFolders))
	}
	return Allow(0)
}

// CanShareToMarketplace 判定市场分享是否超限。
// 先检查分享数量，再检查付费权限，返回首个不满足的原因。
func (s *quotaService) CanShareToMarketplace(usage *domain.UserUsage, isPaidShare bool) GateResult {
	if usage.SharedCount >= usage.Limits.MaxMarketplaceShares {
		return Deny(fmt.Sprintf("marketplace share limit of %d reached", usage.Limits.MaxMarketplaceShares))
	}
	if isPaidShare && !usage.Limits.AllowPaidShares {
		return Deny("paid marketplace sales are not available on the current plan")
	}
	return Allow(0)
}
