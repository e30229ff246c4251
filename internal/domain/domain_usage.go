package domain

import "time"

// PlanTier 定义用户套餐等级
type PlanTier string

const (
	PlanFree PlanTier = "free"
	PlanPro  PlanTier = "pro"
)

// PlanLimits 套餐限额与功能开关
type PlanLimits struct {
	// StorageBytes 估算存储上限
	StorageBytes int64
	// MaxFolders 文件夹总数上限
	MaxFolders int64
	// MaxItemsPerFolder 单个文件夹条目数上限，所有套餐一致
	MaxItemsPerFolder int64
	// MaxMarketplaceShares 同时激活的市场分享数上限
	MaxMarketplaceShares int64
	// AllowPaidShares 是否允许付费分享
	AllowPaidShares bool
	// AdvancedAnalytics 是否提供高级统计
	AdvancedAnalytics bool
	// PrioritySupport 是否提供优先支持
	PrioritySupport bool
	// CustomCategories 是否允许自定义分类
	CustomCategories bool
}

// 新增套餐只需在此表加一行
var planLimits = map[PlanTier]PlanLimits{
	PlanFree: {
		StorageBytes:         1 << 30, // 1 GiB
		MaxFolders:           10,
		MaxItemsPerFolder:    500,
		MaxMarketplaceShares: 3,
		AllowPaidShares:      false,
		AdvancedAnalytics:    false,
		PrioritySupport:      false,
		CustomCategories:     false,
	},
	PlanPro: {
		StorageBytes:         50 << 30, // 50 GiB
		MaxFolders:           100,
		MaxItemsPerFolder:    500,
		MaxMarketplaceShares: 50,
		AllowPaidShares:      true,
		AdvancedAnalytics:    true,
		PrioritySupport:      true,
		CustomCategories:     true,
	},
}

// LimitsFor returns the quota limits for the given plan tier.
// Unknown tiers fall back to the free plan.
// LimitsFor 返回指定套餐的限额，未知套餐按免费套餐处理。
func LimitsFor(plan PlanTier) PlanLimits {
	if l, ok := planLimits[plan]; ok {
		return l
	}
	return planLimits[PlanFree]
}

// UserUsage 用户用量快照。按需重算而非持久化，取值仅在计算瞬间有效，
// 并发写入可能随时使其过期，调用方按乐观软限额使用。
type UserUsage struct {
	UID         int64
	Plan        PlanTier
	Limits      PlanLimits
	UsedBytes   int64
	StorageMiB  int64
	FolderCount int64
	SharedCount int64

	StoragePercent     float64
	FolderPercent      float64
	MarketplacePercent float64

	IsStorageWarning bool
	IsStorageFull    bool
	IsFoldersFull    bool

	CalculatedAt time.Time
}
