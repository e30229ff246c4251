package dto

import "github.com/haierkeys/content-organizer-service/pkg/timex"

// UsageDTO 用户用量数据传输对象
type UsageDTO struct {
	UID         int64  `json:"uid"`
	Plan        string `json:"plan"`
	UsedBytes   int64  `json:"usedBytes"`
	StorageMiB  int64  `json:"storageMiB"`
	FolderCount int64  `json:"folderCount"`
	SharedCount int64  `json:"sharedCount"`

	StoragePercent     float64 `json:"storagePercent"`
	FolderPercent      float64 `json:"folderPercent"`
	MarketplacePercent float64 `json:"marketplacePercent"`

	IsStorageWarning bool `json:"isStorageWarning"`
	IsStorageFull    bool `json:"isStorageFull"`
	IsFoldersFull    bool `json:"isFoldersFull"`

	Limits UsageLimitsDTO `json:"limits"`

	CalculatedAt timex.Time `json:"calculatedAt"`
}

// UsageLimitsDTO 套餐限额数据传输对象
type UsageLimitsDTO struct {
	StorageBytes         int64 `json:"storageBytes"`
	MaxFolders           int64 `json:"maxFolders"`
	MaxItemsPerFolder    int64 `json:"maxItemsPerFolder"`
	MaxMarketplaceShares int64 `json:"maxMarketplaceShares"`
	AllowPaidShares      bool  `json:"allowPaidShares"`
	AdvancedAnalytics    bool  `json:"advancedAnalytics"`
	PrioritySupport      bool  `json:"prioritySupport"`
	CustomCategories     bool  `json:"customCategories"`
}
