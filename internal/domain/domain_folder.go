package domain

import "time"

// SharedStatus 定义文件夹分享状态
type SharedStatus string

const (
	// SharedStatusPrivate 无激活市场版本
	SharedStatusPrivate SharedStatus = "private"
	// SharedStatusSynced 激活版本指纹与当前内容一致
	SharedStatusSynced SharedStatus = "shared-synced"
	// SharedStatusOutdated 激活版本指纹与当前内容不一致
	SharedStatusOutdated SharedStatus = "shared-outdated"
)

// Folder 文件夹领域模型
type Folder struct {
	ID                  string
	Name                string
	Description         string
	Color               string
	Icon                string
	ParentID            string
	UID                 int64
	ItemCount           int64
	SharedStatus        SharedStatus
	SharedVersionID     string
	LastSharedAt        time.Time
	DownloadCount       int64
	SourceMarketplaceID string
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// IsShared 判断文件夹是否存在激活的市场版本
func (f *Folder) IsShared() bool {
	return f.SharedStatus != SharedStatusPrivate && f.SharedVersionID != ""
}
