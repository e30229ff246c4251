package domain

import (
	"context"
	"time"
)

// UserRepository 用户存储接口
type UserRepository interface {
	Create(ctx context.Context, user *User) (int64, error)
	GetByUID(ctx context.Context, uid int64) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	Update(ctx context.Context, user *User) error
	UpdatePassword(ctx context.Context, uid int64, password string) error
}

// FolderRepository 文件夹存储接口
type FolderRepository interface {
	Create(ctx context.Context, folder *Folder) error
	Get(ctx context.Context, id string, uid int64) (*Folder, error)
	ListByUID(ctx context.Context, uid int64) ([]*Folder, error)
	CountByUID(ctx context.Context, uid int64) (int64, error)
	Update(ctx context.Context, folder *Folder) error
	Delete(ctx context.Context, id string, uid int64) error
	// UpdateShareState 更新文件夹的分享状态字段
	UpdateShareState(ctx context.Context, id string, uid int64, status SharedStatus, versionID string, sharedAt time.Time) error
}

// ContentRepository 内容条目存储接口
type ContentRepository interface {
	Create(ctx context.Context, item *ContentItem) error
	Get(ctx context.Context, id string, uid int64) (*ContentItem, error)
	ListByFolder(ctx context.Context, folderID string, uid int64) ([]*ContentItem, error)
	ListByUID(ctx context.Context, uid int64) ([]*ContentItem, error)
	CountByFolder(ctx context.Context, folderID string, uid int64) (int64, error)
	Update(ctx context.Context, item *ContentItem) error
	Delete(ctx context.Context, id string, uid int64) error
	// DeleteByFolder 删除文件夹内的全部条目，用于文件夹级联删除
	DeleteByFolder(ctx context.Context, folderID string, uid int64) error
	// CreateBatch 在单个事务内写入一批条目，用于市场导入
	CreateBatch(ctx context.Context, items []*ContentItem) error
}

// VersionRepository 市场版本存储接口
type VersionRepository interface {
	// PublishNewVersion atomically deactivates the folder's current
	// active version (if any) and inserts v as the new active one.
	// Both writes happen in one transaction; a concurrent publish on
	// the same folder fails instead of leaving two active versions.
	// PublishNewVersion 在单个事务内将文件夹当前激活版本置为非激活,
	// 并插入 v 作为新的激活版本。并发发布同一文件夹时失败而非产生
	// 两个激活版本。
	PublishNewVersion(ctx context.Context, v *MarketplaceVersion) error
	Get(ctx context.Context, id string) (*MarketplaceVersion, error)
	GetActiveByFolder(ctx context.Context, folderID string) (*MarketplaceVersion, error)
	ListByFolder(ctx context.Context, folderID string) ([]*MarketplaceVersion, error)
	// GetLatestNumber 返回文件夹历史上最大的版本号，无版本时返回 0。
	// 新版本号由此加一得出，保证回滚后版本号不复用。
	GetLatestNumber(ctx context.Context, folderID string) (int64, error)
	ListActive(ctx context.Context, category string, limit, offset int) ([]*MarketplaceVersion, error)
	CountActiveByUID(ctx context.Context, uid int64) (int64, error)
	IncrementDownloads(ctx context.Context, id string) error
	IncrementLikes(ctx context.Context, id string) error
	IncrementViews(ctx context.Context, id string) error
	// Deactivate 将指定版本置为非激活，不删除
	Deactivate(ctx context.Context, id string) error
	// ListInactiveBefore 列出指定时间之前创建的非激活版本，供清理任务使用
	ListInactiveBefore(ctx context.Context, before time.Time) ([]*MarketplaceVersion, error)
	Delete(ctx context.Context, id string) error
}
