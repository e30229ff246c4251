package domain

import "time"

// Version retention policy applied by the background prune task.
// 后台清理任务使用的版本保留策略。
const (
	// RetainVersionCount 每个文件夹无条件保留的最近版本数
	RetainVersionCount = 3
	// RetainVersionAge 超过该时长的非激活旧版本视为过期
	RetainVersionAge = 90 * 24 * time.Hour
	// RetainRollbackWindow 删除旧版本后保证可回滚的时间窗口
	RetainRollbackWindow = 30 * 24 * time.Hour
)

// SnapshotItem 快照中的单个条目，发布时从文件夹内容深拷贝而来，
// 之后对源内容的任何修改都不会影响它。
type SnapshotItem struct {
	ID          string            `json:"id"`
	Title       string            `json:"title"`
	Description string            `json:"description,omitempty"`
	Type        ContentType       `json:"type"`
	URL         string            `json:"url,omitempty"`
	Content     string            `json:"content,omitempty"`
	Thumbnail   string            `json:"thumbnail,omitempty"`
	Metadata    map[string]string `json:"metadata,omitempty"`
}

// VersionSnapshot 发布时刻文件夹状态的完整快照
type VersionSnapshot struct {
	FolderName        string         `json:"folderName"`
	Description       string         `json:"description,omitempty"`
	Items             []SnapshotItem `json:"items"`
	ItemCount         int            `json:"itemCount"`
	OriginalCreatedAt time.Time      `json:"originalCreatedAt"`
}

// ShareOptions 发布时的市场展示选项
type ShareOptions struct {
	Title       string
	Description string
	Category    string
	Tags        []string
	Price       int64
	Currency    string
	CoverImage  string
}

// MarketplaceVersion 市场版本领域模型。版本号在同一文件夹内
// 单调递增且永不复用；同一文件夹至多一个激活版本。
type MarketplaceVersion struct {
	ID            string
	FolderID      string
	UID           int64
	Number        int64
	Fingerprint   string
	Snapshot      VersionSnapshot
	Title         string
	Description   string
	Category      string
	Tags          []string
	Price         int64
	Currency      string
	CoverImage    string
	IsActive      bool
	DownloadCount int64
	LikeCount     int64
	ViewCount     int64
	PublishedAt   time.Time
	CreatedAt     time.Time
}

// IsPaid 判断版本是否为付费分享
func (v *MarketplaceVersion) IsPaid() bool {
	return v.Price > 0
}
