package dto

import "github.com/haierkeys/content-organizer-service/pkg/timex"

// SharePublishRequest 发布文件夹请求参数
type SharePublishRequest struct {
	FolderID    string   `json:"folderId" form:"folderId" binding:"required"`
	Title       string   `json:"title" form:"title"`
	Description string   `json:"description" form:"description"`
	Category    string   `json:"category" form:"category"`
	Tags        []string `json:"tags" form:"tags"`
	Price       int64    `json:"price" form:"price" binding:"min=0"`
	Currency    string   `json:"currency" form:"currency"`
	CoverImage  string   `json:"coverImage" form:"coverImage"`
}

// ShareStatusRequest 查询分享状态请求参数
type ShareStatusRequest struct {
	FolderID string `json:"folderId" form:"folderId" binding:"required"`
}

// ShareImportRequest 导入市场版本请求参数
type ShareImportRequest struct {
	VersionID string `json:"versionId" form:"versionId" binding:"required"`
}

// SharePublishResponse 发布结果响应
type SharePublishResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Version *VersionDTO `json:"version,omitempty"`
}

// ShareStatusResponse 分享状态响应
type ShareStatusResponse struct {
	FolderID     string `json:"folderId"`
	SharedStatus string `json:"sharedStatus"`
}

// SharePreviewResponse 变更预览响应
type SharePreviewResponse struct {
	HasChanges bool     `json:"hasChanges"`
	Summary    string   `json:"summary"`
	Added      []string `json:"added"`
	Removed    []string `json:"removed"`
	Modified   []string `json:"modified"`
}

// ShareImportResponse 导入结果响应
type ShareImportResponse struct {
	Success bool       `json:"success"`
	Message string     `json:"message"`
	Folder  *FolderDTO `json:"folder,omitempty"`
}

// VersionDTO 市场版本数据传输对象
type VersionDTO struct {
	ID            string     `json:"id"`
	FolderID      string     `json:"folderId"`
	Number        int64      `json:"number"`
	Fingerprint   string     `json:"fingerprint"`
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	Category      string     `json:"category"`
	Tags          []string   `json:"tags"`
	Price         int64      `json:"price"`
	Currency      string     `json:"currency"`
	CoverImage    string     `json:"coverImage"`
	IsActive      bool       `json:"isActive"`
	ItemCount     int        `json:"itemCount"`
	DownloadCount int64      `json:"downloadCount"`
	LikeCount     int64      `json:"likeCount"`
	ViewCount     int64      `json:"viewCount"`
	PublishedAt   timex.Time `json:"publishedAt"`
}

// MarketplaceLikeRequest 点赞请求参数
type MarketplaceLikeRequest struct {
	VersionID string `json:"versionId" form:"versionId" binding:"required"`
}
