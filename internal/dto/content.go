package dto

import "github.com/haierkeys/content-organizer-service/pkg/timex"

// ContentCreateRequest 新建内容条目请求参数
type ContentCreateRequest struct {
	Title       string            `json:"title" form:"title" binding:"required,max=256"`
	Description string            `json:"description" form:"description"`
	Type        string            `json:"type" form:"type" binding:"required,oneof=link note image document"`
	URL         string            `json:"url" form:"url"`
	Content     string            `json:"content" form:"content"`
	Thumbnail   string            `json:"thumbnail" form:"thumbnail"`
	FolderID    string            `json:"folderId" form:"folderId" binding:"required"`
	Metadata    map[string]string `json:"metadata" form:"metadata"`
}

// ContentUpdateRequest 更新内容条目请求参数。类型不可变更。
type ContentUpdateRequest struct {
	ID          string            `json:"id" form:"id" binding:"required"`
	Title       string            `json:"title" form:"title" binding:"required,max=256"`
	Description string            `json:"description" form:"description"`
	URL         string            `json:"url" form:"url"`
	Content     string            `json:"content" form:"content"`
	Thumbnail   string            `json:"thumbnail" form:"thumbnail"`
	FolderID    string            `json:"folderId" form:"folderId" binding:"required"`
	Metadata    map[string]string `json:"metadata" form:"metadata"`
}

// ContentDTO 内容条目数据传输对象
type ContentDTO struct {
	ID            string            `json:"id"`
	Title         string            `json:"title"`
	Description   string            `json:"description"`
	Type          string            `json:"type"`
	URL           string            `json:"url"`
	Content       string            `json:"content"`
	Thumbnail     string            `json:"thumbnail"`
	FolderID      string            `json:"folderId"`
	Metadata      map[string]string `json:"metadata"`
	EstimatedSize int64             `json:"estimatedSize"`
	CreatedAt     timex.Time        `json:"createdAt"`
	UpdatedAt     timex.Time        `json:"updatedAt"`
}
