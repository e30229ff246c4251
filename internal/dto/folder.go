package dto

import "github.com/haierkeys/content-organizer-service/pkg/timex"

// FolderCreateRequest 新建文件夹请求参数
type FolderCreateRequest struct {
	Name        string `json:"name" form:"name" binding:"required,max=128"`
	Description string `json:"description" form:"description"`
	Color       string `json:"color" form:"color"`
	Icon        string `json:"icon" form:"icon"`
	ParentID    string `json:"parentId" form:"parentId"`
}

// FolderUpdateRequest 更新文件夹请求参数
type FolderUpdateRequest struct {
	ID          string `json:"id" form:"id" binding:"required"`
	Name        string `json:"name" form:"name" binding:"required,max=128"`
	Description string `json:"description" form:"description"`
	Color       string `json:"color" form:"color"`
	Icon        string `json:"icon" form:"icon"`
	ParentID    string `json:"parentId" form:"parentId"`
}

// FolderDTO 文件夹数据传输对象
type FolderDTO struct {
	ID                  string     `json:"id"`
	Name                string     `json:"name"`
	Description         string     `json:"description"`
	Color               string     `json:"color"`
	Icon                string     `json:"icon"`
	ParentID            string     `json:"parentId"`
	ItemCount           int64      `json:"itemCount"`
	SharedStatus        string     `json:"sharedStatus"`
	SharedVersionID     string     `json:"sharedVersionId"`
	LastSharedAt        timex.Time `json:"lastSharedAt"`
	DownloadCount       int64      `json:"downloadCount"`
	SourceMarketplaceID string     `json:"sourceMarketplaceId"`
	CreatedAt           timex.Time `json:"createdAt"`
	UpdatedAt           timex.Time `json:"updatedAt"`
}
