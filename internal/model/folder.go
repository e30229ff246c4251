package model

import "github.com/haierkeys/content-organizer-service/pkg/timex"

const TableNameFolder = "folder"

// Folder mapped from table <folder>
type Folder struct {
	ID                  string     `gorm:"column:id;primaryKey" json:"id" form:"id"`
	Name                string     `gorm:"column:name;not null" json:"name" form:"name"`
	Description         string     `gorm:"column:description" json:"description" form:"description"`
	Color               string     `gorm:"column:color" json:"color" form:"color"`
	Icon                string     `gorm:"column:icon" json:"icon" form:"icon"`
	ParentID            string     `gorm:"column:parent_id;index:idx_folder_parent" json:"parentId" form:"parentId"`
	UID                 int64      `gorm:"column:uid;not null;index:idx_folder_uid" json:"uid" form:"uid"`
	SharedStatus        string     `gorm:"column:shared_status;not null;default:private" json:"sharedStatus" form:"sharedStatus"`
	SharedVersionID     string     `gorm:"column:shared_version_id" json:"sharedVersionId" form:"sharedVersionId"`
	LastSharedAt        timex.Time `gorm:"column:last_shared_at;type:datetime;default:NULL;autoCreateTime:false" json:"lastSharedAt" form:"lastSharedAt"`
	DownloadCount       int64      `gorm:"column:download_count;not null;default:0" json:"downloadCount" form:"downloadCount"`
	SourceMarketplaceID string     `gorm:"column:source_marketplace_id" json:"sourceMarketplaceId" form:"sourceMarketplaceId"`
	IsDeleted           int        `gorm:"column:is_deleted;not null;default:0" json:"isDeleted" form:"isDeleted"`
	CreatedAt           timex.Time `gorm:"column:created_at;type:datetime;default:NULL;autoCreateTime:false" json:"createdAt" form:"createdAt"`
	UpdatedAt           timex.Time `gorm:"column:updated_at;type:datetime;default:NULL;autoUpdateTime:false" json:"updatedAt" form:"updatedAt"`
}

// TableName Folder's table name
func (*Folder) TableName() string {
	return TableNameFolder
}
