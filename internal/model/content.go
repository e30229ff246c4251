package model

import "github.com/haierkeys/content-organizer-service/pkg/timex"

const TableNameContent = "content"

// Content mapped from table <content>
type Content struct {
	ID          string     `gorm:"column:id;primaryKey" json:"id" form:"id"`
	Title       string     `gorm:"column:title;not null" json:"title" form:"title"`
	Description string     `gorm:"column:description" json:"description" form:"description"`
	Type        string     `gorm:"column:type;not null;index:idx_content_type" json:"type" form:"type"`
	URL         string     `gorm:"column:url" json:"url" form:"url"`
	Content     string     `gorm:"column:content;type:text" json:"content" form:"content"`
	Thumbnail   string     `gorm:"column:thumbnail" json:"thumbnail" form:"thumbnail"`
	FolderID    string     `gorm:"column:folder_id;not null;index:idx_content_folder" json:"folderId" form:"folderId"`
	UID         int64      `gorm:"column:uid;not null;index:idx_content_uid" json:"uid" form:"uid"`
	Metadata    string     `gorm:"column:metadata;type:text" json:"metadata" form:"metadata"`
	IsDeleted   int        `gorm:"column:is_deleted;not null;default:0" json:"isDeleted" form:"isDeleted"`
	CreatedAt   timex.Time `gorm:"column:created_at;type:datetime;default:NULL;autoCreateTime:false" json:"createdAt" form:"createdAt"`
	UpdatedAt   timex.Time `gorm:"column:updated_at;type:datetime;default:NULL;autoUpdateTime:false" json:"updatedAt" form:"updatedAt"`
}

// TableName Content's table name
func (*Content) TableName() string {
	return TableNameContent
}
