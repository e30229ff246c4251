package model

import "github.com/haierkeys/content-organizer-service/pkg/timex"

const TableNameMarketplaceVersion = "marketplace_version"

// MarketplaceVersion mapped from table <marketplace_version>
type MarketplaceVersion struct {
	ID            string     `gorm:"column:id;primaryKey" json:"id" form:"id"`
	FolderID      string     `gorm:"column:folder_id;not null;index:idx_version_folder" json:"folderId" form:"folderId"`
	UID           int64      `gorm:"column:uid;not null;index:idx_version_uid" json:"uid" form:"uid"`
	Number        int64      `gorm:"column:number;not null" json:"number" form:"number"`
	Fingerprint   string     `gorm:"column:fingerprint;not null" json:"fingerprint" form:"fingerprint"`
	Snapshot      string     `gorm:"column:snapshot;type:text;not null" json:"snapshot" form:"snapshot"`
	Title         string     `gorm:"column:title;not null" json:"title" form:"title"`
	Description   string     `gorm:"column:description" json:"description" form:"description"`
	Category      string     `gorm:"column:category;index:idx_version_category" json:"category" form:"category"`
	Tags          string     `gorm:"column:tags" json:"tags" form:"tags"`
	Price         int64      `gorm:"column:price;not null;default:0" json:"price" form:"price"`
	Currency      string     `gorm:"column:currency" json:"currency" form:"currency"`
	CoverImage    string     `gorm:"column:cover_image" json:"coverImage" form:"coverImage"`
	IsActive      int        `gorm:"column:is_active;not null;default:0;index:idx_version_active" json:"isActive" form:"isActive"`
	DownloadCount int64      `gorm:"column:download_count;not null;default:0" json:"downloadCount" form:"downloadCount"`
	LikeCount     int64      `gorm:"column:like_count;not null;default:0" json:"likeCount" form:"likeCount"`
	ViewCount     int64      `gorm:"column:view_count;not null;default:0" json:"viewCount" form:"viewCount"`
	PublishedAt   timex.Time `gorm:"column:published_at;type:datetime;default:NULL;autoCreateTime:false" json:"publishedAt" form:"publishedAt"`
	CreatedAt     timex.Time `gorm:"column:created_at;type:datetime;default:NULL;autoCreateTime:false" json:"createdAt" form:"createdAt"`
}

// TableName MarketplaceVersion's table name
func (*MarketplaceVersion) TableName() string {
	return TableNameMarketplaceVersion
}
