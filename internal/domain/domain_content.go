// Package domain 定义领域模型和接口
package domain

import "time"

// ContentType 定义内容条目类型
type ContentType string

const (
	ContentTypeLink     ContentType = "link"
	ContentTypeNote     ContentType = "note"
	ContentTypeImage    ContentType = "image"
	ContentTypeDocument ContentType = "document"
)

// IsValid reports whether t is one of the four known content types.
// Type is immutable once created; changing it is a delete plus recreate.
// IsValid 判断 t 是否为四种已知内容类型之一。
// 类型一经创建不可变更；变更类型等同于删除后重建。
func (t ContentType) IsValid() bool {
	switch t {
	case ContentTypeLink, ContentTypeNote, ContentTypeImage, ContentTypeDocument:
		return true
	}
	return false
}

// Known metadata keys. Unknown keys are passed through untouched.
// 已知的 metadata 键。未知键原样透传。
const (
	MetaKeyDomain       = "domain"
	MetaKeyPlatform     = "platform"
	MetaKeyThumbnail    = "thumbnail"
	MetaKeyDuration     = "duration"
	MetaKeyChannelTitle = "channelTitle"
)

// ContentItem 内容条目领域模型
type ContentItem struct {
	ID          string
	Title       string
	Description string
	Type        ContentType
	URL         string
	Content     string
	Thumbnail   string
	FolderID    string
	UID         int64
	Metadata    map[string]string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// HasThumbnail 判断条目是否带缩略图引用
func (c *ContentItem) HasThumbnail() bool {
	if c.Thumbnail != "" {
		return true
	}
	return c.Metadata[MetaKeyThumbnail] != ""
}

// HasMetadata 判断条目是否带元数据
func (c *ContentItem) HasMetadata() bool {
	return len(c.Metadata) > 0
}
