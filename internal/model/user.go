package model

import "github.com/haierkeys/content-organizer-service/pkg/timex"

const TableNameUser = "user"

// User mapped from table <user>
type User struct {
	UID       int64      `gorm:"column:uid;primaryKey;autoIncrement" json:"uid" form:"uid"`
	Email     string     `gorm:"column:email;not null;uniqueIndex:idx_email" json:"email" form:"email"`
	Nickname  string     `gorm:"column:nickname;not null" json:"nickname" form:"nickname"`
	Password  string     `gorm:"column:password;not null" json:"password" form:"password"`
	Avatar    string     `gorm:"column:avatar" json:"avatar" form:"avatar"`
	Plan      string     `gorm:"column:plan;not null;default:free" json:"plan" form:"plan"`
	Token     string     `gorm:"column:token" json:"token" form:"token"`
	IsDeleted int        `gorm:"column:is_deleted;not null;default:0" json:"isDeleted" form:"isDeleted"`
	CreatedAt timex.Time `gorm:"column:created_at;type:datetime;default:NULL;autoCreateTime:false" json:"createdAt" form:"createdAt"`
	UpdatedAt timex.Time `gorm:"column:updated_at;type:datetime;default:NULL;autoUpdateTime:false" json:"updatedAt" form:"updatedAt"`
}

// TableName User's table name
func (*User) TableName() string {
	return TableNameUser
}
