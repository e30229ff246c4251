package domain

import "time"

// User 用户领域模型
type User struct {
	UID       int64
	Email     string
	Nickname  string
	Password  string
	Avatar    string
	Plan      PlanTier
	Token     string
	IsDeleted bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
