package model

import (
	"gorm.io/gorm"
)

func AutoMigrate(db *gorm.DB, key string) error {
	switch key {

	case "User":
		return db.AutoMigrate(User{})

	case "Folder":
		return db.AutoMigrate(Folder{})

	case "Content":
		return db.AutoMigrate(Content{})

	case "MarketplaceVersion":
		return db.AutoMigrate(MarketplaceVersion{})
	}
	return nil
}
