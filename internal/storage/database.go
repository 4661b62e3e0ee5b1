package storage

import (
	"github.com/shenminzhang/wavelengthwalfie/internal/game"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// OpenAndMigrate opens (creating if needed) the SQLite database at
// dataSourceName and keeps the schema updated via AutoMigrate.
func OpenAndMigrate(dataSourceName string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dataSourceName), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&game.Round{}); err != nil {
		return nil, err
	}
	return db, nil
}
