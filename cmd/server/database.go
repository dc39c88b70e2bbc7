package main

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/icco/camfour/vision"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
	"moul.io/zapgorm2"
)

// ErrNoProfile is returned when no calibration is stored under a name.
var ErrNoProfile = errors.New("no such calibration profile")

const sqlitePrefix = "sqlite://"

// getDB opens the database named by url. Urls starting with sqlite:// open a
// SQLite file, anything else is handed to the postgres driver.
func getDB(url string) (*gorm.DB, error) {
	if url == "" {
		return nil, fmt.Errorf("DATABASE_URL is empty")
	}

	var dialector gorm.Dialector
	if strings.HasPrefix(url, sqlitePrefix) {
		dialector = sqlite.Open(strings.TrimPrefix(url, sqlitePrefix))
	} else {
		dialector = postgres.Open(url)
	}

	gormLog := zapgorm2.New(log.Desugar())
	gormLog.SlowThreshold = 200 * time.Millisecond
	gormLog.SetAsDefault()

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormLog.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, err
	}

	// Auto-migrate the schema
	if err := AutoMigrate(db); err != nil {
		return nil, fmt.Errorf("failed to run auto-migration: %w", err)
	}

	return db, nil
}

// saveProfile inserts p, replacing any profile with the same name.
func saveProfile(db *gorm.DB, p vision.Profile) (*CalibrationProfile, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	row := newCalibrationProfile(p)
	err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"low_h", "high_h", "low_s", "high_s", "low_v", "high_v", "width", "height", "updated_at"}),
	}).Create(&row).Error
	if err != nil {
		return nil, err
	}

	return getProfile(db, p.Name)
}

func getProfile(db *gorm.DB, name string) (*CalibrationProfile, error) {
	var row CalibrationProfile
	err := db.Where("name = ?", name).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: %q", ErrNoProfile, name)
	}
	if err != nil {
		return nil, err
	}

	return &row, nil
}
