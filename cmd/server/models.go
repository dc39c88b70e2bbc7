package main

import (
	"time"

	"github.com/icco/camfour/vision"
	"gorm.io/gorm"
)

// CalibrationProfile is a stored vision.Profile, keyed by name.
type CalibrationProfile struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"type:text;uniqueIndex;not null" json:"name"`
	LowH      int       `json:"low_h"`
	HighH     int       `json:"high_h"`
	LowS      int       `json:"low_s"`
	HighS     int       `json:"high_s"`
	LowV      int       `json:"low_v"`
	HighV     int       `json:"high_v"`
	Width     int       `json:"width"`
	Height    int       `json:"height"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func newCalibrationProfile(p vision.Profile) CalibrationProfile {
	return CalibrationProfile{
		Name:   p.Name,
		LowH:   p.Bounds.LowH,
		HighH:  p.Bounds.HighH,
		LowS:   p.Bounds.LowS,
		HighS:  p.Bounds.HighS,
		LowV:   p.Bounds.LowV,
		HighV:  p.Bounds.HighV,
		Width:  p.Width,
		Height: p.Height,
	}
}

// Profile converts the row back into a vision.Profile.
func (c *CalibrationProfile) Profile() vision.Profile {
	return vision.Profile{
		Name: c.Name,
		Bounds: vision.HSVBounds{
			LowH:  c.LowH,
			HighH: c.HighH,
			LowS:  c.LowS,
			HighS: c.HighS,
			LowV:  c.LowV,
			HighV: c.HighV,
		},
		Width:  c.Width,
		Height: c.Height,
	}
}

// AutoMigrate runs the database migrations
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&CalibrationProfile{})
}
