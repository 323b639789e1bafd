package models

import "time"

const MovieTable = "movie"
const GenreTable = "genre"
const FormatTable = "format"
const LocationTable = "location"

type Movie struct {
	ID          int64    `gorm:"primaryKey;autoIncrement" json:"id"`
	Title       string   `gorm:"size:255;not null" json:"title"`
	ReleaseYear int      `gorm:"not null" json:"release_year"`
	RuntimeMin  int16    `gorm:"not null" json:"runtime_min"`
	Rating      *float64 `json:"rating,omitempty"`
	Summary     *string  `gorm:"type:text" json:"summary,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Genre struct {
	ID   int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Name string `gorm:"size:255;uniqueIndex;not null" json:"name"`
}

// Format 取值为 DVD / BLU-RAY / VHS
type Format struct {
	ID     int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Format string `gorm:"size:10;uniqueIndex;not null" json:"format"`
}

type Location struct {
	ID      int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Address string `gorm:"size:255;not null" json:"address"`
	City    string `gorm:"size:255;not null" json:"city"`
}

func (Movie) TableName() string    { return MovieTable }
func (Genre) TableName() string    { return GenreTable }
func (Format) TableName() string   { return FormatTable }
func (Location) TableName() string { return LocationTable }
