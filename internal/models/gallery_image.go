package models

import "time"

type GalleryImage struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Key     string `gorm:"size:255;uniqueIndex;not null" json:"key"`
	Title   string `gorm:"size:100" json:"title"`
	URL     string `gorm:"size:255" json:"url"`
	Width   int    `json:"width"`
	Height  int    `json:"height"`
	Visible bool   `gorm:"default:true" json:"visible"`

	CreatedAt time.Time `json:"created_at"`
}
