package models

import (
	"time"
)

type Article struct {
	ID          string    `json:"id" example:"a1b2c3d4"`
	Title       string    `json:"title" example:"Q3 Sales Strategy & Goals"`
	Content     string    `json:"content" example:"Our main goal for Q3 is to increase enterprise sales by 20%."`
	Topic       string    `json:"topic" example:"Sales"`
	Tags        []string  `json:"tags" example:"goals,strategy"`
	CreatedAt   time.Time `json:"created_at" example:"2023-07-15T10:00:00Z"`
	UpdatedAt   time.Time `json:"updated_at" example:"2023-07-16T11:30:00Z"`
	IsPublished bool      `json:"is_published" example:"true"`
	ViewCount   int       `json:"view_count" example:"152"`
	Likes       int       `json:"likes" example:"45"`
}
