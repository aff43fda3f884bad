package dto

import "time"

// CategoryRequest alta/actualización de categoría.
type CategoryRequest struct {
	CategoryName string `json:"category_name"`
}

// CategoryResponse representación JSON de una categoría.
type CategoryResponse struct {
	CategoryID   int64     `json:"category_id"`
	CategoryName string    `json:"category_name"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
