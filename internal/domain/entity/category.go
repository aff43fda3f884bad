package entity

import "time"

// Category representa una categoría de items. El nombre es único.
type Category struct {
	ID        int64
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
