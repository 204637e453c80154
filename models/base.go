package models

import "time"

// BaseModel holds the columns shared by the main tables
type BaseModel struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PaginationResult is the pagination block of the response envelope
type PaginationResult struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int   `json:"pages"`
}

// NewPaginationResult builds a pagination block, deriving the page count
func NewPaginationResult(total int64, page, limit int) PaginationResult {
	pages := 0
	if limit > 0 {
		pages = int((total + int64(limit) - 1) / int64(limit))
	}
	return PaginationResult{
		Page:  page,
		Limit: limit,
		Total: total,
		Pages: pages,
	}
}
