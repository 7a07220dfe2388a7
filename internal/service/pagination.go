package service

import (
	apperrors "pandoro-backend/internal/errors"
)

const (
	// DefaultPageSize is used when a list request carries no page size
	DefaultPageSize = 10
	// MaxPageSize caps the items returned in a single page
	MaxPageSize = 100
)

// PageRequest selects a page of a list. Pages are counted from zero.
type PageRequest struct {
	Page     int
	PageSize int
}

// NewPageRequest validates the requested page
func NewPageRequest(page, pageSize int) (PageRequest, error) {
	if page < 0 || pageSize < 1 || pageSize > MaxPageSize {
		return PageRequest{}, apperrors.ErrInvalidPaginationParams
	}
	return PageRequest{Page: page, PageSize: pageSize}, nil
}

// Offset returns the number of items before the page
func (p PageRequest) Offset() int {
	return p.Page * p.PageSize
}

// Page is a slice of a list together with the size of the whole list
type Page[T any] struct {
	Data       []T   `json:"data"`
	Page       int   `json:"page" example:"0"`
	PageSize   int   `json:"pageSize" example:"10"`
	Total      int64 `json:"totalElements" example:"42"`
	IsLastPage bool  `json:"isLastPage" example:"false"`
}

// NewPage wraps the items of the requested page
func NewPage[T any](items []T, req PageRequest, total int64) *Page[T] {
	if items == nil {
		items = []T{}
	}
	return &Page[T]{
		Data:       items,
		Page:       req.Page,
		PageSize:   req.PageSize,
		Total:      total,
		IsLastPage: int64(req.Offset()+len(items)) >= total,
	}
}
