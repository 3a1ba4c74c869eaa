package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Pagination bounds enforced on every search request. Requests outside these
// bounds are rejected, never clamped.
const (
	DefaultPage     = 1
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// SearchRequest represents one search invocation: the raw query string plus
// pagination parameters. It is transient and never persisted.
type SearchRequest struct {
	Query    string `json:"query"`     // Raw query text (tokenized by the engine)
	Page     int    `json:"page"`      // 1-based page number
	PageSize int    `json:"page_size"` // Items per page, 1..MaxPageSize
}

// Validate rejects structurally invalid requests: a missing query, a page
// below 1, or a page size outside [1, MaxPageSize].
func (r SearchRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Query, validation.Required),
		validation.Field(&r.Page, validation.Required, validation.Min(1)),
		validation.Field(&r.PageSize, validation.Required, validation.Min(1), validation.Max(MaxPageSize)),
	)
}

// SearchResponse is the ordered result page for one search request.
// Items appear in the corpus's original received order; Total counts all
// matches independent of the requested page.
type SearchResponse struct {
	Query    string    `json:"query"`
	Total    int       `json:"total"`
	Page     int       `json:"page"`
	PageSize int       `json:"page_size"`
	Items    []Message `json:"items"`
}

// Health reports whether the startup build has completed and how many
// messages the index holds.
type Health struct {
	Ready           bool `json:"ready"`
	IndexedMessages int  `json:"indexed_messages"`
}
