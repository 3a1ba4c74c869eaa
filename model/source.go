package model

// SourceResponse is the JSON document shape returned by the upstream messages
// endpoint: { "total": N, "items": [ ... ] }. The items slice is treated as
// the authoritative, complete record set.
type SourceResponse struct {
	Total int       `json:"total"`
	Items []Message `json:"items"`
}
