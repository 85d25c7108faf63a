package apilog

import "context"

// Repo defines persistence operations for API call logs.
type Repo interface {
	Create(ctx context.Context, entry Log) error
	ListRecent(ctx context.Context, limit int) ([]Log, error)
}
