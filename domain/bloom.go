package domain

import "context"

type BloomRepository interface {
	// Add puts an ID into the filter.
	Add(ctx context.Context, id string) error

	// Exists checks whether an ID may be present.
	// true: possibly present, check cache/DB next.
	// false: definitely absent, short-circuit to not found.
	Exists(ctx context.Context, id string) (bool, error)

	// BulkAdd loads many IDs at once, used on warmup.
	BulkAdd(ctx context.Context, ids []string) error
}
