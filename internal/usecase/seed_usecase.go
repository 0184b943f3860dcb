package usecase

import "context"

// SeedUsecase guarantees the baseline permission and administrator account
// exist. It runs once at startup, after schema creation.
type SeedUsecase interface {
	// EnsureBaseline seeds the baseline data idempotently. Safe to call
	// more than once; only the first call per process does any writes.
	EnsureBaseline(ctx context.Context) error
}
