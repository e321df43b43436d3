package taskboard

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Board classifies the task list into due-date buckets, optionally
	// narrowed to a single bucket key ("all" flattens the partition).
	Board(ctx context.Context, input BoardInput) (BoardOutput, error)
}
