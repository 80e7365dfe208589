package server

import (
	"context"

	"github.com/preston-bernstein/friday-night-bytes/internal/scheduler"
)

// Scheduler defines the scheduled-notification behaviour the server manages.
type Scheduler interface {
	Start(ctx context.Context) error
	Stop(ctx context.Context) error
	Status() scheduler.Status
}
