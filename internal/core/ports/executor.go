// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/pharbuild/internal/core/domain"
)

// Executor runs external processes synchronously.
//
//go:generate go run go.uber.org/mock/mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type Executor interface {
	// Run executes cmd and blocks until it exits. Stdout is captured into the result and
	// streamed, together with stderr, to the active progress vertex or the logger.
	//
	// A non-zero exit status is returned as an error wrapping domain.ErrCommandFailed;
	// there is no partial success.
	Run(ctx context.Context, cmd domain.Command) (domain.CommandResult, error)
}
