package ports

import (
	"context"

	"go.trai.ch/snap/internal/core/domain"
)

// Publisher records the produced artifacts in version control.
//
//go:generate mockgen -source=publisher.go -destination=mocks/mock_publisher.go -package=mocks
type Publisher interface {
	// Publish stages every change, commits it and optionally pushes.
	// It returns the new commit hash.
	Publish(ctx context.Context, req domain.PublishRequest) (string, error)
}
