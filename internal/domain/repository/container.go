package repository

import (
	"context"

	"github.com/bessdsv/kitematic/internal/domain/entity"
)

// ContainerRepository persists the container records kitematic edits.
type ContainerRepository interface {
	// List returns every known container ordered by name.
	List(ctx context.Context) ([]*entity.Container, error)

	// FindByName returns nil, nil when no container has that name.
	FindByName(ctx context.Context, name string) (*entity.Container, error)

	// Save inserts or replaces a container keyed by ID.
	Save(ctx context.Context, container *entity.Container) error

	// UpdateLinks replaces HostConfig.Links; nil clears them.
	UpdateLinks(ctx context.Context, name string, links []string) error

	Delete(ctx context.Context, name string) error
}
