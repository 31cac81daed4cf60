package sqlite

import (
	"context"
	"sync"

	"github.com/bessdsv/kitematic/internal/domain/entity"
	"github.com/bessdsv/kitematic/internal/domain/repository"
)

// LazyContainerRepository wraps the container repository with lazy
// database initialization. It is a drop-in ContainerRepository.
type LazyContainerRepository struct {
	provider *LazyDB
	repo     repository.ContainerRepository
	once     sync.Once
	initErr  error
}

// NewLazyContainerRepository creates a lazy-loading container repository.
func NewLazyContainerRepository(provider *LazyDB) repository.ContainerRepository {
	return &LazyContainerRepository{provider: provider}
}

func (r *LazyContainerRepository) init(ctx context.Context) error {
	r.once.Do(func() {
		db, err := r.provider.DB(ctx)
		if err != nil {
			r.initErr = err
			return
		}
		r.repo = NewContainerRepository(db)
	})
	return r.initErr
}

func (r *LazyContainerRepository) List(ctx context.Context) ([]*entity.Container, error) {
	if err := r.init(ctx); err != nil {
		return nil, err
	}
	return r.repo.List(ctx)
}

func (r *LazyContainerRepository) FindByName(ctx context.Context, name string) (*entity.Container, error) {
	if err := r.init(ctx); err != nil {
		return nil, err
	}
	return r.repo.FindByName(ctx, name)
}

func (r *LazyContainerRepository) Save(ctx context.Context, container *entity.Container) error {
	if err := r.init(ctx); err != nil {
		return err
	}
	return r.repo.Save(ctx, container)
}

func (r *LazyContainerRepository) UpdateLinks(ctx context.Context, name string, links []string) error {
	if err := r.init(ctx); err != nil {
		return err
	}
	return r.repo.UpdateLinks(ctx, name, links)
}

func (r *LazyContainerRepository) Delete(ctx context.Context, name string) error {
	if err := r.init(ctx); err != nil {
		return err
	}
	return r.repo.Delete(ctx, name)
}

var _ repository.ContainerRepository = (*LazyContainerRepository)(nil)
