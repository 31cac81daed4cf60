package usecase

import (
	"context"
	"fmt"

	"github.com/bessdsv/kitematic/internal/domain/entity"
	"github.com/bessdsv/kitematic/internal/domain/repository"
)

// InspectContainerUseCase resolves the derived settings of a container.
type InspectContainerUseCase struct {
	containerRepo repository.ContainerRepository
	host          string
}

// NewInspectContainerUseCase creates a use case resolving ports against host.
func NewInspectContainerUseCase(containerRepo repository.ContainerRepository, host string) *InspectContainerUseCase {
	return &InspectContainerUseCase{containerRepo: containerRepo, host: host}
}

// ContainerDetails is what `containers show` prints.
type ContainerDetails struct {
	Container *entity.Container
	Env       [][2]string
	Mode      entity.Mode
	Links     []entity.Link
	Ports     map[string]entity.PortInfo
	PortKeys  []string
}

func (uc *InspectContainerUseCase) Execute(ctx context.Context, name string) (*ContainerDetails, error) {
	c, err := uc.containerRepo.FindByName(ctx, entity.NormalizeName(name))
	if err != nil {
		return nil, fmt.Errorf("failed to find container: %w", err)
	}
	if c == nil {
		return nil, fmt.Errorf("%q: %w", name, ErrContainerNotFound)
	}

	ports := entity.Ports(c, uc.host)
	return &ContainerDetails{
		Container: c,
		Env:       entity.Env(c),
		Mode:      entity.ContainerMode(c),
		Links:     entity.Links(c),
		Ports:     ports,
		PortKeys:  entity.SortedPortKeys(ports),
	}, nil
}

// List returns every stored container ordered by name.
func (uc *InspectContainerUseCase) List(ctx context.Context) ([]*entity.Container, error) {
	list, err := uc.containerRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list containers: %w", err)
	}
	return list, nil
}
