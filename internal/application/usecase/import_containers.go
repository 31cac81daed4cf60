package usecase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"

	"golang.org/x/sync/errgroup"

	"github.com/bessdsv/kitematic/internal/domain/entity"
	"github.com/bessdsv/kitematic/internal/domain/repository"
	"github.com/bessdsv/kitematic/internal/logging"
)

const importWorkers = 4

// ImportContainersUseCase loads `docker inspect` dumps into the store.
type ImportContainersUseCase struct {
	containerRepo repository.ContainerRepository
}

// NewImportContainersUseCase creates a new import use case.
func NewImportContainersUseCase(containerRepo repository.ContainerRepository) *ImportContainersUseCase {
	return &ImportContainersUseCase{containerRepo: containerRepo}
}

// ImportContainersInput lists the files to import.
type ImportContainersInput struct {
	Paths []string
}

// ImportContainersOutput names the imported containers in file order.
type ImportContainersOutput struct {
	Names []string
}

// Execute decodes every file concurrently, then saves the containers in
// file order. A file may hold one inspect object or an array of them.
func (uc *ImportContainersUseCase) Execute(ctx context.Context, input ImportContainersInput) (*ImportContainersOutput, error) {
	log := logging.FromContext(ctx)

	decoded := make([][]*entity.Container, len(input.Paths))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(importWorkers)
	for i, path := range input.Paths {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			containers, err := decodeInspectFile(path)
			if err != nil {
				return fmt.Errorf("import %s: %w", path, err)
			}
			decoded[i] = containers
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := &ImportContainersOutput{}
	for _, containers := range decoded {
		for _, c := range containers {
			c.Name = entity.NormalizeName(c.Name)
			if err := uc.containerRepo.Save(ctx, c); err != nil {
				return nil, fmt.Errorf("failed to save container %q: %w", c.Name, err)
			}
			out.Names = append(out.Names, c.Name)
		}
	}

	log.Info().Int("files", len(input.Paths)).Int("containers", len(out.Names)).Msg("containers imported")
	return out, nil
}

func decodeInspectFile(path string) ([]*entity.Container, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return DecodeInspect(data)
}

// DecodeInspect parses `docker inspect` JSON output.
func DecodeInspect(data []byte) ([]*entity.Container, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, nil
	}

	var containers []*entity.Container
	if data[0] == '[' {
		if err := json.Unmarshal(data, &containers); err != nil {
			return nil, err
		}
	} else {
		var c entity.Container
		if err := json.Unmarshal(data, &c); err != nil {
			return nil, err
		}
		containers = append(containers, &c)
	}

	for _, c := range containers {
		if err := c.Validate(); err != nil {
			return nil, fmt.Errorf("container %q: %w", c.Name, err)
		}
	}
	return containers, nil
}
