package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/bessdsv/kitematic/internal/domain/entity"
	"github.com/bessdsv/kitematic/internal/domain/repository"
	"github.com/bessdsv/kitematic/internal/logging"
)

var (
	ErrContainerNotFound = errors.New("container not found")
	ErrContainerUpdating = errors.New("container is updating")
)

// LinkRow is one editable row of the links panel. ID stays stable across
// edits so rows can be keyed while the user adds and removes them.
type LinkRow struct {
	ID        string
	Container string
	Alias     string
}

// NewLinkRow returns a blank row with a fresh ID.
func NewLinkRow() LinkRow {
	return LinkRow{ID: uuid.NewString()}
}

// Complete reports whether both sides of the link are filled in.
func (r LinkRow) Complete() bool {
	return r.Container != "" && r.Alias != ""
}

// ManageLinksUseCase loads and saves the links of one container.
type ManageLinksUseCase struct {
	containerRepo repository.ContainerRepository
}

// NewManageLinksUseCase creates a new links use case.
func NewManageLinksUseCase(containerRepo repository.ContainerRepository) *ManageLinksUseCase {
	return &ManageLinksUseCase{containerRepo: containerRepo}
}

// LoadLinksOutput contains the container and its editable rows.
type LoadLinksOutput struct {
	Container *entity.Container
	Rows      []LinkRow
}

// SaveLinksInput contains the rows to persist for Name.
type SaveLinksInput struct {
	Name string
	Rows []LinkRow
}

// SaveLinksOutput contains what was written and the rows to show next.
type SaveLinksOutput struct {
	Links []string
	Rows  []LinkRow
}

// Candidates lists every container except name itself.
func (uc *ManageLinksUseCase) Candidates(ctx context.Context, name string) ([]*entity.Container, error) {
	all, err := uc.containerRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list containers: %w", err)
	}

	self := entity.NormalizeName(name)
	out := make([]*entity.Container, 0, len(all))
	for _, c := range all {
		if entity.NormalizeName(c.Name) == self {
			continue
		}
		out = append(out, c)
	}
	return out, nil
}

// Load returns the container's links as rows followed by one blank row.
func (uc *ManageLinksUseCase) Load(ctx context.Context, name string) (*LoadLinksOutput, error) {
	c, err := uc.find(ctx, name)
	if err != nil {
		return nil, err
	}

	links := entity.Links(c)
	rows := make([]LinkRow, 0, len(links)+1)
	for _, l := range links {
		row := NewLinkRow()
		row.Container = l.Container
		row.Alias = l.Alias
		rows = append(rows, row)
	}
	rows = append(rows, NewLinkRow())

	return &LoadLinksOutput{Container: c, Rows: rows}, nil
}

// Save persists the complete rows as "name:alias" links. Incomplete rows
// are dropped; every complete row stays in the editor, while the stored
// list keeps one entry per container with the last alias. An empty
// result clears the links.
func (uc *ManageLinksUseCase) Save(ctx context.Context, input SaveLinksInput) (*SaveLinksOutput, error) {
	log := logging.FromContext(ctx)

	c, err := uc.find(ctx, input.Name)
	if err != nil {
		return nil, err
	}
	if c.State.Updating {
		return nil, fmt.Errorf("save links of %q: %w", c.Name, ErrContainerUpdating)
	}

	kept := make([]LinkRow, 0, len(input.Rows)+1)
	links := make([]entity.Link, 0, len(input.Rows))
	for _, row := range input.Rows {
		if !row.Complete() {
			continue
		}
		links = append(links, entity.Link{Container: row.Container, Alias: row.Alias})
		kept = append(kept, row)
	}

	formatted := entity.FormatLinks(links)
	if err := uc.containerRepo.UpdateLinks(ctx, c.Name, formatted); err != nil {
		return nil, fmt.Errorf("failed to save links: %w", err)
	}

	log.Info().Str("container", c.Name).Strs("links", formatted).Msg("container links saved")

	return &SaveLinksOutput{Links: formatted, Rows: append(kept, NewLinkRow())}, nil
}

func (uc *ManageLinksUseCase) find(ctx context.Context, name string) (*entity.Container, error) {
	c, err := uc.containerRepo.FindByName(ctx, entity.NormalizeName(name))
	if err != nil {
		return nil, fmt.Errorf("failed to find container: %w", err)
	}
	if c == nil {
		return nil, fmt.Errorf("%q: %w", name, ErrContainerNotFound)
	}
	return c, nil
}
