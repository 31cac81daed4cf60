package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/bessdsv/kitematic/internal/domain/entity"
	"github.com/bessdsv/kitematic/internal/domain/repository"
	"github.com/bessdsv/kitematic/internal/logging"
)

const containerColumns = `id, name, config, host_config, network_settings, running, updating`

type containerRepo struct {
	db *sql.DB
}

func NewContainerRepository(db *sql.DB) repository.ContainerRepository {
	return &containerRepo{db: db}
}

func (r *containerRepo) List(ctx context.Context) ([]*entity.Container, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+containerColumns+` FROM containers ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var containers []*entity.Container
	for rows.Next() {
		c, err := scanContainer(rows)
		if err != nil {
			return nil, err
		}
		containers = append(containers, c)
	}
	return containers, rows.Err()
}

func (r *containerRepo) FindByName(ctx context.Context, name string) (*entity.Container, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+containerColumns+` FROM containers WHERE name = ?`, entity.NormalizeName(name))
	c, err := scanContainer(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return c, nil
}

func (r *containerRepo) Save(ctx context.Context, c *entity.Container) error {
	log := logging.FromContext(ctx)
	if err := c.Validate(); err != nil {
		return err
	}

	cfg, err := encodeColumn(c.Config)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	hostCfg, err := encodeColumn(c.HostConfig)
	if err != nil {
		return fmt.Errorf("encode host config: %w", err)
	}
	netSettings, err := encodeColumn(c.NetworkSettings)
	if err != nil {
		return fmt.Errorf("encode network settings: %w", err)
	}

	name := entity.NormalizeName(c.Name)
	log.Debug().Str("container", name).Str("id", c.ID).Msg("saving container")

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	// a container is keyed by name; a recreated one arrives with a new id
	// and a renamed one keeps its id under a new name
	if _, err := tx.ExecContext(ctx, `DELETE FROM containers WHERE id = ? AND name <> ?`, c.ID, name); err != nil {
		return err
	}
	_, err = tx.ExecContext(ctx, `
		INSERT INTO containers (id, name, config, host_config, network_settings, running, updating, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(name) DO UPDATE SET
			id = excluded.id,
			config = excluded.config,
			host_config = excluded.host_config,
			network_settings = excluded.network_settings,
			running = excluded.running,
			updating = excluded.updating,
			updated_at = CURRENT_TIMESTAMP`,
		c.ID, name, cfg, hostCfg, netSettings, c.State.Running, c.State.Updating)
	if err != nil {
		return err
	}
	return tx.Commit()
}

func (r *containerRepo) UpdateLinks(ctx context.Context, name string, links []string) error {
	log := logging.FromContext(ctx)
	name = entity.NormalizeName(name)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	var raw sql.NullString
	if err := tx.QueryRowContext(ctx, `SELECT host_config FROM containers WHERE name = ?`, name).Scan(&raw); err != nil {
		return fmt.Errorf("container %q: %w", name, err)
	}

	hostCfg := &entity.HostConfig{}
	if raw.Valid && raw.String != "" {
		if err := json.Unmarshal([]byte(raw.String), hostCfg); err != nil {
			return fmt.Errorf("decode host config: %w", err)
		}
	}
	hostCfg.Links = links

	encoded, err := encodeColumn(hostCfg)
	if err != nil {
		return fmt.Errorf("encode host config: %w", err)
	}
	if _, err := tx.ExecContext(ctx,
		`UPDATE containers SET host_config = ?, updated_at = CURRENT_TIMESTAMP WHERE name = ?`,
		encoded, name); err != nil {
		return err
	}

	log.Debug().Str("container", name).Int("links", len(links)).Msg("updated container links")
	return tx.Commit()
}

func (r *containerRepo) Delete(ctx context.Context, name string) error {
	log := logging.FromContext(ctx)
	name = entity.NormalizeName(name)
	log.Debug().Str("container", name).Msg("deleting container")
	_, err := r.db.ExecContext(ctx, `DELETE FROM containers WHERE name = ?`, name)
	return err
}

type scanner interface {
	Scan(dest ...any) error
}

func scanContainer(s scanner) (*entity.Container, error) {
	var (
		c                         entity.Container
		cfg, hostCfg, netSettings sql.NullString
	)
	if err := s.Scan(&c.ID, &c.Name, &cfg, &hostCfg, &netSettings, &c.State.Running, &c.State.Updating); err != nil {
		return nil, err
	}
	if err := decodeColumn(cfg, &c.Config); err != nil {
		return nil, fmt.Errorf("decode config of %q: %w", c.Name, err)
	}
	if err := decodeColumn(hostCfg, &c.HostConfig); err != nil {
		return nil, fmt.Errorf("decode host config of %q: %w", c.Name, err)
	}
	if err := decodeColumn(netSettings, &c.NetworkSettings); err != nil {
		return nil, fmt.Errorf("decode network settings of %q: %w", c.Name, err)
	}
	return &c, nil
}

// encodeColumn stores nil sections as NULL so they decode back to nil.
func encodeColumn[T any](v *T) (sql.NullString, error) {
	if v == nil {
		return sql.NullString{}, nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return sql.NullString{}, err
	}
	return sql.NullString{String: string(b), Valid: true}, nil
}

func decodeColumn[T any](raw sql.NullString, dst **T) error {
	if !raw.Valid || raw.String == "" {
		*dst = nil
		return nil
	}
	v := new(T)
	if err := json.Unmarshal([]byte(raw.String), v); err != nil {
		return err
	}
	*dst = v
	return nil
}
