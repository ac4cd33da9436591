package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"github.com/myworld/myworld-api/internal/domain"
	"github.com/myworld/myworld-api/internal/platform/logger"
	"github.com/myworld/myworld-api/internal/store"
)

// PostgresDimensionStore implements the store.DimensionStore interface
// using a PostgreSQL database as the storage backend.
type PostgresDimensionStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresDimensionStore creates a new PostgreSQL implementation of the
// DimensionStore interface.
func NewPostgresDimensionStore(db store.DBTX, log *slog.Logger) *PostgresDimensionStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}

	return &PostgresDimensionStore{
		db:     db,
		logger: log.With(slog.String("component", "dimension_store")),
	}
}

var _ store.DimensionStore = (*PostgresDimensionStore)(nil)

// WithTx implements store.DimensionStore.WithTx.
func (s *PostgresDimensionStore) WithTx(tx *sql.Tx) store.DimensionStore {
	return &PostgresDimensionStore{db: tx, logger: s.logger}
}

// Create implements store.DimensionStore.Create.
func (s *PostgresDimensionStore) Create(ctx context.Context, dimension *domain.Dimension) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := dimension.Validate(); err != nil {
		return err
	}

	query := `INSERT INTO dimensions (id, name, description) VALUES ($1, $2, $3)`
	_, err := s.db.ExecContext(ctx, query, dimension.ID, dimension.Name, dimension.Description)
	if err != nil {
		log.Error("failed to create dimension",
			slog.String("error", err.Error()),
			slog.String("dimension_id", dimension.ID.String()))
		return err
	}

	return nil
}

// GetByID implements store.DimensionStore.GetByID.
func (s *PostgresDimensionStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Dimension, error) {
	query := `SELECT id, name, description FROM dimensions WHERE id = $1`

	var dimension domain.Dimension
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&dimension.ID,
		&dimension.Name,
		&dimension.Description,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrDimensionNotFound
		}
		return nil, err
	}

	return &dimension, nil
}

// List implements store.DimensionStore.List.
func (s *PostgresDimensionStore) List(ctx context.Context) ([]*domain.Dimension, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT id, name, description FROM dimensions ORDER BY name`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	dimensions := []*domain.Dimension{}
	for rows.Next() {
		var dimension domain.Dimension
		if err := rows.Scan(&dimension.ID, &dimension.Name, &dimension.Description); err != nil {
			return nil, err
		}
		dimensions = append(dimensions, &dimension)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return dimensions, nil
}

// Update implements store.DimensionStore.Update.
func (s *PostgresDimensionStore) Update(ctx context.Context, dimension *domain.Dimension) error {
	if err := dimension.Validate(); err != nil {
		return err
	}

	query := `UPDATE dimensions SET name = $1, description = $2 WHERE id = $3`

	result, err := s.db.ExecContext(ctx, query, dimension.Name, dimension.Description, dimension.ID)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return store.ErrDimensionNotFound
	}

	return nil
}

// Delete implements store.DimensionStore.Delete.
func (s *PostgresDimensionStore) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM dimensions WHERE id = $1`, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return store.ErrDimensionNotFound
	}

	return nil
}
