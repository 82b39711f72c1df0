// Package snapshot implements the key-value persistence collaborator
// on PostgreSQL: one row per key, the whole serialized booking list as
// the value. There is deliberately no bookings table; a general CRUD
// layer is out of scope.
package snapshot

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/abarriera/CPA-BookingService/pkg/psqlbuilder"
)

// Repository репозиторий для работы со снапшотами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория снапшотов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Save upserts the serialized value under the key
func (r *Repository) Save(ctx context.Context, key string, data []byte) error {
	query, args, err := psqlbuilder.Insert("snapshots").
		Columns("key", "data").
		Values(key, data).
		Suffix("ON CONFLICT (key) DO UPDATE SET data = EXCLUDED.data, updated_at = NOW()").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Save - build upsert query: %v", ErrBuildQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Save - execute upsert: %v", ErrExecQuery, err)
	}

	return nil
}

// Load returns the stored value for the key; found=false when absent
func (r *Repository) Load(ctx context.Context, key string) ([]byte, bool, error) {
	query, args, err := psqlbuilder.Select("data").
		From("snapshots").
		Where(squirrel.Eq{"key": key}).
		ToSql()
	if err != nil {
		return nil, false, fmt.Errorf("%w: Load - build select query: %v", ErrBuildQuery, err)
	}

	var data []byte
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("%w: Load - scan snapshot: %v", ErrScanRow, err)
	}

	return data, true, nil
}
