package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/isp-registry/internal/domain"
)

// ClientTypeFilter captures client type search parameters.
type ClientTypeFilter struct {
	ID         *int64
	NamePrefix *string
	Limit      int
	Offset     int
}

// ClientTypeRepository encapsulates client type persistence.
type ClientTypeRepository interface {
	Create(ctx context.Context, clientType *domain.ClientType) error
	GetByID(ctx context.Context, id int64) (*domain.ClientType, error)
	GetByName(ctx context.Context, name string) (*domain.ClientType, error)
	List(ctx context.Context, filter ClientTypeFilter) ([]domain.ClientType, error)
	Delete(ctx context.Context, id int64) error
}

type clientTypeRepository struct {
	pool *pgxpool.Pool
}

// NewClientTypeRepository instantiates repository.
func NewClientTypeRepository(pool *pgxpool.Pool) ClientTypeRepository {
	return &clientTypeRepository{pool: pool}
}

func (r *clientTypeRepository) Create(ctx context.Context, clientType *domain.ClientType) error {
	const query = `INSERT INTO client_types (name) VALUES ($1) RETURNING id`
	return r.pool.QueryRow(ctx, query, clientType.Name).Scan(&clientType.ID)
}

func (r *clientTypeRepository) GetByID(ctx context.Context, id int64) (*domain.ClientType, error) {
	const query = `SELECT id, name FROM client_types WHERE id=$1`
	var ct domain.ClientType
	if err := r.pool.QueryRow(ctx, query, id).Scan(&ct.ID, &ct.Name); err != nil {
		return nil, err
	}
	return &ct, nil
}

func (r *clientTypeRepository) GetByName(ctx context.Context, name string) (*domain.ClientType, error) {
	const query = `SELECT id, name FROM client_types WHERE name=$1`
	var ct domain.ClientType
	if err := r.pool.QueryRow(ctx, query, name).Scan(&ct.ID, &ct.Name); err != nil {
		return nil, err
	}
	return &ct, nil
}

func (r *clientTypeRepository) List(ctx context.Context, filter ClientTypeFilter) ([]domain.ClientType, error) {
	qb := newFilterQuery(`SELECT id, name FROM client_types`)
	qb.EqualInt64("id", filter.ID)
	qb.PrefixILike("name", filter.NamePrefix)

	rows, err := r.pool.Query(ctx, qb.Build("id", filter.Limit, filter.Offset), qb.Args()...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.ClientType
	for rows.Next() {
		var ct domain.ClientType
		if err := rows.Scan(&ct.ID, &ct.Name); err != nil {
			return nil, err
		}
		result = append(result, ct)
	}
	return result, rows.Err()
}

func (r *clientTypeRepository) Delete(ctx context.Context, id int64) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM client_types WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
