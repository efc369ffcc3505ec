package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/isp-registry/internal/domain"
)

// PopFilter captures pop search parameters.
type PopFilter struct {
	ID              *int64
	NamePrefix      *string
	OwnerNamePrefix *string
	Limit           int
	Offset          int
}

// PopRepository encapsulates pop persistence.
type PopRepository interface {
	Create(ctx context.Context, pop *domain.Pop) error
	Update(ctx context.Context, pop *domain.Pop) error
	GetByID(ctx context.Context, id int64) (*domain.Pop, error)
	GetByNameAndOwner(ctx context.Context, name string, owner int64) (*domain.Pop, error)
	List(ctx context.Context, filter PopFilter) ([]domain.Pop, error)
	Delete(ctx context.Context, id int64) error
}

type popRepository struct {
	pool *pgxpool.Pool
}

// NewPopRepository instantiates repository.
func NewPopRepository(pool *pgxpool.Pool) PopRepository {
	return &popRepository{pool: pool}
}

func (r *popRepository) Create(ctx context.Context, pop *domain.Pop) error {
	const query = `INSERT INTO pops (name, owner, extra_info) VALUES ($1, $2, $3) RETURNING id`
	return r.pool.QueryRow(ctx, query, pop.Name, pop.Owner, pop.ExtraInfo).Scan(&pop.ID)
}

func (r *popRepository) Update(ctx context.Context, pop *domain.Pop) error {
	const query = `UPDATE pops SET name=$1, owner=$2, extra_info=$3 WHERE id=$4`
	cmd, err := r.pool.Exec(ctx, query, pop.Name, pop.Owner, pop.ExtraInfo, pop.ID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *popRepository) GetByID(ctx context.Context, id int64) (*domain.Pop, error) {
	const query = `SELECT id, name, owner, extra_info FROM pops WHERE id=$1`
	var pop domain.Pop
	if err := r.pool.QueryRow(ctx, query, id).Scan(&pop.ID, &pop.Name, &pop.Owner, &pop.ExtraInfo); err != nil {
		return nil, err
	}
	return &pop, nil
}

func (r *popRepository) GetByNameAndOwner(ctx context.Context, name string, owner int64) (*domain.Pop, error) {
	const query = `SELECT id, name, owner, extra_info FROM pops WHERE name=$1 AND owner=$2`
	var pop domain.Pop
	if err := r.pool.QueryRow(ctx, query, name, owner).Scan(&pop.ID, &pop.Name, &pop.Owner, &pop.ExtraInfo); err != nil {
		return nil, err
	}
	return &pop, nil
}

func (r *popRepository) List(ctx context.Context, filter PopFilter) ([]domain.Pop, error) {
	qb := newFilterQuery(`SELECT p.id, p.name, p.owner, p.extra_info FROM pops p
        JOIN vendors v ON v.id = p.owner`)
	qb.EqualInt64("p.id", filter.ID)
	qb.PrefixILike("p.name", filter.NamePrefix)
	qb.PrefixILike("v.name", filter.OwnerNamePrefix)

	rows, err := r.pool.Query(ctx, qb.Build("p.id", filter.Limit, filter.Offset), qb.Args()...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Pop
	for rows.Next() {
		var pop domain.Pop
		if err := rows.Scan(&pop.ID, &pop.Name, &pop.Owner, &pop.ExtraInfo); err != nil {
			return nil, err
		}
		result = append(result, pop)
	}
	return result, rows.Err()
}

func (r *popRepository) Delete(ctx context.Context, id int64) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM pops WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
