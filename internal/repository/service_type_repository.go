package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/isp-registry/internal/domain"
)

// ServiceTypeFilter captures service type search parameters.
type ServiceTypeFilter struct {
	ID         *int64
	NamePrefix *string
	Limit      int
	Offset     int
}

// ServiceTypeRepository encapsulates service type persistence.
type ServiceTypeRepository interface {
	Create(ctx context.Context, serviceType *domain.ServiceType) error
	GetByID(ctx context.Context, id int64) (*domain.ServiceType, error)
	GetByName(ctx context.Context, name string) (*domain.ServiceType, error)
	List(ctx context.Context, filter ServiceTypeFilter) ([]domain.ServiceType, error)
	Delete(ctx context.Context, id int64) error
}

type serviceTypeRepository struct {
	pool *pgxpool.Pool
}

// NewServiceTypeRepository instantiates repository.
func NewServiceTypeRepository(pool *pgxpool.Pool) ServiceTypeRepository {
	return &serviceTypeRepository{pool: pool}
}

func (r *serviceTypeRepository) Create(ctx context.Context, serviceType *domain.ServiceType) error {
	const query = `INSERT INTO service_types (name, description) VALUES ($1, $2) RETURNING id`
	return r.pool.QueryRow(ctx, query, serviceType.Name, serviceType.Description).Scan(&serviceType.ID)
}

func (r *serviceTypeRepository) GetByID(ctx context.Context, id int64) (*domain.ServiceType, error) {
	const query = `SELECT id, name, description FROM service_types WHERE id=$1`
	var st domain.ServiceType
	if err := r.pool.QueryRow(ctx, query, id).Scan(&st.ID, &st.Name, &st.Description); err != nil {
		return nil, err
	}
	return &st, nil
}

func (r *serviceTypeRepository) GetByName(ctx context.Context, name string) (*domain.ServiceType, error) {
	const query = `SELECT id, name, description FROM service_types WHERE name=$1`
	var st domain.ServiceType
	if err := r.pool.QueryRow(ctx, query, name).Scan(&st.ID, &st.Name, &st.Description); err != nil {
		return nil, err
	}
	return &st, nil
}

func (r *serviceTypeRepository) List(ctx context.Context, filter ServiceTypeFilter) ([]domain.ServiceType, error) {
	qb := newFilterQuery(`SELECT id, name, description FROM service_types`)
	qb.EqualInt64("id", filter.ID)
	qb.PrefixILike("name", filter.NamePrefix)

	rows, err := r.pool.Query(ctx, qb.Build("id", filter.Limit, filter.Offset), qb.Args()...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.ServiceType
	for rows.Next() {
		var st domain.ServiceType
		if err := rows.Scan(&st.ID, &st.Name, &st.Description); err != nil {
			return nil, err
		}
		result = append(result, st)
	}
	return result, rows.Err()
}

func (r *serviceTypeRepository) Delete(ctx context.Context, id int64) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM service_types WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
