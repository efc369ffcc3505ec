package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/isp-registry/internal/domain"
)

// ServiceFilter captures service search parameters. Name-bearing filters
// have already been resolved to identifiers by the search resolver.
type ServiceFilter struct {
	ID            *int64
	ClientID      *int64
	PointPrefix   *string
	PopNamePrefix *string
	TypePrefix    *string
	Limit         int
	Offset        int
}

// ServiceRepository encapsulates service persistence.
type ServiceRepository interface {
	Create(ctx context.Context, service *domain.Service) error
	Update(ctx context.Context, service *domain.Service) error
	GetByID(ctx context.Context, id int64) (*domain.Service, error)
	GetByProperties(ctx context.Context, service *domain.Service) (*domain.Service, error)
	Exists(ctx context.Context, id int64) (bool, error)
	List(ctx context.Context, filter ServiceFilter) ([]domain.Service, error)
	FindByPointPrefix(ctx context.Context, clientID int64, prefix string) ([]domain.Service, error)
	Delete(ctx context.Context, id int64) error
}

type serviceRepository struct {
	pool *pgxpool.Pool
}

// NewServiceRepository instantiates repository.
func NewServiceRepository(pool *pgxpool.Pool) ServiceRepository {
	return &serviceRepository{pool: pool}
}

func (r *serviceRepository) Create(ctx context.Context, service *domain.Service) error {
	const query = `
        INSERT INTO services (client_id, point, service_type_id, bandwidth, pop_id, extra_info)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id`
	return r.pool.QueryRow(ctx, query,
		service.ClientID,
		service.Point,
		service.ServiceTypeID,
		service.Bandwidth,
		service.PopID,
		service.ExtraInfo,
	).Scan(&service.ID)
}

func (r *serviceRepository) Update(ctx context.Context, service *domain.Service) error {
	const query = `
        UPDATE services SET client_id=$1, point=$2, service_type_id=$3, bandwidth=$4, pop_id=$5, extra_info=$6
        WHERE id=$7`
	cmd, err := r.pool.Exec(ctx, query,
		service.ClientID,
		service.Point,
		service.ServiceTypeID,
		service.Bandwidth,
		service.PopID,
		service.ExtraInfo,
		service.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *serviceRepository) GetByID(ctx context.Context, id int64) (*domain.Service, error) {
	const query = `
        SELECT id, client_id, point, service_type_id, bandwidth, pop_id, extra_info
        FROM services WHERE id=$1`
	var service domain.Service
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&service.ID,
		&service.ClientID,
		&service.Point,
		&service.ServiceTypeID,
		&service.Bandwidth,
		&service.PopID,
		&service.ExtraInfo,
	); err != nil {
		return nil, err
	}
	return &service, nil
}

func (r *serviceRepository) GetByProperties(ctx context.Context, service *domain.Service) (*domain.Service, error) {
	const query = `
        SELECT id, client_id, point, service_type_id, bandwidth, pop_id, extra_info
        FROM services
        WHERE client_id=$1 AND point=$2 AND service_type_id=$3 AND bandwidth=$4 AND pop_id=$5`
	var found domain.Service
	if err := r.pool.QueryRow(ctx, query,
		service.ClientID,
		service.Point,
		service.ServiceTypeID,
		service.Bandwidth,
		service.PopID,
	).Scan(
		&found.ID,
		&found.ClientID,
		&found.Point,
		&found.ServiceTypeID,
		&found.Bandwidth,
		&found.PopID,
		&found.ExtraInfo,
	); err != nil {
		return nil, err
	}
	return &found, nil
}

func (r *serviceRepository) Exists(ctx context.Context, id int64) (bool, error) {
	const query = `SELECT EXISTS(SELECT 1 FROM services WHERE id=$1)`
	var exists bool
	if err := r.pool.QueryRow(ctx, query, id).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *serviceRepository) List(ctx context.Context, filter ServiceFilter) ([]domain.Service, error) {
	qb := newFilterQuery(`SELECT s.id, s.client_id, s.point, s.service_type_id, s.bandwidth, s.pop_id, s.extra_info
        FROM services s
        JOIN pops p ON p.id = s.pop_id
        JOIN service_types st ON st.id = s.service_type_id`)
	qb.EqualInt64("s.id", filter.ID)
	qb.EqualInt64("s.client_id", filter.ClientID)
	qb.PrefixILike("s.point", filter.PointPrefix)
	qb.PrefixILike("p.name", filter.PopNamePrefix)
	qb.PrefixILike("st.name", filter.TypePrefix)

	rows, err := r.pool.Query(ctx, qb.Build("s.id", filter.Limit, filter.Offset), qb.Args()...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanServices(rows)
}

// FindByPointPrefix returns a client's services in default (primary key)
// order whose service point starts with the prefix, case-insensitively.
func (r *serviceRepository) FindByPointPrefix(ctx context.Context, clientID int64, prefix string) ([]domain.Service, error) {
	return r.List(ctx, ServiceFilter{ClientID: &clientID, PointPrefix: &prefix})
}

func (r *serviceRepository) Delete(ctx context.Context, id int64) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM services WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func scanServices(rows pgx.Rows) ([]domain.Service, error) {
	var result []domain.Service
	for rows.Next() {
		var service domain.Service
		if err := rows.Scan(
			&service.ID,
			&service.ClientID,
			&service.Point,
			&service.ServiceTypeID,
			&service.Bandwidth,
			&service.PopID,
			&service.ExtraInfo,
		); err != nil {
			return nil, err
		}
		result = append(result, service)
	}
	return result, rows.Err()
}
