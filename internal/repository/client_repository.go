package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/isp-registry/internal/domain"
)

// ClientFilter captures client search parameters.
type ClientFilter struct {
	ID             *int64
	NamePrefix     *string
	TypeNamePrefix *string
	Limit          int
	Offset         int
}

// ClientRepository encapsulates client persistence.
type ClientRepository interface {
	Create(ctx context.Context, client *domain.Client) error
	Update(ctx context.Context, client *domain.Client) error
	GetByID(ctx context.Context, id int64) (*domain.Client, error)
	GetByName(ctx context.Context, name string) (*domain.Client, error)
	Exists(ctx context.Context, id int64) (bool, error)
	List(ctx context.Context, filter ClientFilter) ([]domain.Client, error)
	FindByNamePrefix(ctx context.Context, prefix string) ([]domain.Client, error)
	Delete(ctx context.Context, id int64) error
}

type clientRepository struct {
	pool *pgxpool.Pool
}

// NewClientRepository instantiates repository.
func NewClientRepository(pool *pgxpool.Pool) ClientRepository {
	return &clientRepository{pool: pool}
}

func (r *clientRepository) Create(ctx context.Context, client *domain.Client) error {
	const query = `
        INSERT INTO clients (name, client_type_id)
        VALUES ($1, $2)
        RETURNING id`
	return r.pool.QueryRow(ctx, query, client.Name, client.ClientTypeID).Scan(&client.ID)
}

func (r *clientRepository) Update(ctx context.Context, client *domain.Client) error {
	const query = `UPDATE clients SET name=$1, client_type_id=$2 WHERE id=$3`
	cmd, err := r.pool.Exec(ctx, query, client.Name, client.ClientTypeID, client.ID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *clientRepository) GetByID(ctx context.Context, id int64) (*domain.Client, error) {
	const query = `SELECT id, name, client_type_id FROM clients WHERE id=$1`
	return r.fetchSingle(ctx, query, id)
}

func (r *clientRepository) GetByName(ctx context.Context, name string) (*domain.Client, error) {
	const query = `SELECT id, name, client_type_id FROM clients WHERE name=$1`
	return r.fetchSingle(ctx, query, name)
}

func (r *clientRepository) fetchSingle(ctx context.Context, query string, arg any) (*domain.Client, error) {
	var client domain.Client
	if err := r.pool.QueryRow(ctx, query, arg).Scan(
		&client.ID,
		&client.Name,
		&client.ClientTypeID,
	); err != nil {
		return nil, err
	}
	return &client, nil
}

func (r *clientRepository) Exists(ctx context.Context, id int64) (bool, error) {
	const query = `SELECT EXISTS(SELECT 1 FROM clients WHERE id=$1)`
	var exists bool
	if err := r.pool.QueryRow(ctx, query, id).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *clientRepository) List(ctx context.Context, filter ClientFilter) ([]domain.Client, error) {
	qb := newFilterQuery(`SELECT c.id, c.name, c.client_type_id FROM clients c
        JOIN client_types ct ON ct.id = c.client_type_id`)
	qb.EqualInt64("c.id", filter.ID)
	qb.PrefixILike("c.name", filter.NamePrefix)
	qb.PrefixILike("ct.name", filter.TypeNamePrefix)

	rows, err := r.pool.Query(ctx, qb.Build("c.id", filter.Limit, filter.Offset), qb.Args()...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanClients(rows)
}

// FindByNamePrefix returns clients in default (primary key) order whose
// name starts with the prefix, case-insensitively.
func (r *clientRepository) FindByNamePrefix(ctx context.Context, prefix string) ([]domain.Client, error) {
	return r.List(ctx, ClientFilter{NamePrefix: &prefix})
}

func (r *clientRepository) Delete(ctx context.Context, id int64) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM clients WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func scanClients(rows pgx.Rows) ([]domain.Client, error) {
	var result []domain.Client
	for rows.Next() {
		var client domain.Client
		if err := rows.Scan(&client.ID, &client.Name, &client.ClientTypeID); err != nil {
			return nil, err
		}
		result = append(result, client)
	}
	return result, rows.Err()
}
