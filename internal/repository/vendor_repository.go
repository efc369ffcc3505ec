package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/isp-registry/internal/domain"
)

// VendorFilter captures vendor search parameters.
type VendorFilter struct {
	ID         *int64
	NamePrefix *string
	TypePrefix *string
	Limit      int
	Offset     int
}

// VendorRepository encapsulates vendor persistence.
type VendorRepository interface {
	Create(ctx context.Context, vendor *domain.Vendor) error
	Update(ctx context.Context, vendor *domain.Vendor) error
	GetByID(ctx context.Context, id int64) (*domain.Vendor, error)
	GetByNameAndType(ctx context.Context, name string, vendorType domain.VendorType) (*domain.Vendor, error)
	Exists(ctx context.Context, id int64) (bool, error)
	List(ctx context.Context, filter VendorFilter) ([]domain.Vendor, error)
	FindByNamePrefix(ctx context.Context, prefix string) ([]domain.Vendor, error)
	Delete(ctx context.Context, id int64) error
}

type vendorRepository struct {
	pool *pgxpool.Pool
}

// NewVendorRepository instantiates repository.
func NewVendorRepository(pool *pgxpool.Pool) VendorRepository {
	return &vendorRepository{pool: pool}
}

func (r *vendorRepository) Create(ctx context.Context, vendor *domain.Vendor) error {
	const query = `INSERT INTO vendors (name, type) VALUES ($1, $2) RETURNING id`
	return r.pool.QueryRow(ctx, query, vendor.Name, vendor.Type).Scan(&vendor.ID)
}

func (r *vendorRepository) Update(ctx context.Context, vendor *domain.Vendor) error {
	const query = `UPDATE vendors SET name=$1, type=$2 WHERE id=$3`
	cmd, err := r.pool.Exec(ctx, query, vendor.Name, vendor.Type, vendor.ID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *vendorRepository) GetByID(ctx context.Context, id int64) (*domain.Vendor, error) {
	const query = `SELECT id, name, type FROM vendors WHERE id=$1`
	var vendor domain.Vendor
	if err := r.pool.QueryRow(ctx, query, id).Scan(&vendor.ID, &vendor.Name, &vendor.Type); err != nil {
		return nil, err
	}
	return &vendor, nil
}

func (r *vendorRepository) GetByNameAndType(ctx context.Context, name string, vendorType domain.VendorType) (*domain.Vendor, error) {
	const query = `SELECT id, name, type FROM vendors WHERE name=$1 AND type=$2`
	var vendor domain.Vendor
	if err := r.pool.QueryRow(ctx, query, name, vendorType).Scan(&vendor.ID, &vendor.Name, &vendor.Type); err != nil {
		return nil, err
	}
	return &vendor, nil
}

func (r *vendorRepository) Exists(ctx context.Context, id int64) (bool, error) {
	const query = `SELECT EXISTS(SELECT 1 FROM vendors WHERE id=$1)`
	var exists bool
	if err := r.pool.QueryRow(ctx, query, id).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *vendorRepository) List(ctx context.Context, filter VendorFilter) ([]domain.Vendor, error) {
	qb := newFilterQuery(`SELECT id, name, type FROM vendors`)
	qb.EqualInt64("id", filter.ID)
	qb.PrefixILike("name", filter.NamePrefix)
	qb.PrefixILike("type", filter.TypePrefix)

	rows, err := r.pool.Query(ctx, qb.Build("id", filter.Limit, filter.Offset), qb.Args()...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Vendor
	for rows.Next() {
		var vendor domain.Vendor
		if err := rows.Scan(&vendor.ID, &vendor.Name, &vendor.Type); err != nil {
			return nil, err
		}
		result = append(result, vendor)
	}
	return result, rows.Err()
}

// FindByNamePrefix returns vendors in default (primary key) order whose
// name starts with the prefix, case-insensitively.
func (r *vendorRepository) FindByNamePrefix(ctx context.Context, prefix string) ([]domain.Vendor, error) {
	return r.List(ctx, VendorFilter{NamePrefix: &prefix})
}

func (r *vendorRepository) Delete(ctx context.Context, id int64) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM vendors WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
