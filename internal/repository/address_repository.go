package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/isp-registry/internal/domain"
)

// AddressFilter captures address search parameters. Name-bearing parent
// filters have already been resolved to identifiers by the search resolver.
type AddressFilter struct {
	ID             *int64
	HoldingPrefix  *string
	StreetPrefix   *string
	AreaPrefix     *string
	ThanaPrefix    *string
	DistrictPrefix *string
	ClientID       *int64
	VendorID       *int64
	ServiceID      *int64
	Limit          int
	Offset         int
}

// AddressRepository encapsulates address persistence.
type AddressRepository interface {
	Create(ctx context.Context, address *domain.Address) error
	Update(ctx context.Context, address *domain.Address) error
	GetByID(ctx context.Context, id int64) (*domain.Address, error)
	List(ctx context.Context, filter AddressFilter) ([]domain.Address, error)
	Delete(ctx context.Context, id int64) error
}

type addressRepository struct {
	pool *pgxpool.Pool
}

// NewAddressRepository instantiates repository.
func NewAddressRepository(pool *pgxpool.Pool) AddressRepository {
	return &addressRepository{pool: pool}
}

func (r *addressRepository) Create(ctx context.Context, address *domain.Address) error {
	const query = `
        INSERT INTO addresses (flat, floor, holding, street, area, thana, district, extra_info, client_id, vendor_id, service_id)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
        RETURNING id`
	clientID, vendorID, serviceID := address.Parent.Columns()
	return r.pool.QueryRow(ctx, query,
		address.Flat,
		address.Floor,
		address.Holding,
		address.Street,
		address.Area,
		address.Thana,
		address.District,
		address.ExtraInfo,
		clientID,
		vendorID,
		serviceID,
	).Scan(&address.ID)
}

func (r *addressRepository) Update(ctx context.Context, address *domain.Address) error {
	const query = `
        UPDATE addresses SET flat=$1, floor=$2, holding=$3, street=$4, area=$5, thana=$6, district=$7,
            extra_info=$8, client_id=$9, vendor_id=$10, service_id=$11
        WHERE id=$12`
	clientID, vendorID, serviceID := address.Parent.Columns()
	cmd, err := r.pool.Exec(ctx, query,
		address.Flat,
		address.Floor,
		address.Holding,
		address.Street,
		address.Area,
		address.Thana,
		address.District,
		address.ExtraInfo,
		clientID,
		vendorID,
		serviceID,
		address.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *addressRepository) GetByID(ctx context.Context, id int64) (*domain.Address, error) {
	const query = `
        SELECT id, flat, floor, holding, street, area, thana, district, extra_info, client_id, vendor_id, service_id
        FROM addresses WHERE id=$1`
	row := r.pool.QueryRow(ctx, query, id)
	return scanAddress(row)
}

func (r *addressRepository) List(ctx context.Context, filter AddressFilter) ([]domain.Address, error) {
	qb := newFilterQuery(`SELECT id, flat, floor, holding, street, area, thana, district, extra_info, client_id, vendor_id, service_id
        FROM addresses`)
	qb.EqualInt64("id", filter.ID)
	qb.PrefixILike("holding", filter.HoldingPrefix)
	qb.PrefixILike("street", filter.StreetPrefix)
	qb.PrefixILike("area", filter.AreaPrefix)
	qb.PrefixILike("thana", filter.ThanaPrefix)
	qb.PrefixILike("district", filter.DistrictPrefix)
	qb.EqualInt64("client_id", filter.ClientID)
	qb.EqualInt64("vendor_id", filter.VendorID)
	qb.EqualInt64("service_id", filter.ServiceID)

	rows, err := r.pool.Query(ctx, qb.Build("id", filter.Limit, filter.Offset), qb.Args()...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Address
	for rows.Next() {
		address, err := scanAddress(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *address)
	}
	return result, rows.Err()
}

func (r *addressRepository) Delete(ctx context.Context, id int64) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM addresses WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func scanAddress(row pgx.Row) (*domain.Address, error) {
	var address domain.Address
	var clientID, vendorID, serviceID *int64
	if err := row.Scan(
		&address.ID,
		&address.Flat,
		&address.Floor,
		&address.Holding,
		&address.Street,
		&address.Area,
		&address.Thana,
		&address.District,
		&address.ExtraInfo,
		&clientID,
		&vendorID,
		&serviceID,
	); err != nil {
		return nil, err
	}

	parent, err := domain.NewParentRef(clientID, vendorID, serviceID)
	if err != nil {
		return nil, err
	}
	address.Parent = parent
	return &address, nil
}
