package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/isp-registry/internal/domain"
)

// ContactFilter captures contact search parameters. Name-bearing parent
// filters have already been resolved to identifiers by the search resolver.
type ContactFilter struct {
	ID                *int64
	NamePrefix        *string
	DesignationPrefix *string
	TypePrefix        *string
	PhonePrefix       *string
	EmailPrefix       *string
	ClientID          *int64
	VendorID          *int64
	ServiceID         *int64
	Limit             int
	Offset            int
}

// ContactRepository encapsulates contact persistence. The exactly-one-parent
// invariant is enforced by the reference validator before any write; the
// storage layer only maps the sum type to its three nullable columns.
type ContactRepository interface {
	Create(ctx context.Context, contact *domain.Contact) error
	Update(ctx context.Context, contact *domain.Contact) error
	GetByID(ctx context.Context, id int64) (*domain.Contact, error)
	GetByProperties(ctx context.Context, contact *domain.Contact) (*domain.Contact, error)
	List(ctx context.Context, filter ContactFilter) ([]domain.Contact, error)
	Delete(ctx context.Context, id int64) error
}

type contactRepository struct {
	pool *pgxpool.Pool
}

// NewContactRepository instantiates repository.
func NewContactRepository(pool *pgxpool.Pool) ContactRepository {
	return &contactRepository{pool: pool}
}

func (r *contactRepository) Create(ctx context.Context, contact *domain.Contact) error {
	const query = `
        INSERT INTO contacts (name, designation, type, phone1, phone2, phone3, email, client_id, vendor_id, service_id)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
        RETURNING id`
	clientID, vendorID, serviceID := contact.Parent.Columns()
	return r.pool.QueryRow(ctx, query,
		contact.Name,
		contact.Designation,
		contact.Type,
		contact.Phone1,
		contact.Phone2,
		contact.Phone3,
		contact.Email,
		clientID,
		vendorID,
		serviceID,
	).Scan(&contact.ID)
}

func (r *contactRepository) Update(ctx context.Context, contact *domain.Contact) error {
	const query = `
        UPDATE contacts SET name=$1, designation=$2, type=$3, phone1=$4, phone2=$5, phone3=$6, email=$7,
            client_id=$8, vendor_id=$9, service_id=$10
        WHERE id=$11`
	clientID, vendorID, serviceID := contact.Parent.Columns()
	cmd, err := r.pool.Exec(ctx, query,
		contact.Name,
		contact.Designation,
		contact.Type,
		contact.Phone1,
		contact.Phone2,
		contact.Phone3,
		contact.Email,
		clientID,
		vendorID,
		serviceID,
		contact.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *contactRepository) GetByID(ctx context.Context, id int64) (*domain.Contact, error) {
	const query = `
        SELECT id, name, designation, type, phone1, phone2, phone3, email, client_id, vendor_id, service_id
        FROM contacts WHERE id=$1`
	row := r.pool.QueryRow(ctx, query, id)
	return scanContact(row)
}

func (r *contactRepository) GetByProperties(ctx context.Context, contact *domain.Contact) (*domain.Contact, error) {
	qb := newFilterQuery(`SELECT id, name, designation, type, phone1, phone2, phone3, email, client_id, vendor_id, service_id
        FROM contacts`)
	qb.Equal("name", contact.Name)
	qb.Equal("designation", contact.Designation)
	qb.Equal("type", contact.Type)
	clientID, vendorID, serviceID := contact.Parent.Columns()
	qb.EqualInt64("client_id", clientID)
	qb.EqualInt64("vendor_id", vendorID)
	qb.EqualInt64("service_id", serviceID)

	rows, err := r.pool.Query(ctx, qb.Build("id", 1, 0), qb.Args()...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, err
		}
		return nil, pgx.ErrNoRows
	}
	return scanContact(rows)
}

func (r *contactRepository) List(ctx context.Context, filter ContactFilter) ([]domain.Contact, error) {
	qb := newFilterQuery(`SELECT id, name, designation, type, phone1, phone2, phone3, email, client_id, vendor_id, service_id
        FROM contacts`)
	qb.EqualInt64("id", filter.ID)
	qb.PrefixILike("name", filter.NamePrefix)
	qb.PrefixILike("designation", filter.DesignationPrefix)
	qb.PrefixILike("type", filter.TypePrefix)
	qb.PrefixILike("phone1", filter.PhonePrefix)
	qb.PrefixILike("email", filter.EmailPrefix)
	qb.EqualInt64("client_id", filter.ClientID)
	qb.EqualInt64("vendor_id", filter.VendorID)
	qb.EqualInt64("service_id", filter.ServiceID)

	rows, err := r.pool.Query(ctx, qb.Build("id", filter.Limit, filter.Offset), qb.Args()...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Contact
	for rows.Next() {
		contact, err := scanContact(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *contact)
	}
	return result, rows.Err()
}

func (r *contactRepository) Delete(ctx context.Context, id int64) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM contacts WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func scanContact(row pgx.Row) (*domain.Contact, error) {
	var contact domain.Contact
	var clientID, vendorID, serviceID *int64
	if err := row.Scan(
		&contact.ID,
		&contact.Name,
		&contact.Designation,
		&contact.Type,
		&contact.Phone1,
		&contact.Phone2,
		&contact.Phone3,
		&contact.Email,
		&clientID,
		&vendorID,
		&serviceID,
	); err != nil {
		return nil, err
	}

	parent, err := domain.NewParentRef(clientID, vendorID, serviceID)
	if err != nil {
		// Row inserted outside the validator; surface rather than mask.
		return nil, err
	}
	contact.Parent = parent
	return &contact, nil
}
