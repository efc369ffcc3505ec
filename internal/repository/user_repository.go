package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/isp-registry/internal/domain"
)

// UserFilter captures user search parameters.
type UserFilter struct {
	ID             *int64
	UserNamePrefix *string
	Disabled       *bool
	ScopePrefix    *string
	Limit          int
	Offset         int
}

// UserRepository defines persistence access for operator accounts.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	Update(ctx context.Context, user *domain.User) error
	UpdatePassword(ctx context.Context, userName, passwordHash string) error
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByUserName(ctx context.Context, userName string) (*domain.User, error)
	List(ctx context.Context, filter UserFilter) ([]domain.User, error)
	Delete(ctx context.Context, id int64) error
}

type userRepository struct {
	pool *pgxpool.Pool
}

// NewUserRepository returns a Postgres-backed implementation.
func NewUserRepository(pool *pgxpool.Pool) UserRepository {
	return &userRepository{pool: pool}
}

func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	const query = `
        INSERT INTO users (user_name, email, full_name, disabled, password, scope)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id`

	return r.pool.QueryRow(ctx, query,
		user.UserName,
		user.Email,
		user.FullName,
		user.Disabled,
		user.PasswordHash,
		user.Scope,
	).Scan(&user.ID)
}

func (r *userRepository) Update(ctx context.Context, user *domain.User) error {
	const query = `
        UPDATE users SET user_name=$1, email=$2, full_name=$3, disabled=$4, scope=$5
        WHERE id=$6`

	cmd, err := r.pool.Exec(ctx, query,
		user.UserName,
		user.Email,
		user.FullName,
		user.Disabled,
		user.Scope,
		user.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *userRepository) UpdatePassword(ctx context.Context, userName, passwordHash string) error {
	const query = `UPDATE users SET password=$1 WHERE user_name=$2`

	cmd, err := r.pool.Exec(ctx, query, passwordHash, userName)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	const query = `
        SELECT id, user_name, email, full_name, disabled, password, scope
        FROM users WHERE id=$1`
	return r.fetchSingle(ctx, query, id)
}

func (r *userRepository) GetByUserName(ctx context.Context, userName string) (*domain.User, error) {
	const query = `
        SELECT id, user_name, email, full_name, disabled, password, scope
        FROM users WHERE user_name=$1`
	return r.fetchSingle(ctx, query, userName)
}

func (r *userRepository) fetchSingle(ctx context.Context, query string, arg any) (*domain.User, error) {
	var user domain.User
	if err := r.pool.QueryRow(ctx, query, arg).Scan(
		&user.ID,
		&user.UserName,
		&user.Email,
		&user.FullName,
		&user.Disabled,
		&user.PasswordHash,
		&user.Scope,
	); err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) List(ctx context.Context, filter UserFilter) ([]domain.User, error) {
	qb := newFilterQuery(`SELECT id, user_name, email, full_name, disabled, password, scope FROM users`)
	qb.EqualInt64("id", filter.ID)
	qb.PrefixILike("user_name", filter.UserNamePrefix)
	if filter.Disabled != nil {
		qb.Equal("disabled", *filter.Disabled)
	}
	qb.PrefixILike("scope", filter.ScopePrefix)

	rows, err := r.pool.Query(ctx, qb.Build("id", filter.Limit, filter.Offset), qb.Args()...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.User
	for rows.Next() {
		var user domain.User
		if err := rows.Scan(
			&user.ID,
			&user.UserName,
			&user.Email,
			&user.FullName,
			&user.Disabled,
			&user.PasswordHash,
			&user.Scope,
		); err != nil {
			return nil, err
		}
		result = append(result, user)
	}
	return result, rows.Err()
}

func (r *userRepository) Delete(ctx context.Context, id int64) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM users WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
