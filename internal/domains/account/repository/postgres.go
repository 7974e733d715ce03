package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"catalog-backend/internal/domains/account"
	"catalog-backend/pkg/database"
)

// postgresRepository implements account.Repository on pgx.
type postgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates the account repository instance.
func NewPostgresRepository(pool *pgxpool.Pool) account.Repository {
	return &postgresRepository{pool: pool}
}

const accountColumns = "id, username, email, password_hash, created_at, updated_at"

func scanAccount(row pgx.Row) (*account.Account, error) {
	var a account.Account
	err := row.Scan(
		&a.ID,
		&a.Username,
		&a.Email,
		&a.Password,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// uniqueViolation maps a 23505 on the accounts table to the precise
// domain conflict, so the API can tell username from email collisions.
func uniqueViolation(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		if strings.Contains(pgErr.ConstraintName, "username") {
			return account.ErrUsernameAlreadyExists
		}
		if strings.Contains(pgErr.ConstraintName, "email") {
			return account.ErrEmailAlreadyExists
		}
	}
	return nil
}

func (r *postgresRepository) Create(ctx context.Context, a *account.Account) (*account.Account, error) {
	return database.WithTransactionResult(ctx, r.pool, func(tx pgx.Tx) (*account.Account, error) {
		query := `
        INSERT INTO accounts (username, email, password_hash)
        VALUES ($1, $2, $3)
        RETURNING ` + accountColumns

		created, err := scanAccount(tx.QueryRow(ctx, query, a.Username, a.Email, a.Password))
		if err != nil {
			if conflict := uniqueViolation(err); conflict != nil {
				return nil, conflict
			}
			return nil, fmt.Errorf("failed to create account: %w", err)
		}

		return created, nil
	})
}

func (r *postgresRepository) GetByID(ctx context.Context, id int64) (*account.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE id = $1`

	a, err := scanAccount(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, account.ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to get account by id: %w", err)
	}

	return a, nil
}

func (r *postgresRepository) GetByLogin(ctx context.Context, login string) (*account.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE email = $1 OR username = $1`

	a, err := scanAccount(r.pool.QueryRow(ctx, query, login))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, account.ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to get account by login: %w", err)
	}

	return a, nil
}

func (r *postgresRepository) List(ctx context.Context, filter account.AccountFilter) ([]account.Account, error) {
	query := `
        SELECT ` + accountColumns + `
        FROM accounts
        ORDER BY id ASC
        OFFSET $1 LIMIT $2
    `

	rows, err := r.pool.Query(ctx, query, filter.Offset, filter.Limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	defer rows.Close()

	accounts := []account.Account{}
	for rows.Next() {
		a, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account: %w", err)
		}
		accounts = append(accounts, *a)
	}

	return accounts, rows.Err()
}

func (r *postgresRepository) Update(ctx context.Context, a *account.Account) (*account.Account, error) {
	return database.WithTransactionResult(ctx, r.pool, func(tx pgx.Tx) (*account.Account, error) {
		query := `
        UPDATE accounts
        SET username = $1, email = $2, password_hash = $3, updated_at = now()
        WHERE id = $4
        RETURNING ` + accountColumns

		updated, err := scanAccount(tx.QueryRow(ctx, query, a.Username, a.Email, a.Password, a.ID))
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, account.ErrAccountNotFound
			}
			if conflict := uniqueViolation(err); conflict != nil {
				return nil, conflict
			}
			return nil, fmt.Errorf("failed to update account: %w", err)
		}

		return updated, nil
	})
}

func (r *postgresRepository) Delete(ctx context.Context, id int64) error {
	return database.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, `DELETE FROM accounts WHERE id = $1`, id)
		if err != nil {
			return fmt.Errorf("failed to delete account: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return account.ErrAccountNotFound
		}
		return nil
	})
}

func (r *postgresRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM accounts WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check account existence: %w", err)
	}
	return exists, nil
}
