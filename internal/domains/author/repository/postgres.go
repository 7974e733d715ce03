package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"catalog-backend/internal/domains/author"
	"catalog-backend/pkg/cache"
	"catalog-backend/pkg/database"
)

// postgresRepository implements author.Repository on pgx with a
// read-through Redis cache for detail lookups. Cache failures are
// swallowed; the database stays the source of truth.
type postgresRepository struct {
	pool  *pgxpool.Pool
	cache cache.Cache
}

// NewPostgresRepository creates the author repository instance.
func NewPostgresRepository(pool *pgxpool.Pool, cache cache.Cache) author.Repository {
	return &postgresRepository{
		pool:  pool,
		cache: cache,
	}
}

const (
	authorCacheKeyPrefix = "author:"
	authorListKeyPattern = "authors:list:*"
	bookCacheKeyPattern  = "book:*"
	bookListKeyPattern   = "books:list:*"
	cacheTTL             = 15 * time.Minute
)

const authorColumns = "id, name, created_at, updated_at"

func scanAuthor(row pgx.Row) (*author.Author, error) {
	var a author.Author
	err := row.Scan(&a.ID, &a.Name, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *postgresRepository) Create(ctx context.Context, a *author.Author) (*author.Author, error) {
	created, err := database.WithTransactionResult(ctx, r.pool, func(tx pgx.Tx) (*author.Author, error) {
		query := `
        INSERT INTO authors (name)
        VALUES ($1)
        RETURNING ` + authorColumns

		created, err := scanAuthor(tx.QueryRow(ctx, query, a.Name))
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == "23505" {
				return nil, author.ErrAuthorAlreadyExists
			}
			return nil, fmt.Errorf("failed to create author: %w", err)
		}

		return created, nil
	})
	if err != nil {
		return nil, err
	}

	r.invalidateLists(ctx)
	return created, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id int64) (*author.Author, error) {
	cacheKey := authorCacheKeyPrefix + strconv.FormatInt(id, 10)

	var cached author.Author
	if found, err := r.cache.Get(ctx, cacheKey, &cached); err == nil && found {
		return &cached, nil
	}

	query := `SELECT ` + authorColumns + ` FROM authors WHERE id = $1`

	a, err := scanAuthor(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, author.ErrAuthorNotFound
		}
		return nil, fmt.Errorf("failed to get author by id: %w", err)
	}

	_ = r.cache.Set(ctx, cacheKey, a, cacheTTL)
	return a, nil
}

func (r *postgresRepository) List(ctx context.Context, filter author.AuthorFilter) ([]author.Author, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(`SELECT ` + authorColumns + ` FROM authors WHERE 1=1`)

	args := []interface{}{}
	argPos := 1

	if filter.Name != "" {
		queryBuilder.WriteString(fmt.Sprintf(" AND name ILIKE $%d", argPos))
		args = append(args, "%"+filter.Name+"%")
		argPos++
	}

	queryBuilder.WriteString(" ORDER BY id ASC")
	queryBuilder.WriteString(fmt.Sprintf(" OFFSET $%d LIMIT $%d", argPos, argPos+1))
	args = append(args, filter.Offset, filter.Limit)

	rows, err := r.pool.Query(ctx, queryBuilder.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list authors: %w", err)
	}
	defer rows.Close()

	authors := []author.Author{}
	for rows.Next() {
		a, err := scanAuthor(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan author: %w", err)
		}
		authors = append(authors, *a)
	}

	return authors, rows.Err()
}

func (r *postgresRepository) Update(ctx context.Context, a *author.Author) (*author.Author, error) {
	updated, err := database.WithTransactionResult(ctx, r.pool, func(tx pgx.Tx) (*author.Author, error) {
		query := `
        UPDATE authors
        SET name = $1, updated_at = now()
        WHERE id = $2
        RETURNING ` + authorColumns

		updated, err := scanAuthor(tx.QueryRow(ctx, query, a.Name, a.ID))
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, author.ErrAuthorNotFound
			}
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == "23505" {
				return nil, author.ErrAuthorAlreadyExists
			}
			return nil, fmt.Errorf("failed to update author: %w", err)
		}

		return updated, nil
	})
	if err != nil {
		return nil, err
	}

	r.invalidate(ctx, a.ID)
	return updated, nil
}

// Delete removes the author and every owned book in one transaction,
// so a concurrent reader never observes a dangling author_id.
func (r *postgresRepository) Delete(ctx context.Context, id int64) error {
	err := database.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM books WHERE author_id = $1`, id); err != nil {
			return fmt.Errorf("failed to delete author's books: %w", err)
		}

		tag, err := tx.Exec(ctx, `DELETE FROM authors WHERE id = $1`, id)
		if err != nil {
			return fmt.Errorf("failed to delete author: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return author.ErrAuthorNotFound
		}
		return nil
	})
	if err != nil {
		return err
	}

	r.invalidate(ctx, id)
	_ = r.cache.DeletePattern(ctx, bookCacheKeyPattern)
	_ = r.cache.DeletePattern(ctx, bookListKeyPattern)
	return nil
}

func (r *postgresRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM authors WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check author existence: %w", err)
	}
	return exists, nil
}

func (r *postgresRepository) invalidate(ctx context.Context, id int64) {
	_ = r.cache.Delete(ctx, authorCacheKeyPrefix+strconv.FormatInt(id, 10))
	r.invalidateLists(ctx)
}

func (r *postgresRepository) invalidateLists(ctx context.Context) {
	_ = r.cache.DeletePattern(ctx, authorListKeyPattern)
}
