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

	"catalog-backend/internal/domains/book"
	"catalog-backend/pkg/cache"
	"catalog-backend/pkg/database"
)

// postgresRepository implements book.Repository on pgx with a
// read-through Redis cache for detail lookups.
type postgresRepository struct {
	pool  *pgxpool.Pool
	cache cache.Cache
}

// NewPostgresRepository creates the book repository instance.
func NewPostgresRepository(pool *pgxpool.Pool, cache cache.Cache) book.Repository {
	return &postgresRepository{
		pool:  pool,
		cache: cache,
	}
}

const (
	bookCacheKeyPrefix = "book:"
	bookListKeyPattern = "books:list:*"
	cacheTTL           = 15 * time.Minute
)

const bookColumns = "id, title, year, author_id, created_at, updated_at"

func scanBook(row pgx.Row) (*book.Book, error) {
	var b book.Book
	err := row.Scan(&b.ID, &b.Title, &b.Year, &b.AuthorID, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// mapWriteError translates Postgres constraint violations into domain
// errors. 23505 is the unique title, 23503 the author foreign key.
func mapWriteError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			return book.ErrBookAlreadyExists
		case "23503":
			return book.ErrAuthorDoesNotExist
		}
	}
	return nil
}

func (r *postgresRepository) Create(ctx context.Context, b *book.Book) (*book.Book, error) {
	created, err := database.WithTransactionResult(ctx, r.pool, func(tx pgx.Tx) (*book.Book, error) {
		query := `
        INSERT INTO books (title, year, author_id)
        VALUES ($1, $2, $3)
        RETURNING ` + bookColumns

		created, err := scanBook(tx.QueryRow(ctx, query, b.Title, b.Year, b.AuthorID))
		if err != nil {
			if mapped := mapWriteError(err); mapped != nil {
				return nil, mapped
			}
			return nil, fmt.Errorf("failed to create book: %w", err)
		}

		return created, nil
	})
	if err != nil {
		return nil, err
	}

	r.invalidateLists(ctx)
	return created, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id int64) (*book.Book, error) {
	cacheKey := bookCacheKeyPrefix + strconv.FormatInt(id, 10)

	var cached book.Book
	if found, err := r.cache.Get(ctx, cacheKey, &cached); err == nil && found {
		return &cached, nil
	}

	query := `SELECT ` + bookColumns + ` FROM books WHERE id = $1`

	b, err := scanBook(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, book.ErrBookNotFound
		}
		return nil, fmt.Errorf("failed to get book by id: %w", err)
	}

	_ = r.cache.Set(ctx, cacheKey, b, cacheTTL)
	return b, nil
}

func (r *postgresRepository) List(ctx context.Context, filter book.BookFilter) ([]book.Book, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(`SELECT ` + bookColumns + ` FROM books WHERE 1=1`)

	args := []interface{}{}
	argPos := 1

	if filter.Title != "" {
		queryBuilder.WriteString(fmt.Sprintf(" AND title ILIKE $%d", argPos))
		args = append(args, "%"+filter.Title+"%")
		argPos++
	}

	if filter.Year != nil {
		queryBuilder.WriteString(fmt.Sprintf(" AND year = $%d", argPos))
		args = append(args, *filter.Year)
		argPos++
	}

	queryBuilder.WriteString(" ORDER BY id ASC")
	queryBuilder.WriteString(fmt.Sprintf(" OFFSET $%d LIMIT $%d", argPos, argPos+1))
	args = append(args, filter.Offset, filter.Limit)

	rows, err := r.pool.Query(ctx, queryBuilder.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list books: %w", err)
	}
	defer rows.Close()

	books := []book.Book{}
	for rows.Next() {
		b, err := scanBook(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan book: %w", err)
		}
		books = append(books, *b)
	}

	return books, rows.Err()
}

func (r *postgresRepository) Update(ctx context.Context, b *book.Book) (*book.Book, error) {
	updated, err := database.WithTransactionResult(ctx, r.pool, func(tx pgx.Tx) (*book.Book, error) {
		query := `
        UPDATE books
        SET title = $1, year = $2, author_id = $3, updated_at = now()
        WHERE id = $4
        RETURNING ` + bookColumns

		updated, err := scanBook(tx.QueryRow(ctx, query, b.Title, b.Year, b.AuthorID, b.ID))
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, book.ErrBookNotFound
			}
			if mapped := mapWriteError(err); mapped != nil {
				return nil, mapped
			}
			return nil, fmt.Errorf("failed to update book: %w", err)
		}

		return updated, nil
	})
	if err != nil {
		return nil, err
	}

	r.invalidate(ctx, b.ID)
	return updated, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM books WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete book: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return book.ErrBookNotFound
	}

	r.invalidate(ctx, id)
	return nil
}

func (r *postgresRepository) invalidate(ctx context.Context, id int64) {
	_ = r.cache.Delete(ctx, bookCacheKeyPrefix+strconv.FormatInt(id, 10))
	r.invalidateLists(ctx)
}

func (r *postgresRepository) invalidateLists(ctx context.Context) {
	_ = r.cache.DeletePattern(ctx, bookListKeyPattern)
}
