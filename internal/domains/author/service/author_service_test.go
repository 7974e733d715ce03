package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"catalog-backend/internal/domains/author"
)

// fakeAuthorRepo is an in-memory author.Repository mirroring the
// Postgres implementation's error semantics.
type fakeAuthorRepo struct {
	authors map[int64]*author.Author
	nextID  int64
	deleted []int64
}

func newFakeAuthorRepo() *fakeAuthorRepo {
	return &fakeAuthorRepo{
		authors: map[int64]*author.Author{},
		nextID:  1,
	}
}

func (f *fakeAuthorRepo) Create(_ context.Context, a *author.Author) (*author.Author, error) {
	for _, existing := range f.authors {
		if existing.Name == a.Name {
			return nil, author.ErrAuthorAlreadyExists
		}
	}

	stored := *a
	stored.ID = f.nextID
	stored.CreatedAt = time.Now()
	stored.UpdatedAt = stored.CreatedAt
	f.authors[stored.ID] = &stored
	f.nextID++

	result := stored
	return &result, nil
}

func (f *fakeAuthorRepo) GetByID(_ context.Context, id int64) (*author.Author, error) {
	a, ok := f.authors[id]
	if !ok {
		return nil, author.ErrAuthorNotFound
	}
	result := *a
	return &result, nil
}

func (f *fakeAuthorRepo) List(_ context.Context, filter author.AuthorFilter) ([]author.Author, error) {
	result := []author.Author{}
	for id := int64(1); id < f.nextID; id++ {
		a, ok := f.authors[id]
		if !ok {
			continue
		}
		if filter.Name != "" && !containsFold(a.Name, filter.Name) {
			continue
		}
		result = append(result, *a)
	}
	start := filter.Offset
	if start > len(result) {
		return []author.Author{}, nil
	}
	end := start + filter.Limit
	if end > len(result) {
		end = len(result)
	}
	return result[start:end], nil
}

func (f *fakeAuthorRepo) Update(_ context.Context, a *author.Author) (*author.Author, error) {
	existing, ok := f.authors[a.ID]
	if !ok {
		return nil, author.ErrAuthorNotFound
	}
	for id, other := range f.authors {
		if id != a.ID && other.Name == a.Name {
			return nil, author.ErrAuthorAlreadyExists
		}
	}

	updated := *a
	updated.CreatedAt = existing.CreatedAt
	updated.UpdatedAt = time.Now()
	f.authors[a.ID] = &updated

	result := updated
	return &result, nil
}

func (f *fakeAuthorRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.authors[id]; !ok {
		return author.ErrAuthorNotFound
	}
	delete(f.authors, id)
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeAuthorRepo) ExistsByID(_ context.Context, id int64) (bool, error) {
	_, ok := f.authors[id]
	return ok, nil
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

func strPtr(s string) *string { return &s }

func TestAuthorCreate(t *testing.T) {
	t.Run("stores sanitized name and returns it title-cased", func(t *testing.T) {
		svc := NewAuthorService(newFakeAuthorRepo())

		dto, err := svc.Create(context.Background(), author.CreateAuthorRequest{
			Name: "  Machado de Assis  ",
		})
		require.NoError(t, err)
		assert.Equal(t, int64(1), dto.ID)
		assert.Equal(t, "Machado De Assis", dto.Name)
	})

	t.Run("rejects duplicate name after sanitization", func(t *testing.T) {
		svc := NewAuthorService(newFakeAuthorRepo())

		_, err := svc.Create(context.Background(), author.CreateAuthorRequest{Name: "clarice lispector"})
		require.NoError(t, err)

		_, err = svc.Create(context.Background(), author.CreateAuthorRequest{Name: "  Clarice   Lispector!  "})
		assert.ErrorIs(t, err, author.ErrAuthorAlreadyExists)
	})

	t.Run("rejects empty name", func(t *testing.T) {
		svc := NewAuthorService(newFakeAuthorRepo())

		_, err := svc.Create(context.Background(), author.CreateAuthorRequest{Name: "   "})
		assert.Error(t, err)
	})
}

func TestAuthorList(t *testing.T) {
	repo := newFakeAuthorRepo()
	svc := NewAuthorService(repo)

	for _, name := range []string{"machado de assis", "manuel bandeira", "clarice lispector"} {
		_, err := svc.Create(context.Background(), author.CreateAuthorRequest{Name: name})
		require.NoError(t, err)
	}

	t.Run("filters by name substring", func(t *testing.T) {
		dtos, err := svc.List(context.Background(), author.AuthorFilter{Name: "ma"})
		require.NoError(t, err)
		require.Len(t, dtos, 2)
		assert.Equal(t, "Machado De Assis", dtos[0].Name)
		assert.Equal(t, "Manuel Bandeira", dtos[1].Name)
	})

	t.Run("paginates in id order", func(t *testing.T) {
		dtos, err := svc.List(context.Background(), author.AuthorFilter{Offset: 1, Limit: 1})
		require.NoError(t, err)
		require.Len(t, dtos, 1)
		assert.Equal(t, int64(2), dtos[0].ID)
	})
}

func TestAuthorUpdate(t *testing.T) {
	t.Run("renames and keeps id", func(t *testing.T) {
		svc := NewAuthorService(newFakeAuthorRepo())

		created, err := svc.Create(context.Background(), author.CreateAuthorRequest{Name: "machado de assis"})
		require.NoError(t, err)

		updated, err := svc.Update(context.Background(), created.ID, author.UpdateAuthorRequest{
			Name: strPtr("  Machado de ASSIS Jr  "),
		})
		require.NoError(t, err)
		assert.Equal(t, created.ID, updated.ID)
		assert.Equal(t, "Machado De Assis Jr", updated.Name)
	})

	t.Run("nil name leaves the stored value", func(t *testing.T) {
		svc := NewAuthorService(newFakeAuthorRepo())

		created, err := svc.Create(context.Background(), author.CreateAuthorRequest{Name: "machado de assis"})
		require.NoError(t, err)

		updated, err := svc.Update(context.Background(), created.ID, author.UpdateAuthorRequest{})
		require.NoError(t, err)
		assert.Equal(t, "Machado De Assis", updated.Name)
	})

	t.Run("unknown author", func(t *testing.T) {
		svc := NewAuthorService(newFakeAuthorRepo())

		_, err := svc.Update(context.Background(), 99, author.UpdateAuthorRequest{Name: strPtr("x y")})
		assert.ErrorIs(t, err, author.ErrAuthorNotFound)
	})
}

func TestAuthorDelete(t *testing.T) {
	svc := NewAuthorService(newFakeAuthorRepo())

	created, err := svc.Create(context.Background(), author.CreateAuthorRequest{Name: "machado de assis"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), created.ID))
	assert.ErrorIs(t, svc.Delete(context.Background(), created.ID), author.ErrAuthorNotFound)
}
