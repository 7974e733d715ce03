package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"catalog-backend/internal/domains/account"
	"catalog-backend/pkg/jwt"
)

// fakeAccountRepo is an in-memory account.Repository with the same
// uniqueness semantics as the Postgres implementation.
type fakeAccountRepo struct {
	accounts map[int64]*account.Account
	nextID   int64
}

func newFakeAccountRepo() *fakeAccountRepo {
	return &fakeAccountRepo{
		accounts: map[int64]*account.Account{},
		nextID:   1,
	}
}

func (f *fakeAccountRepo) Create(_ context.Context, a *account.Account) (*account.Account, error) {
	for _, existing := range f.accounts {
		if existing.Username == a.Username {
			return nil, account.ErrUsernameAlreadyExists
		}
		if existing.Email == a.Email {
			return nil, account.ErrEmailAlreadyExists
		}
	}

	stored := *a
	stored.ID = f.nextID
	stored.CreatedAt = time.Now()
	stored.UpdatedAt = stored.CreatedAt
	f.accounts[stored.ID] = &stored
	f.nextID++

	result := stored
	return &result, nil
}

func (f *fakeAccountRepo) GetByID(_ context.Context, id int64) (*account.Account, error) {
	a, ok := f.accounts[id]
	if !ok {
		return nil, account.ErrAccountNotFound
	}
	result := *a
	return &result, nil
}

func (f *fakeAccountRepo) GetByLogin(_ context.Context, login string) (*account.Account, error) {
	for _, a := range f.accounts {
		if a.Email == login || a.Username == login {
			result := *a
			return &result, nil
		}
	}
	return nil, account.ErrAccountNotFound
}

func (f *fakeAccountRepo) List(_ context.Context, filter account.AccountFilter) ([]account.Account, error) {
	result := []account.Account{}
	for id := int64(1); id < f.nextID; id++ {
		if a, ok := f.accounts[id]; ok {
			result = append(result, *a)
		}
	}
	start := filter.Offset
	if start > len(result) {
		return []account.Account{}, nil
	}
	end := start + filter.Limit
	if end > len(result) {
		end = len(result)
	}
	return result[start:end], nil
}

func (f *fakeAccountRepo) Update(_ context.Context, a *account.Account) (*account.Account, error) {
	existing, ok := f.accounts[a.ID]
	if !ok {
		return nil, account.ErrAccountNotFound
	}
	for id, other := range f.accounts {
		if id == a.ID {
			continue
		}
		if other.Username == a.Username {
			return nil, account.ErrUsernameAlreadyExists
		}
		if other.Email == a.Email {
			return nil, account.ErrEmailAlreadyExists
		}
	}

	updated := *a
	updated.CreatedAt = existing.CreatedAt
	updated.UpdatedAt = time.Now()
	f.accounts[a.ID] = &updated

	result := updated
	return &result, nil
}

func (f *fakeAccountRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.accounts[id]; !ok {
		return account.ErrAccountNotFound
	}
	delete(f.accounts, id)
	return nil
}

func (f *fakeAccountRepo) ExistsByID(_ context.Context, id int64) (bool, error) {
	_, ok := f.accounts[id]
	return ok, nil
}

func newTestService() (account.Service, *fakeAccountRepo) {
	repo := newFakeAccountRepo()
	manager := jwt.NewManager("test-secret", 15*time.Minute, 72*time.Hour)
	return NewAccountService(repo, manager), repo
}

func validRegistration() account.CreateAccountRequest {
	return account.CreateAccountRequest{
		Username: "Alice Wonder",
		Email:    "alice@example.com",
		Password: "secret123",
	}
}

func TestRegister(t *testing.T) {
	t.Run("creates account with sanitized username and hashed password", func(t *testing.T) {
		svc, repo := newTestService()

		dto, err := svc.Register(context.Background(), validRegistration())
		require.NoError(t, err)

		assert.Equal(t, int64(1), dto.ID)
		assert.Equal(t, "alice wonder", dto.Username)
		assert.Equal(t, "alice@example.com", dto.Email)

		stored := repo.accounts[dto.ID]
		require.NotNil(t, stored)
		assert.NotEqual(t, "secret123", stored.Password)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("secret123")))
	})

	t.Run("rejects duplicate username", func(t *testing.T) {
		svc, _ := newTestService()

		_, err := svc.Register(context.Background(), validRegistration())
		require.NoError(t, err)

		req := validRegistration()
		req.Email = "other@example.com"
		_, err = svc.Register(context.Background(), req)
		assert.ErrorIs(t, err, account.ErrUsernameAlreadyExists)
	})

	t.Run("rejects duplicate email", func(t *testing.T) {
		svc, _ := newTestService()

		_, err := svc.Register(context.Background(), validRegistration())
		require.NoError(t, err)

		req := validRegistration()
		req.Username = "someone else"
		_, err = svc.Register(context.Background(), req)
		assert.ErrorIs(t, err, account.ErrEmailAlreadyExists)
	})

	t.Run("rejects invalid email", func(t *testing.T) {
		svc, _ := newTestService()

		req := validRegistration()
		req.Email = "not-an-email"
		_, err := svc.Register(context.Background(), req)
		assert.Error(t, err)
	})
}

func TestUpdate(t *testing.T) {
	t.Run("owner can update", func(t *testing.T) {
		svc, _ := newTestService()

		dto, err := svc.Register(context.Background(), validRegistration())
		require.NoError(t, err)

		updated, err := svc.Update(context.Background(), dto.ID, dto.ID, account.UpdateAccountRequest{
			Username: "Alice Renamed",
			Email:    "renamed@example.com",
			Password: "newsecret",
		})
		require.NoError(t, err)
		assert.Equal(t, "alice renamed", updated.Username)
		assert.Equal(t, "renamed@example.com", updated.Email)
	})

	t.Run("rejects updating someone else's account", func(t *testing.T) {
		svc, _ := newTestService()

		dto, err := svc.Register(context.Background(), validRegistration())
		require.NoError(t, err)

		_, err = svc.Update(context.Background(), dto.ID, dto.ID+1, account.UpdateAccountRequest{
			Username: "intruder",
			Email:    "intruder@example.com",
			Password: "whatever",
		})
		assert.ErrorIs(t, err, account.ErrNotOwner)
	})
}

func TestDelete(t *testing.T) {
	t.Run("owner can delete", func(t *testing.T) {
		svc, repo := newTestService()

		dto, err := svc.Register(context.Background(), validRegistration())
		require.NoError(t, err)

		require.NoError(t, svc.Delete(context.Background(), dto.ID, dto.ID))
		assert.Empty(t, repo.accounts)
	})

	t.Run("rejects deleting someone else's account", func(t *testing.T) {
		svc, _ := newTestService()

		dto, err := svc.Register(context.Background(), validRegistration())
		require.NoError(t, err)

		err = svc.Delete(context.Background(), dto.ID, dto.ID+1)
		assert.ErrorIs(t, err, account.ErrNotOwner)
	})
}

func TestLogin(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Register(context.Background(), validRegistration())
	require.NoError(t, err)

	t.Run("logs in with email", func(t *testing.T) {
		tokens, err := svc.Login(context.Background(), account.LoginRequest{
			Login:    "alice@example.com",
			Password: "secret123",
		})
		require.NoError(t, err)
		assert.NotEmpty(t, tokens.AccessToken)
		assert.NotEmpty(t, tokens.RefreshToken)
		assert.Equal(t, "Bearer", tokens.TokenType)
	})

	t.Run("logs in with username", func(t *testing.T) {
		tokens, err := svc.Login(context.Background(), account.LoginRequest{
			Login:    "alice wonder",
			Password: "secret123",
		})
		require.NoError(t, err)
		assert.NotEmpty(t, tokens.AccessToken)
	})

	t.Run("unknown login and wrong password are indistinguishable", func(t *testing.T) {
		_, err := svc.Login(context.Background(), account.LoginRequest{
			Login:    "nobody@example.com",
			Password: "secret123",
		})
		assert.ErrorIs(t, err, account.ErrInvalidCredentials)

		_, err = svc.Login(context.Background(), account.LoginRequest{
			Login:    "alice@example.com",
			Password: "wrong",
		})
		assert.ErrorIs(t, err, account.ErrInvalidCredentials)
	})
}

func TestRefresh(t *testing.T) {
	svc, repo := newTestService()

	dto, err := svc.Register(context.Background(), validRegistration())
	require.NoError(t, err)

	tokens, err := svc.Login(context.Background(), account.LoginRequest{
		Login:    "alice@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	t.Run("issues a new access token", func(t *testing.T) {
		refreshed, err := svc.Refresh(context.Background(), tokens.RefreshToken)
		require.NoError(t, err)
		assert.NotEmpty(t, refreshed.AccessToken)
		assert.Empty(t, refreshed.RefreshToken)
		assert.Equal(t, "Bearer", refreshed.TokenType)
	})

	t.Run("rejects an access token", func(t *testing.T) {
		_, err := svc.Refresh(context.Background(), tokens.AccessToken)
		assert.Error(t, err)
	})

	t.Run("rejects a vanished subject", func(t *testing.T) {
		require.NoError(t, repo.Delete(context.Background(), dto.ID))

		_, err := svc.Refresh(context.Background(), tokens.RefreshToken)
		assert.ErrorIs(t, err, account.ErrAccountNotFound)
	})
}
