package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"catalog-backend/internal/domains/account"
	"catalog-backend/pkg/jwt"
)

// bcrypt cost 12: slow enough to resist brute force, fast enough for login.
const bcryptCost = 12

// accountService implements account.Service.
type accountService struct {
	repo       account.Repository
	jwtManager *jwt.Manager
}

// NewAccountService creates the service instance.
func NewAccountService(repo account.Repository, jwtManager *jwt.Manager) account.Service {
	return &accountService{
		repo:       repo,
		jwtManager: jwtManager,
	}
}

func (s *accountService) Register(ctx context.Context, req account.CreateAccountRequest) (*account.AccountDTO, error) {
	req = req.Sanitized()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	created, err := s.repo.Create(ctx, &account.Account{
		Username: req.Username,
		Email:    req.Email,
		Password: string(passwordHash),
	})
	if err != nil {
		return nil, err
	}

	dto := created.ToDTO()
	return &dto, nil
}

func (s *accountService) GetByID(ctx context.Context, id int64) (*account.AccountDTO, error) {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	dto := a.ToDTO()
	return &dto, nil
}

func (s *accountService) List(ctx context.Context, filter account.AccountFilter) ([]account.AccountDTO, error) {
	filter.SetDefaults()

	accounts, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	dtos := make([]account.AccountDTO, 0, len(accounts))
	for i := range accounts {
		dtos = append(dtos, accounts[i].ToDTO())
	}
	return dtos, nil
}

func (s *accountService) Update(ctx context.Context, id, requesterID int64, req account.UpdateAccountRequest) (*account.AccountDTO, error) {
	// Owner-only: the identity from the token must match the target id.
	if id != requesterID {
		return nil, account.ErrNotOwner
	}

	req = req.Sanitized()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	updated, err := s.repo.Update(ctx, &account.Account{
		ID:       id,
		Username: req.Username,
		Email:    req.Email,
		Password: string(passwordHash),
	})
	if err != nil {
		return nil, err
	}

	dto := updated.ToDTO()
	return &dto, nil
}

func (s *accountService) Delete(ctx context.Context, id, requesterID int64) error {
	if id != requesterID {
		return account.ErrNotOwner
	}

	return s.repo.Delete(ctx, id)
}

func (s *accountService) Login(ctx context.Context, req account.LoginRequest) (*account.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	a, err := s.repo.GetByLogin(ctx, req.Login)
	if err != nil {
		if errors.Is(err, account.ErrAccountNotFound) {
			// Never reveal whether the account exists.
			return nil, account.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(a.Password), []byte(req.Password)); err != nil {
		return nil, account.ErrInvalidCredentials
	}

	accessToken, err := s.jwtManager.GenerateAccessToken(a.ID)
	if err != nil {
		return nil, fmt.Errorf("generate access token: %w", err)
	}

	refreshToken, err := s.jwtManager.GenerateRefreshToken(a.ID)
	if err != nil {
		return nil, fmt.Errorf("generate refresh token: %w", err)
	}

	return &account.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "Bearer",
	}, nil
}

func (s *accountService) Refresh(ctx context.Context, refreshToken string) (*account.TokenResponse, error) {
	claims, err := s.jwtManager.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, err
	}

	// The subject must still exist; tokens outlive account deletion.
	exists, err := s.repo.ExistsByID(ctx, claims.AccountID)
	if err != nil {
		return nil, fmt.Errorf("check token subject: %w", err)
	}
	if !exists {
		return nil, account.ErrAccountNotFound
	}

	accessToken, err := s.jwtManager.GenerateAccessToken(claims.AccountID)
	if err != nil {
		return nil, fmt.Errorf("generate access token: %w", err)
	}

	return &account.TokenResponse{
		AccessToken: accessToken,
		TokenType:   "Bearer",
	}, nil
}
