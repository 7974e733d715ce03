package service

import (
	"context"

	"catalog-backend/internal/domains/author"
)

type authorService struct {
	repo author.Repository
}

// NewAuthorService creates the author service instance.
func NewAuthorService(repo author.Repository) author.Service {
	return &authorService{repo: repo}
}

func (s *authorService) Create(ctx context.Context, req author.CreateAuthorRequest) (*author.AuthorDTO, error) {
	req = req.Sanitized()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, &author.Author{Name: req.Name})
	if err != nil {
		return nil, err
	}

	dto := created.ToDTO()
	return &dto, nil
}

func (s *authorService) GetByID(ctx context.Context, id int64) (*author.AuthorDTO, error) {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	dto := a.ToDTO()
	return &dto, nil
}

func (s *authorService) List(ctx context.Context, filter author.AuthorFilter) ([]author.AuthorDTO, error) {
	filter.SetDefaults()

	authors, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	dtos := make([]author.AuthorDTO, 0, len(authors))
	for _, a := range authors {
		dtos = append(dtos, a.ToDTO())
	}
	return dtos, nil
}

func (s *authorService) Update(ctx context.Context, id int64, req author.UpdateAuthorRequest) (*author.AuthorDTO, error) {
	req = req.Sanitized()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		existing.Name = *req.Name
	}

	updated, err := s.repo.Update(ctx, existing)
	if err != nil {
		return nil, err
	}

	dto := updated.ToDTO()
	return &dto, nil
}

func (s *authorService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
