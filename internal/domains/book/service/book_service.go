package service

import (
	"context"

	"catalog-backend/internal/domains/book"
)

type bookService struct {
	repo    book.Repository
	authors book.AuthorChecker
}

// NewBookService creates the book service instance.
func NewBookService(repo book.Repository, authors book.AuthorChecker) book.Service {
	return &bookService{
		repo:    repo,
		authors: authors,
	}
}

func (s *bookService) Create(ctx context.Context, req book.CreateBookRequest) (*book.BookDTO, error) {
	req = req.Sanitized()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if err := s.checkAuthor(ctx, req.AuthorID); err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, &book.Book{
		Title:    req.Title,
		Year:     req.Year,
		AuthorID: req.AuthorID,
	})
	if err != nil {
		return nil, err
	}

	dto := created.ToDTO()
	return &dto, nil
}

func (s *bookService) GetByID(ctx context.Context, id int64) (*book.BookDTO, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	dto := b.ToDTO()
	return &dto, nil
}

func (s *bookService) List(ctx context.Context, filter book.BookFilter) ([]book.BookDTO, error) {
	filter.SetDefaults()

	books, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	dtos := make([]book.BookDTO, 0, len(books))
	for _, b := range books {
		dtos = append(dtos, b.ToDTO())
	}
	return dtos, nil
}

func (s *bookService) Update(ctx context.Context, id int64, req book.UpdateBookRequest) (*book.BookDTO, error) {
	req = req.Sanitized()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		existing.Title = *req.Title
	}
	if req.Year != nil {
		existing.Year = *req.Year
	}
	if req.AuthorID != nil {
		if err := s.checkAuthor(ctx, *req.AuthorID); err != nil {
			return nil, err
		}
		existing.AuthorID = *req.AuthorID
	}

	updated, err := s.repo.Update(ctx, existing)
	if err != nil {
		return nil, err
	}

	dto := updated.ToDTO()
	return &dto, nil
}

func (s *bookService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

// checkAuthor rejects writes that reference a missing author before the
// insert hits the foreign key, giving a clean domain error either way.
func (s *bookService) checkAuthor(ctx context.Context, authorID int64) error {
	exists, err := s.authors.ExistsByID(ctx, authorID)
	if err != nil {
		return err
	}
	if !exists {
		return book.ErrAuthorDoesNotExist
	}
	return nil
}
