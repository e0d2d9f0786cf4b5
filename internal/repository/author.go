package repository

import (
	"context"
	"database/sql"
	"errors"

	"news-management/internal/apperr"
	"news-management/internal/models"
	"news-management/internal/pagination"
)

type AuthorRepository struct {
	db *sql.DB
}

func NewAuthorRepository(db *sql.DB) *AuthorRepository {
	return &AuthorRepository{db: db}
}

func (r *AuthorRepository) Create(ctx context.Context, a *models.Author) error {
	err := r.db.QueryRowContext(ctx, `INSERT INTO authors (name) VALUES ($1) RETURNING id`, a.Name).Scan(&a.ID)
	return apperr.Repository("authors.Create", err)
}

func (r *AuthorRepository) Update(ctx context.Context, a *models.Author) error {
	_, err := r.db.ExecContext(ctx, `UPDATE authors SET name = $1 WHERE id = $2`, a.Name, a.ID)
	return apperr.Repository("authors.Update", err)
}

func (r *AuthorRepository) DeleteByID(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM authors WHERE id = $1`, id)
	return apperr.Repository("authors.DeleteByID", err)
}

func (r *AuthorRepository) FindByID(ctx context.Context, id int64) (*models.Author, error) {
	var a models.Author
	err := r.db.QueryRowContext(ctx, `SELECT id, name FROM authors WHERE id = $1`, id).Scan(&a.ID, &a.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, apperr.Repository("authors.FindByID", err)
	}
	return &a, nil
}

func (r *AuthorRepository) FindAll(ctx context.Context) ([]models.Author, error) {
	return r.list(ctx, "authors.FindAll", `SELECT id, name FROM authors ORDER BY id`)
}

func (r *AuthorRepository) FindAllPaged(ctx context.Context, page, size int) ([]models.Author, error) {
	return r.list(ctx, "authors.FindAllPaged",
		`SELECT id, name FROM authors ORDER BY id LIMIT $1 OFFSET $2`,
		size, pagination.Offset(page, size),
	)
}

func (r *AuthorRepository) list(ctx context.Context, op, query string, args ...any) ([]models.Author, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperr.Repository(op, err)
	}
	defer rows.Close()

	out := []models.Author{}
	for rows.Next() {
		var a models.Author
		if err := rows.Scan(&a.ID, &a.Name); err != nil {
			return nil, apperr.Repository(op, err)
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.Repository(op, err)
	}
	return out, nil
}
