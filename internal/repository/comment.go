package repository

import (
	"context"
	"database/sql"
	"errors"

	"news-management/internal/apperr"
	"news-management/internal/models"
	"news-management/internal/pagination"
)

const commentColumns = `id, content, news_id, created, modified`

type CommentRepository struct {
	db *sql.DB
}

func NewCommentRepository(db *sql.DB) *CommentRepository {
	return &CommentRepository{db: db}
}

func (r *CommentRepository) Create(ctx context.Context, c *models.Comment) error {
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO comments (content, news_id, created, modified) VALUES ($1, $2, $3, $4) RETURNING id`,
		c.Content, c.NewsID, c.Created, c.Modified,
	).Scan(&c.ID)
	return apperr.Repository("comments.Create", err)
}

func (r *CommentRepository) Update(ctx context.Context, c *models.Comment) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE comments SET content = $1, modified = $2 WHERE id = $3`,
		c.Content, c.Modified, c.ID,
	)
	return apperr.Repository("comments.Update", err)
}

func (r *CommentRepository) DeleteByID(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM comments WHERE id = $1`, id)
	return apperr.Repository("comments.DeleteByID", err)
}

func (r *CommentRepository) DeleteByNewsID(ctx context.Context, newsID int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM comments WHERE news_id = $1`, newsID)
	return apperr.Repository("comments.DeleteByNewsID", err)
}

func (r *CommentRepository) FindByID(ctx context.Context, id int64) (*models.Comment, error) {
	var c models.Comment
	err := r.db.QueryRowContext(ctx, `SELECT `+commentColumns+` FROM comments WHERE id = $1`, id).
		Scan(&c.ID, &c.Content, &c.NewsID, &c.Created, &c.Modified)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, apperr.Repository("comments.FindByID", err)
	}
	return &c, nil
}

func (r *CommentRepository) FindAll(ctx context.Context) ([]models.Comment, error) {
	return r.list(ctx, "comments.FindAll", `SELECT `+commentColumns+` FROM comments ORDER BY id`)
}

func (r *CommentRepository) FindAllPaged(ctx context.Context, page, size int) ([]models.Comment, error) {
	return r.list(ctx, "comments.FindAllPaged",
		`SELECT `+commentColumns+` FROM comments ORDER BY id LIMIT $1 OFFSET $2`,
		size, pagination.Offset(page, size),
	)
}

func (r *CommentRepository) FindByNewsID(ctx context.Context, newsID int64) ([]models.Comment, error) {
	return r.list(ctx, "comments.FindByNewsID",
		`SELECT `+commentColumns+` FROM comments WHERE news_id = $1 ORDER BY id`, newsID)
}

func (r *CommentRepository) list(ctx context.Context, op, query string, args ...any) ([]models.Comment, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperr.Repository(op, err)
	}
	defer rows.Close()

	out := []models.Comment{}
	for rows.Next() {
		var c models.Comment
		if err := rows.Scan(&c.ID, &c.Content, &c.NewsID, &c.Created, &c.Modified); err != nil {
			return nil, apperr.Repository(op, err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.Repository(op, err)
	}
	return out, nil
}
