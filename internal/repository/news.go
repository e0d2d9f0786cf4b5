package repository

import (
	"context"
	"database/sql"
	"errors"

	"news-management/internal/apperr"
	"news-management/internal/models"
	"news-management/internal/pagination"
)

const newsColumns = `id, title, content, author_id, created, modified`

type NewsRepository struct {
	db *sql.DB
}

func NewNewsRepository(db *sql.DB) *NewsRepository {
	return &NewsRepository{db: db}
}

func (r *NewsRepository) Create(ctx context.Context, news *models.News) error {
	query := `INSERT INTO news (title, content, author_id, created, modified) VALUES ($1, $2, $3, $4, $5) RETURNING id`
	err := r.db.QueryRowContext(ctx, query,
		news.Title, news.Content, news.AuthorID, news.Created, news.Modified,
	).Scan(&news.ID)
	return apperr.Repository("news.Create", err)
}

func (r *NewsRepository) Update(ctx context.Context, news *models.News) error {
	query := `UPDATE news SET title = $1, content = $2, author_id = $3, modified = $4 WHERE id = $5`
	_, err := r.db.ExecContext(ctx, query, news.Title, news.Content, news.AuthorID, news.Modified, news.ID)
	return apperr.Repository("news.Update", err)
}

func (r *NewsRepository) DeleteByID(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM news WHERE id = $1`, id)
	return apperr.Repository("news.DeleteByID", err)
}

// FindByID подтягивает id тегов новости; nil, nil если новости нет.
func (r *NewsRepository) FindByID(ctx context.Context, id int64) (*models.News, error) {
	var n models.News
	err := r.db.QueryRowContext(ctx, `SELECT `+newsColumns+` FROM news WHERE id = $1`, id).
		Scan(&n.ID, &n.Title, &n.Content, &n.AuthorID, &n.Created, &n.Modified)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, apperr.Repository("news.FindByID", err)
	}

	rows, err := r.db.QueryContext(ctx, `SELECT tag_id FROM tags_news WHERE news_id = $1 ORDER BY tag_id`, id)
	if err != nil {
		return nil, apperr.Repository("news.FindByID.tags", err)
	}
	defer rows.Close()
	for rows.Next() {
		var tagID int64
		if err := rows.Scan(&tagID); err != nil {
			return nil, apperr.Repository("news.FindByID.tags", err)
		}
		n.TagIDs = append(n.TagIDs, tagID)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.Repository("news.FindByID.tags", err)
	}
	return &n, nil
}

func (r *NewsRepository) FindAll(ctx context.Context) ([]models.News, error) {
	return r.list(ctx, "news.FindAll", `SELECT `+newsColumns+` FROM news ORDER BY created DESC`)
}

func (r *NewsRepository) FindAllPaged(ctx context.Context, page, size int) ([]models.News, error) {
	return r.list(ctx, "news.FindAllPaged",
		`SELECT `+newsColumns+` FROM news ORDER BY created DESC LIMIT $1 OFFSET $2`,
		size, pagination.Offset(page, size),
	)
}

func (r *NewsRepository) FindByAuthorID(ctx context.Context, authorID int64) ([]models.News, error) {
	return r.list(ctx, "news.FindByAuthorID",
		`SELECT `+newsColumns+` FROM news WHERE author_id = $1 ORDER BY created DESC`, authorID)
}

func (r *NewsRepository) FindByTagID(ctx context.Context, tagID int64) ([]models.News, error) {
	return r.list(ctx, "news.FindByTagID", `
		SELECT n.id, n.title, n.content, n.author_id, n.created, n.modified
		FROM news n
		JOIN tags_news tn ON tn.news_id = n.id
		WHERE tn.tag_id = $1
		ORDER BY n.created DESC`, tagID)
}

func (r *NewsRepository) FindByPartOfTitle(ctx context.Context, part string) ([]models.News, error) {
	return r.list(ctx, "news.FindByPartOfTitle",
		`SELECT `+newsColumns+` FROM news WHERE title ILIKE '%' || $1 || '%' ORDER BY created DESC`, part)
}

func (r *NewsRepository) list(ctx context.Context, op, query string, args ...any) ([]models.News, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperr.Repository(op, err)
	}
	defer rows.Close()

	newsList := []models.News{}
	for rows.Next() {
		var n models.News
		if err := rows.Scan(&n.ID, &n.Title, &n.Content, &n.AuthorID, &n.Created, &n.Modified); err != nil {
			return nil, apperr.Repository(op, err)
		}
		newsList = append(newsList, n)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.Repository(op, err)
	}
	return newsList, nil
}
