package repository

import (
	"context"
	"database/sql"
	"errors"

	"news-management/internal/apperr"
	"news-management/internal/models"
	"news-management/internal/pagination"
)

type TagRepository struct {
	db *sql.DB
}

func NewTagRepository(db *sql.DB) *TagRepository { return &TagRepository{db: db} }

func (r *TagRepository) Create(ctx context.Context, t *models.Tag) error {
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO tags (name) VALUES ($1) RETURNING id`,
		t.Name,
	).Scan(&t.ID)
	return apperr.Repository("tags.Create", err)
}

func (r *TagRepository) Update(ctx context.Context, t *models.Tag) error {
	_, err := r.db.ExecContext(ctx, `UPDATE tags SET name=$1 WHERE id=$2`, t.Name, t.ID)
	return apperr.Repository("tags.Update", err)
}

func (r *TagRepository) DeleteByID(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM tags WHERE id=$1`, id)
	return apperr.Repository("tags.DeleteByID", err)
}

// FindByID возвращает nil, nil если тега нет.
func (r *TagRepository) FindByID(ctx context.Context, id int64) (*models.Tag, error) {
	var t models.Tag
	err := r.db.QueryRowContext(ctx, `SELECT id, name FROM tags WHERE id=$1`, id).Scan(&t.ID, &t.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, apperr.Repository("tags.FindByID", err)
	}
	return &t, nil
}

func (r *TagRepository) FindAll(ctx context.Context) ([]models.Tag, error) {
	return r.list(ctx, "tags.FindAll", `SELECT id, name FROM tags ORDER BY id`)
}

func (r *TagRepository) FindAllPaged(ctx context.Context, page, size int) ([]models.Tag, error) {
	return r.list(ctx, "tags.FindAllPaged",
		`SELECT id, name FROM tags ORDER BY id LIMIT $1 OFFSET $2`,
		size, pagination.Offset(page, size),
	)
}

func (r *TagRepository) FindByNewsID(ctx context.Context, newsID int64) ([]models.Tag, error) {
	return r.list(ctx, "tags.FindByNewsID", `
		SELECT t.id, t.name
		FROM tags t
		JOIN tags_news tn ON tn.tag_id = t.id
		WHERE tn.news_id = $1
		ORDER BY t.id`, newsID)
}

func (r *TagRepository) AddToNews(ctx context.Context, tagID, newsID int64) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO tags_news (tag_id, news_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
		tagID, newsID,
	)
	return apperr.Repository("tags.AddToNews", err)
}

func (r *TagRepository) RemoveFromNews(ctx context.Context, tagID, newsID int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM tags_news WHERE tag_id=$1 AND news_id=$2`, tagID, newsID)
	return apperr.Repository("tags.RemoveFromNews", err)
}

// DeleteFromAllNews удаляет все связи тега в tags_news.
func (r *TagRepository) DeleteFromAllNews(ctx context.Context, tagID int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM tags_news WHERE tag_id=$1`, tagID)
	return apperr.Repository("tags.DeleteFromAllNews", err)
}

// DeleteByNewsID удаляет все связи новости в tags_news.
func (r *TagRepository) DeleteByNewsID(ctx context.Context, newsID int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM tags_news WHERE news_id=$1`, newsID)
	return apperr.Repository("tags.DeleteByNewsID", err)
}

func (r *TagRepository) list(ctx context.Context, op, query string, args ...any) ([]models.Tag, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperr.Repository(op, err)
	}
	defer rows.Close()

	out := []models.Tag{}
	for rows.Next() {
		var t models.Tag
		if err := rows.Scan(&t.ID, &t.Name); err != nil {
			return nil, apperr.Repository(op, err)
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.Repository(op, err)
	}
	return out, nil
}
