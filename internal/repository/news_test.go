package repository_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/go-cmp/cmp"

	"news-management/internal/models"
	"news-management/internal/repository"
)

var newsCols = []string{"id", "title", "content", "author_id", "created", "modified"}

func TestNewsRepository_Create(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO news`)).
		WithArgs("Title", "Content", int64(3), now, now).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(11)))

	n := models.NewNews("Title", "Content", 3, now)
	if err := repository.NewNewsRepository(db).Create(context.Background(), n); err != nil {
		t.Fatalf("Create err=%v", err)
	}
	if n.ID != 11 {
		t.Fatalf("id=%d, want 11", n.ID)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestNewsRepository_FindByID_WithTags(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta(`FROM news WHERE id = $1`)).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows(newsCols).AddRow(int64(1), "Title", "Content", int64(2), now, now))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT tag_id FROM tags_news`)).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"tag_id"}).AddRow(int64(4)).AddRow(int64(9)))

	got, err := repository.NewNewsRepository(db).FindByID(context.Background(), 1)
	if err != nil {
		t.Fatalf("FindByID err=%v", err)
	}
	want := &models.News{ID: 1, Title: "Title", Content: "Content", AuthorID: 2, Created: now, Modified: now, TagIDs: []int64{4, 9}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestNewsRepository_FindByID_NotFound(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery(`FROM news`).WithArgs(int64(5)).WillReturnRows(sqlmock.NewRows(newsCols))

	got, err := repository.NewNewsRepository(db).FindByID(context.Background(), 5)
	if err != nil || got != nil {
		t.Fatalf("got=%v err=%v, want nil nil", got, err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestNewsRepository_Finders(t *testing.T) {
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	cases := []struct {
		name  string
		query string
		arg   any
		call  func(*repository.NewsRepository) ([]models.News, error)
	}{
		{"by author", `WHERE author_id = $1`, int64(2), func(r *repository.NewsRepository) ([]models.News, error) {
			return r.FindByAuthorID(context.Background(), 2)
		}},
		{"by tag", `WHERE tn.tag_id = $1`, int64(4), func(r *repository.NewsRepository) ([]models.News, error) {
			return r.FindByTagID(context.Background(), 4)
		}},
		{"by title", `title ILIKE`, "itl", func(r *repository.NewsRepository) ([]models.News, error) {
			return r.FindByPartOfTitle(context.Background(), "itl")
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			db, mock, _ := sqlmock.New()
			defer func() { _ = db.Close() }()

			mock.ExpectQuery(regexp.QuoteMeta(tc.query)).
				WithArgs(tc.arg).
				WillReturnRows(sqlmock.NewRows(newsCols).AddRow(int64(1), "Title", "Content", int64(2), now, now))

			got, err := tc.call(repository.NewNewsRepository(db))
			if err != nil || len(got) != 1 {
				t.Fatalf("err=%v len=%d", err, len(got))
			}
			if err := mock.ExpectationsWereMet(); err != nil {
				t.Fatal(err)
			}
		})
	}
}

func TestNewsRepository_UpdateDelete(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	now := time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC)
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE news SET`)).
		WithArgs("New title", "New content", int64(2), now, int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM news WHERE id = $1`)).
		WithArgs(int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := repository.NewNewsRepository(db)
	n := &models.News{ID: 1, Title: "New title", Content: "New content", AuthorID: 2, Modified: now}
	if err := repo.Update(context.Background(), n); err != nil {
		t.Fatalf("Update err=%v", err)
	}
	if err := repo.DeleteByID(context.Background(), 1); err != nil {
		t.Fatalf("DeleteByID err=%v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}
