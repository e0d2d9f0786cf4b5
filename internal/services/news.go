package services

import (
	"context"
	"strings"
	"time"

	"news-management/internal/apperr"
	"news-management/internal/logger"
	"news-management/internal/models"
	"news-management/internal/pagination"
	"news-management/internal/validation"

	"go.uber.org/zap"
)

type NewsRepo interface {
	Create(ctx context.Context, n *models.News) error
	Update(ctx context.Context, n *models.News) error
	DeleteByID(ctx context.Context, id int64) error
	FindByID(ctx context.Context, id int64) (*models.News, error)
	FindAll(ctx context.Context) ([]models.News, error)
	FindAllPaged(ctx context.Context, page, size int) ([]models.News, error)
	FindByAuthorID(ctx context.Context, authorID int64) ([]models.News, error)
	FindByTagID(ctx context.Context, tagID int64) ([]models.News, error)
	FindByPartOfTitle(ctx context.Context, part string) ([]models.News, error)
}

// NewsChildren удаляет зависимые от новости записи.
type NewsChildren interface {
	DeleteByNewsID(ctx context.Context, newsID int64) error
}

type AuthorFinder interface {
	FindByID(ctx context.Context, id int64) (*models.Author, error)
}

type NewsService struct {
	repo     NewsRepo
	comments NewsChildren
	tags     NewsChildren
	authors  AuthorFinder
	now      Clock
}

func NewNewsService(repo NewsRepo, comments, tags NewsChildren, authors AuthorFinder, now Clock) *NewsService {
	if now == nil {
		now = time.Now
	}
	return &NewsService{repo: repo, comments: comments, tags: tags, authors: authors, now: now}
}

func (s *NewsService) Create(ctx context.Context, news *models.News) (bool, error) {
	log := logger.WithCtx(ctx)
	if err := validation.ValidateNews(news); err != nil {
		return false, err
	}
	if err := s.checkAuthor(ctx, "news.Create", news.AuthorID); err != nil {
		return false, err
	}
	now := s.now()
	news.Created, news.Modified = now, now
	if err := s.repo.Create(ctx, news); err != nil {
		log.Error("Сервис: ошибка создания новости", zap.Error(err))
		return false, wrap("news.Create", err)
	}
	log.Info("Сервис: новость создана", zap.Int64("news_id", news.ID))
	return true, nil
}

// Update сохраняет created из базы и обновляет modified. Нулевой author_id
// означает «автор не меняется».
func (s *NewsService) Update(ctx context.Context, news *models.News) (bool, error) {
	if news == nil || !validation.ValidateID(news.ID) {
		return false, nil
	}
	existing, err := s.repo.FindByID(ctx, news.ID)
	if err != nil {
		return false, wrap("news.Update", err)
	}
	if existing == nil {
		return false, nil
	}
	if news.AuthorID == 0 {
		news.AuthorID = existing.AuthorID
	}
	if err := validation.ValidateNews(news); err != nil {
		return false, err
	}
	if news.AuthorID != existing.AuthorID {
		if err := s.checkAuthor(ctx, "news.Update", news.AuthorID); err != nil {
			return false, err
		}
	}
	news.Created = existing.Created
	news.Modified = s.now()
	news.TagIDs = existing.TagIDs
	if err := s.repo.Update(ctx, news); err != nil {
		logger.WithCtx(ctx).Error("Сервис: ошибка обновления новости", zap.Int64("news_id", news.ID), zap.Error(err))
		return false, wrap("news.Update", err)
	}
	logger.WithCtx(ctx).Info("Сервис: новость обновлена", zap.Int64("news_id", news.ID))
	return true, nil
}

// DeleteByID удаляет комментарии, затем связи с тегами, затем саму новость.
func (s *NewsService) DeleteByID(ctx context.Context, id int64) (bool, error) {
	if !validation.ValidateID(id) {
		return false, nil
	}
	log := logger.WithCtx(ctx).With(zap.Int64("news_id", id))
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return false, wrap("news.DeleteByID", err)
	}
	if existing == nil {
		return false, nil
	}
	if err := s.comments.DeleteByNewsID(ctx, id); err != nil {
		log.Error("Сервис: ошибка удаления комментариев новости", zap.Error(err))
		return false, wrap("news.DeleteByID", err)
	}
	if err := s.tags.DeleteByNewsID(ctx, id); err != nil {
		log.Error("Сервис: ошибка удаления связей новости с тегами", zap.Error(err))
		return false, wrap("news.DeleteByID", err)
	}
	if err := s.repo.DeleteByID(ctx, id); err != nil {
		log.Error("Сервис: ошибка удаления новости", zap.Error(err))
		return false, wrap("news.DeleteByID", err)
	}
	log.Info("Сервис: новость удалена")
	return true, nil
}

func (s *NewsService) FindByID(ctx context.Context, id int64) (*models.News, error) {
	if !validation.ValidateID(id) {
		return nil, nil
	}
	n, err := s.repo.FindByID(ctx, id)
	return n, wrap("news.FindByID", err)
}

func (s *NewsService) FindAll(ctx context.Context) ([]models.News, error) {
	list, err := s.repo.FindAll(ctx)
	return list, wrap("news.FindAll", err)
}

func (s *NewsService) FindAllPaged(ctx context.Context, page, size int) ([]models.News, error) {
	page, size = pageArgs(page, size)
	list, err := s.repo.FindAllPaged(ctx, page, size)
	return list, wrap("news.FindAllPaged", err)
}

func (s *NewsService) FindByAuthorID(ctx context.Context, authorID int64) ([]models.News, error) {
	if !validation.ValidateID(authorID) {
		return []models.News{}, nil
	}
	list, err := s.repo.FindByAuthorID(ctx, authorID)
	return list, wrap("news.FindByAuthorID", err)
}

func (s *NewsService) FindByTagID(ctx context.Context, tagID int64) ([]models.News, error) {
	if !validation.ValidateID(tagID) {
		return []models.News{}, nil
	}
	list, err := s.repo.FindByTagID(ctx, tagID)
	return list, wrap("news.FindByTagID", err)
}

func (s *NewsService) FindByPartOfTitle(ctx context.Context, part string) ([]models.News, error) {
	part = strings.TrimSpace(part)
	if part == "" {
		return nil, apperr.IncorrectParameter(apperr.BadPartOfNewsTitle)
	}
	list, err := s.repo.FindByPartOfTitle(ctx, part)
	return list, wrap("news.FindByPartOfTitle", err)
}

func (s *NewsService) Sort(list []models.News, cmp func(a, b models.News) int) ([]models.News, error) {
	return Sort(list, cmp)
}

func (s *NewsService) SortByCreatedAsc(list []models.News) ([]models.News, error) {
	return Sort(list, newsByCreated)
}

func (s *NewsService) SortByCreatedDesc(list []models.News) ([]models.News, error) {
	return Sort(list, reverse(newsByCreated))
}

func (s *NewsService) SortByModifiedAsc(list []models.News) ([]models.News, error) {
	return Sort(list, newsByModified)
}

func (s *NewsService) SortByModifiedDesc(list []models.News) ([]models.News, error) {
	return Sort(list, reverse(newsByModified))
}

func (s *NewsService) GetPagination(list []models.News, size, page int) pagination.Pagination[models.News] {
	return pagination.Paginate(list, size, page)
}

func (s *NewsService) checkAuthor(ctx context.Context, op string, authorID int64) error {
	author, err := s.authors.FindByID(ctx, authorID)
	if err != nil {
		return wrap(op, err)
	}
	if author == nil {
		return apperr.IncorrectParameter(apperr.AuthorNotExists, authorID)
	}
	return nil
}

func newsByCreated(a, b models.News) int  { return a.Created.Compare(b.Created) }
func newsByModified(a, b models.News) int { return a.Modified.Compare(b.Modified) }
