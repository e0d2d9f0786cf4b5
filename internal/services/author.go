package services

import (
	"context"
	"strings"

	"news-management/internal/apperr"
	"news-management/internal/logger"
	"news-management/internal/models"
	"news-management/internal/pagination"
	"news-management/internal/validation"

	"go.uber.org/zap"
)

type AuthorRepo interface {
	Create(ctx context.Context, a *models.Author) error
	Update(ctx context.Context, a *models.Author) error
	DeleteByID(ctx context.Context, id int64) error
	FindByID(ctx context.Context, id int64) (*models.Author, error)
	FindAll(ctx context.Context) ([]models.Author, error)
	FindAllPaged(ctx context.Context, page, size int) ([]models.Author, error)
}

type AuthorNewsFinder interface {
	FindByAuthorID(ctx context.Context, authorID int64) ([]models.News, error)
}

type AuthorService struct {
	repo AuthorRepo
	news AuthorNewsFinder
}

func NewAuthorService(repo AuthorRepo, news AuthorNewsFinder) *AuthorService {
	return &AuthorService{repo: repo, news: news}
}

func (s *AuthorService) Create(ctx context.Context, a *models.Author) (bool, error) {
	if err := validation.ValidateAuthor(a); err != nil {
		return false, err
	}
	if err := s.repo.Create(ctx, a); err != nil {
		logger.WithCtx(ctx).Error("Сервис: ошибка создания автора", zap.Error(err))
		return false, wrap("authors.Create", err)
	}
	logger.WithCtx(ctx).Info("Сервис: автор создан", zap.Int64("author_id", a.ID))
	return true, nil
}

func (s *AuthorService) Update(ctx context.Context, a *models.Author) (bool, error) {
	if a == nil || !validation.ValidateID(a.ID) {
		return false, nil
	}
	if err := validation.ValidateAuthor(a); err != nil {
		return false, err
	}
	existing, err := s.repo.FindByID(ctx, a.ID)
	if err != nil {
		return false, wrap("authors.Update", err)
	}
	if existing == nil {
		return false, nil
	}
	if err := s.repo.Update(ctx, a); err != nil {
		return false, wrap("authors.Update", err)
	}
	logger.WithCtx(ctx).Info("Сервис: автор обновлён", zap.Int64("author_id", a.ID))
	return true, nil
}

// DeleteByID отказывает, пока у автора есть новости.
func (s *AuthorService) DeleteByID(ctx context.Context, id int64) (bool, error) {
	if !validation.ValidateID(id) {
		return false, nil
	}
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return false, wrap("authors.DeleteByID", err)
	}
	if existing == nil {
		return false, nil
	}
	owned, err := s.news.FindByAuthorID(ctx, id)
	if err != nil {
		return false, wrap("authors.DeleteByID", err)
	}
	if len(owned) > 0 {
		logger.WithCtx(ctx).Warn("Сервис: у автора есть новости", zap.Int64("author_id", id), zap.Int("news", len(owned)))
		return false, apperr.IncorrectParameter(apperr.AuthorHasNews, id)
	}
	if err := s.repo.DeleteByID(ctx, id); err != nil {
		return false, wrap("authors.DeleteByID", err)
	}
	logger.WithCtx(ctx).Info("Сервис: автор удалён", zap.Int64("author_id", id))
	return true, nil
}

func (s *AuthorService) FindByID(ctx context.Context, id int64) (*models.Author, error) {
	if !validation.ValidateID(id) {
		return nil, nil
	}
	a, err := s.repo.FindByID(ctx, id)
	return a, wrap("authors.FindByID", err)
}

func (s *AuthorService) FindAll(ctx context.Context) ([]models.Author, error) {
	list, err := s.repo.FindAll(ctx)
	return list, wrap("authors.FindAll", err)
}

func (s *AuthorService) FindAllPaged(ctx context.Context, page, size int) ([]models.Author, error) {
	page, size = pageArgs(page, size)
	list, err := s.repo.FindAllPaged(ctx, page, size)
	return list, wrap("authors.FindAllPaged", err)
}

func (s *AuthorService) FindByPartOfName(ctx context.Context, part string) ([]models.Author, error) {
	if strings.TrimSpace(part) == "" {
		return nil, apperr.IncorrectParameter(apperr.BadPartOfAuthorName)
	}
	all, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, wrap("authors.FindByPartOfName", err)
	}
	found := []models.Author{}
	for _, a := range all {
		if containsFold(a.Name, part) {
			found = append(found, a)
		}
	}
	return found, nil
}

func (s *AuthorService) GetPagination(list []models.Author, size, page int) pagination.Pagination[models.Author] {
	return pagination.Paginate(list, size, page)
}
