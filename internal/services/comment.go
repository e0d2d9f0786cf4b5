package services

import (
	"context"
	"time"

	"news-management/internal/apperr"
	"news-management/internal/logger"
	"news-management/internal/models"
	"news-management/internal/pagination"
	"news-management/internal/validation"

	"go.uber.org/zap"
)

type CommentRepo interface {
	Create(ctx context.Context, c *models.Comment) error
	Update(ctx context.Context, c *models.Comment) error
	DeleteByID(ctx context.Context, id int64) error
	DeleteByNewsID(ctx context.Context, newsID int64) error
	FindByID(ctx context.Context, id int64) (*models.Comment, error)
	FindAll(ctx context.Context) ([]models.Comment, error)
	FindAllPaged(ctx context.Context, page, size int) ([]models.Comment, error)
	FindByNewsID(ctx context.Context, newsID int64) ([]models.Comment, error)
}

type CommentService struct {
	repo CommentRepo
	news NewsFinder
	now  Clock
}

func NewCommentService(repo CommentRepo, news NewsFinder, now Clock) *CommentService {
	if now == nil {
		now = time.Now
	}
	return &CommentService{repo: repo, news: news, now: now}
}

// Create проверяет комментарий и существование новости, затем сохраняет.
func (s *CommentService) Create(ctx context.Context, c *models.Comment) (bool, error) {
	log := logger.WithCtx(ctx)
	if err := validation.ValidateComment(c); err != nil {
		return false, err
	}
	news, err := s.news.FindByID(ctx, c.NewsID)
	if err != nil {
		return false, wrap("comments.Create", err)
	}
	if news == nil {
		return false, apperr.IncorrectParameter(apperr.NewsNotExists, c.NewsID)
	}
	now := s.now()
	c.Created, c.Modified = now, now
	if err := s.repo.Create(ctx, c); err != nil {
		log.Error("Сервис: ошибка создания комментария", zap.Int64("news_id", c.NewsID), zap.Error(err))
		return false, wrap("comments.Create", err)
	}
	log.Info("Сервис: комментарий создан", zap.Int64("comment_id", c.ID), zap.Int64("news_id", c.NewsID))
	return true, nil
}

// Update меняет только текст; created и news_id берутся из сохранённой записи.
func (s *CommentService) Update(ctx context.Context, c *models.Comment) (bool, error) {
	if c == nil || !validation.ValidateID(c.ID) {
		return false, nil
	}
	existing, err := s.repo.FindByID(ctx, c.ID)
	if err != nil {
		return false, wrap("comments.Update", err)
	}
	if existing == nil {
		return false, nil
	}
	c.NewsID = existing.NewsID
	c.Created = existing.Created
	if err := validation.ValidateComment(c); err != nil {
		return false, err
	}
	c.Modified = s.now()
	if err := s.repo.Update(ctx, c); err != nil {
		logger.WithCtx(ctx).Error("Сервис: ошибка обновления комментария", zap.Int64("comment_id", c.ID), zap.Error(err))
		return false, wrap("comments.Update", err)
	}
	logger.WithCtx(ctx).Info("Сервис: комментарий обновлён", zap.Int64("comment_id", c.ID))
	return true, nil
}

func (s *CommentService) DeleteByID(ctx context.Context, id int64) (bool, error) {
	if !validation.ValidateID(id) {
		return false, nil
	}
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return false, wrap("comments.DeleteByID", err)
	}
	if existing == nil {
		return false, nil
	}
	if err := s.repo.DeleteByID(ctx, id); err != nil {
		return false, wrap("comments.DeleteByID", err)
	}
	logger.WithCtx(ctx).Info("Сервис: комментарий удалён", zap.Int64("comment_id", id))
	return true, nil
}

// DeleteByNewsID удаляет все комментарии новости.
func (s *CommentService) DeleteByNewsID(ctx context.Context, newsID int64) (bool, error) {
	if !validation.ValidateID(newsID) {
		return false, nil
	}
	if err := s.repo.DeleteByNewsID(ctx, newsID); err != nil {
		logger.WithCtx(ctx).Error("Сервис: ошибка удаления комментариев новости", zap.Int64("news_id", newsID), zap.Error(err))
		return false, wrap("comments.DeleteByNewsID", err)
	}
	return true, nil
}

func (s *CommentService) FindByID(ctx context.Context, id int64) (*models.Comment, error) {
	if !validation.ValidateID(id) {
		return nil, nil
	}
	c, err := s.repo.FindByID(ctx, id)
	return c, wrap("comments.FindByID", err)
}

func (s *CommentService) FindAll(ctx context.Context) ([]models.Comment, error) {
	list, err := s.repo.FindAll(ctx)
	return list, wrap("comments.FindAll", err)
}

func (s *CommentService) FindAllPaged(ctx context.Context, page, size int) ([]models.Comment, error) {
	page, size = pageArgs(page, size)
	list, err := s.repo.FindAllPaged(ctx, page, size)
	return list, wrap("comments.FindAllPaged", err)
}

func (s *CommentService) FindByNewsID(ctx context.Context, newsID int64) ([]models.Comment, error) {
	if !validation.ValidateID(newsID) {
		return []models.Comment{}, nil
	}
	list, err := s.repo.FindByNewsID(ctx, newsID)
	return list, wrap("comments.FindByNewsID", err)
}

func (s *CommentService) Sort(list []models.Comment, cmp func(a, b models.Comment) int) ([]models.Comment, error) {
	return Sort(list, cmp)
}

func (s *CommentService) SortByCreatedAsc(list []models.Comment) ([]models.Comment, error) {
	return Sort(list, commentByCreated)
}

func (s *CommentService) SortByCreatedDesc(list []models.Comment) ([]models.Comment, error) {
	return Sort(list, reverse(commentByCreated))
}

func (s *CommentService) SortByModifiedAsc(list []models.Comment) ([]models.Comment, error) {
	return Sort(list, commentByModified)
}

func (s *CommentService) SortByModifiedDesc(list []models.Comment) ([]models.Comment, error) {
	return Sort(list, reverse(commentByModified))
}

func (s *CommentService) GetPagination(list []models.Comment, size, page int) pagination.Pagination[models.Comment] {
	return pagination.Paginate(list, size, page)
}

func commentByCreated(a, b models.Comment) int  { return a.Created.Compare(b.Created) }
func commentByModified(a, b models.Comment) int { return a.Modified.Compare(b.Modified) }

func reverse[T any](cmp func(a, b T) int) func(a, b T) int {
	return func(a, b T) int { return cmp(b, a) }
}
