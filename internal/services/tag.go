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

type TagRepo interface {
	Create(ctx context.Context, t *models.Tag) error
	Update(ctx context.Context, t *models.Tag) error
	DeleteByID(ctx context.Context, id int64) error
	FindByID(ctx context.Context, id int64) (*models.Tag, error)
	FindAll(ctx context.Context) ([]models.Tag, error)
	FindAllPaged(ctx context.Context, page, size int) ([]models.Tag, error)
	FindByNewsID(ctx context.Context, newsID int64) ([]models.Tag, error)
	AddToNews(ctx context.Context, tagID, newsID int64) error
	RemoveFromNews(ctx context.Context, tagID, newsID int64) error
	DeleteFromAllNews(ctx context.Context, tagID int64) error
}

type NewsFinder interface {
	FindByID(ctx context.Context, id int64) (*models.News, error)
}

type TagService struct {
	repo      TagRepo
	news      NewsFinder
	validator *validation.TagValidator
}

func NewTagService(repo TagRepo, news NewsFinder, validator *validation.TagValidator) *TagService {
	return &TagService{repo: repo, news: news, validator: validator}
}

func (s *TagService) Create(ctx context.Context, tag *models.Tag) (bool, error) {
	log := logger.WithCtx(ctx)
	if err := s.validator.Validate(tag); err != nil {
		log.Warn("Сервис: тег не прошёл проверку", zap.Error(err))
		return false, err
	}
	if err := s.repo.Create(ctx, tag); err != nil {
		log.Error("Сервис: ошибка создания тега", zap.Error(err))
		return false, wrap("tags.Create", err)
	}
	log.Info("Сервис: тег создан", zap.Int64("tag_id", tag.ID), zap.String("name", tag.Name))
	return true, nil
}

// Update сохраняет тег, если id корректен, тег существует и проходит проверку.
func (s *TagService) Update(ctx context.Context, tag *models.Tag) (bool, error) {
	if tag == nil || !validation.ValidateID(tag.ID) {
		return false, nil
	}
	if err := s.validator.Validate(tag); err != nil {
		return false, err
	}
	existing, err := s.repo.FindByID(ctx, tag.ID)
	if err != nil {
		return false, wrap("tags.Update", err)
	}
	if existing == nil {
		return false, nil
	}
	if err := s.repo.Update(ctx, tag); err != nil {
		logger.WithCtx(ctx).Error("Сервис: ошибка обновления тега", zap.Int64("tag_id", tag.ID), zap.Error(err))
		return false, wrap("tags.Update", err)
	}
	logger.WithCtx(ctx).Info("Сервис: тег обновлён", zap.Int64("tag_id", tag.ID))
	return true, nil
}

// DeleteByID удаляет связи тега с новостями, затем сам тег, и проверяет,
// что тега больше нет.
func (s *TagService) DeleteByID(ctx context.Context, id int64) (bool, error) {
	if !validation.ValidateID(id) {
		return false, nil
	}
	log := logger.WithCtx(ctx).With(zap.Int64("tag_id", id))
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return false, wrap("tags.DeleteByID", err)
	}
	if existing == nil {
		return false, nil
	}
	if err := s.repo.DeleteFromAllNews(ctx, id); err != nil {
		log.Error("Сервис: ошибка удаления связей тега", zap.Error(err))
		return false, wrap("tags.DeleteByID", err)
	}
	if err := s.repo.DeleteByID(ctx, id); err != nil {
		log.Error("Сервис: ошибка удаления тега", zap.Error(err))
		return false, wrap("tags.DeleteByID", err)
	}
	left, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return false, wrap("tags.DeleteByID", err)
	}
	log.Info("Сервис: тег удалён", zap.Bool("confirmed", left == nil))
	return left == nil, nil
}

// DeleteFromAllNews снимает тег со всех новостей, сам тег остаётся.
func (s *TagService) DeleteFromAllNews(ctx context.Context, id int64) (bool, error) {
	if !validation.ValidateID(id) {
		return false, nil
	}
	if err := s.repo.DeleteFromAllNews(ctx, id); err != nil {
		return false, wrap("tags.DeleteFromAllNews", err)
	}
	return true, nil
}

func (s *TagService) AddToNews(ctx context.Context, tagID, newsID int64) (bool, error) {
	ok, err := s.bothExist(ctx, "tags.AddToNews", tagID, newsID)
	if !ok || err != nil {
		return false, err
	}
	if err := s.repo.AddToNews(ctx, tagID, newsID); err != nil {
		logger.WithCtx(ctx).Error("Сервис: ошибка привязки тега", zap.Int64("tag_id", tagID), zap.Int64("news_id", newsID), zap.Error(err))
		return false, wrap("tags.AddToNews", err)
	}
	logger.WithCtx(ctx).Info("Сервис: тег привязан к новости", zap.Int64("tag_id", tagID), zap.Int64("news_id", newsID))
	return true, nil
}

func (s *TagService) RemoveFromNews(ctx context.Context, tagID, newsID int64) (bool, error) {
	ok, err := s.bothExist(ctx, "tags.RemoveFromNews", tagID, newsID)
	if !ok || err != nil {
		return false, err
	}
	if err := s.repo.RemoveFromNews(ctx, tagID, newsID); err != nil {
		return false, wrap("tags.RemoveFromNews", err)
	}
	logger.WithCtx(ctx).Info("Сервис: тег отвязан от новости", zap.Int64("tag_id", tagID), zap.Int64("news_id", newsID))
	return true, nil
}

func (s *TagService) bothExist(ctx context.Context, op string, tagID, newsID int64) (bool, error) {
	if !validation.ValidateID(tagID) || !validation.ValidateID(newsID) {
		return false, nil
	}
	tag, err := s.repo.FindByID(ctx, tagID)
	if err != nil {
		return false, wrap(op, err)
	}
	if tag == nil {
		return false, nil
	}
	news, err := s.news.FindByID(ctx, newsID)
	if err != nil {
		return false, wrap(op, err)
	}
	return news != nil, nil
}

func (s *TagService) FindByID(ctx context.Context, id int64) (*models.Tag, error) {
	if !validation.ValidateID(id) {
		return nil, nil
	}
	tag, err := s.repo.FindByID(ctx, id)
	return tag, wrap("tags.FindByID", err)
}

func (s *TagService) FindAll(ctx context.Context) ([]models.Tag, error) {
	tags, err := s.repo.FindAll(ctx)
	return tags, wrap("tags.FindAll", err)
}

func (s *TagService) FindAllPaged(ctx context.Context, page, size int) ([]models.Tag, error) {
	page, size = pageArgs(page, size)
	tags, err := s.repo.FindAllPaged(ctx, page, size)
	return tags, wrap("tags.FindAllPaged", err)
}

// FindByPartOfName ищет part в имени тега без учёта регистра.
func (s *TagService) FindByPartOfName(ctx context.Context, part string) ([]models.Tag, error) {
	if strings.TrimSpace(part) == "" {
		return nil, apperr.IncorrectParameter(apperr.BadParameterPartOfName)
	}
	all, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, wrap("tags.FindByPartOfName", err)
	}
	found := []models.Tag{}
	for _, t := range all {
		if containsFold(t.Name, part) {
			found = append(found, t)
		}
	}
	logger.WithCtx(ctx).Debug("Сервис: поиск тегов по части имени", zap.String("part", part), zap.Int("found", len(found)))
	return found, nil
}

func (s *TagService) FindByNewsID(ctx context.Context, newsID int64) ([]models.Tag, error) {
	if !validation.ValidateID(newsID) {
		return []models.Tag{}, nil
	}
	tags, err := s.repo.FindByNewsID(ctx, newsID)
	return tags, wrap("tags.FindByNewsID", err)
}

func (s *TagService) GetPagination(list []models.Tag, size, page int) pagination.Pagination[models.Tag] {
	return pagination.Paginate(list, size, page)
}
