// Package validation проверяет сущности перед мутациями.
// Все функции чистые: при ошибке возвращают *apperr.IncorrectParameterError.
package validation

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"news-management/internal/apperr"
	"news-management/internal/models"
)

const (
	NewsTitleMin   = 5
	NewsTitleMax   = 255
	NewsContentMin = 5
	NewsContentMax = 1000
	AuthorNameMin  = 3
	AuthorNameMax  = 30
	UsernameMin    = 3
	PasswordMin    = 3
)

// ValidateID: true только для положительных id.
func ValidateID(id int64) bool {
	return id > 0
}

type TagConstraints struct {
	MinNameLength int
	MaxNameLength int
	NamePattern   string
}

func DefaultTagConstraints() TagConstraints {
	return TagConstraints{MinNameLength: 2, MaxNameLength: 15, NamePattern: `^[\p{L}\p{N}_\- ]+$`}
}

type TagValidator struct {
	min, max int
	pattern  *regexp.Regexp
}

func NewTagValidator(c TagConstraints) (*TagValidator, error) {
	if c.MinNameLength < 1 || c.MaxNameLength < c.MinNameLength {
		return nil, fmt.Errorf("invalid tag name bounds: %d..%d", c.MinNameLength, c.MaxNameLength)
	}
	p, err := regexp.Compile(c.NamePattern)
	if err != nil {
		return nil, fmt.Errorf("compile tag name pattern: %w", err)
	}
	return &TagValidator{min: c.MinNameLength, max: c.MaxNameLength, pattern: p}, nil
}

func (v *TagValidator) Validate(tag *models.Tag) error {
	if tag == nil || tag.Name == "" {
		return apperr.IncorrectParameter(apperr.BadTagName)
	}
	if strings.TrimSpace(tag.Name) != tag.Name {
		return apperr.IncorrectParameter(apperr.BadTagNameSpaces)
	}
	if l := utf8.RuneCountInString(tag.Name); l < v.min || l > v.max {
		return apperr.IncorrectParameter(apperr.BadTagNameLength, v.min, v.max)
	}
	if !v.pattern.MatchString(tag.Name) {
		return apperr.IncorrectParameter(apperr.BadTagNamePattern)
	}
	return nil
}

func ValidateComment(c *models.Comment) error {
	if c == nil || strings.TrimSpace(c.Content) == "" {
		return apperr.IncorrectParameter(apperr.BadCommentContent)
	}
	if utf8.RuneCountInString(c.Content) > models.CommentMaxContentLength {
		return apperr.IncorrectParameter(apperr.BadCommentContentLength, models.CommentMaxContentLength)
	}
	if !ValidateID(c.NewsID) {
		return apperr.IncorrectParameter(apperr.BadID)
	}
	return nil
}

func ValidateNews(n *models.News) error {
	if n == nil {
		return apperr.IncorrectParameter(apperr.BadNewsTitle, NewsTitleMin, NewsTitleMax)
	}
	if !lengthBetween(strings.TrimSpace(n.Title), NewsTitleMin, NewsTitleMax) {
		return apperr.IncorrectParameter(apperr.BadNewsTitle, NewsTitleMin, NewsTitleMax)
	}
	if !lengthBetween(strings.TrimSpace(n.Content), NewsContentMin, NewsContentMax) {
		return apperr.IncorrectParameter(apperr.BadNewsContent, NewsContentMin, NewsContentMax)
	}
	if !ValidateID(n.AuthorID) {
		return apperr.IncorrectParameter(apperr.BadID)
	}
	return nil
}

func ValidateAuthor(a *models.Author) error {
	if a == nil || !lengthBetween(strings.TrimSpace(a.Name), AuthorNameMin, AuthorNameMax) {
		return apperr.IncorrectParameter(apperr.BadAuthorName, AuthorNameMin, AuthorNameMax)
	}
	return nil
}

func ValidateCredentials(username, password string) error {
	if utf8.RuneCountInString(strings.TrimSpace(username)) < UsernameMin {
		return apperr.IncorrectParameter(apperr.BadUsername, UsernameMin)
	}
	if utf8.RuneCountInString(password) < PasswordMin {
		return apperr.IncorrectParameter(apperr.BadPassword, PasswordMin)
	}
	return nil
}

func lengthBetween(s string, min, max int) bool {
	l := utf8.RuneCountInString(s)
	return l >= min && l <= max
}
