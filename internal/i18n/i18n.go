// Package i18n переводит коды сообщений об ошибках на язык запроса.
package i18n

import (
	"fmt"

	"news-management/internal/apperr"

	"golang.org/x/text/language"
)

const (
	English = "en"
	Russian = "ru"
)

var supported = []language.Tag{language.English, language.Russian}

var messages = map[string]map[string]string{
	English: {
		apperr.BadID:                   "Id must be a positive number",
		apperr.BadParameterPartOfName:  "Part of the tag name must not be empty",
		apperr.BadPartOfAuthorName:     "Part of the author name must not be empty",
		apperr.BadPartOfNewsTitle:      "Part of the news title must not be empty",
		apperr.BadTagName:              "Tag name is required",
		apperr.BadTagNameLength:        "Tag name length must be between %d and %d characters",
		apperr.BadTagNamePattern:       "Tag name contains forbidden characters",
		apperr.BadTagNameSpaces:        "Tag name must not start or end with spaces",
		apperr.BadCommentContent:       "Comment content is required",
		apperr.BadCommentContentLength: "Comment content must be at most %d characters",
		apperr.BadNewsTitle:            "News title length must be between %d and %d characters",
		apperr.BadNewsContent:          "News content length must be between %d and %d characters",
		apperr.BadAuthorName:           "Author name length must be between %d and %d characters",
		apperr.AuthorHasNews:           "Author %d still owns news",
		apperr.NewsNotExists:           "News with id %d does not exist",
		apperr.AuthorNotExists:         "Author with id %d does not exist",
		apperr.BadUsername:             "Username must be at least %d characters",
		apperr.BadPassword:             "Password must be at least %d characters",
		apperr.UsernameTaken:           "Username is already taken",
		apperr.BadCredentials:          "Wrong username or password",
		apperr.BadRequestBody:          "Invalid request body: %s",
		apperr.NotFoundNews:            "News not found",
		apperr.NotFoundComment:         "Comment not found",
		apperr.NotFoundTag:             "Tag not found",
		apperr.NotFoundAuthor:          "Author not found",
		apperr.InternalError:           "Internal server error",
		apperr.Unauthorized:            "Missing or invalid access token",
		apperr.Forbidden:               "Access denied",
		apperr.TooManyRequests:         "Too many requests",
		apperr.BadLogDay:               "Day must be in YYYY-MM-DD format",
		apperr.NotFoundLogs:            "No logs for the requested day",
	},
	Russian: {
		apperr.BadID:                   "Id должен быть положительным числом",
		apperr.BadParameterPartOfName:  "Часть имени тега не должна быть пустой",
		apperr.BadPartOfAuthorName:     "Часть имени автора не должна быть пустой",
		apperr.BadPartOfNewsTitle:      "Часть заголовка новости не должна быть пустой",
		apperr.BadTagName:              "Имя тега обязательно",
		apperr.BadTagNameLength:        "Длина имени тега должна быть от %d до %d символов",
		apperr.BadTagNamePattern:       "Имя тега содержит недопустимые символы",
		apperr.BadTagNameSpaces:        "Имя тега не должно начинаться или заканчиваться пробелом",
		apperr.BadCommentContent:       "Текст комментария обязателен",
		apperr.BadCommentContentLength: "Текст комментария не длиннее %d символов",
		apperr.BadNewsTitle:            "Длина заголовка новости должна быть от %d до %d символов",
		apperr.BadNewsContent:          "Длина текста новости должна быть от %d до %d символов",
		apperr.BadAuthorName:           "Длина имени автора должна быть от %d до %d символов",
		apperr.AuthorHasNews:           "У автора %d остались новости",
		apperr.NewsNotExists:           "Новость с id %d не существует",
		apperr.AuthorNotExists:         "Автор с id %d не существует",
		apperr.BadUsername:             "Имя пользователя не короче %d символов",
		apperr.BadPassword:             "Пароль не короче %d символов",
		apperr.UsernameTaken:           "Имя пользователя уже занято",
		apperr.BadCredentials:          "Неверный логин или пароль",
		apperr.BadRequestBody:          "Невалидное тело запроса: %s",
		apperr.NotFoundNews:            "Новость не найдена",
		apperr.NotFoundComment:         "Комментарий не найден",
		apperr.NotFoundTag:             "Тег не найден",
		apperr.NotFoundAuthor:          "Автор не найден",
		apperr.InternalError:           "Внутренняя ошибка сервера",
		apperr.Unauthorized:            "Отсутствует или неверный access token",
		apperr.Forbidden:               "Доступ запрещён",
		apperr.TooManyRequests:         "Слишком много запросов",
		apperr.BadLogDay:               "День нужно указать в формате YYYY-MM-DD",
		apperr.NotFoundLogs:            "За этот день логов нет",
	},
}

type Translator struct {
	matcher       language.Matcher
	defaultLocale string
}

func NewTranslator(defaultLocale string) *Translator {
	if _, ok := messages[defaultLocale]; !ok {
		defaultLocale = English
	}
	return &Translator{
		matcher:       language.NewMatcher(supported),
		defaultLocale: defaultLocale,
	}
}

// Match выбирает поддерживаемую локаль по заголовку Accept-Language.
func (t *Translator) Match(acceptLanguage string) string {
	if acceptLanguage == "" {
		return t.defaultLocale
	}
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return t.defaultLocale
	}
	_, idx, conf := t.matcher.Match(tags...)
	if conf == language.No {
		return t.defaultLocale
	}
	base, _ := supported[idx].Base()
	return base.String()
}

// Message возвращает текст по коду; неизвестный код отдаётся как есть.
func (t *Translator) Message(locale, code string, args ...any) string {
	table, ok := messages[locale]
	if !ok {
		table = messages[t.defaultLocale]
	}
	tmpl, ok := table[code]
	if !ok {
		return code
	}
	if len(args) == 0 {
		return tmpl
	}
	return fmt.Sprintf(tmpl, args...)
}
