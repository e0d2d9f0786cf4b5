// Package apperr описывает ошибки слоёв: репозиторий, сервис и некорректный параметр.
package apperr

import (
	"errors"
	"fmt"
)

// Коды сообщений; тексты лежат в internal/i18n.
const (
	BadID                   = "BAD_ID"
	BadParameterPartOfName  = "BAD_PARAMETER_PART_OF_TAG_NAME"
	BadPartOfAuthorName     = "BAD_PARAMETER_PART_OF_AUTHOR_NAME"
	BadPartOfNewsTitle      = "BAD_PARAMETER_PART_OF_NEWS_TITLE"
	BadTagName              = "BAD_TAG_NAME"
	BadTagNameLength        = "BAD_TAG_NAME_LENGTH"
	BadTagNamePattern       = "BAD_TAG_NAME_PATTERN"
	BadTagNameSpaces        = "BAD_TAG_NAME_SPACES"
	BadCommentContent       = "BAD_COMMENT_CONTENT"
	BadCommentContentLength = "BAD_COMMENT_CONTENT_LENGTH"
	BadNewsTitle            = "BAD_NEWS_TITLE"
	BadNewsContent          = "BAD_NEWS_CONTENT"
	BadAuthorName           = "BAD_AUTHOR_NAME"
	AuthorHasNews           = "AUTHOR_HAS_NEWS"
	NewsNotExists           = "NEWS_NOT_EXISTS"
	AuthorNotExists         = "AUTHOR_NOT_EXISTS"
	BadUsername             = "BAD_USERNAME"
	BadPassword             = "BAD_PASSWORD"
	UsernameTaken           = "USERNAME_TAKEN"
	BadCredentials          = "BAD_CREDENTIALS"
	BadRequestBody          = "BAD_REQUEST_BODY"
	NotFoundNews            = "NOT_FOUND_NEWS"
	NotFoundComment         = "NOT_FOUND_COMMENT"
	NotFoundTag             = "NOT_FOUND_TAG"
	NotFoundAuthor          = "NOT_FOUND_AUTHOR"
	InternalError           = "INTERNAL_ERROR"
	Unauthorized            = "UNAUTHORIZED"
	Forbidden               = "FORBIDDEN"
	TooManyRequests         = "TOO_MANY_REQUESTS"
	BadLogDay               = "BAD_LOG_DAY"
	NotFoundLogs            = "NOT_FOUND_LOGS"
)

// IncorrectParameterError: вход не прошёл проверку, мутация не выполнялась.
type IncorrectParameterError struct {
	Code string
	Args []any
}

func (e *IncorrectParameterError) Error() string {
	if len(e.Args) == 0 {
		return "incorrect parameter: " + e.Code
	}
	return fmt.Sprintf("incorrect parameter: %s %v", e.Code, e.Args)
}

func IncorrectParameter(code string, args ...any) error {
	return &IncorrectParameterError{Code: code, Args: args}
}

// ServiceError: сбой на границе репозитория или нарушение внутреннего инварианта.
type ServiceError struct {
	Op    string
	Cause error
}

func (e *ServiceError) Error() string {
	if e.Cause == nil {
		return "service: " + e.Op
	}
	return fmt.Sprintf("service: %s: %v", e.Op, e.Cause)
}

func (e *ServiceError) Unwrap() error { return e.Cause }

func Service(op string, cause error) error {
	return &ServiceError{Op: op, Cause: cause}
}

// RepositoryError: ошибка хранилища; наружу из сервисов не выходит.
type RepositoryError struct {
	Op    string
	Cause error
}

func (e *RepositoryError) Error() string {
	return fmt.Sprintf("repository: %s: %v", e.Op, e.Cause)
}

func (e *RepositoryError) Unwrap() error { return e.Cause }

func Repository(op string, cause error) error {
	if cause == nil {
		return nil
	}
	return &RepositoryError{Op: op, Cause: cause}
}

func IsIncorrectParameter(err error) (*IncorrectParameterError, bool) {
	var ipe *IncorrectParameterError
	if errors.As(err, &ipe) {
		return ipe, true
	}
	return nil, false
}

func IsService(err error) bool {
	var se *ServiceError
	return errors.As(err, &se)
}
