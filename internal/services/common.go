package services

import (
	"slices"
	"strings"
	"time"

	"news-management/internal/apperr"
	"news-management/internal/pagination"

	"golang.org/x/text/cases"
)

// Clock подменяется в тестах.
type Clock func() time.Time

func wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	return apperr.Service(op, err)
}

// pageArgs приводит номер и размер страницы к допустимым значениям.
func pageArgs(page, size int) (int, int) {
	if page < 1 {
		page = 1
	}
	if size <= 0 {
		size = pagination.DefaultPageSize
	}
	return page, size
}

// Sort возвращает отсортированную копию list; исходный срез не меняется.
func Sort[T any](list []T, cmp func(a, b T) int) ([]T, error) {
	if list == nil {
		return nil, apperr.Service("sort", errNilList)
	}
	if cmp == nil {
		return nil, apperr.Service("sort", errNilComparator)
	}
	out := slices.Clone(list)
	slices.SortStableFunc(out, cmp)
	return out, nil
}

// containsFold ищет substr в s по полному юникодному свёртыванию регистра.
func containsFold(s, substr string) bool {
	fold := cases.Fold()
	return strings.Contains(fold.String(s), fold.String(substr))
}
