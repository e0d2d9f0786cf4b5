// Package pagination режет упорядоченный список на страницы.
//
// Номера страниц начинаются с 1. pageSize <= 0 заменяется на DefaultPageSize,
// pageNumber < 1 заменяется на 1. Страница за пределами списка возвращается
// пустой, с корректными метаданными.
package pagination

import "math"

const DefaultPageSize = 5

type Pagination[T any] struct {
	Entities      []T `json:"entities"`
	PageSize      int `json:"page_size"`
	PageNumber    int `json:"page_number"`
	TotalPages    int `json:"total_pages"`
	TotalElements int `json:"total_elements"`
}

func Paginate[T any](list []T, pageSize, pageNumber int) Pagination[T] {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if pageNumber < 1 {
		pageNumber = 1
	}

	total := len(list)
	p := Pagination[T]{
		Entities:      []T{},
		PageSize:      pageSize,
		PageNumber:    pageNumber,
		TotalPages:    TotalPages(total, pageSize),
		TotalElements: total,
	}

	if pageNumber > p.TotalPages {
		return p
	}
	start := Offset(pageNumber, pageSize)
	end := start + min(pageSize, total-start)

	p.Entities = append(p.Entities, list[start:end]...)
	return p
}

// Offset возвращает смещение первого элемента страницы.
// При переполнении int возвращает math.MaxInt.
func Offset(pageNumber, pageSize int) int {
	if pageNumber <= 1 || pageSize <= 0 {
		return 0
	}
	if pageNumber-1 > math.MaxInt/pageSize {
		return math.MaxInt
	}
	return (pageNumber - 1) * pageSize
}

// TotalPages считает ceil(total / pageSize); для пустого списка 0.
func TotalPages(total, pageSize int) int {
	if total <= 0 || pageSize <= 0 {
		return 0
	}
	pages := total / pageSize
	if total%pageSize != 0 {
		pages++
	}
	return pages
}
