// Package pagination нарезает ленту постов на страницы фиксированного
// размера.
package pagination

import (
	"errors"
	"strconv"

	"yatube/internal/models"
)

// DefaultPageSize используется, когда размер страницы не настроен.
const DefaultPageSize = 10

// ErrPageOutOfRange возвращается при запросе страницы за пределами ленты.
// Обработчики отвечают на нее 404.
var ErrPageOutOfRange = errors.New("страница за пределами диапазона")

// Page - одна страница ленты вместе с метаданными для постраничной
// навигации.
type Page struct {
	Posts       []models.Post `json:"posts"`
	Number      int           `json:"number"`
	TotalPages  int           `json:"totalPages"`
	TotalCount  int           `json:"totalCount"`
	PageSize    int           `json:"pageSize"`
	HasNext     bool          `json:"hasNext"`
	HasPrevious bool          `json:"hasPrevious"`
}

// ParsePageNumber разбирает параметр page запроса.
// Пустое, нечисловое или неположительное значение трактуется как 1.
func ParsePageNumber(raw string) int {
	number, err := strconv.Atoi(raw)
	if err != nil || number < 1 {
		return 1
	}
	return number
}

// Paginate возвращает страницу number (нумерация с 1) из уже
// упорядоченной ленты. Порядок постов не меняется. Страница 1 валидна
// и для пустой ленты, страницы дальше последней - ErrPageOutOfRange.
func Paginate(posts []models.Post, pageSize, number int) (*Page, error) {
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	if number < 1 {
		number = 1
	}

	totalCount := len(posts)
	totalPages := (totalCount + pageSize - 1) / pageSize
	if totalPages == 0 {
		totalPages = 1
	}

	if number > totalPages {
		return nil, ErrPageOutOfRange
	}

	start := (number - 1) * pageSize
	end := start + pageSize
	if end > totalCount {
		end = totalCount
	}
	if start > totalCount {
		start = totalCount
	}

	return &Page{
		Posts:       posts[start:end],
		Number:      number,
		TotalPages:  totalPages,
		TotalCount:  totalCount,
		PageSize:    pageSize,
		HasNext:     number < totalPages,
		HasPrevious: number > 1,
	}, nil
}
