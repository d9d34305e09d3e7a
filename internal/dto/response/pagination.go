package response

// PaginatedResponse is the list envelope: {pages, total, results}. Total
// counts the results actually returned, not the whole filtered set.
type PaginatedResponse[T any] struct {
	Pages   int `json:"pages"`
	Total   int `json:"total"`
	Results []T `json:"results"`
}

func NewPaginatedResponse[T any](results []T, pages int) *PaginatedResponse[T] {
	if results == nil {
		results = []T{}
	}

	return &PaginatedResponse[T]{
		Pages:   pages,
		Total:   len(results),
		Results: results,
	}
}
