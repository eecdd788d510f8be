package kickoffsdk

import "net/url"

const (
	defaultPage  = 1
	defaultLimit = 20
)

// Page is the paginated envelope list endpoints return.
type Page[T any] struct {
	Data       []T `json:"data"`
	Total      int `json:"total"`
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	TotalPages int `json:"totalPages"`
}

// ListParams selects a page. Zero values mean "server default".
type ListParams struct {
	Page  int
	Limit int
}

func (p ListParams) values() url.Values {
	q := url.Values{}
	setIntIf(q, "page", p.Page)
	setIntIf(q, "limit", p.Limit)
	return q
}

// synthesizePage wraps a bare list returned by an endpoint that has no
// envelope. Total and TotalPages describe only the returned slice; callers
// must not treat them as the server-side totals.
func synthesizePage[T any](list []T, params ListParams) *Page[T] {
	if list == nil {
		list = []T{}
	}

	page := params.Page
	if page <= 0 {
		page = defaultPage
	}
	limit := params.Limit
	if limit <= 0 {
		limit = defaultLimit
	}

	return &Page[T]{
		Data:       list,
		Total:      len(list),
		Page:       page,
		Limit:      limit,
		TotalPages: 1,
	}
}
