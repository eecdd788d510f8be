package kickoffsdk

import (
	"context"
	"net/url"
)

// SearchKind narrows a global search. The zero value searches everything.
type SearchKind string

const (
	SearchAll    SearchKind = ""
	SearchTeams  SearchKind = "teams"
	SearchFields SearchKind = "fields"
	SearchUsers  SearchKind = "users"
)

type SearchService struct {
	c *Client
}

func (s *SearchService) Global(ctx context.Context, query string, kind SearchKind) (*SearchResults, error) {
	q := url.Values{}
	q.Set("q", query)
	setIf(q, "type", string(kind))

	var out SearchResults
	if err := s.c.getJSON(ctx, "/search", q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
