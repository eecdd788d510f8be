package resources

import (
	"context"
	"strings"

	"github.com/aussiebroadwan/kickoff/pkg/kickoffsdk"
	"github.com/aussiebroadwan/kickoff/pkg/querycache"
)

type SearchHooks struct {
	svc   *kickoffsdk.SearchService
	cache *querycache.Store
}

func newSearchHooks(svc *kickoffsdk.SearchService, cache *querycache.Store) *SearchHooks {
	return &SearchHooks{svc: svc, cache: cache}
}

// Global searches across teams, fields and users. A blank query disables
// the read.
func (h *SearchHooks) Global(ctx context.Context, q string, kind kickoffsdk.SearchKind) QueryResult[*kickoffsdk.SearchResults] {
	q = strings.TrimSpace(q)
	return query(ctx, h.cache, SearchKeys.Global(q, kind), q != "", func(ctx context.Context) (*kickoffsdk.SearchResults, error) {
		return h.svc.Global(ctx, q, kind)
	})
}
