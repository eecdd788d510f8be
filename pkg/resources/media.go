package resources

import (
	"context"
	"io"

	"github.com/aussiebroadwan/kickoff/pkg/kickoffsdk"
	"github.com/aussiebroadwan/kickoff/pkg/querycache"
)

// UploadInput describes one file attached to an owning entity.
type UploadInput struct {
	OwnerType string
	EntityID  int64
	Filename  string
	Content   io.Reader
}

type MediaHooks struct {
	svc   *kickoffsdk.MediaService
	cache *querycache.Store

	Upload *Mutation[UploadInput, *kickoffsdk.Media]
	Delete *Mutation[int64, None]
}

func newMediaHooks(svc *kickoffsdk.MediaService, cache *querycache.Store) *MediaHooks {
	h := &MediaHooks{svc: svc, cache: cache}

	h.Upload = newMutation("media.upload",
		func(ctx context.Context, in UploadInput) (*kickoffsdk.Media, error) {
			return svc.Upload(ctx, in.OwnerType, in.EntityID, in.Filename, in.Content)
		},
		func(ctx context.Context, in UploadInput, _ *kickoffsdk.Media) {
			invalidate(ctx, cache, MediaKeys.Owner(in.OwnerType, in.EntityID))
		},
	)

	// The owner of a media id is unknown here, so the whole namespace goes.
	h.Delete = newMutation("media.delete", noOutput(svc.Delete),
		func(ctx context.Context, _ int64, _ None) {
			invalidate(ctx, cache, MediaKeys.All())
		},
	)

	return h
}

func (h *MediaHooks) List(ctx context.Context, ownerType string, entityID int64) QueryResult[[]kickoffsdk.Media] {
	enabled := ownerType != "" && entityID != 0
	return query(ctx, h.cache, MediaKeys.Owner(ownerType, entityID), enabled, func(ctx context.Context) ([]kickoffsdk.Media, error) {
		return h.svc.List(ctx, ownerType, entityID)
	})
}
