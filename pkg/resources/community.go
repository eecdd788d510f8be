package resources

import (
	"context"

	"github.com/aussiebroadwan/kickoff/pkg/kickoffsdk"
	"github.com/aussiebroadwan/kickoff/pkg/querycache"
)

type CommentInput struct {
	PostID  int64
	Content string
}

type CommunityHooks struct {
	svc   *kickoffsdk.CommunityService
	cache *querycache.Store

	CreatePost *Mutation[kickoffsdk.CreatePostRequest, *kickoffsdk.Post]
	DeletePost *Mutation[int64, None]
	Comment    *Mutation[CommentInput, *kickoffsdk.Comment]
	ToggleLike *Mutation[int64, *kickoffsdk.LikeResult]
}

func newCommunityHooks(svc *kickoffsdk.CommunityService, cache *querycache.Store) *CommunityHooks {
	h := &CommunityHooks{svc: svc, cache: cache}

	h.CreatePost = newMutation("community.create_post", svc.CreatePost,
		func(ctx context.Context, _ kickoffsdk.CreatePostRequest, _ *kickoffsdk.Post) {
			invalidate(ctx, cache, CommunityKeys.Posts())
		},
	)

	h.DeletePost = newMutation("community.delete_post", noOutput(svc.DeletePost),
		func(ctx context.Context, _ int64, _ None) {
			invalidate(ctx, cache, CommunityKeys.Posts())
		},
	)

	// Comment counts live on the posts, so those go stale too.
	h.Comment = newMutation("community.comment",
		func(ctx context.Context, in CommentInput) (*kickoffsdk.Comment, error) {
			return svc.Comment(ctx, in.PostID, in.Content)
		},
		func(ctx context.Context, in CommentInput, _ *kickoffsdk.Comment) {
			invalidate(ctx, cache, CommunityKeys.Comments(in.PostID), CommunityKeys.Posts())
		},
	)

	h.ToggleLike = newMutation("community.toggle_like", svc.ToggleLike,
		func(ctx context.Context, _ int64, _ *kickoffsdk.LikeResult) {
			invalidate(ctx, cache, CommunityKeys.Posts())
		},
	)

	return h
}

func (h *CommunityHooks) Posts(ctx context.Context, p kickoffsdk.ListParams) QueryResult[*kickoffsdk.Page[kickoffsdk.Post]] {
	return query(ctx, h.cache, CommunityKeys.PostList(p), true, func(ctx context.Context) (*kickoffsdk.Page[kickoffsdk.Post], error) {
		return h.svc.Posts(ctx, p)
	})
}

func (h *CommunityHooks) Post(ctx context.Context, id int64) QueryResult[*kickoffsdk.Post] {
	return query(ctx, h.cache, CommunityKeys.Post(id), id != 0, func(ctx context.Context) (*kickoffsdk.Post, error) {
		return h.svc.Post(ctx, id)
	})
}

func (h *CommunityHooks) Comments(ctx context.Context, postID int64) QueryResult[[]kickoffsdk.Comment] {
	return query(ctx, h.cache, CommunityKeys.Comments(postID), postID != 0, func(ctx context.Context) ([]kickoffsdk.Comment, error) {
		return h.svc.Comments(ctx, postID)
	})
}
