package kickoffsdk

import (
	"context"
	"net/http"
)

type CommunityService struct {
	c *Client
}

// Posts returns a page of the community feed. The backend provides the envelope.
func (s *CommunityService) Posts(ctx context.Context, p ListParams) (*Page[Post], error) {
	var out Page[Post]
	if err := s.c.getJSON(ctx, "/community/posts", p.values(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *CommunityService) Post(ctx context.Context, id int64) (*Post, error) {
	var out Post
	if err := s.c.getJSON(ctx, pathf("/community/posts", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *CommunityService) CreatePost(ctx context.Context, in CreatePostRequest) (*Post, error) {
	var out Post
	if err := s.c.sendJSON(ctx, http.MethodPost, "/community/posts", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *CommunityService) DeletePost(ctx context.Context, id int64) error {
	return s.c.sendJSON(ctx, http.MethodDelete, pathf("/community/posts", id), nil, nil)
}

func (s *CommunityService) Comments(ctx context.Context, postID int64) ([]Comment, error) {
	var out []Comment
	if err := s.c.getJSON(ctx, pathf("/community/posts", postID)+"/comments", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *CommunityService) Comment(ctx context.Context, postID int64, content string) (*Comment, error) {
	var out Comment
	body := map[string]string{"content": content}
	if err := s.c.sendJSON(ctx, http.MethodPost, pathf("/community/posts", postID)+"/comments", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ToggleLike likes the post, or unlikes it when already liked.
func (s *CommunityService) ToggleLike(ctx context.Context, postID int64) (*LikeResult, error) {
	var out LikeResult
	if err := s.c.sendJSON(ctx, http.MethodPost, pathf("/community/posts", postID)+"/like", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
