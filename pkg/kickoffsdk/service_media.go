package kickoffsdk

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
)

// Multipart field names of the upload endpoint. The backend expects these
// snake_case names even though the JSON API is camelCase.
const (
	uploadFieldFile      = "file"
	uploadFieldOwnerType = "owner_type"
	uploadFieldEntityID  = "entity_id"
)

type MediaService struct {
	c *Client
}

// Upload sends a file as multipart/form-data and attaches it to an entity
// (ownerType is e.g. "team", "field", "user", "post").
func (s *MediaService) Upload(ctx context.Context, ownerType string, entityID int64, filename string, r io.Reader) (*Media, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	part, err := w.CreateFormFile(uploadFieldFile, filename)
	if err != nil {
		return nil, fmt.Errorf("failed to create form file: %w", err)
	}
	if _, err := io.Copy(part, r); err != nil {
		return nil, fmt.Errorf("failed to read upload: %w", err)
	}
	if err := w.WriteField(uploadFieldOwnerType, ownerType); err != nil {
		return nil, err
	}
	if err := w.WriteField(uploadFieldEntityID, strconv.FormatInt(entityID, 10)); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("failed to finish multipart body: %w", err)
	}

	req := NewRequest(http.MethodPost, "/media/upload")
	req.Body = buf.Bytes()
	req.ContentType = w.FormDataContentType()

	resp, err := s.c.Do(ctx, req)
	if err != nil {
		return nil, err
	}

	var out Media
	if err := resp.Decode(&out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *MediaService) List(ctx context.Context, ownerType string, entityID int64) ([]Media, error) {
	q := url.Values{}
	q.Set(uploadFieldOwnerType, ownerType)
	q.Set(uploadFieldEntityID, strconv.FormatInt(entityID, 10))

	var out []Media
	if err := s.c.getJSON(ctx, "/media", q, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *MediaService) Delete(ctx context.Context, id int64) error {
	return s.c.sendJSON(ctx, http.MethodDelete, pathf("/media", id), nil, nil)
}
