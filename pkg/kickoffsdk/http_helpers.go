package kickoffsdk

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// getJSON performs a GET and decodes the body into out.
func (c *Client) getJSON(ctx context.Context, path string, query url.Values, out any) error {
	req := NewRequest(http.MethodGet, path).WithQuery(query)

	resp, err := c.Do(ctx, req)
	if err != nil {
		return err
	}
	return resp.Decode(out)
}

// sendJSON performs a request with an optional JSON body and decodes the
// response into out when out is non-nil.
func (c *Client) sendJSON(ctx context.Context, method, path string, in, out any) error {
	req, err := NewJSONRequest(method, path, in)
	if err != nil {
		return err
	}

	resp, err := c.Do(ctx, req)
	if err != nil {
		return err
	}
	return resp.Decode(out)
}

// pathf joins path segments, escaping each id.
func pathf(base string, ids ...any) string {
	out := base
	for _, id := range ids {
		var seg string
		switch v := id.(type) {
		case string:
			seg = url.PathEscape(v)
		case int64:
			seg = strconv.FormatInt(v, 10)
		case int:
			seg = strconv.Itoa(v)
		default:
			seg = url.PathEscape(fmt.Sprint(v))
		}
		out += "/" + seg
	}
	return out
}

// setIf adds key=value to q when value is non-empty.
func setIf(q url.Values, key, value string) {
	if value != "" {
		q.Set(key, value)
	}
}

// setIntIf adds key=value to q when value is positive.
func setIntIf(q url.Values, key string, value int) {
	if value > 0 {
		q.Set(key, strconv.Itoa(value))
	}
}
