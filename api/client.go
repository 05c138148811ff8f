// Package api implements the fullbr115 server client.
//
// Reads go through a TTL-bounded response cache keyed by the canonical
// request (path plus sorted query), so repeated browsing within the cache
// lifetime never refetches. Mutating calls always go straight to the
// server. Failures split into three kinds: StatusError for transport-level
// refusals, DecodeError for malformed bodies and AppError for structured
// state=false replies.
package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/spf13/viper"

	"github.com/wangjh9712/fullbr115/constant"
	"github.com/wangjh9712/fullbr115/internal/cache"
	"github.com/wangjh9712/fullbr115/key"
	"github.com/wangjh9712/fullbr115/log"
	"github.com/wangjh9712/fullbr115/network"
	"github.com/wangjh9712/fullbr115/util"
)

// Client talks to one fullbr115 server.
type Client struct {
	baseURL string
	http    *http.Client
	store   *cache.Store
}

// New returns a client for the configured server, backed by the shared
// network client and the default response store.
func New() *Client {
	return NewWith(viper.GetString(key.ServerURL), network.Client, cache.New())
}

// NewWith returns a client with explicit collaborators. Tests use it to
// point at a local server with a deterministic store.
func NewWith(baseURL string, httpClient *http.Client, store *cache.Store) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
		store:   store,
	}
}

// cacheKey canonicalizes a request into its cache identity. url.Values
// encodes with sorted keys, so logically equal queries collide.
func cacheKey(path string, query url.Values) string {
	if len(query) == 0 {
		return path
	}
	return path + "?" + query.Encode()
}

// get performs a cache-first GET, decoding into out. A cached body that no
// longer decodes is dropped and refetched.
func (c *Client) get(path string, query url.Values, out any) error {
	key := cacheKey(path, query)
	if raw, ok := c.store.Get(key); ok {
		if err := json.Unmarshal(raw, out); err == nil {
			log.Debugf("api: cache hit for %s", key)
			return nil
		}
		log.Warnf("api: cached body for %s no longer decodes, refetching", key)
		c.store.Delete(key)
	}

	body, err := c.request(http.MethodGet, path, query, nil)
	if err != nil {
		return err
	}

	if err = json.Unmarshal(body, out); err != nil {
		return &DecodeError{Path: path, Err: err}
	}

	c.store.Set(key, body)
	return nil
}

// post performs a direct JSON POST, bypassing the cache. A nil out
// discards the response body.
func (c *Client) post(path string, payload, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	raw, err := c.request(http.MethodPost, path, nil, bytes.NewReader(body))
	if err != nil {
		return err
	}

	if out == nil {
		return nil
	}
	if err = json.Unmarshal(raw, out); err != nil {
		return &DecodeError{Path: path, Err: err}
	}
	return nil
}

// del performs a DELETE, bypassing the cache.
func (c *Client) del(path string) error {
	_, err := c.request(http.MethodDelete, path, nil, nil)
	return err
}

func (c *Client) request(method, path string, query url.Values, body io.Reader) ([]byte, error) {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequest(method, target, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", constant.UserAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	log.Debugf("api: %s %s", method, path)
	resp, err := c.http.Do(req)
	if err != nil {
		log.Error(err)
		return nil, err
	}
	defer util.Ignore(resp.Body.Close)

	if resp.StatusCode < http.StatusOK || resp.StatusCode > 299 {
		log.Errorf("api: %s %s returned %d", method, path, resp.StatusCode)
		return nil, &StatusError{
			Method: method,
			Path:   path,
			Status: resp.StatusCode,
			Detail: errorDetail(resp.Body),
		}
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Error(err)
		return nil, err
	}
	return raw, nil
}

// errorDetail pulls the server's explanation out of an error body. The
// server wraps refusals as {"detail": "..."}; anything else reads as
// empty.
func errorDetail(body io.Reader) string {
	raw, err := io.ReadAll(io.LimitReader(body, 4<<10))
	if err != nil {
		return ""
	}

	var wrapped struct {
		Detail string `json:"detail"`
	}
	if err = json.Unmarshal(raw, &wrapped); err != nil {
		return ""
	}
	return wrapped.Detail
}
