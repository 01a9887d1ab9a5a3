package genius

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/time/rate"
)

const baseURL = "https://api.genius.com"
const userAgent = "ProducerMap/1.0 (jonnymurillo288@gmail.com)"

// -------------------------------------------------------
// Core client
// -------------------------------------------------------

// Client is a minimal Genius API client. Every request carries the
// bearer token and passes through a courtesy rate limiter so batch
// traffic stays well inside the Genius limits.
type Client struct {
	http    *http.Client
	base    string
	limiter *rate.Limiter
}

// NewClient builds a client authorized with the given Genius access
// token. The token is fixed for the process lifetime, so a static
// token source is all the oauth2 plumbing we need.
func NewClient(token string) *Client {
	src := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	h := oauth2.NewClient(context.Background(), src)
	h.Timeout = 15 * time.Second

	return &Client{
		http:    h,
		base:    baseURL,
		limiter: rate.NewLimiter(rate.Every(100*time.Millisecond), 1),
	}
}

// WithBaseURL points the client at a different API root. Tests use this
// to talk to a local fake server.
func (c *Client) WithBaseURL(u string) *Client {
	c.base = u
	return c
}

// get performs GET + JSON decode behind the limiter.
func (c *Client) get(ctx context.Context, u string, out interface{}) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, "GET", u, nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("genius returned status %d for %s", resp.StatusCode, req.URL.Path)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}

// ------------
// Search API
// ------------

// Search runs a free-text song search and returns the hits in ranked
// order, exactly as Genius returned them.
func (c *Client) Search(ctx context.Context, query string) ([]Hit, error) {
	u := fmt.Sprintf("%s/search?q=%s", c.base, url.QueryEscape(query))

	var resp searchResponse
	if err := c.get(ctx, u, &resp); err != nil {
		return nil, err
	}
	return resp.Response.Hits, nil
}

// ------------
// Song lookup API
// ------------

// Song fetches the full song record, including custom performance
// blocks and the dedicated producer list.
func (c *Client) Song(ctx context.Context, id int64) (*Song, error) {
	u := fmt.Sprintf("%s/songs/%d", c.base, id)

	var resp songResponse
	if err := c.get(ctx, u, &resp); err != nil {
		return nil, err
	}
	if resp.Response.Song == nil {
		return nil, fmt.Errorf("genius returned no song for id %d", id)
	}
	return resp.Response.Song, nil
}
