package place

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// defaultBaseURL is the Kakao Local API origin.
const defaultBaseURL = "https://dapi.kakao.com"

// searchTimeout bounds the only call this service makes to an uncontrolled
// external dependency.  A timeout surfaces as a TransportError; there are
// no retries.
const searchTimeout = 10 * time.Second

// Kakao caps the page size of the keyword search.
const (
	minSize     = 1
	maxSize     = 15
	defaultSize = 5
)

// Client calls the Kakao Local keyword search.
type Client struct {
	restKey string
	baseURL string
	httpc   *http.Client
}

// NewClient builds a Client with the given REST key.  An empty key is
// allowed; Search reports ErrConfigMissing per call so the rest of the
// service keeps working without the credential.
func NewClient(restKey string) *Client {
	return &Client{
		restKey: restKey,
		baseURL: defaultBaseURL,
		httpc:   &http.Client{Timeout: searchTimeout},
	}
}

// NewClientWithBaseURL is NewClient pointed at a different origin.  Tests
// use it to stand in a local fake for the Kakao API.
func NewClientWithBaseURL(restKey, baseURL string) *Client {
	c := NewClient(restKey)
	c.baseURL = strings.TrimRight(baseURL, "/")
	return c
}

// Search runs the keyword search and returns normalized candidates.
// Failure modes, in the order they are checked:
//   - blank query      -> ErrQueryRequired (no external call)
//   - missing REST key -> ErrConfigMissing (no external call)
//   - network failure  -> *TransportError carrying the cause
//   - HTTP 429         -> ErrRateLimited
//   - other non-2xx    -> *RequestFailedError with the status
//   - zero valid rows  -> ErrNoResults
//
// size is clamped to the upstream's 1..15 window; zero or negative selects
// the default.
func (c *Client) Search(ctx context.Context, query string, size int) ([]Candidate, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrQueryRequired
	}
	if c.restKey == "" {
		return nil, ErrConfigMissing
	}
	if size <= 0 {
		size = defaultSize
	}
	if size < minSize {
		size = minSize
	}
	if size > maxSize {
		size = maxSize
	}

	q := url.Values{}
	q.Set("query", query)
	q.Set("size", strconv.Itoa(size))
	reqURL := c.baseURL + "/v2/local/search/keyword.json?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, &TransportError{Cause: err}
	}
	req.Header.Set("Authorization", "KakaoAK "+c.restKey)

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, &TransportError{Cause: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, ErrRateLimited
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &RequestFailedError{Status: resp.StatusCode}
	}

	var body struct {
		Documents []Document `json:"documents"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, &TransportError{Cause: err}
	}

	candidates := Normalize(body.Documents)
	if len(candidates) == 0 {
		return nil, ErrNoResults
	}
	return candidates, nil
}
