package rest

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/hendrywilliam/launchpad/src/structs"
)

const userAgent = "DiscordBot (https://github.com/hendrywilliam/launchpad, 1.0.0)"

type REST struct {
	httpBaseURL string
	httpClient  *http.Client
	botToken    string
}

type RESTClient interface {
	URL() string
	Get(ctx context.Context, url string, body io.Reader, options *RESTOptions) (*http.Response, error)
	Put(ctx context.Context, url string, body io.Reader, options *RESTOptions) (*http.Response, error)
	Post(ctx context.Context, url string, body io.Reader, options *RESTOptions) (*http.Response, error)
}

type RESTOptions struct {
	Headers map[string]string
}

// HTTPError is returned by DecodeJSON for any non-2xx response.
type HTTPError struct {
	StatusCode int
	Body       structs.ErrorHTTPResponse
}

func (e *HTTPError) Error() string {
	if e.Body.Message == "" {
		return fmt.Sprintf("discord responded with status %d", e.StatusCode)
	}
	return fmt.Sprintf("discord responded with status %d: %s (code %d)", e.StatusCode, e.Body.Message, e.Body.Code)
}

func NewREST(baseURL, botToken string, timeout time.Duration) *REST {
	r := &REST{
		httpBaseURL: baseURL,
		httpClient:  &http.Client{Timeout: timeout},
		botToken:    botToken,
	}
	return r
}

func (r *REST) applyHeaders(req *http.Request, headers map[string]string) {
	for k, v := range headers {
		req.Header.Set(k, v)
	}
}

func (r *REST) makeRequest(ctx context.Context, method string, url string, body io.Reader, options *RESTOptions) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, err
	}
	// Mandatory headers.
	req.Header.Set("Content-Type", "application/json; charset=UTF-8")
	req.Header.Set("Authorization", fmt.Sprintf("Bot %s", r.botToken))
	req.Header.Set("User-Agent", userAgent)

	if options != nil {
		r.applyHeaders(req, options.Headers)
	}
	return req, nil
}

func (r *REST) do(ctx context.Context, method string, url string, body io.Reader, options *RESTOptions) (*http.Response, error) {
	req, err := r.makeRequest(ctx, method, url, body, options)
	if err != nil {
		return nil, err
	}
	res, err := r.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (r *REST) URL() string {
	return r.httpBaseURL
}

func (r *REST) Get(ctx context.Context, url string, body io.Reader, options *RESTOptions) (*http.Response, error) {
	return r.do(ctx, http.MethodGet, url, body, options)
}

func (r *REST) Put(ctx context.Context, url string, body io.Reader, options *RESTOptions) (*http.Response, error) {
	return r.do(ctx, http.MethodPut, url, body, options)
}

func (r *REST) Post(ctx context.Context, url string, body io.Reader, options *RESTOptions) (*http.Response, error) {
	return r.do(ctx, http.MethodPost, url, body, options)
}

// DecodeJSON consumes and closes res.Body. v may be nil to discard a
// successful body.
func DecodeJSON(res *http.Response, v any) error {
	defer res.Body.Close()
	data, err := io.ReadAll(res.Body)
	if err != nil {
		return fmt.Errorf("read response body: %w", err)
	}
	if res.StatusCode < 200 || res.StatusCode > 299 {
		httpErr := &HTTPError{StatusCode: res.StatusCode}
		// Error bodies are best effort, a proxy may answer with html.
		_ = json.Unmarshal(data, &httpErr.Body)
		return httpErr
	}
	if v == nil {
		return nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decode response body: %w", err)
	}
	return nil
}
