// Package client is a typed HTTP client for the profrate API, used by the
// command-line tool.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"profrate/internal/auth"
	"profrate/internal/httpx"
	"profrate/internal/module"
	"profrate/internal/rating"

	"golang.org/x/time/rate"
)

const listPageSize = 100

var ErrInstanceNotFound = errors.New("module instance not found")

// APIError is a non-2xx answer from the server.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
	Details    []httpx.ErrorDetail
}

func (e *APIError) Error() string {
	if e.Code == "" {
		return fmt.Sprintf("unexpected status code: %d", e.StatusCode)
	}
	return fmt.Sprintf("%d %s: %s", e.StatusCode, e.Code, e.Message)
}

// Retryable reports whether the server marked the failure as safe to retry.
func (e *APIError) Retryable() bool {
	if e.StatusCode == http.StatusTooManyRequests || e.StatusCode >= 500 {
		return true
	}
	for _, d := range e.Details {
		if d.Field == "retryable" {
			return true
		}
	}
	return false
}

type Client struct {
	httpClient *http.Client
	userAgent  string
	baseURL    string
	token      string
	limiter    *rate.Limiter
	maxRetries int
	backoff    time.Duration
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

func WithToken(token string) Option {
	return func(c *Client) { c.token = token }
}

// WithRetries sets how often a retryable failure is retried and the first
// backoff, which doubles on each attempt.
func WithRetries(n int, backoff time.Duration) Option {
	return func(c *Client) {
		c.maxRetries = n
		c.backoff = backoff
	}
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
		userAgent:  "profrate-cli/1.0",
		baseURL:    strings.TrimRight(baseURL, "/"),
		limiter:    rate.NewLimiter(rate.Limit(5), 1),
		maxRetries: 2,
		backoff:    time.Second,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) Token() string {
	return c.token
}

func (c *Client) Register(ctx context.Context, username, email, password string) (auth.Session, error) {
	var sess auth.Session
	body := map[string]string{"username": username, "email": email, "password": password}
	if err := c.do(ctx, http.MethodPost, "/v1/auth/register", body, &sess); err != nil {
		return auth.Session{}, err
	}
	c.token = sess.Token
	return sess, nil
}

func (c *Client) Login(ctx context.Context, username, password string) (auth.Session, error) {
	var sess auth.Session
	body := map[string]string{"username": username, "password": password}
	if err := c.do(ctx, http.MethodPost, "/v1/auth/login", body, &sess); err != nil {
		return auth.Session{}, err
	}
	c.token = sess.Token
	return sess, nil
}

func (c *Client) Logout(ctx context.Context) error {
	if err := c.do(ctx, http.MethodPost, "/v1/auth/logout", nil, nil); err != nil {
		return err
	}
	c.token = ""
	return nil
}

// ListInstances fetches every page of module instances matching q.
func (c *Client) ListInstances(ctx context.Context, q module.ListQuery) ([]module.Instance, error) {
	params := url.Values{}
	if q.ModuleCode != "" {
		params.Set("module", q.ModuleCode)
	}
	if q.Year != 0 {
		params.Set("year", strconv.Itoa(q.Year))
	}
	if q.Semester != 0 {
		params.Set("semester", strconv.Itoa(int(q.Semester)))
	}
	params.Set("page_size", strconv.Itoa(listPageSize))

	var all []module.Instance
	for page := 1; ; page++ {
		params.Set("page", strconv.Itoa(page))
		var batch []module.Instance
		if err := c.do(ctx, http.MethodGet, "/v1/module-instances?"+params.Encode(), nil, &batch); err != nil {
			return nil, err
		}
		all = append(all, batch...)
		if len(batch) < listPageSize {
			return all, nil
		}
	}
}

// FindInstance resolves the offering of code in year and semester.
func (c *Client) FindInstance(ctx context.Context, code string, year int, semester module.Semester) (module.Instance, error) {
	instances, err := c.ListInstances(ctx, module.ListQuery{ModuleCode: code, Year: year, Semester: semester})
	if err != nil {
		return module.Instance{}, err
	}
	for _, inst := range instances {
		if strings.EqualFold(inst.ModuleCode, code) && inst.Year == year && inst.Semester == semester {
			return inst, nil
		}
	}
	return module.Instance{}, ErrInstanceNotFound
}

func (c *Client) Overview(ctx context.Context) ([]rating.ProfessorAverage, error) {
	var rows []rating.ProfessorAverage
	if err := c.do(ctx, http.MethodGet, "/v1/professors", nil, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func (c *Client) ModuleAverage(ctx context.Context, professorID int64, moduleCode string) (rating.ModuleAverage, error) {
	var avg rating.ModuleAverage
	path := fmt.Sprintf("/v1/professors/%d/modules/%s/average", professorID, url.PathEscape(moduleCode))
	if err := c.do(ctx, http.MethodGet, path, nil, &avg); err != nil {
		return rating.ModuleAverage{}, err
	}
	return avg, nil
}

// RateInput names the offering by module code, year and semester, the way
// users know it.
type RateInput struct {
	ProfessorID int64
	ModuleCode  string
	Year        int
	Semester    module.Semester
	Score       int
}

func (c *Client) Rate(ctx context.Context, in RateInput) (rating.Outcome, rating.Rating, error) {
	inst, err := c.FindInstance(ctx, in.ModuleCode, in.Year, in.Semester)
	if err != nil {
		return "", rating.Rating{}, err
	}

	var resp struct {
		Outcome rating.Outcome `json:"outcome"`
		Rating  rating.Rating  `json:"rating"`
	}
	body := map[string]any{
		"professor_id":       in.ProfessorID,
		"module_instance_id": inst.ID,
		"score":              in.Score,
	}
	if err := c.do(ctx, http.MethodPost, "/v1/ratings", body, &resp); err != nil {
		return "", rating.Rating{}, err
	}
	return resp.Outcome, resp.Rating, nil
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string              `json:"code"`
		Message string              `json:"message"`
		Details []httpx.ErrorDetail `json:"details"`
	} `json:"error"`
}

func (c *Client) do(ctx context.Context, method, path string, body, target any) error {
	var payload []byte
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		payload = b
	}

	var lastErr error
	for i := 0; i <= c.maxRetries; i++ {
		if i > 0 {
			backoff := c.backoff * time.Duration(1<<uint(i-1))
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return ctx.Err()
			}
		}

		err := c.once(ctx, method, path, payload, target)
		if err == nil {
			return nil
		}
		var apiErr *APIError
		if errors.As(err, &apiErr) && !apiErr.Retryable() {
			return err
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		lastErr = err
	}
	return fmt.Errorf("after %d retries: %w", c.maxRetries, lastErr)
}

func (c *Client) once(ctx context.Context, method, path string, payload []byte, target any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNoContent {
		return nil
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		if resp.StatusCode >= 300 {
			return &APIError{StatusCode: resp.StatusCode}
		}
		return fmt.Errorf("decode response: %w", err)
	}

	if resp.StatusCode >= 300 || !env.Success {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		if env.Error != nil {
			apiErr.Code = env.Error.Code
			apiErr.Message = env.Error.Message
			apiErr.Details = env.Error.Details
		}
		return apiErr
	}

	if target == nil || len(env.Data) == 0 {
		return nil
	}
	if err := json.Unmarshal(env.Data, target); err != nil {
		return fmt.Errorf("decode data: %w", err)
	}
	return nil
}
