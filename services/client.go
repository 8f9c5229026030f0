// Package services talks to the institutional inventory backend. One client
// per backend area; every method takes a context carrying the caller's
// session and returns typed models or a taxonomy error (TransportError,
// APIError, PreconditionError, StockShortfallError). The backend remains the
// source of truth for stock, persistence and authorization.
package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
)

// SessionCookie is the cookie the backend issues on login and expects on
// every authenticated call.
const SessionCookie = "session"

const noActivePeriodMarker = "periodo académico activo"

type Client struct {
	baseURL string
	http    *http.Client

	Users      *Users
	Components *Components
	Categories *Categories
	Requests   *Requests
	Periods    *Periods
	Movements  *Movements
}

func NewClient(baseURL string) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 15 * time.Second},
	}
	c.Users = &Users{c: c}
	c.Components = &Components{c: c}
	c.Categories = &Categories{c: c}
	c.Requests = &Requests{c: c}
	c.Periods = &Periods{c: c}
	c.Movements = &Movements{c: c}
	return c
}

type sessionKey struct{}

// WithSession attaches the caller's session token to ctx so outbound calls
// authenticate as that user.
func WithSession(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, sessionKey{}, token)
}

func sessionToken(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(sessionKey{}).(string)
	return token, ok && token != ""
}

// Upload is a file forwarded to the backend as-is (proof documents,
// component images). The portal never inspects the content.
type Upload struct {
	Filename    string
	ContentType string
	Content     []byte
}

func (c *Client) newRequest(ctx context.Context, method, path string, query url.Values, body io.Reader, contentType string) (*http.Request, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return nil, err
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if token, ok := sessionToken(ctx); ok {
		req.AddCookie(&http.Cookie{Name: SessionCookie, Value: token})
	}
	return req, nil
}

// do performs one request/response exchange. No retries: retries are always
// user-initiated by re-submitting the action.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body io.Reader, contentType string, out any) error {
	op := method + " " + path

	req, err := c.newRequest(ctx, method, path, query, body, contentType)
	if err != nil {
		return &TransportError{Op: op, Err: err}
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return &TransportError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return c.failure(op, resp)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &TransportError{Op: op, Err: fmt.Errorf("decoding response: %w", err)}
	}
	return nil
}

func (c *Client) getJSON(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, "", out)
}

func (c *Client) sendJSON(ctx context.Context, method, path string, payload, out any) error {
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return &TransportError{Op: method + " " + path, Err: err}
		}
		body = bytes.NewReader(raw)
	}
	return c.do(ctx, method, path, nil, body, "application/json", out)
}

// failure translates a non-2xx response into the error taxonomy. The backend
// reports stock shortfalls as a structured stockErrors list and the
// no-active-period precondition only through its message text, so the client
// matches that text (same contract the previous front end relied on).
func (c *Client) failure(op string, resp *http.Response) error {
	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return &TransportError{Op: op, Err: err}
	}

	var payload struct {
		Error       string           `json:"error"`
		StockErrors []StockShortfall `json:"stockErrors"`
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return &APIError{Status: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
	}
	if len(payload.StockErrors) > 0 {
		return &StockShortfallError{Items: payload.StockErrors}
	}
	if strings.Contains(payload.Error, noActivePeriodMarker) {
		return &PreconditionError{Message: payload.Error}
	}
	message := payload.Error
	if message == "" {
		message = http.StatusText(resp.StatusCode)
	}
	return &APIError{Status: resp.StatusCode, Message: message}
}

// multipartBody builds a multipart form from string fields plus optional
// file parts.
func multipartBody(fields map[string]string, files map[string]*Upload) (io.Reader, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for name, value := range fields {
		if err := w.WriteField(name, value); err != nil {
			return nil, "", err
		}
	}
	for name, file := range files {
		if file == nil {
			continue
		}
		part, err := w.CreateFormFile(name, file.Filename)
		if err != nil {
			return nil, "", err
		}
		if _, err := part.Write(file.Content); err != nil {
			return nil, "", err
		}
	}
	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return &buf, w.FormDataContentType(), nil
}
