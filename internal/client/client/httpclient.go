package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dmitrijs2005/gobarber/internal/client/models"
	"github.com/dmitrijs2005/gobarber/internal/common"
	"github.com/dmitrijs2005/gobarber/internal/netx"
)

// HTTPClient implements Client over the GoBarber REST API.
type HTTPClient struct {
	baseURL   *url.URL
	http      *http.Client
	transport *bearerTransport
}

// bearerTransport adds "Authorization: Bearer <token>" to every request
// while the token source reports a session.
type bearerTransport struct {
	base   http.RoundTripper
	tokens TokenSource
}

func (t *bearerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if t.tokens != nil {
		if token := t.tokens.Token(); token != "" {
			req = req.Clone(req.Context())
			req.Header.Set(common.AuthorizationHeaderName, "Bearer "+token)
		}
	}
	return t.base.RoundTrip(req)
}

// NewHTTPClient returns a client for the API rooted at baseURL. A zero
// timeout means no per-request timeout.
func NewHTTPClient(baseURL string, timeout time.Duration) (*HTTPClient, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse server url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("server url %q: scheme must be http or https", baseURL)
	}

	tr := &bearerTransport{base: http.DefaultTransport}
	return &HTTPClient{
		baseURL:   u,
		http:      &http.Client{Transport: tr, Timeout: timeout},
		transport: tr,
	}, nil
}

// UseTokenSource sets where the bearer token comes from. Call it before the
// client is shared between goroutines.
func (c *HTTPClient) UseTokenSource(ts TokenSource) {
	c.transport.tokens = ts
}

func (c *HTTPClient) CreateSession(ctx context.Context, creds models.Credentials) (models.Session, error) {
	var s models.Session
	if err := c.doJSON(ctx, http.MethodPost, "/sessions", creds, &s); err != nil {
		return models.Session{}, err
	}
	return s, nil
}

func (c *HTTPClient) CreateUser(ctx context.Context, in models.RegistrationInput) (models.User, error) {
	var u models.User
	if err := c.doJSON(ctx, http.MethodPost, "/users", in, &u); err != nil {
		return models.User{}, err
	}
	return u, nil
}

func (c *HTTPClient) ForgotPassword(ctx context.Context, in models.ForgotPasswordInput) error {
	return c.doJSON(ctx, http.MethodPost, "/password/forgot", in, nil)
}

func (c *HTTPClient) ResetPassword(ctx context.Context, in models.ResetPasswordInput) error {
	return c.doJSON(ctx, http.MethodPost, "/password/reset", in, nil)
}

func (c *HTTPClient) UpdateProfile(ctx context.Context, in models.ProfileUpdateInput) (models.User, error) {
	var u models.User
	if err := c.doJSON(ctx, http.MethodPut, "/profile", in.WithoutPasswordChange(), &u); err != nil {
		return models.User{}, err
	}
	return u, nil
}

func (c *HTTPClient) UpdateAvatar(ctx context.Context, file models.AvatarFile) (models.User, error) {
	body, contentType, err := netx.MultipartFile("avatar", file.Name, file.Data)
	if err != nil {
		return models.User{}, err
	}

	var u models.User
	if err := c.do(ctx, http.MethodPatch, "/users/avatar", body, contentType, &u); err != nil {
		return models.User{}, err
	}
	return u, nil
}

func (c *HTTPClient) doJSON(ctx context.Context, method, path string, in, out any) error {
	b, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("encode %s %s: %w", method, path, err)
	}
	return c.do(ctx, method, path, bytes.NewReader(b), "application/json", out)
}

func (c *HTTPClient) do(ctx context.Context, method, path string, body io.Reader, contentType string, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL.JoinPath(path).String(), body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeAPIError(resp)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s %s response: %w", method, path, err)
	}
	return nil
}

func decodeAPIError(resp *http.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}

	var body struct {
		Status  string `json:"status"`
		Message string `json:"message"`
	}
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if json.Unmarshal(raw, &body) == nil {
		apiErr.Message = body.Message
	}
	return apiErr
}
