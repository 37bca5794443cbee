// Package supabase implements the rowstore port against the hosted
// backend: GoTrue password sessions and PostgREST row endpoints.
package supabase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/ratelimit"
	"resty.dev/v3"

	"github.com/CristiandeOliveiraAbreu/DinheiroGlobal/internal/config"
	"github.com/CristiandeOliveiraAbreu/DinheiroGlobal/internal/logger"
	"github.com/CristiandeOliveiraAbreu/DinheiroGlobal/internal/mapper"
	"github.com/CristiandeOliveiraAbreu/DinheiroGlobal/internal/rowstore"
)

const (
	_tokenURL = "/auth/v1/token"
	_restPath = "/rest/v1"
)

type apiError struct {
	Message string `json:"message"`
	Code    string `json:"code"`
	Details string `json:"details"`
	// GoTrue uses a different error shape.
	ErrorDescription string `json:"error_description"`
}

func (e *apiError) String() string {
	if e.Message != "" {
		return e.Message
	}
	if e.ErrorDescription != "" {
		return e.ErrorDescription
	}
	return "unknown backend error"
}

type session struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
	User        struct {
		ID    string `json:"id"`
		Email string `json:"email"`
	} `json:"user"`
}

type Client struct {
	c   *resty.Client
	cfg config.SupabaseConfig

	rateLimiter ratelimit.Limiter
	logger      logger.Logger

	mu      sync.RWMutex
	session *session
}

func NewClient(cfg config.SupabaseConfig, logger logger.Logger) *Client {
	client := resty.New().
		SetLogger(logger).
		SetBaseURL(cfg.URL).
		SetHeader("apikey", cfg.AnonKey)

	return &Client{
		c:           client,
		cfg:         cfg,
		rateLimiter: ratelimit.New(cfg.RequestsPerMinute, ratelimit.Per(1*time.Minute)),
		logger:      logger,
	}
}

// SignIn obtains a password session. Every data operation requires one.
func (c *Client) SignIn(ctx context.Context) error {
	if c.cfg.Email == "" || c.cfg.Password == "" {
		return fmt.Errorf("empty supabase credentials")
	}

	c.rateLimiter.Take()
	resp, err := c.c.R().
		SetQueryParam("grant_type", "password").
		SetBody(map[string]string{
			"email":    c.cfg.Email,
			"password": c.cfg.Password,
		}).
		SetResult(&session{}).
		SetError(&apiError{}).
		SetContext(ctx).
		Post(_tokenURL)
	if err != nil {
		return fmt.Errorf("%w: can't send sign-in request", err)
	}
	defer resp.Body.Close()

	if resp.IsError() {
		return fmt.Errorf("%s: sign-in rejected", resp.Error().(*apiError).String())
	}

	s := resp.Result().(*session)
	if s.AccessToken == "" || s.User.ID == "" {
		return fmt.Errorf("sign-in response missing token or user")
	}

	c.mu.Lock()
	c.session = s
	c.mu.Unlock()

	c.logger.Infof("signed in as %s", s.User.Email)
	return nil
}

// UserID implements rowstore.Session.
func (c *Client) UserID() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.session == nil {
		return ""
	}
	return c.session.User.ID
}

func (c *Client) auth() (token, userID string, err error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.session == nil {
		return "", "", rowstore.ErrNoSession
	}
	return c.session.AccessToken, c.session.User.ID, nil
}

func (c *Client) Select(ctx context.Context, collection string) ([]mapper.Record, error) {
	token, userID, err := c.auth()
	if err != nil {
		return nil, err
	}

	var rows []mapper.Record
	c.rateLimiter.Take()
	resp, err := c.c.R().
		SetHeader("Authorization", "Bearer "+token).
		SetQueryParams(map[string]string{
			"select":  "*",
			"user_id": "eq." + userID,
		}).
		SetResult(&rows).
		SetError(&apiError{}).
		SetContext(ctx).
		Get(_restPath + "/" + collection)
	if err != nil {
		return nil, fmt.Errorf("%w: can't select %s", err, collection)
	}
	defer resp.Body.Close()

	c.logger.Debugf("select %s: %s in %s", collection, resp.Status(), resp.Duration())

	if resp.IsError() {
		return nil, fmt.Errorf("%s: can't select %s", resp.Error().(*apiError).String(), collection)
	}

	return rows, nil
}

func (c *Client) Insert(ctx context.Context, collection string, rec mapper.Record) (mapper.Record, error) {
	token, userID, err := c.auth()
	if err != nil {
		return nil, err
	}
	rec["user_id"] = userID

	var inserted []mapper.Record
	c.rateLimiter.Take()
	resp, err := c.c.R().
		SetHeader("Authorization", "Bearer "+token).
		SetHeader("Prefer", "return=representation").
		SetBody(rec).
		SetResult(&inserted).
		SetError(&apiError{}).
		SetContext(ctx).
		Post(_restPath + "/" + collection)
	if err != nil {
		return nil, fmt.Errorf("%w: can't insert into %s", err, collection)
	}
	defer resp.Body.Close()

	if resp.IsError() {
		return nil, fmt.Errorf("%s: can't insert into %s", resp.Error().(*apiError).String(), collection)
	}
	if len(inserted) == 0 {
		return nil, fmt.Errorf("insert into %s returned no row", collection)
	}

	return inserted[0], nil
}

func (c *Client) Upsert(ctx context.Context, collection string, rec mapper.Record) error {
	token, userID, err := c.auth()
	if err != nil {
		return err
	}
	rec["user_id"] = userID

	c.rateLimiter.Take()
	resp, err := c.c.R().
		SetHeader("Authorization", "Bearer "+token).
		SetHeader("Prefer", "resolution=merge-duplicates").
		SetBody(rec).
		SetError(&apiError{}).
		SetContext(ctx).
		Post(_restPath + "/" + collection)
	if err != nil {
		return fmt.Errorf("%w: can't upsert into %s", err, collection)
	}
	defer resp.Body.Close()

	if resp.IsError() {
		return fmt.Errorf("%s: can't upsert into %s", resp.Error().(*apiError).String(), collection)
	}

	return nil
}

func (c *Client) Update(ctx context.Context, collection, id string, patch mapper.Record) error {
	token, userID, err := c.auth()
	if err != nil {
		return err
	}

	c.rateLimiter.Take()
	resp, err := c.c.R().
		SetHeader("Authorization", "Bearer "+token).
		SetQueryParams(map[string]string{
			"id":      "eq." + id,
			"user_id": "eq." + userID,
		}).
		SetBody(patch).
		SetError(&apiError{}).
		SetContext(ctx).
		Patch(_restPath + "/" + collection)
	if err != nil {
		return fmt.Errorf("%w: can't update %s/%s", err, collection, id)
	}
	defer resp.Body.Close()

	if resp.IsError() {
		return fmt.Errorf("%s: can't update %s/%s", resp.Error().(*apiError).String(), collection, id)
	}

	return nil
}

func (c *Client) Delete(ctx context.Context, collection, id string) error {
	token, userID, err := c.auth()
	if err != nil {
		return err
	}

	c.rateLimiter.Take()
	resp, err := c.c.R().
		SetHeader("Authorization", "Bearer "+token).
		SetQueryParams(map[string]string{
			"id":      "eq." + id,
			"user_id": "eq." + userID,
		}).
		SetError(&apiError{}).
		SetContext(ctx).
		Delete(_restPath + "/" + collection)
	if err != nil {
		return fmt.Errorf("%w: can't delete %s/%s", err, collection, id)
	}
	defer resp.Body.Close()

	if resp.IsError() {
		return fmt.Errorf("%s: can't delete %s/%s", resp.Error().(*apiError).String(), collection, id)
	}

	return nil
}
