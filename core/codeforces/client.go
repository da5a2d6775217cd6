package codeforces

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"slices"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Client is a read-only facade over the Codeforces API.
// Fetch failures are never returned as errors; they surface as Unknown results.
type Client struct {
	http       *http.Client
	baseURL    string
	maxRetries int
	retryDelay time.Duration
	caches     Caches
	snapshots  *SnapshotStore
	logger     *zap.Logger
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithSnapshots enables the object storage fallback for the global datasets.
func WithSnapshots(s *SnapshotStore) Option {
	return func(c *Client) { c.snapshots = s }
}

// NewClient creates a client serving the global datasets from caches.
func NewClient(cfg Config, caches Caches, logger *zap.Logger, opts ...Option) *Client {
	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 15
	}
	retries := cfg.MaxRetries
	if retries <= 0 {
		retries = 1
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	c := &Client{
		http:       &http.Client{Timeout: time.Duration(timeout) * time.Second},
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		maxRetries: retries,
		retryDelay: cfg.RetryDelay,
		caches:     caches,
		logger:     logger.Named("codeforces"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// RatingHistory returns the user's rated contests, most recent first.
func (c *Client) RatingHistory(ctx context.Context, handle string) Result[[]RatingEvent] {
	events, err := call[[]RatingEvent](ctx, c, "user.rating", url.Values{"handle": {handle}})
	if err != nil {
		c.logger.Warn("Rating history unavailable", zap.String("handle", handle), zap.Error(err))
		return UnknownResult[[]RatingEvent](err)
	}
	slices.Reverse(events)
	return KnownResult(events)
}

// Submissions returns the user's full submission log.
func (c *Client) Submissions(ctx context.Context, handle string) Result[[]Submission] {
	wire, err := call[[]submissionWire](ctx, c, "user.status", url.Values{"handle": {handle}})
	if err != nil {
		c.logger.Warn("Submission log unavailable", zap.String("handle", handle), zap.Error(err))
		return UnknownResult[[]Submission](err)
	}

	subs := make([]Submission, 0, len(wire))
	for _, w := range wire {
		contestID := w.ContestID
		if contestID == 0 {
			contestID = w.Problem.ContestID
		}
		subs = append(subs, Submission{
			ID:                  w.ID,
			ContestID:           contestID,
			ProblemIndex:        strings.ToUpper(w.Problem.Index),
			Verdict:             w.Verdict,
			CreationTimeSeconds: w.CreationTimeSeconds,
		})
	}
	return KnownResult(subs)
}

// Contests returns the global contest list.
func (c *Client) Contests(ctx context.Context) Result[[]Contest] {
	return cachedDataset(ctx, c, c.caches.Contests, func(ctx context.Context) ([]Contest, error) {
		return call[[]Contest](ctx, c, "contest.list", url.Values{"gym": {"false"}})
	})
}

// Problems returns the global problem catalog.
func (c *Client) Problems(ctx context.Context) Result[[]Problem] {
	return cachedDataset(ctx, c, c.caches.Problems, func(ctx context.Context) ([]Problem, error) {
		set, err := call[problemsetWire](ctx, c, "problemset.problems", nil)
		if err != nil {
			return nil, err
		}
		return set.Problems, nil
	})
}

// ContestProblems looks up one contest's name and sorted problem list. Uncached.
func (c *Client) ContestProblems(ctx context.Context, contestID int) Result[ContestProblems] {
	standings, err := call[standingsWire](ctx, c, "contest.standings", url.Values{
		"contestId": {strconv.Itoa(contestID)},
		"from":      {"1"},
		"count":     {"1"},
	})
	var refused *APIError
	if errors.As(err, &refused) {
		// The judge confirmed the contest does not exist (or has no visible problems).
		return KnownResult(ContestProblems{ContestID: contestID})
	}
	if err != nil {
		c.logger.Warn("Contest problems unavailable", zap.Int("contest_id", contestID), zap.Error(err))
		return UnknownResult[ContestProblems](err)
	}

	problems := slices.Clone(standings.Problems)
	SortProblems(problems)
	return KnownResult(ContestProblems{
		ContestID: contestID,
		Name:      standings.Contest.Name,
		Problems:  problems,
	})
}

// Stats returns the counters of both cache slots keyed by slot name.
func (c *Client) Stats() map[string]CacheStats {
	stats := make(map[string]CacheStats, 2)
	if c.caches.Contests != nil {
		stats[c.caches.Contests.Name()] = c.caches.Contests.Stats()
	}
	if c.caches.Problems != nil {
		stats[c.caches.Problems.Name()] = c.caches.Problems.Stats()
	}
	return stats
}

func cachedDataset[T any](ctx context.Context, c *Client, cache *Cache[T], fetch func(ctx context.Context) (T, error)) Result[T] {
	if cache == nil {
		v, err := fetch(ctx)
		if err != nil {
			return UnknownResult[T](err)
		}
		return KnownResult(v)
	}

	res := cache.Get(ctx, func(ctx context.Context) (T, error) {
		v, err := fetch(ctx)
		if err == nil && c.snapshots != nil {
			if serr := SaveSnapshot(ctx, c.snapshots, cache.Name(), v, time.Now()); serr != nil {
				c.logger.Warn("Failed to store catalog snapshot", zap.String("dataset", cache.Name()), zap.Error(serr))
			}
		}
		return v, err
	})

	switch {
	case res.Known() && res.Stale():
		c.logger.Warn("Serving stale dataset", zap.String("dataset", cache.Name()), zap.Error(res.Err))
		return res
	case res.Known():
		return res
	case c.snapshots == nil:
		c.logger.Warn("Dataset unavailable", zap.String("dataset", cache.Name()), zap.Error(res.Err))
		return res
	}

	v, savedAt, err := LoadSnapshot[T](ctx, c.snapshots, cache.Name())
	if err != nil {
		c.logger.Warn("Dataset unavailable", zap.String("dataset", cache.Name()), zap.Error(errors.Join(res.Err, err)))
		return res
	}
	// Seeded as expired so the next call retries the API before serving it again.
	cache.SetAt(v, time.Time{})
	c.logger.Info("Serving dataset from snapshot", zap.String("dataset", cache.Name()), zap.Time("saved_at", savedAt))
	return StaleResult(v, res.Err)
}

// APIError is a FAILED envelope: the judge answered and refused the request.
type APIError struct {
	Comment string
}

func (e *APIError) Error() string {
	return "api refused request: " + e.Comment
}

// statusError is a non-200 HTTP answer.
type statusError struct {
	code int
}

func (e *statusError) Error() string {
	return fmt.Sprintf("api returned status code %d", e.code)
}

// call performs one API method with retries and unwraps the envelope.
func call[T any](ctx context.Context, c *Client, method string, query url.Values) (T, error) {
	var zero T

	body, err := c.doRequest(ctx, method, query)
	if err != nil {
		return zero, err
	}

	var env envelope[T]
	if err := json.Unmarshal(body, &env); err != nil {
		return zero, fmt.Errorf("%s: failed to decode response: %w", method, err)
	}
	if env.Status != "OK" {
		return zero, fmt.Errorf("%s: %w", method, &APIError{Comment: env.Comment})
	}
	return env.Result, nil
}

func (c *Client) doRequest(ctx context.Context, method string, query url.Values) ([]byte, error) {
	endpoint := c.baseURL + "/" + method
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var lastErr error
	for attempt := 0; attempt < c.maxRetries; attempt++ {
		if attempt > 0 {
			c.logger.Debug("Retrying request", zap.String("method", method), zap.Int("attempt", attempt+1))
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(c.retryDelay * time.Duration(attempt)):
			}
		}

		body, err := c.fetchOnce(ctx, endpoint)
		if err == nil {
			return body, nil
		}
		lastErr = fmt.Errorf("%s: %w", method, err)

		if ctx.Err() != nil {
			return nil, lastErr
		}
		var se *statusError
		var ae *APIError
		if errors.As(err, &ae) || (errors.As(err, &se) && se.code != http.StatusTooManyRequests && se.code < http.StatusInternalServerError) {
			// Client errors (unknown handle, bad contest id) do not get better on retry.
			break
		}
	}
	return nil, lastErr
}

func (c *Client) fetchOnce(ctx context.Context, endpoint string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// Codeforces reports "handle not found" as 400 with a FAILED envelope.
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
		var env envelope[json.RawMessage]
		if resp.StatusCode == http.StatusBadRequest && json.Unmarshal(body, &env) == nil && env.Status == "FAILED" {
			return nil, &APIError{Comment: env.Comment}
		}
		return nil, &statusError{code: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	return body, nil
}
