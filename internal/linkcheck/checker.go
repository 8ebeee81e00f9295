// Package linkcheck verifies the external links referenced by the site
// content.
package linkcheck

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/reprogrammability/tutorsite/internal/progress"
)

// Status classifies a checked link.
type Status string

const (
	StatusOK      Status = "ok"
	StatusWarning Status = "warning"
	StatusFailed  Status = "failed"
)

// Result is the outcome for one URL. Code is 0 when no response arrived.
type Result struct {
	URL       string
	Status    Status
	Code      int
	Detail    string
	CheckedAt time.Time
	Cached    bool
}

// Classify maps an HTTP status code to a link status. Access-controlled and
// rate-limited responses are warnings.
func Classify(code int) Status {
	switch {
	case code >= 200 && code < 400:
		return StatusOK
	case code == 401, code == 402, code == 403, code == 429:
		return StatusWarning
	default:
		return StatusFailed
	}
}

// needsGet reports whether a HEAD response is unreliable and the URL should
// be fetched with GET instead.
func needsGet(code int) bool {
	switch code {
	case http.StatusBadRequest, http.StatusForbidden, http.StatusMethodNotAllowed, http.StatusNotImplemented:
		return true
	}
	return code >= 500 && code != http.StatusBadGateway
}

// Options configures a Checker.
type Options struct {
	Concurrency int
	Timeout     time.Duration // per request
	Retries     int
	Backoff     time.Duration // multiplied by the attempt number
	UserAgent   string
}

// DefaultOptions returns the settings used when none are configured.
func DefaultOptions() Options {
	return Options{
		Concurrency: 8,
		Timeout:     10 * time.Second,
		Retries:     2,
		Backoff:     1500 * time.Millisecond,
		UserAgent:   "tutorsite-linkcheck/1.0",
	}
}

// Checker checks URLs concurrently.
type Checker struct {
	opts     Options
	client   *http.Client
	cache    *Cache
	ttl      time.Duration
	reporter progress.Reporter
	now      func() time.Time
}

// NewChecker creates a Checker. A zero Concurrency or Timeout falls back to
// DefaultOptions.
func NewChecker(opts Options) *Checker {
	def := DefaultOptions()
	if opts.Concurrency < 1 {
		opts.Concurrency = def.Concurrency
	}
	if opts.Timeout <= 0 {
		opts.Timeout = def.Timeout
	}
	if opts.Retries < 0 {
		opts.Retries = 0
	}
	if opts.UserAgent == "" {
		opts.UserAgent = def.UserAgent
	}
	return &Checker{
		opts:     opts,
		client:   &http.Client{},
		reporter: progress.Nop{},
		now:      time.Now,
	}
}

// WithCache enables skipping URLs that were ok within ttl.
func (c *Checker) WithCache(cache *Cache, ttl time.Duration) *Checker {
	c.cache = cache
	c.ttl = ttl
	return c
}

// WithReporter sets the progress reporter.
func (c *Checker) WithReporter(r progress.Reporter) *Checker {
	c.reporter = r
	return c
}

// WithClient replaces the HTTP client.
func (c *Checker) WithClient(client *http.Client) *Checker {
	c.client = client
	return c
}

// Check verifies every URL and returns the results in input order.
func (c *Checker) Check(ctx context.Context, urls []string) []Result {
	results := make([]Result, len(urls))
	if len(urls) == 0 {
		return results
	}

	c.reporter.Start(len(urls))
	defer c.reporter.Finish()

	sem := make(chan struct{}, c.opts.Concurrency)
	var processed int64
	var wg sync.WaitGroup
	for i, u := range urls {
		select {
		case <-ctx.Done():
			results[i] = Result{URL: u, Status: StatusFailed, Detail: ctx.Err().Error(), CheckedAt: c.now()}
			c.reporter.Update(int(atomic.AddInt64(&processed, 1)), u)
			continue
		case sem <- struct{}{}:
		}

		wg.Add(1)
		go func(i int, u string) {
			defer wg.Done()
			defer func() { <-sem }()

			results[i] = c.checkCached(ctx, u)
			c.reporter.Update(int(atomic.AddInt64(&processed, 1)), u)
		}(i, u)
	}
	wg.Wait()
	return results
}

func (c *Checker) checkCached(ctx context.Context, u string) Result {
	if c.cache != nil {
		r, ok, err := c.cache.Fresh(u, c.ttl, c.now())
		if err != nil {
			log.Printf("linkcheck: %v", err)
		}
		if ok {
			return r
		}
	}

	r := c.CheckURL(ctx, u)
	if c.cache != nil {
		if err := c.cache.Put(r); err != nil {
			log.Printf("linkcheck: %v", err)
		}
	}
	return r
}

// CheckURL checks one URL: HEAD first, GET when HEAD is unreliable, with
// retries and linear backoff on network errors and server errors.
func (c *Checker) CheckURL(ctx context.Context, u string) Result {
	var lastErr error
	for attempt := 0; attempt <= c.opts.Retries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return c.result(u, 0, ctx.Err().Error())
			case <-time.After(c.opts.Backoff * time.Duration(attempt)):
			}
		}

		code, err := c.request(ctx, u)
		if err != nil {
			lastErr = err
			if ctx.Err() != nil {
				break
			}
			continue
		}
		if code >= 500 && attempt < c.opts.Retries {
			continue
		}
		detail := ""
		if Classify(code) != StatusOK {
			detail = fmt.Sprintf("status %d", code)
		}
		return c.result(u, code, detail)
	}

	if lastErr == nil {
		lastErr = errors.New("request failed")
	}
	return c.result(u, 0, lastErr.Error())
}

// result builds a Result. Code 0 means no response and classifies as failed.
func (c *Checker) result(u string, code int, detail string) Result {
	return Result{URL: u, Status: Classify(code), Code: code, Detail: detail, CheckedAt: c.now()}
}

// request performs the HEAD request and its GET fallback and returns the
// final status code.
func (c *Checker) request(ctx context.Context, u string) (int, error) {
	code, err := c.do(ctx, http.MethodHead, u)
	if err != nil {
		return 0, err
	}
	if needsGet(code) {
		return c.do(ctx, http.MethodGet, u)
	}
	return code, nil
}

func (c *Checker) do(ctx context.Context, method, u string) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, c.opts.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, method, u, nil)
	if err != nil {
		return 0, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("User-Agent", c.opts.UserAgent)
	if method == http.MethodGet {
		req.Header.Set("Range", "bytes=0-64")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 1<<10))
	return resp.StatusCode, nil
}

// Summary counts results by status.
type Summary struct {
	Total   int
	OK      int
	Warning int
	Failed  int
	Cached  int
}

// Summarize tallies results.
func Summarize(results []Result) Summary {
	var s Summary
	for _, r := range results {
		s.Total++
		if r.Cached {
			s.Cached++
		}
		switch r.Status {
		case StatusOK:
			s.OK++
		case StatusWarning:
			s.Warning++
		default:
			s.Failed++
		}
	}
	return s
}
