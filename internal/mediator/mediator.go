// Copyright 2026 The github-data-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mediator is the API Mediator of spec.md §4.1: a narrow, typed
// method surface in front of GitHub's REST v3 and GraphQL v4 APIs,
// hiding pagination, conditional-request caching, client-side pacing and
// rate-limit retry from every caller above it. It is grounded on
// internal/task/milestones.go's GitHubClient{V3, V4} pairing and
// cmd/gerritbot/gerritbot.go's githubClient() transport construction.
package mediator

import (
	"context"
	"net/http"

	"github.com/google/go-github/v74/github"
	"github.com/gregjones/httpcache"
	"github.com/shurcooL/githubv4"
	"golang.org/x/oauth2"
	"golang.org/x/time/rate"

	"github.com/ghdata-go/ghdata/internal/mediator/cache"
)

// Mediator is the concrete, production API Mediator. Every method on it
// is safe to call repeatedly within one sequential run (spec.md §5); it
// is not designed for concurrent use from multiple goroutines.
type Mediator struct {
	v3    *github.Client
	v4    *githubv4.Client
	cache cache.Cache
	retry RetryPolicy

	// limiter paces outbound requests client-side in addition to the
	// reactive rate-limit retry in retry.go. The teacher only reacts to
	// rate-limit responses after the fact (logGitHubRateLimits); adding
	// proactive pacing here closes the gap a long-running bulk mirror
	// would otherwise hit against GitHub's secondary rate limits.
	limiter *rate.Limiter
}

// Option customizes a Mediator built by New.
type Option func(*Mediator)

// WithCache overrides the default in-memory read-result cache.
func WithCache(c cache.Cache) Option {
	return func(m *Mediator) { m.cache = c }
}

// WithRetryPolicy overrides the default retry policy.
func WithRetryPolicy(p RetryPolicy) Option {
	return func(m *Mediator) { m.retry = p }
}

// WithRateLimit overrides the default client-side pacing limiter.
func WithRateLimit(requestsPerSecond float64, burst int) Option {
	return func(m *Mediator) { m.limiter = rate.NewLimiter(rate.Limit(requestsPerSecond), burst) }
}

// New builds a Mediator authenticated with token. The transport chain —
// oauth2.Transport wrapping an httpcache.Transport — mirrors
// cmd/gerritbot/gerritbot.go's githubClient(), with httpcache added so
// conditional GETs that come back 304 don't count against the decoded
// read-result cache's job of skipping repeat work within a run.
func New(token string, opts ...Option) *Mediator {
	base := &oauth2.Transport{
		Source: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token}),
		Base:   httpcache.NewMemoryCacheTransport(),
	}
	httpClient := &http.Client{Transport: base}

	m := &Mediator{
		v3:      github.NewClient(httpClient),
		v4:      githubv4.NewClient(httpClient),
		cache:   cache.NewMemory(),
		retry:   DefaultRetryPolicy(),
		limiter: rate.NewLimiter(rate.Limit(10), 20),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// wait blocks until the client-side limiter admits one more request.
func (m *Mediator) wait(ctx context.Context) error {
	if m.limiter == nil {
		return nil
	}
	return m.limiter.Wait(ctx)
}

// do paces the call through the client-side limiter and then runs fn
// under the retry policy. Every REST and GraphQL method below routes
// through this instead of calling m.retry.Do directly.
func (m *Mediator) do(ctx context.Context, name string, fn func() error) error {
	if err := m.wait(ctx); err != nil {
		return err
	}
	return m.retry.Do(ctx, name, fn)
}
