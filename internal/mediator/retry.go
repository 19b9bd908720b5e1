// Copyright 2026 The github-data-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mediator

import (
	"context"
	"errors"
	"math"
	"math/rand"
	"net/http"
	"time"

	"github.com/google/go-github/v74/github"

	"github.com/ghdata-go/ghdata/internal/ghlog"
	"github.com/ghdata-go/ghdata/internal/ghuberrors"
)

// RetryPolicy implements the exponential-backoff-with-jitter retry
// described in spec.md §4.1/§5: sleep min(base*2^attempt, maxDelay)
// seconds, perturbed by +/-25% jitter, up to maxRetries retries after the
// first attempt (maxRetries+1 calls of fn in all). It is
// hand-rolled rather than built on a backoff library, matching the
// teacher's own style of writing polling/retry loops directly
// (buildlet/gce.go, cmd/coordinator/gce.go) instead of importing one.
type RetryPolicy struct {
	Base       time.Duration
	MaxDelay   time.Duration
	MaxRetries int
	// Jitter, if nil, defaults to math/rand's package-level source.
	Jitter func() float64
}

// DefaultRetryPolicy matches spec.md §4.1's defaults.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		Base:       1 * time.Second,
		MaxDelay:   60 * time.Second,
		MaxRetries: 3,
	}
}

func (p RetryPolicy) jitter() float64 {
	if p.Jitter != nil {
		return p.Jitter()
	}
	return rand.Float64()
}

// delay returns the sleep duration for the given zero-based attempt
// number, jittered by +/-25%.
func (p RetryPolicy) delay(attempt int) time.Duration {
	base := float64(p.Base) * math.Pow(2, float64(attempt))
	if max := float64(p.MaxDelay); base > max {
		base = max
	}
	// jitter() in [0,1) maps to a perturbation in [-25%, +25%].
	perturbation := (p.jitter()*2 - 1) * 0.25
	d := base * (1 + perturbation)
	if d < 0 {
		d = 0
	}
	return time.Duration(d)
}

// Do runs fn, retrying on RateLimit-classified errors per the policy. A
// non-rate-limit error is surfaced immediately. After exhausting
// maxRetries, the last error is reclassified as Transport (spec.md §7).
func (p RetryPolicy) Do(ctx context.Context, name string, fn func() error) error {
	var lastErr error
	for attempt := 0; attempt <= p.MaxRetries; attempt++ {
		err := fn()
		if err == nil {
			return nil
		}
		lastErr = err

		kind := ClassifyError(err)
		if kind != ghuberrors.KindRateLimit {
			return err
		}
		if attempt == p.MaxRetries {
			break
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		d := p.delay(attempt)
		ghlog.Warnf("%s: rate limited, retrying in %v (attempt %d/%d)", name, d, attempt+1, p.MaxRetries)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(d):
		}
	}
	return ghuberrors.Errorf(ghuberrors.KindTransport, "%s: exhausted retries: %w", name, lastErr)
}

// ClassifyError maps an error from the go-github REST client (or a raw
// HTTP status) onto the spec.md §7 taxonomy.
func ClassifyError(err error) ghuberrors.Kind {
	if err == nil {
		return ghuberrors.KindUnknown
	}

	var rle *github.RateLimitError
	if errors.As(err, &rle) {
		return ghuberrors.KindRateLimit
	}
	var arle *github.AbuseRateLimitError
	if errors.As(err, &arle) {
		return ghuberrors.KindRateLimit
	}

	var er *github.ErrorResponse
	if errors.As(err, &er) && er.Response != nil {
		switch er.Response.StatusCode {
		case http.StatusNotFound:
			return ghuberrors.KindNotFound
		case http.StatusUnauthorized:
			return ghuberrors.KindFatal
		case http.StatusForbidden, http.StatusTooManyRequests:
			return ghuberrors.KindRateLimit
		}
		return ghuberrors.KindTransport
	}

	return ghuberrors.KindTransport
}
