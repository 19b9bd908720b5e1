// Copyright 2026 The github-data-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mediator

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/google/go-github/v74/github"

	"github.com/ghdata-go/ghdata/internal/ghuberrors"
)

func TestClassifyError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ghuberrors.Kind
	}{
		{"rate limit error", &github.RateLimitError{}, ghuberrors.KindRateLimit},
		{"abuse rate limit error", &github.AbuseRateLimitError{}, ghuberrors.KindRateLimit},
		{"404", &github.ErrorResponse{Response: &http.Response{StatusCode: http.StatusNotFound}}, ghuberrors.KindNotFound},
		{"401", &github.ErrorResponse{Response: &http.Response{StatusCode: http.StatusUnauthorized}}, ghuberrors.KindFatal},
		{"403", &github.ErrorResponse{Response: &http.Response{StatusCode: http.StatusForbidden}}, ghuberrors.KindRateLimit},
		{"429", &github.ErrorResponse{Response: &http.Response{StatusCode: http.StatusTooManyRequests}}, ghuberrors.KindRateLimit},
		{"500", &github.ErrorResponse{Response: &http.Response{StatusCode: http.StatusInternalServerError}}, ghuberrors.KindTransport},
		{"unclassifiable", errors.New("boom"), ghuberrors.KindTransport},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := ClassifyError(tc.err); got != tc.want {
				t.Errorf("ClassifyError(%v) = %v, want %v", tc.err, got, tc.want)
			}
		})
	}
}

func TestRetryPolicyDoSucceedsAfterRateLimitRetries(t *testing.T) {
	p := RetryPolicy{Base: 0, MaxDelay: 0, MaxRetries: 3, Jitter: func() float64 { return 0.5 }}
	attempts := 0
	err := p.Do(context.Background(), "op", func() error {
		attempts++
		if attempts < 3 {
			return &github.RateLimitError{}
		}
		return nil
	})
	if err != nil {
		t.Fatalf("Do() error = %v, want nil", err)
	}
	if attempts != 3 {
		t.Errorf("attempts = %d, want 3", attempts)
	}
}

func TestRetryPolicyDoReturnsNonRateLimitErrorImmediately(t *testing.T) {
	p := RetryPolicy{Base: 0, MaxDelay: 0, MaxRetries: 3}
	attempts := 0
	sentinel := errors.New("not found")
	err := p.Do(context.Background(), "op", func() error {
		attempts++
		return sentinel
	})
	if !errors.Is(err, sentinel) {
		t.Errorf("Do() error = %v, want the original unwrapped error", err)
	}
	if attempts != 1 {
		t.Errorf("attempts = %d, want 1 (no retry on non-rate-limit error)", attempts)
	}
}

func TestRetryPolicyDoExhaustsRetries(t *testing.T) {
	p := RetryPolicy{Base: 0, MaxDelay: 0, MaxRetries: 2, Jitter: func() float64 { return 0.5 }}
	attempts := 0
	err := p.Do(context.Background(), "op", func() error {
		attempts++
		return &github.RateLimitError{}
	})
	if err == nil {
		t.Fatalf("Do() error = nil, want an error after exhausting retries")
	}
	if attempts != p.MaxRetries+1 {
		t.Errorf("attempts = %d, want %d", attempts, p.MaxRetries+1)
	}
	if ghuberrors.KindOf(err) != ghuberrors.KindTransport {
		t.Errorf("exhausted retries must be reclassified as Transport, got %v", ghuberrors.KindOf(err))
	}
}

func TestRetryPolicyDoRespectsContextCancellation(t *testing.T) {
	p := RetryPolicy{Base: 0, MaxDelay: 0, MaxRetries: 3, Jitter: func() float64 { return 0.5 }}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	attempts := 0
	err := p.Do(ctx, "op", func() error {
		attempts++
		return &github.RateLimitError{}
	})
	if err == nil {
		t.Fatalf("Do() error = nil, want context.Canceled")
	}
	if attempts != 1 {
		t.Errorf("attempts = %d, want 1 (cancellation checked before first sleep)", attempts)
	}
}
