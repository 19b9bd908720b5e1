// Copyright 2026 The github-data-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mediator

import (
	"time"

	"github.com/google/go-github/v74/github"

	"github.com/ghdata-go/ghdata/internal/ghlog"
)

// rateLimitLowWatermark is the remaining-quota threshold below which the
// Mediator logs a warning, per spec.md §4.1.
const rateLimitLowWatermark = 100

// probeRateLimit logs the rate-limit warning described in spec.md §4.1,
// mirroring the teacher's own logGitHubRateLimits in
// cmd/gerritbot/gerritbot.go, which is called after every REST call.
func probeRateLimit(resp *github.Response) {
	if resp == nil {
		return
	}
	ghlog.Debugf("github: %d/%d calls remaining, reset in %v", resp.Rate.Remaining, resp.Rate.Limit, time.Until(resp.Rate.Reset.Time))
	if resp.Rate.Remaining < rateLimitLowWatermark {
		ghlog.Warnf("github: only %d/%d API calls remaining, resets in %v", resp.Rate.Remaining, resp.Rate.Limit, time.Until(resp.Rate.Reset.Time))
	}
}
