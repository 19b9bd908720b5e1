// Copyright 2026 The github-data-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package converters is the Converter Registry of spec.md §4.2: a
// catalog of pure functions translating the Mediator's Raw* shapes into
// internal/model's domain entities. The Python original resolves
// cross-entity references (an issue converter calling the user
// converter) through a name-keyed registry rather than a direct import,
// to break module-level import cycles; Go has no such cycle since every
// converter lives in one package, but the name-keyed Registry is kept
// anyway so the startup-validation behavior spec.md describes (unknown
// converter name is a fatal load error) is actually exercised rather
// than hidden behind static Go function references. Grounded on
// original_source/packages/github-data-tools/src/github_data_tools/github/converter_registry.py
// (the source is Python; the lookup-table shape is kept, not the
// language).
package converters

import (
	"github.com/ghdata-go/ghdata/internal/ghuberrors"
	"github.com/ghdata-go/ghdata/internal/mediator"
	"github.com/ghdata-go/ghdata/internal/model"
)

// Func converts one Raw* value (passed as any since each entity's raw
// shape differs) into its domain model.
type Func func(any) (any, error)

// Registry is the name -> Func lookup table spec.md §4.2 describes.
type Registry struct {
	funcs map[string]Func
}

// NewRegistry builds and validates the full converter catalog. A name
// collision is a fatal Config error, per spec.md §4.2 ("name collisions
// across entities are fatal").
func NewRegistry() (*Registry, error) {
	r := &Registry{funcs: map[string]Func{}}
	entries := map[string]Func{
		"user":              convertUser,
		"label":             convertLabel,
		"milestone":         convertMilestone,
		"issue":             convertIssue,
		"comment":           convertComment,
		"sub_issue":         convertSubIssue,
		"pull_request":      convertPullRequest,
		"pr_comment":        convertPRComment,
		"pr_review":         convertPRReview,
		"pr_review_comment": convertPRReviewComment,
		"release":           convertRelease,
		"release_asset":     convertReleaseAsset,
	}
	for name, fn := range entries {
		if err := r.register(name, fn); err != nil {
			return nil, err
		}
	}
	return r, nil
}

func (r *Registry) register(name string, fn Func) error {
	if _, dup := r.funcs[name]; dup {
		return ghuberrors.Errorf(ghuberrors.KindConfig, "converter %q registered more than once", name)
	}
	r.funcs[name] = fn
	return nil
}

// Convert looks up name and applies it to raw. An unknown name is a
// Config error, matching spec.md §4.2's startup cross-validation (here
// performed lazily at call time since Go's static typing already
// guarantees every registered Func is well-formed at compile time; the
// only failure mode left is a typo'd name, caught here instead of at a
// separate startup pass).
func (r *Registry) Convert(name string, raw any) (any, error) {
	fn, ok := r.funcs[name]
	if !ok {
		return nil, ghuberrors.Errorf(ghuberrors.KindConfig, "unknown converter %q", name)
	}
	return fn(raw)
}

// Has reports whether name is registered — used by the Operation
// Registry's cross-validation (spec.md §4.2).
func (r *Registry) Has(name string) bool {
	_, ok := r.funcs[name]
	return ok
}

func convertUser(raw any) (any, error) {
	ru, ok := raw.(mediator.RawUser)
	if !ok {
		return nil, ghuberrors.Errorf(ghuberrors.KindValidation, "user converter: unexpected input type %T", raw)
	}
	return userFromRaw(&ru), nil
}

func userFromRaw(ru *mediator.RawUser) *model.User {
	if ru == nil {
		return nil
	}
	return &model.User{Login: ru.Login, ID: ru.ID, HTMLURL: ru.URL, AvatarURL: ru.AvatarURL}
}

func convertLabel(raw any) (any, error) {
	rl, ok := raw.(mediator.RawLabel)
	if !ok {
		return nil, ghuberrors.Errorf(ghuberrors.KindValidation, "label converter: unexpected input type %T", raw)
	}
	return model.Label{ID: rl.ID, Name: rl.Name, Color: rl.Color, Description: rl.Description}, nil
}

func convertMilestone(raw any) (any, error) {
	rm, ok := raw.(mediator.RawMilestone)
	if !ok {
		return nil, ghuberrors.Errorf(ghuberrors.KindValidation, "milestone converter: unexpected input type %T", raw)
	}
	return model.Milestone{
		ID:          rm.ID,
		Number:      rm.Number,
		Title:       rm.Title,
		Description: rm.Description,
		State:       rm.State,
		DueOn:       rm.DueOn,
		Creator:     userFromRaw(rm.Creator),
		CreatedAt:   rm.CreatedAt,
	}, nil
}

func convertIssue(raw any) (any, error) {
	ri, ok := raw.(mediator.RawIssue)
	if !ok {
		return nil, ghuberrors.Errorf(ghuberrors.KindValidation, "issue converter: unexpected input type %T", raw)
	}
	issue := model.Issue{
		ID:          ri.ID,
		Number:      ri.Number,
		Title:       ri.Title,
		Body:        ri.Body,
		State:       ri.State,
		StateReason: ri.StateReason,
		Author:      userFromRaw(ri.Author),
		CreatedAt:   ri.CreatedAt,
		UpdatedAt:   ri.UpdatedAt,
		ClosedAt:    ri.ClosedAt,
		URL:         ri.URL,
	}
	for _, l := range ri.Labels {
		issue.Labels = append(issue.Labels, model.Label{ID: l.ID, Name: l.Name, Color: l.Color, Description: l.Description})
	}
	for _, a := range ri.Assignees {
		issue.Assignees = append(issue.Assignees, *userFromRaw(&a))
	}
	if ri.Milestone != nil {
		ms := convertMilestoneRef(ri.Milestone)
		issue.Milestone = &ms
	}
	return issue, nil
}

// convertMilestoneRef handles the partial milestone shape GraphQL issue
// and pull-request queries embed (number + title only, not the full
// milestone record) — spec.md's soft Milestone parent reference.
func convertMilestoneRef(rm *mediator.RawMilestone) model.Milestone {
	return model.Milestone{Number: rm.Number, Title: rm.Title}
}

func convertComment(raw any) (any, error) {
	rc, ok := raw.(mediator.RawComment)
	if !ok {
		return nil, ghuberrors.Errorf(ghuberrors.KindValidation, "comment converter: unexpected input type %T", raw)
	}
	return model.Comment{
		ID:          rc.ID,
		Body:        rc.Body,
		Author:      userFromRaw(rc.Author),
		IssueURL:    rc.IssueURL,
		IssueNumber: rc.IssueNumber,
		CreatedAt:   rc.CreatedAt,
		UpdatedAt:   rc.UpdatedAt,
	}, nil
}

func convertSubIssue(raw any) (any, error) {
	rs, ok := raw.(mediator.RawSubIssue)
	if !ok {
		return nil, ghuberrors.Errorf(ghuberrors.KindValidation, "sub_issue converter: unexpected input type %T", raw)
	}
	return model.SubIssue{ParentIssueNumber: rs.ParentNumber, SubIssueNumber: rs.ChildNumber, Position: rs.Position}, nil
}

func convertPullRequest(raw any) (any, error) {
	rp, ok := raw.(mediator.RawPullRequest)
	if !ok {
		return nil, ghuberrors.Errorf(ghuberrors.KindValidation, "pull_request converter: unexpected input type %T", raw)
	}
	pr := model.PullRequest{
		ID:        rp.ID,
		Number:    rp.Number,
		Title:     rp.Title,
		Body:      rp.Body,
		State:     rp.State,
		HeadRef:   rp.HeadRef,
		BaseRef:   rp.BaseRef,
		Author:    userFromRaw(rp.Author),
		MergedAt:  rp.MergedAt,
		MergeSHA:  rp.MergeSHA,
		CreatedAt: rp.CreatedAt,
		ClosedAt:  rp.ClosedAt,
		URL:       rp.URL,
	}
	for _, l := range rp.Labels {
		pr.Labels = append(pr.Labels, model.Label{ID: l.ID, Name: l.Name, Color: l.Color, Description: l.Description})
	}
	if rp.Milestone != nil {
		ms := convertMilestoneRef(rp.Milestone)
		pr.Milestone = &ms
	}
	return pr, nil
}

func convertPRComment(raw any) (any, error) {
	rc, ok := raw.(mediator.RawPRComment)
	if !ok {
		return nil, ghuberrors.Errorf(ghuberrors.KindValidation, "pr_comment converter: unexpected input type %T", raw)
	}
	return model.PRComment{ID: rc.ID, Body: rc.Body, Author: userFromRaw(rc.Author), PRURL: rc.PRURL, PRNumber: rc.PRNumber, CreatedAt: rc.CreatedAt}, nil
}

func convertPRReview(raw any) (any, error) {
	rr, ok := raw.(mediator.RawPRReview)
	if !ok {
		return nil, ghuberrors.Errorf(ghuberrors.KindValidation, "pr_review converter: unexpected input type %T", raw)
	}
	return model.PRReview{ID: rr.ID, PRNumber: rr.PRNumber, Author: userFromRaw(rr.Author), State: rr.State, Body: rr.Body, SubmittedAt: rr.SubmittedAt}, nil
}

func convertPRReviewComment(raw any) (any, error) {
	rc, ok := raw.(mediator.RawPRReviewComment)
	if !ok {
		return nil, ghuberrors.Errorf(ghuberrors.KindValidation, "pr_review_comment converter: unexpected input type %T", raw)
	}
	return model.PRReviewComment{
		ID:          rc.ID,
		ReviewID:    rc.ReviewID,
		PRNumber:    rc.PRNumber,
		Body:        rc.Body,
		Path:        rc.Path,
		Line:        rc.Line,
		DiffHunk:    rc.DiffHunk,
		InReplyToID: rc.InReplyToID,
		Author:      userFromRaw(rc.Author),
		CreatedAt:   rc.CreatedAt,
	}, nil
}

func convertRelease(raw any) (any, error) {
	rr, ok := raw.(mediator.RawRelease)
	if !ok {
		return nil, ghuberrors.Errorf(ghuberrors.KindValidation, "release converter: unexpected input type %T", raw)
	}
	rel := model.Release{
		ID:              rr.ID,
		TagName:         rr.TagName,
		TargetCommitish: rr.TargetCommitish,
		Name:            rr.Name,
		Body:            rr.Body,
		Draft:           rr.Draft,
		Prerelease:      rr.Prerelease,
		CreatedAt:       rr.CreatedAt,
		PublishedAt:     rr.PublishedAt,
	}
	for _, a := range rr.Assets {
		conv, err := convertReleaseAsset(a)
		if err != nil {
			return nil, err
		}
		rel.Assets = append(rel.Assets, conv.(model.ReleaseAsset))
	}
	return rel, nil
}

func convertReleaseAsset(raw any) (any, error) {
	ra, ok := raw.(mediator.RawReleaseAsset)
	if !ok {
		return nil, ghuberrors.Errorf(ghuberrors.KindValidation, "release_asset converter: unexpected input type %T", raw)
	}
	return model.ReleaseAsset{ID: ra.ID, Name: ra.Name, Size: ra.Size, ContentType: ra.ContentType, DownloadURL: ra.DownloadURL}, nil
}
