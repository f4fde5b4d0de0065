// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for pubmed-rag.
// Implements: the search query, literature record, chat message, and
// configuration shapes shared by the literature, summarization, report,
// and session packages.
package types

import (
	"fmt"
	"strings"
)

// Year bounds for SearchQuery.MinYear. The upper bound is the current
// year and is enforced by the "notfuture" validation.
const (
	EarliestYear = 2000
	DefaultYear  = 2023
)

// SearchQuery is one literature search issued by the user. It is created
// on submission and never modified afterwards.
type SearchQuery struct {
	// Topic is the free-text research topic.
	Topic string `json:"topic" yaml:"topic" validate:"required"`

	// MinYear restricts results to papers published in MinYear or later.
	MinYear int `json:"min_year" yaml:"min_year" validate:"min=2000,notfuture"`
}

// NewSearchQuery trims the topic and returns the query.
func NewSearchQuery(topic string, minYear int) SearchQuery {
	return SearchQuery{Topic: strings.TrimSpace(topic), MinYear: minYear}
}

// String renders the query the way progress messages show it.
func (q SearchQuery) String() string {
	return fmt.Sprintf("'%s' (%d-Present)", q.Topic, q.MinYear)
}
