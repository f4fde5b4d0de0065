// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package httputil provides HTTP helpers shared across clients.
package httputil

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// MaxBodyBytes bounds how much of a response body GetBody reads.
var MaxBodyBytes int64 = 16 << 20

// errorSnippetLen bounds the response body quoted in a StatusError.
const errorSnippetLen = 200

// StatusError reports a response with a status other than 200 OK.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("HTTP %d", e.Code)
	}
	return fmt.Sprintf("HTTP %d: %s", e.Code, e.Body)
}

// GetBody issues a single GET request and returns the response body.
// A non-200 status yields a *StatusError carrying the start of the body.
// There is no retry: the caller decides what a failure means.
func GetBody(ctx context.Context, client *http.Client, reqURL, userAgent string) ([]byte, error) {
	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	if userAgent != "" {
		req.Header.Set("User-Agent", userAgent)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, MaxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		snippet := strings.TrimSpace(string(body))
		if len(snippet) > errorSnippetLen {
			snippet = snippet[:errorSnippetLen] + "..."
		}
		return nil, &StatusError{Code: resp.StatusCode, Body: snippet}
	}
	return body, nil
}
