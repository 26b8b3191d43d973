// Package assistant answers free-form questions through a generative
// language model.
package assistant

import (
	"context"
	"errors"
)

var (
	// ErrEmptyAnswer is returned when the model replies without any text.
	ErrEmptyAnswer = errors.New("assistant returned no content")

	// ErrNotConfigured is returned by Unconfigured.
	ErrNotConfigured = errors.New("assistant is not configured")
)

// Asker answers a single question. Implementations must honor ctx.
type Asker interface {
	Ask(ctx context.Context, question string) (string, error)
}

// Unconfigured stands in when no API key is available, so the rest of the
// server keeps working.
type Unconfigured struct{}

func (Unconfigured) Ask(context.Context, string) (string, error) {
	return "", ErrNotConfigured
}

func (Unconfigured) Close() error {
	return nil
}
