package model

import "errors"

var (
	// ErrNoTrends means the trend source returned nothing, which its fallback should prevent.
	ErrNoTrends = errors.New("no trending topics available")
	// ErrNoArticles means the article source returned nothing, which its fallback should prevent.
	ErrNoArticles = errors.New("no articles found")
	// ErrMediaFetch wraps transport and decoding failures of the media search.
	ErrMediaFetch = errors.New("media fetch failed")
	// ErrGenerate wraps failures of the generative-text call.
	ErrGenerate = errors.New("post generation failed")
	// ErrMissingConfig is returned on first use of an unset secret.
	ErrMissingConfig = errors.New("missing configuration")
	// ErrTimeout marks an external call that ran out of time.
	ErrTimeout = errors.New("external call timed out")
)
