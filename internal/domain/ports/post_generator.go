package ports

import "context"

// PostGenerator drafts promotional text for a topic and article summary.
type PostGenerator interface {
	Generate(ctx context.Context, topic, summary string) (string, error)
}
