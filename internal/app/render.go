package app

import (
	"encoding/json"
	"fmt"
	"io"

	"trendpost-bot/internal/config"
	"trendpost-bot/internal/domain/model"
)

const absent = "(none)"

func render(w io.Writer, post model.GeneratedPost, format string) error {
	if format == config.OutputJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(post)
	}

	_, err := fmt.Fprintf(w, "Topic: %s\n\nPost:\n%s\n\nMedia: %s\n\nSource: %s\n",
		post.Topic, post.Post, orAbsent(post.MediaURL), orAbsent(post.SourceLink))
	return err
}

func orAbsent(s string) string {
	if s == "" {
		return absent
	}
	return s
}
