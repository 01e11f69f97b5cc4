package model

// GeneratedPost is the final output of one run.
type GeneratedPost struct {
	Topic      string `json:"topic"`
	Post       string `json:"post"`
	MediaURL   string `json:"media_url,omitempty"`
	SourceLink string `json:"source_link"`
}
