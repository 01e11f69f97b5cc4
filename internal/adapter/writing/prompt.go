package writing

import (
	"fmt"
	"strings"
)

const postTemplate = `
Write a professional LinkedIn post under 150 words:
Topic: %s
Summary: %s
Include a strong opening, 1-2 concrete insights, and a closing call to action or question.
`

// BuildPrompt renders the fixed post instruction for a topic and summary.
func BuildPrompt(topic, summary string) string {
	return strings.TrimSpace(fmt.Sprintf(postTemplate, topic, summary))
}
