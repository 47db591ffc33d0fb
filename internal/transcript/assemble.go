package transcript

import "strings"

// NoTranscript is the placeholder text used when a response carries no
// transcript list. It is content, not an error: the pipeline still attempts
// to summarize it.
const NoTranscript = "No transcript available."

// Assemble joins all segment texts into one flat string, separated by single
// spaces and trimmed at both ends. The input is never mutated.
func Assemble(resp *Response) string {
	if resp == nil || resp.Transcripts == nil {
		return NoTranscript
	}

	var b strings.Builder
	for _, segment := range resp.Transcripts {
		b.WriteString(segment.Text)
		b.WriteString(" ")
	}

	return strings.TrimSpace(b.String())
}
