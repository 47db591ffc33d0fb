package pipeline

import (
	"context"
	"fmt"
	"io"

	"jamesfarrell.me/youtube-summarizer/internal/transcript"
)

// FailedSummary is printed in place of a summary when the summarization
// service fails. The run still completes normally.
const FailedSummary = "Failed to generate summary."

type Fetcher interface {
	Fetch(ctx context.Context, videoID string) (*transcript.Response, error)
}

type Summarizer interface {
	Summarize(ctx context.Context, transcriptText string) (string, error)
}

// Pipeline runs fetch, assemble, summarize and print in strict sequence.
type Pipeline struct {
	fetcher    Fetcher
	summarizer Summarizer
	out        io.Writer
}

func New(fetcher Fetcher, summarizer Summarizer, out io.Writer) *Pipeline {
	return &Pipeline{
		fetcher:    fetcher,
		summarizer: summarizer,
		out:        out,
	}
}

// Run executes one pass over a single video. A fetch failure terminates the
// run before the summarizer is ever invoked; a summarization failure degrades
// to the FailedSummary placeholder inside the summary block.
func (p *Pipeline) Run(ctx context.Context, videoID string) {
	fmt.Fprintf(p.out, "Fetching transcript for video ID: %s...\n", videoID)

	resp, err := p.fetcher.Fetch(ctx, videoID)
	if err != nil {
		fmt.Fprintf(p.out, "Error fetching transcript: %v\n", err)
		fmt.Fprintln(p.out, "Failed to retrieve transcript. Please check the video ID and API key.")
		return
	}

	fmt.Fprintln(p.out, "Transcript fetched successfully!")
	fullTranscript := transcript.Assemble(resp)

	fmt.Fprintln(p.out, "Generating summary...")
	summaryText, err := p.summarizer.Summarize(ctx, fullTranscript)
	if err != nil {
		fmt.Fprintf(p.out, "Error generating summary: %v\n", err)
		summaryText = FailedSummary
	}

	fmt.Fprintln(p.out, "\n--- VIDEO SUMMARY ---")
	fmt.Fprintln(p.out)
	fmt.Fprintln(p.out, summaryText)
	fmt.Fprintln(p.out)
	fmt.Fprintln(p.out, "--------------------")
	fmt.Fprintln(p.out)
}
