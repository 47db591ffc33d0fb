package transcript

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

const defaultBaseURL = "https://www.searchapi.io/api/v1/search"

// Segment is a single timed piece of a video transcript.
type Segment struct {
	Text     string  `json:"text"`
	Start    float64 `json:"start"`
	Duration float64 `json:"duration"`
}

// Response is the transcript search result. Only the transcripts list is
// interpreted; a nil list means the response did not carry one.
type Response struct {
	Transcripts []Segment `json:"transcripts"`
}

type Client struct {
	// BaseURL can be pointed at a test server.
	BaseURL    string
	HTTPClient *http.Client
	apiKey     string
}

func NewClient(apiKey string) *Client {
	return &Client{
		BaseURL:    defaultBaseURL,
		HTTPClient: &http.Client{},
		apiKey:     apiKey,
	}
}

// Fetch retrieves the transcript for a YouTube video via SearchAPI.io.
func (c *Client) Fetch(ctx context.Context, videoID string) (*Response, error) {
	params := url.Values{}
	params.Set("engine", "youtube_transcripts")
	params.Set("video_id", videoID)
	params.Set("api_key", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error sending request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading response: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("unexpected status code: %d, body: %s", resp.StatusCode, body)
	}

	var result Response
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("error parsing response: %w", err)
	}

	return &result, nil
}
