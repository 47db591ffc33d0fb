package config

import "github.com/kelseyhightower/envconfig"

// Inputs holds the three values every run needs, after resolution.
type Inputs struct {
	VideoID      string
	SearchAPIKey string
	OpenAIKey    string
}

// Env mirrors the fallback environment variables.
type Env struct {
	VideoID      string `envconfig:"YOUTUBE_VIDEO_ID"`
	SearchAPIKey string `envconfig:"SEARCHAPI_KEY"`
	OpenAIKey    string `envconfig:"OPENAI_API_KEY"`
}

func FromEnvironment() (Env, error) {
	var env Env
	if err := envconfig.Process("", &env); err != nil {
		return Env{}, err
	}
	return env, nil
}

// PromptFunc asks the user for a value and returns what they typed.
type PromptFunc func(label string) string

// Resolve applies the precedence flag > environment > prompt. The prompt is
// consulted only for values still missing after the first two tiers, in the
// order: video ID, SearchAPI key, OpenAI key.
func Resolve(flags Inputs, env Env, prompt PromptFunc) Inputs {
	resolved := Inputs{
		VideoID:      firstNonEmpty(flags.VideoID, env.VideoID),
		SearchAPIKey: firstNonEmpty(flags.SearchAPIKey, env.SearchAPIKey),
		OpenAIKey:    firstNonEmpty(flags.OpenAIKey, env.OpenAIKey),
	}

	if resolved.VideoID == "" {
		resolved.VideoID = prompt("Enter YouTube video ID: ")
	}
	if resolved.SearchAPIKey == "" {
		resolved.SearchAPIKey = prompt("Enter SearchAPI.io API key: ")
	}
	if resolved.OpenAIKey == "" {
		resolved.OpenAIKey = prompt("Enter OpenAI API key: ")
	}

	return resolved
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
