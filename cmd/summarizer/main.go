package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"jamesfarrell.me/youtube-summarizer/internal/config"
	"jamesfarrell.me/youtube-summarizer/internal/pipeline"
	"jamesfarrell.me/youtube-summarizer/internal/summary"
	"jamesfarrell.me/youtube-summarizer/internal/transcript"
)

func main() {
	videoID := flag.String("video_id", "", "YouTube video ID")
	searchAPIKey := flag.String("searchapi_key", "", "SearchAPI.io API key")
	openAIKey := flag.String("openai_key", "", "OpenAI API key")
	flag.Parse()

	// A .env file is optional for the CLI; flags, env vars and prompts remain.
	godotenv.Load()

	env, err := config.FromEnvironment()
	if err != nil {
		log.Fatalf("Failed to read environment: %v", err)
	}

	stdin := bufio.NewReader(os.Stdin)
	inputs := config.Resolve(config.Inputs{
		VideoID:      *videoID,
		SearchAPIKey: *searchAPIKey,
		OpenAIKey:    *openAIKey,
	}, env, func(label string) string {
		fmt.Print(label)
		line, _ := stdin.ReadString('\n')
		return strings.TrimSpace(line)
	})

	p := pipeline.New(
		transcript.NewClient(inputs.SearchAPIKey),
		summary.NewSummarizer(inputs.OpenAIKey),
		os.Stdout,
	)
	p.Run(context.Background(), inputs.VideoID)
}
