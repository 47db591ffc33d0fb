package main

import (
	"log"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"jamesfarrell.me/youtube-summarizer/internal/api"
	"jamesfarrell.me/youtube-summarizer/internal/api/handlers"
	"jamesfarrell.me/youtube-summarizer/internal/summary"
	"jamesfarrell.me/youtube-summarizer/internal/transcript"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Error loading .env file: %v", err)
	}

	searchAPIKey := os.Getenv("SEARCHAPI_KEY")
	openAIKey := os.Getenv("OPENAI_API_KEY")
	serviceKey := os.Getenv("SERVICE_API_KEY")
	if searchAPIKey == "" || openAIKey == "" || serviceKey == "" {
		log.Fatal("SEARCHAPI_KEY, OPENAI_API_KEY and SERVICE_API_KEY environment variables must be set")
	}

	summaryHandler := handlers.NewSummaryHandler(
		transcript.NewClient(searchAPIKey),
		summary.NewSummarizer(openAIKey),
	)
	router := api.NewRouter(summaryHandler, serviceKey)

	addr := ":8080"
	if port := os.Getenv("PORT"); port != "" {
		addr = ":" + port
	}

	log.Printf("Starting HTTP server on %s...", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatalf("HTTP server error: %v", err)
	}
}
