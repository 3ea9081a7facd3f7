package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"atlas/internal/ai"
	"atlas/internal/modules/plan"
)

func main() {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		log.Fatal("GEMINI_API_KEY environment variable not set")
	}

	ctx := context.Background()
	provider, err := ai.NewGeminiProvider(ctx, apiKey)
	if err != nil {
		log.Fatalf("Failed to initialize AI provider: %v", err)
	}
	defer provider.Close()

	req := plan.PlanRequest{
		Origin:         "NYC",
		Destination:    "Tokyo",
		DepartTime:     "2025-03-01T00:00:00Z",
		TripLengthDays: 3,
		Preferences: &plan.Preference{
			TravelStyle: "food",
			Pace:        "relaxed",
		},
	}
	if err := req.Validate(); err != nil {
		log.Fatalf("Invalid request: %v", err)
	}

	raw, err := provider.GenerateText(ctx, plan.BuildPrompt(req))
	if err != nil {
		log.Fatalf("Generation error: %v", err)
	}

	resp, err := plan.ParseResponse(raw)
	if err != nil {
		log.Fatalf("Parse error: %v", err)
	}

	fmt.Printf("Destination: %s (%s - %s, %d days)\n", resp.Destination, resp.StartDate, resp.EndDate, resp.TotalDays)
	fmt.Printf("Overview: %s\n", resp.Overview)
	for _, day := range resp.Daily {
		fmt.Printf("\n%s: %s\n", day.Date, day.Summary)
		for _, line := range day.Schedule {
			fmt.Printf("  %s\n", line)
		}
	}
	fmt.Printf("\nPacking list: %v\n", resp.PackingList)
}
