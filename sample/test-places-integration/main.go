package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/xavierca1/leadgenius/internal/infra/integration/places"
)

// Manual smoke test for the Places integration. Needs a real API key:
//
//	PLACES_API_KEY=... go run ./sample/test-places-integration
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using system environment")
	}

	apiKey := os.Getenv("PLACES_API_KEY")
	if apiKey == "" {
		log.Fatal("PLACES_API_KEY must be set")
	}

	category := "bakery"
	location := "Denver, CO"
	if len(os.Args) > 2 {
		category = os.Args[1]
		location = os.Args[2]
	}

	client := places.NewClient(apiKey)

	fmt.Printf("Searching for %q in %q...\n\n", category, location)

	results, err := client.Search(context.Background(), category, location, 5)
	if err != nil {
		log.Fatalf("search failed: %v", err)
	}

	for i, p := range results {
		fmt.Printf("%d. %s\n", i+1, p.Name)
		fmt.Printf("   Address: %s\n", p.Address)
		fmt.Printf("   Phone:   %s\n", p.Phone)
		fmt.Printf("   Website: %s\n\n", p.Website)
	}

	fmt.Printf("%d result(s)\n", len(results))
}
