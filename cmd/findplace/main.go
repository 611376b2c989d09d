package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"restaurant-pricing-service/internal/client"
	"restaurant-pricing-service/internal/config"
)

// findplace looks up the place ID for a restaurant so it can be fed to
// the analysis endpoint.
func main() {
	query := flag.String("query", "", "restaurant name to search for")
	lat := flag.String("lat", "", "latitude of the search center (defaults to config)")
	lng := flag.String("lng", "", "longitude of the search center (defaults to config)")
	flag.Parse()

	if *query == "" {
		log.Fatal("usage: findplace -query \"restaurant name\" [-lat ... -lng ...]")
	}

	cfg := config.Load()
	if *lat == "" {
		*lat = cfg.DefaultLatitude
	}
	if *lng == "" {
		*lng = cfg.DefaultLongitude
	}

	placesClient := client.NewPlacesClient(cfg.PlacesBaseURL, cfg.GoogleMapsAPIKey)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	restaurants, err := placesClient.SearchPlace(ctx, *query, *lat, *lng)
	if err != nil {
		log.Fatalf("search failed: %v", err)
	}

	if len(restaurants) == 0 {
		fmt.Println("no restaurants found")
		return
	}

	for _, r := range restaurants {
		fmt.Printf("%s\n  place_id: %s\n  address: %s\n  rating: %.1f (%d ratings)\n",
			r.Name, r.PlaceID, r.Address, r.Rating, r.UserRatingsTotal)
	}
}
