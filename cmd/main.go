package main

import (
	"database/sql"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
	_ "github.com/go-sql-driver/mysql"

	"restaurant-pricing-service/internal/api"
	"restaurant-pricing-service/internal/client"
	"restaurant-pricing-service/internal/config"
	"restaurant-pricing-service/internal/repository"
	"restaurant-pricing-service/internal/router"
	"restaurant-pricing-service/internal/service"
	"restaurant-pricing-service/migrations"
)

func connectDB(dsn string) (*sql.DB, error) {
	var db *sql.DB
	var err error
	for i := 0; i < 10; i++ {
		db, err = sql.Open("mysql", dsn)
		if err == nil {
			err = db.Ping()
			if err == nil {
				return db, nil
			}
		}
		log.Printf("Retry %d: failed to connect to DB: %v", i+1, err)
		time.Sleep(3 * time.Second)
	}
	return nil, err
}

func main() {
	cfg := config.Load()

	db, err := connectDB(cfg.MySQLDSN)
	if err != nil {
		panic(err)
	}

	if err := migrations.AutoMigrate(3, db); err != nil {
		log.Fatalf("Failed to migrate tables: %v", err)
	}

	rdb := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
	})

	kafkaWriter := config.NewKafkaWriter("pricing-analysis-topic")

	placesClient := client.NewPlacesClient(cfg.PlacesBaseURL, cfg.GoogleMapsAPIKey)
	weatherClient := client.NewWeatherClient(cfg.WeatherBaseURL, cfg.OpenWeatherAPIKey)
	busyProvider := client.NewFixedBusyLevelProvider()

	repo := repository.NewMySQLRepository(db)
	analysisService := service.NewAnalysisService(placesClient, weatherClient, busyProvider, repo, rdb, kafkaWriter)
	analysisHandler := api.NewAnalysisHandler(analysisService, []byte(cfg.JWTSecret), cfg.OwnerKey, cfg.DefaultLatitude, cfg.DefaultLongitude)

	e := router.New(analysisHandler, []byte(cfg.JWTSecret))

	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
