package main

import (
	"context"
	"log"
	"time"

	"skycast/internal/auth"
	"skycast/internal/config"
	"skycast/internal/db"
	"skycast/internal/model"
	"skycast/internal/repository"
)

type seedUser struct {
	username string
	email    string
	password string
}

var demoUsers = []seedUser{
	{username: "alice", email: "alice@example.com", password: "password123"},
	{username: "bob", email: "bob@example.com", password: "password123"},
}

var demoSnapshots = []model.WeatherSnapshot{
	{CityName: "London", Temperature: 14.2, FeelsLike: 13.1, Description: "light rain", Humidity: 82, WindSpeed: 5.4, Icon: "10d", Pressure: 1009},
	{CityName: "Paris", Temperature: 17.8, FeelsLike: 17.2, Description: "clear sky", Humidity: 60, WindSpeed: 3.1, Icon: "01d", Pressure: 1015},
}

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(&model.User{}, &model.WeatherSnapshot{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	ctx := context.Background()
	users := repository.NewUserRepository(gormDB)
	snapshots := repository.NewWeatherRepository(gormDB)
	hasher := auth.NewBcryptHasher()

	created := 0
	for _, du := range demoUsers {
		exists, err := users.ExistsByUsername(ctx, du.username)
		if err != nil {
			log.Fatalf("Failed to check user %s: %v", du.username, err)
		}
		if exists {
			log.Printf("User %s already exists, skipping", du.username)
			continue
		}

		hash, err := hasher.Hash(du.password)
		if err != nil {
			log.Fatalf("Failed to hash password for %s: %v", du.username, err)
		}
		user := &model.User{
			Username:     du.username,
			Email:        du.email,
			PasswordHash: hash,
			Roles:        model.Roles{model.RoleUser},
		}
		if err := users.Create(ctx, user); err != nil {
			log.Fatalf("Failed to create user %s: %v", du.username, err)
		}
		created++
	}
	log.Printf("Seeded %d users", created)

	for i := range demoSnapshots {
		snapshot := demoSnapshots[i]
		snapshot.LastUpdated = time.Now()
		if err := snapshots.Save(ctx, &snapshot); err != nil {
			log.Fatalf("Failed to seed snapshot for %s: %v", snapshot.CityName, err)
		}
	}
	log.Printf("Seeded %d weather snapshots", len(demoSnapshots))

	log.Println("Seed completed")
}
