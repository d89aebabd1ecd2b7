package main

import (
	"log"
	"strings"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"studio/internal/app/ds"
	"studio/internal/app/dsn"
)

func main() {
	// Загрузка переменных окружения из .env файла
	_ = godotenv.Load()

	dsnStr := dsn.FromEnv()

	var dialector gorm.Dialector
	if strings.HasPrefix(dsnStr, "postgres://") || strings.HasPrefix(dsnStr, "postgresql://") || strings.HasPrefix(dsnStr, "host=") {
		dialector = postgres.Open(dsnStr)
	} else {
		dialector = sqlite.Open(dsnStr)
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	log.Println("Connected to database successfully")

	// Миграция всех моделей
	err = db.AutoMigrate(
		&ds.Group{},
		&ds.Client{},
		&ds.Service{},
		&ds.Order{},
		&ds.OrderItem{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	log.Println("Database migration completed successfully")
}
