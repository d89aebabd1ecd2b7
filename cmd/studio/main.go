package main

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"studio/internal/app/config"
	"studio/internal/app/dsn"
	"studio/internal/app/handler"
	"studio/internal/app/repository"
	"studio/internal/app/storage"
	"studio/internal/pkg"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatalf("Failed to parse config: %v", err)
	}

	repo, err := repository.New(dsn.FromEnv())
	if err != nil {
		logrus.Fatalf("Failed to init repository: %v", err)
	}

	// MinIO необязателен: без него изображения услуг недоступны
	var minioClient *storage.MinIOClient
	if cfg.MinIO.Endpoint != "" {
		minioClient, err = storage.NewMinIOClient(
			cfg.MinIO.Endpoint,
			cfg.MinIO.AccessKey,
			cfg.MinIO.SecretKey,
			cfg.MinIO.Bucket,
			cfg.MinIO.UseSSL,
		)
		if err != nil {
			logrus.Warnf("MinIO unavailable, service images disabled: %v", err)
		}
	}

	h := handler.NewAPIHandler(repo, minioClient)

	app := pkg.NewApp(cfg, gin.Default(), h)
	app.RunApp()
}
