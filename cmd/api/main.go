package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"greetingcard/internal/config"
	"greetingcard/internal/database"
	"greetingcard/internal/domain/card"
	"greetingcard/internal/domain/upload"
	"greetingcard/internal/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := db.AutoMigrate(&upload.UploadedImage{}); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	uploadRepo := upload.NewRepository(db)
	uploadService := upload.NewService(uploadRepo, cfg.UploadDir, cfg.UploadBase)
	uploadHandler := upload.NewHandler(uploadService)

	codec := card.Codec{Policy: card.ShareUploadedOnly}
	if cfg.ShareLocal {
		codec.Policy = card.ShareAnyImage
	}
	cardHandler := card.NewHandler(codec, "/")
	sessionHandler := card.NewSessionHandler(codec, "/")

	r := gin.New()
	r.Use(gin.Logger(), middleware.CORS(), middleware.ErrorLogger())

	// uploaded images are served read-only as static files
	r.Static(cfg.UploadBase, cfg.UploadDir)

	api := r.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		upload.RegisterRoutes(api, uploadHandler)
		card.RegisterRoutes(api, cardHandler, sessionHandler)
	}

	if err := r.Run(cfg.Addr); err != nil {
		log.Fatal(err)
	}
}
