package main

import (
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"github.com/jackiechou1/sneaker-comparison-matrix/internal/api"
	"github.com/jackiechou1/sneaker-comparison-matrix/internal/catalog"
	"github.com/jackiechou1/sneaker-comparison-matrix/internal/config"
	"github.com/jackiechou1/sneaker-comparison-matrix/internal/database"
	alertService "github.com/jackiechou1/sneaker-comparison-matrix/internal/services/alert"
	favoriteService "github.com/jackiechou1/sneaker-comparison-matrix/internal/services/favorite"
	priceHistoryService "github.com/jackiechou1/sneaker-comparison-matrix/internal/services/pricehistory"
	rankingService "github.com/jackiechou1/sneaker-comparison-matrix/internal/services/ranking"
	reviewService "github.com/jackiechou1/sneaker-comparison-matrix/internal/services/review"
	shareService "github.com/jackiechou1/sneaker-comparison-matrix/internal/services/share"
	"github.com/jackiechou1/sneaker-comparison-matrix/internal/storage"
	"github.com/jackiechou1/sneaker-comparison-matrix/internal/websocket"
)

func main() {
	log := logrus.New()

	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Info("No .env file found")
	}

	// Initialize configuration
	cfg := config.Load()
	if cfg.Environment == "production" {
		log.SetFormatter(&logrus.JSONFormatter{})
		gin.SetMode(gin.ReleaseMode)
	} else {
		log.SetLevel(logrus.DebugLevel)
	}

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}
	store := storage.NewSQLStore(db, log)

	// Load the static catalog
	cat, err := catalog.Load()
	if err != nil {
		log.Fatal("Failed to load catalog: ", err)
	}
	log.Infof("Catalog loaded with %d sneakers", cat.Size())

	// Initialize WebSocket hub
	hub := websocket.NewHub(log)
	go hub.Run()

	// Initialize services
	rankings := rankingService.NewService(store, log)
	rankings.Bootstrap(cat.IDs())
	favorites := favoriteService.NewService(store, log)
	reviews := reviewService.NewService(store, log)

	notifiers := []alertService.Notifier{hub}
	if cfg.AlertWebhookURL != "" {
		notifiers = append(notifiers, alertService.NewWebhookNotifier(cfg.AlertWebhookURL, log))
	}
	alerts := alertService.NewService(store, log, notifiers...)

	share := shareService.NewService(cfg.BaseURL)
	history := priceHistoryService.NewDefaultGenerator()

	// Periodic alert sweep against catalog resale prices
	if cfg.AlertSweepSchedule != "" {
		scheduler := cron.New()
		if _, err := scheduler.AddFunc(cfg.AlertSweepSchedule, func() {
			alerts.Sweep(cat)
		}); err != nil {
			log.Fatal("Invalid alert sweep schedule: ", err)
		}
		scheduler.Start()
		log.Infof("Alert sweep scheduled: %s", cfg.AlertSweepSchedule)
	}

	// Initialize Gin router
	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     strings.Split(cfg.AllowedOrigins, ","),
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok", "sneakers": cat.Size()})
	})

	// WebSocket endpoint for alert notifications
	r.GET("/ws", websocket.ServeWS(hub))

	// API routes
	apiGroup := r.Group("/api/v1")
	handler := api.NewHandler(log, cat, rankings, favorites, reviews, alerts, share, history)
	api.SetupRoutes(apiGroup, handler)

	log.Infof("Server starting on port %s", cfg.Port)
	log.Fatal(r.Run(":" + cfg.Port))
}
