package main

import (
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"

	"github.com/MayerAttila/Gifty/config"
	"github.com/MayerAttila/Gifty/handlers"
	"github.com/MayerAttila/Gifty/middleware"
	"github.com/MayerAttila/Gifty/routes"
	"github.com/MayerAttila/Gifty/services"
	"github.com/MayerAttila/Gifty/storage"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	db, err := config.InitDB()
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	log.Println("✅ Database connected successfully")

	if err := config.RunMigrations(db); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	wsHandler := handlers.NewWSHandler()
	memberRepo := storage.NewMemberRepository(db, wsHandler)
	productRepo := storage.NewProductRepository(db, wsHandler)

	router := gin.Default()

	frontendURL := os.Getenv("FRONTEND_URL")
	if frontendURL == "" {
		frontendURL = "http://localhost:3000"
	}

	corsConfig := cors.Config{
		AllowOrigins:     []string{frontendURL},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           86400,
	}
	router.Use(cors.New(corsConfig))

	router.Use(func(c *gin.Context) {
		start := time.Now()
		log.Printf("📨 %s %s from %s", c.Request.Method, c.Request.URL.Path, c.ClientIP())
		c.Next()
		duration := time.Since(start)
		log.Printf("✅ %s %s - %d (%v)", c.Request.Method, c.Request.URL.Path, c.Writer.Status(), duration)
	})

	router.Use(middleware.RateLimiter())

	v1 := router.Group("/api/v1")
	{
		v1.GET("/ws", wsHandler.HandleWS)
		routes.SetupMemberRoutes(v1, memberRepo)
		routes.SetupProductRoutes(v1, memberRepo, productRepo)
		routes.SetupCalendarRoutes(v1, memberRepo)
	}

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"version": "1.0.0",
			"time":    time.Now().Format(time.RFC3339),
		})
	})

	scheduler := cron.New()
	if _, err := scheduler.AddFunc("@daily", func() {
		runDailyDigest(memberRepo, wsHandler)
	}); err != nil {
		log.Fatal("Failed to schedule daily digest:", err)
	}
	scheduler.Start()
	defer scheduler.Stop()
	runDailyDigest(memberRepo, wsHandler)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("🚀 Server starting on port %s...", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}

// runDailyDigest announces the occasions falling on the current day.
func runDailyDigest(members storage.MemberRepository, ws *handlers.WSHandler) {
	list, err := members.Load()
	if err != nil {
		log.Printf("❌ Daily digest failed to load members: %v", err)
		return
	}

	today := services.UpcomingEvents(list, time.Now(), 1)
	if len(today) == 0 {
		return
	}

	for _, event := range today {
		log.Printf("🎁 Today: %s (%s)", event.MemberName, event.Label)
	}
	ws.BroadcastDigest(len(today))
}
