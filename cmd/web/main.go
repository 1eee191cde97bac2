package main

import (
	"context"
	"log"
	"os"
	"time"

	"abstract-review-web/config"
	"abstract-review-web/monitor"
	"abstract-review-web/routes"
	"abstract-review-web/web"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	logFile, _ := config.InitLogging()
	if logFile != nil {
		defer logFile.Close()
	}

	// Backend API client and local session store
	config.InitBackend()
	config.InitSessions()
	defer config.Sessions.Close()

	// Set Gin mode
	ginMode := os.Getenv("GIN_MODE")
	if ginMode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	// Security headers
	router.Use(func(c *gin.Context) {
		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("X-Frame-Options", "DENY")
		c.Header("Referrer-Policy", "strict-origin-when-cross-origin")
		c.Next()
	})

	router.SetHTMLTemplate(web.Templates())

	// Backend reachability monitor
	mon := monitor.New(config.Backend.BaseURL(), 30*time.Second)
	mon.Start(context.Background())
	mon.RegisterMonitorPage(router)

	routes.SetupRoutes(router)

	port := os.Getenv("SERVER_PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("🚀 Front end starting on port %s", port)
	log.Printf("🔗 Backend API at %s", config.Backend.BaseURL())
	if ginMode == "release" {
		log.Printf("🏭 Running in production mode")
	} else {
		log.Printf("🔧 Running in development mode")
	}

	if err := router.Run(":" + port); err != nil {
		log.Fatal("❌ Failed to start server:", err)
	}
}
