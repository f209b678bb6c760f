package main

import (
	"log"
	"strconv"

	"github.com/Similization/kts-project/internal/bot"
	"github.com/Similization/kts-project/internal/config"
	"github.com/Similization/kts-project/internal/database"
	"github.com/Similization/kts-project/internal/handlers"
	"github.com/Similization/kts-project/internal/middleware"
	"github.com/Similization/kts-project/internal/services"
	"github.com/Similization/kts-project/internal/vk"
	"github.com/Similization/kts-project/internal/ws"

	_ "github.com/Similization/kts-project/docs"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title           Pole Chudes API
// @version         1.0
// @description     API for the Pole Chudes word game with VK bot integration
// @host            localhost:8080
// @BasePath        /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Enter "Bearer {token}"

func main() {
	cfg := config.Load()

	db := database.Connect(cfg)
	database.AutoMigrate(db)

	hub := ws.NewHub()

	authService := services.NewAuthService(db, cfg.JWTSecret)
	userService := services.NewUserService(db)
	gameDataService := services.NewGameDataService(db)
	gameService := services.NewGameService(db)

	authHandler := handlers.NewAuthHandler(authService)
	userHandler := handlers.NewUserHandler(userService)
	gameDataHandler := handlers.NewGameDataHandler(gameDataService)
	gameHandler := handlers.NewGameHandler(gameService)
	wsHandler := handlers.NewWSHandler(hub)

	vkClient := vk.NewClient(cfg.VKToken, cfg.VKGroupID)
	dispatcher := bot.NewDispatcher(gameService, userService, vkClient, hub)
	if err := dispatcher.Restore(); err != nil {
		log.Fatalf("failed to restore sessions: %v", err)
	}

	workers, _ := strconv.Atoi(cfg.WorkerCount)
	if workers <= 0 {
		workers = 4
	}
	pollWait, _ := strconv.Atoi(cfg.PollWait)

	pool := vk.NewWorkerPool(vkClient, dispatcher, workers)
	poller := vk.NewPoller(vkClient, pool, pollWait)
	if cfg.VKToken != "" {
		pool.Start()
		poller.Start()
		defer pool.Stop()
		defer poller.Stop()
	} else {
		log.Println("VK_TOKEN not set, bot disabled")
	}

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/ws/games/:chat_id", wsHandler.HandleWebSocket)

	api := r.Group("/api/v1")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.GET("/current", middleware.JWTAuth(authService), authHandler.Current)
		}

		gameData := api.Group("/game-data")
		gameData.Use(middleware.JWTAuth(authService))
		{
			gameData.POST("", gameDataHandler.CreateGameData)
			gameData.GET("", gameDataHandler.ListGameData)
			gameData.GET("/:id", gameDataHandler.GetGameData)
			gameData.PUT("/:id", gameDataHandler.UpdateGameData)
			gameData.DELETE("/:id", gameDataHandler.DeleteGameData)
		}

		users := api.Group("/users")
		users.Use(middleware.JWTAuth(authService))
		{
			users.GET("", userHandler.ListUsers)
			users.GET("/:id", userHandler.GetUser)
		}

		games := api.Group("/games")
		games.Use(middleware.JWTAuth(authService))
		{
			games.GET("", gameHandler.ListGames)
			games.GET("/latest", gameHandler.LatestGame)
			games.GET("/:id", gameHandler.GetGame)
		}
	}

	log.Printf("server starting on :%s", cfg.ServerPort)
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
