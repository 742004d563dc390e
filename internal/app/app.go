package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	appHTTP "clipstream/internal/controller/http"
	"clipstream/internal/repo/persistent"
	"clipstream/internal/usecase"
	"clipstream/pkg/config"
	"clipstream/pkg/jwt"
	"clipstream/pkg/logger"
	"clipstream/pkg/middleware"
	"clipstream/pkg/s3"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	_ "clipstream/docs" // Swagger docs
)

func Run(cfg *config.Config, log *logger.Logger, db *gorm.DB, s3Client *s3.Client, redisClient *redis.Client) {
	jwtService := jwt.NewService(cfg.JWTSecret)

	// Initialize repositories
	videoRepo := persistent.NewVideoRepository(db)
	commentRepo := persistent.NewCommentRepository(db)
	likeRepo := persistent.NewLikeRepository(db)
	subscriptionRepo := persistent.NewSubscriptionRepository(db)
	playlistRepo := persistent.NewPlaylistRepository(db)
	tweetRepo := persistent.NewTweetRepository(db)
	userRepo := persistent.NewUserRepository(db)
	dashboardRepo := persistent.NewDashboardRepository(db)

	// Initialize use cases
	videoUseCase := usecase.NewVideoUseCase(videoRepo, userRepo, s3Client, redisClient, log)
	commentUseCase := usecase.NewCommentUseCase(commentRepo, videoRepo, log)
	likeUseCase := usecase.NewLikeUseCase(likeRepo, videoRepo, commentRepo, tweetRepo, redisClient, log)
	subscriptionUseCase := usecase.NewSubscriptionUseCase(subscriptionRepo, userRepo, log)
	playlistUseCase := usecase.NewPlaylistUseCase(playlistRepo, videoRepo, userRepo, log)
	tweetUseCase := usecase.NewTweetUseCase(tweetRepo, userRepo, log)
	userUseCase := usecase.NewUserUseCase(userRepo, log)
	dashboardUseCase := usecase.NewDashboardUseCase(dashboardRepo, videoRepo, userRepo, log)

	// Initialize HTTP handlers
	videoHandler := appHTTP.NewVideoHandler(videoUseCase, log)
	commentHandler := appHTTP.NewCommentHandler(commentUseCase, log)
	likeHandler := appHTTP.NewLikeHandler(likeUseCase, log)
	subscriptionHandler := appHTTP.NewSubscriptionHandler(subscriptionUseCase, log)
	playlistHandler := appHTTP.NewPlaylistHandler(playlistUseCase, log)
	tweetHandler := appHTTP.NewTweetHandler(tweetUseCase, log)
	userHandler := appHTTP.NewUserHandler(userUseCase, log)
	dashboardHandler := appHTTP.NewDashboardHandler(dashboardUseCase, log)

	// Setup router
	r := gin.Default()

	// CORS middleware
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://127.0.0.1:3000", "*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * 3600,
	}))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Swagger documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api/v1")
	api.Use(middleware.AuthMiddleware(jwtService))
	api.Use(middleware.RateLimitMiddleware(redisClient, 100, time.Minute))

	{
		api.GET("/videos", videoHandler.ListVideos)
		api.POST("/videos/publishVideo", videoHandler.PublishVideo)
		api.GET("/videos/watch/:videoId", videoHandler.WatchVideo)
		api.PATCH("/videos/updateVideoData/:videoId", videoHandler.UpdateVideo)
		api.DELETE("/videos/deleteVideo/:videoId", videoHandler.DeleteVideo)
		api.PATCH("/videos/togglePublish/:videoId", videoHandler.TogglePublish)

		api.POST("/comments/:videoId", commentHandler.AddComment)
		api.GET("/comments/:videoId", commentHandler.ListComments)
		api.PATCH("/comments/:commentId", commentHandler.UpdateComment)
		api.DELETE("/comments/:commentId", commentHandler.DeleteComment)

		api.POST("/likes/video/:videoId", likeHandler.ToggleVideoLike)
		api.POST("/likes/comment/:commentId", likeHandler.ToggleCommentLike)
		api.POST("/likes/tweet/:tweetId", likeHandler.ToggleTweetLike)
		api.GET("/likes/videos", likeHandler.GetLikedVideos)

		api.POST("/subscriptions/channel/:channelId", subscriptionHandler.ToggleSubscription)
		api.GET("/subscriptions/channel/:userId", subscriptionHandler.GetSubscribedChannels)
		api.GET("/subscriptions/user/:channelId", subscriptionHandler.GetChannelSubscribers)

		api.POST("/playlists", playlistHandler.CreatePlaylist)
		api.GET("/playlists/user/:userId", playlistHandler.GetUserPlaylists)
		api.GET("/playlists/:playlistId", playlistHandler.GetPlaylist)
		api.PATCH("/playlists/:playlistId", playlistHandler.UpdatePlaylist)
		api.DELETE("/playlists/:playlistId", playlistHandler.DeletePlaylist)
		api.PATCH("/playlists/add/:videoId/:playlistId", playlistHandler.AddVideo)
		api.PATCH("/playlists/remove/:videoId/:playlistId", playlistHandler.RemoveVideo)

		api.POST("/tweets", tweetHandler.CreateTweet)
		api.GET("/tweets/user/:userId", tweetHandler.GetUserTweets)
		api.PATCH("/tweets/:tweetId", tweetHandler.UpdateTweet)
		api.DELETE("/tweets/:tweetId", tweetHandler.DeleteTweet)

		api.GET("/users/history", userHandler.GetWatchHistory)

		api.GET("/dashboard/stats/:channelId", dashboardHandler.GetChannelStats)
		api.GET("/dashboard/videos/:channelId", dashboardHandler.GetChannelVideos)
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	// Start server in a goroutine
	go func() {
		log.Info("Server starting on port %s", cfg.ServerPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("Failed to start server: %v", err)
			panic(err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Close database connection
	sqlDB, err := db.DB()
	if err == nil {
		if err := sqlDB.Close(); err != nil {
			log.Error("Error closing database: %v", err)
		}
	}

	// Close Redis connection
	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Error("Error closing Redis: %v", err)
		}
	}

	// Shutdown server
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
		panic(err)
	}

	log.Info("Server exited")
}
