package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/mazation/praktikaBack/config"
	"github.com/mazation/praktikaBack/database"
	_ "github.com/mazation/praktikaBack/docs" // Swagger docs - auto-generated
	"github.com/mazation/praktikaBack/internal/controller"
	"github.com/mazation/praktikaBack/internal/logger"
	"github.com/mazation/praktikaBack/internal/middleware"
	"github.com/mazation/praktikaBack/internal/model"
	"github.com/mazation/praktikaBack/internal/repository"
	"github.com/mazation/praktikaBack/internal/service"
	"github.com/mazation/praktikaBack/internal/storage"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// @title Quiz Administration API
// @version 1.0
// @description Backend for uploading delimited test definitions, serving decoded question sets, and recording student results under role-based visibility.
// @BasePath /api
// @schemes http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	logger.Init()

	app := fx.New(
		// Core Application Components
		fx.Provide(
			config.NewConfig,
			database.NewDatabase, // Provides *gorm.DB
			NewGinEngine,         // Provides *gin.Engine
			NewArtifactStore,
		),

		// Repositories Layer
		fx.Provide(
			repository.NewUserRepository,
			repository.NewTestRepository,
			repository.NewResultRepository,
		),

		// Services Layer
		fx.Provide(
			func(cfg *config.Config, userRepo repository.UserRepository) service.AuthService {
				return service.NewAuthService(userRepo, cfg.JWTSecret)
			},
			service.NewTestService,
			service.NewResultService,
		),

		// API Controllers Layer
		fx.Provide(
			controller.NewAuthController,
			controller.NewTestController,
			controller.NewResultController,
		),

		fx.Invoke(RegisterRoutesAndStartServer),
		fx.Invoke(AutoMigrateDB),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")
}

func NewGinEngine() *gin.Engine {
	r := gin.New()

	// Route requests through zerolog instead of Gin's default logger.
	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// URL: http://localhost:PORT/swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

func NewArtifactStore(cfg *config.Config) (storage.ArtifactStore, error) {
	return storage.NewFSArtifactStore(cfg.Artifacts.Dir)
}

// RegisterRoutesAndStartServer configures API routes and manages server lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	authCtrl *controller.AuthController,
	testCtrl *controller.TestController,
	resultCtrl *controller.ResultController,
) {
	api := router.Group("/api")
	{
		// Public routes
		api.POST("/users", authCtrl.Register)
		api.POST("/auth/login", authCtrl.Login)

		// Authenticated routes
		protected := api.Group("")
		protected.Use(middleware.AuthMiddleware(cfg.JWTSecret))
		{
			protected.GET("/tests", testCtrl.Dashboard)
			protected.POST("/tests/create", testCtrl.CreateTest)
			protected.GET("/tests/:test_id", testCtrl.GetTest)

			protected.POST("/results", resultCtrl.SubmitResult)
			protected.GET("/results", resultCtrl.TeacherReport)
		}
	}

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("Quiz administration API starting on port %s", cfg.Server.Port)
			log.Info().Msgf("Swagger UI available at http://localhost:%s/swagger/index.html", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	})
}

func AutoMigrateDB(db *gorm.DB) error {
	log.Info().Msg("Running database migrations...")
	err := db.AutoMigrate(
		&model.User{},
		&model.Test{},
		&model.Result{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}
