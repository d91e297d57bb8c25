package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/tranqh/quizhub/config"
	"github.com/tranqh/quizhub/database"
	_ "github.com/tranqh/quizhub/docs" // Swagger docs - auto-generated
	adminctrl "github.com/tranqh/quizhub/internal/controller/admin"
	authctrl "github.com/tranqh/quizhub/internal/controller/auth"
	userctrl "github.com/tranqh/quizhub/internal/controller/user"
	"github.com/tranqh/quizhub/internal/logger"
	"github.com/tranqh/quizhub/internal/middleware"
	"github.com/tranqh/quizhub/internal/model"
	"github.com/tranqh/quizhub/internal/repository"
	"github.com/tranqh/quizhub/internal/service"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// @title QuizHub API
// @version 1.0
// @description Quiz-taking platform backend: token authentication, quiz catalog, attempt grading and result history.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @schemes http https
func main() {
	logger.Init()

	app := fx.New(
		fx.Provide(
			config.NewConfig,
			database.NewDatabase,
			NewGinEngine,
		),

		// Repositories Layer
		fx.Provide(
			repository.NewUserRepository,
			repository.NewQuizRepository,
			repository.NewResultRepository,
		),

		// Services Layer
		fx.Provide(
			service.NewTokenService,
			service.NewAuthService,
			service.NewQuizService,
			service.NewGradingService,
			service.NewResultService,
		),

		// API Controllers Layer
		fx.Provide(
			authctrl.NewAuthController,
			userctrl.NewQuizController,
			userctrl.NewResultController,
			adminctrl.NewAdminQuizController,
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
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Swagger UI at /swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// RegisterRoutesAndStartServer configures API routes and manages server lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	tokenSvc service.TokenService,
	authCtrl *authctrl.AuthController,
	quizCtrl *userctrl.QuizController,
	resultCtrl *userctrl.ResultController,
	adminCtrl *adminctrl.AdminQuizController,
) {
	apiGroup := router.Group("/api/v1")

	// Public auth routes
	authGroup := apiGroup.Group("/auth")
	{
		authGroup.POST("/signup", authCtrl.Signup)
		authGroup.POST("/login", authCtrl.Login)
	}

	// Authenticated routes (any role)
	authenticated := apiGroup.Group("")
	authenticated.Use(middleware.Auth(tokenSvc))
	{
		quizzes := authenticated.Group("/quizzes")
		quizzes.GET("", quizCtrl.GetQuizzes)
		quizzes.GET("/:quiz_id", quizCtrl.GetQuizDetails)
		quizzes.GET("/category/:category", quizCtrl.GetQuizzesByCategory)
		quizzes.GET("/difficulty/:difficulty", quizCtrl.GetQuizzesByDifficulty)

		results := authenticated.Group("/results")
		results.POST("", middleware.RequireRole(model.RoleStudent), resultCtrl.SubmitAttempt)
		results.GET("/me", resultCtrl.GetMyResults)
	}

	// Admin routes
	adminGroup := apiGroup.Group("/admin")
	adminGroup.Use(middleware.Auth(tokenSvc), middleware.RequireRole(model.RoleAdmin))
	{
		adminGroup.POST("/quizzes", adminCtrl.CreateQuiz)
		adminGroup.GET("/quizzes", adminCtrl.GetQuizzes)
		adminGroup.GET("/quizzes/:quiz_id", adminCtrl.GetQuiz)
		adminGroup.PUT("/quizzes/:quiz_id", adminCtrl.UpdateQuiz)
		adminGroup.DELETE("/quizzes/:quiz_id", adminCtrl.DeleteQuiz)

		adminGroup.GET("/results", adminCtrl.GetAllResults)
		adminGroup.GET("/results/quiz/:quiz_id", adminCtrl.GetResultsByQuiz)
	}

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("QuizHub API server starting on port %s", cfg.Server.Port)
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
		&model.Quiz{},
		&model.Question{},
		&model.Result{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}
