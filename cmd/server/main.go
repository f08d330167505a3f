package main

import (
	"net/http"
	"os"

	_ "cesizen/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"cesizen/internal/auth"
	"cesizen/internal/cache"
	"cesizen/internal/config"
	"cesizen/internal/db"
	"cesizen/internal/handler"
	"cesizen/internal/model"
	"cesizen/internal/repository"
	"cesizen/internal/router"
	"cesizen/internal/service"
	"cesizen/internal/upload"
)

// @title CESIZen API
// @version 1.0
// @description Mental-health and wellness API: articles, stress questionnaire, role-gated administration.
// @host localhost:3000
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("database init")
	}

	if err := gormDB.AutoMigrate(
		&model.Role{},
		&model.User{},
		&model.Category{},
		&model.Article{},
		&model.Question{},
	); err != nil {
		log.Fatal().Err(err).Msg("auto-migrate")
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	storage, err := upload.NewStorage(cfg.UploadDir)
	if err != nil {
		log.Fatal().Err(err).Str("dir", cfg.UploadDir).Msg("upload dir init")
	}

	// Repositories
	userRepo := repository.NewUserRepository(gormDB)
	roleRepo := repository.NewRoleRepository(gormDB)
	categoryRepo := repository.NewCategoryRepository(gormDB)
	articleRepo := repository.NewArticleRepository(gormDB)
	questionRepo := repository.NewQuestionRepository(gormDB)

	// Auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)

	// Services
	authService := service.NewAuthService(userRepo, roleRepo, jwtService)
	userService := service.NewUserService(userRepo, roleRepo)
	roleService := service.NewRoleService(roleRepo)
	categoryService := service.NewCategoryService(categoryRepo)
	articleService := service.NewArticleService(articleRepo, cacheClient)
	questionService := service.NewQuestionService(questionRepo, cacheClient)

	// Handlers
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	roleHandler := handler.NewRoleHandler(roleService)
	categoryHandler := handler.NewCategoryHandler(categoryService)
	articleHandler := handler.NewArticleHandler(articleService)
	questionHandler := handler.NewQuestionHandler(questionService)
	stressHandler := handler.NewStressHandler(questionService)
	uploadHandler := handler.NewUploadHandler(storage)

	// Routes
	router.Register(
		e,
		cfg,
		userRepo,
		authHandler,
		userHandler,
		roleHandler,
		categoryHandler,
		articleHandler,
		questionHandler,
		stressHandler,
		uploadHandler,
	)

	log.Info().Str("port", cfg.ServerPort).Msg("starting server")

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("server start")
	}
}
