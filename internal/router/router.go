package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"cesizen/internal/auth"
	"cesizen/internal/config"
	"cesizen/internal/handler"
	"cesizen/internal/repository"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	userRepo repository.UserRepository,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	roleHandler *handler.RoleHandler,
	categoryHandler *handler.CategoryHandler,
	articleHandler *handler.ArticleHandler,
	questionHandler *handler.QuestionHandler,
	stressHandler *handler.StressHandler,
	uploadHandler *handler.UploadHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Uploaded images, read-only
	e.Static("/uploads", cfg.UploadDir)

	// Public routes
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)

	// Article listing and reads are deliberately open
	e.GET("/articles", articleHandler.ListArticles)
	e.GET("/articles/:id", articleHandler.GetArticle)

	// Ungated display-name lookups
	e.GET("/users/username/:username", userHandler.GetUserIDByUsername)
	e.GET("/users/usernameid/:id", userHandler.GetUsernameByUserID)

	// Secured routes: token verification, then principal resolution
	secured := e.Group("",
		echojwt.WithConfig(echojwt.Config{
			SigningKey:  []byte(cfg.JWTSecret),
			TokenLookup: "header:" + echo.HeaderAuthorization,
		}),
		auth.LoadPrincipal(userRepo),
	)

	secured.GET("/auth/me", authHandler.Me)
	secured.PUT("/auth/change-password", authHandler.ChangePassword)

	secured.POST("/users", userHandler.CreateUser)
	secured.GET("/users", userHandler.ListUsers)
	secured.GET("/users/:id", userHandler.GetUser)
	secured.PUT("/users/:id", userHandler.UpdateUser)
	secured.PUT("/users/:id/desactivate", userHandler.DeactivateUser)
	secured.PUT("/users/:id/reactivate", userHandler.ReactivateUser)
	secured.DELETE("/users/:id", userHandler.DeleteUser)

	secured.POST("/roles", roleHandler.CreateRole)
	secured.GET("/roles", roleHandler.ListRoles)
	secured.GET("/roles/:id", roleHandler.GetRole)
	secured.PUT("/roles/:id", roleHandler.UpdateRole)
	secured.DELETE("/roles/:id", roleHandler.DeleteRole)

	secured.POST("/categories", categoryHandler.CreateCategory)
	secured.GET("/categories", categoryHandler.ListCategories)
	secured.GET("/categories/:id", categoryHandler.GetCategory)
	secured.PUT("/categories/:id", categoryHandler.UpdateCategory)
	secured.DELETE("/categories/:id", categoryHandler.DeleteCategory)

	secured.POST("/articles", articleHandler.CreateArticle)
	secured.GET("/articles/category/:categoryId", articleHandler.ListArticlesByCategory)
	secured.PUT("/articles/:id", articleHandler.UpdateArticle)
	secured.DELETE("/articles/:id", articleHandler.DeleteArticle)

	secured.POST("/questions", questionHandler.CreateQuestion)
	secured.GET("/questions", questionHandler.ListQuestions)
	secured.GET("/questions/:id", questionHandler.GetQuestion)
	secured.PUT("/questions/:id", questionHandler.UpdateQuestion)
	secured.DELETE("/questions/:id", questionHandler.DeleteQuestion)

	secured.POST("/stress/evaluate", stressHandler.Evaluate)

	secured.POST("/upload", uploadHandler.Upload)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
