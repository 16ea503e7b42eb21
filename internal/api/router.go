package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"

	"github.com/insider-games/insider-api/internal/api/handler"
	"github.com/insider-games/insider-api/internal/core/ports"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// Route names follow the action verbs clients poll against; every game route
// is a POST returning the caller's snapshot.
func NewRouter(service ports.GameService, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("insider"))

	// --- Game routes ---
	gameHandler := handler.NewGameHandler(service)

	e.POST("/getState", gameHandler.GetState)
	e.POST("/create", gameHandler.Create)
	e.POST("/join", gameHandler.Join)
	e.POST("/leave", gameHandler.Leave)
	e.POST("/ready", gameHandler.Ready)
	e.POST("/reset", gameHandler.Reset)
	e.POST("/assignRoles", gameHandler.AssignRoles)
	e.POST("/exchangeWord", gameHandler.ExchangeWord)
	e.POST("/start", gameHandler.Start)
	e.POST("/guessed", gameHandler.Guessed)
	e.POST("/timeUp", gameHandler.TimeUp)
	e.POST("/votePlayer", gameHandler.VotePlayer)
	e.POST("/complete", gameHandler.Complete)
	e.POST("/end", gameHandler.End)

	// --- Observability and docs ---
	healthHandler := handler.NewHealthHandler()
	e.GET("/health", healthHandler.Liveness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
