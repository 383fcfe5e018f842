package routes

import (
	"net/http"
	"time"

	"trivia/handlers"
	"trivia/middleware"
	"trivia/services"

	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // any origin, same as the REST endpoints
	},
}

// NewRouter builds a gin engine with the middleware every route shares.
func NewRouter(logger *zap.Logger) *gin.Engine {
	router := gin.New()
	router.RedirectTrailingSlash = false

	router.Use(ginzap.Ginzap(logger, time.RFC3339, true))
	router.Use(middleware.Recovery(logger))
	router.Use(middleware.Metrics())
	router.Use(middleware.AccessControl())
	router.Use(middleware.CORS())

	router.NoRoute(handlers.NotFound)
	router.NoMethod(handlers.NotFound)

	return router
}

// SetupRoutes registers the API. hub may be nil, in which case the event
// stream is not served.
func SetupRoutes(
	router *gin.Engine,
	questionHandler *handlers.QuestionHandler,
	categoryHandler *handlers.CategoryHandler,
	quizHandler *handlers.QuizHandler,
	hub *services.Hub,
	logger *zap.Logger,
) {
	categories := router.Group("/categories")
	{
		categories.GET("", categoryHandler.GetCategories)
		categories.GET("/:id/questions", categoryHandler.GetQuestionsByCategory)
	}

	questions := router.Group("/questions")
	{
		questions.GET("", questionHandler.GetQuestions)
		questions.POST("", questionHandler.CreateQuestion)
		questions.POST("/search", questionHandler.SearchQuestions)
		questions.DELETE("/:id", questionHandler.DeleteQuestion)
	}

	router.POST("/quizzes", quizHandler.NextQuestion)

	if hub != nil {
		router.GET("/ws", func(c *gin.Context) {
			conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
			if err != nil {
				// Upgrade has already answered the client
				logger.Warn("websocket upgrade failed", zap.Error(err))
				return
			}
			hub.RegisterClient(conn)
		})
	}

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}
