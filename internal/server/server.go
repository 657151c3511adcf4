package server

import (
	"ctchen222/Solo-Tac-Toe/internal/api/controller"
	"path/filepath"

	"github.com/gin-gonic/gin"
)

// Server wires the JSON API and the static browser page into a gin
// engine.
type Server struct {
	engine *gin.Engine
}

// NewServer creates the gin engine and registers all routes. webDir is
// the directory holding the static page.
func NewServer(gameController *controller.GameController, webDir string) *Server {
	engine := gin.New()
	engine.Use(gin.Recovery())

	engine.StaticFile("/", filepath.Join(webDir, "index.html"))

	api := engine.Group("/api")
	{
		api.GET("/state", gameController.State)
		api.POST("/move", gameController.Move)
		api.POST("/reset", gameController.Reset)
		api.POST("/theme", gameController.ToggleTheme)
	}

	return &Server{engine: engine}
}

// Engine exposes the underlying handler for the http server.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}
