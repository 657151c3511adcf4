package main

import (
	"context"
	"ctchen222/Solo-Tac-Toe/internal/api/controller"
	"ctchen222/Solo-Tac-Toe/internal/config"
	"ctchen222/Solo-Tac-Toe/internal/game"
	"ctchen222/Solo-Tac-Toe/internal/logger"
	"ctchen222/Solo-Tac-Toe/internal/server"
	"ctchen222/Solo-Tac-Toe/internal/session"
	"ctchen222/Solo-Tac-Toe/internal/telemetry"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

func main() {
	ctx := context.Background()

	conf := config.MustLoad("./config.yml")

	// Initialize telemetry
	shutdown, err := telemetry.InitOtel()
	if err != nil {
		log.Fatalf("failed to initialize telemetry: %v", err)
	}
	defer func() {
		if err := shutdown(ctx); err != nil {
			log.Printf("Error shutting down telemetry: %v", err)
		}
	}()

	logger.Init(conf.LogLevel)

	// Create the session holding the single live game
	sessions := session.NewManager(game.Mode(conf.DefaultMode), conf.DefaultTheme, conf.BotDelay())

	// Create controllers
	gameController := controller.NewGameController(sessions)

	// Create the Gin-based server
	srv := server.NewServer(gameController, conf.WebDir)

	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	httpServer := &http.Server{
		Addr:    ":" + conf.HTTPPort,
		Handler: srv.Engine(),
	}

	go func() {
		log.Printf("http server started on :%s", conf.HTTPPort)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("ListenAndServe: %v", err)
		}
	}()

	<-stop

	log.Println("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting")
}
