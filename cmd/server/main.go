package main

import (
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"lingua-reader/internal/config"
	"lingua-reader/internal/handler"

	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found or could not be loaded: %v", err)
	}
	// Wiring
	container := config.NewContainer()

	if err := container.SupabaseClient.Initialize(); err != nil {
		container.Logger.Warn("Supabase client not initialized; auth and persistence disabled", "error", err)
	}

	// Handlers
	storyHandler := handler.NewStoryHandler(
		container.StoryService,
		container.Logger,
	)

	pdfHandler := handler.NewPDFHandler(
		container.PDFService,
		container.Logger,
	)

	authMiddleware := handler.AuthMiddleware(
		container.SupabaseClient,
		container.Logger,
	)

	// Router
	router := handler.NewRouter(
		storyHandler,
		pdfHandler,
		authMiddleware,
	)

	// start server
	server := &http.Server{
		Addr:    ":" + container.Config.GetServerPort(),
		Handler: router,
	}

	// Run server
	go func() {
		container.Logger.Info("Server listening", "address", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			container.Logger.Error("Server failed to start", err)
			os.Exit(1)
		}
	}()
	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	container.Logger.Info("Shutting down server...")
	_ = server.Close()

	container.Logger.Info("Server exited")
}
