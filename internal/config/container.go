package config

import (
	"lingua-reader/internal/domain"
	"lingua-reader/internal/repository"
	"lingua-reader/internal/service"
	"lingua-reader/pkg/logger"
)

// Container holds all application dependencies
type Container struct {
	Config          domain.Config
	Logger          domain.Logger
	SupabaseClient  domain.SupabaseClient
	StoryRepository domain.StoryRepository
	PDFService      *service.PDFService
	StoryService    *service.StoryService
}

// NewContainer creates a new dependency injection container
func NewContainer() *Container {
	config := NewConfig()
	appLogger := logger.NewLogger(config.GetLogLevel())

	// Initialize Supabase client
	supabaseClient := repository.NewSupabaseClient(config, appLogger)

	// Initialize repositories
	storyRepo := repository.NewSupabaseStoryRepository(supabaseClient, appLogger)

	// Initialize services
	loader := service.NewPDFDocumentLoader(appLogger)
	pdfService := service.NewPDFService(loader, appLogger)
	storyService := service.NewStoryService(
		pdfService,
		storyRepo,
		appLogger,
		config.GetMaxUploadSizeMB(),
		config.GetMaxPDFPages(),
	)

	return &Container{
		Config:          config,
		Logger:          appLogger,
		SupabaseClient:  supabaseClient,
		StoryRepository: storyRepo,
		PDFService:      pdfService,
		StoryService:    storyService,
	}
}

// GetConfig returns the configuration instance
func (c *Container) GetConfig() domain.Config {
	return c.Config
}

// GetLogger returns the logger instance
func (c *Container) GetLogger() domain.Logger {
	return c.Logger
}

// GetSupabaseClient returns the Supabase client instance
func (c *Container) GetSupabaseClient() domain.SupabaseClient {
	return c.SupabaseClient
}
