package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"time"

	"persona-engine/internal/config"
	"persona-engine/internal/domain/entities"
	"persona-engine/internal/domain/interfaces/repository"
	Iservices "persona-engine/internal/domain/interfaces/services"
	"persona-engine/internal/infra/handlers"
	"persona-engine/internal/infra/logger"
	infraRepository "persona-engine/internal/infra/repository"
	"persona-engine/internal/infra/routes"
	"persona-engine/internal/infra/services"
	"persona-engine/internal/middleware"
	client "persona-engine/internal/pkg"

	"github.com/gorilla/mux"
)

func main() {
	config.LoadEnv()

	ctx := context.Background()
	log := logger.NewLogger(ctx, true)

	var personaRepo repository.Repository[entities.PersonaProfile]
	if config.GetEnv("MONGODB_URI") != "" {
		mongoClient := client.MongoClient()
		personaRepo = infraRepository.NewMongoRepository[entities.PersonaProfile](mongoClient.Database("PersonaCatalog"))
	} else {
		// Demo mode: no catalog database, serve the seeded personas.
		log.Warn("MONGODB_URI not set, running with the seeded demo catalog")
		memoryRepo := infraRepository.NewMemoryRepository[entities.PersonaProfile]()
		if err := infraRepository.SeedPersonas(ctx, memoryRepo); err != nil {
			log.Fatal(fmt.Sprintf("Failed to seed demo catalog: %v", err))
		}
		personaRepo = memoryRepo
	}

	var sessionArchive *infraRepository.SessionArchive
	if config.GetEnv("REDIS_ADDR") != "" {
		redisClient := client.RedisClient()
		sessionArchive = infraRepository.NewSessionArchive(redisClient, "persona-engine", 30*24*time.Hour)
	}

	var personaSvc Iservices.IPersonaService = services.NewPersonaService(personaRepo, ctx, log)
	var sessionSvc Iservices.ISessionService = services.NewSessionService(log)
	var simulationSvc Iservices.ISimulationService = services.NewSimulationService(log)

	fallbackSvc := services.NewFallbackService()
	compiler := services.NewPromptCompilerService()

	generationHost := config.GetEnvOrDefault("GENERATION_API_HOST", "http://localhost:9000")
	httpClient := &http.Client{}
	var generationSvc Iservices.IGenerationService = services.NewGenerationService(
		log,
		httpClient,
		generationHost,
		config.GetEnv("GENERATION_API_TOKEN"),
		config.GetEnvOrDefault("HEALTH_PROBE_URL", generationHost+"/health"),
		fallbackSvc,
	)

	var dialogueSvc Iservices.IDialogueService = services.NewDialogueService(
		log, personaSvc, compiler, generationSvc, simulationSvc, sessionSvc, sessionArchive,
	)

	router := mux.NewRouter()
	router.Use(middleware.LoggingMiddleware(log))

	httpHandlers := handlers.NewHttpHandlers(log, dialogueSvc, personaSvc, sessionSvc)
	httpRoutes := routes.NewRoutes(router, httpHandlers)
	httpRoutes.Init()

	port := config.GetEnvOrDefault("PORT", "8080")
	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", port),
		Handler: router,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt)

	go func() {
		log.Info(fmt.Sprintf("Server is running on port %s", port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error(fmt.Sprintf("Error running HTTP server: %s", err))
			os.Exit(1)
		}
	}()

	<-stop
	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error(fmt.Sprintf("Server forced to shutdown: %v", err))
	} else {
		log.Info("Server stopped gracefully.")
	}
}
