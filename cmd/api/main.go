package main

import (
	"context"
	"log"
	"os"

	"cloud.google.com/go/firestore"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"google.golang.org/api/option"

	"smartethnic/internal/adapter/api"
	"smartethnic/internal/adapter/api/handler"
	apimiddleware "smartethnic/internal/adapter/api/middleware"
	"smartethnic/internal/adapter/api/router"
	"smartethnic/internal/adapter/repository"
	"smartethnic/internal/infrastructure/airtable"
	"smartethnic/internal/infrastructure/session"
	"smartethnic/internal/usecase"
	"smartethnic/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	var opts []option.ClientOption

	// Service account from environment variable (for production), file path
	// as fallback for local development.
	if serviceAccountJSON := os.Getenv("FIREBASE_SERVICE_ACCOUNT_JSON"); serviceAccountJSON != "" {
		log.Printf("Using Firebase service account from environment variable")
		opts = append(opts, option.WithCredentialsJSON([]byte(serviceAccountJSON)))
	} else if serviceAccountPath := os.Getenv("FIREBASE_SERVICE_ACCOUNT_PATH"); serviceAccountPath != "" {
		if _, err := os.Stat(serviceAccountPath); os.IsNotExist(err) {
			log.Fatalf("Service account file does not exist: %s", serviceAccountPath)
		}
		log.Printf("Using Firebase service account from file: %s", serviceAccountPath)
		opts = append(opts, option.WithCredentialsFile(serviceAccountPath))
	}

	firestoreClient, err := firestore.NewClient(ctx, cfg.FirestoreProject, opts...)
	if err != nil {
		log.Fatalf("Failed to create Firestore client: %v", err)
	}
	defer firestoreClient.Close()

	redisClient, err := session.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()

	userRepo := repository.NewFirestoreUserRepository(firestoreClient)
	cartRepo := repository.NewFirestoreCartRepository(firestoreClient)
	orderRepo := repository.NewFirestoreOrderRepository(firestoreClient)
	productRepo := repository.NewFirestoreProductRepository(firestoreClient)

	otpLog := airtable.NewClient(airtable.Config{
		APIKey: cfg.AirtableAPIKey,
		BaseID: cfg.AirtableBaseID,
		Table:  cfg.AirtableOTPTable,
	}, nil)
	sessionStore := session.NewRedisStore(redisClient, "session", cfg.SessionTTL)
	codeVerifier := usecase.NewStaticCodeVerifier(cfg.OTPDemoCode)

	authUseCase := usecase.NewAuthUseCase(userRepo, otpLog, sessionStore, codeVerifier)
	cartUseCase := usecase.NewCartUseCase(cartRepo, usecase.DefaultSaveDelay)
	orderUseCase := usecase.NewOrderUseCase(orderRepo, cartUseCase)
	productUseCase := usecase.NewProductUseCase(productRepo)

	go authUseCase.StartOTPCleanupJob(ctx)
	defer cartUseCase.FlushAll()

	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.Validator = api.NewValidator()

	sessionMiddleware := apimiddleware.NewSessionMiddleware(authUseCase)
	adminMiddleware := apimiddleware.NewAdminMiddleware(cfg.AdminAPIKey)

	authHandler := handler.NewAuthHandler(authUseCase, cartUseCase)
	userHandler := handler.NewUserHandler(authUseCase)
	cartHandler := handler.NewCartHandler(cartUseCase)
	orderHandler := handler.NewOrderHandler(orderUseCase, cartUseCase)
	adminHandler := handler.NewAdminHandler(orderUseCase)
	productHandler := handler.NewProductHandler(productUseCase)

	router.SetupHealthRouter(e)
	router.SetupAuthRouter(e, authHandler, sessionMiddleware)
	router.SetupUserRouter(e, userHandler, sessionMiddleware)
	router.SetupCartRouter(e, cartHandler, sessionMiddleware)
	router.SetupOrderRouter(e, orderHandler, sessionMiddleware)
	router.SetupAdminRouter(e, adminHandler, adminMiddleware)
	router.SetupProductRouter(e, productHandler)

	log.Printf("Starting server on port %s...", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
