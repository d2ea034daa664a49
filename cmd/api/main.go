package main

import (
	"context"
	"log"
	"os"

	"cloud.google.com/go/firestore"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"google.golang.org/api/option"

	fbapp "firebase.google.com/go/v4"

	"scrappix-admin/internal/adapter/api"
	"scrappix-admin/internal/adapter/api/handler"
	apimiddleware "scrappix-admin/internal/adapter/api/middleware"
	"scrappix-admin/internal/adapter/api/router"
	"scrappix-admin/internal/adapter/repository"
	"scrappix-admin/internal/domain/entity"
	"scrappix-admin/internal/infrastructure/firebase"
	ws "scrappix-admin/internal/infrastructure/websocket"
	"scrappix-admin/internal/usecase"
	"scrappix-admin/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	var opt option.ClientOption

	serviceAccountJSON := os.Getenv("FIREBASE_SERVICE_ACCOUNT_JSON")
	if serviceAccountJSON != "" {
		log.Printf("Using Firebase service account from environment variable")
		opt = option.WithCredentialsJSON([]byte(serviceAccountJSON))
	} else {
		serviceAccountPath := os.Getenv("FIREBASE_SERVICE_ACCOUNT_PATH")
		if serviceAccountPath == "" {
			serviceAccountPath = "./service-account.json"
		}

		if _, err := os.Stat(serviceAccountPath); os.IsNotExist(err) {
			log.Fatalf("Service account file does not exist: %s", serviceAccountPath)
		}

		log.Printf("Using Firebase service account from file: %s", serviceAccountPath)
		opt = option.WithCredentialsFile(serviceAccountPath)
	}

	firebaseApp, err := fbapp.NewApp(ctx, &fbapp.Config{ProjectID: cfg.FirebaseProject}, opt)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase: %v", err)
	}

	authClient, err := firebaseApp.Auth(ctx)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase Auth: %v", err)
	}

	firestoreClient, err := firestore.NewClient(ctx, cfg.FirebaseProject, opt)
	if err != nil {
		log.Fatalf("Failed to create Firestore client: %v", err)
	}
	defer firestoreClient.Close()

	itemRepo := repository.NewFirestoreMarketplaceItemRepository(firestoreClient)
	notifRepo := repository.NewFirestoreNotificationRepository(firestoreClient)
	reportRepo := repository.NewFirestoreChatReportRepository(firestoreClient)
	removalRepo := repository.NewFirestoreChatRemovalRepository(firestoreClient)
	userRepo := repository.NewFirestoreUserRepository(firestoreClient)
	adminRepo := repository.NewFirestoreAdminRepository(firestoreClient)
	txnRepo := repository.NewFirestoreTransactionRepository(firestoreClient)
	scanRepo := repository.NewFirestoreScannedMaterialRepository(firestoreClient)
	chatRepo := repository.NewFirestoreChatRepository(firestoreClient)

	firebaseAuthClient := firebase.NewFirebaseAuthClient(authClient)

	activityLogger := usecase.NewActivityLogger(adminRepo)
	adminUseCase := usecase.NewAdminUseCase(adminRepo, cfg.ActivityFeedLimit)
	dashboardUseCase := usecase.NewDashboardUseCase(userRepo, reportRepo, itemRepo, scanRepo)
	marketplaceUseCase := usecase.NewMarketplaceUseCase(itemRepo, notifRepo, activityLogger)
	reportsUseCase := usecase.NewReportsUseCase(reportRepo, removalRepo, userRepo, itemRepo, activityLogger)
	userAdminUseCase := usecase.NewUserAdminUseCase(userRepo, reportRepo, removalRepo, itemRepo, txnRepo, firebaseAuthClient, activityLogger)
	chatUseCase := usecase.NewChatUseCase(chatRepo, userRepo)

	hub := ws.NewHub()
	for _, status := range []string{
		entity.ItemStatusPending,
		entity.ItemStatusAvailable,
		entity.ItemStatusRejected,
		entity.ItemStatusRemoved,
	} {
		status := status
		hub.RegisterTopic("marketplace:"+status, func(ctx context.Context, adminID string) (<-chan interface{}, func(), error) {
			items, stop, err := marketplaceUseCase.WatchItems(ctx, status)
			if err != nil {
				return nil, nil, err
			}
			out := make(chan interface{})
			go func() {
				defer close(out)
				for snapshot := range items {
					out <- snapshot
				}
			}()
			return out, stop, nil
		})
	}
	hub.RegisterTopic("activities", func(ctx context.Context, adminID string) (<-chan interface{}, func(), error) {
		activities, stop, err := adminUseCase.WatchActivities(ctx, adminID)
		if err != nil {
			return nil, nil, err
		}
		out := make(chan interface{})
		go func() {
			defer close(out)
			for snapshot := range activities {
				out <- snapshot
			}
		}()
		return out, stop, nil
	})
	hub.Start(ctx)

	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.Validator = api.NewValidator()

	authMiddleware := apimiddleware.NewAuthMiddleware(authClient)
	adminMiddleware := apimiddleware.NewAdminMiddleware(adminUseCase)

	handlers := router.Handlers{
		Dashboard:   handler.NewDashboardHandler(dashboardUseCase, adminUseCase),
		Marketplace: handler.NewMarketplaceHandler(marketplaceUseCase),
		Reports:     handler.NewReportsHandler(reportsUseCase),
		Users:       handler.NewUserHandler(userAdminUseCase),
		Chats:       handler.NewChatHandler(chatUseCase),
		Admin:       handler.NewAdminHandler(adminUseCase),
		Stream:      handler.NewStreamHandler(hub),
	}

	router.Setup(e, handlers, authMiddleware, adminMiddleware)

	log.Printf("Starting server on port %s...", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
