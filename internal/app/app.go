package app

import (
	"context"
	"fmt"

	"github.com/DIMO-Network/server-garage/pkg/fibercommon"
	"github.com/DIMO-Network/shared/pkg/db"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/rs/zerolog"
	_ "github.com/storekit/whatsapp-replies-api/docs" // Import Swagger docs
	"github.com/storekit/whatsapp-replies-api/internal/clients/supabase"
	"github.com/storekit/whatsapp-replies-api/internal/config"
	"github.com/storekit/whatsapp-replies-api/internal/controllers/whatsapp"
	"github.com/storekit/whatsapp-replies-api/internal/services/productrepo"
	"github.com/storekit/whatsapp-replies-api/internal/services/whatsappsender"
)

func CreateServers(ctx context.Context, settings *config.Settings, logger zerolog.Logger) (*fiber.App, error) {
	finder, err := createProductFinder(ctx, settings, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create product lookup backend: %w", err)
	}

	if settings.AccessToken == "" || settings.PhoneNumberID == "" {
		logger.Warn().Msg("Graph API credentials are not configured; replies will be skipped")
	}
	sender := whatsappsender.NewSender(
		settings.GraphAPIBaseURL,
		settings.GraphAPIVersion,
		settings.AccessToken,
		settings.PhoneNumberID,
		nil,
	)

	app, err := CreateFiberApp(logger, finder, sender, settings)
	if err != nil {
		return nil, fmt.Errorf("failed to create fiber app: %w", err)
	}
	return app, nil
}

// CreateFiberApp sets up the API routes.
func CreateFiberApp(logger zerolog.Logger, finder whatsapp.ProductFinder, sender whatsapp.ReplySender, settings *config.Settings) (*fiber.App, error) {
	logger.Info().Msg("Starting WhatsApp Replies API...")

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return fibercommon.ErrorHandler(c, err)
		},
		DisableStartupMessage: true,
	})
	app.Use(fibercommon.ContextLoggerMiddleware)

	app.Get("/swagger/*", swagger.HandlerDefault)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("WhatsApp webhook service is running!")
	})

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"data": "Server is up and running",
		})
	})

	webhookController := whatsapp.NewWebhookController(settings.VerifyToken, finder, sender, settings.ProductMatchLimit)
	logger.Info().Msg("Registering routes...")

	app.Get("/webhook", webhookController.VerifyWebhook)
	app.Post("/webhook", webhookController.ReceiveEvent)

	return app, nil
}

// createProductFinder selects the lookup backend from settings. A nil finder
// puts the webhook in echo mode.
func createProductFinder(ctx context.Context, settings *config.Settings, logger zerolog.Logger) (whatsapp.ProductFinder, error) {
	switch settings.ProductBackend {
	case config.ProductBackendPostgres:
		store := db.NewDbConnectionFromSettings(ctx, &settings.DB, true)
		store.WaitForDB(logger)
		return productrepo.NewRepository(store.DBS().Reader.DB), nil
	case config.ProductBackendSupabase:
		client, err := supabase.New(settings.SupabaseURL, settings.SupabaseKey, logger)
		if err != nil {
			return nil, err
		}
		return client, nil
	case "":
		logger.Info().Msg("no product backend configured; echoing inbound messages")
		return nil, nil
	default:
		return nil, fmt.Errorf("unknown product backend %q", settings.ProductBackend)
	}
}
