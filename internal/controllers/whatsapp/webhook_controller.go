package whatsapp

import (
	"context"
	"strings"

	"github.com/DIMO-Network/server-garage/pkg/richerrors"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/storekit/whatsapp-replies-api/internal/products"
	"github.com/storekit/whatsapp-replies-api/internal/services/replycomposer"
	"github.com/storekit/whatsapp-replies-api/internal/services/whatsappsender"
)

const defaultMatchLimit = 10

// ProductFinder looks up catalog products matching a search term. Both lookup
// backends implement it.
type ProductFinder interface {
	FindByTerm(ctx context.Context, term string, limit int) ([]products.Product, error)
}

// ReplySender delivers a composed reply to a recipient.
type ReplySender interface {
	SendText(ctx context.Context, to, body string) whatsappsender.SendResult
}

// WebhookController handles the Cloud API webhook endpoints: the verification
// handshake and event delivery.
type WebhookController struct {
	verifyToken string
	finder      ProductFinder
	sender      ReplySender
	matchLimit  int
}

// NewWebhookController creates a new WebhookController. finder may be nil, in
// which case replies echo the inbound text instead of searching the catalog.
func NewWebhookController(verifyToken string, finder ProductFinder, sender ReplySender, matchLimit int) *WebhookController {
	if matchLimit < 1 {
		matchLimit = defaultMatchLimit
	}
	return &WebhookController{
		verifyToken: verifyToken,
		finder:      finder,
		sender:      sender,
		matchLimit:  matchLimit,
	}
}

// VerifyWebhook godoc
// @Summary      Webhook verification handshake
// @Description  Echoes hub.challenge when hub.verify_token matches the configured secret. The provider calls this repeatedly; it is side-effect-free.
// @Tags         Webhook
// @Produce      plain
// @Param        hub.verify_token  query  string  true   "Shared verification secret"
// @Param        hub.challenge     query  string  false  "Challenge echoed back verbatim on success"
// @Success      200  {string}  string  "The challenge value"
// @Failure      403  {string}  string  "Verification failed"
// @Router       /webhook [get]
func (w *WebhookController) VerifyWebhook(c *fiber.Ctx) error {
	if c.Query("hub.verify_token") != w.verifyToken {
		zerolog.Ctx(c.UserContext()).Warn().Msg("webhook verification failed")
		return c.Status(fiber.StatusForbidden).SendString("Verification failed")
	}
	zerolog.Ctx(c.UserContext()).Info().Msg("webhook verified")
	return c.SendString(c.Query("hub.challenge"))
}

// ReceiveEvent godoc
// @Summary      Receive a webhook event
// @Description  Accepts a Cloud API event delivery. Messages get a best-effort reply; status updates are logged. Internal lookup or send failures never revoke the 200 acknowledgment, since any non-2xx response triggers provider redelivery.
// @Tags         Webhook
// @Accept       json
// @Produce      plain
// @Param        request  body  InboundEvent  true  "Event payload"
// @Success      200  {string}  string  "EVENT_RECEIVED"
// @Failure      204  "No processable message in the payload"
// @Failure      400  "Body is not a valid JSON object"
// @Router       /webhook [post]
func (w *WebhookController) ReceiveEvent(c *fiber.Ctx) error {
	var event InboundEvent
	if err := c.BodyParser(&event); err != nil {
		return richerrors.Error{
			ExternalMsg: "Invalid request payload",
			Err:         err,
			Code:        fiber.StatusBadRequest,
		}
	}

	logger := zerolog.Ctx(c.UserContext()).With().Str("eventId", uuid.NewString()).Logger()

	msg, ok := event.FirstMessage()
	if !ok {
		if status, ok := event.FirstStatus(); ok {
			logger.Info().
				Str("messageId", status.ID).
				Str("status", status.Status).
				Str("timestamp", status.Timestamp).
				Msg("received status event")
			return c.SendString("EVENT_RECEIVED")
		}
		logger.Info().Msg("no message content found in payload")
		return c.Status(fiber.StatusNoContent).SendString("no message")
	}

	from := msg.From
	text := msg.TextBody()
	if from == "" || text == "" {
		logger.Info().Msg("message event missing sender or text")
		return c.Status(fiber.StatusNoContent).SendString("no message")
	}

	logger.Info().Str("from", from).Str("messageId", msg.ID).Msg("received text message")

	reply := w.composeReply(c.UserContext(), logger, text)

	result := w.sender.SendText(c.UserContext(), from, reply)
	if !result.OK {
		// The acknowledgment already belongs to the provider; a failed send is
		// logged and swallowed so redelivery is not triggered.
		logger.Error().
			Err(result.Err).
			Int("providerStatus", result.ProviderStatus).
			Str("recipient", from).
			Msg("failed to send reply")
	} else {
		logger.Info().Str("providerMessageId", result.MessageID).Msg("reply sent")
	}

	return c.SendString("EVENT_RECEIVED")
}

func (w *WebhookController) composeReply(ctx context.Context, logger zerolog.Logger, text string) string {
	if w.finder == nil {
		return replycomposer.Echo(text)
	}
	term := strings.TrimSpace(text)
	matches, err := w.finder.FindByTerm(ctx, term, w.matchLimit)
	if err != nil {
		// Lookup failures degrade to the not-found reply.
		logger.Error().Err(err).Str("term", term).Msg("product lookup failed")
		matches = nil
	}
	return replycomposer.ProductReply(term, matches)
}
