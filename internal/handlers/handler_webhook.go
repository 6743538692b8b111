package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/transparify/transparify_backend/internal/apperrors"
	"github.com/transparify/transparify_backend/internal/core/ports/gateways"
	portssvc "github.com/transparify/transparify_backend/internal/core/ports/services"
	"github.com/transparify/transparify_backend/internal/middleware"
)

const razorpaySignatureHeader = "X-Razorpay-Signature"

// razorpayWebhookEvent is the subset of the Razorpay webhook payload we act on.
type razorpayWebhookEvent struct {
	Event   string `json:"event"`
	Payload struct {
		Payment struct {
			Entity struct {
				ID     string `json:"id"`
				Status string `json:"status"`
			} `json:"entity"`
		} `json:"payment"`
	} `json:"payload"`
}

// webhookHandler receives payment provider callbacks.
type webhookHandler struct {
	transactionService portssvc.TransactionSvcFacade
	paymentGateway     gateways.PaymentGateway
}

func newWebhookHandler(transactionService portssvc.TransactionSvcFacade, paymentGateway gateways.PaymentGateway) *webhookHandler {
	return &webhookHandler{
		transactionService: transactionService,
		paymentGateway:     paymentGateway,
	}
}

// handleRazorpayWebhook godoc
// @Summary Razorpay payment webhook
// @Description Confirms pending financial transactions on payment.captured events. Signature is verified over the raw request body. Redelivery of the same event is a no-op.
// @Tags payments
// @Accept json
// @Produce json
// @Param X-Razorpay-Signature header string true "HMAC-SHA256 signature of the raw body"
// @Success 200 {object} map[string]string
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /payments/webhook/razorpay [post]
func (h *webhookHandler) handleRazorpayWebhook(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	// The signature covers the raw bytes, so read before any JSON decoding.
	rawBody, err := io.ReadAll(c.Request.Body)
	if err != nil {
		logger.Warn("Failed to read webhook body", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	signature := c.GetHeader(razorpaySignatureHeader)
	if err := h.paymentGateway.VerifyWebhookSignature(rawBody, signature); err != nil {
		logger.Warn("Rejected webhook with invalid signature")
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid webhook signature"})
		return
	}

	var event razorpayWebhookEvent
	if err := json.Unmarshal(rawBody, &event); err != nil {
		logger.Warn("Failed to parse webhook payload", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid webhook payload"})
		return
	}

	if event.Event != "payment.captured" {
		logger.Info("Ignoring unhandled webhook event", slog.String("event", event.Event))
		c.JSON(http.StatusOK, gin.H{"status": "ignored"})
		return
	}

	providerRef := event.Payload.Payment.Entity.ID
	if providerRef == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid webhook payload"})
		return
	}

	txn, err := h.transactionService.ConfirmPaymentCapture(c.Request.Context(), providerRef)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Webhook for unknown payment reference", slog.String("provider_ref", providerRef))
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "No transaction matches this payment"})
			return
		}
		logger.Error("Failed to confirm payment capture", slog.String("error", err.Error()), slog.String("provider_ref", providerRef))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to process webhook"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok", "transaction_id": txn.TransactionID})
}

// registerWebhookRoutes registers payment provider webhook routes.
func registerWebhookRoutes(group *gin.RouterGroup, transactionService portssvc.TransactionSvcFacade, paymentGateway gateways.PaymentGateway) {
	h := newWebhookHandler(transactionService, paymentGateway)

	payments := group.Group("/payments")
	{
		payments.POST("/webhook/razorpay", h.handleRazorpayWebhook)
	}
}
