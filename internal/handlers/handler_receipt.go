package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/transparify/transparify_backend/internal/apperrors"
	portssvc "github.com/transparify/transparify_backend/internal/core/ports/services"
	"github.com/transparify/transparify_backend/internal/middleware"
)

// receiptHandler serves public receipt lookup and verification.
type receiptHandler struct {
	receiptService portssvc.ReceiptSvcFacade
}

func newReceiptHandler(receiptService portssvc.ReceiptSvcFacade) *receiptHandler {
	return &receiptHandler{receiptService: receiptService}
}

// getReceiptPDF godoc
// @Summary Look up a stored receipt by its receipt number
// @Description Returns the stored receipt artifact location for a receipt number. Never triggers rendering.
// @Tags receipts
// @Produce json
// @Param id path string true "Receipt number, e.g. DON-1234567890123456"
// @Success 200 {object} dto.ReceiptPDFResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /receipts/{id}/pdf [get]
func (h *receiptHandler) getReceiptPDF(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	receiptToken := c.Param("id")

	resp, err := h.receiptService.GetReceiptPDF(c.Request.Context(), receiptToken)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Receipt not found"})
		} else if errors.Is(err, apperrors.ErrNotReady) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Receipt has not been generated yet"})
		} else {
			logger.Error("Failed to fetch receipt", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to fetch receipt"})
		}
		return
	}

	c.JSON(http.StatusOK, resp)
}

// verifyReceipt godoc
// @Summary Verify a donation receipt
// @Description Public verification endpoint. An unknown receipt number is a negative verification result, not an error. Donor contact details are redacted.
// @Tags receipts
// @Produce json
// @Param id path string true "Receipt number"
// @Success 200 {object} dto.VerifyReceiptResponse
// @Failure 500 {object} ErrorResponse
// @Router /receipts/{id}/verify [get]
func (h *receiptHandler) verifyReceipt(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	receiptToken := c.Param("id")

	resp, err := h.receiptService.VerifyReceipt(c.Request.Context(), receiptToken)
	if err != nil {
		logger.Error("Failed to verify receipt", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to verify receipt"})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// registerReceiptRoutes registers the public receipt routes. Verification is
// rate limited since it is unauthenticated and receipt numbers are guessable
// only by brute force.
func registerReceiptRoutes(group *gin.RouterGroup, receiptService portssvc.ReceiptSvcFacade, verifyLimiter gin.HandlerFunc) {
	h := newReceiptHandler(receiptService)

	receipts := group.Group("/receipts")
	{
		receipts.GET("/:id/pdf", h.getReceiptPDF)
		receipts.GET("/:id/verify", verifyLimiter, h.verifyReceipt)
	}
}
