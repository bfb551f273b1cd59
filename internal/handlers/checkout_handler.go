package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"atspass/internal/models"
	"atspass/internal/services"
)

type CheckoutHandler struct {
	payments services.PaymentService
	logger   *zap.Logger
}

func NewCheckoutHandler(payments services.PaymentService, logger *zap.Logger) *CheckoutHandler {
	return &CheckoutHandler{
		payments: payments,
		logger:   logger,
	}
}

// HandleCheckout handles POST /checkout: it creates a payment-provider
// checkout session and returns the hosted URL the client should redirect to.
func (h *CheckoutHandler) HandleCheckout(c *fiber.Ctx) error {
	if h.payments == nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Payment provider not configured",
		})
	}

	var req models.CheckoutRequest
	if err := c.BodyParser(&req); err != nil && len(c.Body()) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	returnPath := req.ReturnPath
	if returnPath != "" && !strings.HasPrefix(returnPath, "/") {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid return path",
		})
	}

	checkoutURL, err := h.payments.CreateCheckoutSession(returnPath)
	if err != nil {
		h.logger.Error("checkout session creation failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create checkout session",
		})
	}

	return c.JSON(models.CheckoutResponse{CheckoutURL: checkoutURL})
}
