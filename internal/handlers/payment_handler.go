package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"atspass/internal/metrics"
	"atspass/internal/models"
	"atspass/internal/services"
)

type PaymentHandler struct {
	payments services.PaymentService
	dayPass  services.DayPassService
	logger   *zap.Logger
}

func NewPaymentHandler(payments services.PaymentService, dayPass services.DayPassService, logger *zap.Logger) *PaymentHandler {
	return &PaymentHandler{
		payments: payments,
		dayPass:  dayPass,
		logger:   logger,
	}
}

// HandleVerifyPayment handles GET /verify-payment. It confirms the checkout
// session is paid with the provider, then issues the signed day-pass token.
func (h *PaymentHandler) HandleVerifyPayment(c *fiber.Ctx) error {
	if h.payments == nil {
		return c.Status(fiber.StatusInternalServerError).JSON(models.VerifyPaymentResponse{
			Error: "Payment provider not configured",
		})
	}
	if h.dayPass == nil {
		return c.Status(fiber.StatusInternalServerError).JSON(models.VerifyPaymentResponse{
			Error: "Token secret not configured",
		})
	}

	sessionID := c.Query("session_id")
	if sessionID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(models.VerifyPaymentResponse{
			Error: "Missing session ID",
		})
	}

	paid, err := h.payments.SessionPaid(sessionID)
	if err != nil {
		h.logger.Error("payment verification failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(models.VerifyPaymentResponse{
			Error: "Verification failed",
		})
	}

	if !paid {
		return c.Status(fiber.StatusPaymentRequired).JSON(models.VerifyPaymentResponse{
			Error: "Payment not completed",
		})
	}

	token, err := h.dayPass.Issue(sessionID)
	if err != nil {
		h.logger.Error("day pass issuance failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(models.VerifyPaymentResponse{
			Error: "Verification failed",
		})
	}

	metrics.RecordDayPassIssued()

	return c.JSON(models.VerifyPaymentResponse{
		Success:      true,
		DayPassToken: token,
		ExpiresIn:    "24 hours",
	})
}
