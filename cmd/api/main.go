package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"atspass/internal/config"
	"atspass/internal/handlers"
	"atspass/internal/logger"
	"atspass/internal/middleware"
	"atspass/internal/ratelimit"
	"atspass/internal/services"
)

func main() {
	cfg := config.Load()

	zlog, err := logger.New(cfg.Server.Env)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer zlog.Sync()

	zlog.Info("config loaded", zap.String("env", cfg.Server.Env))

	// Services are nil when their configuration is absent; the owning
	// handler answers 500 for that endpoint while the rest keep working.
	var evaluator services.EvaluatorService
	gemini, err := services.NewGeminiService(context.Background(), cfg.Gemini.APIKey, cfg.Gemini.Model)
	if err != nil {
		zlog.Warn("gemini unavailable, evaluation endpoint disabled", zap.Error(err))
	} else {
		evaluator = services.NewEvaluatorService(gemini, zlog)
	}

	var payments services.PaymentService
	payments, err = services.NewStripePaymentService(cfg.Stripe.SecretKey, cfg.Stripe.PriceID, cfg.App.BaseURL)
	if err != nil {
		zlog.Warn("stripe unavailable, payment endpoints disabled", zap.Error(err))
		payments = nil
	}

	var dayPass services.DayPassService
	dayPass, err = services.NewDayPassService(cfg.Token.Secret)
	if err != nil {
		zlog.Warn("token secret missing, day passes disabled", zap.Error(err))
		dayPass = nil
	}

	limiter := ratelimit.NewLimiter(ratelimit.NewMemoryStore(),
		ratelimit.WithWindow(cfg.RateLimit.Window),
		ratelimit.WithMaxRequests(cfg.RateLimit.MaxRequests),
		ratelimit.WithSweepThreshold(cfg.RateLimit.SweepThreshold),
	)

	evaluateHandler := handlers.NewEvaluateHandler(evaluator, zlog)
	checkoutHandler := handlers.NewCheckoutHandler(payments, zlog)
	paymentHandler := handlers.NewPaymentHandler(payments, dayPass, zlog)

	app := fiber.New(fiber.Config{
		AppName:      "ATS Resume Evaluation API",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		ErrorHandler: customErrorHandler,
	})

	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	api := app.Group("/api/v1")

	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	api.Post("/evaluate",
		middleware.AccessControl(limiter, dayPassOrNoop(dayPass), zlog),
		evaluateHandler.HandleEvaluate,
	)
	api.Post("/checkout", checkoutHandler.HandleCheckout)
	api.Get("/verify-payment", paymentHandler.HandleVerifyPayment)

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "ATS Resume Evaluation API",
			"version": "1.0.0",
			"endpoints": []string{
				"POST /api/v1/evaluate",
				"POST /api/v1/checkout",
				"GET /api/v1/verify-payment",
			},
		})
	})

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		zlog.Info("shutting down server")
		if err := app.Shutdown(); err != nil {
			zlog.Error("server forced to shutdown", zap.Error(err))
		}
	}()

	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	zlog.Info("server starting", zap.String("addr", addr))

	if err := app.Listen(addr); err != nil {
		zlog.Fatal("failed to start server", zap.Error(err))
	}
}

// dayPassOrNoop keeps the access controller total when the token secret is
// unconfigured: every token then fails verification and requests degrade to
// standard rate limiting.
func dayPassOrNoop(s services.DayPassService) services.DayPassService {
	if s != nil {
		return s
	}
	return noopDayPass{}
}

type noopDayPass struct{}

func (noopDayPass) Issue(string) (string, error) {
	return "", fmt.Errorf("token secret not configured")
}

func (noopDayPass) Verify(string) (*services.DayPassClaims, bool) {
	return nil, false
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
		"code":  code,
	})
}
