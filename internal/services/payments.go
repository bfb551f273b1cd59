package services

import (
	"fmt"
	"strings"

	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/client"
)

const defaultReturnPath = "/results"

// PaymentService wraps the external payment provider. The rest of the system
// only sees a checkout URL and a paid/unpaid session status.
type PaymentService interface {
	CreateCheckoutSession(returnPath string) (string, error)
	SessionPaid(sessionID string) (bool, error)
}

type stripePaymentService struct {
	sc      *client.API
	priceID string
	baseURL string
}

func NewStripePaymentService(secretKey, priceID, baseURL string) (PaymentService, error) {
	if secretKey == "" {
		return nil, fmt.Errorf("stripe secret key is required")
	}
	if priceID == "" {
		return nil, fmt.Errorf("stripe price id is required")
	}
	if baseURL == "" {
		return nil, fmt.Errorf("app base url is required")
	}

	sc := &client.API{}
	sc.Init(secretKey, nil)

	return &stripePaymentService{
		sc:      sc,
		priceID: priceID,
		baseURL: strings.TrimRight(baseURL, "/"),
	}, nil
}

// CreateCheckoutSession starts a one-item card payment session and returns
// the hosted checkout URL. The session id placeholder in the success URL is
// substituted by the provider on redirect.
func (s *stripePaymentService) CreateCheckoutSession(returnPath string) (string, error) {
	if returnPath == "" {
		returnPath = defaultReturnPath
	}

	params := &stripe.CheckoutSessionParams{
		Mode:               stripe.String(string(stripe.CheckoutSessionModePayment)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				Price:    stripe.String(s.priceID),
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL: stripe.String(s.baseURL + returnPath + "?session_id={CHECKOUT_SESSION_ID}"),
		CancelURL:  stripe.String(s.baseURL + returnPath + "?canceled=true"),
	}

	session, err := s.sc.CheckoutSessions.New(params)
	if err != nil {
		return "", fmt.Errorf("failed to create checkout session: %w", err)
	}

	return session.URL, nil
}

// SessionPaid retrieves the checkout session and reports whether its payment
// status is paid.
func (s *stripePaymentService) SessionPaid(sessionID string) (bool, error) {
	session, err := s.sc.CheckoutSessions.Get(sessionID, nil)
	if err != nil {
		return false, fmt.Errorf("failed to retrieve checkout session: %w", err)
	}

	return session.PaymentStatus == stripe.CheckoutSessionPaymentStatusPaid, nil
}
