package order

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/Pisarev203/tg-shop/internal/notify"
)

const (
	defaultListLimit = 200
	notifyTimeout    = 5 * time.Second
)

// Cart is what the storefront submits at checkout. Total is declared by the
// client and stored verbatim.
type Cart struct {
	Customer     string
	Metro        string
	DeliveryTime string
	Comment      string
	Items        []LineItem
	Total        int64
}

type Service interface {
	// Place persists the cart as a new order and returns it. The operator
	// notification is dispatched in the background and never affects the
	// result.
	Place(ctx context.Context, cart Cart) (*Order, error)
	Orders(ctx context.Context, limit int) ([]Order, error)
	UpdateStatus(ctx context.Context, id int64, status string) error
}

type service struct {
	repo     Repository
	notifier notify.Notifier
}

func NewService(repo Repository, notifier notify.Notifier) Service {
	return &service{repo: repo, notifier: notifier}
}

func (s *service) Place(ctx context.Context, cart Cart) (*Order, error) {
	o := &Order{
		Customer:     strings.TrimSpace(cart.Customer),
		Metro:        strings.TrimSpace(cart.Metro),
		DeliveryTime: strings.TrimSpace(cart.DeliveryTime),
		Comment:      strings.TrimSpace(cart.Comment),
		Items:        cart.Items,
		Total:        cart.Total,
		Status:       StatusNew,
	}

	if err := s.repo.Create(ctx, o); err != nil {
		log.Error().Err(err).Msg("service: failed to create order")
		return nil, fmt.Errorf("service: failed to create order: %w", err)
	}

	log.Info().Int64("order_id", o.ID).Int64("total", o.Total).Msg("service: order placed")

	go s.dispatchNotification(*o)

	return o, nil
}

// dispatchNotification runs outside the request cycle with its own deadline.
// Failures are logged and dropped, never retried.
func (s *service) dispatchNotification(o Order) {
	ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
	defer cancel()

	if err := s.notifier.Send(ctx, Summary(&o)); err != nil {
		log.Warn().Err(err).Int64("order_id", o.ID).Msg("service: order notification failed")
	}
}

func (s *service) Orders(ctx context.Context, limit int) ([]Order, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}

	orders, err := s.repo.List(ctx, limit)
	if err != nil {
		log.Error().Err(err).Msg("service: failed to list orders")
		return nil, fmt.Errorf("service: failed to list orders: %w", err)
	}

	return orders, nil
}

func (s *service) UpdateStatus(ctx context.Context, id int64, status string) error {
	status = strings.TrimSpace(status)
	if status == "" {
		status = StatusNew
	}

	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, ErrOrderNotFound) {
			return ErrOrderNotFound
		}
		log.Error().Err(err).Int64("order_id", id).Msg("service: failed to update order status")
		return fmt.Errorf("service: failed to update order status: %w", err)
	}

	log.Info().Int64("order_id", id).Str("status", status).Msg("service: order status updated")
	return nil
}
