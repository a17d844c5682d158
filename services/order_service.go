package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/yeremiapane/restaurant-qr/models"
	"github.com/yeremiapane/restaurant-qr/repository"
)

// OrderItemInput is one requested line of an order before pricing.
type OrderItemInput struct {
	DishID   uint
	Quantity int
	Comment  string
}

// OrderService prices and persists orders as atomic units and governs
// status updates.
type OrderService struct {
	sessions *SessionService
	dishes   repository.DishRepository
	orders   repository.OrderRepository
	log      *logrus.Logger
}

func NewOrderService(sessions *SessionService, dishes repository.DishRepository, orders repository.OrderRepository, log *logrus.Logger) *OrderService {
	return &OrderService{sessions: sessions, dishes: dishes, orders: orders, log: log}
}

// CreateOrder validates every item in memory before anything is written,
// then persists order and items in one unit. A failure on any item
// aborts the whole call with no side effects.
//
// Dish name and price are snapshotted into the items; later catalog
// edits never touch an existing order. Availability is only a boolean,
// so two concurrent orders can both pass the disponible check; there is
// no stock counter to decrement.
func (s *OrderService) CreateOrder(ctx context.Context, sessionID string, items []OrderItemInput, note string) (*models.Order, error) {
	session, err := s.sessions.Validate(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if len(items) == 0 {
		return nil, ErrEmptyOrder
	}

	// Phase one: resolve and price everything without writing.
	orderItems := make([]models.OrderItem, 0, len(items))
	var total float64

	for _, item := range items {
		if item.Quantity < 1 {
			return nil, fmt.Errorf("%w: dish %d", ErrInvalidQuantity, item.DishID)
		}

		dish, err := s.dishes.FindByID(ctx, item.DishID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("%w: %d", ErrDishNotFound, item.DishID)
			}
			return nil, err
		}
		if !dish.Disponible {
			return nil, fmt.Errorf("%w: %q", ErrDishUnavailable, dish.Nom)
		}

		total += dish.Prix * float64(item.Quantity)
		orderItems = append(orderItems, models.OrderItem{
			DishID:   dish.ID,
			Name:     dish.Nom,
			Quantity: item.Quantity,
			Price:    dish.Prix,
			Comment:  item.Comment,
		})
	}

	// Phase two: commit.
	order := &models.Order{
		TableID:    session.TableID,
		SessionID:  sessionID,
		Items:      orderItems,
		TotalPrice: total,
		Status:     models.OrderStatusPending,
		Note:       note,
	}
	if err := s.orders.Create(ctx, order); err != nil {
		return nil, err
	}

	s.log.WithFields(logrus.Fields{
		"order_id":    order.ID,
		"table_id":    order.TableID,
		"total_price": order.TotalPrice,
		"items":       len(order.Items),
	}).Info("order created")

	return order, nil
}

func (s *OrderService) GetByID(ctx context.Context, id uint) (*models.Order, error) {
	order, err := s.orders.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return order, nil
}

// ListBySession returns the session's orders newest first. The session
// itself may already be gone; orders outlive it.
func (s *OrderService) ListBySession(ctx context.Context, sessionID string) ([]models.Order, error) {
	return s.orders.FindBySessionID(ctx, sessionID)
}

// UpdateStatus only checks that status is a member of the enumeration.
// Any value is accepted from any current state; no transition graph is
// enforced. See DESIGN.md before tightening this.
func (s *OrderService) UpdateStatus(ctx context.Context, id uint, status string) (*models.Order, error) {
	if !models.IsValidOrderStatus(status) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	rows, err := s.orders.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		return nil, ErrOrderNotFound
	}

	s.log.WithFields(logrus.Fields{
		"order_id": id,
		"status":   status,
	}).Info("order status updated")

	return s.GetByID(ctx, id)
}
