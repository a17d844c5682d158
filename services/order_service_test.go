package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/yeremiapane/restaurant-qr/models"
)

// seedOrderData creates a table, an open session and two dishes.
func seedOrderData(t *testing.T, db *gorm.DB) (session models.ClientSession, steak models.Dish, eau models.Dish) {
	t.Helper()

	table := models.Table{Numero: 1, QRCode: "table_1_123", Active: true}
	if err := db.Create(&table).Error; err != nil {
		t.Fatalf("seed table: %v", err)
	}

	session = models.ClientSession{
		SessionID: "order-test-session",
		TableID:   table.ID,
		StartedAt: time.Now(),
	}
	if err := db.Create(&session).Error; err != nil {
		t.Fatalf("seed session: %v", err)
	}

	menu := models.Menu{Nom: "Menu", Actif: true}
	db.Create(&menu)
	category := models.Category{MenuID: menu.ID, Nom: "Plats", OrdreAffichage: 1}
	db.Create(&category)

	steak = models.Dish{CategorieID: category.ID, Nom: "Steak frites", Prix: 1000, Disponible: true}
	eau = models.Dish{CategorieID: category.ID, Nom: "Eau minérale", Prix: 500, Disponible: true}
	db.Create(&steak)
	db.Create(&eau)
	return session, steak, eau
}

func TestCreateOrderTotalPrice(t *testing.T) {
	db := setupTestDB(t)
	svc := newOrderService(db)
	ctx := context.Background()

	session, steak, eau := seedOrderData(t, db)

	order, err := svc.CreateOrder(ctx, session.SessionID, []OrderItemInput{
		{DishID: steak.ID, Quantity: 2},
		{DishID: eau.ID, Quantity: 1, Comment: "sans glaçons"},
	}, "fenêtre")
	assert.NoError(t, err)

	assert.Equal(t, session.TableID, order.TableID)
	assert.Equal(t, session.SessionID, order.SessionID)
	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.Equal(t, 2500.0, order.TotalPrice)
	assert.Equal(t, "fenêtre", order.Note)
	assert.Len(t, order.Items, 2)
	assert.Equal(t, "Steak frites", order.Items[0].Name)
	assert.Equal(t, 1000.0, order.Items[0].Price)
	assert.Equal(t, "sans glaçons", order.Items[1].Comment)
}

func TestOrderSurvivesPriceEdit(t *testing.T) {
	db := setupTestDB(t)
	svc := newOrderService(db)
	ctx := context.Background()

	session, steak, _ := seedOrderData(t, db)

	order, err := svc.CreateOrder(ctx, session.SessionID, []OrderItemInput{
		{DishID: steak.ID, Quantity: 2},
	}, "")
	assert.NoError(t, err)

	// Catalog edit after the fact must not touch the order.
	db.Model(&models.Dish{}).Where("id = ?", steak.ID).Update("prix", 9999)

	reloaded, err := svc.GetByID(ctx, order.ID)
	assert.NoError(t, err)
	assert.Equal(t, 2000.0, reloaded.TotalPrice)
	assert.Equal(t, 1000.0, reloaded.Items[0].Price)
}

func TestCreateOrderUnavailableDishAbortsAll(t *testing.T) {
	db := setupTestDB(t)
	svc := newOrderService(db)
	ctx := context.Background()

	session, steak, eau := seedOrderData(t, db)
	db.Model(&models.Dish{}).Where("id = ?", eau.ID).Update("disponible", false)

	var before int64
	db.Model(&models.Order{}).Count(&before)

	_, err := svc.CreateOrder(ctx, session.SessionID, []OrderItemInput{
		{DishID: steak.ID, Quantity: 1}, // valid
		{DishID: eau.ID, Quantity: 1},   // unavailable
	}, "")
	assert.ErrorIs(t, err, ErrDishUnavailable)

	// Nothing persisted, not even the valid first item.
	var after int64
	db.Model(&models.Order{}).Count(&after)
	assert.Equal(t, before, after)

	var items int64
	db.Model(&models.OrderItem{}).Count(&items)
	assert.Zero(t, items)
}

func TestCreateOrderUnknownDish(t *testing.T) {
	db := setupTestDB(t)
	svc := newOrderService(db)

	session, _, _ := seedOrderData(t, db)

	_, err := svc.CreateOrder(context.Background(), session.SessionID, []OrderItemInput{
		{DishID: 9999, Quantity: 1},
	}, "")
	assert.ErrorIs(t, err, ErrDishNotFound)

	var count int64
	db.Model(&models.Order{}).Count(&count)
	assert.Zero(t, count)
}

func TestCreateOrderEmptyItems(t *testing.T) {
	db := setupTestDB(t)
	svc := newOrderService(db)

	session, _, _ := seedOrderData(t, db)

	_, err := svc.CreateOrder(context.Background(), session.SessionID, nil, "")
	assert.ErrorIs(t, err, ErrEmptyOrder)
}

func TestCreateOrderZeroQuantity(t *testing.T) {
	db := setupTestDB(t)
	svc := newOrderService(db)

	session, steak, _ := seedOrderData(t, db)

	_, err := svc.CreateOrder(context.Background(), session.SessionID, []OrderItemInput{
		{DishID: steak.ID, Quantity: 0},
	}, "")
	assert.ErrorIs(t, err, ErrInvalidQuantity)
}

func TestCreateOrderSessionErrorsPropagate(t *testing.T) {
	db := setupTestDB(t)
	svc := newOrderService(db)
	ctx := context.Background()

	_, steak, _ := seedOrderData(t, db)

	_, err := svc.CreateOrder(ctx, "no-such-session", []OrderItemInput{
		{DishID: steak.ID, Quantity: 1},
	}, "")
	assert.ErrorIs(t, err, ErrSessionNotFound)

	table := models.Table{Numero: 7, QRCode: "table_7_123", Active: true}
	db.Create(&table)
	db.Create(&models.ClientSession{
		SessionID: "expired-session",
		TableID:   table.ID,
		StartedAt: time.Now().Add(-25 * time.Hour),
	})

	_, err = svc.CreateOrder(ctx, "expired-session", []OrderItemInput{
		{DishID: steak.ID, Quantity: 1},
	}, "")
	assert.ErrorIs(t, err, ErrSessionExpired)
}

func TestListBySessionNewestFirst(t *testing.T) {
	db := setupTestDB(t)
	svc := newOrderService(db)
	ctx := context.Background()

	session, steak, _ := seedOrderData(t, db)

	first, err := svc.CreateOrder(ctx, session.SessionID, []OrderItemInput{{DishID: steak.ID, Quantity: 1}}, "")
	assert.NoError(t, err)
	second, err := svc.CreateOrder(ctx, session.SessionID, []OrderItemInput{{DishID: steak.ID, Quantity: 2}}, "")
	assert.NoError(t, err)

	orders, err := svc.ListBySession(ctx, session.SessionID)
	assert.NoError(t, err)
	assert.Len(t, orders, 2)
	assert.Equal(t, second.ID, orders[0].ID)
	assert.Equal(t, first.ID, orders[1].ID)
}

func TestOrderSurvivesSessionEnd(t *testing.T) {
	db := setupTestDB(t)
	svc := newOrderService(db)
	ctx := context.Background()

	session, steak, _ := seedOrderData(t, db)

	order, err := svc.CreateOrder(ctx, session.SessionID, []OrderItemInput{{DishID: steak.ID, Quantity: 1}}, "")
	assert.NoError(t, err)

	assert.NoError(t, svc.sessions.End(ctx, session.SessionID))

	reloaded, err := svc.GetByID(ctx, order.ID)
	assert.NoError(t, err)
	assert.Equal(t, session.SessionID, reloaded.SessionID)

	orders, err := svc.ListBySession(ctx, session.SessionID)
	assert.NoError(t, err)
	assert.Len(t, orders, 1)
}

func TestUpdateStatusPermissive(t *testing.T) {
	db := setupTestDB(t)
	svc := newOrderService(db)
	ctx := context.Background()

	session, steak, _ := seedOrderData(t, db)

	order, err := svc.CreateOrder(ctx, session.SessionID, []OrderItemInput{{DishID: steak.ID, Quantity: 1}}, "")
	assert.NoError(t, err)

	// Any enum member from any state, including backwards moves.
	for _, status := range []string{
		models.OrderStatusPaid,
		models.OrderStatusPending,
		models.OrderStatusCancelled,
		models.OrderStatusPreparing,
	} {
		updated, err := svc.UpdateStatus(ctx, order.ID, status)
		assert.NoError(t, err)
		assert.Equal(t, status, updated.Status)
	}
}

func TestUpdateStatusRejectsUnknownValue(t *testing.T) {
	db := setupTestDB(t)
	svc := newOrderService(db)
	ctx := context.Background()

	session, steak, _ := seedOrderData(t, db)

	order, err := svc.CreateOrder(ctx, session.SessionID, []OrderItemInput{{DishID: steak.ID, Quantity: 1}}, "")
	assert.NoError(t, err)

	_, err = svc.UpdateStatus(ctx, order.ID, "EATEN")
	assert.ErrorIs(t, err, ErrInvalidStatus)

	reloaded, err := svc.GetByID(ctx, order.ID)
	assert.NoError(t, err)
	assert.Equal(t, models.OrderStatusPending, reloaded.Status)
}

func TestUpdateStatusUnknownOrder(t *testing.T) {
	db := setupTestDB(t)
	svc := newOrderService(db)

	_, err := svc.UpdateStatus(context.Background(), 4242, models.OrderStatusReady)
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestGetByIDUnknownOrder(t *testing.T) {
	db := setupTestDB(t)
	svc := newOrderService(db)

	_, err := svc.GetByID(context.Background(), 4242)
	assert.ErrorIs(t, err, ErrOrderNotFound)
}
