package Controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/yeremiapane/restaurant-qr/controllers"
	"github.com/yeremiapane/restaurant-qr/models"
	"github.com/yeremiapane/restaurant-qr/repository"
	"github.com/yeremiapane/restaurant-qr/services"
	"github.com/yeremiapane/restaurant-qr/utils"
)

func setupTestDBForOrders() *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}
	err = db.AutoMigrate(
		&models.Table{}, &models.ClientSession{},
		&models.Menu{}, &models.Category{}, &models.Dish{},
		&models.Order{}, &models.OrderItem{},
	)
	if err != nil {
		panic(err)
	}

	table := models.Table{Numero: 5, QRCode: "table_5_abc", Active: true}
	db.Create(&table)
	db.Create(&models.ClientSession{
		SessionID: "order-http-session",
		TableID:   table.ID,
		StartedAt: time.Now(),
	})

	menu := models.Menu{Nom: "Menu", Actif: true}
	db.Create(&menu)
	category := models.Category{MenuID: menu.ID, Nom: "Plats", OrdreAffichage: 1}
	db.Create(&category)
	db.Create(&models.Dish{CategorieID: category.ID, Nom: "Steak frites", Prix: 1000, Disponible: true})
	db.Create(&models.Dish{CategorieID: category.ID, Nom: "Eau minérale", Prix: 500, Disponible: true})
	db.Create(&models.Dish{CategorieID: category.ID, Nom: "Plat du jour", Prix: 800, Disponible: false})
	return db
}

func setupOrderRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	sessionSvc := services.NewSessionService(
		repository.NewTableRepository(db),
		repository.NewSessionRepository(db),
		utils.SilentLogger(),
	)
	orderSvc := services.NewOrderService(
		sessionSvc,
		repository.NewDishRepository(db),
		repository.NewOrderRepository(db),
		utils.SilentLogger(),
	)
	ctrl := controllers.NewOrderController(orderSvc)

	router.POST("/orders", ctrl.CreateOrder)
	router.GET("/orders", ctrl.ListOrders)
	router.GET("/orders/:order_id", ctrl.GetOrder)
	router.PATCH("/orders/:order_id/status", ctrl.UpdateStatus)
	return router
}

func TestOrderFlow(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForOrders()
	router := setupOrderRouter(db)

	// Place: 2 x 1000 + 1 x 500.
	w := postJSON(router, "/orders", map[string]interface{}{
		"session_id": "order-http-session",
		"items": []map[string]interface{}{
			{"dish_id": 1, "quantity": 2},
			{"dish_id": 2, "quantity": 1, "comment": "sans glaçons"},
		},
		"note": "table près de la fenêtre",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	resp := decodeEnvelope(t, w)
	assert.Equal(t, true, resp["success"])
	order := resp["data"].(map[string]interface{})
	assert.Equal(t, float64(2500), order["total_price"])
	assert.Equal(t, models.OrderStatusPending, order["status"])
	items := order["items"].([]interface{})
	assert.Len(t, items, 2)
	firstItem := items[0].(map[string]interface{})
	assert.Equal(t, "Steak frites", firstItem["name"])
	assert.Equal(t, float64(1000), firstItem["price"])

	orderID := int(order["id"].(float64))

	// Fetch by id.
	req, _ := http.NewRequest("GET", fmt.Sprintf("/orders/%d", orderID), nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	// List for the session.
	req, _ = http.NewRequest("GET", "/orders?session_id=order-http-session", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	resp = decodeEnvelope(t, w)
	assert.Equal(t, float64(1), resp["count"])

	// Walk the status forward.
	body, _ := json.Marshal(map[string]string{"status": models.OrderStatusPreparing})
	req, _ = http.NewRequest("PATCH", fmt.Sprintf("/orders/%d/status", orderID), bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	resp = decodeEnvelope(t, w)
	updated := resp["data"].(map[string]interface{})
	assert.Equal(t, models.OrderStatusPreparing, updated["status"])
}

func TestCreateOrderValidation(t *testing.T) {
	utils.InitLogger()
	router := setupOrderRouter(setupTestDBForOrders())

	// Missing session_id.
	w := postJSON(router, "/orders", map[string]interface{}{
		"items": []map[string]interface{}{{"dish_id": 1, "quantity": 1}},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, controllers.CodeValidationError, errorCode(t, w))

	// Empty items.
	w = postJSON(router, "/orders", map[string]interface{}{
		"session_id": "order-http-session",
		"items":      []map[string]interface{}{},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, controllers.CodeValidationError, errorCode(t, w))

	// Zero quantity is caught by binding before the workflow runs.
	w = postJSON(router, "/orders", map[string]interface{}{
		"session_id": "order-http-session",
		"items":      []map[string]interface{}{{"dish_id": 1, "quantity": 0}},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, controllers.CodeValidationError, errorCode(t, w))
}

func TestCreateOrderUnavailableDishHTTP(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForOrders()
	router := setupOrderRouter(db)

	w := postJSON(router, "/orders", map[string]interface{}{
		"session_id": "order-http-session",
		"items": []map[string]interface{}{
			{"dish_id": 1, "quantity": 1},
			{"dish_id": 3, "quantity": 1}, // disponible: false
		},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, controllers.CodeDishUnavailable, errorCode(t, w))

	var count int64
	db.Model(&models.Order{}).Count(&count)
	assert.Zero(t, count)
}

func TestCreateOrderUnknownSessionHTTP(t *testing.T) {
	utils.InitLogger()
	router := setupOrderRouter(setupTestDBForOrders())

	w := postJSON(router, "/orders", map[string]interface{}{
		"session_id": "no-such-session",
		"items":      []map[string]interface{}{{"dish_id": 1, "quantity": 1}},
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, controllers.CodeInvalidSession, errorCode(t, w))
}

func TestListOrdersRequiresSessionID(t *testing.T) {
	utils.InitLogger()
	router := setupOrderRouter(setupTestDBForOrders())

	req, _ := http.NewRequest("GET", "/orders", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, controllers.CodeValidationError, errorCode(t, w))
}

func TestUpdateStatusRejectsUnknownValueHTTP(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForOrders()
	router := setupOrderRouter(db)

	w := postJSON(router, "/orders", map[string]interface{}{
		"session_id": "order-http-session",
		"items":      []map[string]interface{}{{"dish_id": 1, "quantity": 1}},
	})
	assert.Equal(t, http.StatusCreated, w.Code)
	order := decodeEnvelope(t, w)["data"].(map[string]interface{})
	orderID := int(order["id"].(float64))

	body, _ := json.Marshal(map[string]string{"status": "EATEN"})
	req, _ := http.NewRequest("PATCH", fmt.Sprintf("/orders/%d/status", orderID), bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, controllers.CodeInvalidStatus, errorCode(t, w))
}

func TestGetOrderNotFoundHTTP(t *testing.T) {
	utils.InitLogger()
	router := setupOrderRouter(setupTestDBForOrders())

	req, _ := http.NewRequest("GET", "/orders/4242", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, controllers.CodeOrderNotFound, errorCode(t, w))
}
