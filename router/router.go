package router

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/yeremiapane/restaurant-qr/controllers"
	"github.com/yeremiapane/restaurant-qr/middlewares"
	"github.com/yeremiapane/restaurant-qr/repository"
	"github.com/yeremiapane/restaurant-qr/services"
	"github.com/yeremiapane/restaurant-qr/utils"
)

func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())

	// 50 requests per second per IP.
	rateLimiter := middlewares.NewRateLimiter(50, 1)
	r.Use(rateLimiter.RateLimit())

	tables := repository.NewTableRepository(db)
	sessions := repository.NewSessionRepository(db)
	menus := repository.NewMenuRepository(db)
	categories := repository.NewCategoryRepository(db)
	dishes := repository.NewDishRepository(db)
	orders := repository.NewOrderRepository(db)

	sessionSvc := services.NewSessionService(tables, sessions, utils.InfoLogger)
	menuSvc := services.NewMenuService(menus, categories, dishes, utils.InfoLogger)
	orderSvc := services.NewOrderService(sessionSvc, dishes, orders, utils.InfoLogger)

	sessionCtrl := controllers.NewSessionController(sessionSvc, menuSvc)
	menuCtrl := controllers.NewMenuController(menuSvc, menus)
	orderCtrl := controllers.NewOrderController(orderSvc)
	tableCtrl := controllers.NewTableController(tables)
	categoryCtrl := controllers.NewCategoryController(categories, menus)
	dishCtrl := controllers.NewDishController(dishes, categories)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Client flow: scan -> browse -> order.
	r.POST("/sessions", sessionCtrl.CreateSession)
	r.GET("/sessions", sessionCtrl.ListSessions)
	r.GET("/sessions/:session_id", sessionCtrl.ValidateSession)
	r.DELETE("/sessions/:session_id", sessionCtrl.EndSession)

	r.GET("/menu", menuCtrl.GetActiveMenu)

	r.POST("/orders", orderCtrl.CreateOrder)
	r.GET("/orders", orderCtrl.ListOrders)
	r.GET("/orders/:order_id", orderCtrl.GetOrder)
	r.PATCH("/orders/:order_id/status", orderCtrl.UpdateStatus)

	// Staff-facing catalog and table administration.
	r.GET("/tables", tableCtrl.GetAllTables)
	r.POST("/tables", tableCtrl.CreateTable)
	r.GET("/tables/:table_id", tableCtrl.GetTable)
	r.PATCH("/tables/:table_id", tableCtrl.UpdateTable)
	r.GET("/tables/:table_id/qr", tableCtrl.GetTableQR)

	r.GET("/categories", categoryCtrl.GetAllCategories)
	r.POST("/categories", categoryCtrl.CreateCategory)
	r.PATCH("/categories/:cat_id", categoryCtrl.UpdateCategory)
	r.DELETE("/categories/:cat_id", categoryCtrl.DeleteCategory)

	r.GET("/dishes", dishCtrl.GetAllDishes)
	r.POST("/dishes", dishCtrl.CreateDish)
	r.GET("/dishes/:dish_id", dishCtrl.GetDish)
	r.PATCH("/dishes/:dish_id", dishCtrl.UpdateDish)
	r.DELETE("/dishes/:dish_id", dishCtrl.DeleteDish)

	r.POST("/menus", menuCtrl.CreateMenu)
	r.GET("/menus/:menu_id", menuCtrl.GetMenu)
	r.PATCH("/menus/:menu_id", menuCtrl.UpdateMenu)

	return r
}
