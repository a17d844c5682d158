package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/yeremiapane/restaurant-qr/models"
	"github.com/yeremiapane/restaurant-qr/repository"
	"github.com/yeremiapane/restaurant-qr/services"
	"github.com/yeremiapane/restaurant-qr/utils"
)

type MenuController struct {
	snapshot *services.MenuService
	menus    repository.MenuRepository
}

func NewMenuController(snapshot *services.MenuService, menus repository.MenuRepository) *MenuController {
	return &MenuController{snapshot: snapshot, menus: menus}
}

// GetActiveMenu -> GET /menu. Always 200; an empty store yields an empty
// snapshot, not an error.
func (mc *MenuController) GetActiveMenu(c *gin.Context) {
	menu, err := mc.snapshot.GetActiveMenu(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Menu retrieved successfully", menu)
}

// CreateMenu -> POST /menus (thin CRUD)
func (mc *MenuController) CreateMenu(c *gin.Context) {
	type reqBody struct {
		Nom   string `json:"nom" binding:"required"`
		Actif *bool  `json:"actif"`
	}

	var req reqBody
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, CodeValidationError, "nom is required")
		return
	}

	menu := models.Menu{Nom: req.Nom, Actif: true}
	if req.Actif != nil {
		menu.Actif = *req.Actif
	}

	if err := mc.menus.Create(c.Request.Context(), &menu); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Menu created", menu)
}

// GetMenu -> GET /menus/:menu_id
func (mc *MenuController) GetMenu(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("menu_id"), 10, 32)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, CodeValidationError, "invalid menu id")
		return
	}

	menu, err := mc.menus.FindByID(c.Request.Context(), uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondServiceError(c, services.ErrMenuNotFound)
			return
		}
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Menu detail", menu)
}

// UpdateMenu -> PATCH /menus/:menu_id (rename, activate/deactivate)
func (mc *MenuController) UpdateMenu(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("menu_id"), 10, 32)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, CodeValidationError, "invalid menu id")
		return
	}

	menu, err := mc.menus.FindByID(c.Request.Context(), uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondServiceError(c, services.ErrMenuNotFound)
			return
		}
		respondServiceError(c, err)
		return
	}

	type reqBody struct {
		Nom   *string `json:"nom"`
		Actif *bool   `json:"actif"`
	}
	var req reqBody
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, CodeValidationError, "invalid payload")
		return
	}

	if req.Nom != nil {
		menu.Nom = *req.Nom
	}
	if req.Actif != nil {
		menu.Actif = *req.Actif
	}

	if err := mc.menus.Update(c.Request.Context(), menu); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Menu updated", menu)
}
