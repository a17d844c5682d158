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

type CategoryController struct {
	categories repository.CategoryRepository
	menus      repository.MenuRepository
}

func NewCategoryController(categories repository.CategoryRepository, menus repository.MenuRepository) *CategoryController {
	return &CategoryController{categories: categories, menus: menus}
}

// CreateCategory -> POST /categories
func (cc *CategoryController) CreateCategory(c *gin.Context) {
	type reqBody struct {
		MenuID         uint   `json:"menu_id" binding:"required"`
		Nom            string `json:"nom" binding:"required"`
		OrdreAffichage int    `json:"ordre_affichage"`
	}

	var req reqBody
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, CodeValidationError, "menu_id and nom are required")
		return
	}

	ctx := c.Request.Context()
	if _, err := cc.menus.FindByID(ctx, req.MenuID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondServiceError(c, services.ErrMenuNotFound)
			return
		}
		respondServiceError(c, err)
		return
	}

	category := models.Category{
		MenuID:         req.MenuID,
		Nom:            req.Nom,
		OrdreAffichage: req.OrdreAffichage,
	}
	if err := cc.categories.Create(ctx, &category); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Category created", category)
}

// GetAllCategories -> GET /categories (display order)
func (cc *CategoryController) GetAllCategories(c *gin.Context) {
	categories, err := cc.categories.FindAll(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondList(c, http.StatusOK, len(categories), categories)
}

// UpdateCategory -> PATCH /categories/:cat_id
func (cc *CategoryController) UpdateCategory(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("cat_id"), 10, 32)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, CodeValidationError, "invalid category id")
		return
	}

	category, err := cc.categories.FindByID(c.Request.Context(), uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondServiceError(c, services.ErrCategoryNotFound)
			return
		}
		respondServiceError(c, err)
		return
	}

	type reqBody struct {
		Nom            *string `json:"nom"`
		OrdreAffichage *int    `json:"ordre_affichage"`
	}
	var req reqBody
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, CodeValidationError, "invalid payload")
		return
	}

	if req.Nom != nil {
		category.Nom = *req.Nom
	}
	if req.OrdreAffichage != nil {
		category.OrdreAffichage = *req.OrdreAffichage
	}

	if err := cc.categories.Update(c.Request.Context(), category); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Category updated", category)
}

// DeleteCategory -> DELETE /categories/:cat_id
func (cc *CategoryController) DeleteCategory(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("cat_id"), 10, 32)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, CodeValidationError, "invalid category id")
		return
	}

	rows, err := cc.categories.Delete(c.Request.Context(), uint(id))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if rows == 0 {
		respondServiceError(c, services.ErrCategoryNotFound)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Category deleted", gin.H{"cat_id": id})
}
