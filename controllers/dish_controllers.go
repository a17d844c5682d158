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

type DishController struct {
	dishes     repository.DishRepository
	categories repository.CategoryRepository
}

func NewDishController(dishes repository.DishRepository, categories repository.CategoryRepository) *DishController {
	return &DishController{dishes: dishes, categories: categories}
}

// CreateDish -> POST /dishes
func (dc *DishController) CreateDish(c *gin.Context) {
	type reqBody struct {
		CategorieID uint     `json:"categorie_id" binding:"required"`
		Nom         string   `json:"nom" binding:"required"`
		Description string   `json:"description"`
		Prix        *float64 `json:"prix" binding:"required"`
		Disponible  *bool    `json:"disponible"`
		ImageURL    string   `json:"image_url"`
	}

	var req reqBody
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, CodeValidationError, "categorie_id, nom and prix are required")
		return
	}
	if *req.Prix < 0 {
		respondServiceError(c, services.ErrInvalidPrice)
		return
	}

	ctx := c.Request.Context()
	if _, err := dc.categories.FindByID(ctx, req.CategorieID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondServiceError(c, services.ErrCategoryNotFound)
			return
		}
		respondServiceError(c, err)
		return
	}

	dish := models.Dish{
		CategorieID: req.CategorieID,
		Nom:         req.Nom,
		Description: req.Description,
		Prix:        *req.Prix,
		Disponible:  true,
		ImageURL:    req.ImageURL,
	}
	if req.Disponible != nil {
		dish.Disponible = *req.Disponible
	}

	if err := dc.dishes.Create(ctx, &dish); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Dish created", dish)
}

// GetAllDishes -> GET /dishes, optionally filtered by category_id.
func (dc *DishController) GetAllDishes(c *gin.Context) {
	ctx := c.Request.Context()

	if raw := c.Query("category_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, CodeValidationError, "invalid category_id")
			return
		}
		dishes, err := dc.dishes.FindByCategoryID(ctx, uint(id))
		if err != nil {
			respondServiceError(c, err)
			return
		}
		utils.RespondList(c, http.StatusOK, len(dishes), dishes)
		return
	}

	dishes, err := dc.dishes.FindAll(ctx)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondList(c, http.StatusOK, len(dishes), dishes)
}

// GetDish -> GET /dishes/:dish_id
func (dc *DishController) GetDish(c *gin.Context) {
	dish, ok := dc.findDish(c)
	if !ok {
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Dish detail", dish)
}

// UpdateDish -> PATCH /dishes/:dish_id. The usual kitchen action here is
// flipping disponible.
func (dc *DishController) UpdateDish(c *gin.Context) {
	dish, ok := dc.findDish(c)
	if !ok {
		return
	}

	type reqBody struct {
		Nom         *string  `json:"nom"`
		Description *string  `json:"description"`
		Prix        *float64 `json:"prix"`
		Disponible  *bool    `json:"disponible"`
		ImageURL    *string  `json:"image_url"`
	}
	var req reqBody
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, CodeValidationError, "invalid payload")
		return
	}

	if req.Prix != nil && *req.Prix < 0 {
		respondServiceError(c, services.ErrInvalidPrice)
		return
	}

	if req.Nom != nil {
		dish.Nom = *req.Nom
	}
	if req.Description != nil {
		dish.Description = *req.Description
	}
	if req.Prix != nil {
		dish.Prix = *req.Prix
	}
	if req.Disponible != nil {
		dish.Disponible = *req.Disponible
	}
	if req.ImageURL != nil {
		dish.ImageURL = *req.ImageURL
	}

	if err := dc.dishes.Update(c.Request.Context(), dish); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Dish updated", dish)
}

// DeleteDish -> DELETE /dishes/:dish_id
func (dc *DishController) DeleteDish(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("dish_id"), 10, 32)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, CodeValidationError, "invalid dish id")
		return
	}

	rows, err := dc.dishes.Delete(c.Request.Context(), uint(id))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if rows == 0 {
		respondServiceError(c, services.ErrDishNotFound)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Dish deleted", gin.H{"dish_id": id})
}

func (dc *DishController) findDish(c *gin.Context) (*models.Dish, bool) {
	id, err := strconv.ParseUint(c.Param("dish_id"), 10, 32)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, CodeValidationError, "invalid dish id")
		return nil, false
	}

	dish, err := dc.dishes.FindByID(c.Request.Context(), uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondServiceError(c, services.ErrDishNotFound)
			return nil, false
		}
		respondServiceError(c, err)
		return nil, false
	}
	return dish, true
}
