package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	qrcode "github.com/skip2/go-qrcode"
	"gorm.io/gorm"

	"github.com/yeremiapane/restaurant-qr/models"
	"github.com/yeremiapane/restaurant-qr/repository"
	"github.com/yeremiapane/restaurant-qr/services"
	"github.com/yeremiapane/restaurant-qr/utils"
)

type TableController struct {
	tables repository.TableRepository
}

func NewTableController(tables repository.TableRepository) *TableController {
	return &TableController{tables: tables}
}

// CreateTable -> POST /tables. Numero and qr_code are unique; collisions
// answer 409. When qr_code is omitted a token is generated from the
// table number.
func (tc *TableController) CreateTable(c *gin.Context) {
	type reqBody struct {
		Numero int    `json:"numero" binding:"required,min=1"`
		QRCode string `json:"qr_code"`
		Active *bool  `json:"active"`
	}

	var req reqBody
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, CodeValidationError, "numero is required and must be positive")
		return
	}

	ctx := c.Request.Context()

	if _, err := tc.tables.FindByNumero(ctx, req.Numero); err == nil {
		respondServiceError(c, fmt.Errorf("%w: numero %d", services.ErrDuplicateEntry, req.Numero))
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		respondServiceError(c, err)
		return
	}

	if req.QRCode == "" {
		req.QRCode = fmt.Sprintf("table_%d_%d", req.Numero, time.Now().UnixMilli())
	} else {
		if _, err := tc.tables.FindByQRCode(ctx, req.QRCode); err == nil {
			respondServiceError(c, fmt.Errorf("%w: qr_code %s", services.ErrDuplicateEntry, req.QRCode))
			return
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			respondServiceError(c, err)
			return
		}
	}

	table := models.Table{Numero: req.Numero, QRCode: req.QRCode, Active: true}
	if req.Active != nil {
		table.Active = *req.Active
	}

	if err := tc.tables.Create(ctx, &table); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Table created", table)
}

// GetAllTables -> GET /tables
func (tc *TableController) GetAllTables(c *gin.Context) {
	tables, err := tc.tables.FindAll(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondList(c, http.StatusOK, len(tables), tables)
}

// GetTable -> GET /tables/:table_id
func (tc *TableController) GetTable(c *gin.Context) {
	table, ok := tc.findTable(c)
	if !ok {
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Table detail", table)
}

// UpdateTable -> PATCH /tables/:table_id. Only the active flag is
// mutable after creation.
func (tc *TableController) UpdateTable(c *gin.Context) {
	table, ok := tc.findTable(c)
	if !ok {
		return
	}

	type reqBody struct {
		Active *bool `json:"active" binding:"required"`
	}
	var req reqBody
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, CodeValidationError, "active is required")
		return
	}

	table.Active = *req.Active
	if err := tc.tables.Update(c.Request.Context(), table); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Table updated", table)
}

// GetTableQR -> GET /tables/:table_id/qr renders the table's token as a
// printable PNG.
func (tc *TableController) GetTableQR(c *gin.Context) {
	table, ok := tc.findTable(c)
	if !ok {
		return
	}

	png, err := qrcode.Encode(table.QRCode, qrcode.Medium, 256)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.Data(http.StatusOK, "image/png", png)
}

func (tc *TableController) findTable(c *gin.Context) (*models.Table, bool) {
	id, err := strconv.ParseUint(c.Param("table_id"), 10, 32)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, CodeValidationError, "invalid table id")
		return nil, false
	}

	table, err := tc.tables.FindByID(c.Request.Context(), uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondServiceError(c, services.ErrTableNotFound)
			return nil, false
		}
		respondServiceError(c, err)
		return nil, false
	}
	return table, true
}
