package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yeremiapane/restaurant-qr/services"
	"github.com/yeremiapane/restaurant-qr/utils"
)

type SessionController struct {
	sessions *services.SessionService
	menus    *services.MenuService
}

func NewSessionController(sessions *services.SessionService, menus *services.MenuService) *SessionController {
	return &SessionController{sessions: sessions, menus: menus}
}

// CreateSession -> POST /sessions. Scans a QR token into a session and
// returns the menu snapshot along with it so the client needs one round
// trip.
func (sc *SessionController) CreateSession(c *gin.Context) {
	type reqBody struct {
		QRCode string `json:"qr_code" binding:"required"`
	}

	var req reqBody
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, CodeMissingQRCode, "qr_code is required")
		return
	}

	session, err := sc.sessions.CreateFromToken(c.Request.Context(), req.QRCode)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	menu, err := sc.menus.GetActiveMenu(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "Session created and menu retrieved successfully", gin.H{
		"session": gin.H{
			"session_id": session.SessionID,
			"table_id":   session.TableID,
			"started_at": session.StartedAt,
		},
		"menu": menu,
	})
}

// ValidateSession -> GET /sessions/:session_id
func (sc *SessionController) ValidateSession(c *gin.Context) {
	session, err := sc.sessions.Validate(c.Request.Context(), c.Param("session_id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Session is valid", gin.H{
		"session_id":   session.SessionID,
		"table_id":     session.TableID,
		"table_number": session.Table.Numero,
		"started_at":   session.StartedAt,
	})
}

// EndSession -> DELETE /sessions/:session_id. Second delete of the same
// session is a 404.
func (sc *SessionController) EndSession(c *gin.Context) {
	if err := sc.sessions.End(c.Request.Context(), c.Param("session_id")); err != nil {
		if errors.Is(err, services.ErrSessionNotFound) {
			utils.RespondError(c, http.StatusNotFound, CodeSessionNotFound, err.Error())
			return
		}
		respondServiceError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Session ended successfully", nil)
}

// ListSessions -> GET /sessions (staff view)
func (sc *SessionController) ListSessions(c *gin.Context) {
	sessions, err := sc.sessions.ListAll(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondList(c, http.StatusOK, len(sessions), sessions)
}
