package api

import (
	"errors"
	"net/http"

	resdto "roomsync/internal/handler/dto/response"
	"roomsync/internal/handler/httperr"
	"roomsync/internal/usecase"

	"github.com/gin-gonic/gin"
)

type ReservableHandler struct {
	reservableUseCase usecase.ReservableUseCase
}

func NewReservableHandler(reservableUseCase usecase.ReservableUseCase) *ReservableHandler {
	return &ReservableHandler{
		reservableUseCase: reservableUseCase,
	}
}

// @Summary List reservables
// @Description List every bookable resource
// @Tags reservables
// @Produce json
// @Success 200 {array} resdto.ReservableResponse
// @Router /reservables [get]
func (h *ReservableHandler) ListReservables(c *gin.Context) {
	reservablesRM, err := h.reservableUseCase.ListReservables(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservableRMs(reservablesRM))
}

// @Summary Get reservable
// @Description Get a reservable by slug
// @Tags reservables
// @Produce json
// @Param slug path string true "Reservable slug"
// @Success 200 {object} resdto.ReservableResponse
// @Failure 404 {object} map[string]any
// @Router /reservables/{slug} [get]
func (h *ReservableHandler) GetReservable(c *gin.Context) {
	reservableRM, err := h.reservableUseCase.GetReservable(c.Request.Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, usecase.ErrReservableNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservableRM(reservableRM))
}
