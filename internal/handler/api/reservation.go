package api

import (
	"errors"
	"net/http"

	reqdto "roomsync/internal/handler/dto/request"
	resdto "roomsync/internal/handler/dto/response"
	"roomsync/internal/handler/httperr"
	"roomsync/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ReservationHandler struct {
	reservationUseCase usecase.ReservationUseCase
}

func NewReservationHandler(reservationUseCase usecase.ReservationUseCase) *ReservationHandler {
	return &ReservationHandler{
		reservationUseCase: reservationUseCase,
	}
}

// @Summary Create reservation
// @Description Create a local reservation for a reservable
// @Tags reservations
// @Accept json
// @Produce json
// @Param request body reqdto.CreateReservationRequest true "Reservation request"
// @Success 201 {object} resdto.ReservationResponse
// @Failure 400 {object} map[string]any
// @Failure 404 {object} map[string]any
// @Failure 409 {object} map[string]any
// @Router /reservations [post]
func (h *ReservationHandler) CreateReservation(c *gin.Context) {
	var req reqdto.CreateReservationRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}

	params := usecase.CreateReservationParams{
		ReservableSlug: req.ReservableSlug,
		OwnerEmail:     req.GetOwnerEmail(),
		Start:          req.Start,
		End:            req.End,
		Reason:         req.Reason,
	}

	reservationRM, err := h.reservationUseCase.CreateReservation(c.Request.Context(), params)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrReservableNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Reservable not found", nil)
		case errors.Is(err, usecase.ErrOwnerNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Owner not found", nil)
		case errors.Is(err, usecase.ErrInvalidTimeSlot):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid time slot", nil)
		case errors.Is(err, usecase.ErrReservationConflict):
			httperr.AbortWithError(c, http.StatusConflict, err, "Time slot conflict", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromReservationRM(reservationRM))
}

// @Summary Get reservation
// @Description Get reservation by ID
// @Tags reservations
// @Produce json
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} map[string]any
// @Failure 404 {object} map[string]any
// @Router /reservations/{id} [get]
func (h *ReservationHandler) GetReservation(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	reservationRM, err := h.reservationUseCase.GetReservation(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, usecase.ErrReservationNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservationRM(reservationRM))
}

// @Summary List reservations
// @Description List reservations, optionally filtered by reservable slug and time window
// @Tags reservations
// @Produce json
// @Param reservable query string false "Reservable slug"
// @Param from query string false "Window start (RFC3339)"
// @Param to query string false "Window end (RFC3339)"
// @Success 200 {array} resdto.ReservationListResponse
// @Router /reservations [get]
func (h *ReservationHandler) ListReservations(c *gin.Context) {
	var req reqdto.ListReservationsRequest
	if bindErr := c.ShouldBindQuery(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid query parameters", nil)
		return
	}

	filter := usecase.ReservationFilter{
		ReservableSlug: req.ReservableSlug,
		From:           req.From,
		To:             req.To,
	}

	reservationsRM, err := h.reservationUseCase.ListReservations(c.Request.Context(), filter)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservationListRMs(reservationsRM))
}

// @Summary Get overlapping reservations
// @Description List reservations sharing a reservable and overlapping in time with the given one
// @Tags reservations
// @Produce json
// @Param id path string true "Reservation ID"
// @Success 200 {array} resdto.ReservationListResponse
// @Failure 404 {object} map[string]any
// @Router /reservations/{id}/overlapping [get]
func (h *ReservationHandler) GetOverlapping(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	reservationsRM, err := h.reservationUseCase.GetOverlapping(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, usecase.ErrReservationNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservationListRMs(reservationsRM))
}
