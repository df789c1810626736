package api

import (
	"errors"
	"net/http"

	reqdto "roomsync/internal/handler/dto/request"
	resdto "roomsync/internal/handler/dto/response"
	"roomsync/internal/handler/httperr"
	"roomsync/internal/infra/wtt3"
	"roomsync/internal/usecase"

	"github.com/gin-gonic/gin"
)

type WTT3ImportHandler struct {
	importUseCase usecase.WTT3ImportUseCase
}

func NewWTT3ImportHandler(importUseCase usecase.WTT3ImportUseCase) *WTT3ImportHandler {
	return &WTT3ImportHandler{
		importUseCase: importUseCase,
	}
}

// @Summary Run WTT3 import
// @Description Pull reservations from the WTT3 timetabling API and reconcile them into the local store
// @Tags imports
// @Accept json
// @Produce json
// @Param request body reqdto.RunImportRequest false "Run overrides"
// @Success 200 {object} resdto.ImportRunResponse
// @Failure 400 {object} map[string]any
// @Failure 502 {object} map[string]any
// @Router /imports/wtt3 [post]
func (h *WTT3ImportHandler) RunImport(c *gin.Context) {
	var req reqdto.RunImportRequest
	if c.Request.ContentLength > 0 {
		if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
			return
		}
	}

	params := usecase.ImportParams{
		APIURL:           req.APIURL,
		APIKey:           req.APIKey,
		StartDate:        req.StartDate,
		EndDate:          req.EndDate,
		AllowOwnerCreate: req.AllowOwnerCreate,
	}

	if req.DryRun {
		dryRunResult, err := h.importUseCase.DryRun(c.Request.Context(), params)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadGateway, err, "WTT3 API unreachable", nil)
			return
		}
		c.JSON(http.StatusOK, resdto.FromDryRunResult(dryRunResult))
		return
	}

	result, err := h.importUseCase.Run(c.Request.Context(), params)
	if err != nil {
		var transportErr *wtt3.TransportError
		if errors.As(err, &transportErr) {
			// Partial progress is preserved and reported with the failure.
			httperr.AbortWithError(c, http.StatusBadGateway, err, "Import aborted by transport failure", gin.H{
				"pages":  transportErr.PagesFetched,
				"result": resdto.FromImportResult(result),
			})
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromImportResult(result))
}
