package handlers

import (
	"net/http"

	"output-floor/internal/api/models"
	"output-floor/internal/floor"

	"github.com/gin-gonic/gin"
)

// ScheduleHandler handles phase-in schedule requests
type ScheduleHandler struct{}

// NewScheduleHandler creates a new schedule handler
func NewScheduleHandler() *ScheduleHandler {
	return &ScheduleHandler{}
}

// RunSchedule handles GET /api/v1/schedule
func (h *ScheduleHandler) RunSchedule(c *gin.Context) {
	var req models.ScheduleRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return
	}

	profile, err := resolveProfile(req.ProfileFile, models.ProfileConfig{
		CreditRWA:         req.CreditRWA,
		EquityRWA:         req.EquityRWA,
		OperationalRWA:    req.OperationalRWA,
		MarketRWA:         req.MarketRWA,
		CVARWA:            req.CVARWA,
		InternalModelRWA:  req.InternalModelRWA,
		InternalModelCost: req.InternalModelCost,
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_PROFILE",
				Message: err.Error(),
			},
		})
		return
	}

	result, err := floor.RunSchedule(profile, floor.DefaultSchedule())
	if err != nil {
		writeEvaluationError(c, err)
		return
	}

	ledger := make([]models.ScheduleRow, len(result.Ledger))
	for i, row := range result.Ledger {
		ledger[i] = models.ScheduleRow{
			Year:             row.Year,
			Ratio:            row.Ratio,
			StandardizedSum:  row.StandardizedSum,
			OutputFloor:      row.OutputFloor,
			InternalModelRWA: row.InternalModelRWA,
			Binding:          row.Binding,
			BindingSource:    string(row.BindingSource),
			FloorAddOn:       row.FloorAddOn,
			CumFloorAddOn:    row.CumFloorAddOn,
		}
	}

	c.JSON(http.StatusOK, models.ScheduleResponse{
		Ledger:          ledger,
		TotalFloorAddOn: result.TotalFloorAddOn,
		Final:           toAssessmentModel(result.FinalAssessment),
	})
}
