package handlers

import (
	"net/http"

	"output-floor/internal/analysis"
	"output-floor/internal/api/models"
	"output-floor/internal/data"

	"github.com/gin-gonic/gin"
)

// RankHandler handles portfolio ranking requests
type RankHandler struct{}

// NewRankHandler creates a new rank handler
func NewRankHandler() *RankHandler {
	return &RankHandler{}
}

// RankEntities handles POST /api/v1/portfolio/rank
func (h *RankHandler) RankEntities(c *gin.Context) {
	var req models.RankRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return
	}

	eval, err := evaluatorFor(req.FloorRatio)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_RATIO",
				Message: err.Error(),
			},
		})
		return
	}

	entities := make([]data.Entity, len(req.Entities))
	for i, e := range req.Entities {
		entities[i] = data.Entity{
			ID:      e.ID,
			Name:    e.Name,
			Profile: toConfigProfile(e.Profile).ToModelProfile(),
		}
	}

	ranked := analysis.RankByFloorAddOn(entities, eval)
	if req.Limit > 0 && req.Limit < len(ranked) {
		ranked = ranked[:req.Limit]
	}

	rankings := make([]models.Ranking, len(ranked))
	for i, r := range ranked {
		rankings[i] = models.Ranking{
			Rank:             i + 1,
			EntityID:         r.EntityID,
			Name:             r.Name,
			StandardizedSum:  r.StandardizedSum,
			OutputFloor:      r.OutputFloor,
			InternalModelRWA: r.InternalModelRWA,
			Binding:          r.Binding,
			BindingSource:    string(r.BindingSource),
			FloorAddOn:       r.FloorAddOn,
			WorthIt:          r.WorthIt,
		}
	}

	c.JSON(http.StatusOK, models.RankResponse{Rankings: rankings})
}
