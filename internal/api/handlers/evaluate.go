package handlers

import (
	"errors"
	"net/http"

	"output-floor/internal/api/models"
	"output-floor/internal/config"
	"output-floor/internal/model"

	"github.com/gin-gonic/gin"
)

// EvaluateHandler handles floor evaluation requests
type EvaluateHandler struct{}

// NewEvaluateHandler creates a new evaluate handler
func NewEvaluateHandler() *EvaluateHandler {
	return &EvaluateHandler{}
}

// RunEvaluation handles POST /api/v1/evaluate
func (h *EvaluateHandler) RunEvaluation(c *gin.Context) {
	var req models.EvaluateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return
	}

	profile, err := resolveProfile(req.ProfileFile, req.Profile)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_PROFILE",
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

	assessment, err := eval.Evaluate(profile)
	if err != nil {
		writeEvaluationError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.EvaluateResponse{
		Status:     "completed",
		Assessment: toAssessmentModel(assessment),
	})
}

// CompareEvaluations handles POST /api/v1/evaluate/compare
func (h *EvaluateHandler) CompareEvaluations(c *gin.Context) {
	var req models.CompareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return
	}

	base, err := mergeRequestProfile(req.ProfileFile, req.BaseProfile)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_PROFILE",
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

	// Evaluate each variation, overlaying it on the base profile.
	// Invalid variations are skipped rather than failing the whole request.
	comparison := make([]models.ComparisonResult, 0, len(req.Variations))
	for _, variation := range req.Variations {
		merged := config.MergeProfile(base, toConfigProfile(variation.Profile))
		assessment, err := eval.Evaluate(merged.ToModelProfile())
		if err != nil {
			continue
		}
		comparison = append(comparison, models.ComparisonResult{
			Name:       variation.Name,
			Assessment: toAssessmentModel(assessment),
		})
	}

	c.JSON(http.StatusOK, models.CompareResponse{
		Comparison: comparison,
	})
}

// writeEvaluationError maps evaluator errors to HTTP responses. Validation
// failures list every offending field in the error details.
func writeEvaluationError(c *gin.Context, err error) {
	var invalid *model.InvalidInputError
	if errors.As(err, &invalid) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_INPUT",
				Message: err.Error(),
				Details: map[string]interface{}{
					"fields": invalid.Fields,
				},
			},
		})
		return
	}
	c.JSON(http.StatusInternalServerError, models.ErrorResponse{
		Error: models.ErrorDetail{
			Code:    "EVALUATION_ERROR",
			Message: err.Error(),
		},
	})
}
