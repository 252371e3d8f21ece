package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/TeodorSim/TransfIT/internal/application/provisioning/usecases"
	apperrors "github.com/TeodorSim/TransfIT/internal/shared/errors"
	"github.com/TeodorSim/TransfIT/internal/shared/logger"
	"github.com/TeodorSim/TransfIT/internal/shared/utils"
)

type getIntegrationUseCase interface {
	Execute(ctx context.Context, clinicID string) (*usecases.GetIntegrationResult, error)
}

type deprovisionClinicUseCase interface {
	Execute(ctx context.Context, clinicID string) error
}

// ClinicHandler serves integration lookups and teardown. Responses
// never include token material.
type ClinicHandler struct {
	getIntegrationUseCase getIntegrationUseCase
	deprovisionUseCase    deprovisionClinicUseCase
	logger                logger.Interface
}

func NewClinicHandler(
	getIntegrationUC getIntegrationUseCase,
	deprovisionUC deprovisionClinicUseCase,
	logger logger.Interface,
) *ClinicHandler {
	return &ClinicHandler{
		getIntegrationUseCase: getIntegrationUC,
		deprovisionUseCase:    deprovisionUC,
		logger:                logger,
	}
}

func (h *ClinicHandler) GetIntegration(c *gin.Context) {
	clinicID := c.Param("clinicId")
	if clinicID == "" {
		utils.ErrorResponseWithError(c, apperrors.NewValidationError("clinic ID is required"))
		return
	}

	result, err := h.getIntegrationUseCase.Execute(c.Request.Context(), clinicID)
	if err != nil {
		if !apperrors.IsNotFoundError(err) {
			h.logger.Errorw("integration lookup failed", "clinic_id", clinicID, "error", err)
		}
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// DeprovisionIntegration removes the clinic's automation resources
// and its stored integration.
func (h *ClinicHandler) DeprovisionIntegration(c *gin.Context) {
	clinicID := c.Param("clinicId")
	if clinicID == "" {
		utils.ErrorResponseWithError(c, apperrors.NewValidationError("clinic ID is required"))
		return
	}

	if err := h.deprovisionUseCase.Execute(c.Request.Context(), clinicID); err != nil {
		if !apperrors.IsNotFoundError(err) {
			h.logger.Errorw("deprovisioning failed", "clinic_id", clinicID, "error", err)
		}
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "clinic integration removed", nil)
}
