package controllers

import (
	"net/http"

	"clinicbook-service/internal/app/config"
	"clinicbook-service/internal/pkg/constvars"
	"clinicbook-service/internal/pkg/dto/responses"
	"clinicbook-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type HealthController struct {
	Log            *zap.Logger
	InternalConfig *config.InternalConfig
}

func NewHealthController(logger *zap.Logger, internalConfig *config.InternalConfig) *HealthController {
	return &HealthController{
		Log:            logger,
		InternalConfig: internalConfig,
	}
}

func (ctrl *HealthController) Check(w http.ResponseWriter, r *http.Request) {
	response := responses.HealthResponse{
		Status:  constvars.HealthStatusOK,
		Version: ctrl.InternalConfig.App.Version,
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, response)
}
