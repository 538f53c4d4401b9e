// internal/workers/viability/estimate-startup-cost/handler.go
package estimatestartupcost

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/dustin/go-humanize"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
	"go.opentelemetry.io/otel/attribute"

	"bizstart-workers/internal/common/camunda"
	apperrors "bizstart-workers/internal/common/errors"
	"bizstart-workers/internal/common/logger"
	"bizstart-workers/internal/common/observability"
	"bizstart-workers/internal/common/validation"
	"bizstart-workers/internal/models"
	"bizstart-workers/internal/refdata"
)

const (
	TaskType = "estimate-startup-cost"
)

type Handler struct {
	config    *Config
	estimator *Estimator
	obs       *observability.Observability
	responder *camunda.Responder
	logger    logger.Logger
}

// NewHandler builds the worker. A nil tables uses the built-in reference tables.
func NewHandler(config *Config, tables *refdata.Tables, obs *observability.Observability, log logger.Logger) *Handler {
	log = log.WithFields(map[string]interface{}{"taskType": TaskType})
	return &Handler{
		config:    config,
		estimator: NewEstimator(tables),
		obs:       obs,
		responder: camunda.NewResponder(TaskType, obs, log),
		logger:    log,
	}
}

// Estimator exposes the shared estimator for in-process callers.
func (h *Handler) Estimator() *Estimator {
	return h.estimator
}

func (h *Handler) Handle(client worker.JobClient, job entities.Job) {
	started := time.Now()
	h.logger.Info("processing job", map[string]interface{}{
		"jobKey":      job.Key,
		"workflowKey": job.ProcessInstanceKey,
	})

	ctx, cancel := context.WithTimeout(context.Background(), h.config.Timeout)
	defer cancel()

	var input Input
	if err := json.Unmarshal([]byte(job.Variables), &input); err != nil {
		h.responder.Respond(ctx, client, job, models.NewFailure(apperrors.NewInvalidInputError(fmt.Sprintf("parse input: %v", err))), started)
		return
	}

	h.responder.Respond(ctx, client, job, h.Execute(ctx, &input), started)
}

// Execute validates input and returns the estimate envelope. It never returns nil.
func (h *Handler) Execute(ctx context.Context, input *Input) (result *models.Result) {
	ctx, span := h.obs.StartSpan(ctx, TaskType,
		attribute.String("businessType", input.BusinessType),
		attribute.String("region", input.Region),
	)
	defer span.End()

	defer func() {
		if r := recover(); r != nil {
			h.logger.Error("startup cost estimation panicked", map[string]interface{}{"panic": fmt.Sprint(r)})
			result = models.NewFailure(apperrors.NewCostEstimationFailedError(fmt.Errorf("panic: %v", r)))
		}
	}()

	if err := validation.ValidateActivityInput(TaskType, input); err != nil {
		return models.NewFailure(err)
	}

	estimate, err := h.estimator.EstimateStartupCost(ctx, input.BusinessType, input.Region, input.Size, input.InteriorLevel)
	if err != nil {
		h.logger.Warn("startup cost estimation failed", map[string]interface{}{
			"businessType": input.BusinessType,
			"error":        err.Error(),
		})
		return models.NewFailure(err)
	}

	h.logger.Info("startup cost estimated", map[string]interface{}{
		"businessType": estimate.BusinessType,
		"region":       estimate.Region,
		"total":        estimate.TotalCost.Estimated,
	})

	note := fmt.Sprintf("%d평 기준, 인테리어 %s 등급 기준. 권리금과 프랜차이즈 가맹비는 포함되지 않았습니다. 총 예상 비용 %s만원.",
		estimate.Size, estimate.InteriorLevel, humanize.Comma(int64(estimate.TotalCost.Estimated)))
	return models.NewSuccess(estimate, DataSource, note)
}
