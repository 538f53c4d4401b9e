// internal/workers/viability/analyze-viability/handler.go
package analyzeviability

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
	TaskType = "analyze-viability"
)

type Handler struct {
	config     *Config
	calculator *Calculator
	obs        *observability.Observability
	responder  *camunda.Responder
	logger     logger.Logger
}

// NewHandler builds the worker. A nil tables uses the built-in reference tables; costs is the
// investment estimator (usually the estimate-startup-cost estimator).
func NewHandler(config *Config, tables *refdata.Tables, costs CostEstimator, obs *observability.Observability, log logger.Logger) *Handler {
	log = log.WithFields(map[string]interface{}{"taskType": TaskType})
	return &Handler{
		config:     config,
		calculator: NewCalculator(tables, costs, config.InteriorLevel, log),
		obs:        obs,
		responder:  camunda.NewResponder(TaskType, obs, log),
		logger:     log,
	}
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

// Execute returns the viability envelope. Any panic during the analysis is reported as
// ANALYSIS_FAILED.
func (h *Handler) Execute(ctx context.Context, input *Input) (result *models.Result) {
	ctx, span := h.obs.StartSpan(ctx, TaskType,
		attribute.String("businessType", input.BusinessType),
		attribute.String("region", input.Region),
	)
	defer span.End()

	defer func() {
		if r := recover(); r != nil {
			h.logger.Error("viability analysis panicked", map[string]interface{}{"panic": fmt.Sprint(r)})
			result = models.NewFailure(apperrors.NewAnalysisFailedError(fmt.Errorf("panic: %v", r)))
		}
	}()

	if err := validation.ValidateActivityInput(TaskType, input); err != nil {
		return models.NewFailure(err)
	}

	analysis, err := h.calculator.Analyze(ctx, input)
	if err != nil {
		h.logger.Warn("viability analysis failed", map[string]interface{}{
			"businessType": input.BusinessType,
			"error":        err.Error(),
		})
		return models.NewFailure(err)
	}

	h.logger.Info("viability analyzed", map[string]interface{}{
		"businessType":   analysis.BusinessType,
		"region":         analysis.Region,
		"breakEven":      analysis.BreakEven.MonthlyRevenue,
		"achievability":  analysis.BreakEven.AchievabilityCode,
		"paybackMonths":  analysis.Payback.Months,
		"investmentFrom": analysis.Payback.InvestmentSource,
	})

	note := fmt.Sprintf("%d평 기준, 객단가 %s원 기준. 실제 수익은 운영 능력, 입지, 경쟁 상황에 따라 달라집니다.",
		analysis.Size, humanize.Comma(int64(analysis.BreakEven.AveragePriceWon)))
	return models.NewSuccess(analysis, DataSource, note)
}
