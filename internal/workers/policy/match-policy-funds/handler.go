// internal/workers/policy/match-policy-funds/handler.go
package matchpolicyfunds

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
	"go.opentelemetry.io/otel/attribute"

	"bizstart-workers/internal/common/bizinfo"
	"bizstart-workers/internal/common/camunda"
	apperrors "bizstart-workers/internal/common/errors"
	"bizstart-workers/internal/common/logger"
	"bizstart-workers/internal/common/observability"
	"bizstart-workers/internal/common/validation"
	"bizstart-workers/internal/models"
)

const (
	TaskType = "match-policy-funds"
)

type Handler struct {
	config    *Config
	source    ListingSource
	obs       *observability.Observability
	responder *camunda.Responder
	logger    logger.Logger
}

func NewHandler(config *Config, source ListingSource, obs *observability.Observability, log logger.Logger) *Handler {
	log = log.WithFields(map[string]interface{}{"taskType": TaskType})
	return &Handler{
		config:    config,
		source:    source,
		obs:       obs,
		responder: camunda.NewResponder(TaskType, obs, log),
		logger:    log,
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

// Execute fetches the startup listings for the profile and returns the recommendation
// envelope. Fetch failures and panics are reported as POLICY_FUND_MATCH_FAILED.
func (h *Handler) Execute(ctx context.Context, input *Input) (result *models.Result) {
	ctx, span := h.obs.StartSpan(ctx, TaskType,
		attribute.String("stage", input.Stage),
		attribute.String("region", input.Region),
		attribute.String("founderType", input.FounderType),
	)
	defer span.End()

	defer func() {
		if r := recover(); r != nil {
			h.logger.Error("policy fund matching panicked", map[string]interface{}{"panic": fmt.Sprint(r)})
			result = models.NewFailure(apperrors.NewPolicyFundMatchFailedError(fmt.Errorf("panic: %v", r)))
		}
	}()

	if err := validation.ValidateActivityInput(TaskType, input); err != nil {
		return models.NewFailure(err)
	}

	items, err := h.source.SearchStartupFunds(ctx, bizinfo.StartupQuery{
		Region:      input.Region,
		FounderType: input.FounderType,
		Count:       h.config.Count,
	})
	if err != nil {
		upstream := bizinfo.Classify(err)
		h.logger.Error("listing fetch failed", map[string]interface{}{
			"region":       input.Region,
			"upstreamCode": upstream.Code,
			"error":        err.Error(),
		})
		return models.NewFailure(apperrors.NewPolicyFundMatchFailedError(err).WithCause(upstream))
	}

	funds := make([]models.PolicyFund, 0, len(items))
	for _, item := range items {
		funds = append(funds, ToPolicyFund(item))
	}
	funds = FilterFunds(funds, input, h.config.MaxResults, h.logger)

	recommendation := &models.PolicyFundRecommendation{
		UserProfile: models.UserProfile{
			BusinessType: input.BusinessType,
			Stage:        input.Stage,
			Region:       input.Region,
			FounderType:  input.FounderType,
			FounderAge:   input.FounderAge,
		},
		MatchedFunds: funds,
		TotalCount:   len(funds),
		Tip:          GenerateTip(funds, input.Stage, input.FounderType),
	}

	h.logger.Info("policy funds matched", map[string]interface{}{
		"fetched": len(items),
		"matched": len(funds),
	})
	return models.NewSuccess(recommendation, DataSource, "")
}
