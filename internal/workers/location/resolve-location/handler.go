// internal/workers/location/resolve-location/handler.go
package resolvelocation

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
	"go.opentelemetry.io/otel/attribute"

	"bizstart-workers/internal/common/camunda"
	apperrors "bizstart-workers/internal/common/errors"
	"bizstart-workers/internal/common/logger"
	"bizstart-workers/internal/common/observability"
	"bizstart-workers/internal/common/validation"
	"bizstart-workers/internal/models"
)

const (
	TaskType = "resolve-location"
)

type Handler struct {
	config    *Config
	resolver  *Resolver
	obs       *observability.Observability
	responder *camunda.Responder
	logger    logger.Logger
}

func NewHandler(config *Config, geocoder Geocoder, obs *observability.Observability, log logger.Logger) *Handler {
	log = log.WithFields(map[string]interface{}{"taskType": TaskType})
	return &Handler{
		config:    config,
		resolver:  NewResolver(geocoder, log),
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

func (h *Handler) Execute(ctx context.Context, input *Input) (result *models.Result) {
	ctx, span := h.obs.StartSpan(ctx, TaskType, attribute.String("location", input.Location))
	defer span.End()

	defer func() {
		if r := recover(); r != nil {
			h.logger.Error("location resolution panicked", map[string]interface{}{"panic": fmt.Sprint(r)})
			result = models.NewFailure(apperrors.NewInternalError(fmt.Errorf("panic: %v", r)))
		}
	}()

	if err := validation.ValidateActivityInput(TaskType, input); err != nil {
		return models.NewFailure(err)
	}

	loc, err := h.resolver.Resolve(ctx, input.Location)
	if err != nil {
		return models.NewFailure(err)
	}

	source := DataSourceKnownArea
	if loc.Source == models.LocationSourceKakao {
		source = DataSourceKakao
	}
	return models.NewSuccess(loc, source, "")
}
