// internal/common/camunda/job.go
package camunda

import (
	"context"
	"fmt"
	"time"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"

	apperrors "bizstart-workers/internal/common/errors"
	"bizstart-workers/internal/common/logger"
	"bizstart-workers/internal/common/metrics"
	"bizstart-workers/internal/common/observability"
	"bizstart-workers/internal/models"
)

// ResultVariable is the process variable every worker writes its envelope to.
const ResultVariable = "result"

const (
	statusCompleted = "completed"
	statusFailed    = "failed"
)

// Responder reports a worker's envelope back to the engine: success envelopes complete the job,
// failure envelopes are thrown as BPMN errors carrying the envelope.
type Responder struct {
	taskType     string
	errorHandler *apperrors.ErrorHandler
	obs          *observability.Observability
	logger       logger.Logger
}

func NewResponder(taskType string, obs *observability.Observability, log logger.Logger) *Responder {
	return &Responder{
		taskType:     taskType,
		errorHandler: apperrors.NewErrorHandler(log),
		obs:          obs,
		logger:       log,
	}
}

// Respond completes or fails job according to result and records the job metrics.
func (r *Responder) Respond(ctx context.Context, client worker.JobClient, job entities.Job, result *models.Result, started time.Time) {
	// the job context may already be past its deadline
	ctx = context.WithoutCancel(ctx)
	vars := map[string]interface{}{ResultVariable: result}

	status := statusCompleted
	if result.Success {
		r.complete(ctx, client, job, vars)
		metrics.WorkerJobsCompleted.WithLabelValues(r.taskType).Inc()
	} else {
		status = statusFailed
		err := result.Err()
		if err == nil {
			err = apperrors.NewInternalError(fmt.Errorf("failure envelope without cause: %s", result.ErrorCode()))
		}
		r.errorHandler.HandleJobError(ctx, client, job, err, vars)
		metrics.WorkerJobsFailed.WithLabelValues(r.taskType, result.ErrorCode()).Inc()
	}

	elapsed := time.Since(started)
	metrics.WorkerJobDuration.WithLabelValues(r.taskType).Observe(elapsed.Seconds())
	r.obs.RecordJobProcessed(ctx, r.taskType, status)
	r.obs.RecordJobDuration(ctx, r.taskType, elapsed, status)
}

func (r *Responder) complete(ctx context.Context, client worker.JobClient, job entities.Job, vars map[string]interface{}) {
	cmd, err := client.NewCompleteJobCommand().
		JobKey(job.Key).
		VariablesFromObject(vars)
	if err != nil {
		r.logger.Error("failed to create complete job command", map[string]interface{}{
			"jobKey": job.Key,
			"error":  err.Error(),
		})
		return
	}
	if _, err := cmd.Send(ctx); err != nil {
		r.logger.Error("failed to send complete job command", map[string]interface{}{
			"jobKey": job.Key,
			"error":  err.Error(),
		})
		return
	}
	r.logger.Info("job completed", map[string]interface{}{"jobKey": job.Key})
}
