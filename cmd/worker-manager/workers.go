// cmd/worker-manager/workers.go
package main

import (
	"time"

	"go.uber.org/zap"

	"ai-readiness-workers/internal/common/camunda"
	"ai-readiness-workers/internal/common/config"

	so "ai-readiness-workers/internal/workers/data-access/search-occupations"
	ssr "ai-readiness-workers/internal/workers/communication/send-score-report"
	rko "ai-readiness-workers/internal/workers/opportunity/rank-occupations"
	cso "ai-readiness-workers/internal/workers/opportunity/compute-systematic-opportunity"
	cpw "ai-readiness-workers/internal/workers/pathway/compare-pathways"
	spi "ai-readiness-workers/internal/workers/pathway/simulate-pathway-impact"
	cair "ai-readiness-workers/internal/workers/readiness/compute-ai-readiness"
	cir "ai-readiness-workers/internal/workers/readiness/compute-idiosyncratic-readiness"
)

// registerWorkers opens a job worker for every enabled task type.
func registerWorkers(zeebe *camunda.Client, d *deps) []*camunda.CamundaWorker {
	var workers []*camunda.CamundaWorker
	params := d.cfg.Scoring.Parameters()

	start := func(taskType string, handler camunda.JobHandlerFunc) {
		if !config.IsWorkerEnabled(d.cfg, taskType) {
			d.zapLog.Info("worker disabled", zap.String("taskType", taskType))
			return
		}
		wc := config.GetWorkerConfig(d.cfg, taskType)
		workers = append(workers, camunda.NewWorker(
			zeebe.GetClient(),
			camunda.WorkerOptions{
				TaskType:      taskType,
				MaxJobsActive: wc.MaxJobsActive,
				Timeout:       config.GetDuration(wc.Timeout),
			},
			handler,
			d.obs,
			d.zapLog,
		))
	}

	// handlerTimeout prefers the registry's per-activity timeout.
	handlerTimeout := func(taskType string, fallback time.Duration) time.Duration {
		if act, ok := d.registry.FindByTaskType(taskType); ok {
			return act.TimeoutDuration(fallback)
		}
		return fallback
	}

	// --- Readiness ---
	cirCfg := cir.LoadConfig()
	cirCfg.Timeout = handlerTimeout(cir.TaskType, cirCfg.Timeout)
	start(cir.TaskType, cir.NewHandler(cirCfg, d.validator, d.log).Handle)

	cairCfg := cair.LoadConfig()
	cairCfg.Timeout = handlerTimeout(cair.TaskType, cairCfg.Timeout)
	cairCfg.Parameters = params
	start(cair.TaskType, cair.NewHandler(cairCfg, d.store, d.validator, d.obs, d.log).Handle)

	// --- Opportunity ---
	csoCfg := cso.LoadConfig()
	csoCfg.Timeout = handlerTimeout(cso.TaskType, csoCfg.Timeout)
	csoCfg.Parameters = params
	start(cso.TaskType, cso.NewHandler(csoCfg, d.store, d.validator, d.log).Handle)

	rkoCfg := rko.LoadConfig()
	rkoCfg.Timeout = handlerTimeout(rko.TaskType, rkoCfg.Timeout)
	rkoCfg.Parameters = params
	rkoCfg.DefaultLimit = d.cfg.Scoring.RankLimit
	start(rko.TaskType, rko.NewHandler(rkoCfg, d.store, d.validator, d.log).Handle)

	// --- Pathways ---
	spiCfg := spi.LoadConfig()
	spiCfg.Timeout = handlerTimeout(spi.TaskType, spiCfg.Timeout)
	spiCfg.Parameters = params
	start(spi.TaskType, spi.NewHandler(spiCfg, d.store, d.validator, d.log).Handle)

	cpwCfg := cpw.LoadConfig()
	cpwCfg.Timeout = handlerTimeout(cpw.TaskType, cpwCfg.Timeout)
	cpwCfg.Parameters = params
	start(cpw.TaskType, cpw.NewHandler(cpwCfg, d.store, d.validator, d.log).Handle)

	// --- Data access ---
	if d.es != nil {
		soCfg := so.LoadConfig()
		soCfg.Timeout = handlerTimeout(so.TaskType, soCfg.Timeout)
		soCfg.IndexName = d.cfg.Scoring.OccupationIndex
		start(so.TaskType, so.NewHandler(soCfg, d.es.Client, d.validator, d.log).Handle)
	}

	// --- Communication ---
	ssrCfg := ssr.LoadConfig()
	ssrCfg.Timeout = handlerTimeout(ssr.TaskType, ssrCfg.Timeout)
	ssrCfg.EmailEnabled = d.cfg.Notifications.EmailEnabled
	ssrCfg.SMSEnabled = d.cfg.Notifications.SMSEnabled
	var sender ssr.Sender
	if d.notifier != nil {
		sender = d.notifier
	}
	start(ssr.TaskType, ssr.NewHandler(ssrCfg, sender, d.validator, d.log).Handle)

	return workers
}
