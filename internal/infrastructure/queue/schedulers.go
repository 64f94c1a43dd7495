package queue

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"

	"blooddrive-backend/internal/config"
	"blooddrive-backend/internal/shared"
)

type Scheduler struct {
	scheduler *asynq.Scheduler
	jobConfig config.JobConfig
}

func NewScheduler(redisAddress string, jobConfig config.JobConfig) *Scheduler {
	scheduler := asynq.NewScheduler(
		asynq.RedisClientOpt{Addr: redisAddress},
		&asynq.SchedulerOpts{
			Location: time.UTC,
			LogLevel: asynq.InfoLevel,
		},
	)

	return &Scheduler{
		scheduler: scheduler,
		jobConfig: jobConfig,
	}
}

func (s *Scheduler) RegisterJobs() error {
	return s.registerDailySummaryJob()
}

// ================================================
// JOB: Daily drive summary
// ================================================
func (s *Scheduler) registerDailySummaryJob() error {
	payload, err := json.Marshal(shared.DailyStatsReportPayload{})
	if err != nil {
		return err
	}

	task := asynq.NewTask(shared.TypeDailyStatsReport, payload)

	_, err = s.scheduler.Register(
		s.jobConfig.DailySummaryCron,
		task,
		asynq.Queue(shared.QueueNotifications),
		asynq.MaxRetry(1),
		asynq.Timeout(2*time.Minute),
	)
	if err != nil {
		return err
	}

	log.Info().
		Str("cron", s.jobConfig.DailySummaryCron).
		Msg("[Scheduler] Registered daily drive summary job")
	return nil
}

func (s *Scheduler) Start() error {
	return s.scheduler.Run()
}

func (s *Scheduler) Shutdown() {
	s.scheduler.Shutdown()
}
