package jobs

import (
	"time"

	"github.com/hibiken/asynq"
)

// Task types
const (
	// Daily sweeps
	TypeDailyReset      = "ads:daily_reset"
	TypeExpireSchedules = "ads:expire_schedules"

	// Metering event relay
	TypeRelayMeteringEvents = "metering:relay"
)

// Queue names
const (
	QueueDefault = "default"
	QueueRelay   = "relay"
)

// NewDailyResetTask creates the proactive daily spend reset task. Running it
// more than once a day is harmless.
func NewDailyResetTask() *asynq.Task {
	return asynq.NewTask(TypeDailyReset, nil,
		asynq.Queue(QueueDefault),
		asynq.MaxRetry(3),
		asynq.Timeout(5*time.Minute),
	)
}

// NewExpireSchedulesTask creates the task that deactivates ads whose
// schedule has ended.
func NewExpireSchedulesTask() *asynq.Task {
	return asynq.NewTask(TypeExpireSchedules, nil,
		asynq.Queue(QueueDefault),
		asynq.MaxRetry(3),
		asynq.Timeout(5*time.Minute),
	)
}

// NewRelayMeteringEventsTask creates the relay task. Unique keeps a slow
// relay from piling up copies of itself.
func NewRelayMeteringEventsTask(interval time.Duration) *asynq.Task {
	return asynq.NewTask(TypeRelayMeteringEvents, nil,
		asynq.Queue(QueueRelay),
		asynq.MaxRetry(0),
		asynq.Unique(interval),
		asynq.Timeout(time.Minute),
	)
}
