package configs

import "time"

type Scheduler struct {
	TickIntervalMinutes int  `env:"SCHEDULER_TICK_INTERVAL_MINUTES" envDefault:"60"`
	RunOnStartup        bool `env:"SCHEDULER_RUN_ON_STARTUP" envDefault:"true"`
}

func (c Scheduler) TickInterval() time.Duration {
	return time.Duration(c.TickIntervalMinutes) * time.Minute
}
