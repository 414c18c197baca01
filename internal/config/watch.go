package config

// WatchConfig drives the background schema check. No seasons disables it.
type WatchConfig struct {
	Seasons  []string
	Interval Duration
}

// Enabled reports whether any season is being watched.
func (c WatchConfig) Enabled() bool {
	return len(c.Seasons) > 0
}

func loadWatch() WatchConfig {
	return WatchConfig{
		Seasons:  listEnv(envWatchSeasons),
		Interval: durationEnvOrDefault(envWatchInterval, defaultWatchInterval),
	}
}
