package config

// FantasyDataConfig controls how we talk to the FantasyData service.
type FantasyDataConfig struct {
	BaseURL       string
	APIKey        string
	Subscription  string
	Format        string
	Timeout       Duration
	ExpectedTeams int  // records a standings response must carry
	Strict        bool // reject unknown fields as well as missing ones
}

// RetryConfig bounds retries of transient upstream failures.
type RetryConfig struct {
	Attempts int
	Backoff  Duration
}

func loadFantasyData() FantasyDataConfig {
	return FantasyDataConfig{
		BaseURL:       envOrDefault(envFdBaseURL, defaultFdBaseURL),
		APIKey:        envOrDefault(envFdAPIKey, ""),
		Subscription:  envOrDefault(envFdSubscription, defaultFdSubscription),
		Format:        envOrDefault(envFdFormat, defaultFdFormat),
		Timeout:       durationEnvOrDefault(envFdTimeout, defaultFdTimeout),
		ExpectedTeams: intEnvOrDefault(envFdExpectedTeams, defaultFdExpectedTeams),
		Strict:        boolEnvOrDefault(envFdStrict, defaultFdStrict),
	}
}

func loadRetry() RetryConfig {
	return RetryConfig{
		Attempts: intEnvOrDefault(envRetryAttempts, defaultRetryAttempts),
		Backoff:  durationEnvOrDefault(envRetryBackoff, defaultRetryBackoff),
	}
}
