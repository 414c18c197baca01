package config

// FixturesConfig locates recorded responses. An empty Dir means the recordings
// compiled into the binary.
type FixturesConfig struct {
	Dir string
}

// RecordDir is where new recordings are written.
func (c FixturesConfig) RecordDir() string {
	if c.Dir != "" {
		return c.Dir
	}
	return defaultRecordDir
}

func loadFixtures() FixturesConfig {
	return FixturesConfig{Dir: envOrDefault(envFixturesDir, "")}
}
