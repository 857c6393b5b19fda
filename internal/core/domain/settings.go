package domain

// Settings holds the client configuration persisted between runs.
type Settings struct {
	// ServerURL is the base URL of the leadline backend.
	ServerURL string

	// RequestsPerSecond paces backend calls during the results fan-out.
	// Zero disables pacing entirely.
	RequestsPerSecond float64

	// Burst is the token bucket burst size used with RequestsPerSecond.
	Burst int
}

// DefaultSettings returns the settings used before any configuration exists.
func DefaultSettings() Settings {
	return Settings{
		ServerURL:         "http://localhost:8000",
		RequestsPerSecond: 0,
		Burst:             1,
	}
}
