package codeforces

import "time"

// Config holds configuration for the Codeforces API client.
type Config struct {
	// BaseURL is the API root.
	BaseURL string `mapstructure:"base_url" default:"https://codeforces.com/api"`
	// TimeoutSeconds bounds a single HTTP request.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"15"`
	// MaxRetries is the number of attempts per request.
	MaxRetries int `mapstructure:"max_retries" default:"3"`
	// RetryDelay is the base delay between attempts; attempt n waits n*RetryDelay.
	RetryDelay time.Duration `mapstructure:"retry_delay" default:"500ms"`
	// ContestListTTL is how long the global contest list is served from memory.
	ContestListTTL time.Duration `mapstructure:"contest_list_ttl" default:"4h"`
	// ProblemsTTL is how long the global problem catalog is served from memory.
	ProblemsTTL time.Duration `mapstructure:"problems_ttl" default:"10m"`
}
