// Package airtable provides a client for the Airtable REST API, used as the
// spreadsheet-like record store behind the OTP log.
package airtable

import (
	"time"
)

const (
	defaultBaseURL = "https://api.airtable.com/v0"
	defaultTimeout = 10 * time.Second
)

// Config holds configuration for the Airtable API client. BaseURL and Timeout
// are optional; NewClient fills them in.
type Config struct {
	APIKey  string
	BaseID  string
	Table   string
	BaseURL string
	Timeout time.Duration
}

func (c Config) withDefaults() Config {
	if c.BaseURL == "" {
		c.BaseURL = defaultBaseURL
	}
	if c.Timeout == 0 {
		c.Timeout = defaultTimeout
	}
	return c
}
