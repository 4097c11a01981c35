// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds shared settings for outbound requests to the search and
// completion APIs.
type HTTPConfig struct {
	// Timeout is the outbound request timeout. Zero leaves the transport
	// defaults in place.
	Timeout time.Duration `json:"timeout" yaml:"timeout" mapstructure:"timeout"`

	// UserAgent is the User-Agent header sent upstream (e.g. "gapwriter/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent" mapstructure:"user_agent"`
}

// SearchConfig holds settings for the search relay.
type SearchConfig struct {
	// Endpoint is the web search URL; the query is appended as ?q=.
	Endpoint string `json:"endpoint" yaml:"endpoint" mapstructure:"endpoint"`

	// APIKey is sent as the X-Subscription-Token header. Read from
	// BRAVE_API_KEY.
	APIKey string `json:"-" yaml:"-" mapstructure:"-"`
}

// CompletionConfig holds settings for the completion relay.
type CompletionConfig struct {
	// Endpoint is the completions URL.
	Endpoint string `json:"endpoint" yaml:"endpoint" mapstructure:"endpoint"`

	// Model is the completion model identifier.
	Model string `json:"model" yaml:"model" mapstructure:"model"`

	// MaxTokens caps the length of the generated post.
	MaxTokens int `json:"max_tokens" yaml:"max_tokens" mapstructure:"max_tokens"`

	// Temperature is the sampling temperature. Nil selects the default; an
	// explicit 0 is sent as 0.
	Temperature *float64 `json:"temperature,omitempty" yaml:"temperature,omitempty" mapstructure:"temperature"`

	// APIKey is sent as a bearer token. Read from TOGETHER_API_KEY.
	APIKey string `json:"-" yaml:"-" mapstructure:"-"`
}

// ServerConfig holds settings for the HTTP server.
type ServerConfig struct {
	// Addr is the listen address (e.g. ":3000").
	Addr string `json:"addr" yaml:"addr" mapstructure:"addr"`

	// RateLimit is the per-client request rate on /api routes in requests per
	// second. Zero disables limiting.
	RateLimit float64 `json:"rate_limit" yaml:"rate_limit" mapstructure:"rate_limit"`

	// RateBurst is the limiter burst size.
	RateBurst int `json:"rate_burst" yaml:"rate_burst" mapstructure:"rate_burst"`

	// ShutdownTimeout bounds graceful shutdown.
	ShutdownTimeout time.Duration `json:"shutdown_timeout" yaml:"shutdown_timeout" mapstructure:"shutdown_timeout"`
}

// LogConfig selects the log handler.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `json:"level" yaml:"level" mapstructure:"level"`

	// Format is json or text.
	Format string `json:"format" yaml:"format" mapstructure:"format"`
}

// AppConfig groups all component configurations.
type AppConfig struct {
	HTTP       HTTPConfig       `json:"http" yaml:"http" mapstructure:"http"`
	Search     SearchConfig     `json:"search" yaml:"search" mapstructure:"search"`
	Completion CompletionConfig `json:"completion" yaml:"completion" mapstructure:"completion"`
	Server     ServerConfig     `json:"server" yaml:"server" mapstructure:"server"`
	Log        LogConfig        `json:"log" yaml:"log" mapstructure:"log"`
}
