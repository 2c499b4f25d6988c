// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 the kbmcp authors

package config

import "fmt"

// Transport selects the MCP transport the server speaks.
type Transport string

// Supported transports.
const (
	TransportStdio Transport = "stdio"
	TransportSSE   Transport = "sse"
)

// UnmarshalText implements encoding.TextUnmarshaler so the env population
// layer rejects values outside the literal set at parse time.
func (t *Transport) UnmarshalText(text []byte) error {
	switch v := Transport(text); v {
	case TransportStdio, TransportSSE:
		*t = v
		return nil
	default:
		return fmt.Errorf("must be %q or %q", TransportStdio, TransportSSE)
	}
}

// TransportSettings selects how the MCP server is exposed.
type TransportSettings struct {
	// Transport is the transport type, either stdio or sse.
	// Env: MCP_TRANSPORT
	Transport Transport `env:"MCP_TRANSPORT" envDefault:"stdio"`
}

// LoggingSettings controls the process-wide logger installed once at startup.
type LoggingSettings struct {
	// Level is the minimum level emitted, case-insensitive
	// (TRACE, DEBUG, INFO, WARN, ERROR, FATAL).
	// Env: MCP_LOG_LEVEL
	Level string `env:"MCP_LOG_LEVEL" envDefault:"INFO" validate:"required,loglevel"`

	// Format names the fields every log entry carries. Output is structured,
	// so the template documents the entry shape rather than a printf layout.
	// Env: MCP_LOG_FORMAT
	Format string `env:"MCP_LOG_FORMAT" envDefault:"{time} : {pid} - {name} - {level} - {message}" validate:"required"`

	// File is the optional log destination; empty means standard error.
	// Env: MCP_LOG_FILE
	File string `env:"MCP_LOG_FILE"`
}

// AuthenticationSettings carries the Elasticsearch credentials. Exactly one
// of API key or username+password may be configured; configuring neither is
// valid and yields an unauthenticated connection.
type AuthenticationSettings struct {
	// Username for basic authentication.
	// Env: ES_USERNAME
	Username string `env:"ES_USERNAME"`

	// Password for basic authentication. Redacted in any rendering.
	// Env: ES_PASSWORD
	Password Secret `env:"ES_PASSWORD"`

	// APIKey for API-key authentication. Redacted in any rendering.
	// Env: ES_API_KEY
	APIKey Secret `env:"ES_API_KEY"`
}

// Method returns which authentication mode the credentials select.
// It assumes the group already passed validation.
func (a AuthenticationSettings) Method() AuthMethod {
	switch {
	case a.APIKey.IsSet():
		return AuthAPIKey
	case a.Username != "" && a.Password.IsSet():
		return AuthBasic
	default:
		return AuthNone
	}
}

// ElasticsearchSettings configures the connection to the Elasticsearch
// cluster backing the knowledge base.
type ElasticsearchSettings struct {
	// Host is the cluster URL in the form https://<host>:<port>.
	// Env: ES_HOST
	Host string `env:"ES_HOST" envDefault:"https://localhost:9200" validate:"required,url"`

	// RequestTimeout bounds Elasticsearch operations, in seconds.
	// Env: ES_REQUEST_TIMEOUT
	RequestTimeout int `env:"ES_REQUEST_TIMEOUT" envDefault:"600" validate:"gt=0"`

	// IndexPrefix names the indices that store documentation.
	// Env: ES_INDEX_PREFIX
	IndexPrefix string `env:"ES_INDEX_PREFIX" envDefault:"kbmcp-docs.*" validate:"required"`

	// BulkMaxItems caps the number of items per bulk API call.
	// Env: ES_BULK_API_MAX_ITEMS
	BulkMaxItems int `env:"ES_BULK_API_MAX_ITEMS" envDefault:"200" validate:"gt=0"`

	// BulkMaxBytes caps the payload size per bulk API call.
	// Env: ES_BULK_API_MAX_SIZE_BYTES
	BulkMaxBytes int `env:"ES_BULK_API_MAX_SIZE_BYTES" envDefault:"10485760" validate:"gt=0"`

	// Authentication holds the cluster credentials.
	Authentication AuthenticationSettings
}

// KnowledgeBaseSettings scopes the indices shared by every knowledge-base
// server.
type KnowledgeBaseSettings struct {
	// BaseIndexPrefix is the prefix common to all kbmcp-owned indices.
	// Env: KB_BASE_INDEX_PREFIX
	BaseIndexPrefix string `env:"KB_BASE_INDEX_PREFIX" envDefault:"kbmcp-" validate:"required"`
}

// LearnSettings scopes the indices owned by the learn server.
type LearnSettings struct {
	// LearnIndexPrefix is the prefix for documentation indices.
	// Env: KB_DOCS_INDEX_PREFIX
	LearnIndexPrefix string `env:"KB_DOCS_INDEX_PREFIX" envDefault:"kbmcp-docs." validate:"required"`
}

// MemorySettings scopes the indices owned by the memory server.
type MemorySettings struct {
	// MemoryIndexPrefix is the prefix for memory indices.
	// Env: MEMORY_INDEX_PREFIX
	MemoryIndexPrefix string `env:"MEMORY_INDEX_PREFIX" envDefault:"kbmcp-memories." validate:"required"`
}

// CrawlerSettings configures the documentation crawler container.
type CrawlerSettings struct {
	// Pipeline is the Elasticsearch ingestion pipeline applied to crawled
	// documents.
	// Env: crawler_es_pipeline
	Pipeline string `env:"crawler_es_pipeline" envDefault:"search-default-ingestion" validate:"required"`

	// DockerImage is the crawler container image reference.
	// Env: crawler_docker_image
	DockerImage string `env:"crawler_docker_image" envDefault:"ghcr.io/strawgate/es-crawler:main" validate:"required"`

	// DockerSocket is the Docker daemon endpoint the orchestrator talks to.
	// Env: crawler_docker_socket
	DockerSocket string `env:"crawler_docker_socket" envDefault:"unix:///var/run/docker.sock" validate:"required"`
}

// Settings is the process-wide configuration value. It is assembled and
// validated exactly once at startup by [Load] and is read-only afterwards, so
// it may be shared freely across goroutines.
type Settings struct {
	Transport     TransportSettings
	Logging       LoggingSettings
	Elasticsearch ElasticsearchSettings
	KnowledgeBase KnowledgeBaseSettings
	Learn         LearnSettings
	Memory        MemorySettings
	Crawler       CrawlerSettings
}

// Load assembles the settings tree from all sources in priority order
// (first source wins for non-zero fields):
//  1. CLI flag overlays, when supplied
//  2. Environment variables
//  3. Declared defaults
//
// Every group is validated after population; failures from all groups are
// collected into a single *AggregationError so one bad group does not mask
// another.
func Load(overlays ...*Settings) (*Settings, error) {
	b := newSettingsBuilder()
	for _, o := range overlays {
		b.withOverlay(o)
	}
	return b.withEnv().build()
}
