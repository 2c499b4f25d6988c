package config

import (
	"github.com/alecthomas/kingpin/v2"
)

// RegisterFlags declares the long-form kebab-case flags for the CLI-enabled
// setting groups on app and returns a function that materializes the flag
// overlay after app.Parse has run. Flag values take precedence over
// environment variables; unset flags leave their fields zero so the merge
// falls through to the next source.
//
// Flags:
//
//	--es-host                     Elasticsearch host URL
//	--es-request-timeout          request timeout in seconds
//	--es-index-prefix             documentation index prefix
//	--es-bulk-api-max-items       bulk API max items
//	--es-bulk-api-max-size-bytes  bulk API max payload bytes
//	--es-username                 basic auth username
//	--es-password                 basic auth password
//	--es-api-key                  API key
//	--base-index-prefix           base index prefix
//	--kb-docs-index-prefix        learn index prefix
//	--memory-index-prefix         memory index prefix
func RegisterFlags(app *kingpin.Application) func() *Settings {
	var (
		esHost         = app.Flag("es-host", "Elasticsearch host URL in the form https://<host>:<port>.").String()
		esTimeout      = app.Flag("es-request-timeout", "Request timeout for Elasticsearch operations in seconds.").Int()
		esIndexPrefix  = app.Flag("es-index-prefix", "Prefix for the Elasticsearch indices storing documentation.").String()
		esBulkMaxItems = app.Flag("es-bulk-api-max-items", "Maximum number of items per bulk API operation.").Int()
		esBulkMaxBytes = app.Flag("es-bulk-api-max-size-bytes", "Maximum size in bytes per bulk API operation.").Int()
		esUsername     = app.Flag("es-username", "Username for basic authentication.").String()
		esPassword     = app.Flag("es-password", "Password for basic authentication.").String()
		esAPIKey       = app.Flag("es-api-key", "API key for authentication.").String()

		basePrefix   = app.Flag("base-index-prefix", "Prefix common to all kbmcp-owned indices.").String()
		learnPrefix  = app.Flag("kb-docs-index-prefix", "Prefix for the learn server's indices.").String()
		memoryPrefix = app.Flag("memory-index-prefix", "Prefix for the memory server's indices.").String()
	)

	return func() *Settings {
		return &Settings{
			Elasticsearch: ElasticsearchSettings{
				Host:           *esHost,
				RequestTimeout: *esTimeout,
				IndexPrefix:    *esIndexPrefix,
				BulkMaxItems:   *esBulkMaxItems,
				BulkMaxBytes:   *esBulkMaxBytes,
				Authentication: AuthenticationSettings{
					Username: *esUsername,
					Password: Secret(*esPassword),
					APIKey:   Secret(*esAPIKey),
				},
			},
			KnowledgeBase: KnowledgeBaseSettings{BaseIndexPrefix: *basePrefix},
			Learn:         LearnSettings{LearnIndexPrefix: *learnPrefix},
			Memory:        MemorySettings{MemoryIndexPrefix: *memoryPrefix},
		}
	}
}
