package config

import (
	"testing"

	"github.com/alecthomas/kingpin/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseFlags(t *testing.T, args ...string) *Settings {
	t.Helper()
	app := kingpin.New("kbmcp-test", "")
	app.Terminate(nil)
	overlay := RegisterFlags(app)
	_, err := app.Parse(args)
	require.NoError(t, err)
	return overlay()
}

func TestRegisterFlags_NoArgsYieldsZeroOverlay(t *testing.T) {
	overlay := parseFlags(t)
	assert.Equal(t, &Settings{}, overlay)
}

func TestRegisterFlags_ElasticsearchGroup(t *testing.T) {
	overlay := parseFlags(t,
		"--es-host", "https://es.internal:9243",
		"--es-request-timeout", "30",
		"--es-index-prefix", "docs",
		"--es-bulk-api-max-items", "500",
		"--es-bulk-api-max-size-bytes", "1048576",
	)

	assert.Equal(t, "https://es.internal:9243", overlay.Elasticsearch.Host)
	assert.Equal(t, 30, overlay.Elasticsearch.RequestTimeout)
	assert.Equal(t, "docs", overlay.Elasticsearch.IndexPrefix)
	assert.Equal(t, 500, overlay.Elasticsearch.BulkMaxItems)
	assert.Equal(t, 1048576, overlay.Elasticsearch.BulkMaxBytes)
}

func TestRegisterFlags_Credentials(t *testing.T) {
	overlay := parseFlags(t,
		"--es-username", "elastic",
		"--es-password", "changeme",
	)

	assert.Equal(t, "elastic", overlay.Elasticsearch.Authentication.Username)
	assert.Equal(t, "changeme", overlay.Elasticsearch.Authentication.Password.Reveal())
	assert.False(t, overlay.Elasticsearch.Authentication.APIKey.IsSet())
}

func TestRegisterFlags_IndexPrefixGroups(t *testing.T) {
	overlay := parseFlags(t,
		"--base-index-prefix", "custom-",
		"--kb-docs-index-prefix", "custom-docs.",
		"--memory-index-prefix", "custom-memories.",
	)

	assert.Equal(t, "custom-", overlay.KnowledgeBase.BaseIndexPrefix)
	assert.Equal(t, "custom-docs.", overlay.Learn.LearnIndexPrefix)
	assert.Equal(t, "custom-memories.", overlay.Memory.MemoryIndexPrefix)
}

// TestRegisterFlags_OverlayThroughLoad exercises the full precedence chain:
// flag over environment over default.
func TestRegisterFlags_OverlayThroughLoad(t *testing.T) {
	setEnvVars(t, map[string]string{
		"ES_HOST": "https://from-env:9200",
	})

	overlay := parseFlags(t, "--es-host", "https://from-flag:9200")

	settings, err := Load(overlay)
	require.NoError(t, err)
	assert.Equal(t, "https://from-flag:9200", settings.Elasticsearch.Host)
	assert.Equal(t, 600, settings.Elasticsearch.RequestTimeout)
}
