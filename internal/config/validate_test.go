// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 the kbmcp authors

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── authentication exclusivity ────────────────────────────────────────────────

func TestAuthenticationValidate_ValidCombinations(t *testing.T) {
	tests := []struct {
		name string
		auth AuthenticationSettings
		want AuthMethod
	}{
		{
			name: "no credentials",
			auth: AuthenticationSettings{},
			want: AuthNone,
		},
		{
			name: "api key only",
			auth: AuthenticationSettings{APIKey: "abc123"},
			want: AuthAPIKey,
		},
		{
			name: "username and password",
			auth: AuthenticationSettings{Username: "elastic", Password: "changeme"},
			want: AuthBasic,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Empty(t, tt.auth.validate())
			assert.Equal(t, tt.want, tt.auth.Method())
		})
	}
}

func TestAuthenticationValidate_InvalidCombinations(t *testing.T) {
	tests := []struct {
		name string
		auth AuthenticationSettings
		rule string
	}{
		{
			name: "api key with username",
			auth: AuthenticationSettings{APIKey: "abc123", Username: "elastic"},
			rule: "cannot combine api_key with basic auth",
		},
		{
			name: "api key with password",
			auth: AuthenticationSettings{APIKey: "abc123", Password: "changeme"},
			rule: "cannot combine api_key with basic auth",
		},
		{
			name: "api key with both",
			auth: AuthenticationSettings{APIKey: "abc123", Username: "elastic", Password: "changeme"},
			rule: "cannot combine api_key with basic auth",
		},
		{
			name: "username without password",
			auth: AuthenticationSettings{Username: "elastic"},
			rule: "username requires password",
		},
		{
			name: "password without username",
			auth: AuthenticationSettings{Password: "changeme"},
			rule: "password requires username",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := tt.auth.validate()
			require.NotEmpty(t, errs)

			var validationErr *ValidationError
			require.ErrorAs(t, errs[0], &validationErr)
			assert.Equal(t, "authentication", validationErr.Group)
			assert.Equal(t, tt.rule, validationErr.Rule)
		})
	}
}

// TestLoad_MixedAuthFailsConstruction runs the exclusivity rule through the
// full construction path.
func TestLoad_MixedAuthFailsConstruction(t *testing.T) {
	setEnvVars(t, map[string]string{
		"ES_API_KEY":  "abc123",
		"ES_USERNAME": "elastic",
		"ES_PASSWORD": "changeme",
	})

	settings, err := Load()
	assert.Nil(t, settings)
	require.Error(t, err)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "authentication", validationErr.Group)
}

// ── group rules ───────────────────────────────────────────────────────────────

func TestSettingsValidate_FieldRules(t *testing.T) {
	tests := []struct {
		name  string
		env   map[string]string
		group string
		rule  string
	}{
		{
			name:  "non-positive timeout",
			env:   map[string]string{"ES_REQUEST_TIMEOUT": "-5"},
			group: "elasticsearch",
			rule:  "request_timeout must satisfy gt=0",
		},
		{
			name:  "non-positive bulk items",
			env:   map[string]string{"ES_BULK_API_MAX_ITEMS": "-1"},
			group: "elasticsearch",
			rule:  "bulk_max_items must satisfy gt=0",
		},
		{
			name:  "malformed host",
			env:   map[string]string{"ES_HOST": "not a url"},
			group: "elasticsearch",
			rule:  "host must satisfy url",
		},
		{
			name:  "unknown log level",
			env:   map[string]string{"MCP_LOG_LEVEL": "WHISPER"},
			group: "logging",
			rule:  "level must satisfy loglevel",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setEnvVars(t, tt.env)

			settings, err := Load()
			assert.Nil(t, settings)
			require.Error(t, err)

			var validationErr *ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tt.group, validationErr.Group)
			assert.Equal(t, tt.rule, validationErr.Rule)
		})
	}
}

// ── aggregation ───────────────────────────────────────────────────────────────

// TestSettingsValidate_AllGroupsReported verifies that a failure in one
// group does not mask a failure in another: both surface in one error.
func TestSettingsValidate_AllGroupsReported(t *testing.T) {
	setEnvVars(t, map[string]string{
		"MCP_LOG_LEVEL": "WHISPER",
		"ES_USERNAME":   "orphan",
	})

	settings, err := Load()
	assert.Nil(t, settings)
	require.Error(t, err)

	var aggErr *AggregationError
	require.ErrorAs(t, err, &aggErr)
	require.Len(t, aggErr.Errs, 2)

	groups := make([]string, 0, len(aggErr.Errs))
	for _, child := range aggErr.Errs {
		var validationErr *ValidationError
		require.ErrorAs(t, child, &validationErr)
		groups = append(groups, validationErr.Group)
	}
	assert.ElementsMatch(t, []string{"logging", "authentication"}, groups)
}

func TestSnakeCase(t *testing.T) {
	assert.Equal(t, "request_timeout", snakeCase("RequestTimeout"))
	assert.Equal(t, "bulk_max_bytes", snakeCase("BulkMaxBytes"))
	assert.Equal(t, "api_key", snakeCase("APIKey"))
	assert.Equal(t, "host", snakeCase("Host"))
}
