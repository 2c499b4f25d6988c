// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 the kbmcp authors

package config

import (
	"errors"
	"os"
	"reflect"
	"strings"

	"github.com/caarlos0/env/v11"
)

// parseEnv populates cfg from environment variables using the caarlos0/env
// library. Fields are mapped via the `env` and `envDefault` tags declared on
// [Settings] and its nested groups; the tags are the alias/default table for
// the whole configuration surface.
//
// Conversion failures are translated into *ParseError values naming the
// environment variable and the raw value that failed.
func parseEnv(cfg *Settings) error {
	if err := env.Parse(cfg); err != nil {
		return translateEnvError(err)
	}
	return nil
}

// translateEnvError maps caarlos0/env parse failures onto the package error
// taxonomy. Aggregated failures stay aggregated so every bad variable is
// reported in one pass.
func translateEnvError(err error) error {
	var agg env.AggregateError
	if !errors.As(err, &agg) {
		return err
	}

	aliases := envAliases(reflect.TypeOf(Settings{}))

	errs := make([]error, 0, len(agg.Errors))
	for _, e := range agg.Errors {
		var pe env.ParseError
		if !errors.As(e, &pe) {
			errs = append(errs, e)
			continue
		}

		field := pe.Name
		raw := ""
		if alias, ok := aliases[pe.Name]; ok {
			field = alias
			raw = os.Getenv(alias)
		}
		errs = append(errs, &ParseError{Field: field, Value: raw, Err: pe.Err})
	}

	if len(errs) == 1 {
		return errs[0]
	}
	return &AggregationError{Errs: errs}
}

// envAliases walks the settings struct and returns the field-name to
// env-variable-name table declared by the `env` tags.
func envAliases(t reflect.Type) map[string]string {
	out := make(map[string]string)
	var walk func(reflect.Type)
	walk = func(t reflect.Type) {
		for i := 0; i < t.NumField(); i++ {
			sf := t.Field(i)
			if sf.Type.Kind() == reflect.Struct && sf.Tag.Get("env") == "" {
				walk(sf.Type)
				continue
			}
			if tag := sf.Tag.Get("env"); tag != "" {
				name, _, _ := strings.Cut(tag, ",")
				out[sf.Name] = name
			}
		}
	}
	walk(t)
	return out
}
