// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 the kbmcp authors

package config

import (
	"errors"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

// groupValidate checks struct-tag rules on the setting groups.
var groupValidate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Level names are whatever zerolog accepts, case-insensitive.
	_ = v.RegisterValidation("loglevel", func(fl validator.FieldLevel) bool {
		_, err := zerolog.ParseLevel(strings.ToLower(fl.Field().String()))
		return err == nil
	})
	return v
}

// validate runs every group's local rules exactly once, immediately after
// population. All failing groups are reported together in a single
// *AggregationError; one bad group never masks another.
func (s *Settings) validate() error {
	var errs []error

	groups := []struct {
		name  string
		value any
	}{
		{"transport", s.Transport},
		{"logging", s.Logging},
		{"elasticsearch", s.Elasticsearch},
		{"knowledge_base", s.KnowledgeBase},
		{"learn", s.Learn},
		{"memory", s.Memory},
		{"crawler", s.Crawler},
	}
	for _, g := range groups {
		errs = append(errs, validateGroup(g.name, g.value)...)
	}

	errs = append(errs, s.Elasticsearch.Authentication.validate()...)

	switch len(errs) {
	case 0:
		return nil
	case 1:
		return errs[0]
	default:
		return &AggregationError{Errs: errs}
	}
}

func validateGroup(name string, value any) []error {
	err := groupValidate.Struct(value)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return []error{&ValidationError{Group: name, Rule: err.Error()}}
	}

	errs := make([]error, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		rule := fe.Tag()
		if fe.Param() != "" {
			rule += "=" + fe.Param()
		}
		errs = append(errs, &ValidationError{
			Group: name,
			Rule:  snakeCase(fe.StructField()) + " must satisfy " + rule,
		})
	}
	return errs
}

// validate enforces the credential exclusivity invariant: an API key never
// combines with basic auth, and username/password only come as a pair.
// Configuring no credentials at all is valid.
func (a AuthenticationSettings) validate() []error {
	var errs []error

	if a.APIKey.IsSet() && (a.Username != "" || a.Password.IsSet()) {
		errs = append(errs, &ValidationError{
			Group: "authentication",
			Rule:  "cannot combine api_key with basic auth",
		})
	}
	if a.Username != "" && !a.Password.IsSet() {
		errs = append(errs, &ValidationError{
			Group: "authentication",
			Rule:  "username requires password",
		})
	}
	if a.Password.IsSet() && a.Username == "" {
		errs = append(errs, &ValidationError{
			Group: "authentication",
			Rule:  "password requires username",
		})
	}

	return errs
}

func snakeCase(s string) string {
	runes := []rune(s)
	var b strings.Builder
	for i, r := range runes {
		if unicode.IsUpper(r) {
			prevLower := i > 0 && !unicode.IsUpper(runes[i-1])
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if i > 0 && (prevLower || nextLower) {
				b.WriteRune('_')
			}
			r = unicode.ToLower(r)
		}
		b.WriteRune(r)
	}
	return b.String()
}
