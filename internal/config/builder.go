package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
)

// settingsBuilder layers configuration sources before the single merge and
// validation pass. Layers are merged in append order and mergo only fills
// zero fields, so the earliest layer wins; appending flags before env gives
// the CLI precedence, and env defaults backfill the rest.
type settingsBuilder struct {
	layers []*Settings
	err    error
}

func newSettingsBuilder() *settingsBuilder {
	return &settingsBuilder{
		layers: make([]*Settings, 0, 2),
	}
}

func (b *settingsBuilder) withOverlay(s *Settings) *settingsBuilder {
	if s != nil {
		b.layers = append(b.layers, s)
	}
	return b
}

func (b *settingsBuilder) withEnv() *settingsBuilder {
	envCfg := &Settings{}
	if err := parseEnv(envCfg); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.layers = append(b.layers, envCfg)
	return b
}

func (b *settingsBuilder) build() (*Settings, error) {
	if b.err != nil {
		return nil, b.err
	}

	settings := new(Settings)
	for _, layer := range b.layers {
		if err := mergo.Merge(settings, layer); err != nil {
			return nil, fmt.Errorf("config: merging sources: %w", err)
		}
	}

	if err := settings.validate(); err != nil {
		return nil, err
	}

	return settings, nil
}
