// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 the kbmcp authors

package config

import (
	"net/url"
	"strconv"
)

// AuthMethod identifies which credential mode a connection view carries.
type AuthMethod int

const (
	// AuthNone means no credentials are configured. Valid, but consumers
	// emit a diagnostic before dialing out.
	AuthNone AuthMethod = iota
	// AuthAPIKey means the view carries an API key.
	AuthAPIKey
	// AuthBasic means the view carries a username/password pair.
	AuthBasic
)

func (m AuthMethod) String() string {
	switch m {
	case AuthAPIKey:
		return "api_key"
	case AuthBasic:
		return "basic_auth"
	default:
		return "none"
	}
}

// ClientConnection is the derived view consumed by the Elasticsearch client.
// Exactly one credential set is populated, selected by AuthMethod; the
// plaintext is materialized here and nowhere else.
type ClientConnection struct {
	Hosts          []string
	RequestTimeout int // seconds
	HTTPCompress   bool
	RetryOnStatus  []int
	RetryOnTimeout bool
	MaxRetries     int

	AuthMethod AuthMethod
	APIKey     string // set only for AuthAPIKey
	Username   string // set only for AuthBasic
	Password   string // set only for AuthBasic
}

// CrawlerConnection is the derived view consumed by the crawler orchestrator.
type CrawlerConnection struct {
	Host           string
	Port           int
	RequestTimeout int // seconds
	BulkMaxItems   int
	BulkMaxBytes   int

	AuthMethod AuthMethod
	APIKey     string
	Username   string
	Password   string
}

// Scheme returns the URL scheme of the configured host.
func (es ElasticsearchSettings) Scheme() string {
	u, err := url.Parse(es.Host)
	if err != nil {
		return ""
	}
	return u.Scheme
}

// Hostname returns the host component of the configured host URL.
func (es ElasticsearchSettings) Hostname() string {
	u, err := url.Parse(es.Host)
	if err != nil {
		return ""
	}
	return u.Hostname()
}

// Port returns the explicit port of the host URL when present, otherwise
// 443 for https and 80 for any other scheme.
func (es ElasticsearchSettings) Port() int {
	u, err := url.Parse(es.Host)
	if err != nil {
		return 0
	}
	if p := u.Port(); p != "" {
		port, err := strconv.Atoi(p)
		if err == nil {
			return port
		}
	}
	if u.Scheme == "https" {
		return 443
	}
	return 80
}

// IndexPattern is the wildcard identifying every documentation index.
func (es ElasticsearchSettings) IndexPattern() string {
	return es.IndexPrefix + "-*"
}

// ClientConnection computes the client-library constructor arguments from
// the validated connection settings.
func (es ElasticsearchSettings) ClientConnection() ClientConnection {
	view := ClientConnection{
		Hosts:          []string{es.Host},
		RequestTimeout: es.RequestTimeout,
		HTTPCompress:   true,
		RetryOnStatus:  []int{408, 429, 502, 503, 504},
		RetryOnTimeout: true,
		MaxRetries:     5,
	}
	view.AuthMethod, view.APIKey, view.Username, view.Password = es.Authentication.reveal()
	return view
}

// CrawlerConnection computes the crawler-process constructor arguments from
// the validated connection settings.
func (es ElasticsearchSettings) CrawlerConnection() CrawlerConnection {
	view := CrawlerConnection{
		Host:           es.Host,
		Port:           es.Port(),
		RequestTimeout: es.RequestTimeout,
		BulkMaxItems:   es.BulkMaxItems,
		BulkMaxBytes:   es.BulkMaxBytes,
	}
	view.AuthMethod, view.APIKey, view.Username, view.Password = es.Authentication.reveal()
	return view
}

// reveal materializes the plaintext credentials for a connection view. The
// result is never cached; each view construction reveals anew.
func (a AuthenticationSettings) reveal() (method AuthMethod, apiKey, username, password string) {
	switch method = a.Method(); method {
	case AuthAPIKey:
		apiKey = a.APIKey.Reveal()
	case AuthBasic:
		username = a.Username
		password = a.Password.Reveal()
	}
	return method, apiKey, username, password
}

// BaseIndexPattern is the wildcard identifying every index kbmcp owns.
func (kb KnowledgeBaseSettings) BaseIndexPattern() string {
	return kb.BaseIndexPrefix + "*"
}

// LearnIndexPattern is the wildcard identifying the learn server's indices.
func (l LearnSettings) LearnIndexPattern() string {
	return l.LearnIndexPrefix + "*"
}

// MemoryIndexPattern is the wildcard identifying the memory server's indices.
func (m MemorySettings) MemoryIndexPattern() string {
	return m.MemoryIndexPrefix + "*"
}
