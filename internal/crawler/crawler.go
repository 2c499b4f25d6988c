package crawler

import (
	"fmt"
	"net/url"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/strawgate/kbmcp/internal/config"
	"github.com/strawgate/kbmcp/internal/logger"
)

// ConfigContainerPath is where the rendered crawl config is injected inside
// the crawler container.
const ConfigContainerPath = "/config/crawl.yml"

// CrawlParams are the derived inputs for a single crawl of one site.
type CrawlParams struct {
	// Domain is the scheme://host root the crawler is allowed to touch.
	Domain string
	// SeedURL is where the crawl starts.
	SeedURL string
	// FilterPattern is the path prefix pages must begin with.
	FilterPattern string
}

// Orchestrator prepares crawler container runs: it renders the crawl config
// consumed by the crawler process from the crawler-connection view and the
// crawler settings. Container lifecycle itself is handled by the caller.
type Orchestrator struct {
	conn config.CrawlerConnection
	cfg  config.CrawlerSettings
	log  *logger.Logger
}

// New builds an Orchestrator for the configured crawler image.
func New(conn config.CrawlerConnection, cfg config.CrawlerSettings, log *logger.Logger) *Orchestrator {
	return &Orchestrator{conn: conn, cfg: cfg, log: log}
}

// Image returns the crawler container image reference.
func (o *Orchestrator) Image() string {
	return o.cfg.DockerImage
}

// DockerSocket returns the Docker daemon endpoint used to run the crawler.
func (o *Orchestrator) DockerSocket() string {
	return o.cfg.DockerSocket
}

// RenderConfig produces the YAML crawl configuration injected at
// [ConfigContainerPath]: the domain with its seed URL and crawl rules
// (allow pages beginning with the filter pattern, deny everything else),
// and the Elasticsearch output the crawler writes into.
func (o *Orchestrator) RenderConfig(params CrawlParams, outputIndex string) (string, error) {
	doc := map[string]any{
		"domains": []map[string]any{
			{
				"url":       params.Domain,
				"seed_urls": []string{params.SeedURL},
				"crawl_rules": []map[string]string{
					{"policy": "allow", "type": "begins", "pattern": params.FilterPattern},
					{"policy": "deny", "type": "regex", "pattern": ".*"},
				},
			},
		},
		"output_sink":   "elasticsearch",
		"output_index":  outputIndex,
		"elasticsearch": o.elasticsearchBlock(),
	}

	out, err := yaml.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("crawler: render config: %w", err)
	}

	o.log.Debug().Str("output_index", outputIndex).Str("domain", params.Domain).Msg("crawl config rendered")
	return string(out), nil
}

func (o *Orchestrator) elasticsearchBlock() map[string]any {
	block := map[string]any{
		"host":                    o.conn.Host,
		"port":                    o.conn.Port,
		"request_timeout":         o.conn.RequestTimeout,
		"bulk_api.max_items":      o.conn.BulkMaxItems,
		"bulk_api.max_size_bytes": o.conn.BulkMaxBytes,
		"pipeline":                o.cfg.Pipeline,
	}

	switch o.conn.AuthMethod {
	case config.AuthAPIKey:
		block["api_key"] = o.conn.APIKey
	case config.AuthBasic:
		block["username"] = o.conn.Username
		block["password"] = o.conn.Password
	}

	return block
}

// DeriveCrawlParams guesses sensible crawl parameters from a single URL:
// a URL whose last path segment looks like a file crawls everything under
// its parent directory, any other URL crawls everything beneath itself.
func DeriveCrawlParams(rawURL string) (CrawlParams, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return CrawlParams{}, fmt.Errorf("crawler: parse url %q: %w", rawURL, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return CrawlParams{}, fmt.Errorf("crawler: url %q needs a scheme and host", rawURL)
	}

	path := u.Path
	filterPattern := path

	if last := path[strings.LastIndex(path, "/")+1:]; !strings.HasSuffix(path, "/") && strings.Contains(last, ".") {
		filterPattern = path[:strings.LastIndex(path, "/")+1]
		if filterPattern == "" {
			filterPattern = "/"
		}
	}

	return CrawlParams{
		Domain:        u.Scheme + "://" + u.Host,
		SeedURL:       rawURL,
		FilterPattern: filterPattern,
	}, nil
}
