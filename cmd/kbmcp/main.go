package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/alecthomas/kingpin/v2"

	"github.com/strawgate/kbmcp/internal/config"
	"github.com/strawgate/kbmcp/internal/crawler"
	"github.com/strawgate/kbmcp/internal/esclient"
	"github.com/strawgate/kbmcp/internal/logger"
)

var (
	buildVersion string
	buildCommit  string
)

func main() {
	app := kingpin.New("kbmcp", "Documentation knowledge base MCP service backed by Elasticsearch.")
	app.Version(version())
	overlay := config.RegisterFlags(app)
	kingpin.MustParse(app.Parse(os.Args[1:]))

	settings, err := config.Load(overlay())
	if err != nil {
		// No partial starts: any parse or validation failure is fatal and
		// names the offending field or group.
		fmt.Fprintf(os.Stderr, "kbmcp: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.Configure(settings.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "kbmcp: %v\n", err)
		os.Exit(1)
	}

	log.Info().
		Str("version", version()).
		Str("transport", string(settings.Transport.Transport)).
		Str("es_host", settings.Elasticsearch.Host).
		Int("es_port", settings.Elasticsearch.Port()).
		Str("index_pattern", settings.Elasticsearch.IndexPattern()).
		Str("learn_index_pattern", settings.Learn.LearnIndexPattern()).
		Str("memory_index_pattern", settings.Memory.MemoryIndexPattern()).
		Msg("settings loaded")

	es := esclient.New(settings.Elasticsearch.ClientConnection(), log)

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := es.Ping(ctx); err != nil {
		log.Warn().Err(err).Msg("elasticsearch not reachable at startup")
	}

	orch := crawler.New(settings.Elasticsearch.CrawlerConnection(), settings.Crawler, log)
	log.Info().
		Str("crawler_image", orch.Image()).
		Str("docker_socket", orch.DockerSocket()).
		Msg("crawler orchestrator ready")

	// The MCP transport attaches here; the stdio and sse servers consume the
	// validated settings tree and the constructed collaborators.
}

func version() string {
	v := buildVersion
	if v == "" {
		v = "dev"
	}
	if buildCommit != "" {
		v += " (" + buildCommit + ")"
	}
	return v
}
