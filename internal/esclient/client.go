package esclient

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/strawgate/kbmcp/internal/config"
	"github.com/strawgate/kbmcp/internal/logger"
)

// Client is the Elasticsearch HTTP client used by the knowledge-base
// servers. It is constructed once from the client-connection view; the
// transport, retry policy, and credentials all come from the view and are
// never reconfigured afterwards.
type Client struct {
	http *resty.Client
	log  *logger.Logger
}

// New builds a Client from the client-connection view.
//
// When the view carries no credentials the connection is still established,
// but a diagnostic is logged before the first dial: connecting to an
// unauthenticated dev cluster is legitimate, silently doing so is not.
func New(conn config.ClientConnection, log *logger.Logger) *Client {
	cli := resty.New().
		SetTimeout(time.Duration(conn.RequestTimeout) * time.Second).
		SetRetryCount(conn.MaxRetries).
		AddRetryCondition(func(resp *resty.Response, err error) bool {
			if err != nil {
				return conn.RetryOnTimeout
			}
			for _, status := range conn.RetryOnStatus {
				if resp.StatusCode() == status {
					return true
				}
			}
			return false
		})

	if len(conn.Hosts) > 0 {
		cli.SetBaseURL(strings.TrimRight(conn.Hosts[0], "/"))
	}
	if conn.HTTPCompress {
		cli.SetHeader("Accept-Encoding", "gzip")
	}

	switch conn.AuthMethod {
	case config.AuthAPIKey:
		cli.SetHeader("Authorization", "ApiKey "+conn.APIKey)
	case config.AuthBasic:
		cli.SetBasicAuth(conn.Username, conn.Password)
	default:
		log.Warn().Msg("no authentication method configured for elasticsearch")
	}

	return &Client{http: cli, log: log}
}

// BaseURL returns the cluster URL the client dials.
func (c *Client) BaseURL() string {
	return c.http.BaseURL
}

// Ping checks cluster reachability with a GET on the root endpoint.
func (c *Client) Ping(ctx context.Context) error {
	resp, err := c.http.R().
		SetContext(ctx).
		Get("/")
	if err != nil {
		return fmt.Errorf("ping request: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("ping: elasticsearch returned %s", resp.Status())
	}

	c.log.Debug().Str("status", resp.Status()).Msg("elasticsearch reachable")
	return nil
}
