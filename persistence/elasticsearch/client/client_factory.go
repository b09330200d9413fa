package client

import (
	"net/http"

	"github.com/sully90/elasticutils/common/log"
)

// NewClient creates a Client against the cluster described by config.
// httpClient may be nil, in which case http.DefaultClient is used.
func NewClient(config *Config, httpClient *http.Client, logger log.Logger) (Client, error) {
	return newClient(config, httpClient, logger)
}
