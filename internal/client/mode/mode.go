// Package mode decides, once per session, whether the client runs against
// the remote service or the on-device store.
package mode

import (
	"context"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/ohJeez/e-commerece-website/internal/client/session"
)

const probeTimeout = 3 * time.Second

// Detect probes the remote service's ping endpoint exactly once. Any kind
// of failure, including a non-2xx answer, selects local mode; the result is
// fixed for the rest of the session. Detect never panics.
func Detect(ctx context.Context, apiBase string, client *http.Client, log zerolog.Logger) session.Mode {
	if client == nil {
		client = http.DefaultClient
	}

	probeCtx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(probeCtx, http.MethodGet, apiBase+"/api/ping", nil)
	if err != nil {
		log.Warn().Err(err).Msg("malformed API base, falling back to local mode")
		return session.ModeLocal
	}

	res, err := client.Do(req)
	if err != nil {
		log.Info().Msg("API not reachable, falling back to local mode")
		return session.ModeLocal
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		log.Info().Int("status", res.StatusCode).Msg("API probe rejected, falling back to local mode")
		return session.ModeLocal
	}
	return session.ModeRemote
}
