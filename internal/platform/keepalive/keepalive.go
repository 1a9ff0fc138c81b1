package keepalive

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/fantasyops/sleeper-mcp/internal/platform/logging"
)

const (
	defaultInterval = 5 * time.Minute
	pingTimeout     = 30 * time.Second
)

// Pinger keeps a free-tier host from idling the process out by hitting
// the service's own health endpoint on an interval.
type Pinger struct {
	url      string
	interval time.Duration
	client   *http.Client
	logger   *logging.Logger

	ticker   *time.Ticker
	done     chan struct{}
	stopOnce sync.Once
	startMu  sync.Mutex
	started  bool
}

func New(url string, interval time.Duration, client *http.Client, logger *logging.Logger) *Pinger {
	if interval <= 0 {
		interval = defaultInterval
	}
	if client == nil {
		client = &http.Client{Timeout: pingTimeout}
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &Pinger{
		url:      url,
		interval: interval,
		client:   client,
		logger:   logger,
		done:     make(chan struct{}),
	}
}

// Start begins pinging until the context is cancelled or Stop is called.
func (p *Pinger) Start(ctx context.Context) {
	p.startMu.Lock()
	if p.started {
		p.startMu.Unlock()
		return
	}
	p.started = true
	p.startMu.Unlock()

	p.ticker = time.NewTicker(p.interval)

	go func() {
		p.logger.Info("keepalive started", "url", p.url, "interval", p.interval.String())

		for {
			select {
			case <-ctx.Done():
				p.stopTicker()
				p.logger.Info("keepalive stopped")
				return
			case <-p.done:
				p.stopTicker()
				p.logger.Info("keepalive stopped")
				return
			case <-p.ticker.C:
				p.pingOnce(ctx)
			}
		}
	}()
}

// Stop halts the ping loop.
func (p *Pinger) Stop() {
	p.stopOnce.Do(func() {
		close(p.done)
		p.stopTicker()
	})
}

func (p *Pinger) pingOnce(ctx context.Context) {
	reqCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, p.url, nil)
	if err != nil {
		p.logger.Error("keepalive build request failed", "error", err)
		return
	}

	resp, err := p.client.Do(req)
	if err != nil {
		p.logger.Warn("keepalive ping failed", "url", p.url, "error", err)
		return
	}
	resp.Body.Close()

	p.logger.Debug("keepalive ping", "url", p.url, "status", resp.StatusCode)
}

func (p *Pinger) stopTicker() {
	if p.ticker != nil {
		p.ticker.Stop()
	}
}
