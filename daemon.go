package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/stakeseer/solstake/internal/analyzer"
	"github.com/stakeseer/solstake/internal/lib/misc"
)

// Daemon provides a 'little' separation in that we initialize it with data
// from the App global set up by process startup, but from there it only
// refreshes on its own schedule and serves metrics.
type Daemon struct {
	logger   *slog.Logger
	analyzer *analyzer.Analyzer

	interval   time.Duration
	listenAddr string
}

func newDaemon(interval time.Duration, listenAddr string) *Daemon {
	return &Daemon{
		logger:     App.logger,
		analyzer:   App.analyzer,
		interval:   interval,
		listenAddr: listenAddr,
	}
}

func (d *Daemon) start(ctx context.Context, wg *sync.WaitGroup) {
	d.logger.Info("Starting solstake daemon")

	wg.Add(1)
	go func() {
		defer wg.Done()
		d.RefreshWatcher(ctx)
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		d.serveMetrics(ctx)
	}()
}

// RefreshWatcher re-snapshots the network sources on a fixed interval so
// the exported gauges stay current between report runs.
func (d *Daemon) RefreshWatcher(ctx context.Context) {
	defer d.logger.Info("Exiting RefreshWatcher")
	d.logger.Info("Starting RefreshWatcher")

	// prime the gauges right away rather than waiting a full interval
	d.analyzer.Refresh(ctx)

	for {
		select {
		case <-ctx.Done():
			return
		case <-time.After(d.interval):
			d.analyzer.Refresh(ctx)
		}
	}
}

func (d *Daemon) serveMetrics(ctx context.Context) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	srv := &http.Server{Addr: d.listenAddr, Handler: mux}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	misc.Infof(d.logger, "metrics listening on:%s", d.listenAddr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		misc.Errorf(d.logger, "metrics server error:%v", err)
	}
}
