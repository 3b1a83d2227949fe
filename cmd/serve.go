package main

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/trendscout/skimmer/internal/source"
	"github.com/trendscout/skimmer/internal/store"
	"github.com/trendscout/skimmer/internal/web"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the dashboard server",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		src, closeFn, err := initSource(ctx)
		if err != nil {
			return err
		}
		defer closeFn()

		port := servePort
		if port == 0 {
			port = cfg.Server.Port
		}

		srv := &http.Server{
			Addr:    fmt.Sprintf(":%d", port),
			Handler: web.New(src).Handler(),
		}

		g, ctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			zap.L().Info("starting server", zap.Int("port", port))
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				return eris.Wrap(err, "server listen")
			}
			return nil
		})
		g.Go(func() error {
			<-ctx.Done()
			zap.L().Info("shutting down server")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		})

		return g.Wait()
	},
}

// initSource picks the product source: a published sheet when a CSV URL is
// configured, otherwise the relational store.
func initSource(ctx context.Context) (source.Source, func(), error) {
	if cfg.Sheet.CSVURL != "" {
		zap.L().Info("serving from sheet", zap.String("url", cfg.Sheet.CSVURL))
		return source.NewSheetSource(cfg.Sheet), func() {}, nil
	}

	st, err := initStore(ctx)
	if err != nil {
		return nil, nil, err
	}
	zap.L().Info("serving from store", zap.String("driver", cfg.Store.Driver))
	return source.NewStoreSource(st, store.DefaultListLimit), func() { _ = st.Close() }, nil
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "server port (default from config)")
	rootCmd.AddCommand(serveCmd)
}
