package main

import (
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/trendscout/skimmer/internal/seed"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load the starter product catalog into the store",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		st, err := initStore(ctx)
		if err != nil {
			return err
		}
		defer st.Close()

		if err := st.Migrate(ctx); err != nil {
			return eris.Wrap(err, "migrate store")
		}

		n, err := seed.Run(ctx, st)
		if err != nil {
			return err
		}

		zap.L().Info("seed complete",
			zap.Int("products", n),
			zap.String("driver", cfg.Store.Driver),
		)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
}
