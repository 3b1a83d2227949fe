package main

import (
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/trendscout/skimmer/internal/observability"
	"github.com/trendscout/skimmer/internal/scorer"
	"github.com/trendscout/skimmer/internal/source"
)

var importFilePath string

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import products from a CSV or XLSX file into the store",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		records, err := source.ReadProductsFile(importFilePath)
		if err != nil {
			return eris.Wrap(err, "read products file")
		}

		products := scorer.NormalizeAll(records)
		if len(products) == 0 {
			zap.L().Warn("no products found in file", zap.String("file", importFilePath))
			return nil
		}

		st, err := initStore(ctx)
		if err != nil {
			return err
		}
		defer st.Close()

		if err := st.Migrate(ctx); err != nil {
			return eris.Wrap(err, "migrate store")
		}

		if err := st.UpsertProducts(ctx, products); err != nil {
			return eris.Wrap(err, "upsert products")
		}
		observability.ProductsUpserted.Add(float64(len(products)))

		zap.L().Info("import complete",
			zap.Int("products", len(products)),
			zap.String("file", importFilePath),
		)
		return nil
	},
}

func init() {
	importCmd.Flags().StringVar(&importFilePath, "file", "", "path to CSV or XLSX file (required)")
	_ = importCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(importCmd)
}
