package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/trendscout/skimmer/internal/model"
	"github.com/trendscout/skimmer/internal/scorer"
	"github.com/trendscout/skimmer/internal/web"
)

var (
	productsLimit int
	productsJSON  bool
)

var productsCmd = &cobra.Command{
	Use:   "products",
	Short: "List stored products ranked by agent score",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		st, err := initStore(ctx)
		if err != nil {
			return err
		}
		defer st.Close() //nolint:errcheck
		if err := st.Migrate(ctx); err != nil {
			return err
		}

		products, err := st.ListProducts(ctx, productsLimit)
		if err != nil {
			return eris.Wrap(err, "list products")
		}

		if len(products) == 0 {
			fmt.Fprintln(os.Stderr, "No products found. Run `skimmer seed` or `skimmer import` first.")
			return nil
		}

		if productsJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(products)
		}

		formatProductsList(os.Stdout, products)
		return nil
	},
}

func formatProductsList(out io.Writer, products []model.Product) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "NAME\tCATEGORY\tPRICE\tCOMM\tSCORE\tVIRALITY\tVIEWS_7D\tRATING")
	_, _ = fmt.Fprintln(w, "----\t--------\t-----\t----\t-----\t--------\t--------\t------")

	for _, p := range products {
		name := p.Name
		if len(name) > 36 {
			name = name[:33] + "..."
		}

		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			name,
			p.Category,
			web.FormatPrice(p.Price),
			web.FormatCommission(p.Commission),
			web.FormatScore(p.AgentScore),
			web.FormatVirality(p.Virality),
			web.FormatViews(p.Views7d),
			scorer.Display(p.Rating),
		)
	}
	_ = w.Flush()
}

func init() {
	productsCmd.Flags().IntVar(&productsLimit, "limit", 100, "maximum products to list")
	productsCmd.Flags().BoolVar(&productsJSON, "json", false, "emit JSON instead of a table")
	rootCmd.AddCommand(productsCmd)
}
