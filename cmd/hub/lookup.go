package hub

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/saadjs/habit-hub/internal/provider/openfoodfacts"
)

var lookupCmd = &cobra.Command{
	Use:   "lookup",
	Short: "Lookup nutrition data from Open Food Facts",
}

var lookupJSON bool

var lookupBarcodeCmd = &cobra.Command{
	Use:   "barcode <code>",
	Short: "Lookup a food by barcode",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		product, err := lookupClient().LookupBarcode(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		if lookupJSON {
			b, err := json.MarshalIndent(product, "", "  ")
			if err != nil {
				return fmt.Errorf("marshal barcode lookup json: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(b))
			return nil
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Barcode: %s\n", product.Barcode)
		fmt.Fprintf(out, "Food: %s\n", product.Name)
		fmt.Fprintf(out, "Brand: %s\n", product.Brand)
		fmt.Fprintf(out, "Serving: %s\n", product.Quantity())
		fmt.Fprintf(out, "Calories: %.1f\nProtein: %.1fg\nCarbs: %.1fg\nFat: %.1fg\n", product.Calories, product.ProteinG, product.CarbsG, product.FatG)
		return nil
	},
}

func lookupClient() *openfoodfacts.Client {
	return &openfoodfacts.Client{
		BaseURL:    cfg.Lookup.BaseURL,
		HTTPClient: &http.Client{Timeout: cfg.Lookup.Timeout},
	}
}

func init() {
	rootCmd.AddCommand(lookupCmd)
	lookupCmd.AddCommand(lookupBarcodeCmd)
	lookupBarcodeCmd.Flags().BoolVar(&lookupJSON, "json", false, "Output JSON")
}
