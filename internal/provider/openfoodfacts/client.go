package openfoodfacts

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"
)

const defaultBaseURL = "https://world.openfoodfacts.org"

// Product holds per-serving macros, or per-100g values when the product
// does not publish serving data.
type Product struct {
	Barcode       string
	Name          string
	Brand         string
	ServingAmount float64
	ServingUnit   string
	Calories      float64
	ProteinG      float64
	CarbsG        float64
	FatG          float64
}

// Quantity renders the serving as a food-log quantity label.
func (p Product) Quantity() string {
	return strconv.FormatFloat(p.ServingAmount, 'f', -1, 64) + p.ServingUnit
}

type Client struct {
	BaseURL    string
	UserAgent  string
	HTTPClient *http.Client
}

func (c *Client) LookupBarcode(ctx context.Context, barcode string) (Product, error) {
	barcode = strings.TrimSpace(barcode)
	if barcode == "" {
		return Product{}, fmt.Errorf("barcode is required")
	}
	base := strings.TrimRight(strings.TrimSpace(c.BaseURL), "/")
	if base == "" {
		base = defaultBaseURL
	}
	httpClient := c.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 12 * time.Second}
	}
	userAgent := c.UserAgent
	if userAgent == "" {
		userAgent = "habit-hub/1.0 (+https://github.com/saadjs/habit-hub)"
	}

	url := fmt.Sprintf("%s/api/v2/product/%s.json", base, barcode)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return Product{}, fmt.Errorf("create openfoodfacts request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := httpClient.Do(req)
	if err != nil {
		return Product{}, fmt.Errorf("execute openfoodfacts request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Product{}, fmt.Errorf("read openfoodfacts response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return Product{}, fmt.Errorf("openfoodfacts request failed with status %d", resp.StatusCode)
	}

	var parsed offResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return Product{}, fmt.Errorf("decode openfoodfacts response: %w", err)
	}
	if parsed.Status != 1 || strings.TrimSpace(parsed.Product.ProductName) == "" {
		return Product{}, fmt.Errorf("no openfoodfacts product found for barcode %q", barcode)
	}

	p := parsed.Product
	amount, unit, suffix := parseServing(p)
	return Product{
		Barcode:       barcode,
		Name:          strings.TrimSpace(p.ProductName),
		Brand:         strings.TrimSpace(p.Brands),
		ServingAmount: amount,
		ServingUnit:   unit,
		Calories:      nutrientValue(p.Nutriments, "energy-kcal"+suffix),
		ProteinG:      nutrientValue(p.Nutriments, "proteins"+suffix),
		CarbsG:        nutrientValue(p.Nutriments, "carbohydrates"+suffix),
		FatG:          nutrientValue(p.Nutriments, "fat"+suffix),
	}, nil
}

func nutrientValue(n map[string]any, key string) float64 {
	v, _ := parseFloatAny(n[key])
	return v
}

func parseFloatAny(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case json.Number:
		f, err := t.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		return f, err == nil
	default:
		return 0, false
	}
}

// parseServing picks the serving size and the nutriment key suffix that
// matches it, so all four macros come from the same basis.
func parseServing(p offProduct) (float64, string, string) {
	quantity, ok := parseFloatAny(p.ServingQuantity)
	if ok && quantity > 0 {
		if _, hasServing := parseFloatAny(p.Nutriments["energy-kcal_serving"]); hasServing {
			unit := strings.TrimSpace(p.ServingQuantityUnit)
			if unit == "" {
				unit = "g"
			}
			return quantity, unit, "_serving"
		}
	}
	return 100, "g", "_100g"
}

type offResponse struct {
	Status  int        `json:"status"`
	Product offProduct `json:"product"`
}

type offProduct struct {
	ProductName         string         `json:"product_name"`
	Brands              string         `json:"brands"`
	ServingQuantity     any            `json:"serving_quantity"`
	ServingQuantityUnit string         `json:"serving_quantity_unit"`
	Nutriments          map[string]any `json:"nutriments"`
}
