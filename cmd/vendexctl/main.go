package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/andresuchdata/vendex/internal/domain"
	"github.com/andresuchdata/vendex/internal/service"
	"github.com/andresuchdata/vendex/pkg/logger"
	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"
)

func main() {
	_ = godotenv.Load(".env")
	logger.Setup("release", os.Getenv("LOG_LEVEL"))

	if err := newApp(os.Stdin, os.Stdout).Run(os.Args); err != nil {
		logger.Log.Fatal().Err(err).Msg("vendexctl failed")
	}
}

func newApp(in io.Reader, out io.Writer) *cli.App {
	return &cli.App{
		Name:  "vendexctl",
		Usage: "Run the Vendex forecasting, reorder and sourcing engines offline",
		Commands: []*cli.Command{
			{
				Name:  "forecast",
				Usage: "Project demand for the next seven periods",
				Flags: []cli.Flag{
					&cli.Float64SliceFlag{
						Name:     "sales",
						Usage:    "Comma separated sales history, oldest first",
						Required: true,
					},
				},
				Action: func(c *cli.Context) error {
					sales := c.Float64Slice("sales")
					if err := checkSales(sales); err != nil {
						return err
					}
					result, err := service.NewInventoryService(1).Forecast(sales)
					if err != nil {
						return err
					}
					return writeJSON(out, result)
				},
			},
			{
				Name:  "decide",
				Usage: "Choose a reorder action for a forecast",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "forecast", Required: true},
					&cli.Float64Flag{Name: "confidence", Required: true},
					&cli.IntFlag{Name: "stock", Usage: "Current stock on hand", Required: true},
					&cli.Float64Flag{Name: "unit-cost", Required: true},
				},
				Action: func(c *cli.Context) error {
					if conf := c.Float64("confidence"); conf < 0 || conf > 1 {
						return fmt.Errorf("confidence must be within [0, 1], got %v", conf)
					}
					if c.Int("stock") < 0 {
						return fmt.Errorf("stock must not be negative, got %d", c.Int("stock"))
					}
					if c.Float64("unit-cost") < 0 {
						return fmt.Errorf("unit-cost must not be negative, got %v", c.Float64("unit-cost"))
					}
					decision := service.NewInventoryService(1).Decide(
						c.Int("forecast"), c.Float64("confidence"), c.Int("stock"), c.Float64("unit-cost"))
					return writeJSON(out, decision)
				},
			},
			{
				Name:  "bulk",
				Usage: "Forecast and decide for a JSON array of SKUs",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "file", Usage: "Input file, - for stdin", Value: "-"},
					&cli.IntFlag{Name: "workers", Value: 8, EnvVars: []string{"INVENTORY_BULK_WORKERS"}},
				},
				Action: func(c *cli.Context) error {
					var rows []bulkRow
					if err := readJSON(in, c.String("file"), &rows); err != nil {
						return err
					}
					reqs := make([]domain.ReorderRequest, len(rows))
					for i, row := range rows {
						req, err := row.request()
						if err != nil {
							return fmt.Errorf("row %d: %w", i, err)
						}
						reqs[i] = req
					}
					results, err := service.NewInventoryService(c.Int("workers")).BulkForecastAndDecide(c.Context, reqs)
					if err != nil {
						return err
					}
					return writeJSON(out, results)
				},
			},
			{
				Name:  "recommend",
				Usage: "Recommend a manufacturer for a sourcing request",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "file", Usage: "Input file, - for stdin", Value: "-"},
				},
				Action: func(c *cli.Context) error {
					var req domain.SourcingRequest
					if err := readJSON(in, c.String("file"), &req); err != nil {
						return err
					}
					rec, ok := service.NewSourcingService(nil).Recommend(req)
					if !ok {
						return cli.Exit(service.NoFeasibleManufacturerMessage, 2)
					}
					return writeJSON(out, rec)
				},
			},
		},
	}
}

// bulkRow mirrors domain.ReorderRequest with pointers so missing fields are caught.
type bulkRow struct {
	SKU          string    `json:"sku"`
	SalesHistory []float64 `json:"sales_history"`
	CurrentStock *int      `json:"current_stock"`
	UnitCost     *float64  `json:"unit_cost"`
}

func (r bulkRow) request() (domain.ReorderRequest, error) {
	switch {
	case r.CurrentStock == nil:
		return domain.ReorderRequest{}, fmt.Errorf("sku %q: current_stock is required", r.SKU)
	case r.UnitCost == nil:
		return domain.ReorderRequest{}, fmt.Errorf("sku %q: unit_cost is required", r.SKU)
	case *r.CurrentStock < 0:
		return domain.ReorderRequest{}, fmt.Errorf("sku %q: current_stock must not be negative", r.SKU)
	case *r.UnitCost < 0:
		return domain.ReorderRequest{}, fmt.Errorf("sku %q: unit_cost must not be negative", r.SKU)
	}
	if err := checkSales(r.SalesHistory); err != nil {
		return domain.ReorderRequest{}, fmt.Errorf("sku %q: %w", r.SKU, err)
	}
	return domain.ReorderRequest{
		SKU:          r.SKU,
		SalesHistory: r.SalesHistory,
		CurrentStock: *r.CurrentStock,
		UnitCost:     *r.UnitCost,
	}, nil
}

func checkSales(sales []float64) error {
	for i, v := range sales {
		if v < 0 {
			return fmt.Errorf("sales value %d is negative: %v", i, v)
		}
	}
	return nil
}

func readJSON(stdin io.Reader, path string, v any) error {
	r := stdin
	if path != "" && path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("open %s: %w", path, err)
		}
		defer f.Close()
		r = f
	}
	if err := json.NewDecoder(r).Decode(v); err != nil {
		return fmt.Errorf("decode input: %w", err)
	}
	return nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
