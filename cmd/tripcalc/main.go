// Command tripcalc prices a trip described in a JSON file and writes the
// report in the requested format.
//
//	tripcalc -trip trip.json -format csv -out dados_viagem.csv
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/garyjia/trip-expense/internal/application/service"
	"github.com/garyjia/trip-expense/internal/config"
	"github.com/garyjia/trip-expense/internal/container"
	"github.com/garyjia/trip-expense/internal/report"
	"github.com/garyjia/trip-expense/pkg/utils"
)

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "tripcalc: %v\n", err)
		os.Exit(1)
	}
}

// run parses args, exports the trip and writes it to -out or stdout
func run(ctx context.Context, args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("tripcalc", flag.ContinueOnError)
	configPath := fs.String("config", "", "path to the YAML configuration file (defaults only when empty)")
	tripPath := fs.String("trip", "", "path to the trip JSON file")
	format := fs.String("format", string(report.FormatText), "output format: txt, csv, xlsx or pdf")
	outPath := fs.String("out", "", "output file (stdout when empty)")
	logLevel := fs.String("log-level", "warn", "log level")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *tripPath == "" {
		return fmt.Errorf("-trip is required")
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}

	logger, err := utils.NewLogger(utils.LoggerConfig{
		Level:      *logLevel,
		OutputPath: "stderr",
		Format:     "console",
	})
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Sync()

	req, err := readTrip(*tripPath)
	if err != nil {
		return err
	}

	c, err := container.New(cfg, logger)
	if err != nil {
		return err
	}

	file, err := c.TripService().Export(ctx, *req, report.Format(*format))
	if err != nil {
		return err
	}

	if *outPath == "" {
		_, err = stdout.Write(file.Content)
		return err
	}

	if err := os.WriteFile(*outPath, file.Content, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", *outPath, err)
	}

	logger.Info("Report written", zap.String("path", *outPath), zap.String("format", *format))
	return nil
}

func readTrip(path string) (*service.CalculationRequest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read trip file: %w", err)
	}

	var req service.CalculationRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return nil, fmt.Errorf("failed to parse trip file %s: %w", path, err)
	}
	return &req, nil
}
