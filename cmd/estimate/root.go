package main

import (
	"context"
	"delivery-estimate-service/internal/adapters/input"
	"delivery-estimate-service/internal/adapters/repositories"
	"delivery-estimate-service/internal/platform/logger"
	"delivery-estimate-service/internal/ports"
	"delivery-estimate-service/internal/services"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

type options struct {
	inputPath  string
	offersPath string
	logLevel   string
	dispatches bool
}

func newRootCmd() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "estimate",
		Short: "Price packages and estimate their delivery times",
		Long: "Reads the base cost, packages and fleet from --input (or stdin) and prints\n" +
			"one line per package: id discount cost deliveryTime.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.inputPath, "input", "i", "", "input file (default stdin)")
	f.StringVar(&opts.offersPath, "offers", "", "JSON offer catalog (default built-in offers)")
	f.StringVar(&opts.logLevel, "log-level", "warn", "log level written to stderr")
	f.BoolVar(&opts.dispatches, "dispatches", false, "also print the vehicle trips to stderr")

	return cmd
}

// Execute runs the CLI.
func Execute() error { return newRootCmd().Execute() }

func run(cmd *cobra.Command, opts options) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := logger.Init("development", opts.logLevel); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Sync()

	var in io.Reader = cmd.InOrStdin()
	if opts.inputPath != "" {
		f, err := os.Open(opts.inputPath)
		if err != nil {
			return fmt.Errorf("open input: %w", err)
		}
		defer f.Close()
		in = f
	}

	req, err := input.ReadRequest(in)
	if err != nil {
		return err
	}

	offers, err := offerRepository(opts.offersPath)
	if err != nil {
		return err
	}

	est, err := services.EstimateDeliveries(ctx, req, offers, nil)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if err := input.WriteResults(out, est.Results); err != nil {
		return err
	}
	if opts.dispatches {
		return input.WriteDispatches(cmd.ErrOrStderr(), est.Dispatches)
	}
	return nil
}

func offerRepository(path string) (ports.OfferRepository, error) {
	if path == "" {
		return repositories.NewStaticOfferRepository(), nil
	}
	repo, err := repositories.NewJSONOfferRepository(path)
	if err != nil {
		return nil, fmt.Errorf("load offers: %w", err)
	}
	return repo, nil
}
