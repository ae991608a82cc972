package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"
	"time"

	"drug-concentration/internal/domain/concentration"
	"drug-concentration/internal/platform/config"
	"drug-concentration/internal/platform/logger"
	"drug-concentration/internal/router"

	"github.com/spf13/cobra"
)

// @title        Drug Concentration Calculator API
// @version      1.0
// @description  Single-compartment exponential decay curves and total effect (AUC).
// @BasePath     /
func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cfg := config.Load()

	root := &cobra.Command{
		Use:   "drug-concentration",
		Short: "Drug concentration calculator API",
		Long: `Serves the drug concentration form over HTTP: exponential decay curves,
total effect (area under the curve) and rendered charts.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serve(cmd.Context(), cfg, logger.NewFromEnv())
		},
	}

	root.Flags().StringVar(&cfg.Port, "port", cfg.Port, "HTTP port (env PORT)")
	root.Flags().IntVar(&cfg.MaxSamples, "max-samples", cfg.MaxSamples, "Upper bound for time intervals, <= 0 disables (env MAX_SAMPLES)")
	root.Flags().IntVar(&cfg.ChartWidth, "chart-width", cfg.ChartWidth, "Chart width in px (env CHART_WIDTH)")
	root.Flags().IntVar(&cfg.ChartHeight, "chart-height", cfg.ChartHeight, "Chart height in px (env CHART_HEIGHT)")
	root.Flags().IntVar(&cfg.MaxForms, "max-forms", cfg.MaxForms, "Live form sessions kept in memory, <= 0 disables (env MAX_FORMS)")
	root.Flags().DurationVar(&cfg.FormTTL, "form-ttl", cfg.FormTTL, "Idle form session lifetime, <= 0 disables (env FORM_TTL)")

	root.AddCommand(newComputeCmd())
	return root
}

func serve(ctx context.Context, cfg config.Config, log logger.Logger) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      router.NewRouter(router.DefaultOptions(cfg, log)),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", map[string]any{"addr": srv.Addr})
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", map[string]any{"error": err.Error()})
			return err
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down", nil)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func newComputeCmd() *cobra.Command {
	var (
		p           concentration.DoseParameters
		integration string
	)

	cmd := &cobra.Command{
		Use:   "compute",
		Short: "Print a sampled concentration curve and its total effect",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			method, err := concentration.ParseMethod(integration)
			if err != nil {
				return err
			}
			plot, err := concentration.Evaluate(p, method)
			if err != nil {
				return err
			}
			return printPlot(cmd.OutOrStdout(), plot)
		},
	}

	cmd.Flags().Float64Var(&p.Dose, "dose", 0, "Drug dose (mg)")
	cmd.Flags().Float64Var(&p.EliminationRate, "rate", 0, "Elimination rate (per hour)")
	cmd.Flags().Float64Var(&p.TimeStart, "start", 0, "Start time (hours)")
	cmd.Flags().Float64Var(&p.TimeEnd, "end", 0, "End time (hours)")
	cmd.Flags().IntVar(&p.SampleCount, "intervals", 0, "Number of time points (>= 2)")
	cmd.Flags().StringVar(&integration, "integration", string(concentration.MethodClosedForm), "closed_form or quadrature")

	return cmd
}

func printPlot(w io.Writer, plot concentration.Plot) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "t (hours)\tC(t)")
	for _, pt := range plot.Curve {
		fmt.Fprintf(tw, "%g\t%g\n", pt.Time, pt.Concentration)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w, plot.TotalEffectLabel())
	return err
}
