package cmd

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/preflow/config"
	"github.com/katalvlaran/preflow/core"
	"github.com/katalvlaran/preflow/flow"
	"github.com/katalvlaran/preflow/netio"
	"github.com/katalvlaran/preflow/preflow"
	"github.com/katalvlaran/preflow/telemetry"
)

// Algorithm names accepted by --algorithm.
const (
	algoPreflow       = "preflow"
	algoEdmondsKarp   = "edmonds-karp"
	algoDinic         = "dinic"
	algoFordFulkerson = "ford-fulkerson"
)

var (
	// solverMetrics is shared by every solve of the process.
	solverMetrics = preflow.NewMetrics()
	registerOnce  sync.Once
)

// app carries the state shared by the command tree of one invocation.
type app struct {
	configFile string
	inputFile  string
	algorithm  string

	cfg      *config.Config
	shutdown telemetry.ShutdownFunc
}

// Execute evaluates os.Args against a fresh command tree.
// This is called by main.main().
func Execute() {
	log.SetOutput(os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := NewRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		log.WithError(err).Fatal("preflow failed")
	}
}

// NewRootCmd builds the command hierarchy. Running the root command solves
// the network given by --input (or standard input).
func NewRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "preflow",
		Short: "Compute the maximum flow of a network",
		Long: `preflow reads a network ("n m c p" followed by m lines "u v capacity",
node 0 is the source and node n-1 the sink) and prints "f = <max flow>".

The default solver is a concurrent preflow-push with a fixed worker pool;
the sequential augmenting-path algorithms are available for comparison.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			return a.teardown(cmd.Context())
		},
		RunE: a.runSolve,
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&a.configFile, "config", "f", "", "config file (default ./preflow.yaml or /etc/preflow/preflow.yaml)")
	pf.String("log-level", "info", "log level: trace, debug, info, warn, error")
	pf.String("log-format", "text", "log format: text or json")
	pf.String("metrics-listen", "", "serve Prometheus metrics on this address, e.g. :9102")
	pf.Bool("tracing", false, "export OpenTelemetry traces over OTLP/HTTP")
	pf.String("tracing-endpoint", "", "OTLP/HTTP collector endpoint, e.g. http://localhost:4318")

	addInputFlags(root, a)
	root.Flags().Bool("verify", false, "check the result against Edmonds–Karp")
	root.Flags().StringVarP(&a.algorithm, "algorithm", "a", algoPreflow,
		"solver: preflow, edmonds-karp, dinic or ford-fulkerson")
	root.AddCommand(newGenCmd(), newVerifyCmd(a), newVersionCmd())

	return root
}

// addInputFlags registers the flags shared by the solving commands.
func addInputFlags(c *cobra.Command, a *app) {
	c.Flags().StringVarP(&a.inputFile, "input", "i", "", "network file (default standard input)")
	c.Flags().IntP("workers", "w", preflow.DefaultWorkers, "number of preflow worker goroutines")
}

// setup loads configuration and starts logging, metrics and tracing.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.configFile, cmd.Flags())
	if err != nil {
		return err
	}
	if err := cfg.ApplyLogging(); err != nil {
		return err
	}
	a.cfg = cfg

	if cfg.Metrics.Listen != "" {
		serveMetrics(cfg.Metrics.Listen)
	}
	a.shutdown, err = telemetry.Setup(cmd.Context(), cfg.Tracing)
	if err != nil {
		log.WithError(err).Warn("tracing disabled")
	}

	return nil
}

func (a *app) teardown(ctx context.Context) error {
	if a.shutdown == nil {
		return nil
	}
	if err := a.shutdown(context.WithoutCancel(ctx)); err != nil {
		log.WithError(err).Warn("flushing traces")
	}

	return nil
}

// serveMetrics registers the solver collectors and serves /metrics in the
// background for the lifetime of the process.
func serveMetrics(addr string) {
	registerOnce.Do(func() {
		prometheus.MustRegister(solverMetrics.Collectors()...)

		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		go func() {
			if err := http.ListenAndServe(addr, mux); err != nil {
				log.WithFields(log.Fields{"addr": addr, "err": err}).Error("metrics listener stopped")
			}
		}()
		log.WithField("addr", addr).Info("serving metrics")
	})
}

// readSpec reads the network from --input or the command's stdin.
func (a *app) readSpec(cmd *cobra.Command) (*core.Spec, error) {
	var r io.Reader = cmd.InOrStdin()
	if a.inputFile != "" && a.inputFile != "-" {
		f, err := os.Open(a.inputFile)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}

	return netio.Read(r)
}

// solveWith runs the selected algorithm on spec.
func (a *app) solveWith(ctx context.Context, algorithm string, spec *core.Spec) (int64, error) {
	switch algorithm {
	case algoPreflow:
		net, err := core.NewNetwork(spec)
		if err != nil {
			return 0, err
		}
		res, err := preflow.Solve(ctx, net,
			preflow.WithWorkers(a.cfg.Solver.Workers),
			preflow.WithMetrics(solverMetrics),
			preflow.WithLogger(log.StandardLogger()),
		)
		if err != nil {
			return 0, err
		}
		return res.Flow, nil
	case algoEdmondsKarp:
		return flow.EdmondsKarp(ctx, spec, nil)
	case algoDinic:
		return flow.Dinic(ctx, spec, nil)
	case algoFordFulkerson:
		return flow.FordFulkerson(ctx, spec, nil)
	default:
		return 0, fmt.Errorf("unknown algorithm %q", algorithm)
	}
}

func (a *app) runSolve(cmd *cobra.Command, _ []string) error {
	spec, err := a.readSpec(cmd)
	if err != nil {
		return err
	}

	algorithm := a.algorithm
	if algorithm == "" {
		algorithm = algoPreflow
	}
	f, err := a.solveWith(cmd.Context(), algorithm, spec)
	if err != nil {
		return err
	}

	if a.cfg.Solver.Verify && algorithm != algoEdmondsKarp {
		want, err := flow.EdmondsKarp(cmd.Context(), spec, nil)
		if err != nil {
			return err
		}
		if want != f {
			return fmt.Errorf("%w: %s found %d, edmonds-karp found %d",
				preflow.ErrInvariantViolation, algorithm, f, want)
		}
		log.WithField("flow", f).Info("result confirmed by edmonds-karp")
	}

	return netio.WriteFlow(cmd.OutOrStdout(), f)
}
