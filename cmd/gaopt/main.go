package main

import (
	"context"
	"errors"
	goflag "flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/pflag"
	"k8s.io/klog/v2"

	"github.com/mihai-snyk/genetic-optimizer/pkg/genetic"
	"github.com/mihai-snyk/genetic-optimizer/pkg/genetic/benchmarks"
	"github.com/mihai-snyk/genetic-optimizer/pkg/genetic/config"
	"github.com/mihai-snyk/genetic-optimizer/pkg/genetic/fitness"
	"github.com/mihai-snyk/genetic-optimizer/pkg/genetic/metrics"
	"github.com/mihai-snyk/genetic-optimizer/pkg/genetic/store"
)

type options struct {
	configPath  string
	benchmark   string
	metricsAddr string
	storeKind   string
	storePath   string
	runID       string
	resume      bool
}

func main() {
	var o options
	pflag.StringVar(&o.configPath, "config", "", "Path to a GeneticAlgorithmArgs YAML file.")
	pflag.StringVar(&o.benchmark, "benchmark", "sphere", "Benchmark to optimize: sphere or zdt1.")
	pflag.StringVar(&o.metricsAddr, "metrics-addr", "", "Serve Prometheus metrics on this address and wait for a signal after the run.")
	pflag.StringVar(&o.storeKind, "store", "", "Persist the run snapshot: memory or sqlite. Empty disables persistence.")
	pflag.StringVar(&o.storePath, "store-path", "gaopt.db", "SQLite database path for --store=sqlite.")
	pflag.StringVar(&o.runID, "run-id", "", "Snapshot key. Defaults to the benchmark name.")
	pflag.BoolVar(&o.resume, "resume", false, "Seed the initial population from the stored snapshot of --run-id.")

	klogFlags := goflag.NewFlagSet("klog", goflag.ExitOnError)
	klog.InitFlags(klogFlags)
	pflag.CommandLine.AddGoFlagSet(klogFlags)
	pflag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, o); err != nil {
		klog.ErrorS(err, "gaopt failed")
		klog.Flush()
		os.Exit(1)
	}
	klog.Flush()
}

func run(ctx context.Context, o options) error {
	if o.configPath == "" {
		return errors.New("--config is required")
	}
	cfg, err := config.LoadFile(o.configPath)
	if err != nil {
		return err
	}
	if o.runID == "" {
		o.runID = o.benchmark
	}
	logger := klog.FromContext(ctx)

	var cb fitness.Callback
	switch o.benchmark {
	case "sphere":
		s := benchmarks.Sphere{}
		cb = fitness.Callback{Func: fitness.Scalar(s.Fitness), Batch: s.BatchFitness}
	case "zdt1":
		p := benchmarks.NewZDT1(cfg.NumGenes)
		cb = fitness.Callback{Func: p.Fitness, Batch: p.BatchFitness}
	default:
		return fmt.Errorf("unknown benchmark %q", o.benchmark)
	}

	reg := prometheus.NewRegistry()
	m, err := metrics.New(reg, prometheus.Labels{"benchmark": o.benchmark})
	if err != nil {
		return err
	}
	opts := []genetic.Option{genetic.WithMetrics(m)}

	var st store.Store
	if o.storeKind != "" {
		st, err = store.New(o.storeKind, o.storePath)
		if err != nil {
			return err
		}
		if err := st.Init(ctx); err != nil {
			return err
		}
		defer st.Close()
	}
	if o.resume {
		if st == nil {
			return errors.New("--resume requires --store")
		}
		snap, ok, err := st.GetSnapshot(ctx, o.runID)
		if err != nil {
			return err
		}
		if ok {
			logger.Info("Resuming from snapshot", "runID", o.runID, "generations", snap.GenerationsCompleted)
			opts = append(opts, genetic.WithInitialPopulation(snap.Genes()))
		}
	}

	ga, err := genetic.New(cfg, cb, opts...)
	if err != nil {
		return err
	}
	if err := ga.Run(ctx); err != nil {
		return err
	}
	if st != nil {
		if err := st.SaveSnapshot(ctx, ga.Snapshot(o.runID)); err != nil {
			return fmt.Errorf("save snapshot %s: %w", o.runID, err)
		}
	}

	best, idx, err := ga.BestSolution()
	if err != nil {
		return err
	}
	logger.Info("Best solution", "index", idx, "fitness", best.Fitness, "genes", best.Genes)

	if o.metricsAddr == "" {
		return nil
	}
	srv := &http.Server{Addr: o.metricsAddr, Handler: promhttp.HandlerFor(reg, promhttp.HandlerOpts{})}
	go func() {
		<-ctx.Done()
		_ = srv.Close()
	}()
	logger.Info("Serving metrics", "addr", o.metricsAddr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
