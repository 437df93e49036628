package main

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/HerbHall/netclass/internal/classify"
	"github.com/HerbHall/netclass/internal/config"
	"github.com/HerbHall/netclass/internal/filter"
	"github.com/HerbHall/netclass/pkg/ipspace"
)

// reportedError marks a failure that was already written to stderr as a
// problem document.
type reportedError struct {
	err error
}

func (e *reportedError) Error() string { return e.err.Error() }
func (e *reportedError) Unwrap() error { return e.err }

// app carries state shared by subcommands for one invocation.
type app struct {
	configPath string
	settings   *config.Settings
	logger     *zap.Logger
	now        func() time.Time
}

func newRootCmd() *cobra.Command {
	a := &app{now: time.Now}

	root := &cobra.Command{
		Use:           "netclass",
		Short:         "Group host interfaces into loopback, private and public",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "path to configuration file")
	pf.String("log-level", "warn", "log level (debug, info, warn, error)")
	pf.StringP("output", "o", config.OutputJSON, "output format (json, yaml)")
	pf.String("metrics-file", "", "write Prometheus textfile metrics to this path")
	pf.String("address-registry", "", "YAML file replacing the built-in address registry")

	root.AddCommand(
		a.newClassifyCmd(),
		a.newFiltersCmd(),
		a.newRangesCmd(),
		a.newVersionCmd(),
	)
	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	s, err := config.Load(a.configPath, cmd.Flags())
	if err != nil {
		return err
	}
	a.settings = s

	logger, err := newLogger(s.LogLevel, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	a.logger = logger.With(zap.String("run_id", uuid.NewString()))
	return nil
}

// newLogger builds a production-style JSON logger writing to w.
func newLogger(level string, w io.Writer) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}
	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), zapcore.Lock(zapcore.AddSync(w)), lvl)
	return zap.New(core).Named("netclass"), nil
}

func (a *app) addressRegistry() (*ipspace.Registry, error) {
	if a.settings.AddressRegistry == "" {
		return ipspace.Default(), nil
	}
	r, err := ipspace.LoadFile(a.settings.AddressRegistry)
	if err != nil {
		return nil, err
	}
	a.logger.Info("loaded address registry",
		zap.String("path", a.settings.AddressRegistry),
		zap.Int("blocks", len(r.Blocks())),
	)
	return r, nil
}

// filters builds the filter registry around a classifier using the
// address registry reg.
func (a *app) filters(reg *ipspace.Registry, opts ...classify.Option) (*filter.Registry, error) {
	opts = append([]classify.Option{
		classify.WithLogger(a.logger.Named("classify")),
		classify.WithRegistry(reg),
	}, opts...)

	filters := filter.NewRegistry(a.logger.Named("filter"))
	if err := filters.Register(filter.NewInterfacesFilter(classify.New(opts...))); err != nil {
		return nil, err
	}
	return filters, nil
}

// render writes v to w in the configured output format.
func (a *app) render(w io.Writer, v any) error {
	switch a.settings.Output {
	case config.OutputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	default:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		return nil
	}
}
