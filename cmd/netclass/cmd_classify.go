package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/HerbHall/netclass/internal/classify"
	"github.com/HerbHall/netclass/internal/factfile"
	"github.com/HerbHall/netclass/internal/metrics"
	"github.com/HerbHall/netclass/internal/problem"
)

func (a *app) newClassifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "classify [FILE|-]",
		Short: "Run a filter over a JSON or YAML fact document",
		Long: `Reads a host fact document from FILE, or standard input when FILE is
omitted or "-", and prints the result of the selected filter.

Failures are written to standard error as an RFC 7807 problem document.`,
		Args: cobra.MaximumNArgs(1),
		RunE: a.runClassify,
	}
	cmd.Flags().String("filter", "get_interfaces", "name of the filter to run")
	cmd.Flags().String("strip-prefix", "", "prefix removed from top-level fact keys (e.g. ansible_)")
	return cmd
}

func (a *app) runClassify(cmd *cobra.Command, args []string) error {
	path := factfile.Stdin
	if len(args) == 1 {
		path = args[0]
	}

	m := metrics.New()
	reg, err := a.addressRegistry()
	if err != nil {
		a.finish(m, err)
		return a.report(cmd, problem.BadInput(err.Error(), a.settings.AddressRegistry), err)
	}
	filters, err := a.filters(reg, classify.WithObserver(m))
	if err != nil {
		return err
	}

	facts, err := factfile.Load(path, cmd.InOrStdin(), factfile.Options{StripPrefix: a.settings.StripPrefix})
	if err != nil {
		a.finish(m, err)
		return a.report(cmd, problem.BadInput(err.Error(), path), err)
	}

	out, err := filters.Apply(a.settings.Filter, facts)
	a.finish(m, err)
	if err != nil {
		return a.report(cmd, problem.FromError(err, path), err)
	}

	a.logger.Info("filter applied",
		zap.String("filter", a.settings.Filter),
		zap.String("input", path),
		zap.Int("facts", facts.Len()),
	)
	return a.render(cmd.OutOrStdout(), out)
}

// finish records the run and writes the metrics textfile when configured.
func (a *app) finish(m *metrics.Metrics, runErr error) {
	m.RecordRun(runErr, a.now())
	if a.settings.MetricsFile == "" {
		return
	}
	if err := m.WriteTextfile(a.settings.MetricsFile); err != nil {
		a.logger.Warn("failed to write metrics", zap.String("path", a.settings.MetricsFile), zap.Error(err))
	}
}

func (a *app) report(cmd *cobra.Command, p problem.Problem, err error) error {
	a.logger.Debug("classification failed", zap.String("type", p.Type), zap.Error(err))
	if werr := problem.Write(cmd.ErrOrStderr(), p); werr != nil {
		return werr
	}
	return &reportedError{err: err}
}
