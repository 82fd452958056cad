package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"amphibians/internal/amphibian"
	"amphibians/internal/data"
	"amphibians/internal/logging"
	"amphibians/internal/network"
)

// Output formats for fetch.
const (
	OutputTable = "table"
	OutputJSON  = "json"
)

func newFetchCmd(e *env, ver string) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Fetch the amphibian list once and print it",
		Long:  "Performs the same request as the browser and prints the result. Logs go to stderr.",
		Example: `  # Table of names and types
  amphibians fetch

  # Raw records
  amphibians fetch --output json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if output != OutputTable && output != OutputJSON {
				return fmt.Errorf("unknown output %q (want %s or %s)", output, OutputTable, OutputJSON)
			}
			return runFetch(cmd, e, ver, output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", OutputTable, "output format: table or json")
	return cmd
}

func runFetch(cmd *cobra.Command, e *env, ver, output string) error {
	format := e.cfg.Logging.Format
	if format == "" {
		format = logging.FormatConsole
	}
	level := e.cfg.Logging.Level
	if level == "" && !e.debug {
		level = "warn"
	}
	log := logging.NewWriter(cmd.ErrOrStderr(), logging.Config{
		Level:  level,
		Format: format,
		Debug:  e.debug,
	})

	ctx := cmd.Context()
	stopTracing, err := e.startTracing(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("tracing disabled")
	}
	defer stopTracing()

	repo, err := data.NewContainer(e.networkConfig(ver), log).Repository()
	if err != nil {
		return err
	}
	list, err := repo.GetAmphibians(ctx)
	if err != nil {
		log.Error().Err(err).Str("kind", fetchKind(err)).Msg("fetch failed")
		return fmt.Errorf("fetch amphibians: %w", err)
	}

	if output == OutputJSON {
		return writeJSON(cmd.OutOrStdout(), list)
	}
	return writeTable(cmd.OutOrStdout(), list)
}

func fetchKind(err error) string {
	for _, k := range []network.Kind{network.KindTransport, network.KindHTTPStatus, network.KindDecode} {
		if network.IsKind(err, k) {
			return string(k)
		}
	}
	return "unknown"
}

func writeJSON(w io.Writer, list []amphibian.Amphibian) error {
	if list == nil {
		list = []amphibian.Amphibian{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(list)
}

func writeTable(w io.Writer, list []amphibian.Amphibian) error {
	if len(list) == 0 {
		_, err := fmt.Fprintln(w, "No amphibians.")
		return err
	}
	const tabPadding = 2
	tw := tabwriter.NewWriter(w, 0, 0, tabPadding, ' ', 0)
	fmt.Fprintln(tw, "NAME\tTYPE\tIMAGE")
	for _, a := range list {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", a.Name, a.Type, a.ImgSrc)
	}
	return tw.Flush()
}
