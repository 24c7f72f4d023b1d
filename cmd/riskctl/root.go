package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/2beens/fitcoach/internal/config"
	"github.com/2beens/fitcoach/internal/injuryrisk/risk"

	"github.com/BurntSushi/toml"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type rootFlags struct {
	configPath string
	env        string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}
	root := &cobra.Command{
		Use:   "riskctl",
		Short: "Offline injury risk assessment",
		Long: `Run the injury risk engine against a training signals document,
without a database or any network access.

Examples:
  riskctl assess --signals signals.json
  cat signals.json | riskctl warnings --signals -
  riskctl thresholds --config ./config.toml --env prod`,
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&flags.configPath, "config", "", "TOML config file with [<env>.risk] threshold overrides")
	root.PersistentFlags().StringVar(&flags.env, "env", "development", "config environment [prod | production | dev | development]")

	root.AddCommand(assessCmd(flags))
	root.AddCommand(warningsCmd(flags))
	root.AddCommand(thresholdsCmd(flags))

	return root
}

// engine builds the engine from the default thresholds, or from the config
// file when one is given.
func (f *rootFlags) engine() (*risk.Engine, error) {
	if f.configPath == "" {
		return risk.DefaultEngine(), nil
	}
	cfg, err := config.Load(f.env, f.configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	log.Debugf("using risk thresholds from %s [%s]", f.configPath, f.env)
	return risk.NewEngine(cfg.Risk)
}

func assessCmd(flags *rootFlags) *cobra.Command {
	var signalsPath string
	cmd := &cobra.Command{
		Use:   "assess",
		Short: "Print the assessment for a signals document",
		RunE: func(cmd *cobra.Command, _ []string) error {
			engine, err := flags.engine()
			if err != nil {
				return err
			}
			signals, err := readSignals(cmd.InOrStdin(), signalsPath)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), engine.Assess(signals))
		},
	}
	addSignalsFlag(cmd, &signalsPath)
	return cmd
}

func warningsCmd(flags *rootFlags) *cobra.Command {
	var signalsPath string
	cmd := &cobra.Command{
		Use:   "warnings",
		Short: "Print the high severity warnings for a signals document",
		RunE: func(cmd *cobra.Command, _ []string) error {
			engine, err := flags.engine()
			if err != nil {
				return err
			}
			signals, err := readSignals(cmd.InOrStdin(), signalsPath)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), risk.WarningsFrom(engine.Assess(signals)))
		},
	}
	addSignalsFlag(cmd, &signalsPath)
	return cmd
}

func thresholdsCmd(flags *rootFlags) *cobra.Command {
	var asTOML bool
	cmd := &cobra.Command{
		Use:   "thresholds",
		Short: "Print the active threshold table",
		RunE: func(cmd *cobra.Command, _ []string) error {
			engine, err := flags.engine()
			if err != nil {
				return err
			}
			if asTOML {
				// same shape as a [<env>.risk] config table
				return toml.NewEncoder(cmd.OutOrStdout()).Encode(engine.Config())
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "FACTOR\tMODERATE\tHIGH")
			for _, row := range engine.Config().Rows() {
				fmt.Fprintf(tw, "%s\t%s\t%s\n", row.Name, row.Moderate, row.High)
			}
			return tw.Flush()
		},
	}
	cmd.Flags().BoolVar(&asTOML, "toml", false, "print the thresholds as a TOML risk table")
	return cmd
}

func addSignalsFlag(cmd *cobra.Command, target *string) {
	cmd.Flags().StringVar(target, "signals", "", `signals JSON file, "-" reads stdin`)
	_ = cmd.MarkFlagRequired("signals")
}

func readSignals(stdin io.Reader, path string) (risk.TrainingSignals, error) {
	var signals risk.TrainingSignals

	var src io.Reader = stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return signals, fmt.Errorf("open signals file: %w", err)
		}
		defer f.Close()
		src = f
	}

	decoder := json.NewDecoder(src)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&signals); err != nil {
		return signals, fmt.Errorf("decode signals: %w", err)
	}
	return signals, nil
}

func writeJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
