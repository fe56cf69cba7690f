package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/MakeNowJust/heredoc"
	"github.com/spf13/cobra"

	"github.com/san-kum/engcalc/internal/config"
	"github.com/san-kum/engcalc/internal/logging"
	"github.com/san-kum/engcalc/internal/session"
	"github.com/san-kum/engcalc/internal/tui"
)

// main is the entry point for the engcalc CLI. Without a subcommand it runs
// the interactive menu. It exits with status 1 if the command fails.
func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cfg := config.DefaultConfig()

	rootCmd := &cobra.Command{
		Use:   "engcalc",
		Short: "interactive engineering calculator",
		Long: heredoc.Doc(`
			Interactive engineering calculator.

			Without a subcommand a menu offers:
			  1. the ideal gas law solver (PV = nRT, enter x for the unknown)
			  2. the Reynolds number and pipe flow regime solver
			  3. exit
		`),
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return newSession(cmd, cfg).RunMenu(cmd.Context())
		},
	}

	gasCmd := &cobra.Command{
		Use:   "gas",
		Short: "solve the ideal gas law once",
		Example: heredoc.Doc(`
			$ engcalc gas
			Pressure (P, Pa): 101325
			Volume (V, m³): 0.0224
			Moles (n, mol): x
			Temperature (T, K): 273.15
		`),
		Args: cobra.NoArgs,
		RunE: runCalculator(cfg, "gas"),
	}

	flowCmd := &cobra.Command{
		Use:   "flow",
		Short: "compute a Reynolds number once",
		Args:  cobra.NoArgs,
		RunE:  runCalculator(cfg, "flow"),
	}

	fluidsCmd := &cobra.Command{
		Use:   "fluids",
		Short: "list reference fluid properties",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return listFluids(cmd.OutOrStdout(), cfg)
		},
	}

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "full-screen terminal UI",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return tui.RunInteractive(cfg)
		},
	}

	rootCmd.AddCommand(gasCmd, flowCmd, fluidsCmd, tuiCmd)
	return rootCmd
}

func newSession(cmd *cobra.Command, cfg *config.Config) *session.Session {
	logger := logging.New(cfg.LogLevel, cmd.ErrOrStderr())
	return session.New(cmd.InOrStdin(), cmd.OutOrStdout(), cfg, logger)
}

func runCalculator(cfg *config.Config, name string) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		return newSession(cmd, cfg).RunByName(name)
	}
}

func listFluids(w io.Writer, cfg *config.Config) error {
	names := cfg.ListFluids()
	if len(names) == 0 {
		fmt.Fprintln(w, "no reference fluids configured")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tDENSITY (kg/m³)\tVISCOSITY (Pa·s)\tDESCRIPTION")
	for _, name := range names {
		f := cfg.GetFluid(name)
		fmt.Fprintf(tw, "%s\t%g\t%g\t%s\n", name, f.Density, f.Viscosity, f.Description)
	}
	return tw.Flush()
}
