// Command listdemo runs list operations against a singly or doubly linked list
// and prints the resulting chain.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"go.expect.digital/container/internal/script"
	"go.expect.digital/container/linkedlist"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

type app struct {
	verbose    bool
	scriptPath string
	logger     *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := new(app)

	rootCmd := &cobra.Command{
		Use:   "listdemo",
		Short: "Run operations against a linked list",
		Long: `Runs a sequence of list operations and prints the chain.

Operations are given as arguments or loaded from a YAML script:
  append V, prepend V, insert-after ANCHOR V, delete V, search V

Example:
  listdemo singly append 10 append 20 prepend 5 insert-after 10 15 delete 5
  listdemo doubly -f script.yaml`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config := zap.NewProductionConfig()
			if a.verbose {
				config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}

			var err error

			a.logger, err = config.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}

			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log every applied step")
	rootCmd.PersistentFlags().StringVarP(&a.scriptPath, "script", "f", "", "YAML script file, run before the argument steps")

	rootCmd.AddCommand(
		&cobra.Command{
			Use:   "singly [ops...]",
			Short: "Run operations against a singly linked list",
			RunE: func(cmd *cobra.Command, args []string) error {
				l := linkedlist.NewSingly[string]()
				if err := a.run(l, args, cmd.OutOrStdout()); err != nil {
					return err
				}

				fmt.Fprintf(cmd.OutOrStdout(), "forward: %s\nlen: %d\n", l, l.Len())

				return nil
			},
		},
		&cobra.Command{
			Use:   "doubly [ops...]",
			Short: "Run operations against a doubly linked list",
			RunE: func(cmd *cobra.Command, args []string) error {
				l := linkedlist.NewDoubly[string]()
				if err := a.run(l, args, cmd.OutOrStdout()); err != nil {
					return err
				}

				fmt.Fprintf(cmd.OutOrStdout(), "forward: %s\nbackward: %v\nlen: %d\n", l, l.BackwardValues(), l.Len())

				return nil
			},
		},
	)

	return rootCmd
}

// run loads the script file and argument steps, applies them to l and reports failed steps to w.
func (a *app) run(l script.Target, args []string, w io.Writer) error {
	var steps []script.Step

	if a.scriptPath != "" {
		s, err := script.Load(a.scriptPath)
		if err != nil {
			return err
		}

		steps = s.Steps
	}

	argSteps, err := script.Parse(args)
	if err != nil {
		return fmt.Errorf("parse args: %w", err)
	}

	steps = append(steps, argSteps...)

	results := script.Run(a.logger, l, steps)

	for _, r := range results {
		if r.Step.Op == script.OpSearch {
			fmt.Fprintf(w, "%s: %t\n", r.Step, r.Found)
		}
	}

	for _, r := range script.Failed(results) {
		fmt.Fprintf(w, "%s: %v\n", r.Step, r.Err)
	}

	return nil
}
