// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/cybrota/arbor/avl"
	"github.com/cybrota/arbor/console"
)

var version = "dev"

const asciiLogo = `
 █████╗ ██████╗ ██████╗  ██████╗ ██████╗
██╔══██╗██╔══██╗██╔══██╗██╔═══██╗██╔══██╗
███████║██████╔╝██████╔╝██║   ██║██████╔╝
██╔══██║██╔══██╗██╔══██╗██║   ██║██╔══██╗
██║  ██║██║  ██║██████╔╝╚██████╔╝██║  ██║
╚═╝  ╚═╝╚═╝  ╚═╝╚═════╝  ╚═════╝ ╚═╝  ╚═╝
Self-balancing trees and friends, drawn in your terminal [Version: %s%s%s]

Copyright @ Naren Yellavula

`

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newManager(config *Config) *console.Manager {
	return console.NewManager(console.Options{
		HashCapacity:   config.Hash.Capacity,
		BinaryTreeSeed: config.BinaryTree.Seed,
		Default:        config.UI.DefaultStructure,
	})
}

// runUI starts the interface with logging redirected to ~/.arbor.log.
func runUI(config *Config) {
	if f, err := openLogFile(); err == nil {
		defer f.Close()
		setupLogger(config.Log, f)
	} else {
		setupLogger(config.Log, io.Discard)
	}

	log.Info().Str("version", version).Msg("starting interface")
	if err := runBubbleTeaApp(newManager(config), NewOptimizedHelpCache(), config); err != nil {
		log.Fatal().Err(err).Msg("interface failed")
	}
}

func newRootCmd() *cobra.Command {
	logo := fmt.Sprintf(asciiLogo, Green, version, Reset)
	var config *Config

	loadConfig := func(cmd *cobra.Command, args []string) {
		config, _ = LoadConfig()
		setupLogger(config.Log, os.Stderr)
	}

	var cmdRun = &cobra.Command{
		Use:   "run",
		Short: "Launches the arbor interface",
		Long:  fmt.Sprintf("%s\n%s", logo, `Run opens the interactive view of every structure`),
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			runUI(config)
		},
	}

	var cmdAVL = &cobra.Command{
		Use:   "avl [values...]",
		Short: "Build an AVL tree from values and print it",
		Long:  fmt.Sprintf("%s\n%s", logo, `AVL inserts the values in order, applies deletions, then draws the tree and prints a traversal`),
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			deletes, _ := cmd.Flags().GetStringSlice("delete")
			order, _ := cmd.Flags().GetString("order")
			search, _ := cmd.Flags().GetString("search")
			return printAVL(cmd.OutOrStdout(), args, deletes, order, search, config.UI.ShowHeights)
		},
	}
	cmdAVL.Flags().StringSlice("delete", nil, "values to delete after inserting")
	cmdAVL.Flags().String("order", "in", "traversal to print: in, pre, post or level")
	cmdAVL.Flags().String("search", "", "value to highlight")

	var cmdExec = &cobra.Command{
		Use:   "exec [lines...]",
		Short: "Run command lines without the interface",
		Long:  fmt.Sprintf("%s\n%s", logo, `Exec runs each argument, or each line of stdin when there are none, as if typed into the interface`),
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			structure, _ := cmd.Flags().GetString("structure")
			strict, _ := cmd.Flags().GetBool("strict")
			draw, _ := cmd.Flags().GetBool("draw")

			manager := newManager(config)
			if structure != "" {
				if err := manager.Use(structure); err != nil {
					return err
				}
			}
			lines := args
			if len(lines) == 0 {
				var err error
				if lines, err = readLines(cmd.InOrStdin()); err != nil {
					return err
				}
			}
			return execLines(cmd.OutOrStdout(), manager, lines, strict, draw, config.UI.ShowHeights)
		},
	}
	cmdExec.Flags().String("structure", "", "structure to start with (avl, bintree, stack, queue, list, hash)")
	cmdExec.Flags().Bool("strict", false, "stop at the first failing line")
	cmdExec.Flags().Bool("draw", false, "draw the structure after the last line")

	var cmdStress = &cobra.Command{
		Use:   "stress",
		Short: "Check AVL invariants under random load",
		Long:  fmt.Sprintf("%s\n%s", logo, `Stress inserts and deletes random values while concurrent readers search the same tree, validating balance and order as it goes`),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := StressOptions{ShowProgress: true, Out: cmd.ErrOrStderr()}
			opts.Ops, _ = cmd.Flags().GetInt("ops")
			opts.Readers, _ = cmd.Flags().GetInt("readers")
			opts.MaxValue, _ = cmd.Flags().GetInt64("max")
			opts.Seed, _ = cmd.Flags().GetInt64("seed")
			opts.ValidateEvery, _ = cmd.Flags().GetInt("validate-every")

			report, err := runStress(cmd.Context(), opts)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "\n✅ %d inserts, %d deletes (%d misses), %d reads, %d checks: %d values, height %d\n",
				report.Inserts, report.Deletes, report.Misses, report.Reads, report.Checks, report.Size, report.Height)
			return nil
		},
	}
	cmdStress.Flags().Int("ops", 100000, "number of writes")
	cmdStress.Flags().Int("readers", 4, "concurrent reader goroutines")
	cmdStress.Flags().Int64("max", 1000, "values are drawn from [0, max)")
	cmdStress.Flags().Int64("seed", 1, "random seed")
	cmdStress.Flags().Int("validate-every", 1000, "writes between full invariant checks")

	var cmdUsage = &cobra.Command{
		Use:   "usage",
		Short: "Print arbor usage guide",
		Long:  fmt.Sprintf("%s\n%s", logo, `Usage displays the arbor CLI usage guide`),
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), getHelpMessage())
		},
	}

	var cmdSettings = &cobra.Command{
		Use:   "settings",
		Short: "Show arbor configuration",
		Long:  fmt.Sprintf("%s\n%s", logo, `Settings prints ~/.arbor.yaml, creating it with defaults when missing`),
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			displaySettings()
		},
	}

	var cmdVersion = &cobra.Command{
		Use:   "version",
		Short: "Print arbor version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version)
		},
	}

	var rootCmd = &cobra.Command{
		Use:              "arbor",
		Version:          version,
		Long:             logo,
		SilenceUsage:     true,
		PersistentPreRun: loadConfig,
		Run: func(cmd *cobra.Command, args []string) {
			// Default to run command when no subcommand is provided
			runUI(config)
		},
	}
	rootCmd.AddCommand(cmdRun, cmdAVL, cmdExec, cmdStress, cmdUsage, cmdSettings, cmdVersion)
	return rootCmd
}

// printAVL builds a tree through the same handler the interface uses.
func printAVL(w io.Writer, values, deletes []string, order, search string, showHeights bool) error {
	h := console.NewAVLHandler()
	run := func(line string) error {
		cmd, err := console.Parse(line)
		if err != nil {
			return err
		}
		if res := h.Handle(cmd); res.Err != nil {
			return res.Err
		}
		return nil
	}

	if len(values) > 0 {
		if err := run("insert " + strings.Join(values, " ")); err != nil {
			return err
		}
	}
	for _, v := range deletes {
		if err := run("delete " + v); err != nil {
			fmt.Fprintf(w, "%s⚠ %v%s\n", Warning, err, Reset)
		}
	}
	if search != "" {
		if err := run("search " + search); err != nil {
			fmt.Fprintf(w, "%s⚠ %v%s\n", Warning, err, Reset)
		}
	}

	o, err := avl.ParseOrder(order)
	if err != nil {
		return err
	}

	tree := h.Tree()
	fmt.Fprintln(w, renderSnapshot(h.Snapshot(), NewStyles(), showHeights))
	fmt.Fprintf(w, "\n%s: %s\n", o, joinInts(tree.Traverse(o)))
	fmt.Fprintf(w, "size %d, height %d\n", tree.Len(), tree.Height())
	return tree.Validate()
}

// execLines runs lines against the manager and prints every status.
func execLines(w io.Writer, manager *console.Manager, lines []string, strict, draw, showHeights bool) error {
	var failed int
	for _, line := range lines {
		res := manager.Exec(line)
		if res.Status == "" {
			continue
		}
		if res.Err != nil {
			failed++
			fmt.Fprintf(w, "%s✗ %s%s\n", Error, res.Status, Reset)
			if strict {
				return res.Err
			}
			continue
		}
		fmt.Fprintf(w, "%s✓%s %s\n", Green, Reset, res.Status)
	}
	if draw {
		fmt.Fprintf(w, "\n%s\n", renderSnapshot(manager.Active().Snapshot(), NewStyles(), showHeights))
	}
	if failed > 0 {
		log.Debug().Int("failed", failed).Int("lines", len(lines)).Msg("exec finished with errors")
	}
	return nil
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, line)
	}
	return lines, scanner.Err()
}

func joinInts(values []int64) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.FormatInt(v, 10)
	}
	return strings.Join(parts, " ")
}
