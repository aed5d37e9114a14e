/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: mine.go
Description: Mine command implementation for the Akaylee Miner. Loads the
transaction corpus, runs the engine in frequency mode, and prints the mined
itemsets with their support counts.
*/

package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kleascm/akaylee-miner/pkg/interfaces"
)

// NewMineCommand builds the mine command with its own flag set
func NewMineCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mine",
		Short: "Mine frequent itemsets from a transaction corpus",
		Long: `Run the engine in frequency mode and print the mined itemsets with their
support counts. With --target, only transactions containing the target item are
considered and itemset size bounds apply.`,
		RunE: RunMine,
	}

	cmd.Flags().Int("min-support", 1, "Minimum absolute support count")
	cmd.Flags().String("mode", "frequent", "Mining mode (frequent, closed_frequent, maximal_frequent, positive_closed)")
	cmd.Flags().String("target", "", "Restrict mining to transactions containing this item")
	cmd.Flags().Int("min-size", 0, "Minimum itemset size (target mode, 0 = engine default)")
	cmd.Flags().Int("max-size", 0, "Maximum itemset size (target mode, 0 = unbounded)")

	return cmd
}

// BindMineFlags binds the mine flags into viper. Binding happens when the
// command runs, not at registration, so sibling commands sharing key names
// cannot clobber each other's defaults.
func BindMineFlags(cmd *cobra.Command) error {
	bindings := map[string]string{
		"min_support": "min-support",
		"mode":        "mode",
		"target":      "target",
		"min_size":    "min-size",
		"max_size":    "max-size",
	}
	for key, name := range bindings {
		if err := viper.BindPFlag(key, cmd.Flags().Lookup(name)); err != nil {
			return fmt.Errorf("failed to bind flag %s: %w", name, err)
		}
	}
	return nil
}

// RunMine executes a frequency-mode mining run
func RunMine(cmd *cobra.Command, args []string) error {
	fmt.Println("⛏️  Akaylee Miner - Frequent Itemset Mining")
	fmt.Println("==========================================")
	fmt.Println()

	// Load configuration first
	if err := LoadConfig(); err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if err := BindMineFlags(cmd); err != nil {
		return err
	}

	// Setup logging
	if err := SetupLogging(); err != nil {
		return fmt.Errorf("failed to setup logging: %w", err)
	}

	m, err := newMiner()
	if err != nil {
		return err
	}

	request := &interfaces.RunRequest{
		MinSupport: viper.GetInt("min_support"),
		Mode:       interfaces.MiningMode(viper.GetString("mode")),
		Target:     viper.GetString("target"),
		Options:    buildRunOptions(),
	}

	fmt.Printf("📁 Corpus: %d transactions, %d distinct items\n", m.Transactions(), m.Codec().Len())
	fmt.Printf("⚙️  Mode: %s, minimum support: %d\n", request.Mode, request.MinSupport)
	if request.Target != "" {
		fmt.Printf("🎯 Target item: %s\n", request.Target)
	}
	fmt.Println()

	outcome, result, err := m.Mine(request)
	if err != nil {
		return err
	}
	if outcome.ExitCode != 0 {
		fmt.Printf("⚠️  Engine exited with code %d\n\n", outcome.ExitCode)
	}

	freq := result.(*interfaces.FrequencyResult)
	for _, entry := range freq.Entries {
		fmt.Printf("  %-50s %d\n", strings.Join(entry.Items, " "), entry.Support)
	}

	fmt.Println()
	fmt.Printf("✨ Mined %d itemsets in %s (run %s)\n", freq.Len(), outcome.Duration, outcome.RunID)
	return nil
}
