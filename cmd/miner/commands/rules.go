/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: rules.go
Description: Rules command implementation for the Akaylee Miner. Runs the
engine in association rule mode and prints mined rules with their source
itemsets, confidences, and support counts.
*/

package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kleascm/akaylee-miner/pkg/interfaces"
)

// NewRulesCommand builds the rules command with its own flag set
func NewRulesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rules",
		Short: "Mine association rules targeting a specific item",
		Long: `Run the engine in association rule mode and print mined rules whose
consequent is the given item, with source itemsets, confidences, and support
counts.`,
		RunE: RunRules,
	}

	cmd.Flags().String("for-item", "", "Consequent item for mined rules (required)")
	cmd.Flags().Int("min-support", 1, "Minimum absolute support count")
	cmd.Flags().String("mode", "closed_frequent", "Mining mode (frequent, closed_frequent, maximal_frequent, positive_closed)")
	cmd.Flags().Float64("min-confidence", 0, "Minimum rule confidence (0 = engine default 0.5)")
	cmd.Flags().Float64("max-confidence", 0, "Maximum rule confidence (0 = disabled, replaces min-confidence)")
	cmd.Flags().Int("min-size", 0, "Minimum itemset size (0 = engine default)")
	cmd.Flags().Int("max-size", 0, "Maximum itemset size (0 = unbounded)")

	cmd.MarkFlagRequired("for-item")

	return cmd
}

// BindRuleFlags binds the rules flags into viper at run time, keeping the
// shared key names isolated from sibling commands' defaults.
func BindRuleFlags(cmd *cobra.Command) error {
	bindings := map[string]string{
		"for_item":       "for-item",
		"min_support":    "min-support",
		"mode":           "mode",
		"min_confidence": "min-confidence",
		"max_confidence": "max-confidence",
		"min_size":       "min-size",
		"max_size":       "max-size",
	}
	for key, name := range bindings {
		if err := viper.BindPFlag(key, cmd.Flags().Lookup(name)); err != nil {
			return fmt.Errorf("failed to bind flag %s: %w", name, err)
		}
	}
	return nil
}

// RunRules executes a rule-mode mining run
func RunRules(cmd *cobra.Command, args []string) error {
	fmt.Println("🔗 Akaylee Miner - Association Rule Mining")
	fmt.Println("=========================================")
	fmt.Println()

	// Load configuration first
	if err := LoadConfig(); err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if err := BindRuleFlags(cmd); err != nil {
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
		MinSupport:  viper.GetInt("min_support"),
		Mode:        interfaces.MiningMode(viper.GetString("mode")),
		RuleForItem: viper.GetString("for_item"),
		Options:     buildRunOptions(),
	}

	fmt.Printf("📁 Corpus: %d transactions, %d distinct items\n", m.Transactions(), m.Codec().Len())
	fmt.Printf("⚙️  Mode: %s, minimum support: %d, rule target: %s\n",
		request.Mode, request.MinSupport, request.RuleForItem)
	fmt.Println()

	outcome, result, err := m.Mine(request)
	if err != nil {
		return err
	}
	if outcome.ExitCode != 0 {
		fmt.Printf("⚠️  Engine exited with code %d\n\n", outcome.ExitCode)
	}

	rules := result.(*interfaces.RuleResult)
	for _, entry := range rules.Entries {
		fmt.Printf("  %-40s => %-15s conf=%-8s sup=%s\n",
			strings.Join(entry.Source, " "), entry.Target, entry.Confidence, entry.Support)
	}

	fmt.Println()
	fmt.Printf("✨ Mined %d rules in %s (run %s)\n", rules.Len(), outcome.Duration, outcome.RunID)
	return nil
}
