/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: utilities.go
Description: Utility commands for the Akaylee Miner. Provides mode listing and
self-check functionality for system validation before mining runs.
*/

package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kleascm/akaylee-miner/pkg/interfaces"
)

// NewModesCommand builds the modes listing command
func NewModesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "modes",
		Short: "List available mining modes and their engine flags",
		Long: `List the mining modes the engine supports with the mode letter each one maps
to and a short description of what it mines.`,
		Run: ListModes,
	}
}

// NewCheckCommand builds the self-check command
func NewCheckCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Perform built-in self-checks for system validation",
		Long: `Validate that the engine binary exists, the corpus is readable, and the
transaction and output file locations are writable. Useful before batch runs.`,
		RunE: PerformSelfCheck,
	}
}

// ListModes lists all mining modes and the engine flag each maps to
func ListModes(cmd *cobra.Command, args []string) {
	fmt.Println("⛏️  Akaylee Miner - Available Mining Modes")
	fmt.Println("=========================================")
	fmt.Println()

	descriptions := map[interfaces.MiningMode]string{
		interfaces.ModeFrequent:        "All itemsets meeting the minimum support",
		interfaces.ModeClosedFrequent:  "Itemsets with no superset of equal support",
		interfaces.ModeMaximalFrequent: "Itemsets with no frequent superset",
		interfaces.ModePositiveClosed:  "Closed itemsets with positive correlation",
	}

	for i, mode := range interfaces.Modes() {
		fmt.Printf("%d. %s\n", i+1, mode)
		fmt.Printf("   Engine letter: %s\n", mode.Letter())
		fmt.Printf("   Description: %s\n", descriptions[mode])
		fmt.Println()
	}

	fmt.Println("✨ Use --mode with the mine and rules commands to select a mode")
}

// PerformSelfCheck validates engine, corpus, and file locations
func PerformSelfCheck(cmd *cobra.Command, args []string) error {
	fmt.Println("🔍 Akaylee Miner - System Self-Check")
	fmt.Println("===================================")
	fmt.Println()

	// Load configuration first
	if err := LoadConfig(); err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	checks := []struct {
		name     string
		function func() error
	}{
		{"Engine Binary", checkEngineBinary},
		{"Corpus Readability", checkCorpusReadable},
		{"Transaction File Location", checkTransactionFileWritable},
		{"Output File Location", checkOutputFileWritable},
	}

	passed := 0
	total := len(checks)

	for _, check := range checks {
		fmt.Printf("🔍 %s... ", check.name)
		if err := check.function(); err != nil {
			fmt.Printf("❌ FAILED: %v\n", err)
		} else {
			fmt.Println("✅ PASSED")
			passed++
		}
	}

	fmt.Println()
	fmt.Printf("📊 Results: %d/%d checks passed\n", passed, total)

	if passed == total {
		fmt.Println("✨ All checks passed! System is ready for mining.")
		return nil
	}
	fmt.Println("⚠️  Some checks failed. Please address the issues before mining.")
	return fmt.Errorf("%d/%d checks failed", total-passed, total)
}

// checkEngineBinary validates that the engine binary exists
func checkEngineBinary() error {
	path := viper.GetString("engine_path")
	if path == "" {
		return fmt.Errorf("engine path not configured")
	}
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("engine binary not found at %s", path)
	}
	return nil
}

// checkCorpusReadable validates that the configured corpus loads
func checkCorpusReadable() error {
	transactions, err := loadCorpus()
	if err != nil {
		return err
	}
	if len(transactions) == 0 {
		return fmt.Errorf("corpus contains no transactions")
	}
	return nil
}

// checkTransactionFileWritable validates the transaction file location
func checkTransactionFileWritable() error {
	return checkWritable(viper.GetString("transaction_file"))
}

// checkOutputFileWritable validates the output file location
func checkOutputFileWritable() error {
	return checkWritable(viper.GetString("output_file"))
}

// checkWritable writes and removes a probe file next to path
func checkWritable(path string) error {
	if path == "" {
		return fmt.Errorf("path not configured")
	}
	probe := filepath.Join(filepath.Dir(path), ".akaylee_write_probe")
	if err := os.WriteFile(probe, []byte("probe"), 0644); err != nil {
		return fmt.Errorf("cannot write to %s: %w", filepath.Dir(path), err)
	}
	os.Remove(probe)
	return nil
}
