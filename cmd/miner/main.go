/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: main.go
Description: Main command-line interface for the Akaylee Miner. Provides commands
for frequent itemset mining and association rule mining over a transaction corpus,
with configuration management and logging control.
*/

package main

import (
	"fmt"
	"os"
	"time"

	"github.com/kleascm/akaylee-miner/cmd/miner/commands"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	// Configuration
	configFile string
	logLevel   string
	jsonLogs   bool

	// Engine configuration
	enginePath      string
	transactionFile string
	outputFile      string
	engineTimeout   time.Duration

	// Corpus configuration
	corpusPath   string
	corpusFormat string
	sqliteTable  string

	// Summary configuration
	summaryDir string

	// Logging configuration
	logDir      string
	logFormat   string
	logMaxFiles int
	logMaxSize  int64
	logCompress bool
)

func main() {
	// Create root command
	rootCmd := &cobra.Command{
		Use:   "akaylee-miner",
		Short: "Akaylee Miner - Frequent itemset and association rule mining",
		Long: `Akaylee Miner wraps the LCM frequent itemset mining engine behind a
string-labeled interface. Transactions are encoded to integer codes, handed to
the engine, and results are decoded back to the original labels. Supports
frequent, closed frequent, maximal frequent, and positive closed itemsets,
plus association rule mining with confidence bounds.`,
		Version: "1.0.0",
	}

	// Add persistent flags
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Configuration file path")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Logging level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&jsonLogs, "json-logs", false, "Use JSON log format")

	rootCmd.PersistentFlags().StringVar(&enginePath, "engine", "", "Path to the LCM engine binary (required)")
	rootCmd.PersistentFlags().StringVar(&transactionFile, "transaction-file", "lcm.dat", "Path for the encoded transaction file")
	rootCmd.PersistentFlags().StringVar(&outputFile, "output-file", "lcm.out", "Path for the engine output file")
	rootCmd.PersistentFlags().DurationVar(&engineTimeout, "engine-timeout", 0, "Maximum engine run time (0 = no limit)")

	rootCmd.PersistentFlags().StringVar(&corpusPath, "corpus", "", "Transaction corpus file (txt, csv, json, sqlite)")
	rootCmd.PersistentFlags().StringVar(&corpusFormat, "corpus-format", "auto", "Corpus format (txt, csv, json, sqlite, auto)")
	rootCmd.PersistentFlags().StringVar(&sqliteTable, "sqlite-table", "transactions", "Table name for sqlite corpus sources")

	rootCmd.PersistentFlags().StringVar(&summaryDir, "summary-dir", "", "Directory for run summary JSON files (empty = disabled)")

	// Add logging-specific flags
	rootCmd.PersistentFlags().StringVar(&logDir, "log-dir", "", "Log output directory (empty = console only)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "custom", "Log format (text, json, custom)")
	rootCmd.PersistentFlags().IntVar(&logMaxFiles, "log-max-files", 10, "Maximum number of log files to keep")
	rootCmd.PersistentFlags().Int64Var(&logMaxSize, "log-max-size", 100*1024*1024, "Maximum log file size in bytes")
	rootCmd.PersistentFlags().BoolVar(&logCompress, "log-compress", false, "Compress rotated log files")

	// Bind persistent flags to viper. Per-command flags are bound inside
	// each command's RunE so sibling defaults stay isolated.
	viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("json_logs", rootCmd.PersistentFlags().Lookup("json-logs"))
	viper.BindPFlag("engine_path", rootCmd.PersistentFlags().Lookup("engine"))
	viper.BindPFlag("transaction_file", rootCmd.PersistentFlags().Lookup("transaction-file"))
	viper.BindPFlag("output_file", rootCmd.PersistentFlags().Lookup("output-file"))
	viper.BindPFlag("engine_timeout", rootCmd.PersistentFlags().Lookup("engine-timeout"))
	viper.BindPFlag("corpus_path", rootCmd.PersistentFlags().Lookup("corpus"))
	viper.BindPFlag("corpus_format", rootCmd.PersistentFlags().Lookup("corpus-format"))
	viper.BindPFlag("sqlite_table", rootCmd.PersistentFlags().Lookup("sqlite-table"))
	viper.BindPFlag("summary_dir", rootCmd.PersistentFlags().Lookup("summary-dir"))
	viper.BindPFlag("log_dir", rootCmd.PersistentFlags().Lookup("log-dir"))
	viper.BindPFlag("log_format", rootCmd.PersistentFlags().Lookup("log-format"))
	viper.BindPFlag("log_max_files", rootCmd.PersistentFlags().Lookup("log-max-files"))
	viper.BindPFlag("log_max_size", rootCmd.PersistentFlags().Lookup("log-max-size"))
	viper.BindPFlag("log_compress", rootCmd.PersistentFlags().Lookup("log-compress"))

	// Add commands to root
	rootCmd.AddCommand(commands.NewMineCommand())
	rootCmd.AddCommand(commands.NewRulesCommand())
	rootCmd.AddCommand(commands.NewModesCommand())
	rootCmd.AddCommand(commands.NewCheckCommand())

	// Execute root command
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
