/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: utils.go
Description: Shared utilities for the Akaylee Miner commands. Provides common
configuration loading, logging setup, corpus loading, and miner construction
used across all command implementations.
*/

package commands

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/kleascm/akaylee-miner/pkg/corpus"
	"github.com/kleascm/akaylee-miner/pkg/interfaces"
	"github.com/kleascm/akaylee-miner/pkg/logging"
	"github.com/kleascm/akaylee-miner/pkg/miner"
)

// minerLogger is the shared pipeline logger, set up once per command
var minerLogger *logging.Logger

// LoadConfig loads configuration from files and environment
func LoadConfig() error {
	// Set config file if specified
	if configFile := viper.GetString("config"); configFile != "" {
		viper.SetConfigFile(configFile)
		if err := viper.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Set environment variable prefix
	viper.SetEnvPrefix("MINER")
	viper.AutomaticEnv()

	return nil
}

// SetupLogging configures the logging system
func SetupLogging() error {
	logLevel := viper.GetString("log_level")
	if _, err := logrus.ParseLevel(logLevel); err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}

	format := logging.LogFormat(viper.GetString("log_format"))
	if viper.GetBool("json_logs") {
		format = logging.LogFormatJSON
	}

	logger, err := logging.NewLogger(&logging.LoggerConfig{
		Level:     logging.LogLevel(logLevel),
		Format:    format,
		OutputDir: viper.GetString("log_dir"),
		MaxFiles:  viper.GetInt("log_max_files"),
		MaxSize:   viper.GetInt64("log_max_size"),
		Timestamp: true,
		Colors:    true,
		Compress:  viper.GetBool("log_compress"),
	})
	if err != nil {
		return fmt.Errorf("failed to setup logging: %w", err)
	}

	minerLogger = logger
	return nil
}

// loadCorpus reads the configured transaction corpus. SQLite sources go
// through the database loader, everything else through the file loader.
func loadCorpus() ([][]string, error) {
	path := viper.GetString("corpus_path")
	if path == "" {
		return nil, fmt.Errorf("no corpus configured: pass --corpus or set MINER_CORPUS_PATH")
	}

	format := viper.GetString("corpus_format")
	if format == "auto" {
		format = strings.TrimPrefix(filepath.Ext(path), ".")
	}

	if format == "sqlite" || format == "db" || format == "sqlite3" {
		return corpus.LoadSQLite(corpus.SQLiteSource{
			Path:  path,
			Table: viper.GetString("sqlite_table"),
		})
	}
	return corpus.LoadFile(path, format)
}

// newMiner builds a miner over the configured engine and corpus
func newMiner() (*miner.Miner, error) {
	transactions, err := loadCorpus()
	if err != nil {
		return nil, fmt.Errorf("failed to load corpus: %w", err)
	}

	config := &interfaces.MinerConfig{
		EnginePath:      viper.GetString("engine_path"),
		TransactionFile: viper.GetString("transaction_file"),
		OutputFile:      viper.GetString("output_file"),
		Timeout:         viper.GetDuration("engine_timeout"),
		SummaryDir:      viper.GetString("summary_dir"),
	}

	m, err := miner.New(config, transactions)
	if err != nil {
		return nil, err
	}
	if minerLogger != nil {
		minerLogger.LogCorpus(viper.GetString("corpus_path"), m.Transactions())
		m.SetLogger(minerLogger.GetLogger())
	}
	return m, nil
}

// buildRunOptions collects the optional engine flags from configuration.
// Zero values mean "not set" and leave the engine defaults in place.
func buildRunOptions() interfaces.RunOptions {
	var options interfaces.RunOptions

	if v := viper.GetFloat64("min_confidence"); v > 0 {
		options.MinConfidence = &v
	}
	if v := viper.GetFloat64("max_confidence"); v > 0 {
		options.MaxConfidence = &v
	}
	if v := viper.GetInt("min_size"); v > 0 {
		options.MinItemsetSize = &v
	}
	if v := viper.GetInt("max_size"); v > 0 {
		options.MaxItemsetSize = &v
	}
	return options
}
