// Package cmd provides the command-line interface for SiteGather.
// It handles command parsing, configuration loading, and crawl execution.
package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/sitegather/sitegather/internal/config"
	"github.com/sitegather/sitegather/internal/crawler"
	"github.com/sitegather/sitegather/internal/logging"
	"github.com/sitegather/sitegather/internal/report"
)

var (
	cfgFile   string
	version   string
	buildTime string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "sitegather URL",
	Short: "A polite breadth-first website crawler and report generator",
	Long: `SiteGather crawls a website starting from a seed URL, extracts the
title, visible text, and outbound links of each page, and writes the
ordered result collection as a CSV and/or SQLite report.

The crawl stays within the seed's host unless external links are
explicitly included, visits each URL at most once, and stops when the
page budget is reached or the frontier runs dry.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCrawl,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

// SetVersionInfo sets version information for the CLI
func SetVersionInfo(v, bt string) {
	version = v
	buildTime = bt
	rootCmd.Version = fmt.Sprintf("%s (built %s)", version, buildTime)
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./sitegather.yml)")

	rootCmd.Flags().Bool("show-config", false, "Display current configuration in YAML format and exit")

	// Crawl flags
	rootCmd.Flags().IntP("max-pages", "m", 10, "Maximum number of pages to visit (1-100)")
	rootCmd.Flags().Float64P("delay", "r", 0.5, "Delay between page visits in seconds (0.0-2.0)")
	rootCmd.Flags().DurationP("timeout", "t", 10*time.Second, "HTTP request timeout")
	rootCmd.Flags().StringP("user-agent", "u", config.DefaultConfig().UserAgent, "HTTP User-Agent header")
	rootCmd.Flags().Bool("include-external", false, "Follow links outside the seed's host")

	// Report flags
	rootCmd.Flags().StringP("output", "o", "", "Write a CSV report to this path")
	rootCmd.Flags().StringP("database", "d", "", "Write a SQLite report to this path")

	// Logging flags
	rootCmd.Flags().String("log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.Flags().String("log-file", "", "Write JSON logs to this file in addition to the console")

	bindFlags := []struct {
		viperKey string
		flagName string
	}{
		{"max_pages", "max-pages"},
		{"delay", "delay"},
		{"request_timeout", "timeout"},
		{"user_agent", "user-agent"},
		{"include_external", "include-external"},
		{"output_path", "output"},
		{"database_path", "database"},
		{"log_level", "log-level"},
		{"log_file", "log-file"},
	}

	for _, bind := range bindFlags {
		if err := viper.BindPFlag(bind.viperKey, rootCmd.Flags().Lookup(bind.flagName)); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to bind flag %s: %v\n", bind.flagName, err)
		}
	}
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName("sitegather")
	}

	viper.AutomaticEnv()
	viper.SetEnvPrefix("SG")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintf(os.Stderr, "Using config file: %s\n", viper.ConfigFileUsed())
	}
}

// loadConfig assembles the effective configuration from defaults, the
// config file, environment variables, and flags.
func loadConfig(args []string) (*config.CrawlConfig, error) {
	cfg := config.DefaultConfig()

	if err := viper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// The delay is taken as float seconds on the wire (flag, env, file)
	// and converted here, so 0.5 means half a second.
	if viper.IsSet("delay") {
		cfg.RequestDelay = time.Duration(viper.GetFloat64("delay") * float64(time.Second))
	}

	if len(args) > 0 {
		cfg.SeedURL = args[0]
	}

	return cfg, nil
}

func showCurrentConfig(cfg *config.CrawlConfig) error {
	yamlData, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal configuration to YAML: %w", err)
	}

	fmt.Printf("# Current SiteGather configuration\n")
	fmt.Printf("# Config file search path: ./sitegather.yml\n")
	fmt.Printf("# Environment variable prefix: SG_\n\n")
	fmt.Print(string(yamlData))

	return nil
}

func runCrawl(cmd *cobra.Command, args []string) error {
	showConfig, _ := cmd.Flags().GetBool("show-config")

	cfg, err := loadConfig(args)
	if err != nil {
		return err
	}

	if showConfig {
		return showCurrentConfig(cfg)
	}

	logCfg := logging.DefaultConfig()
	logCfg.Level = logging.ParseLevel(cfg.LogLevel)
	logCfg.FilePath = cfg.LogFile
	if err := logging.SetDefault(*logCfg); err != nil {
		return fmt.Errorf("failed to set up logging: %w", err)
	}

	// Progress is rendered here, from data only; the engine knows
	// nothing about the terminal.
	progress := func(p crawler.Progress) {
		fmt.Fprintf(os.Stderr, "[%3.0f%%] %s (status %d)\n", p.Fraction*100, p.Latest.URL, p.Latest.Status)
	}

	c, err := crawler.NewCrawler(cfg, progress)
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	defer c.Close()

	results, err := c.Run(cmd.Context())
	if err != nil {
		return err
	}

	summary := report.Summarize(results)
	fmt.Printf("Crawl finished: %d pages scraped, %d successful, %d errors\n",
		summary.PagesScraped, summary.Successful, summary.Errors)

	if cfg.OutputPath != "" {
		if err := report.WriteCSVFile(cfg.OutputPath, results); err != nil {
			return fmt.Errorf("failed to write CSV report: %w", err)
		}
		fmt.Printf("CSV report written to %s\n", cfg.OutputPath)
	}

	if cfg.DatabasePath != "" {
		w, err := report.NewSQLiteWriter(cfg.DatabasePath)
		if err != nil {
			return fmt.Errorf("failed to open report database: %w", err)
		}
		if err := w.Save(results); err != nil {
			_ = w.Close()
			return fmt.Errorf("failed to write report database: %w", err)
		}
		if err := w.Close(); err != nil {
			return fmt.Errorf("failed to close report database: %w", err)
		}
		fmt.Printf("SQLite report written to %s\n", cfg.DatabasePath)
	}

	return nil
}
