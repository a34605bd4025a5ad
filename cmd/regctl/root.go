package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/joshuapare/regcli/reg"
)

var (
	// Global flags
	verbose bool
	quiet   bool
	jsonOut bool
	host    string
	tool    string
	timeout time.Duration
)

var rootCmd = &cobra.Command{
	Use:   "regctl",
	Short: "Query and modify the Windows registry through the reg tool",
	Long: `regctl reads and writes Windows registry keys and values by shelling
out to the platform registry command-line tool (reg.exe) and parsing its
output. It supports local and remote registries, value listings, subkey
listings, and key/value mutation.`,
	Version: "0.1.0",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelWarn
		if verbose {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().StringVar(&host, "host", "", "Remote host to query (default local)")
	rootCmd.PersistentFlags().StringVar(&tool, "tool", "", "Registry tool executable (default reg)")
	rootCmd.PersistentFlags().
		DurationVar(&timeout, "timeout", 0, "Per-operation deadline (default none)")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newClient builds the facade with flag/config precedence applied.
func newClient() *reg.Client {
	cfg := loadConfig()
	exe := tool
	if exe == "" {
		exe = cfg.Tool
	}
	opts := []reg.Option{reg.WithLogger(slog.Default())}
	if exe != "" {
		opts = append(opts, reg.WithTool(exe))
	}
	return reg.New(opts...)
}

// opContext applies the flag/config deadline, if any.
func opContext() (context.Context, context.CancelFunc) {
	d := timeout
	if d == 0 {
		d = loadConfig().Timeout
	}
	if d > 0 {
		return context.WithTimeout(context.Background(), d)
	}
	return context.WithCancel(context.Background())
}

// parseLocation resolves a path argument, overlaying the --host flag (or the
// configured default host) when the path itself carries none.
func parseLocation(arg string) (reg.Location, error) {
	loc, err := reg.ParsePath(arg)
	if err != nil {
		return reg.Location{}, err
	}
	h := host
	if h == "" {
		h = loadConfig().Host
	}
	if h != "" && loc.Host() == "" {
		return reg.NewRemoteLocation(h, loc.Hive(), loc.Key())
	}
	return loc, nil
}

// Helper functions for output

// printInfo prints an info message if not in quiet mode
func printInfo(format string, args ...interface{}) {
	if !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printVerbose prints a verbose message if verbose mode is enabled
func printVerbose(format string, args ...interface{}) {
	if verbose && !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printJSON outputs data as JSON
func printJSON(v interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

// valueJSON is the JSON rendering of one value record.
type valueJSON struct {
	Host  string `json:"host,omitempty"`
	Hive  string `json:"hive"`
	Key   string `json:"key"`
	Name  string `json:"name"`
	Type  string `json:"type"`
	Value string `json:"value"`
}

func toValueJSON(v reg.ValueRecord) valueJSON {
	return valueJSON{
		Host:  v.Host(),
		Hive:  v.Hive().String(),
		Key:   v.Key(),
		Name:  v.Name(),
		Type:  v.Type().String(),
		Value: v.Value(),
	}
}
