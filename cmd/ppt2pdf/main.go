// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the ppt2pdf CLI.
// ppt2pdf converts every PPT/PPTX file in a folder to PDF with a headless
// LibreOffice, one file at a time.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"unicode"
	"unicode/utf8"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/ppt2pdf/internal/convert"
	"github.com/pdiddy/ppt2pdf/internal/soffice"
	"github.com/pdiddy/ppt2pdf/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// Exit codes reported to the shell.
const (
	exitOK       = 0
	exitError    = 1
	exitFolder   = 2
	exitNoOffice = 3
)

// rootCmd is the base command for the ppt2pdf CLI.
var rootCmd = &cobra.Command{
	Use:   "ppt2pdf <folder>",
	Short: "Batch convert PPT/PPTX to PDF via LibreOffice (headless)",
	Long: `ppt2pdf converts every .ppt and .pptx file in a folder to PDF by running
LibreOffice's soffice in headless mode. Each PDF is written next to its source
file. A file counts as converted when its PDF exists after soffice exits,
whatever exit status soffice reports.

By default only the folder itself is scanned; use --recursive to include
subfolders. The soffice binary is taken from --soffice, then the standard
install location, then PATH.`,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runConvert,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./ppt2pdf.yaml or ~/.config/ppt2pdf/ppt2pdf.yaml)")

	rootCmd.Flags().Bool("recursive", false, "include subfolders")
	rootCmd.Flags().String("soffice", "", "path to soffice executable")
	rootCmd.Flags().Duration("timeout", 0, "per-file conversion timeout (0 disables)")
	rootCmd.Flags().Bool("require-fresh", false, "count a PDF only if it was written during this run")
	rootCmd.Flags().String("report", "", "write a YAML run report to this file")

	bindFlags()
}

// bindFlags registers the conversion flags with viper under their config keys.
func bindFlags() {
	for key, flag := range map[string]string{
		"recursive":     "recursive",
		"soffice":       "soffice",
		"timeout":       "timeout",
		"require_fresh": "require-fresh",
		"report":        "report",
	} {
		if err := viper.BindPFlag(key, rootCmd.Flags().Lookup(flag)); err != nil {
			panic(err)
		}
	}
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("ppt2pdf")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "ppt2pdf"))
		}
	}

	viper.SetEnvPrefix("PPT2PDF")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// runConfig assembles the run settings from viper, which layers flags over
// environment variables over the config file.
func runConfig(folder string) types.RunConfig {
	return types.RunConfig{
		Folder:       folder,
		Recursive:    viper.GetBool("recursive"),
		Soffice:      viper.GetString("soffice"),
		Timeout:      viper.GetDuration("timeout"),
		RequireFresh: viper.GetBool("require_fresh"),
		ReportPath:   viper.GetString("report"),
	}
}

func runConvert(cmd *cobra.Command, args []string) error {
	cfg := runConfig(args[0])
	opts := soffice.Options{Timeout: cfg.Timeout, RequireFresh: cfg.RequireFresh}

	_, err := convert.Run(cmd.Context(), cfg,
		soffice.NewResolver(cmd.ErrOrStderr()),
		func(exe string) convert.Converter { return soffice.NewConverter(exe, opts) },
		cmd.OutOrStdout(), cmd.ErrOrStderr())
	return err
}

// exitCode maps a command error to the process exit status.
func exitCode(err error) int {
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, convert.ErrFolder):
		return exitFolder
	case errors.Is(err, soffice.ErrNotFound):
		return exitNoOffice
	default:
		return exitError
	}
}

// capitalize upper-cases the first letter of an error message for display.
func capitalize(msg string) string {
	r, size := utf8.DecodeRuneInString(msg)
	if r == utf8.RuneError {
		return msg
	}
	return string(unicode.ToUpper(r)) + msg[size:]
}

// execute runs the root command and reports a failure on stderr.
func execute(ctx context.Context, stderr io.Writer) int {
	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		fmt.Fprintf(stderr, "[x] %s\n", capitalize(err.Error()))
	}
	return exitCode(err)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := execute(ctx, os.Stderr)
	stop()
	os.Exit(code)
}
