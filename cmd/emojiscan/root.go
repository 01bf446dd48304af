package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-json"
	"github.com/npillmayer/emodetect"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// app carries the state shared by all sub-commands of one invocation.
type app struct {
	configFile string
	flags      Config
	cfg        *Config
	detector   *emodetect.Detector
}

func newRootCmd() *cobra.Command {
	a := &app{}
	rootCmd := &cobra.Command{
		Use:   "emojiscan",
		Short: "find emoji in text",
		Long: `emojiscan - find emoji in text
  - detect, first, single: report emoji sequences as JSON or YAML
  - replace, strip: substitute emoji by short names, or remove them`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&a.configFile, "config", "", "YAML configuration file")
	pf.StringVar(&a.flags.Format, "format", "json", "output format: json or yaml")
	pf.BoolVar(&a.flags.Aliases, "aliases", false, "use alias short names")
	pf.StringVar(&a.flags.Trace, "trace", "E", "trace level: D, I or E")

	detectCmd := &cobra.Command{
		Use:   "detect [text]",
		Short: "List all emoji in text",
		RunE:  a.runDetect,
	}
	firstCmd := &cobra.Command{
		Use:   "first [text]",
		Short: "Show the first emoji in text",
		RunE:  a.runFirst,
	}
	singleCmd := &cobra.Command{
		Use:   "single [text]",
		Short: "Check if text is a single emoji",
		Long: `Check if text consists of exactly one emoji and nothing else.
Exits with an error if it does not.`,
		RunE: a.runSingle,
	}
	replaceCmd := &cobra.Command{
		Use:   "replace [text]",
		Short: "Replace emoji by their short names",
		Long: `Replace every emoji by prefix + short name + suffix.
Emoji without a short name are replaced by their hex code-points.

Examples:
  emojiscan replace "I love 😀!"             # I love :grinning:!
  emojiscan replace --prefix="[" --suffix="]" "👍🏽"`,
		RunE: a.runReplace,
	}
	replaceCmd.Flags().StringVar(&a.flags.Prefix, "prefix", ":", "placeholder prefix")
	replaceCmd.Flags().StringVar(&a.flags.Suffix, "suffix", ":", "placeholder suffix")
	stripCmd := &cobra.Command{
		Use:   "strip [text]",
		Short: "Remove all emoji from text",
		RunE:  a.runStrip,
	}
	rootCmd.AddCommand(detectCmd, firstCmd, singleCmd, replaceCmd, stripCmd)
	return rootCmd
}

// setup loads the configuration, lets flags override it and creates the
// detector.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg, err := LoadConfig(a.configFile)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("format") {
		cfg.Format = a.flags.Format
	}
	if flags.Changed("aliases") {
		cfg.Aliases = a.flags.Aliases
	}
	if flags.Changed("trace") {
		cfg.Trace = a.flags.Trace
	}
	if flags.Changed("prefix") {
		cfg.Prefix = a.flags.Prefix
	}
	if flags.Changed("suffix") {
		cfg.Suffix = a.flags.Suffix
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	gtrace.CoreTracer = gologadapter.New()
	gtrace.CoreTracer.SetTraceLevel(cfg.TraceLevel())
	if a.detector, err = cfg.Detector(); err != nil {
		return fmt.Errorf("cannot create emoji detector: %w", err)
	}
	a.cfg = cfg
	return nil
}

func (a *app) runDetect(cmd *cobra.Command, args []string) error {
	text, err := inputText(cmd, args)
	if err != nil {
		return err
	}
	matches, err := a.detector.DetectAll(text)
	if err != nil {
		return err
	}
	if matches == nil {
		matches = []emodetect.Match{}
	}
	return a.write(cmd.OutOrStdout(), matches)
}

func (a *app) runFirst(cmd *cobra.Command, args []string) error {
	text, err := inputText(cmd, args)
	if err != nil {
		return err
	}
	m, ok, err := a.detector.First(text)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("no emoji found")
	}
	return a.write(cmd.OutOrStdout(), m)
}

func (a *app) runSingle(cmd *cobra.Command, args []string) error {
	text, err := inputText(cmd, args)
	if err != nil {
		return err
	}
	m, ok := a.detector.IsSingleEmoji(text)
	if !ok {
		return fmt.Errorf("not a single emoji: %q", text)
	}
	return a.write(cmd.OutOrStdout(), m)
}

func (a *app) runReplace(cmd *cobra.Command, args []string) error {
	text, err := inputText(cmd, args)
	if err != nil {
		return err
	}
	s, err := a.detector.Replace(text, a.cfg.Prefix, a.cfg.Suffix)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), s)
	return nil
}

func (a *app) runStrip(cmd *cobra.Command, args []string) error {
	text, err := inputText(cmd, args)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), a.detector.Strip(text))
	return nil
}

// write renders v in the configured output format.
func (a *app) write(w io.Writer, v interface{}) error {
	if a.cfg.Format == "yaml" {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	}
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(out))
	return err
}

// inputText joins the arguments by blanks. Without arguments, input is read
// from stdin, stripped of a trailing newline.
func inputText(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return strings.TrimSuffix(strings.TrimSuffix(string(data), "\n"), "\r"), nil
}
