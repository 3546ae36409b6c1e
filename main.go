// mdtranslate — translate Markdown documents with the Google Gemini API.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/minios-linux/mdtranslate/clierr"
	"github.com/minios-linux/mdtranslate/config"
	"github.com/minios-linux/mdtranslate/detect"
	"github.com/minios-linux/mdtranslate/gemini"
	"github.com/minios-linux/mdtranslate/i18n"
	"github.com/minios-linux/mdtranslate/langmeta"
	"github.com/minios-linux/mdtranslate/mdcheck"
	"github.com/minios-linux/mdtranslate/prompt"
	"github.com/minios-linux/mdtranslate/settings"
	"github.com/minios-linux/mdtranslate/source"
)

// Version information (set via -ldflags during build)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// ANSI colors
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[0;31m"
	colorGreen  = "\033[0;32m"
	colorYellow = "\033[1;33m"
	colorBlue   = "\033[0;34m"
)

func logInfo(format string, args ...any) {
	fmt.Fprintf(os.Stderr, colorBlue+"[INFO]"+colorReset+" "+format+"\n", args...)
}

func logSuccess(format string, args ...any) {
	fmt.Fprintf(os.Stderr, colorGreen+"[OK]"+colorReset+" "+format+"\n", args...)
}

func logWarning(format string, args ...any) {
	fmt.Fprintf(os.Stderr, colorYellow+"[WARN]"+colorReset+" "+format+"\n", args...)
}

func logError(format string, args ...any) {
	fmt.Fprintf(os.Stderr, colorRed+"[ERROR]"+colorReset+" "+format+"\n", args...)
}

const usageLine = "Usage: mdtranslate <language> [file] [--model <id>|--model=<id>]"

// ---------------------------------------------------------------------------
// Root command
// ---------------------------------------------------------------------------

type rootOptions struct {
	model        string
	timeout      time.Duration
	detectSource bool
	verbose      bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "mdtranslate <language> [file]",
		Short: "Translate Markdown documents with the Google Gemini API",
		Long: `mdtranslate — translate Markdown documents with the Google Gemini API.

Reads a Markdown document from a file or from piped standard input,
translates it into the requested language, and writes only the translated
document to standard output. The Markdown structure is preserved by the
prompt, not rewritten by the tool.

Examples:
  # Translate a file into Japanese
  mdtranslate ja README.md > README.ja.md

  # Translate piped input into German with a specific model
  cat notes.md | mdtranslate de --model gemini-1.5-pro

  # Use a custom endpoint instead of a short model name
  mdtranslate fr doc.md --model=https://proxy.internal/v1beta/models/gemini-2.5-flash:generateContent

Configuration:
  GEMINI_API_KEY        API key (or 'mdtranslate auth set <key>')
  MDTRANSLATE_MODEL     Default model when --model is not given
  MDTRANSLATE_TIMEOUT   Request timeout (default 120s)`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTranslate(cmd, args, opts)
		},
	}

	root.Flags().StringVar(&opts.model, "model", "", "Model name or fully qualified endpoint URL")
	root.Flags().DurationVar(&opts.timeout, "timeout", 0, "Request timeout (0 = configured default)")
	root.Flags().BoolVar(&opts.detectSource, "detect-source", false, "Detect the source language and mention it in the prompt")
	root.Flags().BoolVar(&opts.verbose, "verbose", false, "Enable detailed logging")

	// pflag's own failures (e.g. a trailing --model with no value) become
	// part of the malformed-argument taxonomy before anything else runs.
	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return &clierr.MalformedArgument{Detail: err.Error()}
	})

	_ = root.RegisterFlagCompletionFunc("model", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{"gemini-2.5-flash", "gemini-2.0-flash", "gemini-1.5-pro"}, cobra.ShellCompDirectiveNoFileComp
	})

	root.AddCommand(
		newAuthCmd(),
		newLanguagesCmd(),
		newVersionCmd(),
	)

	return root
}

func main() {
	i18n.Init("")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fail(err)
	}
}

// fail is the single error dispatch point: one diagnostic line on stderr,
// optional usage text, and the exit code attached to the failure kind.
func fail(err error) {
	var coder clierr.Coder
	if errors.As(err, &coder) {
		logError("%v", coder)
	} else {
		logError("%s: %v", i18n.T("unexpected error"), err)
	}

	var (
		usage     *clierr.Usage
		missing   *clierr.MissingLanguage
		malformed *clierr.MalformedArgument
	)
	if errors.As(err, &usage) || errors.As(err, &missing) || errors.As(err, &malformed) {
		fmt.Fprintln(os.Stderr, usageLine)
	}

	os.Exit(clierr.ExitCode(err))
}

// ---------------------------------------------------------------------------
// translate (root) — the request pipeline
// ---------------------------------------------------------------------------

// invocation is the parsed positional part of the argument vector.
type invocation struct {
	Language string
	FilePath string
	Extra    []string
}

// splitPositionals separates the positional arguments: position 0 is the
// target language, position 1 the optional file path. Anything beyond is
// kept so the caller can warn about it.
func splitPositionals(args []string) (invocation, error) {
	if len(args) == 0 {
		return invocation{}, &clierr.Usage{Reason: "missing target language code"}
	}
	inv := invocation{Language: args[0]}
	if len(args) > 1 {
		inv.FilePath = args[1]
	}
	if len(args) > 2 {
		inv.Extra = args[2:]
	}
	return inv, nil
}

// validateModelFlag turns the --model value into an override tier. The
// value must be non-blank and must not itself be a flag token (pflag
// happily consumes one as a value).
func validateModelFlag(value string) (config.Override, error) {
	if strings.TrimSpace(value) == "" {
		return config.Override{}, &clierr.MalformedArgument{Flag: "--model", Detail: "value is blank"}
	}
	if strings.HasPrefix(value, "-") {
		return config.Override{}, &clierr.MalformedArgument{
			Flag:   "--model",
			Detail: fmt.Sprintf("value %q looks like another flag", value),
		}
	}
	return config.Override{Value: value, Source: "flag", Set: true}, nil
}

func runTranslate(cmd *cobra.Command, args []string, opts *rootOptions) error {
	inv, err := splitPositionals(args)
	if err != nil {
		return err
	}
	if len(inv.Extra) > 0 {
		logWarning(i18n.T("extra arguments ignored: %s"), strings.Join(inv.Extra, " "))
	}

	var flagModel config.Override
	if cmd.Flags().Changed("model") {
		flagModel, err = validateModelFlag(opts.model)
		if err != nil {
			return err
		}
	}

	text, err := source.Resolve(inv.FilePath, os.Stdin)
	if err != nil {
		return err
	}

	meta, err := langmeta.Resolve(inv.Language)
	if err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	model, err := gemini.ResolveModel(flagModel, cfg.EnvModel, cfg.FileModel)
	if err != nil {
		return err
	}
	endpoint := gemini.Endpoint(model)

	apiKey := cfg.APIKey
	if apiKey == "" {
		apiKey = settings.APIKey()
	}
	timeout := cfg.Timeout
	if opts.timeout > 0 {
		timeout = opts.timeout
	}

	client, err := gemini.New(apiKey, timeout)
	if err != nil {
		return err
	}

	sourceHint := ""
	if opts.detectSource {
		if name, ok := detect.Language(text); ok {
			sourceHint = name
			if opts.verbose {
				logInfo(i18n.T("detected source language: %s"), name)
			}
		}
	}

	if opts.verbose {
		logInfo(i18n.T("translating into %s (%s) with model %s"), meta.Name, meta.Code, model)
	}

	translated, err := client.Translate(cmd.Context(), endpoint, prompt.Build(meta, sourceHint, text))
	if err != nil {
		return err
	}

	for _, warning := range mdcheck.Compare(text, translated) {
		logWarning("%s", warning)
	}

	// The translated document is the only thing ever written to stdout.
	fmt.Fprintln(cmd.OutOrStdout(), translated)
	return nil
}

// ---------------------------------------------------------------------------
// auth (manage the stored API key)
// ---------------------------------------------------------------------------

func newAuthCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Manage the stored API key",
		Long: `Manage the API key stored in the mdtranslate data directory.

The GEMINI_API_KEY environment variable always outranks the stored key.`,
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "set <api-key>",
			Short: "Store an API key",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := settings.SetAPIKey(args[0]); err != nil {
					return err
				}
				logSuccess(i18n.T("API key saved to %s"), settings.FilePath())
				return nil
			},
		},
		&cobra.Command{
			Use:   "status",
			Short: "Show whether an API key is configured",
			Run: func(cmd *cobra.Command, args []string) {
				if key := os.Getenv(config.EnvAPIKey); key != "" {
					logInfo("%s: %s", config.EnvAPIKey, settings.MaskKey(key))
				}
				if key := settings.APIKey(); key != "" {
					logInfo("stored: %s", settings.MaskKey(key))
				} else {
					logInfo("%s", i18n.T("no API key stored"))
				}
			},
		},
		&cobra.Command{
			Use:   "remove",
			Short: "Remove the stored API key",
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := settings.Remove(); err != nil {
					return err
				}
				logSuccess("%s", i18n.T("stored credentials removed"))
				return nil
			},
		},
	)

	return cmd
}

// ---------------------------------------------------------------------------
// languages (list built-in presets)
// ---------------------------------------------------------------------------

func newLanguagesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "languages",
		Short: "List languages with built-in style presets",
		Long: `List the language codes that have built-in display names and style
instructions. Any other code is still accepted and translated with a
neutral style.`,
		Run: func(cmd *cobra.Command, args []string) {
			tab := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, code := range langmeta.Codes() {
				preset, _ := langmeta.PresetFor(code)
				fmt.Fprintf(tab, "%s\t%s\n", code, preset.Name)
			}
			tab.Flush()
		},
	}
}

// ---------------------------------------------------------------------------
// version
// ---------------------------------------------------------------------------

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "mdtranslate version %s\n", version)
			fmt.Fprintf(out, "  commit:    %s\n", commit)
			fmt.Fprintf(out, "  built:     %s\n", date)
		},
	}
}
