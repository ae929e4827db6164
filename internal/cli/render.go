package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/speier/gotex/internal/config"
	"github.com/speier/gotex/internal/watch"
	"github.com/speier/gotex/pkg/gotex"
	"github.com/speier/gotex/pkg/gotex/box"
	"github.com/speier/gotex/pkg/gotex/mathml"
	"github.com/spf13/cobra"
)

var (
	displayMode  bool
	outputMode   string
	strictMode   string
	macroFile    string
	throwOnError bool
	watchMode    bool
	formatJSON   bool
)

var renderCmd = &cobra.Command{
	Use:   "render [file|-]",
	Short: "Render a TeX-compatible math source to HTML/MathML markup",
	Long: `Render reads a math source string from a file, or from stdin when
the argument is "-" (or omitted), and writes the rendered markup to
stdout.

Examples:
  gotex render --display equation.tex
  echo '\sqrt{2}' | gotex render -`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		if !cmd.Flags().Changed("output") {
			outputMode = cfg.Output
		}
		if !cmd.Flags().Changed("strict") {
			strictMode = cfg.Strict
		}
		if !cmd.Flags().Changed("macros") && cfg.Macros != "" {
			macroFile = cfg.Macros
		}

		path := sourceArg(args)

		if watchMode {
			if path == "" || path == "-" {
				return fmt.Errorf("--watch requires a file argument, not stdin")
			}
			return watch.File(path, func(p string) {
				if err := renderPath(p); err != nil {
					fmt.Fprintf(os.Stderr, "gotex: %v\n", err)
				}
			})
		}

		return renderPath(path)
	},
}

func init() {
	renderCmd.Flags().BoolVar(&displayMode, "display", false, "render in display style instead of text style")
	renderCmd.Flags().StringVar(&outputMode, "output", "html", "output mode: html, mathml, or both")
	renderCmd.Flags().StringVar(&strictMode, "strict", "error", "strict policy: error, warn, or ignore")
	renderCmd.Flags().StringVar(&macroFile, "macros", "", "path to a user macro file (name=expansion per line)")
	renderCmd.Flags().BoolVar(&throwOnError, "throw-on-error", true, "fail instead of rendering an error-colored fallback leaf")
	renderCmd.Flags().BoolVar(&watchMode, "watch", false, "re-render the given file on every save")
	renderCmd.Flags().BoolVar(&formatJSON, "format-json", false, "dump both trees as JSON instead of markup")
}

func sourceArg(args []string) string {
	if len(args) == 0 {
		return "-"
	}
	return args[0]
}

func renderPath(path string) error {
	source, err := readSource(path)
	if err != nil {
		return err
	}

	settings := &gotex.Settings{
		DisplayMode:  displayMode,
		ThrowOnError: throwOnError,
		Strict:       strictMode,
		Macros:       loadMacros(macroFile),
	}

	result, err := gotex.Render(source, settings)
	if err != nil {
		return fmt.Errorf("rendering: %w", err)
	}

	for _, w := range result.Warnings {
		fmt.Fprintf(os.Stderr, "gotex: warning: %s: %s\n", w.Code, w.Message)
	}

	if formatJSON {
		return printJSON(result)
	}
	return printMarkup(result)
}

func readSource(path string) (string, error) {
	if path == "" || path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return strings.TrimSpace(string(data)), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return strings.TrimSpace(string(data)), nil
}

func loadMacros(path string) map[string]string {
	if path == "" {
		return nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "gotex: reading macro file: %v\n", err)
		return nil
	}
	macros := make(map[string]string)
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		name, expansion, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		macros[strings.TrimSpace(name)] = strings.TrimSpace(expansion)
	}
	return macros
}

func printMarkup(result *gotex.Result) error {
	switch outputMode {
	case "mathml":
		fmt.Println(mathml.ToXML(result.MathML))
	case "both":
		fmt.Println(box.ToMarkup(result.HTML))
		fmt.Println(mathml.ToXML(result.MathML))
	default:
		fmt.Println(box.ToMarkup(result.HTML))
	}
	return nil
}

type jsonResult struct {
	HTML   interface{} `json:"html"`
	MathML interface{} `json:"mathml"`
}

func printJSON(result *gotex.Result) error {
	out := jsonResult{HTML: result.HTML, MathML: result.MathML}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
