// Package main provides the CLI entrypoint for ripasso.
package main

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/ripasso/ripasso/internal/config"
	"github.com/ripasso/ripasso/internal/dataset"
	"github.com/ripasso/ripasso/internal/session"
	"github.com/ripasso/ripasso/internal/tui"
)

const (
	defaultMode      = string(session.ModeTyping)
	defaultLang      = dataset.DefaultLang
	defaultRoundSize = session.DefaultRoundSize
)

var (
	practiceMode      string
	practiceLang      string
	practiceRoundSize int
	practiceDataDir   string

	datasetsDataDir string
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "ripasso",
		Short:         "TUI vocabulary and verb conjugation trainer",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runPracticeCmd,
	}

	rootCmd.Flags().StringVar(&practiceMode, "mode", defaultMode, "practice mode: typing or conjugation")
	rootCmd.Flags().StringVar(&practiceLang, "lang", defaultLang, "language code (default: it)")
	rootCmd.Flags().IntVar(&practiceRoundSize, "round-size", defaultRoundSize, "words per typing round")
	rootCmd.Flags().StringVar(&practiceDataDir, "data-dir", "", "dataset directory (default: XDG data dir)")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newDatasetsCmd())

	return rootCmd
}

func runPracticeCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyConfig(cmd, "mode", &practiceMode, fileCfg.Practice.Mode)
	applyConfig(cmd, "lang", &practiceLang, fileCfg.Practice.Lang)
	applyConfig(cmd, "round-size", &practiceRoundSize, fileCfg.Practice.RoundSize)
	applyConfig(cmd, "data-dir", &practiceDataDir, fileCfg.Practice.DataDir)

	mode, err := session.ParseMode(practiceMode)
	if err != nil {
		return err
	}
	if practiceRoundSize <= 0 {
		return fmt.Errorf("--round-size must be > 0")
	}
	if practiceDataDir == "" {
		practiceDataDir = config.DefaultDataDir()
	}

	// Load failures degrade to empty datasets: the session layer refuses to
	// start a round on an empty dataset and the TUI shows that inline.
	words, wordsSource, err := dataset.LoadWordsWithFallback(config.WordsPath(practiceDataDir, practiceLang), practiceLang)
	if err != nil {
		logErrf("failed to load word dataset: %v\n", err)
		words = nil
	}
	conjugations, skipped, conjSource, err := dataset.LoadConjugationsWithFallback(config.ConjugationsPath(practiceDataDir, practiceLang), practiceLang)
	if err != nil {
		logErrf("failed to load conjugation dataset: %v\n", err)
		conjugations = nil
	}
	for _, serr := range skipped {
		logErrf("skipping entry: %v\n", serr)
	}
	if wordsSource == dataset.SourceEmbedded || conjSource == dataset.SourceEmbedded {
		logErrf("using embedded starter datasets; put your own under %s\n", practiceDataDir)
	}

	ctrl := session.NewController(words, conjugations, practiceRoundSize, nil)
	if err := ctrl.SelectMode(mode); err != nil {
		return err
	}

	model := tui.NewModel(ctrl)
	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func newDatasetsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "datasets",
		Short: "List and validate dataset files",
		Args:  cobra.NoArgs,
		RunE:  runDatasetsCmd,
	}
	cmd.Flags().StringVar(&datasetsDataDir, "data-dir", "", "dataset directory (default: XDG data dir)")
	return cmd
}

func runDatasetsCmd(cmd *cobra.Command, _ []string) error {
	dir := datasetsDataDir
	if dir == "" {
		dir = config.DefaultDataDir()
	}
	out := cmd.OutOrStdout()

	langs, err := datasetLangs(dir)
	if err != nil {
		return err
	}
	if len(langs) == 0 {
		if _, err := fmt.Fprintf(out, "No dataset files under %s.\nThe embedded %q starter datasets are used until you add your own.\n", dir, defaultLang); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}

	width := outputWidth()
	for _, lang := range langs {
		if _, err := fmt.Fprintf(out, "%s:\n", lang); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		wordsPath := config.WordsPath(dir, lang)
		if words, err := dataset.LoadWords(wordsPath); err == nil {
			if _, err := fmt.Fprintf(out, "  words: %d\n", len(words)); err != nil {
				return fmt.Errorf("failed to write output: %w", err)
			}
		} else if !errors.Is(err, os.ErrNotExist) {
			logErrf("failed to load %s: %v\n", wordsPath, err)
		}
		conjPath := config.ConjugationsPath(dir, lang)
		entries, skipped, err := dataset.LoadConjugations(conjPath)
		if err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				logErrf("failed to load %s: %v\n", conjPath, err)
			}
			continue
		}
		if _, err := fmt.Fprintf(out, "  conjugations: %d valid, %d malformed\n", len(entries), len(skipped)); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		for _, serr := range skipped {
			if _, err := fmt.Fprintf(out, "    %v\n", serr); err != nil {
				return fmt.Errorf("failed to write output: %w", err)
			}
		}
		verbs := make([]string, 0, len(entries))
		for _, e := range entries {
			verbs = append(verbs, e.Verb)
		}
		for _, line := range wrapList(verbs, width-4) {
			if _, err := fmt.Fprintf(out, "    %s\n", line); err != nil {
				return fmt.Errorf("failed to write output: %w", err)
			}
		}
	}
	return nil
}

// datasetLangs scans the directory for words.<lang>.json and
// conjugations.<lang>.json files.
func datasetLangs(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read dataset directory: %w", err)
	}
	set := map[string]struct{}{}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.HasSuffix(name, ".json") {
			continue
		}
		base := strings.TrimSuffix(name, ".json")
		for _, prefix := range []string{"words.", "conjugations."} {
			if strings.HasPrefix(base, prefix) {
				set[strings.TrimPrefix(base, prefix)] = struct{}{}
			}
		}
	}
	langs := make([]string, 0, len(set))
	for lang := range set {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs, nil
}

// outputWidth returns the terminal width, falling back to 80 when stdout is
// not a terminal.
func outputWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80
	}
	return width
}

func wrapList(items []string, width int) []string {
	if width < 10 {
		width = 10
	}
	var lines []string
	var line string
	for _, item := range items {
		if line == "" {
			line = item
			continue
		}
		if len(line)+2+len(item) > width {
			lines = append(lines, line)
			line = item
			continue
		}
		line += ", " + item
	}
	if line != "" {
		lines = append(lines, line)
	}
	return lines
}

func applyConfig[T any](cmd *cobra.Command, name string, target, value *T) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# ripasso configuration
# Uncomment a value to enable it. CLI flags override config values.

[practice]
# mode = %q            # typing or conjugation
# lang = %q               # Language code
# round-size = %d         # Words per typing round
# data-dir = ""            # Dataset directory (default: XDG data dir)
`,
		defaultMode,
		defaultLang,
		defaultRoundSize,
	)
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
