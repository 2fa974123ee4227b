package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stigoleg/afk/internal/cli"
)

// This small tool generates shell completions and a man page from the afk command.
// Completions come from cobra; the man page is minimal roff mirroring --help.

const appName = "afk"

func main() {
	root := cli.NewRootCommand("")

	if err := writeCompletions(root, filepath.Join("docs", "completions")); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := writeMan(root, filepath.Join("docs", "man")); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func writeCompletions(root *cobra.Command, dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	gens := []struct {
		file string
		gen  func(string) error
	}{
		{appName + ".bash", func(p string) error { return root.GenBashCompletionFileV2(p, true) }},
		{appName + ".zsh", root.GenZshCompletionFile},
		{appName + ".fish", func(p string) error { return root.GenFishCompletionFile(p, true) }},
	}
	for _, g := range gens {
		if err := g.gen(filepath.Join(dir, g.file)); err != nil {
			return fmt.Errorf("writing %s: %w", g.file, err)
		}
	}
	return nil
}

func writeMan(root *cobra.Command, dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, appName+".1"), []byte(manPage(root)), 0o644)
}

func manPage(root *cobra.Command) string {
	var b strings.Builder
	b.WriteString(".TH \"" + strings.ToUpper(appName) + "\" \"1\" \"\" \"afk\" \"User Commands\"\n")
	b.WriteString(".SH NAME\n" + appName + " \\- " + roff(root.Short) + "\n")
	b.WriteString(".SH SYNOPSIS\n.B " + appName + "\n[flags]\n")
	b.WriteString(".SH DESCRIPTION\n" + roff(root.Long) + "\n")
	b.WriteString(".SH OPTIONS\n")

	root.InitDefaultHelpFlag()
	root.InitDefaultVersionFlag()
	root.Flags().VisitAll(func(f *pflag.Flag) {
		b.WriteString(".TP\n\\fB" + flagNames(f) + "\\fR\n" + roff(f.Usage) + "\n")
	})

	b.WriteString(".SH ENVIRONMENT\n")
	b.WriteString("Every flag can be set as AFK_<FLAG>, upper-cased with dashes as underscores, e.g. AFK_MAX_DELAY.\n")
	b.WriteString(".SH EXAMPLES\n")
	b.WriteString(".TP\n\\fB" + appName + " \\-v\\fR\nWander with the default bounds and report each move.\n")
	b.WriteString(".TP\n\\fB" + appName + " \\-\\-duration 2h30m\\fR\nStop after 2 hours 30 minutes.\n")
	b.WriteString(".TP\n\\fB" + appName + " \\-\\-until 17:30 \\-\\-tui\\fR\nShow the status screen until 5:30 PM.\n")
	return b.String()
}

func flagNames(f *pflag.Flag) string {
	names := "\\-\\-" + roff(f.Name)
	if f.Shorthand != "" {
		names = "\\-" + f.Shorthand + ", " + names
	}
	if t := f.Value.Type(); t != "bool" && t != "count" {
		names += " <" + t + ">"
	}
	return names
}

func roff(s string) string {
	return strings.ReplaceAll(strings.ReplaceAll(s, "\\", "\\\\"), "-", "\\-")
}
