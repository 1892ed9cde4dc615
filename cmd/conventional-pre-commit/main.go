package main

import (
	_ "embed"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/hgrand/pre-commit-hooks/internal/commitmsg"
	"github.com/hgrand/pre-commit-hooks/internal/config"
	"github.com/hgrand/pre-commit-hooks/internal/gitfiles"
)

const (
	resultSuccess = 0
	resultFail    = 1
)

// ANSI escapes for the operator-facing guidance text.
const (
	colorLBlue   = "\033[00;34m"
	colorLRed    = "\033[01;31m"
	colorYellow  = "\033[00;33m"
	colorRestore = "\033[0m"
)

//go:embed config_default.yaml
var defaultConfigYAML []byte

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// options are the effective settings after merging built-in defaults, the
// config file, and command-line flags, in that order of precedence.
type options struct {
	types         []string
	optionalScope bool
	limitTo       []string
}

func run(argv []string, stdout, stderr io.Writer) int {
	if os.Getenv("SKIP_COMMIT_CHECK") != "" {
		return resultSuccess
	}

	fs := flag.NewFlagSet("conventional-pre-commit", flag.ContinueOnError)
	fs.SetOutput(stderr)
	typesFlag := fs.String("types", "", "comma-separated list of allowed commit types")
	limitToFlag := fs.String("limit-to", "", "comma-separated path prefixes; skip the check when the commit touches none of them")
	forceScope := fs.Bool("force-scope", false, "require a (scope) in the commit header")
	configPath := fs.String("config", "", "explicit config file path")
	initMode := fs.Bool("init", false, "write a default .commit-check.yaml and exit")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: conventional-pre-commit [flags] MSG_FILE")
		fmt.Fprintln(stderr, "Check a git commit message for conventional commits formatting.")
		fs.PrintDefaults()
	}
	if err := fs.Parse(argv); err != nil {
		return resultFail
	}

	if *initMode {
		target := "."
		if fs.NArg() > 0 {
			target = fs.Arg(0)
		}
		path, err := writeDefaultConfig(target)
		if err != nil {
			fmt.Fprintln(stderr, "init:", err)
			return resultFail
		}
		fmt.Fprintln(stdout, "wrote", path)
		return resultSuccess
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return resultFail
	}

	opts, workDir, err := resolveOptions(fs, *typesFlag, *limitToFlag, *forceScope, *configPath)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return resultFail
	}

	data, err := os.ReadFile(fs.Arg(0))
	if err != nil {
		fmt.Fprintln(stderr, "reading commit message:", err)
		return resultFail
	}
	if !utf8.Valid(data) {
		printEncodingFailure(stdout)
		return resultFail
	}
	message := string(data)

	if len(opts.limitTo) > 0 {
		touched := gitfiles.TouchedPaths(message, workDir)
		if len(gitfiles.FilterByPrefixes(touched, opts.limitTo)) == 0 {
			// Commit is outside the configured subtrees.
			return resultSuccess
		}
	}

	if commitmsg.IsConventional(message, opts.types, opts.optionalScope) {
		return resultSuccess
	}
	printFailure(stdout, message, opts.types)
	return resultFail
}

// resolveOptions merges the config file (explicit -config path, or one
// discovered by walking up from the working directory) with the flags that
// were actually set. It also returns the directory the git fallback query
// should run in: the directory containing the discovered config, or the
// current directory when there is none.
func resolveOptions(fs *flag.FlagSet, typesFlag, limitToFlag string, forceScope bool, configPath string) (options, string, error) {
	opts := options{types: commitmsg.DefaultTypes, optionalScope: true}
	workDir := ""

	var cfg *config.Config
	if configPath != "" {
		c, err := config.Load(configPath)
		if err != nil {
			return opts, "", fmt.Errorf("loading config: %w", err)
		}
		cfg = c
		workDir = filepath.Dir(configPath)
	} else if p, dir, err := config.FindConfigPath(); err == nil {
		c, err := config.Load(p)
		if err != nil {
			return opts, "", fmt.Errorf("loading config: %w", err)
		}
		cfg = c
		workDir = dir
	}

	if cfg != nil {
		if len(cfg.Types) > 0 {
			opts.types = cfg.Types
		}
		if cfg.ForceScope {
			opts.optionalScope = false
		}
		if len(cfg.LimitTo) > 0 {
			opts.limitTo = cfg.LimitTo
		}
	}

	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	if set["types"] {
		opts.types = splitList(typesFlag)
	}
	if set["force-scope"] {
		opts.optionalScope = !forceScope
	}
	if set["limit-to"] {
		opts.limitTo = splitList(limitToFlag)
	}
	return opts, workDir, nil
}

// splitList splits a comma-joined flag value, dropping empty entries.
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// writeDefaultConfig writes the commented default config into dir and
// returns the written path. It refuses to clobber an existing file.
func writeDefaultConfig(dir string) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	path := filepath.Join(dir, ".commit-check.yaml")
	if _, err := os.Stat(path); err == nil {
		return "", fmt.Errorf("%s already exists", path)
	}
	if err := os.WriteFile(path, defaultConfigYAML, 0644); err != nil {
		return "", err
	}
	return path, nil
}

func printFailure(w io.Writer, message string, types []string) {
	fmt.Fprintf(w, "\n%s[Bad commit message] >>%s %s\n", colorLRed, colorRestore, message)
	fmt.Fprintf(w, "%sYour commit message does not follow conventional commits formatting%s\n", colorYellow, colorRestore)
	fmt.Fprintf(w, "%shttps://www.conventionalcommits.org%s\n\n", colorLBlue, colorRestore)
	fmt.Fprintf(w, "%sConventional commits start with one of the below types, followed by a colon,\n", colorYellow)
	fmt.Fprintf(w, "followed by the commit message:%s\n\n", colorRestore)
	fmt.Fprintf(w, "    %s\n\n", strings.Join(commitmsg.ConventionalTypes(types), ", "))
	fmt.Fprintf(w, "%sExample commit message adding a feature:%s\n\n", colorYellow, colorRestore)
	fmt.Fprintf(w, "    feat: enable `/metrics` endpoint for prometheus\n\n")
	fmt.Fprintf(w, "%sExample commit message fixing an issue:%s\n\n", colorYellow, colorRestore)
	fmt.Fprintf(w, "    fix: remove infinite loop\n\n")
	fmt.Fprintf(w, "%sExample commit with scope in parentheses after the type for more context:%s\n\n", colorYellow, colorRestore)
	fmt.Fprintf(w, "    fix(atlantis): forbid running `atlantis apply` w/o pr approval\n")
}

func printEncodingFailure(w io.Writer) {
	fmt.Fprintf(w, "\n%s[Bad commit message encoding]%s\n\n", colorLRed, colorRestore)
	fmt.Fprintf(w, "%sYour commit message could not be decoded.%s\n", colorYellow, colorRestore)
	fmt.Fprintf(w, "%sUTF-8%s encoding is assumed, please configure git to write commit messages in UTF-8.\n", colorYellow, colorRestore)
	fmt.Fprintf(w, "See %shttps://git-scm.com/docs/git-commit/#_discussion%s for more.\n", colorLBlue, colorRestore)
}
