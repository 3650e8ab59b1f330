package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ghodss/yaml"
	"github.com/imdario/mergo"
	"github.com/spf13/pflag"

	"github.com/jeffrom/fdiff/config"
	"github.com/jeffrom/fdiff/runner"
	"github.com/jeffrom/fdiff/vcs"
	"github.com/jeffrom/fdiff/vcs/gitcli"
	"github.com/jeffrom/fdiff/vcs/gogit"
)

// ConfigFileName is looked up in the repository path and its parents.
const ConfigFileName = ".fdiff.yaml"

var (
	// overridden by go build -X
	Version = "dev"
)

func main() {
	if err := run(os.Args, nil); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(rawArgs []string, termio *config.TerminalIO) error {
	cfg := config.NewWithTerminalIO(nil, termio)
	flagCfg := config.Config{}

	var help bool
	var version bool
	var cfgFile string
	var printConfig bool
	var listExcludeSets bool
	var check bool
	var stats bool
	flags := pflag.NewFlagSet("fdiff", pflag.ContinueOnError)
	flags.SetOutput(cfg.Term.Stderr)
	flags.BoolVarP(&help, "help", "h", false, "show help")
	flags.BoolVarP(&version, "version", "V", false, "print version and exit")
	flags.StringArrayVarP(&flagCfg.Exclude, "exclude", "e", nil, "hide commits whose summary contains `term`")
	flags.StringArrayVarP(&flagCfg.ExcludeSets, "exclude-set", "x", nil, "enable the exclude set `name`d")
	flags.StringVarP(&flagCfg.Format, "format", "f", "", "output `format` (text, json, yaml, template)")
	flags.StringVarP(&flagCfg.Template, "template", "t", "", "go text/template rendered per commit (implies --format template)")
	flags.StringVar(&flagCfg.Color, "color", "", "colorize text output (auto, always, never)")
	flags.StringVar(&flagCfg.Backend, "backend", "", "read history with `backend` (git, go-git)")
	flags.BoolVarP(&check, "check", "C", false, "exit non-zero if branch1 has commits branch2 lacks")
	flags.BoolVarP(&stats, "stats", "S", false, "print counts of the missing commits instead of the commits")
	flags.BoolVarP(&flagCfg.Verbose, "verbose", "v", false, "print additional debugging info")
	flags.BoolVarP(&flagCfg.Quiet, "quiet", "q", false, "print as little as necessary")
	flags.StringVarP(&cfgFile, "config", "c", "", "specify config `file`")
	flags.BoolVar(&printConfig, "print-config", false, "print the effective configuration and exit")
	flags.BoolVar(&listExcludeSets, "list-exclude-sets", false, "describe the available exclude sets and exit")

	if err := flags.Parse(rawArgs); err != nil {
		return err
	}
	args := flags.Args()
	if len(args) > 0 {
		args = args[1:]
	}

	if help {
		usage(cfg, flags)
		return nil
	}
	if version {
		cfg.Printf("%s", Version)
		return nil
	}
	if flagCfg.Template != "" && flagCfg.Format == "" {
		flagCfg.Format = config.FormatTemplate
	}

	wd, err := os.Getwd()
	if err != nil {
		return err
	}
	// the repository defaults to the working directory. It's resolved here
	// so nothing below reads the process environment.
	repoPath := wd
	if len(args) > 2 {
		repoPath = args[2]
	}

	fileCfg, err := readConfigYAML(cfgFile, repoPath)
	if err != nil {
		return err
	}
	if fileCfg != nil {
		if err := mergo.Merge(&cfg, fileCfg, mergo.WithOverride); err != nil {
			return err
		}
	}
	if err := mergo.Merge(&cfg, flagCfg, mergo.WithOverride, mergo.WithAppendSlice); err != nil {
		return err
	}
	if cfg.Verbose {
		b, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			return err
		}
		cfg.Debugf("config: %s", string(b))
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	// done setting up config

	if printConfig {
		b, err := yaml.Marshal(cfg)
		if err != nil {
			return err
		}
		fmt.Fprintf(cfg.Term.Stdout, "%s", b)
		return nil
	}
	if listExcludeSets {
		for _, set := range cfg.AllExcludeSets() {
			if err := set.TextSummary(cfg.Term.Stdout); err != nil {
				return err
			}
			fmt.Fprintln(cfg.Term.Stdout)
		}
		return nil
	}

	if len(args) < 2 || len(args) > 3 {
		usage(cfg, flags)
		return fmt.Errorf("expected 2 or 3 arguments, got %d", len(args))
	}
	branch, baseline := args[0], args[1]

	rnr, err := runner.New(cfg, newVCS(cfg, wd))
	if err != nil {
		return err
	}
	ctx := context.Background()

	if check {
		err := rnr.Check(ctx, branch, baseline, repoPath)
		if err != nil {
			mce := runner.MissingCommitsError{}
			if errors.As(err, &mce) && !cfg.Quiet {
				if err := mce.WriteFailure(cfg.Term.Stdout); err != nil {
					cfg.Errorf("failed to write missing commits: %v", err)
				}
			}
			return err
		}
		cfg.Printf("OK")
		return nil
	}

	rep, err := rnr.Reconcile(ctx, branch, baseline, repoPath)
	if err != nil {
		return err
	}
	if stats {
		return runner.NewStats(rep.Commits).TextSummary(cfg.Term.Stdout)
	}
	return rnr.Write(cfg.Term.Stdout, rep)
}

func newVCS(cfg config.Config, wd string) vcs.Interface {
	if cfg.Backend == config.BackendGoGit {
		return gogit.New(cfg, wd)
	}
	return gitcli.New(cfg, wd)
}

func usage(cfg config.Config, flags *pflag.FlagSet) {
	fmt.Fprintf(cfg.Term.Stdout, `%s [flags] <branch1> <branch2> [repo_path]

Print the commits in branch1 that aren't present in branch2. Commits are
matched by summary, so cherry-picked and rebased commits count as present.

FLAGS
%s
CONFIGURATION

Settings are read from %s in the repository path or any parent directory,
or from the file given with --config. Flags take precedence.

EXAMPLES

# what does feature have that main doesn't?
$ fdiff feature main

# ignore merges and anything mentioning "wip"
$ fdiff -x merges -e wip release/1.2 main ~/src/project

# fail in CI when a hotfix branch wasn't merged back
$ fdiff --check hotfix main
`, "fdiff", flags.FlagUsages(), ConfigFileName)
}

func readConfigYAML(p string, start string) (*config.Config, error) {
	if p != "" {
		return decodeConfigFile(p)
	}

	dir, err := filepath.Abs(start)
	if err != nil {
		return nil, err
	}
	for {
		cfg, err := decodeConfigFile(filepath.Join(dir, ConfigFileName))
		if err == nil {
			return cfg, nil
		}
		if !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return nil, nil
		}
		dir = parent
	}
}

func decodeConfigFile(p string) (*config.Config, error) {
	b, err := os.ReadFile(p)
	if err != nil {
		return nil, err
	}
	cfg := &config.Config{}
	if err := yaml.Unmarshal(b, cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", p, err)
	}
	return cfg, nil
}
