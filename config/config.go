// Package config holds fdiff's configuration and terminal output helpers.
package config

import (
	"errors"
	"fmt"

	"github.com/hashicorp/go-multierror"
	"github.com/imdario/mergo"
	"github.com/samber/lo"
)

const (
	BackendGit   = "git"
	BackendGoGit = "go-git"

	FormatText     = "text"
	FormatJSON     = "json"
	FormatYAML     = "yaml"
	FormatTemplate = "template"

	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

type Config struct {
	Verbose           bool         `json:"verbose,omitempty"`
	Quiet             bool         `json:"quiet,omitempty"`
	Exclude           []string     `json:"exclude,omitempty"`
	ExcludeSets       []string     `json:"exclude_sets,omitempty"`
	CustomExcludeSets []ExcludeSet `json:"custom_exclude_sets,omitempty"`
	Backend           string       `json:"backend,omitempty"`
	Format            string       `json:"format,omitempty"`
	Template          string       `json:"template,omitempty"`
	Color             string       `json:"color,omitempty"`
	Term              TerminalIO   `json:"-"`
}

func New(overrides *Config) Config {
	return NewWithTerminalIO(overrides, nil)
}

func NewWithTerminalIO(overrides *Config, termio *TerminalIO) Config {
	cfg := GetDefault()
	if termio == nil {
		termio = &DefaultTermIO
	}
	cfg.Term = *termio

	if overrides != nil {
		if err := mergo.Merge(&cfg, overrides, mergo.WithOverride); err != nil {
			panic(err)
		}
	}
	return cfg
}

// Validate reports every invalid setting at once.
func (c Config) Validate() error {
	var errs *multierror.Error
	if !oneOf(c.Backend, []string{BackendGit, BackendGoGit}) {
		errs = multierror.Append(errs, fmt.Errorf("config: unknown backend %q", c.Backend))
	}
	if !oneOf(c.Format, []string{FormatText, FormatJSON, FormatYAML, FormatTemplate}) {
		errs = multierror.Append(errs, fmt.Errorf("config: unknown format %q", c.Format))
	}
	if c.Format == FormatTemplate && c.Template == "" {
		errs = multierror.Append(errs, errors.New("config: format \"template\" requires a template"))
	}
	if !oneOf(c.Color, []string{ColorAuto, ColorAlways, ColorNever}) {
		errs = multierror.Append(errs, fmt.Errorf("config: unknown color mode %q", c.Color))
	}
	if c.Verbose && c.Quiet {
		errs = multierror.Append(errs, errors.New("config: verbose and quiet are mutually exclusive"))
	}
	for _, name := range c.ExcludeSets {
		if c.getExcludeSet(name) == nil {
			errs = multierror.Append(errs, fmt.Errorf("config: unknown exclude set %q", name))
		}
	}
	for _, set := range c.CustomExcludeSets {
		if set.Name == "" {
			errs = multierror.Append(errs, errors.New("config: custom exclude set has no name"))
		}
	}
	return errs.ErrorOrNil()
}

func (c Config) Printf(msg string, args ...interface{}) {
	if c.Quiet {
		return
	}
	fmt.Fprintf(c.Term.Stdout, msg+"\n", args...)
}

func (c Config) Errorf(msg string, args ...interface{}) {
	fmt.Fprintf(c.Term.Stderr, msg+"\n", args...)
}

// Debugf writes to stderr so debug output never mixes with results.
func (c Config) Debugf(msg string, args ...interface{}) {
	if !c.Verbose {
		return
	}
	c.Errorf(msg, args...)
}

// GetExclusions returns the configured exclusion terms followed by the terms
// of every enabled exclude set, without duplicates.
func (c Config) GetExclusions() []string {
	terms := append([]string{}, c.Exclude...)
	for _, set := range c.GetExcludeSets() {
		terms = append(terms, set.Terms...)
	}
	return lo.Uniq(terms)
}

// GetExcludeSets returns the enabled exclude sets. Custom sets shadow
// builtin sets of the same name.
func (c Config) GetExcludeSets() []*ExcludeSet {
	var sets []*ExcludeSet
	for _, name := range c.ExcludeSets {
		if set := c.getExcludeSet(name); set != nil {
			sets = append(sets, set)
		}
	}
	return sets
}

// AllExcludeSets returns the builtin sets followed by custom ones.
func (c Config) AllExcludeSets() []ExcludeSet {
	all := append([]ExcludeSet{}, builtinExcludeSets...)
	return append(all, c.CustomExcludeSets...)
}

func (c Config) getExcludeSet(name string) *ExcludeSet {
	for _, set := range c.CustomExcludeSets {
		if set.Name == name {
			s := set
			return &s
		}
	}
	return getBuiltinExcludeSet(name)
}

func oneOf(s string, l []string) bool {
	for _, cand := range l {
		if s == cand {
			return true
		}
	}
	return false
}
