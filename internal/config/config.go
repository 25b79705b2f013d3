// Package config decodes semcore.yml, the driver's own configuration
// surface: which fixture scenarios a batch run analyzes and which of
// the pattern core's diagnostics are treated as fatal versus merely
// warned about. The decode-then-normalize shape mirrors the teacher's
// package-manifest decoder exactly, repointed at this repository's
// narrower surface instead of build targets and dependencies.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Severity controls whether a diagnostic kind aborts a batch run or is
// only reported.
type Severity string

const (
	SeverityFatal Severity = "fatal"
	SeverityWarn  Severity = "warn"
)

// IsValid reports whether s is a recognized severity.
func (s Severity) IsValid() bool {
	return s == SeverityFatal || s == SeverityWarn
}

// Diagnostic kinds a run can individually tune, matching §7's error
// kinds; each is fatal unless the configuration sets it to warn.
const (
	DiagnosticUnreachablePattern = "unreachable-pattern"
	DiagnosticNonExhaustiveMatch = "non-exhaustive-match"
	DiagnosticArityMismatch      = "arity-mismatch"
	DiagnosticTypeMismatch       = "type-mismatch"
	DiagnosticDuplicateWildcard  = "duplicate-wildcard"
)

var knownDiagnostics = map[string]bool{
	DiagnosticUnreachablePattern: true,
	DiagnosticNonExhaustiveMatch: true,
	DiagnosticArityMismatch:      true,
	DiagnosticTypeMismatch:       true,
	DiagnosticDuplicateWildcard:  true,
}

// Config is the parsed, validated contents of semcore.yml.
type Config struct {
	Path        string
	Fixtures    []string
	Diagnostics map[string]Severity
}

// ValidationError aggregates every configuration problem found, rather
// than failing on the first one, matching the teacher's manifest
// validator's shape.
type ValidationError struct {
	Issues []string
}

func (e *ValidationError) Error() string {
	if len(e.Issues) == 0 {
		return "config: invalid configuration"
	}
	var b strings.Builder
	b.WriteString("config validation failed:")
	for _, issue := range e.Issues {
		b.WriteString("\n- ")
		b.WriteString(issue)
	}
	return b.String()
}

// Default returns the configuration a run uses when no semcore.yml is
// present: every registered fixture, every diagnostic fatal.
func Default(allFixtures []string) *Config {
	diags := make(map[string]Severity, len(knownDiagnostics))
	for kind := range knownDiagnostics {
		diags[kind] = SeverityFatal
	}
	return &Config{Fixtures: append([]string(nil), allFixtures...), Diagnostics: diags}
}

// Load parses semcore.yml from disk, returning a validated Config with
// every omitted diagnostic severity defaulted to fatal.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config: empty path")
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("config: resolve %s: %w", path, err)
	}
	file, err := os.Open(absPath)
	if err != nil {
		return nil, fmt.Errorf("config: open %s: %w", absPath, err)
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)

	var raw configFile
	if err := decoder.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("config: %s is empty", absPath)
		}
		return nil, fmt.Errorf("config: parse %s: %w", absPath, err)
	}

	cfg := raw.toConfig(absPath)
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	var errs ValidationError
	seen := make(map[string]struct{}, len(c.Fixtures))
	for _, name := range c.Fixtures {
		if name == "" {
			errs.Issues = append(errs.Issues, "fixtures must not contain empty names")
			continue
		}
		if _, dup := seen[name]; dup {
			errs.Issues = append(errs.Issues, fmt.Sprintf("fixture %q listed more than once", name))
			continue
		}
		seen[name] = struct{}{}
	}
	for kind, sev := range c.Diagnostics {
		if !knownDiagnostics[kind] {
			errs.Issues = append(errs.Issues, fmt.Sprintf("diagnostics.%s: unknown diagnostic kind", kind))
		}
		if !sev.IsValid() {
			errs.Issues = append(errs.Issues, fmt.Sprintf("diagnostics.%s: severity must be %q or %q, got %q", kind, SeverityFatal, SeverityWarn, sev))
		}
	}
	if len(errs.Issues) > 0 {
		return &errs
	}
	return nil
}

// SeverityFor returns the configured severity for kind, defaulting to
// fatal when unset — the conservative default matching §7, where every
// error kind described there is fatal unless a run explicitly opts
// into treating it as a warning.
func (c *Config) SeverityFor(kind string) Severity {
	if c == nil {
		return SeverityFatal
	}
	if sev, ok := c.Diagnostics[kind]; ok {
		return sev
	}
	return SeverityFatal
}

type configFile struct {
	Fixtures    stringList          `yaml:"fixtures"`
	Diagnostics map[string]Severity `yaml:"diagnostics"`
}

type stringList []string

func (l *stringList) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		if value.Tag == "!!null" || strings.TrimSpace(value.Value) == "" {
			*l = nil
			return nil
		}
		*l = stringList{strings.TrimSpace(value.Value)}
		return nil
	case yaml.SequenceNode:
		items := make([]string, 0, len(value.Content))
		for _, node := range value.Content {
			var str string
			if err := node.Decode(&str); err != nil {
				return err
			}
			str = strings.TrimSpace(str)
			if str == "" {
				continue
			}
			items = append(items, str)
		}
		*l = stringList(items)
		return nil
	case 0:
		*l = nil
		return nil
	default:
		return fmt.Errorf("config: expected string or sequence for fixtures but found %s", value.ShortTag())
	}
}

func (f configFile) toConfig(path string) *Config {
	diags := make(map[string]Severity, len(f.Diagnostics))
	for kind, sev := range f.Diagnostics {
		diags[strings.TrimSpace(kind)] = Severity(strings.TrimSpace(string(sev)))
	}
	return &Config{
		Path:        path,
		Fixtures:    append([]string(nil), f.Fixtures...),
		Diagnostics: diags,
	}
}
