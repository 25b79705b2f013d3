// Command semcore runs the registered fixture scenarios through the
// pattern-lowering pipeline and reports the result of each case,
// following the teacher's own cmd/able/main.go convention of bare fmt
// reporting and os.Exit instead of a logging framework.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"semcore/internal/config"
	"semcore/internal/fixtures"
)

func main() {
	configPath := flag.String("config", "semcore.yml", "path to the driver configuration file")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	exitCode := run(cfg, os.Stdout, os.Stderr)
	os.Exit(exitCode)
}

func loadConfig(path string) (*config.Config, error) {
	if _, err := os.Stat(path); err != nil {
		return config.Default(fixtures.Names()), nil
	}
	return config.Load(path)
}

func run(cfg *config.Config, stdout, stderr *os.File) int {
	fatalSeen := false
	for _, name := range cfg.Fixtures {
		scenario, ok := fixtures.ByName(name)
		if !ok {
			fmt.Fprintf(stderr, "semcore: unknown fixture %q\n", name)
			fatalSeen = true
			continue
		}

		fmt.Fprintf(stdout, "scenario %s\n", scenario.Name)
		results, runErr := scenario.Run()
		for _, r := range results {
			reportCase(stdout, stderr, cfg, r, &fatalSeen)
		}
		if runErr != nil && !fatalSeen {
			// Run stopped early on a diagnostic already reported above;
			// nothing further to print for this scenario.
			continue
		}
	}

	if fatalSeen {
		return 1
	}
	return 0
}

func reportCase(stdout, stderr *os.File, cfg *config.Config, r fixtures.Result, fatalSeen *bool) {
	if r.Err != nil {
		kind := classifyError(r.Err)
		severity := cfg.SeverityFor(kind)
		fmt.Fprintf(stderr, "  case %s: %s (%s)\n", r.Case.Label, r.Err, severity)
		if severity == config.SeverityFatal {
			*fatalSeen = true
		}
		return
	}
	fmt.Fprintf(stdout, "  case %s: exhaustive=%v\n", r.Case.Label, r.Lowered.Exhaustive)
}

// classifyError maps a lowering error's message onto one of the
// driver's known diagnostic kinds, falling back to the
// non-exhaustive-match bucket when nothing more specific matches; this is a coarse,
// string-based classification because trace.Error carries only a
// message and a node, not a structured kind (§7).
func classifyError(err error) string {
	msg := err.Error()
	switch {
	case strings.Contains(msg, "unreachable"):
		return config.DiagnosticUnreachablePattern
	case strings.Contains(msg, "Wildcard"):
		return config.DiagnosticDuplicateWildcard
	case strings.Contains(msg, "argument(s)"):
		return config.DiagnosticArityMismatch
	case strings.Contains(msg, "does not match"):
		return config.DiagnosticTypeMismatch
	default:
		return config.DiagnosticNonExhaustiveMatch
	}
}
