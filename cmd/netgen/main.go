// Command netgen generates random minimum-cost-flow, maximum-flow, and
// assignment problem instances in DIMACS flow-problem text format,
// bit-exact with Schlenker's 1989 C translation of NETGEN when the
// default RNG is selected.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/decred/slog"
	flags "github.com/jessevdk/go-flags"

	"github.com/flowgen/netgen/genlog"
)

// version is the module's release tag; it has no bearing on generator
// output and exists purely for the -v flag.
const version = "0.1.0"

// stdout/stderr are package vars so tests can redirect them without
// touching the real process streams.
var (
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

// globalOptions holds the flags shared by both subcommands.
type globalOptions struct {
	File    string `short:"f" long:"file" description:"write output to file instead of stdout"`
	Quiet   bool   `short:"q" long:"quiet" description:"suppress the 'wrote <file>' confirmation"`
	Version bool   `short:"v" long:"version" description:"print version and exit"`
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	global := &globalOptions{}
	parser := flags.NewParser(global, flags.HelpFlag|flags.PassDoubleDash)
	parser.SubcommandsOptional = true

	nc := &netgenCommand{global: global}
	gc := &gridCommand{global: global}
	if _, err := parser.AddCommand("netgen", "generate a NETGEN-style min-cost-flow/max-flow/assignment instance", "", nc); err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	if _, err := parser.AddCommand("grid", "generate a grid-structured transportation network", "", gc); err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	remaining, err := parser.ParseArgs(args)
	if err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			fmt.Fprintln(stdout, err)
			return 0
		}
		fmt.Fprintln(stderr, err)
		return 1
	}

	if global.Version {
		fmt.Fprintf(stdout, "netgen %s\n", version)
		return 0
	}

	if parser.Active == nil {
		fmt.Fprintln(stderr, "expected a command: netgen or grid")
		return 1
	}

	if len(remaining) > 0 {
		fmt.Fprintf(stderr, "unexpected extra arguments: %v\n", remaining)
		return 1
	}

	// ParseArgs already invoked the matched command's Execute above, so by
	// this point the run either succeeded or its error was returned by
	// ParseArgs and handled in the err branch.
	return 0
}

// commandLogger builds the per-run subsystem logger, or nil when -q
// suppresses it entirely. There is no separate verbose flag: -v is
// version-only, so the logger always sits at info level. The subcommands'
// phase hooks log at debug level, so their phase lines are filtered out.
func commandLogger(global *globalOptions) slog.Logger {
	if global.Quiet {
		return nil
	}
	backend := genlog.NewBackend(stderr)
	return backend.Logger("NTGN", genlog.VerbosityLevel(false, global.Quiet))
}
