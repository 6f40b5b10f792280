// Command modregex prints regular expressions matching base-b numerals
// congruent to r modulo d.
//
// One-shot:
//
//	modregex -d 3 -b 2 -r 1
//
// Without -d it starts the interactive loop: enter "divisor base remainder"
// per line, add any fourth token to write the result to the -o file, and
// "q" to quit.
package main

import (
	"flag"
	"fmt"
	"os"

	u "github.com/araddon/gou"

	"github.com/katalvlaran/modregex"
	"github.com/katalvlaran/modregex/eliminate"
	"github.com/katalvlaran/modregex/internal/repl"
)

var (
	divisor   *int    = flag.Int("d", -1, "divisor; when unset the interactive loop starts")
	base      *int    = flag.Int("b", 10, "numeral base [0..16]")
	remainder *int    = flag.Int("r", 0, "target remainder, less than the divisor")
	output    *string = flag.String("o", repl.DefaultOutput, "file receiving redirected expressions")
	write     *bool   = flag.Bool("w", false, "one-shot mode: write the expression to -o instead of stdout")
	order     *string = flag.String("order", eliminate.OrderDescending, "elimination order [descending|furthest]")
	logLevel  *string = flag.String("loglevel", "warn", "log level [debug|info|warn|error]")
)

func main() {
	flag.Parse()

	u.SetupLogging(*logLevel)
	u.SetColorIfTerminal()

	strategy, err := eliminate.ParseOrder(*order)
	if err != nil {
		u.Errorf("%v", err)
		os.Exit(2)
	}
	opts := []eliminate.Option{
		eliminate.WithOrder(strategy),
		eliminate.WithOnMerge(func(state, merged int) {
			u.Debugf("round %d: merged %d parallel groups", state, merged)
		}),
		eliminate.WithOnEliminate(func(state int, loop string) {
			u.Debugf("eliminated state %d, loop %q", state, loop)
		}),
	}

	if *divisor < 0 {
		cfg := repl.DefaultConfig()
		cfg.Output = *output
		cfg.Options = opts
		if err := repl.Run(os.Stdin, os.Stdout, cfg); err != nil {
			u.Errorf("read input: %v", err)
			os.Exit(1)
		}
		return
	}

	if w := repl.SizeWarning(*divisor); w != "" {
		u.Warnf("divisor=%d: %s", *divisor, w)
	}
	expr, err := modregex.ModRegex(*divisor, *base, *remainder, opts...)
	if err != nil {
		u.Errorf("%v", err)
		os.Exit(1)
	}

	if !*write {
		fmt.Println(expr)
		return
	}
	if err := os.WriteFile(*output, []byte(expr), 0o644); err != nil {
		u.Errorf("write %s: %v", *output, err)
		os.Exit(1)
	}
	u.Infof("Regex written to '%s'", *output)
}
