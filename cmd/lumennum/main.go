// Command lumennum runs a fixed set of end-to-end expressions through
// the numeric package, printing each result (or the fault it raised).
// It exists as a runnable demonstration of the package's public
// surface, not as a general calculator.
package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"os"

	"github.com/lumen-lang/lumen/numeric"
)

func main() {
	verbose := flag.Bool("v", false, "print the representation tag alongside each result")
	logFaults := flag.Bool("log-faults", false, "log every fault raised while running the scenarios")
	flag.Parse()

	lg := numeric.NewLogger(log.New(os.Stderr, "lumennum: ", 0), numeric.Options{LogFaults: *logFaults})

	rt := numeric.NewRuntime(numeric.NewDefaultAllocator(64), numeric.PanicReporter{})

	for i, scenario := range scenarios {
		run(rt, lg, i+1, scenario, *verbose)
	}
}

type scenario struct {
	name string
	run  func(rt *numeric.Runtime) (numeric.Number, bool)
}

var scenarios = []scenario{
	{"plus(3, 4)", func(rt *numeric.Runtime) (numeric.Number, bool) {
		return rt.Plus(numeric.BoxImmediate(3), numeric.BoxImmediate(4)), true
	}},
	{"divide(1, 3)", func(rt *numeric.Runtime) (numeric.Number, bool) {
		return rt.Divide(numeric.BoxImmediate(1), numeric.BoxImmediate(3)), true
	}},
	{"plus(1/2, 1/3)", func(rt *numeric.Runtime) (numeric.Number, bool) {
		half := rt.Divide(numeric.BoxImmediate(1), numeric.BoxImmediate(2))
		third := rt.Divide(numeric.BoxImmediate(1), numeric.BoxImmediate(3))
		return rt.Plus(half, third), true
	}},
	{"plus(1/2, 1/2)", func(rt *numeric.Runtime) (numeric.Number, bool) {
		half := rt.Divide(numeric.BoxImmediate(1), numeric.BoxImmediate(2))
		return rt.Plus(half, half), true
	}},
	{"times(2_000_000_000 as i32, 2)", func(rt *numeric.Runtime) (numeric.Number, bool) {
		boxed := rt.ReduceToInteger(2_000_000_000)
		return rt.Times(boxed, numeric.BoxImmediate(2)), true
	}},
	{"plus(I64_MAX, 1)", func(rt *numeric.Runtime) (result numeric.Number, ok bool) {
		defer func() {
			if r := recover(); r != nil {
				ok = false
			}
		}()
		i64max := rt.ReduceToInteger(math.MaxInt64)
		return rt.Plus(i64max, numeric.BoxImmediate(1)), true
	}},
	{"eq(1.0_f64, 1)", func(rt *numeric.Runtime) (numeric.Number, bool) {
		if rt.Eq(rt.NewFloat64(1.0), numeric.BoxImmediate(1)) {
			return numeric.BoxImmediate(1), true
		}
		return numeric.BoxImmediate(0), true
	}},
	{"mod(7.5_f64, 2)", func(rt *numeric.Runtime) (result numeric.Number, ok bool) {
		defer func() {
			if r := recover(); r != nil {
				ok = false
			}
		}()
		return rt.Mod(rt.NewFloat64(7.5), numeric.BoxImmediate(2)), true
	}},
}

func run(rt *numeric.Runtime, lg *numeric.Logger, index int, s scenario, verbose bool) {
	reporter := &numeric.RecordingReporter{}
	rt.Fault = &numeric.LoggingReporter{Inner: reporter, Log: lg}

	result, ok := s.run(rt)
	if !ok {
		fmt.Printf("E%d: %-32s -> fault %s\n", index, s.name, reporter.Kind)
		return
	}

	if verbose {
		fmt.Printf("E%d: %-32s -> %s (%s)\n", index, s.name, rt.String(result), rt.TypeOf(result))
	} else {
		fmt.Printf("E%d: %-32s -> %s\n", index, s.name, rt.String(result))
	}
}
