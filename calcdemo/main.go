// Command calcdemo drives the calculator engine from scripts.
//
// Without arguments it replays the built-in demo sessions of the nixie tube
// calculator. A script can be given with -script or directly on the command
// line:
//
//	calcdemo 1 + 3 = =
//	calcdemo -angle rad -script session.calc -watch
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/fjl/nixiecalc/internal/display"
	"github.com/fjl/nixiecalc/internal/tape"
	"github.com/fjl/nixiecalc/nixie"
)

type config struct {
	angle   nixie.AngleUnit
	digits  int
	verbose bool
	delay   time.Duration
}

func main() {
	angleFlag := flag.String("angle", "deg", "Angle unit for sin, cos and tan (deg or rad)")
	digitsFlag := flag.Int("digits", display.Digits, "Display width in digits")
	scriptFlag := flag.String("script", "", "Tape or script file to run instead of the demo")
	watchFlag := flag.Bool("watch", false, "Run the script again whenever it changes")
	delayFlag := flag.Duration("delay", 300*time.Millisecond, "Debounce delay for -watch")
	verboseFlag := flag.Bool("v", false, "Show the display after every input")
	flag.Parse()

	angle, err := nixie.ParseAngleUnit(*angleFlag)
	if err != nil {
		exit(err)
	}
	cfg := config{
		angle:   angle,
		digits:  *digitsFlag,
		verbose: *verboseFlag,
		delay:   *delayFlag,
	}

	switch {
	case *watchFlag && *scriptFlag == "":
		exit(fmt.Errorf("-watch requires -script"))
	case *watchFlag:
		err = watch(cfg, *scriptFlag)
	case *scriptFlag != "":
		err = runFile(os.Stdout, cfg, *scriptFlag)
	case flag.NArg() > 0:
		err = runArgs(os.Stdout, cfg, flag.Args())
	default:
		err = runDemo(os.Stdout, cfg)
	}
	if err != nil {
		exit(err)
	}
}

func exit(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}

func (cfg config) newEngine() *nixie.Engine {
	e := nixie.New()
	e.SetAngleUnit(cfg.angle)
	return e
}

// runDemo replays the demo sessions on a single engine.
func runDemo(w io.Writer, cfg config) error {
	e := cfg.newEngine()
	for i, s := range demoSessions {
		events, err := tape.ParseScript(s.script)
		if err != nil {
			return fmt.Errorf("session %02d: %w", i, err)
		}
		var steps strings.Builder
		tape.Play(e, events, func(tape.Event) {
			if cfg.verbose {
				fmt.Fprintf(&steps, "[%s]", display.Engine(e, cfg.digits))
			}
		})
		line := fmt.Sprintf("%02d: [%s]", i, s.label())
		if steps.Len() > 0 {
			line += " " + steps.String()
		}
		fmt.Fprintf(w, "%s --> <%s>\n", line, display.Engine(e, cfg.digits))
		if s.clearAfter {
			e.PressKey(nixie.OpAllClear)
		}
	}
	return nil
}

// runArgs runs a script given as command line arguments.
func runArgs(w io.Writer, cfg config, args []string) error {
	events, err := tape.ParseScript(strings.Join(args, " "))
	if err != nil {
		return err
	}
	runScript(w, cfg, events)
	return nil
}

// runFile runs a tape or script file.
func runFile(w io.Writer, cfg config, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	events, err := tape.ReadAll(f)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	runScript(w, cfg, events)
	return nil
}

// runScript plays events, printing every step in verbose mode and the final
// display otherwise.
func runScript(w io.Writer, cfg config, events []tape.Event) {
	e := cfg.newEngine()
	tape.Play(e, events, func(ev tape.Event) {
		if cfg.verbose {
			fmt.Fprintf(w, "%-10v %s\n", ev, display.Engine(e, cfg.digits))
		}
	})
	if !cfg.verbose {
		fmt.Fprintln(w, display.Engine(e, cfg.digits))
	}
}
