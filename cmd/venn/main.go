// Command venn evaluates set expressions over a three-circle Venn diagram.
//
//	venn eval "(A∪B)'∩C"
//	venn equiv "(A∪B)'" "A'∩B'"
//	venn regions "A∩B∩C'"
//	venn laws
//	venn repl
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/sky-flux/venn"
	"github.com/sky-flux/venn/config"
)

type kingpinHandler func(input string) (exitCode int)
type kingpinCommand func(e *env, app *kingpin.Application) (*kingpin.CmdClause, kingpinHandler)

var kingpinCommands = []kingpinCommand{
	vennEval,
	vennEquiv,
	vennRegions,
	vennLaws,
	vennRandom,
	vennRepl,
	vennUniverse,
}

// asciiAliases lets expressions be typed without the set symbols.
var asciiAliases = strings.NewReplacer(
	"|", string(venn.RuneUnion),
	"&", string(venn.RuneIntersect),
	"~", string(venn.RuneComplement),
	"0", string(venn.RuneEmpty),
)

// env is the state shared by all commands once global flags are applied.
type env struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
	log    *logrus.Logger
	ev     *venn.Evaluator
	ascii  bool
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	app := kingpin.New("venn", "Evaluates set expressions over the eight regions of a three-circle Venn diagram.")
	app.HelpFlag.Short('h')
	app.UsageWriter(stdout)
	app.ErrorWriter(stderr)

	// global flags
	universeVal := app.Flag("universe", "TOML or YAML file defining the universe").Short('u').String()
	asciiVal := app.Flag("ascii", "accept | & ~ 0 for ∪ ∩ ' ∅").Short('a').Bool()
	noColorVal := app.Flag("no-color", "disable colored output").Bool()
	verboseVal := app.Flag("verbose", "show debug logging").Short('v').Bool()

	e := &env{stdin: stdin, stdout: stdout, stderr: stderr}
	handlers := map[string]kingpinHandler{}
	for _, cmdFunction := range kingpinCommands {
		command, handler := cmdFunction(e, app)
		handlers[command.FullCommand()] = handler
	}

	input, err := app.Parse(args)
	if err != nil {
		fmt.Fprintf(stderr, "venn: %s\n", err)
		return 2
	}

	// apply global flags
	if *noColorVal {
		color.NoColor = true
	}
	e.ascii = *asciiVal
	e.log = logrus.New()
	e.log.SetOutput(stderr)
	e.log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	e.log.SetLevel(logrus.WarnLevel)
	if *verboseVal {
		e.log.SetLevel(logrus.DebugLevel)
	}

	var u *venn.Universe
	if *universeVal != "" {
		u, err = config.Load(*universeVal)
		if err != nil {
			e.log.WithError(err).Error("cannot load universe")
			return 2
		}
		e.log.WithField("file", *universeVal).Debug("loaded universe")
	}
	e.ev = venn.NewEvaluator(venn.Config{Universe: u, Logger: e.log})

	handler := handlers[strings.Split(input, " ")[0]]
	if handler == nil {
		fmt.Fprintf(stderr, "venn: unknown command %q\n", input)
		return 2
	}
	return handler(input)
}

// expr applies the --ascii aliases.
func (e *env) expr(s string) string {
	if e.ascii {
		return asciiAliases.Replace(s)
	}
	return s
}

// reportError prints err to stderr. Syntax errors get a caret under the
// offending position.
func (e *env) reportError(err error) {
	red := color.New(color.FgRed).SprintFunc()
	fmt.Fprintf(e.stderr, "%s %v\n", red("error:"), err)

	var se *venn.SyntaxError
	if errors.As(err, &se) {
		fmt.Fprintf(e.stderr, "  %s\n  %s%s\n", se.Expr, strings.Repeat(" ", se.Pos), red("^"))
	}
}
