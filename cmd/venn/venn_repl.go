package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/abiosoft/readline"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"gopkg.in/alecthomas/kingpin.v2"
)

const replHelp = `Enter an expression to evaluate it, or two expressions joined by == to
compare them. Symbols: ∪ ∩ ' ∅ U ( ). Type "quit" or press Ctrl-D to leave.`

func vennRepl(e *env, app *kingpin.Application) (*kingpin.CmdClause, kingpinHandler) {
	repl := app.Command("repl", "evaluates expressions interactively, one per line")
	historyFile := repl.Flag("history", "file to keep line history in").String()

	return repl, func(input string) int {
		if f, ok := e.stdin.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
			return e.interactive(*historyFile)
		}
		return e.batch()
	}
}

func (e *env) interactive(historyFile string) int {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "venn> ",
		HistoryFile:     historyFile,
		InterruptPrompt: "^C",
		EOFPrompt:       "quit",
	})
	if err != nil {
		e.reportError(err)
		return 2
	}
	defer rl.Close()

	fmt.Fprintln(e.stdout, replHelp)
	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			if line == "" {
				return 0
			}
			continue
		}
		if err == io.EOF {
			return 0
		}
		if err != nil {
			e.reportError(err)
			return 2
		}
		if !e.replLine(line) {
			return 0
		}
	}
}

// batch reads expressions from a non-terminal stdin. It exits 1 if any
// line failed.
func (e *env) batch() int {
	exitCode := 0
	sc := bufio.NewScanner(e.stdin)
	for sc.Scan() {
		if !e.replLineStatus(sc.Text(), &exitCode) {
			break
		}
	}
	if err := sc.Err(); err != nil {
		e.reportError(err)
		return 2
	}
	return exitCode
}

func (e *env) replLine(line string) bool {
	var ignored int
	return e.replLineStatus(line, &ignored)
}

// replLineStatus handles one line and reports whether to keep reading.
// Failures set *exitCode to 1.
func (e *env) replLineStatus(line string, exitCode *int) bool {
	line = strings.TrimSpace(line)
	switch line {
	case "":
		return true
	case "quit", "exit":
		return false
	case "help", "?":
		fmt.Fprintln(e.stdout, replHelp)
		return true
	}

	if left, right, ok := strings.Cut(line, "=="); ok {
		ls, err := e.ev.ParseSetExpression(e.expr(left))
		if err != nil {
			e.reportError(err)
			*exitCode = 1
			return true
		}
		rs, err := e.ev.ParseSetExpression(e.expr(right))
		if err != nil {
			e.reportError(err)
			*exitCode = 1
			return true
		}
		if ls.Equal(rs) {
			fmt.Fprintf(e.stdout, "%s %v\n", color.GreenString("true"), ls)
		} else {
			fmt.Fprintf(e.stdout, "%s %v ≠ %v\n", color.RedString("false"), ls, rs)
		}
		return true
	}

	res, err := e.ev.Explain(e.expr(line))
	if err != nil {
		e.reportError(err)
		*exitCode = 1
		return true
	}
	fmt.Fprintf(e.stdout, "%s = %v\n", res.Canonical, res.Result)
	return true
}
