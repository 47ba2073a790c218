package main

import (
	"fmt"

	"github.com/fatih/color"
	"gopkg.in/alecthomas/kingpin.v2"
)

func vennEquiv(e *env, app *kingpin.Application) (*kingpin.CmdClause, kingpinHandler) {
	equiv := app.Command("equiv", "reports whether two expressions denote the same set; exits 1 if not")
	left := equiv.Arg("left", "first expression").Required().String()
	right := equiv.Arg("right", "second expression").Required().String()

	return equiv, func(input string) int {
		ls, err := e.ev.ParseSetExpression(e.expr(*left))
		if err != nil {
			e.reportError(err)
			return 2
		}
		rs, err := e.ev.ParseSetExpression(e.expr(*right))
		if err != nil {
			e.reportError(err)
			return 2
		}
		if ls.Equal(rs) {
			fmt.Fprintf(e.stdout, "%s %v\n", color.GreenString("equivalent"), ls)
			return 0
		}
		fmt.Fprintf(e.stdout, "%s %v ≠ %v\n", color.RedString("not equivalent"), ls, rs)
		return 1
	}
}
