package main

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/alecthomas/kingpin.v2"
)

func vennEval(e *env, app *kingpin.Application) (*kingpin.CmdClause, kingpinHandler) {
	eval := app.Command("eval", "evaluates set expressions")
	regions := eval.Flag("regions", "also print the regions the result covers").Short('r').Bool()
	asJSON := eval.Flag("json", "print one JSON object per expression").Bool()
	exprs := eval.Arg("expression", "expressions to evaluate").Required().Strings()

	return eval, func(input string) int {
		exitCode := 0
		enc := json.NewEncoder(e.stdout)
		for _, expr := range *exprs {
			res, err := e.ev.Explain(e.expr(expr))
			if err != nil {
				e.reportError(err)
				exitCode = 1
				continue
			}
			switch {
			case *asJSON:
				if err := enc.Encode(res); err != nil {
					e.reportError(err)
					return 1
				}
			case *regions:
				ids := make([]string, 0, len(res.Regions))
				for _, r := range res.Regions {
					ids = append(ids, strconv.Itoa(int(r)))
				}
				fmt.Fprintf(e.stdout, "%s\tregions %s\n", res.Result, strings.Join(ids, ","))
			default:
				fmt.Fprintln(e.stdout, res.Result)
			}
		}
		return exitCode
	}
}
