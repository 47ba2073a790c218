package main

import (
	"encoding/json"
	"fmt"

	"github.com/fatih/color"
	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/sky-flux/venn/laws"
)

func vennLaws(e *env, app *kingpin.Application) (*kingpin.CmdClause, kingpinHandler) {
	lawsCmd := app.Command("laws", "checks set identities over every substitution of named sets; exits 1 if any fails")
	asJSON := lawsCmd.Flag("json", "print results as JSON").Bool()
	left := lawsCmd.Arg("left", "left side of a custom identity, using {0}, {1}, {2} as placeholders").String()
	right := lawsCmd.Arg("right", "right side of a custom identity").String()

	return lawsCmd, func(input string) int {
		var results []laws.Result
		switch {
		case *left == "" && *right == "":
			results = laws.CheckAll(e.ev)
		case *left != "" && *right != "":
			law := laws.Law{Name: "custom", Left: e.expr(*left), Right: e.expr(*right)}
			res, err := laws.Check(e.ev, law)
			if err != nil {
				e.reportError(err)
				return 2
			}
			results = append(results, res)
		default:
			e.reportError(fmt.Errorf("a custom identity needs both sides"))
			return 2
		}

		exitCode := 0
		for _, res := range results {
			if !res.Holds() {
				exitCode = 1
			}
		}

		if *asJSON {
			enc := json.NewEncoder(e.stdout)
			enc.SetIndent("", "  ")
			if err := enc.Encode(results); err != nil {
				e.reportError(err)
				return 2
			}
			return exitCode
		}

		for _, res := range results {
			status := color.GreenString("PASS")
			if !res.Holds() {
				status = color.RedString("FAIL")
			}
			fmt.Fprintf(e.stdout, "%s %s (%d substitutions)\n", status, res.Law, res.Checked)
			for _, c := range res.Counterexamples {
				fmt.Fprintf(e.stdout, "     %s\n", c.Describe())
			}
		}
		return exitCode
	}
}
