package main

import (
	"fmt"
	"text/tabwriter"

	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/sky-flux/venn"
)

func vennRegions(e *env, app *kingpin.Application) (*kingpin.CmdClause, kingpinHandler) {
	regions := app.Command("regions", "shows which Venn regions an expression shades")
	expr := regions.Arg("expression", "expression to shade; omit to list the regions").String()

	return regions, func(input string) int {
		result := venn.Set{}
		if *expr != "" {
			s, err := e.ev.ParseSetExpression(e.expr(*expr))
			if err != nil {
				e.reportError(err)
				return 1
			}
			result = s
		}

		u := e.ev.Universe()
		tw := tabwriter.NewWriter(e.stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "REGION\tNAME\tEXPRESSION\tELEMENTS\tSHADED")
		for _, r := range venn.Regions() {
			members := u.RegionMembers(r)
			shaded := ""
			if members.Len() > 0 && members.SubsetOf(result) {
				shaded = "■"
			} else if members.Intersect(result).Len() > 0 {
				shaded = "▨"
			}
			fmt.Fprintf(tw, "%d\t%s\t%s\t%v\t%s\n", r, r, r.Expression(u), members, shaded)
		}
		if err := tw.Flush(); err != nil {
			e.reportError(err)
			return 1
		}
		return 0
	}
}
