package main

import (
	"fmt"
	"math/rand"
	"time"

	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/sky-flux/venn/exprgen"
)

func vennRandom(e *env, app *kingpin.Application) (*kingpin.CmdClause, kingpinHandler) {
	random := app.Command("random", "prints random expressions and their values")
	count := random.Flag("count", "number of expressions").Short('n').Default("5").Int()
	depth := random.Flag("depth", "maximum nesting depth; 0 prints single names").Short('d').Default("3").Int()
	seed := random.Flag("seed", "random seed; 0 seeds from the clock").Default("0").Int64()
	hide := random.Flag("hide", "omit the values, for practice").Bool()

	return random, func(input string) int {
		s := *seed
		if s == 0 {
			s = time.Now().UnixNano()
		}
		e.log.WithField("seed", s).Debug("generating expressions")

		g, err := exprgen.NewGenerator(exprgen.Config{
			Names:    exprgen.NamesOf(e.ev.Universe()),
			MaxDepth: exprgen.Depth(*depth),
			Rand:     rand.New(rand.NewSource(s)),
		})
		if err != nil {
			e.reportError(err)
			return 2
		}

		for i := 0; i < *count; i++ {
			expr := g.Expression()
			if *hide {
				fmt.Fprintln(e.stdout, expr)
				continue
			}
			result, err := e.ev.ParseSetExpression(expr)
			if err != nil {
				e.reportError(err)
				return 1
			}
			fmt.Fprintf(e.stdout, "%s = %v\n", expr, result)
		}
		return 0
	}
}
