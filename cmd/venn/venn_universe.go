package main

import (
	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/sky-flux/venn/config"
)

func vennUniverse(e *env, app *kingpin.Application) (*kingpin.CmdClause, kingpinHandler) {
	universe := app.Command("universe", "prints the active universe as a config file")
	format := universe.Flag("format", "output format").Short('f').Default(string(config.TOML)).Enum(config.Formats()...)

	return universe, func(input string) int {
		data, err := config.Marshal(e.ev.Universe(), config.Format(*format))
		if err != nil {
			e.reportError(err)
			return 1
		}
		if _, err := e.stdout.Write(data); err != nil {
			e.reportError(err)
			return 1
		}
		return 0
	}
}
