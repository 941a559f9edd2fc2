// Command mtf tracks margin trading positions from a broker trade log.
package main

import (
	"context"
	"flag"
	"maps"
	"os"
	"path"

	"github.com/etnz/mtf/cmd"
	"github.com/etnz/mtf/renderer"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	// quote service settings can live in a .env file of the working directory.
	_ = godotenv.Load()

	completion().Complete(path.Base(os.Args[0]))

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

// completion describes the command line for shell completion. It is
// installed with COMP_INSTALL=1 mtf.
func completion() *complete.Command {
	engine := map[string]complete.Predictor{
		"i":        predict.Files("*"),
		"format":   predict.Set{"auto", "json", "ledger", "csv", "blocks"},
		"funded":   predict.Something,
		"delay":    predict.Something,
		"target":   predict.Something,
		"d":        predict.Something,
		"currency": predict.Set{"INR", "USD", "EUR"},
	}
	quotes := map[string]complete.Predictor{
		"quote-url":  predict.Something,
		"quote-path": predict.Something,
		"quote-ttl":  predict.Something,
	}
	with := func(sets ...map[string]complete.Predictor) map[string]complete.Predictor {
		res := map[string]complete.Predictor{}
		for _, s := range sets {
			maps.Copy(res, s)
		}
		return res
	}
	return &complete.Command{
		Flags: map[string]complete.Predictor{"raw": predict.Nothing},
		Sub: map[string]*complete.Command{
			"positions": {Flags: with(engine, map[string]complete.Predictor{
				"lots": predict.Nothing,
				"json": predict.Nothing,
				"sort": predict.Set(renderer.OpenKeys),
			})},
			"closed": {Flags: with(engine, map[string]complete.Predictor{
				"legs": predict.Nothing,
				"sort": predict.Set(renderer.ClosedKeys),
			})},
			"summary":    {Flags: engine},
			"unrealized": {Flags: with(engine, quotes, map[string]complete.Predictor{"p": predict.Something, "fetch": predict.Nothing})},
			"export": {Flags: with(engine, map[string]complete.Predictor{
				"product": predict.Set{"MTF", "CNC", "MIS"},
				"copy":    predict.Nothing,
			})},
			"watch":    {Flags: with(engine, quotes, map[string]complete.Predictor{"every": predict.Something, "v": predict.Nothing})},
			"help":     {Args: predict.Set{"positions", "closed", "summary", "unrealized", "export", "watch"}},
			"flags":    {},
			"commands": {},
		},
	}
}
