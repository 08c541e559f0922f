// Command enumsdl renders enum definitions as GraphQL SDL.
//
//	enumsdl render --definitions enums.yaml [--out file:///srv/schema] [--key schema.graphql]
//	enumsdl check --definitions enums.yaml
package main

import (
	"os"

	kingpin "github.com/alecthomas/kingpin/v2"
	"go.appointy.com/gqlenum/config"
	logger "go.appointy.com/gqlenum/log"
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/memblob"
)

var log = logger.Get()

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("Couldn't load configuration")
	}

	app := kingpin.New("enumsdl", "Render GraphQL enum definitions as schema definition language.")
	AddTo(app, newCommand(cfg, os.Stdout))
	kingpin.MustParse(app.Parse(os.Args[1:]))
}
