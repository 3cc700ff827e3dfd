// Command tzfinder looks up the IANA timezone name containing a WGS84
// (longitude, latitude) point against an offline dataset directory.
package main

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/urfave/cli/v2"

	"github.com/geoniles/tzfinder/pkg/tzfinder"
)

func main() {
	app := &cli.App{
		Name:      "tzfinder",
		Usage:     "offline WGS84 coordinate -> IANA timezone lookup",
		ArgsUsage: "lon lat",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "dataset",
				Usage:    "path to a dataset directory (spec.md §6 file layout)",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "mode",
				Usage: "query procedure: at, at-land, unique, certain",
				Value: "at",
			},
			&cli.BoolFlag{
				Name:  "in-memory",
				Usage: "read the entire dataset into memory instead of memory-mapping it",
			},
			&cli.BoolFlag{
				Name:  "list-zones",
				Usage: "print every zone name in the dataset and exit",
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		log.Println(err)
		os.Exit(1)
	}
}

func run(cCtx *cli.Context) error {
	opts := tzfinder.DefaultOptions()
	opts.InMemory = cCtx.Bool("in-memory")

	engine, err := tzfinder.Open(cCtx.String("dataset"), opts)
	if err != nil {
		return fmt.Errorf("open dataset: %w", err)
	}
	defer engine.Close()

	if cCtx.Bool("list-zones") {
		for _, name := range engine.ZoneNames() {
			fmt.Println(name)
		}
		return nil
	}

	if cCtx.NArg() != 2 {
		return cli.Exit("expected positional arguments: lon lat", 2)
	}
	lon, err := strconv.ParseFloat(cCtx.Args().Get(0), 64)
	if err != nil {
		return cli.Exit(fmt.Sprintf("invalid lon: %v", err), 2)
	}
	lat, err := strconv.ParseFloat(cCtx.Args().Get(1), 64)
	if err != nil {
		return cli.Exit(fmt.Sprintf("invalid lat: %v", err), 2)
	}

	var name *string
	switch cCtx.String("mode") {
	case "at":
		name, err = engine.TimezoneAt(lon, lat)
	case "at-land":
		name, err = engine.TimezoneAtLand(lon, lat)
	case "unique":
		name, err = engine.UniqueTimezoneAt(lon, lat)
	case "certain":
		name, err = engine.CertainTimezoneAt(lon, lat)
	default:
		return cli.Exit(fmt.Sprintf("unknown mode %q", cCtx.String("mode")), 2)
	}
	if err != nil {
		return err
	}
	if name == nil {
		fmt.Println()
		return nil
	}
	fmt.Println(*name)
	return nil
}
