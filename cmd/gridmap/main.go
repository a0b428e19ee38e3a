// Command gridmap runs a scenario file and prints its report as YAML.
//
// Usage:
//
//	gridmap -scenario maps/ford.yaml [-v]
//
// Logs go to stderr; the report goes to stdout.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/dustin/go-humanize"

	"github.com/katalvlaran/gridmap/scenario"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "gridmap:", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("gridmap", flag.ContinueOnError)
	fs.SetOutput(stderr)
	path := fs.String("scenario", "", "scenario YAML file")
	verbose := fs.Bool("v", false, "log debug details")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *path == "" {
		fs.Usage()
		return errors.New("missing -scenario")
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	s, err := scenario.Load(*path)
	if err != nil {
		return err
	}
	rep, err := scenario.Run(s, logger)
	if err != nil {
		return err
	}

	reachable := 0
	for _, f := range rep.Fields {
		reachable += f.Reachable
	}
	logger.Info("scenario done",
		"cells", humanize.Comma(int64(rep.Cells)),
		"regions", humanize.Comma(int64(rep.Regions)),
		"paths", len(rep.Paths),
		"reachable", humanize.Comma(int64(reachable)),
	)

	out, err := rep.YAML()
	if err != nil {
		return err
	}
	_, err = stdout.Write(out)

	return err
}
