// Command holder builds a configuration tree from command-line assignments
// and prints it.
//
//	holder -ns db -format yaml -- --pool.size 10 --pool.debug
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/lixenwraith/holder"
)

func main() {
	format := flag.String("format", holder.FormatTOML, "output format: toml, yaml or json")
	namespace := flag.String("ns", "", "registry namespace to populate (default namespace if empty)")
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	holder.Global().SetLogger(logger)

	if err := run(os.Stdout, logger, *namespace, *format, flag.Args()); err != nil {
		logger.Error("holder failed", "error", err)
		os.Exit(1)
	}
}

func run(w io.Writer, logger *slog.Logger, namespace, format string, args []string) error {
	root := holder.Default
	if namespace != "" {
		node, err := holder.Resolve(namespace)
		if err != nil {
			return err
		}
		root = node
	}

	if err := root.ApplyArgs(args); err != nil {
		return fmt.Errorf("failed to apply arguments: %w", err)
	}

	flat, err := root.Flatten()
	if err != nil {
		return err
	}
	logger.Debug("tree populated", "namespace", namespace, "leaves", len(flat))

	return root.Dump(w, format)
}
