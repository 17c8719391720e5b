package main

import (
	"fmt"
	"io"
	"log"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/pavanmanishd/rawcoll"
	"github.com/pavanmanishd/rawcoll/arena"
	"github.com/pavanmanishd/rawcoll/list"
)

// report is the yaml output of a run.
type report struct {
	Values []int         `yaml:"values"`
	Length int           `yaml:"length"`
	Nodes  arena.Metrics `yaml:"nodes"`
}

// run builds the list described by cfg, then consumes it and writes every
// yielded value to w.
func run(cfg demoConfig, w io.Writer, logger *log.Logger) error {
	l := list.NewWithChunkSize[int](cfg.ChunkSize)
	defer l.Release()

	for _, v := range cfg.Push {
		l.Push(v)
		logger.Printf("push %d (len %d)", v, l.Len())
	}

	if cfg.InsertAt < 0 || cfg.InsertAt > l.Len() {
		return fmt.Errorf("insert: %w", &rawcoll.BoundsError{Op: "insert", Index: cfg.InsertAt, Limit: l.Len() + 1})
	}
	l.Insert(cfg.InsertAt, cfg.Insert)
	logger.Printf("insert %d at %d (len %d)", cfg.Insert, cfg.InsertAt, l.Len())

	if cfg.RemoveFront {
		if v, ok := l.RemoveFront(); ok {
			logger.Printf("remove front %d (len %d)", v, l.Len())
		}
	}

	rep := report{Length: l.Len(), Nodes: l.Metrics()}
	it := l.IntoIter()
	defer it.Release()

	switch cfg.Output {
	case outputYAML:
		rep.Values = slices.Collect(it.All())
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(rep); err != nil {
			return fmt.Errorf("encode report: %w", err)
		}
		return enc.Close()
	default:
		for v := range it.All() {
			if _, err := fmt.Fprintf(w, "it: %d\n", v); err != nil {
				return err
			}
		}
		return nil
	}
}
