// Package main replays re-render scenarios through the shouldupdate
// predicate and prints each decision alongside its debug trace.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/go-drift/shouldupdate/cmd/shouldupdate/internal/scenario"
	"github.com/go-drift/shouldupdate/pkg/shouldupdate"
)

func main() {
	file := flag.String("f", "scenario.yaml", "scenario file to replay")
	pattern := flag.String("debug", "", "trace only components whose tag matches this pattern")
	quiet := flag.Bool("q", false, "suppress the decision trace")
	flag.Parse()

	sc, err := scenario.Load(*file)
	if err != nil {
		fail(err)
	}

	h := &shouldupdate.Handle{
		Name:  sc.Component.Name,
		Props: sc.Component.Props,
		State: sc.Component.State,
	}
	if sc.Component.Key != "" {
		h.ListKey = sc.Component.Key
	}

	p := shouldupdate.New(nil)
	if !*quiet {
		if _, err := p.Debug(*pattern, func(message string) {
			fmt.Printf("    %s\n", message)
		}); err != nil {
			fail(err)
		}
	}

	for i, step := range sc.Steps {
		label := step.Label
		if label == "" {
			label = fmt.Sprintf("step %d", i+1)
		}

		nextProps := step.Props
		if nextProps == nil {
			nextProps = h.Props
		}
		nextState := step.State
		if nextState == nil {
			nextState = h.State
		}

		fmt.Printf("%s:\n", label)
		if p.ShouldUpdate(h, nextProps, nextState) {
			fmt.Println("  => update")
		} else {
			fmt.Println("  => skip")
		}

		h.Props, h.State = nextProps, nextState
	}
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "shouldupdate: %v\n", err)
	os.Exit(1)
}
