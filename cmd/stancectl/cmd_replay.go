package main

// #region imports
import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/driftlab/stance-engine/internal/operator"
	"github.com/driftlab/stance-engine/internal/replay"
)

// #endregion

// #region replay

func runReplay(cmd *cobra.Command, args []string) error {
	fixture, err := replay.LoadFixture(args[0])
	if err != nil {
		return err
	}

	results, err := replay.Run(fixture, operator.Default)
	if err != nil {
		return err
	}

	if fixture.Description != "" {
		fmt.Printf("Replay: %s\n\n", fixture.Description)
	}
	fmt.Printf("%4s  %-30s  %-28s  %5s  %3s  %3s  %3s  %3s\n",
		"Turn", "Message", "Applied", "Drift", "T", "C", "S", "Ovr")
	for _, r := range results {
		names := make([]string, len(r.Applied))
		for i, n := range r.Applied {
			names[i] = string(n)
		}
		marker := ""
		if r.DriftReset {
			marker = " *reset"
		}
		fmt.Printf("%4d  %-30s  %-28s  %5d  %3d  %3d  %3d  %3d%s\n",
			r.Turn, clip(r.Message, 30), clip(strings.Join(names, ","), 28),
			r.DriftUsed, r.Transformation, r.Coherence, r.Sentience, r.Overall, marker)
	}

	sum := replay.Summarize(results)
	fmt.Printf("\n%d turns: %d operators applied, %d dropped, %d drift resets, mean overall %.1f\n",
		sum.TotalTurns, sum.TotalApplied, sum.TotalDropped, sum.DriftResets, sum.MeanOverall)
	fmt.Printf("final stance: frame=%s self=%s objective=%s version=%d drift=%d\n",
		sum.FinalStance.Frame, sum.FinalStance.SelfModel, sum.FinalStance.Objective,
		sum.FinalStance.Version, sum.FinalStance.CumulativeDrift)
	return nil
}

// #endregion replay
