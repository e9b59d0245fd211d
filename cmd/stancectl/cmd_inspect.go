package main

// #region imports
import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/driftlab/stance-engine/internal/config"
	"github.com/driftlab/stance-engine/internal/store"
)

// #endregion

// #region inspect

func runInspect(cmd *cobra.Command, args []string) error {
	last, _ := cmd.Flags().GetInt("last")
	jsonOut, _ := cmd.Flags().GetBool("json")

	if conversation == "" {
		return fmt.Errorf("--conversation is required for inspect")
	}

	env, err := config.LoadEnv()
	if err != nil {
		return err
	}
	st, err := store.NewStore(env.DBPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	snaps, err := st.ListSnapshots(conversation, last)
	if err != nil {
		return err
	}
	turns, err := st.RecentTurns(conversation, last)
	if err != nil {
		return err
	}

	if jsonOut {
		return printJSON(struct {
			Snapshots []store.Snapshot   `json:"snapshots"`
			Turns     []store.TurnRecord `json:"turns"`
		}{snaps, turns})
	}

	printSnapshotTable(snaps)
	fmt.Println()
	printTurnTable(turns)
	return nil
}

func printSnapshotTable(snaps []store.Snapshot) {
	fmt.Printf("Snapshots (%d):\n", len(snaps))
	if len(snaps) == 0 {
		return
	}
	fmt.Printf("%-10s  %-16s  %-10s  %5s  %5s  %s\n",
		"ID", "Trigger", "Frame", "Ver", "Drift", "Time")
	for _, s := range snaps {
		fmt.Printf("%-10s  %-16s  %-10s  %5d  %5d  %s\n",
			shortID(s.ID), s.Trigger, s.Stance.Frame,
			s.Stance.Version, s.Stance.CumulativeDrift,
			s.CreatedAt.Format("2006-01-02T15:04:05Z"))
	}
}

func printTurnTable(turns []store.TurnRecord) {
	fmt.Printf("Turns (%d):\n", len(turns))
	if len(turns) == 0 {
		return
	}
	fmt.Printf("%-10s  %-30s  %-28s  %3s  %3s  %3s  %3s\n",
		"ID", "Message", "Operators", "T", "C", "S", "Ovr")
	for _, t := range turns {
		ops := strings.Join(t.Operators, ",")
		fmt.Printf("%-10s  %-30s  %-28s  %3d  %3d  %3d  %3d\n",
			shortID(t.ID), clip(t.Message, 30), clip(ops, 28),
			t.Transformation, t.Coherence, t.Sentience, t.Overall)
	}
}

// #endregion inspect

// #region output

func printJSON(v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func clip(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-1] + "…"
}

// #endregion output
