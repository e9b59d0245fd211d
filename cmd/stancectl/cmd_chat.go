package main

// #region imports
import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/driftlab/stance-engine/internal/config"
	"github.com/driftlab/stance-engine/internal/engine"
	"github.com/driftlab/stance-engine/internal/operator"
	"github.com/driftlab/stance-engine/internal/provider"
	"github.com/driftlab/stance-engine/internal/store"
)

// #endregion

// #region chat

func runChat() error {
	env, err := config.LoadEnv()
	if err != nil {
		return err
	}

	mode := config.DefaultMode()
	modePath := modeFile
	if modePath == "" {
		modePath = env.ModeFile
	}
	if modePath != "" {
		mode, err = config.LoadMode(modePath)
		if err != nil {
			return err
		}
	}

	st, err := store.NewStore(env.DBPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	completer := provider.NewHTTPClient(env.ProviderURL, env.ProviderModel, env.ProviderTimeout)

	eng, err := engine.New(mode, operator.Default, completer, engine.Options{
		Store:      st,
		Logger:     logger,
		BasePrompt: env.BasePrompt,
	})
	if err != nil {
		return err
	}

	convID := conversation
	if convID == "" {
		convID = uuid.New().String()
	}
	session := eng.Session(convID)
	defer session.Close()

	fmt.Println("Stance engine ready.")
	fmt.Printf("  DB: %s | Provider: %s (%s) | Conversation: %s\n",
		env.DBPath, env.ProviderURL, env.ProviderModel, convID)
	fmt.Println("Type a message (':stance', ':snapshot', or 'quit'):")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		message := strings.TrimSpace(scanner.Text())
		if message == "" {
			continue
		}
		if message == "quit" || message == "exit" {
			break
		}
		if message == ":stance" {
			printStance(session)
			continue
		}
		if message == ":snapshot" {
			snap, err := session.Snapshot("manual")
			if err != nil {
				fmt.Fprintf(os.Stderr, "snapshot error: %v\n", err)
				continue
			}
			fmt.Printf("snapshot %s saved\n", snap.ID)
			continue
		}

		ctx, cancel := context.WithTimeout(context.Background(), env.ProviderTimeout)
		res, err := session.RunTurn(ctx, message)
		cancel()
		if err != nil {
			logger.Warn("turn failed", zap.Error(err))
			fmt.Fprintf(os.Stderr, "turn error: %v\n", err)
			continue
		}

		fmt.Printf("\n%s\n\n", res.Response)
		printTurnStats(res)
	}
	return scanner.Err()
}

func printStance(session *engine.Session) {
	data, err := json.MarshalIndent(session.Stance(), "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "marshal stance: %v\n", err)
		return
	}
	fmt.Println(string(data))
}

func printTurnStats(res engine.TurnResult) {
	applied := "none"
	if len(res.Applied) > 0 {
		names := make([]string, len(res.Applied))
		for i, n := range res.Applied {
			names[i] = string(n)
		}
		applied = strings.Join(names, ",")
	}
	fmt.Printf("[v%d] triggers=%d operators=%s scores t=%d c=%d s=%d overall=%d drift=%d\n",
		res.Stance.Version, len(res.Triggers), applied,
		res.Scores.Transformation, res.Scores.Coherence, res.Scores.Sentience,
		res.Scores.Overall, res.Stance.CumulativeDrift)
	if res.SnapshotID != "" {
		fmt.Printf("drift budget reached, snapshot %s saved\n", res.SnapshotID)
	}
	if res.BelowCoherenceFloor {
		fmt.Println("warning: response below coherence floor")
	}
}

// #endregion chat
