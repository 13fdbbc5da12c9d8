package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/aretw0/introspection"
	"github.com/spf13/cobra"

	"github.com/aretw0/goals"
	"github.com/aretw0/goals/pkg/config"
	"github.com/aretw0/goals/pkg/core"
	"github.com/aretw0/goals/pkg/script"
)

type replayOptions struct {
	JSON       bool
	Match      string
	Diagram    bool
	IDStrategy string
}

var replayOpts replayOptions

var replayCmd = &cobra.Command{
	Use:   "replay [script.yaml]",
	Short: "Replay a script of interactions and print the result",
	Long: `Replay runs a YAML script of user interactions (open, type, commit,
cancel, toggle, remove, request, confirm, decline) against a fresh goal list
and prints the goals left at the end.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg, _, err := loadConfig()
		if err != nil {
			fatal("Failed to load config", err)
		}
		if err := replay(os.Stdout, args[0], cfg, replayOpts); err != nil {
			fatal("Replay failed", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(replayCmd)
	replayCmd.Flags().BoolVar(&replayOpts.JSON, "json", false, "Output in JSON format")
	replayCmd.Flags().StringVar(&replayOpts.Match, "match", "", "Only print goals whose text matches a glob")
	replayCmd.Flags().BoolVar(&replayOpts.Diagram, "diagram", false, "Print the controller state as a Mermaid diagram")
	replayCmd.Flags().StringVar(&replayOpts.IDStrategy, "id-strategy", "", "Id generator: uuid or counter (overrides config)")
}

func replay(w io.Writer, path string, cfg config.Config, o replayOptions) error {
	s, err := script.Load(path)
	if err != nil {
		return err
	}

	opts := []goals.Option{
		goals.WithConfig(cfg),
		goals.WithLogger(slog.Default()),
		goals.WithGoals(s.Goals...),
	}
	if o.IDStrategy != "" {
		opts = append(opts, goals.WithIDStrategy(o.IDStrategy))
	}
	ctrl, err := goals.New(opts...)
	if err != nil {
		return err
	}
	defer ctrl.Close()

	res := script.Run(ctrl, s)
	slog.Debug("replay finished", "steps", len(s.Steps), "goals", len(res.Snapshot.Goals))

	list := res.Snapshot.Goals
	if o.Match != "" {
		if list, err = ctrl.Match(o.Match); err != nil {
			return err
		}
	}

	switch {
	case o.Diagram:
		state, ok := ctrl.State().(core.ControllerState)
		if !ok {
			return fmt.Errorf("unexpected controller state %T", ctrl.State())
		}
		diagramConfig := introspection.DefaultDiagramConfig()
		diagramConfig.SecondaryID = "goals"
		diagramConfig.SecondaryLabel = "Goal List"
		_, err := fmt.Fprintln(w, introspection.TreeDiagram(buildStateTree(state), diagramConfig))
		return err

	case o.JSON:
		if list == nil {
			list = []core.Goal{}
		}
		snap := res.Snapshot
		snap.Goals = list
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(snap)
	}

	for _, g := range list {
		mark := "[ ]"
		if g.Completed {
			mark = "[x]"
		}
		if _, err := fmt.Fprintf(w, "%s %s  (%s)\n", mark, g.Text, g.ID); err != nil {
			return err
		}
	}
	return nil
}

type stateNode struct {
	Name     string
	Status   string
	Metadata map[string]string
	Children []stateNode
}

func buildStateTree(state core.ControllerState) stateNode {
	// Status must match classes in introspection.DefaultStyles()
	formStatus := "suspended"
	if state.AddMode {
		formStatus = "running"
	}
	pendingStatus := "finished"
	if state.PendingRemovals > 0 {
		pendingStatus = "pending"
	}

	return stateNode{
		Name:   "Controller",
		Status: "running",
		Metadata: map[string]string{
			"type":        "container",
			"id_strategy": state.IDStrategy,
			"confirm":     fmt.Sprintf("%t", state.ConfirmRemoval),
		},
		Children: []stateNode{
			{
				Name:   "Goals",
				Status: "running",
				Metadata: map[string]string{
					"total":     fmt.Sprintf("%d", state.Goals),
					"completed": fmt.Sprintf("%d", state.Completed),
				},
			},
			{
				Name:     "AddForm",
				Status:   formStatus,
				Metadata: map[string]string{"type": "form"},
			},
			{
				Name:   "PendingRemovals",
				Status: pendingStatus,
				Metadata: map[string]string{
					"count": fmt.Sprintf("%d", state.PendingRemovals),
				},
			},
			{
				Name:   "Events",
				Status: "running",
				Metadata: map[string]string{
					"subscribers": fmt.Sprintf("%d", state.Subscribers),
					"dropped":     fmt.Sprintf("%d", state.DroppedEvents),
				},
			},
		},
	}
}
