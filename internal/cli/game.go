package cli

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
)

func newGameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "game",
		Short: "Game commands",
	}

	cmd.AddCommand(newGameNewCmd())
	cmd.AddCommand(newGameListCmd())
	cmd.AddCommand(newGameGetCmd())
	cmd.AddCommand(newGameRotateCmd())
	cmd.AddCommand(newGameMoveCmd("place", "Place the waiting tile on an empty cell"))
	cmd.AddCommand(newGameMoveCmd("swap", "Swap the waiting bridge onto an occupied cell"))
	cmd.AddCommand(newGameStatsCmd())
	cmd.AddCommand(newGameAutoplayCmd())
	cmd.AddCommand(newGameDeleteCmd())

	return cmd
}

func newOutput() *Output {
	return NewOutput(cfg.Output, os.Stdout).WithVerbose(cfg.Verbose)
}

func newGameNewCmd() *cobra.Command {
	var rows, cols, special int

	cmd := &cobra.Command{
		Use:   "new",
		Short: "Create a new game",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]int{"rows": rows, "cols": cols, "special": special}
			var result Game

			if err := client.Post("/api/v1/games", req, &result); err != nil {
				return err
			}

			newOutput().Print(result)
			return nil
		},
	}

	cmd.Flags().IntVar(&rows, "rows", 6, "Board rows (1-9)")
	cmd.Flags().IntVar(&cols, "cols", 6, "Board columns (1-9)")
	cmd.Flags().IntVar(&special, "special", 0, "Use the special supply with this many of each tile type (0 for the standard supply)")

	return cmd
}

func newGameListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List live games",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var result GameList

			if err := client.Get("/api/v1/games", &result); err != nil {
				return err
			}

			newOutput().Print(result)
			return nil
		},
	}
}

func newGameGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Get current game state",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Game

			if err := client.Get(gamePath(args[0], ""), &result); err != nil {
				return err
			}

			newOutput().Print(result)
			return nil
		},
	}
}

func newGameRotateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rotate <id>",
		Short: "Rotate the waiting tile 90 degrees clockwise",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Game

			if err := client.Post(gamePath(args[0], "rotate"), nil, &result); err != nil {
				return err
			}

			newOutput().Print(result)
			return nil
		},
	}
}

func newGameMoveCmd(move, short string) *cobra.Command {
	return &cobra.Command{
		Use:   move + " <id> <row> <col>",
		Short: short,
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			row, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid row: %w", err)
			}

			col, err := strconv.Atoi(args[2])
			if err != nil {
				return fmt.Errorf("invalid col: %w", err)
			}

			req := map[string]int{"row": row, "col": col}
			var result Game

			if err := client.Post(gamePath(args[0], move), req, &result); err != nil {
				return err
			}

			newOutput().Print(result)
			return nil
		},
	}
}

func newGameStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats <id>",
		Short: "Show the statistics and scores of a finished game",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Result

			if err := client.Get(gamePath(args[0], "statistics"), &result); err != nil {
				return err
			}

			newOutput().Print(result)
			return nil
		},
	}
}

func newGameAutoplayCmd() *cobra.Command {
	var strategy string
	var turns int

	cmd := &cobra.Command{
		Use:   "autoplay <id>",
		Short: "Let a bot play moves for both sides",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]any{"strategy": strategy, "turns": turns}
			var result AutoplayResult

			if err := client.Post(gamePath(args[0], "autoplay"), req, &result); err != nil {
				return err
			}

			newOutput().Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&strategy, "strategy", "random", "Bot strategy: random, first")
	cmd.Flags().IntVar(&turns, "turns", 0, "Number of moves to play (0 plays until the board is full)")

	return cmd
}

func newGameDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a game",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.Delete(gamePath(args[0], "")); err != nil {
				return err
			}

			newOutput().PrintMessage("Game deleted")
			return nil
		},
	}
}

func gamePath(id, action string) string {
	if action == "" {
		return fmt.Sprintf("/api/v1/games/%s", id)
	}
	return fmt.Sprintf("/api/v1/games/%s/%s", id, action)
}
