package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mcoot/soccermanager/internal/model"
)

func newPlayerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "player",
		Short: "Player management commands",
	}

	cmd.AddCommand(newPlayerCreateCmd())
	cmd.AddCommand(newPlayerRemoveCmd())
	cmd.AddCommand(newPlayerUpdateSkillCmd())
	cmd.AddCommand(newPlayerGetCmd())
	cmd.AddCommand(newPlayerSearchCmd())
	cmd.AddCommand(newPlayerListCmd())

	return cmd
}

func newPlayerCreateCmd() *cobra.Command {
	var name, position string
	var skill int

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Add a player to the roster",
		RunE: func(cmd *cobra.Command, args []string) error {
			pos, err := model.ParsePosition(position)
			if err != nil {
				return err
			}

			req := map[string]any{
				"name":         name,
				"position":     int(pos),
				"skill_rating": skill,
			}
			var result Mutation

			if err := client.Post(cmd.Context(), "/api/v1/players", req, &result); err != nil {
				return err
			}

			NewOutput(cfg.Output, cmd.OutOrStdout()).Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Player name (required)")
	cmd.Flags().StringVar(&position, "position", "", "Position name or number 1-4 (required)")
	cmd.Flags().IntVar(&skill, "skill", 0, "Skill rating 1-100 (required)")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("position")
	_ = cmd.MarkFlagRequired("skill")

	return cmd
}

func newPlayerRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <name>",
		Short: "Remove a player from the roster",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.Delete(cmd.Context(), playerPath(args[0])); err != nil {
				return err
			}

			NewOutput(cfg.Output, cmd.OutOrStdout()).PrintMessage("Player removed successfully")
			return nil
		},
	}
}

func newPlayerUpdateSkillCmd() *cobra.Command {
	var skill int

	cmd := &cobra.Command{
		Use:   "update-skill <name>",
		Short: "Change a player's skill rating",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]int{"skill_rating": skill}
			var result Mutation

			if err := client.Patch(cmd.Context(), playerPath(args[0], "skill"), req, &result); err != nil {
				return err
			}

			NewOutput(cfg.Output, cmd.OutOrStdout()).Print(result)
			return nil
		},
	}

	cmd.Flags().IntVar(&skill, "skill", 0, "New skill rating 1-100 (required)")
	_ = cmd.MarkFlagRequired("skill")

	return cmd
}

func newPlayerGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <name>",
		Short: "Show a single player",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Player

			if err := client.Get(cmd.Context(), playerPath(args[0]), &result); err != nil {
				return err
			}

			NewOutput(cfg.Output, cmd.OutOrStdout()).Print(result)
			return nil
		},
	}
}

func newPlayerSearchCmd() *cobra.Command {
	var name, position string

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Find players by name fragment and position",
		RunE: func(cmd *cobra.Command, args []string) error {
			if position != "" {
				if _, err := model.ParsePosition(position); err != nil {
					return fmt.Errorf("--position: %w", err)
				}
			}

			var result PlayerList
			if err := client.Get(cmd.Context(), searchPath(name, position), &result); err != nil {
				return err
			}

			NewOutput(cfg.Output, cmd.OutOrStdout()).Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Case-insensitive name fragment")
	cmd.Flags().StringVar(&position, "position", "", "Position name or number 1-4")

	return cmd
}

func newPlayerListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show the whole roster",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Roster

			if err := client.Get(cmd.Context(), "/api/v1/roster", &result); err != nil {
				return err
			}

			NewOutput(cfg.Output, cmd.OutOrStdout()).Print(result)
			return nil
		},
	}
}
