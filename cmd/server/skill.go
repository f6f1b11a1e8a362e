package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"amazing-hunting/internal/repository/sqlite"
	"amazing-hunting/internal/service"
)

var skillCmd = &cobra.Command{
	Use:   "skill",
	Short: "Manage the skill dictionary",
}

var skillCreateCmd = &cobra.Command{
	Use:   "create NAME...",
	Short: "Add skills that vacancies can reference",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, logger, db, err := openStore(cmd.Context())
		if err != nil {
			return err
		}
		defer db.Close()

		created, err := service.NewSkillService(sqlite.NewSkillRepository(db)).CreateSkills(cmd.Context(), args...)
		for _, skill := range created {
			fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\n", skill.ID, skill.Name)
		}
		if err != nil {
			return fmt.Errorf("create skills: %w", err)
		}
		logger.WithField("count", len(created)).Info("skills created")
		return nil
	},
}

var skillListCmd = &cobra.Command{
	Use:   "list",
	Short: "List known skills",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, _, db, err := openStore(cmd.Context())
		if err != nil {
			return err
		}
		defer db.Close()

		skills, err := service.NewSkillService(sqlite.NewSkillRepository(db)).ListSkills(cmd.Context())
		if err != nil {
			return fmt.Errorf("list skills: %w", err)
		}
		for _, skill := range skills {
			fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\n", skill.ID, skill.Name)
		}
		return nil
	},
}

func init() {
	skillCmd.AddCommand(skillCreateCmd, skillListCmd)
	rootCmd.AddCommand(skillCmd)
}
