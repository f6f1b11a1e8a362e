package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"amazing-hunting/internal/repository/sqlite"
	"amazing-hunting/internal/service"
)

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Manage vacancy owners",
}

var userCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a user that can own vacancies",
	Long: `Create a user that can own vacancies.

The password is stored as a bcrypt hash. The printed id is the value
clients send as user_id when creating vacancies.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		username, _ := cmd.Flags().GetString("username")
		password, _ := cmd.Flags().GetString("password")

		_, logger, db, err := openStore(cmd.Context())
		if err != nil {
			return err
		}
		defer db.Close()

		user, err := service.NewUserService(sqlite.NewUserRepository(db)).Register(cmd.Context(), username, password)
		if err != nil {
			return fmt.Errorf("create user: %w", err)
		}

		logger.WithField("user_id", user.ID).Info("user created")
		fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\n", user.ID, user.Username)
		return nil
	},
}

func init() {
	userCreateCmd.Flags().StringP("username", "u", "", "Username")
	userCreateCmd.Flags().StringP("password", "p", "", "Password")
	_ = userCreateCmd.MarkFlagRequired("username")
	_ = userCreateCmd.MarkFlagRequired("password")

	userCmd.AddCommand(userCreateCmd)
	rootCmd.AddCommand(userCmd)
}
