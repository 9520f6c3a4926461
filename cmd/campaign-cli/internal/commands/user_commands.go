package commands

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sabbir073/Complete-Political-website-sub006/internal/app"
	"github.com/sabbir073/Complete-Political-website-sub006/internal/domain/users"
	"github.com/sabbir073/Complete-Political-website-sub006/internal/pkg/apperr"

	"github.com/spf13/cobra"
)

// CreateUserCmd creates an admin console account
func CreateUserCmd(cmd *cobra.Command, _ []string) error {
	email, err := cmd.Flags().GetString("email")
	if err != nil {
		return fmt.Errorf("invalid email flag: %w", err)
	}
	name, err := cmd.Flags().GetString("name")
	if err != nil {
		return fmt.Errorf("invalid name flag: %w", err)
	}
	password, err := cmd.Flags().GetString("password")
	if err != nil {
		return fmt.Errorf("invalid password flag: %w", err)
	}
	role, err := cmd.Flags().GetString("role")
	if err != nil {
		return fmt.Errorf("invalid role flag: %w", err)
	}

	input := &users.NewUser{
		Email:    strings.ToLower(strings.TrimSpace(email)),
		Name:     strings.TrimSpace(name),
		Password: password,
		Role:     role,
	}
	if err := input.Validate(); err != nil {
		return err
	}

	env, err := setupEnvironment(cmd)
	if err != nil {
		return err
	}
	defer env.Close()

	userService, err := app.NewUserService(env.repos.Users, env.logger)
	if err != nil {
		return fmt.Errorf("failed to create user service: %w", err)
	}

	user, err := userService.Create(cmd.Context(), input)
	if err != nil {
		if errors.Is(err, apperr.ErrConflict) {
			return fmt.Errorf("a user with email %s already exists", input.Email)
		}
		return err
	}

	env.logger.Info("Created ", user.Role, " account ", user.Email, " with id ", user.ID)
	return nil
}

// InitUserCommands registers the account commands
func InitUserCommands(rootCmd *cobra.Command) error {
	createUserCmd := &cobra.Command{
		Use:     "create-user",
		Aliases: []string{"create-admin"},
		Short:   "Create an admin console account",
		Args:    cobra.NoArgs,
		RunE:    CreateUserCmd,
	}
	createUserCmd.Flags().String("email", "", "Login email of the account")
	createUserCmd.Flags().String("name", "", "Display name of the account")
	createUserCmd.Flags().String("password", "", "Initial password (8 to 72 characters)")
	createUserCmd.Flags().String("role", users.RoleAdmin, "Role: admin, editor or moderator")
	for _, flag := range []string{"email", "name", "password"} {
		if err := createUserCmd.MarkFlagRequired(flag); err != nil {
			return fmt.Errorf("failed to mark %s required: %w", flag, err)
		}
	}
	rootCmd.AddCommand(createUserCmd)
	return nil
}
