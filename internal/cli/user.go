// filepath: internal/cli/user.go
package cli

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"horizonlib/internal/models"
	"horizonlib/internal/repository"
	"horizonlib/internal/services"

	"github.com/spf13/cobra"
)

var (
	addUsername string
	addPassword string
	addRole     string
)

// userCmd groups account management subcommands. Accounts are provisioned
// from the CLI only; there is no registration endpoint.
var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Manage user accounts",
}

var userAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a user account",
	Long:  `Creates a librarian or student account. Generates a random password if none is given.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runUserAdd()
	},
}

func init() {
	RootCmd.AddCommand(userCmd)
	userCmd.AddCommand(userAddCmd)

	userAddCmd.Flags().StringVar(&addUsername, "username", "", "Username for the new account (required)")
	userAddCmd.Flags().StringVar(&addPassword, "password", "", "Password for the new account. Generated randomly if empty.")
	userAddCmd.Flags().StringVar(&addRole, "role", models.RoleStudent, "Account role: 'student' or 'librarian'")
	userAddCmd.MarkFlagRequired("username")
}

func runUserAdd() error {
	repo, err := repository.NewRepository(cfg)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer repo.Close()

	if err := repo.EnsureSchemaBootstrapped(); err != nil {
		return fmt.Errorf("failed to bootstrap database: %w", err)
	}

	generated := false
	if addPassword == "" {
		pw, err := generatePassword()
		if err != nil {
			return fmt.Errorf("failed to generate password: %w", err)
		}
		addPassword = pw
		generated = true
	}

	userService := services.NewUserService(repo)
	user, err := userService.CreateUser(repository.UserCreateArgs{
		Username: addUsername,
		Password: addPassword,
		Role:     addRole,
	})
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	fmt.Printf("Created %s account %q (id %d)\n", user.Role, user.Username, user.ID)
	if generated {
		// Printed once, never logged
		fmt.Printf("Generated password: %s\n", addPassword)
	}
	return nil
}

// generatePassword returns a random 16-character hex password.
func generatePassword() (string, error) {
	bytes := make([]byte, 8)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return hex.EncodeToString(bytes), nil
}
