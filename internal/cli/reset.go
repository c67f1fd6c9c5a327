package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/nutriclin/nutriclin/internal/db"
	"github.com/nutriclin/nutriclin/internal/security"
	"github.com/nutriclin/nutriclin/internal/services"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const temporaryPasswordLength = 12

// RunResetPasswordCommand resets the password of the account identified by
// email. It prompts for a new password on the terminal; a blank entry (or no
// usable terminal) generates a temporary one that must be changed on next
// login.
func RunResetPasswordCommand(dbPath string, email string) error {
	normalizedEmail := services.NormalizeAuthEmail(email)
	if normalizedEmail == "" {
		return errors.New("a valid email address is required")
	}

	database, err := db.OpenSQLite(dbPath, zerolog.Nop())
	if err != nil {
		return fmt.Errorf("database init failed: %w", err)
	}

	users := db.NewUserRepository(database)
	user, err := users.FindByNormalizedEmail(normalizedEmail)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("user %s not found", normalizedEmail)
		}
		return fmt.Errorf("load user: %w", err)
	}

	newPassword, mustChange, err := resolveNewPassword(os.Stdin)
	if err != nil {
		return err
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	if err := users.UpdatePassword(user.ID, string(passwordHash), mustChange); err != nil {
		return fmt.Errorf("update user password: %w", err)
	}

	fmt.Println("Password reset successful")
	if mustChange {
		fmt.Printf("Temporary password: %s\n", newPassword)
		fmt.Println("User must change password on next login.")
	}

	return nil
}

// resolveNewPassword asks the operator for a password without echo. A blank
// entry, or a stdin that is not a terminal, falls back to a generated
// temporary password flagged for forced change.
func resolveNewPassword(stdin *os.File) (string, bool, error) {
	fmt.Print("New password (leave blank for a generated temporary password): ")
	entered, promptErr := readPasswordNoEcho(stdin)
	fmt.Println()
	if promptErr != nil || len(entered) == 0 {
		temporary, err := security.TemporaryPassword(temporaryPasswordLength)
		if err != nil {
			return "", false, fmt.Errorf("generate temporary password: %w", err)
		}
		return temporary, true, nil
	}

	if err := services.ValidatePasswordStrength(string(entered)); err != nil {
		return "", false, fmt.Errorf("password rejected: %w", err)
	}

	fmt.Print("Confirm new password: ")
	confirmed, err := readPasswordNoEcho(stdin)
	fmt.Println()
	if err != nil {
		return "", false, err
	}
	if string(entered) != string(confirmed) {
		return "", false, errors.New("passwords do not match")
	}

	return string(entered), false, nil
}
