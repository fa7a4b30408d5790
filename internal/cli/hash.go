package cli

import (
	"bufio"
	"strings"

	"guestpass/config"
	"guestpass/internal/errors"
	"guestpass/internal/infra/auth"

	"github.com/spf13/cobra"
)

// NewHashPasswordCommand prints the bcrypt hash to put under auth.admins.
func NewHashPasswordCommand() *cobra.Command {
	var cost int

	cmd := &cobra.Command{
		Use:   "hash-password [password]",
		Short: "Print a bcrypt hash for an admin account",
		Long: `Print a bcrypt hash for an admin account.

The password is read from the first line of stdin when no argument is given,
so it stays out of shell history:

  echo -n 's3cret' | guestctl hash-password`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			password := ""
			if len(args) == 1 {
				password = args[0]
			} else {
				line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
				if err != nil && line == "" {
					return WrapExitError(ExitCommandError, "read password", errors.WithStack(err))
				}
				password = strings.TrimRight(line, "\r\n")
			}
			if password == "" {
				return NewExitError(ExitCommandError, "password must not be empty")
			}

			hasher := auth.NewBcryptHasher(&config.Config{Auth: &config.AuthConfig{BcryptCost: cost}})
			hash, err := hasher.Hash(password)
			if err != nil {
				return errors.Wrap(err, "hash password")
			}

			newPrinter(cmd.OutOrStdout(), "text").line("%s", hash)

			return nil
		},
	}

	cmd.Flags().IntVar(&cost, "cost", 12, "bcrypt cost")

	return cmd
}
