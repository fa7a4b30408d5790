// Package cli implements guestctl, a command line client for the guest
// access flow and the host admin routes.
package cli

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"slices"

	"guestpass/internal/errors"
	"guestpass/internal/guestclient"

	"github.com/spf13/cobra"
)

const (
	defaultServer = "http://localhost:8080"
	adminTokenKey = "guestpass.admin"
)

// ValidFormats are the accepted values of --format.
var ValidFormats = []string{"text", "json"}

// RootOptions holds the global flags.
type RootOptions struct {
	Server     string
	Session    string
	AdminToken string
	Format     string
	Verbose    bool
}

// NewRootCommand builds the guestctl command tree.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "guestctl",
		Short: "Guest invitation access client",
		Long: `guestctl walks through the guest access flow from a terminal and
manages guests through the admin API.

Guest commands keep the access cache and fingerprint seed in a session file,
so repeated visits behave like the same browser profile.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(ValidFormats, opts.Format) {
				return errors.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}

			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&opts.Server, "server", envOr("GUESTPASS_SERVER", defaultServer), "guestpass server URL")
	cmd.PersistentFlags().StringVar(&opts.Session, "session", defaultSessionPath(), "session file for the access cache and admin token")
	cmd.PersistentFlags().StringVar(&opts.AdminToken, "token", os.Getenv("GUESTPASS_ADMIN_TOKEN"), "admin token (defaults to the one saved by login)")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (text|json)")
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")

	cmd.AddCommand(NewVisitCommand(opts))
	cmd.AddCommand(NewSubmitCommand(opts))
	cmd.AddCommand(NewLoginCommand(opts))
	cmd.AddCommand(NewGuestCommand(opts))
	cmd.AddCommand(NewTokenCommand(opts))
	cmd.AddCommand(NewDevicesCommand(opts))
	cmd.AddCommand(NewQuotaCommand(opts))
	cmd.AddCommand(NewQRCommand(opts))
	cmd.AddCommand(NewEventsCommand(opts))
	cmd.AddCommand(NewHashPasswordCommand())

	return cmd
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return fallback
}

func defaultSessionPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ".guestpass-session.json"
	}

	return filepath.Join(dir, "guestpass", "session.json")
}

func (o *RootOptions) client() *guestclient.Client {
	return guestclient.New(o.Server)
}

func (o *RootOptions) store() *guestclient.FileStore {
	return guestclient.NewFileStore(o.Session)
}

// logger writes diagnostics to stderr so stdout stays parseable.
func (o *RootOptions) logger(cmd *cobra.Command) *slog.Logger {
	if !o.Verbose {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// adminClient uses --token, then the token saved by login.
func (o *RootOptions) adminClient() (*guestclient.AdminClient, error) {
	token := o.AdminToken
	if token == "" {
		saved, ok, err := o.store().Get(adminTokenKey)
		if err != nil {
			return nil, err
		}
		if ok {
			token = saved
		}
	}
	if token == "" {
		return nil, NewExitError(ExitCommandError, "not logged in: run guestctl login or pass --token")
	}

	return guestclient.NewAdminClient(o.client(), token), nil
}
