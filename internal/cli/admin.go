package cli

import (
	"os"
	"strconv"
	"strings"
	"time"

	"guestpass/internal/errors"
	"guestpass/internal/guestclient"
	"guestpass/internal/util"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// NewLoginCommand exchanges host credentials for an admin token and saves it
// in the session file.
func NewLoginCommand(opts *RootOptions) *cobra.Command {
	var username, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in as a host and save the admin token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if username == "" || password == "" {
				return NewExitError(ExitCommandError, "--username and --password are required")
			}

			admin := guestclient.NewAdminClient(opts.client(), "")
			out, err := admin.Login(cmd.Context(), username, password)
			if err != nil {
				return err
			}

			if err := opts.store().Set(adminTokenKey, out.Token); err != nil {
				return WrapExitError(ExitCommandError, "save admin token", err)
			}

			p := newPrinter(cmd.OutOrStdout(), opts.Format)
			if p.json() {
				return p.encode(out)
			}
			p.line("logged in as %s until %s", username, out.ExpiresAt.UTC().Format(time.RFC3339))

			return nil
		},
	}

	cmd.Flags().StringVarP(&username, "username", "u", "", "host username")
	cmd.Flags().StringVarP(&password, "password", "p", os.Getenv("GUESTPASS_ADMIN_PASSWORD"), "host password")

	return cmd
}

func NewGuestCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "guest",
		Short: "Inspect guests",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show <guest-id>",
		Short: "Show a guest with its devices and invitation link",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			guestID, admin, err := adminTarget(opts, args[0])
			if err != nil {
				return err
			}

			detail, err := admin.GetGuest(cmd.Context(), guestID)
			if err != nil {
				return err
			}

			p := newPrinter(cmd.OutOrStdout(), opts.Format)
			if p.json() {
				return p.encode(detail)
			}

			g := detail.Guest
			p.field("id", g.ID.String())
			p.field("name", g.Name)
			p.field("phone", g.Phone)
			p.field("email", g.Email)
			p.field("events", strings.Join(g.EventAccess, ","))
			firstAccess := "never"
			if g.FirstAccessAt != nil {
				firstAccess = g.FirstAccessAt.UTC().Format(time.RFC3339)
			}
			p.field("first access", firstAccess)
			p.field("devices", strconv.Itoa(len(detail.Devices))+"/"+strconv.Itoa(g.MaxDevicesAllowed))
			for _, device := range detail.Devices {
				p.line("  - %s registered %s", util.ShortFingerprint(device.Fingerprint), device.CreatedAt.UTC().Format(time.RFC3339))
			}
			p.field("invitation", detail.InvitationLink)

			return nil
		},
	})

	return cmd
}

func NewTokenCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Manage invitation tokens",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "regenerate <guest-id>",
		Short: "Replace the invitation token and clear registered devices",
		Long: `Replace the invitation token and clear registered devices.

The old link stops working immediately. The guest keeps its id, identity and
event access.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			guestID, admin, err := adminTarget(opts, args[0])
			if err != nil {
				return err
			}

			out, err := admin.RegenerateToken(cmd.Context(), guestID)
			if err != nil {
				return err
			}

			p := newPrinter(cmd.OutOrStdout(), opts.Format)
			if p.json() {
				return p.encode(out)
			}
			p.field("token", out.Token)
			p.field("invitation", out.InvitationLink)
			p.field("cleared devices", strconv.FormatInt(out.ClearedDevices, 10))

			return nil
		},
	})

	return cmd
}

func NewDevicesCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "devices",
		Short: "Manage registered devices",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "clear <guest-id>",
		Short: "Remove every registered device of a guest",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			guestID, admin, err := adminTarget(opts, args[0])
			if err != nil {
				return err
			}

			cleared, err := admin.ClearDevices(cmd.Context(), guestID)
			if err != nil {
				return err
			}

			p := newPrinter(cmd.OutOrStdout(), opts.Format)
			if p.json() {
				return p.encode(map[string]int64{"clearedDevices": cleared})
			}
			p.field("cleared devices", strconv.FormatInt(cleared, 10))

			return nil
		},
	})

	return cmd
}

func NewQuotaCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quota",
		Short: "Manage device quotas",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "set <guest-id> <max-devices>",
		Short: "Change how many devices a guest may register",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			maxDevices, err := strconv.Atoi(args[1])
			if err != nil || maxDevices < 1 {
				return NewExitError(ExitCommandError, "max-devices must be a positive integer")
			}

			guestID, admin, err := adminTarget(opts, args[0])
			if err != nil {
				return err
			}

			detail, err := admin.SetQuota(cmd.Context(), guestID, maxDevices)
			if err != nil {
				return err
			}

			p := newPrinter(cmd.OutOrStdout(), opts.Format)
			if p.json() {
				return p.encode(detail)
			}
			p.field("devices", strconv.Itoa(len(detail.Devices))+"/"+strconv.Itoa(detail.Guest.MaxDevicesAllowed))

			return nil
		},
	})

	return cmd
}

func NewQRCommand(opts *RootOptions) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "qr <guest-id>",
		Short: "Download the invitation QR code as PNG",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			guestID, admin, err := adminTarget(opts, args[0])
			if err != nil {
				return err
			}

			png, err := admin.InvitationQR(cmd.Context(), guestID)
			if err != nil {
				return err
			}

			path := output
			if path == "" {
				path = guestID.String() + ".png"
			}
			if err := os.WriteFile(path, png, 0o644); err != nil {
				return WrapExitError(ExitCommandError, "write QR code", err)
			}

			newPrinter(cmd.OutOrStdout(), opts.Format).line("wrote %s (%s)", path, util.FormatBytes(int64(len(png))))

			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "PNG file to write (default <guest-id>.png)")

	return cmd
}

func NewEventsCommand(opts *RootOptions) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "events <guest-id>",
		Short: "List recent access events of a guest",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			guestID, admin, err := adminTarget(opts, args[0])
			if err != nil {
				return err
			}

			events, err := admin.ListEvents(cmd.Context(), guestID, limit)
			if err != nil {
				return err
			}

			p := newPrinter(cmd.OutOrStdout(), opts.Format)
			if p.json() {
				return p.encode(events)
			}
			for _, event := range events {
				line := event.OccurredAt.UTC().Format(time.RFC3339) + " " + string(event.Type)
				if event.Fingerprint != "" {
					line += " " + util.ShortFingerprint(event.Fingerprint)
				}
				if event.Detail != "" {
					line += " " + event.Detail
				}
				p.line("%s", line)
			}

			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "maximum number of events (server default when 0)")

	return cmd
}

func adminTarget(opts *RootOptions, rawID string) (uuid.UUID, *guestclient.AdminClient, error) {
	guestID, err := uuid.Parse(rawID)
	if err != nil {
		return uuid.Nil, nil, WrapExitError(ExitCommandError, "invalid guest id", errors.WithStack(err))
	}

	admin, err := opts.adminClient()
	if err != nil {
		return uuid.Nil, nil, err
	}

	return guestID, admin, nil
}
