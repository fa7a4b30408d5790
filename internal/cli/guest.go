package cli

import (
	"strconv"
	"time"

	"guestpass/internal/guestclient"
	"guestpass/internal/usecase"

	"github.com/spf13/cobra"
)

// NewVisitCommand opens an invitation link the way a returning browser would.
func NewVisitCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "visit <token>",
		Short: "Open an invitation and print the access decision",
		Long: `Open an invitation and print the access decision.

The cached identity and fingerprint seed are read from the session file, so a
second visit after a successful submit is granted without asking again.

Example:
  guestctl visit 3kq9Xo2vR1`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			visitor := guestclient.NewVisitor(opts.client(), opts.store(), guestclient.HostSignals{UserAgent: userAgent}, opts.logger(cmd))

			decision, err := visitor.Visit(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			p := newPrinter(cmd.OutOrStdout(), opts.Format)
			if p.json() {
				if err := p.encode(decision); err != nil {
					return err
				}
			} else {
				p.field("state", string(decision.State))
				p.field("reason", decision.Reason)
				printProjection(p, decision.Guest)
				printGrant(p, decision.Grant)
				if decision.State == usecase.StateIdentityRequired || decision.State == usecase.StateIdentityVerification {
					p.line("next: guestctl submit %s <phone-or-email>", args[0])
				}
			}

			if decision.State == usecase.StateAccessDenied {
				return NewExitError(ExitFailure, "access denied")
			}

			return nil
		},
	}
}

// NewSubmitCommand sends an identity for an invitation.
func NewSubmitCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "submit <token> <identity>",
		Short: "Submit a phone number or email for an invitation",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			visitor := guestclient.NewVisitor(opts.client(), opts.store(), guestclient.HostSignals{UserAgent: userAgent}, opts.logger(cmd))

			result, err := visitor.Submit(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}

			p := newPrinter(cmd.OutOrStdout(), opts.Format)
			if p.json() {
				if err := p.encode(result); err != nil {
					return err
				}
			} else {
				p.field("outcome", string(result.Outcome))
				p.field("restriction", result.Restriction)
				printProjection(p, result.Guest)
				printGrant(p, result.Grant)
			}

			if result.Outcome != usecase.OutcomeGranted {
				return NewExitError(ExitFailure, "access not granted")
			}

			return nil
		},
	}
}

const userAgent = "guestctl"

func printProjection(p *printer, guest *usecase.GuestProjection) {
	if guest == nil {
		return
	}
	p.field("guest", guest.Name)
	p.field("devices", strconv.Itoa(guest.DeviceCount)+"/"+strconv.Itoa(guest.MaxDevicesAllowed))
}

func printGrant(p *printer, grant *usecase.Grant) {
	if grant == nil {
		return
	}
	p.field("grant expires", grant.ExpiresAt.UTC().Format(time.RFC3339))
}
