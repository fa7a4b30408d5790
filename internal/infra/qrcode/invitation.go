// Package qrcode renders invitation links as PNG images hosts can print or share.
package qrcode

import (
	"strings"
	"unicode"

	"guestpass/config"
	"guestpass/internal/domain/service"
	"guestpass/internal/errors"

	"github.com/skip2/go-qrcode"
)

const (
	defaultSize = 256
	minSize     = 64
	maxSize     = 1024
)

var levels = map[string]qrcode.RecoveryLevel{
	"L": qrcode.Low,
	"M": qrcode.Medium,
	"Q": qrcode.High,
	"H": qrcode.Highest,
}

type invitationEncoder struct {
	size  int
	level qrcode.RecoveryLevel
}

var _ service.QRCodeService = (*invitationEncoder)(nil)

// NewInvitationEncoder reads the qrcode section. A missing section or an
// unknown level falls back to 256px at medium recovery; sizes are clamped.
func NewInvitationEncoder(cfg *config.Config) service.QRCodeService {
	enc := &invitationEncoder{size: defaultSize, level: qrcode.Medium}
	if cfg.QRCode == nil {
		return enc
	}

	if lvl, ok := levels[strings.ToUpper(strings.TrimSpace(cfg.QRCode.ErrorCorrectionLevel))]; ok {
		enc.level = lvl
	}
	if cfg.QRCode.Size > 0 {
		enc.size = min(max(cfg.QRCode.Size, minSize), maxSize)
	}

	return enc
}

func (e *invitationEncoder) GenerateInvitationQR(link string) ([]byte, error) {
	if err := checkLink(link); err != nil {
		return nil, err
	}

	code, err := qrcode.New(link, e.level)
	if err != nil {
		return nil, errors.Wrap(err, "encode invitation link")
	}

	png, err := code.PNG(e.size)
	if err != nil {
		return nil, errors.Wrap(err, "render invitation png")
	}

	return png, nil
}

// checkLink refuses links a phone camera would not open as one URL.
func checkLink(link string) error {
	if strings.TrimSpace(link) == "" {
		return errors.New("invitation link is empty")
	}
	if strings.IndexFunc(link, func(r rune) bool { return unicode.IsSpace(r) || unicode.IsControl(r) }) >= 0 {
		return errors.Errorf("invitation link %q contains whitespace", link)
	}

	return nil
}
