package service

// QRCodeService renders invitation links as QR codes
type QRCodeService interface {
	// GenerateInvitationQR returns a PNG encoding the invitation link
	GenerateInvitationQR(link string) ([]byte, error)
}
