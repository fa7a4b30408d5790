package guestclient

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"os"
	"runtime"
	"strings"
	"time"

	"guestpass/internal/errors"
)

const (
	seedKey   = "guestpass.seed"
	seedBytes = 16
)

// ErrFingerprintUnavailable means the environment could not be probed. Callers
// treat the device as unknown.
var ErrFingerprintUnavailable = errors.New("fingerprint unavailable")

// Signals are the environment values a fingerprint is derived from.
type Signals struct {
	UserAgent        string
	ScreenResolution string
	Timezone         string
	Platform         string
	RenderingProbe   string
}

// SignalSource probes the environment. Any probe may fail.
type SignalSource interface {
	Signals(ctx context.Context) (Signals, error)
}

// Fingerprinter derives a stable per-profile identifier from the environment
// signals and a random seed persisted in the session store. It is a hint for
// recognising a returning device, not a credential.
type Fingerprinter struct {
	source SignalSource
	store  SessionStore
}

// NewFingerprinter reads signals from source and keeps its seed in store.
func NewFingerprinter(source SignalSource, store SessionStore) *Fingerprinter {
	return &Fingerprinter{source: source, store: store}
}

// Fingerprint returns the hex SHA-256 of the signals and seed, or
// ErrFingerprintUnavailable when a probe or the seed storage fails.
func (f *Fingerprinter) Fingerprint(ctx context.Context) (string, error) {
	signals, err := f.source.Signals(ctx)
	if err != nil {
		return "", errors.Wrap(ErrFingerprintUnavailable, err.Error())
	}

	seed, err := f.seed()
	if err != nil {
		return "", errors.Wrap(ErrFingerprintUnavailable, err.Error())
	}

	sum := sha256.Sum256([]byte(strings.Join([]string{
		signals.UserAgent,
		signals.ScreenResolution,
		signals.Timezone,
		signals.Platform,
		signals.RenderingProbe,
		seed,
	}, "\x1f")))

	return hex.EncodeToString(sum[:]), nil
}

// seed returns the persisted random value, creating it on first use.
func (f *Fingerprinter) seed() (string, error) {
	seed, ok, err := f.store.Get(seedKey)
	if err != nil {
		return "", err
	}
	if ok && seed != "" {
		return seed, nil
	}

	buf := make([]byte, seedBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", errors.Wrap(err, "generate seed")
	}
	seed = hex.EncodeToString(buf)

	if err := f.store.Set(seedKey, seed); err != nil {
		return "", err
	}

	return seed, nil
}

// HostSignals probes the machine running a command line client.
type HostSignals struct {
	UserAgent string
}

// Signals reports the host name, platform and local zone.
func (h HostSignals) Signals(context.Context) (Signals, error) {
	hostname, err := os.Hostname()
	if err != nil {
		return Signals{}, errors.Wrap(err, "hostname")
	}

	zone, _ := time.Now().Zone()

	return Signals{
		UserAgent:        h.UserAgent,
		ScreenResolution: "terminal",
		Timezone:         zone,
		Platform:         runtime.GOOS + "/" + runtime.GOARCH,
		RenderingProbe:   hostname,
	}, nil
}
