// Package util holds formatting helpers for operator-facing output.
package util

import (
	"strconv"
)

// fingerprintPrefix is how much of a device fingerprint is shown to hosts.
const fingerprintPrefix = 12

var byteUnits = []string{"KB", "MB", "GB", "TB", "PB", "EB"}

// FormatBytes renders n in binary units with one decimal, e.g. "1.5 KB".
// Values under 1 KiB are printed as whole bytes.
func FormatBytes(n int64) string {
	if n < 1024 {
		return strconv.FormatInt(n, 10) + " B"
	}

	value := float64(n) / 1024
	unit := 0
	for value >= 1024 && unit < len(byteUnits)-1 {
		value /= 1024
		unit++
	}

	return strconv.FormatFloat(value, 'f', 1, 64) + " " + byteUnits[unit]
}

// ShortFingerprint returns the leading part of a device fingerprint hash.
func ShortFingerprint(fp string) string {
	if len(fp) <= fingerprintPrefix {
		return fp
	}

	return fp[:fingerprintPrefix]
}
