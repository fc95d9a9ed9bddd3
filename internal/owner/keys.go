// Package owner implements the phone-number owner login: an allow-listed
// phone requests a key that is derived from the phone, a server secret and
// the current local date, and trades it for an owner token.
package owner

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"strings"
	"time"

	"QualityStore/internal/auth"
	"QualityStore/pkg/kit"
)

const keyLen = 12

var (
	ErrPhoneNotAllowed = kit.Forbidden("access denied: this phone number is not authorized for owner access")
	ErrInvalidKey      = kit.Unauthorized("invalid security key")
)

// Keyring derives the daily security keys. Keys are not stored: each check
// recomputes the key for today, so yesterday's key stops working at local
// midnight.
type Keyring struct {
	Owners *auth.PhoneAllowlist
	Secret string
	Now    func() time.Time
}

// KeyFor returns the key of phone on the local calendar day of t.
func (k *Keyring) KeyFor(phone string, t time.Time) string {
	sum := sha256.Sum256([]byte(phone + "_" + k.Secret + "_" + t.Format(time.DateOnly)))
	return strings.ToUpper(hex.EncodeToString(sum[:]))[:keyLen]
}

// RequestKey hands out today's key for an allow-listed phone.
func (k *Keyring) RequestKey(phone string) (string, error) {
	phone = strings.TrimSpace(phone)
	if !k.Owners.Contains(phone) {
		return "", ErrPhoneNotAllowed
	}
	return k.KeyFor(phone, k.now()), nil
}

// Check accepts key if it is today's key for phone. Case and surrounding
// whitespace in key are ignored.
func (k *Keyring) Check(phone, key string) error {
	phone = strings.TrimSpace(phone)
	if !k.Owners.Contains(phone) {
		return ErrPhoneNotAllowed
	}

	want := k.KeyFor(phone, k.now())
	got := strings.ToUpper(strings.TrimSpace(key))
	if subtle.ConstantTimeCompare([]byte(got), []byte(want)) != 1 {
		return ErrInvalidKey
	}
	return nil
}

func (k *Keyring) now() time.Time {
	if k.Now != nil {
		return k.Now()
	}
	return time.Now()
}
