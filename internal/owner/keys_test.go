package owner

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"QualityStore/internal/auth"
)

const (
	phoneA = "+85254061680"
	phoneB = "+85211223344"
)

func newKeyring(now *time.Time) *Keyring {
	return &Keyring{
		Owners: auth.NewPhoneAllowlist([]string{phoneA, phoneB}),
		Secret: "s3cret",
		Now:    func() time.Time { return *now },
	}
}

func TestKeyring_KeyFormat(t *testing.T) {
	now := time.Date(2026, 3, 14, 9, 30, 0, 0, time.Local)
	k := newKeyring(&now)

	sum := sha256.Sum256([]byte(phoneA + "_s3cret_2026-03-14"))
	want := strings.ToUpper(hex.EncodeToString(sum[:]))[:12]

	got, err := k.RequestKey("  " + phoneA + " ")
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.Len(t, got, 12)
	assert.Equal(t, strings.ToUpper(got), got)
}

func TestKeyring_RoundTripSameDay(t *testing.T) {
	now := time.Date(2026, 3, 14, 0, 0, 1, 0, time.Local)
	k := newKeyring(&now)

	key, err := k.RequestKey(phoneA)
	require.NoError(t, err)

	now = time.Date(2026, 3, 14, 23, 59, 59, 0, time.Local)
	require.NoError(t, k.Check(phoneA, key))
	require.NoError(t, k.Check(phoneA, " "+strings.ToLower(key)+"\n"), "case and whitespace are ignored")
}

func TestKeyring_RotatesDaily(t *testing.T) {
	now := time.Date(2026, 3, 14, 23, 59, 0, 0, time.Local)
	k := newKeyring(&now)

	key, err := k.RequestKey(phoneA)
	require.NoError(t, err)

	now = now.Add(2 * time.Minute)
	err = k.Check(phoneA, key)
	require.ErrorIs(t, err, ErrInvalidKey)

	next, err := k.RequestKey(phoneA)
	require.NoError(t, err)
	assert.NotEqual(t, key, next)
	require.NoError(t, k.Check(phoneA, next))
}

func TestKeyring_KeysArePerPhoneAndSecret(t *testing.T) {
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.Local)
	k := newKeyring(&now)

	keyA, err := k.RequestKey(phoneA)
	require.NoError(t, err)
	keyB, err := k.RequestKey(phoneB)
	require.NoError(t, err)
	assert.NotEqual(t, keyA, keyB)
	require.ErrorIs(t, k.Check(phoneB, keyA), ErrInvalidKey)

	other := newKeyring(&now)
	other.Secret = "different"
	require.ErrorIs(t, other.Check(phoneA, keyA), ErrInvalidKey)
}

func TestKeyring_UnknownPhoneForbidden(t *testing.T) {
	now := time.Now()
	k := newKeyring(&now)

	_, err := k.RequestKey("+10000000000")
	require.ErrorIs(t, err, ErrPhoneNotAllowed)

	forged := k.KeyFor("+10000000000", now)
	require.ErrorIs(t, k.Check("+10000000000", forged), ErrPhoneNotAllowed)
}
