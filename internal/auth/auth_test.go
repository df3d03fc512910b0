package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/brinto-swe/event-management-system/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func fixedTokens(at time.Time) *ActivationTokens {
	tokens := NewActivationTokens("secret", 72*time.Hour)
	tokens.now = func() time.Time { return at }
	return tokens
}

func TestActivationTokens_RoundTrip(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	tokens := fixedTokens(now)
	user := &domain.User{ID: "u1", PasswordHash: "hash"}

	token := tokens.Make(user)

	assert.True(t, tokens.Check(user, token))
}

func TestActivationTokens_BoundToAccount(t *testing.T) {
	tokens := fixedTokens(time.Now())
	alice := &domain.User{ID: "u1", PasswordHash: "hash"}
	bob := &domain.User{ID: "u2", PasswordHash: "hash"}

	assert.False(t, tokens.Check(bob, tokens.Make(alice)))
}

func TestActivationTokens_InvalidatedByStateChange(t *testing.T) {
	tokens := fixedTokens(time.Now())
	user := &domain.User{ID: "u1", PasswordHash: "hash"}
	token := tokens.Make(user)

	activated := *user
	activated.IsActive = true
	assert.False(t, tokens.Check(&activated, token))

	rehashed := *user
	rehashed.PasswordHash = "other"
	assert.False(t, tokens.Check(&rehashed, token))
}

func TestActivationTokens_Expiry(t *testing.T) {
	issued := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	user := &domain.User{ID: "u1", PasswordHash: "hash"}
	token := fixedTokens(issued).Make(user)

	assert.True(t, fixedTokens(issued.Add(71*time.Hour)).Check(user, token))
	assert.False(t, fixedTokens(issued.Add(73*time.Hour)).Check(user, token))
}

func TestActivationTokens_Malformed(t *testing.T) {
	tokens := fixedTokens(time.Now())
	user := &domain.User{ID: "u1"}

	for _, token := range []string{"", "abc", "zz-", "!!-deadbeef"} {
		assert.False(t, tokens.Check(user, token), token)
	}

	valid := tokens.Make(user)
	tampered := valid[:len(valid)-1] + "0"
	if strings.HasSuffix(valid, "0") {
		tampered = valid[:len(valid)-1] + "1"
	}
	assert.False(t, tokens.Check(user, tampered))
}

func TestUID_RoundTrip(t *testing.T) {
	id := "2f0e4a52-54c5-4a3a-9a58-0d7c1f0d5c11"

	got, err := DecodeUID(EncodeUID(id))

	require.NoError(t, err)
	assert.Equal(t, id, got)

	_, err = DecodeUID("%%%")
	assert.Error(t, err)
}

func TestSessionToken(t *testing.T) {
	token, hash, err := NewSessionToken()

	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, HashSessionToken(token), hash)
	assert.NotEqual(t, token, hash)
}

func TestPasswordHasher(t *testing.T) {
	h := NewPasswordHasher(bcrypt.MinCost)

	hash, err := h.Hash("correct horse")
	require.NoError(t, err)

	assert.True(t, h.Compare(hash, "correct horse"))
	assert.False(t, h.Compare(hash, "wrong"))
	assert.False(t, h.Compare("not-a-hash", "correct horse"))
}
