package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/brinto-swe/event-management-system/internal/domain"
)

// ActivationTokens issues and verifies account activation tokens.
//
// A token is "<issued unix seconds, base36>-<hmac>". The MAC covers the
// account id and the parts of its state that activation or a credential
// change would alter, so a token stops verifying once the account is
// activated or its password changes.
type ActivationTokens struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewActivationTokens(secret string, ttl time.Duration) *ActivationTokens {
	return &ActivationTokens{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

func (t *ActivationTokens) TTL() time.Duration {
	return t.ttl
}

func (t *ActivationTokens) Make(u *domain.User) string {
	return t.makeAt(u, t.now().Unix())
}

func (t *ActivationTokens) Check(u *domain.User, token string) bool {
	tsPart, _, ok := strings.Cut(token, "-")
	if !ok || u == nil {
		return false
	}

	issued, err := strconv.ParseInt(tsPart, 36, 64)
	if err != nil {
		return false
	}

	expected := t.makeAt(u, issued)
	if !hmac.Equal([]byte(expected), []byte(token)) {
		return false
	}

	age := t.now().Sub(time.Unix(issued, 0))
	return age >= 0 && age <= t.ttl
}

func (t *ActivationTokens) makeAt(u *domain.User, issued int64) string {
	mac := hmac.New(sha256.New, t.secret)
	mac.Write([]byte(u.ID))
	mac.Write([]byte{0})
	mac.Write([]byte(u.PasswordHash))
	mac.Write([]byte{0})
	mac.Write([]byte(strconv.FormatBool(u.IsActive)))
	mac.Write([]byte{0})
	if u.LastLogin != nil {
		mac.Write([]byte(strconv.FormatInt(u.LastLogin.Unix(), 10)))
	}
	mac.Write([]byte{0})
	mac.Write([]byte(strconv.FormatInt(issued, 10)))

	sum := hex.EncodeToString(mac.Sum(nil))
	return strconv.FormatInt(issued, 36) + "-" + sum[:40]
}

var errBadUID = errors.New("malformed uid")

// EncodeUID and DecodeUID produce the url-safe account reference used in activation links.
func EncodeUID(id string) string {
	return base64URL.EncodeToString([]byte(id))
}

func DecodeUID(uid string) (string, error) {
	b, err := base64URL.DecodeString(uid)
	if err != nil || len(b) == 0 {
		return "", errBadUID
	}
	return string(b), nil
}
