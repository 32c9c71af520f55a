package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// Issuer signs access tokens with a shared HS256 secret.
type Issuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewIssuer(secret []byte, ttl time.Duration) *Issuer {
	return &Issuer{secret: secret, ttl: ttl, now: time.Now}
}

// Issue signs payload as-is, adding iat and exp. Callers are trusted to put
// whatever identity they want in the payload, usually an email.
func (i *Issuer) Issue(payload map[string]interface{}) (string, error) {
	claims := jwt.MapClaims{}
	for key, value := range payload {
		claims[key] = value
	}

	issuedAt := i.now()
	claims["iat"] = issuedAt.Unix()
	claims["exp"] = issuedAt.Add(i.ttl).Unix()

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
}
