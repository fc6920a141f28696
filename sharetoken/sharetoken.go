// Package sharetoken serializes a roster into a compact signed token
// so the same draft state can be reproduced in another session. Tokens
// are HMAC-SHA256 signed; decoding re-validates every roster invariant
// before any record is trusted, since the payload may arrive from an
// arbitrary external source.
package sharetoken

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"github.com/fantasydraft/draftpick/models"
)

var (
	ErrInvalidToken  = errors.New("share token is invalid or was tampered with")
	ErrInvalidRoster = errors.New("share token payload violates roster invariants")
)

type tokenParticipant struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	DraftNumber int    `json:"n"`
	CreatedAt   int64  `json:"ts"`
}

type rosterClaims struct {
	Roster []tokenParticipant `json:"roster"`
	jwt.RegisteredClaims
}

// Codec encodes and decodes roster share tokens with a shared secret.
type Codec struct {
	secret []byte
}

func NewCodec(secret string) *Codec {
	return &Codec{secret: []byte(secret)}
}

// Encode serializes the roster as a signed token. The caller is
// expected to hold an invariant-preserving roster; no validation
// happens on the way out.
func (c *Codec) Encode(roster []*models.Participant) (string, error) {
	claims := rosterClaims{
		Roster: make([]tokenParticipant, 0, len(roster)),
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:   "draftpick",
			IssuedAt: jwt.NewNumericDate(time.Now()),
		},
	}
	for _, p := range roster {
		claims.Roster = append(claims.Roster, tokenParticipant{
			ID:          p.ID,
			Name:        p.Name,
			DraftNumber: p.DraftNumber,
			CreatedAt:   p.CreatedAt.Unix(),
		})
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign share token: %w", err)
	}
	return signed, nil
}

// Decode verifies the token signature and rebuilds the roster,
// rejecting any payload that fails signature verification or breaks
// the uniqueness and range invariants.
func (c *Codec) Decode(token string) ([]*models.Participant, error) {
	var claims rosterClaims
	_, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return c.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	if err := validateRoster(claims.Roster); err != nil {
		return nil, err
	}

	roster := make([]*models.Participant, 0, len(claims.Roster))
	for _, tp := range claims.Roster {
		roster = append(roster, &models.Participant{
			ID:          tp.ID,
			Name:        tp.Name,
			DraftNumber: tp.DraftNumber,
			CreatedAt:   time.Unix(tp.CreatedAt, 0).UTC(),
		})
	}
	return roster, nil
}

func validateRoster(roster []tokenParticipant) error {
	if len(roster) > models.PoolSize {
		return fmt.Errorf("%w: %d records exceed pool size %d",
			ErrInvalidRoster, len(roster), models.PoolSize)
	}

	seenNames := make(map[string]bool, len(roster))
	seenNumbers := make(map[int]bool, len(roster))
	for _, tp := range roster {
		name := strings.TrimSpace(tp.Name)
		if name == "" {
			return fmt.Errorf("%w: blank participant name", ErrInvalidRoster)
		}
		if tp.DraftNumber < 1 || tp.DraftNumber > models.PoolSize {
			return fmt.Errorf("%w: draft number %d outside [1, %d]",
				ErrInvalidRoster, tp.DraftNumber, models.PoolSize)
		}
		lower := strings.ToLower(name)
		if seenNames[lower] {
			return fmt.Errorf("%w: duplicate participant name %q", ErrInvalidRoster, name)
		}
		if seenNumbers[tp.DraftNumber] {
			return fmt.Errorf("%w: duplicate draft number %d", ErrInvalidRoster, tp.DraftNumber)
		}
		seenNames[lower] = true
		seenNumbers[tp.DraftNumber] = true
	}
	return nil
}
