package types //nolint:revive,nolintlint // allow pkg name 'types'

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common/math"
)

// ErrInvalidAmount is returned when an amount cannot be parsed as an unsigned 256 bit integer.
var ErrInvalidAmount = errors.New("invalid amount")

// exponentPrecision is wide enough to hold any 256 bit integer written in exponent form exactly.
const exponentPrecision = 512

// Amount wraps a big.Int with support for JSON encoding. Token amounts such as the VRF fee
// routinely exceed the precision of a JSON float, so both numbers and strings are accepted.
type Amount struct {
	*big.Int
}

// NewAmount wraps a big.Int with an Amount.
func NewAmount(v *big.Int) Amount {
	return Amount{Int: v}
}

// ParseAmount parses a decimal, 0x prefixed hexadecimal or integral exponent ("1e17") string.
func ParseAmount(s string) (Amount, error) {
	trimmed := strings.TrimSpace(s)

	v, ok := math.ParseBig256(trimmed)
	if !ok {
		v, ok = parseExponent(trimmed)
	}
	if !ok || v.Sign() < 0 {
		return Amount{}, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}

	return NewAmount(v), nil
}

// parseExponent accepts scientific notation as long as it denotes an integer that fits in
// 256 bits.
func parseExponent(s string) (*big.Int, bool) {
	if !strings.ContainsAny(s, "eE") || strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		return nil, false
	}

	f, _, err := big.ParseFloat(s, 10, exponentPrecision, big.ToNearestEven)
	if err != nil {
		return nil, false
	}

	v, acc := f.Int(nil)
	if acc != big.Exact || v.BitLen() > 256 {
		return nil, false
	}

	return v, true
}

// MustParseAmount parses an amount string. Panics if the string is invalid.
//
// Useful for tests, but should be avoided in production code.
func MustParseAmount(s string) Amount {
	a, err := ParseAmount(s)
	if err != nil {
		panic(err)
	}

	return a
}

// IsZero reports whether the amount is unset or zero.
func (a Amount) IsZero() bool {
	return a.Int == nil || a.Sign() == 0
}

// String returns the decimal representation of the amount.
func (a Amount) String() string {
	if a.Int == nil {
		return "0"
	}

	return a.Int.String()
}

// MarshalJSON encodes the amount as a decimal string and implements the json.Marshaler interface.
func (a Amount) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.String())
}

// UnmarshalJSON decodes a JSON number or string and implements the json.Unmarshaler interface.
func (a *Amount) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		a.Int = nil
		return nil
	}

	var raw string
	if len(b) > 0 && b[0] == '"' {
		if err := json.Unmarshal(b, &raw); err != nil {
			return err
		}
	} else {
		raw = string(b)
	}

	parsed, err := ParseAmount(raw)
	if err != nil {
		return err
	}
	a.Int = parsed.Int

	return nil
}
