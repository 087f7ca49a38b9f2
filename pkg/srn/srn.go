// Package srn implements the System Resource Name codec. An SRN is the
// typed reference string "type:identifier" (or "paymentmethod:identifier:ach"
// for ACH payment methods) that the Wyre API uses to point at any platform
// entity or external address.
package srn

import (
	"fmt"
	"strings"
)

// Kind identifies what an SRN refers to.
type Kind string

const (
	Account       Kind = "account"
	User          Kind = "user"
	Wallet        Kind = "wallet"
	Transfer      Kind = "transfer"
	PaymentMethod Kind = "paymentmethod"
	// ACHPaymentMethod is a payment method reference carrying the ach
	// suffix. It shares the "paymentmethod" tag on the wire.
	ACHPaymentMethod Kind = "achpaymentmethod"
	Email            Kind = "email"
	Cellphone        Kind = "cellphone"
	Bitcoin          Kind = "bitcoin"
	Ethereum         Kind = "ethereum"
	Avalanche        Kind = "avalanche"
	Stellar          Kind = "stellar"
	Algorand         Kind = "algorand"
	Matic            Kind = "matic"
	Flow             Kind = "flow"
	Loopring         Kind = "loopring"
)

// validTags are the recognized wire tags, in the order they are reported by
// UnknownVariantError.
var validTags = []string{
	"account", "user", "wallet", "transfer", "paymentmethod",
	"email", "cellphone", "bitcoin", "ethereum", "avalanche",
	"stellar", "algorand", "matic", "flow", "loopring",
}

var tagKinds = map[string]Kind{
	"account":       Account,
	"user":          User,
	"wallet":        Wallet,
	"transfer":      Transfer,
	"paymentmethod": PaymentMethod,
	"email":         Email,
	"cellphone":     Cellphone,
	"bitcoin":       Bitcoin,
	"ethereum":      Ethereum,
	"avalanche":     Avalanche,
	"stellar":       Stellar,
	"algorand":      Algorand,
	"matic":         Matic,
	"flow":          Flow,
	"loopring":      Loopring,
}

// SRN is a typed reference to a platform entity or external address. The
// identifier is opaque to the client. SRNs are immutable values; build them
// with New or Parse.
type SRN struct {
	Kind Kind
	ID   string
}

// New builds an SRN from a kind and an opaque identifier.
func New(kind Kind, id string) SRN {
	return SRN{Kind: kind, ID: id}
}

// Parse decodes the textual form "type:identifier[:suffix]".
//
// The only recognized suffix is "ach", and only on the "paymentmethod" tag.
// An unrecognized type tag fails with *UnknownVariantError, an input without
// a type segment fails with *MissingTypeError.
func Parse(text string) (SRN, error) {
	parts := strings.SplitN(text, ":", 3)
	if len(parts) < 2 || parts[0] == "" {
		return SRN{}, &MissingTypeError{Input: text}
	}

	tag, id := parts[0], parts[1]
	suffix := ""
	if len(parts) == 3 {
		suffix = parts[2]
	}

	kind, ok := tagKinds[tag]
	if !ok {
		return SRN{}, &UnknownVariantError{Tag: tag}
	}

	if suffix != "" {
		if kind != PaymentMethod || suffix != "ach" {
			return SRN{}, &UnsupportedSuffixError{Tag: tag, Suffix: suffix}
		}
		kind = ACHPaymentMethod
	}

	return SRN{Kind: kind, ID: id}, nil
}

// String formats the SRN back to its textual form. Parse(x.String()) == x
// for every constructible value.
func (s SRN) String() string {
	if s.Kind == ACHPaymentMethod {
		return "paymentmethod:" + s.ID + ":ach"
	}
	return string(s.Kind) + ":" + s.ID
}

// IsZero reports whether the SRN is the zero value.
func (s SRN) IsZero() bool {
	return s.Kind == "" && s.ID == ""
}

// MarshalText implements encoding.TextMarshaler. SRNs serialize as plain
// strings in JSON bodies and query parameters.
func (s SRN) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *SRN) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// MissingTypeError reports an input with no type segment (empty input or no
// colon separator).
type MissingTypeError struct {
	Input string
}

func (e *MissingTypeError) Error() string {
	return fmt.Sprintf("srn %q: missing type tag", e.Input)
}

// UnknownVariantError reports a type tag outside the recognized set. It is a
// protocol-version-mismatch signal: the server may have introduced a new
// reference kind this client does not know.
type UnknownVariantError struct {
	Tag string
}

func (e *UnknownVariantError) Error() string {
	return fmt.Sprintf("srn: unknown type %q (valid types: %s)", e.Tag, strings.Join(validTags, ", "))
}

// UnsupportedSuffixError reports a suffix segment that has no meaning for the
// given type tag. The only suffix the API defines is "ach" on "paymentmethod".
type UnsupportedSuffixError struct {
	Tag    string
	Suffix string
}

func (e *UnsupportedSuffixError) Error() string {
	return fmt.Sprintf("srn: type %q does not support suffix %q", e.Tag, e.Suffix)
}
