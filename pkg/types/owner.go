package types

import "errors"

// Owner tag wire literals. A stored record carries its owner as a single
// string: "guest", the legacy literal "registered", or an account identifier.
const (
	OwnerTagGuest      = "guest"
	OwnerTagRegistered = "registered"
)

// Owner validation errors.
var (
	ErrInvalidOwner = errors.New("invalid owner tag")
)

// Owner discriminates which store conceptually holds a record. It is a closed
// variant: Guest, or Registered with an optional account identifier. The zero
// value is invalid; records without a recognizable owner tag are treated as
// malformed and skipped on scan.
type Owner struct {
	tag     string
	account string
}

// Guest returns the owner tag for entities living in the device-local store.
func Guest() Owner {
	return Owner{tag: OwnerTagGuest}
}

// Registered returns the owner tag for entities belonging to an account.
// An empty accountID corresponds to the legacy literal "registered".
func Registered(accountID string) Owner {
	return Owner{tag: OwnerTagRegistered, account: accountID}
}

// ParseOwner converts a wire string into an Owner.
// Returns ErrInvalidOwner for the empty string.
func ParseOwner(s string) (Owner, error) {
	switch s {
	case "":
		return Owner{}, ErrInvalidOwner
	case OwnerTagGuest:
		return Guest(), nil
	case OwnerTagRegistered:
		return Registered(""), nil
	default:
		return Registered(s), nil
	}
}

// IsGuest reports whether the owner is the guest tag. This is the
// authoritative boundary for what counts as "mine" in guest mode,
// independent of key naming.
func (o Owner) IsGuest() bool {
	return o.tag == OwnerTagGuest
}

// IsRegistered reports whether the owner belongs to an account, including
// the legacy literal with no account identifier.
func (o Owner) IsRegistered() bool {
	return o.tag == OwnerTagRegistered
}

// Valid reports whether the owner carries a recognized tag.
func (o Owner) Valid() bool {
	return o.tag == OwnerTagGuest || o.tag == OwnerTagRegistered
}

// Account returns the account identifier and true when the owner is
// registered with a concrete account.
func (o Owner) Account() (string, bool) {
	if o.tag == OwnerTagRegistered && o.account != "" {
		return o.account, true
	}
	return "", false
}

// String returns the wire form of the owner tag.
func (o Owner) String() string {
	switch o.tag {
	case OwnerTagGuest:
		return OwnerTagGuest
	case OwnerTagRegistered:
		if o.account != "" {
			return o.account
		}
		return OwnerTagRegistered
	default:
		return ""
	}
}

// MarshalText implements encoding.TextMarshaler.
// Marshaling an invalid owner is an error so records never lose their tag.
func (o Owner) MarshalText() ([]byte, error) {
	if !o.Valid() {
		return nil, ErrInvalidOwner
	}
	return []byte(o.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (o *Owner) UnmarshalText(text []byte) error {
	parsed, err := ParseOwner(string(text))
	if err != nil {
		return err
	}
	*o = parsed
	return nil
}
