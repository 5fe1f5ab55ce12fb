package tracking

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrMalformedNumber is returned when an input string does not match any
// known prefix/sequence/year pattern. Parsing happens before any storage
// access, so a malformed number never reaches the database.
var ErrMalformedNumber = errors.New("malformed tracking number")

// Number is the parsed form of a human-facing tracking number such as
// "TK-12/25": a kind, a per-(kind, year) sequence, and a two-digit year.
type Number struct {
	Kind     Kind
	Sequence int
	Year     int
}

// FormatNumber renders the canonical wire form {PREFIX}-{sequence}/{yy}.
// The sequence is not zero-padded; the year always prints as two digits.
func FormatNumber(kind Kind, sequence, year int) string {
	return fmt.Sprintf("%s-%d/%02d", kind.Prefix(), sequence, year%100)
}

// CurrentYear returns the two-digit year used for sequence allocation.
// Years are stored and matched in two-digit form everywhere, so parsed
// numbers compare directly against stored rows.
func CurrentYear() int {
	return time.Now().Year() % 100
}

// String returns the canonical wire form of the number.
func (n Number) String() string {
	return FormatNumber(n.Kind, n.Sequence, n.Year)
}

// ParseNumber parses a user-supplied tracking number. Input is trimmed and
// matched case-insensitively; the canonical form is always upper-case on
// output. Returns ErrMalformedNumber if the prefix is unrecognized or the
// suffix is not sequence/2-digit-year.
func ParseNumber(input string) (Number, error) {
	s := strings.ToUpper(strings.TrimSpace(input))

	dash := strings.IndexByte(s, '-')
	if dash <= 0 {
		return Number{}, fmt.Errorf("%w: %q", ErrMalformedNumber, input)
	}

	kind, ok := prefixKinds[s[:dash]]
	if !ok {
		return Number{}, fmt.Errorf("%w: unknown prefix in %q", ErrMalformedNumber, input)
	}

	rest := s[dash+1:]
	slash := strings.IndexByte(rest, '/')
	if slash <= 0 {
		return Number{}, fmt.Errorf("%w: %q", ErrMalformedNumber, input)
	}

	sequence, err := strconv.Atoi(rest[:slash])
	if err != nil || sequence <= 0 {
		return Number{}, fmt.Errorf("%w: invalid sequence in %q", ErrMalformedNumber, input)
	}

	yearPart := rest[slash+1:]
	if len(yearPart) != 2 {
		return Number{}, fmt.Errorf("%w: invalid year in %q", ErrMalformedNumber, input)
	}
	year, err := strconv.Atoi(yearPart)
	if err != nil {
		return Number{}, fmt.Errorf("%w: invalid year in %q", ErrMalformedNumber, input)
	}

	return Number{Kind: kind, Sequence: sequence, Year: year}, nil
}
