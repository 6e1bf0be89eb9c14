package rules

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// ErrParse is matched by every error returned from Parse.
var ErrParse = errors.New("invalid rulestring")

// maxChannels is the largest LtL channel count that still describes a two-state rule.
const maxChannels = 2

// ParseError describes a rulestring that could not be read.
type ParseError struct {
	Input  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("rules: parse %q: %s", e.Input, e.Reason)
}

// Unwrap lets errors.Is match ErrParse.
func (e *ParseError) Unwrap() error { return ErrParse }

func parseErr(input, format string, args ...any) error {
	return &ParseError{Input: input, Reason: fmt.Sprintf(format, args...)}
}

// Parse reads either notation:
//
//	B<digits>/S<digits>                        e.g. B3/S23
//	R<r>,C<c>,M<0|1>,S<lo>..<hi>,B<lo>..<hi>,NM  e.g. R5,C0,M1,S34..58,B34..45,NM
//
// Whitespace is ignored and letters are case-insensitive. LtL ranges expand to
// every integer between their bounds.
func Parse(s string) (*RuleSet, error) {
	norm := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return unicode.ToUpper(r)
	}, s)
	if norm == "" {
		return nil, parseErr(s, "empty rulestring")
	}
	var (
		rule *RuleSet
		err  error
	)
	if norm[0] == 'R' {
		rule, err = parseLtL(s, norm)
	} else {
		rule, err = parseBS(s, norm)
	}
	if err != nil {
		return nil, err
	}
	if err := rule.Validate(); err != nil {
		return nil, parseErr(s, "%v", err)
	}
	return rule, nil
}

// MustParse is Parse for rulestrings known to be valid; it panics otherwise.
func MustParse(s string) *RuleSet {
	r, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return r
}

func parseBS(input, norm string) (*RuleSet, error) {
	var (
		birth, survive []int
		target         *[]int
		seenB, seenS   bool
	)
	for _, c := range norm {
		switch {
		case c == 'B':
			if seenB {
				return nil, parseErr(input, "duplicate B marker")
			}
			seenB = true
			target = &birth
		case c == 'S':
			if seenS {
				return nil, parseErr(input, "duplicate S marker")
			}
			seenS = true
			target = &survive
		case c == '/':
			target = nil
		case c >= '0' && c <= '9':
			if target == nil {
				return nil, parseErr(input, "digit %q outside a B or S field", c)
			}
			*target = append(*target, int(c-'0'))
		default:
			return nil, parseErr(input, "unexpected character %q", c)
		}
	}
	if !seenB {
		return nil, parseErr(input, "missing B marker")
	}
	if !seenS {
		return nil, parseErr(input, "missing S marker")
	}
	return New(birth, survive, 1, false), nil
}

func parseLtL(input, norm string) (*RuleSet, error) {
	var (
		spread        = -1
		includeCenter bool
		ranges        = map[byte]string{}
		seen          = map[byte]bool{}
	)
	for _, field := range strings.Split(norm, ",") {
		if field == "" {
			return nil, parseErr(input, "empty field")
		}
		key, val := field[0], field[1:]
		if seen[key] {
			return nil, parseErr(input, "duplicate %c field", key)
		}
		seen[key] = true
		switch key {
		case 'R':
			n, err := strconv.Atoi(val)
			if err != nil || n < 1 {
				return nil, parseErr(input, "invalid range R%s", val)
			}
			if n > MaxSpread {
				return nil, parseErr(input, "range %d exceeds %d", n, MaxSpread)
			}
			spread = n
		case 'C':
			n, err := strconv.Atoi(val)
			if err != nil || n < 0 {
				return nil, parseErr(input, "invalid channel count C%s", val)
			}
			if n > maxChannels {
				return nil, parseErr(input, "channel count %d exceeds two-state limit", n)
			}
		case 'M':
			switch val {
			case "0":
				includeCenter = false
			case "1":
				includeCenter = true
			default:
				return nil, parseErr(input, "invalid middle flag M%s", val)
			}
		case 'S', 'B':
			// Expanded once R and M are known.
			ranges[key] = val
		case 'N':
			if val != "M" {
				return nil, parseErr(input, "unsupported neighborhood N%s", val)
			}
		default:
			return nil, parseErr(input, "unknown field %q", field)
		}
	}
	if spread < 0 {
		return nil, parseErr(input, "missing R field")
	}
	if !seen['B'] || !seen['S'] {
		return nil, parseErr(input, "missing B or S field")
	}
	limit := (&RuleSet{Spread: spread, IncludeCenter: includeCenter}).NeighborCountLimit()
	survive, err := parseRange(ranges['S'], limit)
	if err != nil {
		return nil, parseErr(input, "field S: %v", err)
	}
	birth, err := parseRange(ranges['B'], limit)
	if err != nil {
		return nil, parseErr(input, "field B: %v", err)
	}
	return New(birth, survive, spread, includeCenter), nil
}

// parseRange reads "lo..hi", a single "n" or "" (no counts). Bounds above
// limit are rejected before the range is expanded.
func parseRange(val string, limit int) ([]int, error) {
	if val == "" {
		return nil, nil
	}
	loStr, hiStr, isRange := strings.Cut(val, "..")
	if !isRange {
		hiStr = loStr
	}
	lo, err := strconv.Atoi(loStr)
	if err != nil || lo < 0 {
		return nil, fmt.Errorf("invalid range %q", val)
	}
	hi, err := strconv.Atoi(hiStr)
	if err != nil || hi < lo {
		return nil, fmt.Errorf("invalid range %q", val)
	}
	if hi > limit {
		return nil, fmt.Errorf("count %d exceeds neighborhood limit %d", hi, limit)
	}
	out := make([]int, 0, hi-lo+1)
	for n := lo; n <= hi; n++ {
		out = append(out, n)
	}
	return out, nil
}

// Generate writes r in LtL notation when it has a radius above 1 or counts
// its center, and in B/S notation otherwise.
//
// LtL output only carries the lowest and highest count of each set, so a set
// with gaps comes back from Parse as its contiguous envelope. B/S output is
// exact. A count above 9 cannot be written as a single B/S digit, so such
// rules are written in LtL notation as well; they only parse back if they pass
// Validate.
func Generate(r *RuleSet) string {
	if r.IsLtL() || hasMultiDigit(r.birth) || hasMultiDigit(r.survive) {
		return generateLtL(r)
	}
	return generateBS(r)
}

func hasMultiDigit(s countSet) bool {
	hi, ok := s.max()
	return ok && hi > 9
}

func generateBS(r *RuleSet) string {
	var sb strings.Builder
	sb.WriteByte('B')
	for _, n := range r.Birth() {
		sb.WriteString(strconv.Itoa(n))
	}
	sb.WriteString("/S")
	for _, n := range r.Survive() {
		sb.WriteString(strconv.Itoa(n))
	}
	return sb.String()
}

func generateLtL(r *RuleSet) string {
	center := 0
	if r.IncludeCenter {
		center = 1
	}
	return fmt.Sprintf("R%d,C0,M%d,S%s,B%s,NM", r.Spread, center, envelope(r.survive), envelope(r.birth))
}

func envelope(s countSet) string {
	lo, ok := s.min()
	if !ok {
		return ""
	}
	hi, _ := s.max()
	return fmt.Sprintf("%d..%d", lo, hi)
}
