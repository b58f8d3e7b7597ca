package pattern

import (
	"errors"
	"fmt"
	"strings"

	"github.com/indigo-web/pathway/kv"
)

type Kind uint8

// Kinds are ordered by specificity: a literal segment is more specific than a wildcard,
// which is in turn more specific than a catch-all.
const (
	Literal Kind = iota
	Wildcard
	CatchAll
)

var ErrEmptyPattern = errors.New("pattern cannot be empty")

type Segment struct {
	Kind Kind
	// Payload is the literal text for Literal segments and the parameter name otherwise.
	Payload string
}

// Pattern is a parsed route pattern. Segments are the slash-separated parts of it, the
// leading slash excluded. The root pattern has no segments at all.
type Pattern struct {
	raw      string
	segments []Segment
}

// Parse parses the pattern. A segment starting with a colon (:name) captures exactly one
// path segment, which may be empty, a segment starting with an asterisk (*name) captures the rest of the path
// and is allowed only as the last one. Everything else is matched literally.
func Parse(pattern string) (Pattern, error) {
	if len(pattern) == 0 {
		return Pattern{}, ErrEmptyPattern
	}

	if pattern[0] != '/' {
		return Pattern{}, fmt.Errorf(`"%s": a leading slash is required`, pattern)
	}

	p := Pattern{raw: pattern}
	if pattern == "/" {
		return p, nil
	}

	parts := strings.Split(pattern[1:], "/")
	p.segments = make([]Segment, 0, len(parts))

	for i, part := range parts {
		segment := Segment{Kind: Literal, Payload: part}

		if len(part) > 0 {
			switch part[0] {
			case ':':
				segment = Segment{Kind: Wildcard, Payload: part[1:]}
			case '*':
				if i != len(parts)-1 {
					return Pattern{}, fmt.Errorf(`"%s": catch-all is allowed only at the end`, pattern)
				}

				segment = Segment{Kind: CatchAll, Payload: part[1:]}
			}
		}

		if segment.Kind != Literal {
			if len(segment.Payload) == 0 {
				return Pattern{}, fmt.Errorf(`"%s": wildcard name cannot be empty`, pattern)
			}

			if p.has(segment.Payload) {
				return Pattern{}, fmt.Errorf(`"%s": duplicate wildcard name "%s"`, pattern, segment.Payload)
			}
		}

		p.segments = append(p.segments, segment)
	}

	return p, nil
}

func MustParse(pattern string) Pattern {
	p, err := Parse(pattern)
	if err != nil {
		panic(err.Error())
	}

	return p
}

// Literally returns a pattern consisting of literal segments only, so that colons and
// asterisks in the path aren't treated specially. The path must start with a slash.
func Literally(path string) Pattern {
	p := Pattern{raw: path}
	if len(path) <= 1 {
		return p
	}

	for _, part := range strings.Split(path[1:], "/") {
		p.segments = append(p.segments, Segment{Kind: Literal, Payload: part})
	}

	return p
}

func (p Pattern) has(name string) bool {
	for _, segment := range p.segments {
		if segment.Kind != Literal && segment.Payload == name {
			return true
		}
	}

	return false
}

// Match reports whether the path matches the pattern. Wildcard values are added to params,
// which may be nil if they aren't needed. On a failed match params may be partially filled.
func (p Pattern) Match(path string, params *kv.Storage) bool {
	if len(path) == 0 || path[0] != '/' {
		return false
	}

	rest := path[1:]
	if len(p.segments) == 0 {
		return len(rest) == 0
	}

	exhausted := false

	for _, segment := range p.segments {
		if exhausted {
			// the path has fewer segments than the pattern
			return false
		}

		if segment.Kind == CatchAll {
			if params != nil {
				params.Add(segment.Payload, rest)
			}

			return true
		}

		part, tail, found := strings.Cut(rest, "/")
		rest, exhausted = tail, !found

		switch segment.Kind {
		case Literal:
			if part != segment.Payload {
				return false
			}
		case Wildcard:
			if params != nil {
				params.Add(segment.Payload, part)
			}
		}
	}

	return exhausted
}

// Segments returns the parsed segments. The returned slice must not be modified.
func (p Pattern) Segments() []Segment {
	return p.segments
}

// Len returns the number of segments.
func (p Pattern) Len() int {
	return len(p.segments)
}

// IsStatic tells whether the pattern contains no wildcards.
func (p Pattern) IsStatic() bool {
	for _, segment := range p.segments {
		if segment.Kind != Literal {
			return false
		}
	}

	return true
}

func (p Pattern) String() string {
	return p.raw
}

// Compare orders patterns from the most specific to the least one. Patterns with more
// segments go first. Among equally long ones, the first differing segment kind decides.
// It returns 0 if neither is more specific.
func Compare(a, b Pattern) int {
	if len(a.segments) != len(b.segments) {
		return len(b.segments) - len(a.segments)
	}

	for i := range a.segments {
		if ka, kb := a.segments[i].Kind, b.segments[i].Kind; ka != kb {
			return int(ka) - int(kb)
		}
	}

	return 0
}
