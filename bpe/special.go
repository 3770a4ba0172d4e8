package bpe

import (
	"regexp"
	"sort"
	"strings"

	"github.com/dlclark/regexp2"
)

// allSpecialSentinel is the magic value recognized in allowed/disallowed
// special-token sets meaning "every special token this Encoding knows
// about", per spec §4.4.
const allSpecialSentinel = "all"

// compileSpecialRegex builds an alternation that matches any of the given
// special-token literals. Tokens are sorted longest-first so that, when one
// special token's text is a prefix of another's, the longer one is tried
// first — mirroring how the reference implementation's HashSet iteration
// order happens to never matter in practice because no two OpenAI special
// tokens are specified as prefixes of one another, but sorting longest-first
// removes the dependency on that coincidence.
func compileSpecialRegex(names []string) (*regexp2.Regexp, error) {
	if len(names) == 0 {
		return nil, nil
	}

	sorted := make([]string, len(names))
	copy(sorted, names)
	sort.Slice(sorted, func(i, j int) bool { return len(sorted[i]) > len(sorted[j]) })

	escaped := make([]string, len(sorted))
	for i, name := range sorted {
		escaped[i] = regexp.QuoteMeta(name)
	}

	re, err := regexp2.Compile(strings.Join(escaped, "|"), regexp2.None)
	if err != nil {
		return nil, newRegexError("compile special-token pattern", err)
	}
	return re, nil
}

// specialTokenSet resolves an allowed/disallowed argument (which may
// contain the "all" sentinel) into the concrete set of special-token names
// it denotes, given the full set of special tokens this Encoding defines.
func specialTokenSet(requested []string, all SpecialMap) map[string]struct{} {
	set := make(map[string]struct{}, len(requested))
	for _, name := range requested {
		if name == allSpecialSentinel {
			for tok := range all {
				set[tok] = struct{}{}
			}
			continue
		}
		set[name] = struct{}{}
	}
	return set
}

// findDisallowedSpecial scans text for the first occurrence of any special
// token in disallowed and returns its name, or "" if none is present. This
// implements the full-input pre-check required before any emission begins
// (spec §4.4 step 1, §7): encoding must fail atomically, never emit a
// partial token stream before discovering a disallowed special token later
// in the input.
func findDisallowedSpecial(text string, disallowed map[string]struct{}, re *regexp2.Regexp) (string, error) {
	if re == nil || len(disallowed) == 0 {
		return "", nil
	}

	m, err := re.FindStringMatch(text)
	for m != nil {
		if err != nil {
			return "", newRegexError("scan for disallowed special tokens", err)
		}
		if _, ok := disallowed[m.String()]; ok {
			return m.String(), nil
		}
		m, err = re.FindNextMatch(m)
	}
	if err != nil {
		return "", newRegexError("scan for disallowed special tokens", err)
	}
	return "", nil
}

// splitOnAllowedSpecial partitions text into alternating ordinary and
// special segments, using only the special tokens named in allowed.
// Segments are returned in order; isSpecial marks which ones are literal
// special-token text.
//
// m.Index and m.Length from regexp2 are rune offsets, not byte offsets, so
// this slices a []rune of text rather than text itself — slicing the raw
// string at those offsets would cut multi-byte runes in half whenever a
// non-ASCII character appears before or around a special token.
func splitOnAllowedSpecial(text string, allowed map[string]struct{}, re *regexp2.Regexp) ([]string, []bool, error) {
	if re == nil || len(allowed) == 0 {
		return []string{text}, []bool{false}, nil
	}

	runes := []rune(text)
	var segments []string
	var isSpecial []bool

	pos := 0
	m, err := re.FindStringMatch(text)
	for m != nil {
		if err != nil {
			return nil, nil, newRegexError("split on allowed special tokens", err)
		}
		name := m.String()
		if _, ok := allowed[name]; !ok {
			m, err = re.FindNextMatch(m)
			continue
		}

		start := m.Index
		if start > pos {
			segments = append(segments, string(runes[pos:start]))
			isSpecial = append(isSpecial, false)
		}
		segments = append(segments, name)
		isSpecial = append(isSpecial, true)
		pos = start + m.Length

		m, err = re.FindNextMatch(m)
	}
	if err != nil {
		return nil, nil, newRegexError("split on allowed special tokens", err)
	}

	if pos < len(runes) {
		segments = append(segments, string(runes[pos:]))
		isSpecial = append(isSpecial, false)
	}
	if len(segments) == 0 {
		segments = append(segments, "")
		isSpecial = append(isSpecial, false)
	}

	return segments, isSpecial, nil
}
