package language

import (
	"sort"
	"strings"

	"isolang/internal/textutil"
)

// MatchKind ranks how a search query matched a record.
type MatchKind int

const (
	MatchCode MatchKind = iota
	MatchName // a whole synonym equals the query
	MatchPrefix
	MatchSubstring
)

func (k MatchKind) String() string {
	switch k {
	case MatchCode:
		return "code"
	case MatchName:
		return "name"
	case MatchPrefix:
		return "prefix"
	default:
		return "substring"
	}
}

// MarshalText encodes the kind by name.
func (k MatchKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Match is one search hit.
type Match struct {
	Record Record    `json:"record"`
	Kind   MatchKind `json:"kind"`
	Field  string    `json:"field"` // code3, alt_code3, code2, english or french
}

type foldedNames struct {
	english []string
	french  []string
}

var folded map[string]foldedNames

func init() {
	folded = make(map[string]foldedNames, len(records))
	for i := range records {
		r := &records[i]
		folded[r.Code3] = foldedNames{
			english: foldAll(Names(*r)),
			french:  foldAll(FrenchNames(*r)),
		}
	}
}

func foldAll(values []string) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = textutil.Fold(v)
	}
	return out
}

// Search matches query against codes (exactly) and names (case- and
// accent-insensitive substring). Code hits rank first, then names equal to
// the query, then names starting with it, then names containing it; ties
// sort by key. A limit of
// zero or less returns every hit.
func Search(query string, limit int) []Match {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil
	}
	code := strings.ToLower(query)
	needle := textutil.Fold(query)

	var matches []Match
	for i := range records {
		r := records[i]
		if m, ok := matchRecord(r, code, needle); ok {
			matches = append(matches, m)
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].Kind != matches[j].Kind {
			return matches[i].Kind < matches[j].Kind
		}
		return matches[i].Record.Code3 < matches[j].Record.Code3
	})
	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}
	return matches
}

func matchRecord(r Record, code, needle string) (Match, bool) {
	switch code {
	case r.Code3:
		return Match{Record: r, Kind: MatchCode, Field: "code3"}, true
	case r.AltCode3:
		return Match{Record: r, Kind: MatchCode, Field: "alt_code3"}, true
	case r.Code2:
		return Match{Record: r, Kind: MatchCode, Field: "code2"}, true
	}

	names := folded[r.Code3]
	best := Match{Kind: -1}
	consider := func(values []string, field string) {
		for _, v := range values {
			var kind MatchKind
			switch {
			case v == needle:
				kind = MatchName
			case strings.HasPrefix(v, needle):
				kind = MatchPrefix
			case strings.Contains(v, needle):
				kind = MatchSubstring
			default:
				continue
			}
			if best.Kind < 0 || kind < best.Kind {
				best = Match{Record: r, Kind: kind, Field: field}
			}
		}
	}
	consider(names.english, "english")
	consider(names.french, "french")
	if best.Kind < 0 {
		return Match{}, false
	}
	return best, true
}
