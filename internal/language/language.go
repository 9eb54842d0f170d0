package language

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrNotFound reports a code that is not a key of the table.
var ErrNotFound = errors.New("language code not found")

// Record describes one ISO 639-2 entry.
type Record struct {
	Code3    string `json:"code3"`     // bibliographic code, table key
	AltCode3 string `json:"alt_code3"` // terminology code when it differs (e.g. "deu" for "ger")
	Code2    string `json:"code2"`     // ISO 639-1, empty when unassigned
	English  string `json:"english"`
	French   string `json:"french"`
}

// Index maps built at init time.
var (
	byCode3 map[string]*Record
	byAlt   map[string]*Record
	byCode2 map[string]*Record
	byWord  map[string]*Record
)

func init() {
	byCode3 = make(map[string]*Record, len(records))
	byAlt = make(map[string]*Record, 32)
	byCode2 = make(map[string]*Record, 192)
	byWord = make(map[string]*Record, len(records)*2)
	for i := range records {
		r := &records[i]
		byCode3[r.Code3] = r
		if r.AltCode3 != "" {
			byAlt[r.AltCode3] = r
		}
		if _, ok := byCode2[r.Code2]; r.Code2 != "" && !ok {
			byCode2[r.Code2] = r
		}
		for _, name := range splitNames(r.English) {
			w := strings.ToLower(name)
			if _, ok := byWord[w]; !ok {
				byWord[w] = r
			}
		}
	}
}

// Lookup returns the record stored under code3. The key must be given
// exactly as stored (three lowercase letters); no normalization is applied.
func Lookup(code3 string) (Record, bool) {
	r, ok := byCode3[code3]
	if !ok {
		return Record{}, false
	}
	return *r, true
}

// Require is Lookup for callers that prefer an error. The error wraps
// ErrNotFound.
func Require(code3 string) (Record, error) {
	r, ok := Lookup(code3)
	if !ok {
		return Record{}, fmt.Errorf("%w: %q", ErrNotFound, code3)
	}
	return r, nil
}

// TwoLetterCodeFrom returns the ISO 639-1 code for an ISO 639-3 key.
// Unknown keys and keys without a two-letter code both yield "".
func TwoLetterCodeFrom(code3 string) string {
	if r, ok := byCode3[code3]; ok {
		return r.Code2
	}
	return ""
}

// FromTwoLetter returns the record carrying the given ISO 639-1 code.
func FromTwoLetter(code2 string) (Record, bool) {
	if code2 == "" {
		return Record{}, false
	}
	r, ok := byCode2[code2]
	if !ok {
		return Record{}, false
	}
	return *r, true
}

// FromAlternate returns the record whose alternate code is alt.
func FromAlternate(alt string) (Record, bool) {
	r, ok := byAlt[alt]
	if !ok {
		return Record{}, false
	}
	return *r, true
}

// Len reports the number of table entries.
func Len() int {
	return len(records)
}

// Codes returns every key in ascending order.
func Codes() []string {
	codes := make([]string, 0, len(records))
	for i := range records {
		codes = append(codes, records[i].Code3)
	}
	sort.Strings(codes)
	return codes
}

// All returns a copy of every record sorted by key.
func All() []Record {
	out := make([]Record, len(records))
	copy(out, records)
	sort.Slice(out, func(i, j int) bool { return out[i].Code3 < out[j].Code3 })
	return out
}

// Terminology returns the ISO 639-2/T code for r: the alternate code when
// one exists, otherwise the key itself.
func Terminology(r Record) string {
	if r.AltCode3 != "" {
		return r.AltCode3
	}
	return r.Code3
}

// Names splits the English name into its synonyms.
func Names(r Record) []string {
	return splitNames(r.English)
}

// FrenchNames splits the French name into its synonyms.
func FrenchNames(r Record) []string {
	return splitNames(r.French)
}

func splitNames(value string) []string {
	parts := strings.Split(value, ";")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func resolve(code string) *Record {
	code = strings.ToLower(strings.TrimSpace(code))
	if code == "" {
		return nil
	}
	if r, ok := byCode2[code]; ok {
		return r
	}
	if r, ok := byCode3[code]; ok {
		return r
	}
	if r, ok := byAlt[code]; ok {
		return r
	}
	if r, ok := byWord[code]; ok {
		return r
	}
	return nil
}

// Resolve finds a record for any recognized code or English name word,
// ignoring case and surrounding whitespace.
func Resolve(code string) (Record, bool) {
	r := resolve(code)
	if r == nil {
		return Record{}, false
	}
	return *r, true
}

// ToISO2 converts any recognized language code or word to ISO 639-1 (2-letter).
// Returns empty string for unrecognized input.
// If the input is already a 2-letter code (even if unknown), it passes through.
func ToISO2(code string) string {
	code = strings.ToLower(strings.TrimSpace(code))
	if code == "" {
		return ""
	}
	if r := resolve(code); r != nil {
		return r.Code2
	}
	if len(code) == 2 {
		return code
	}
	return ""
}

// ToISO3 converts any recognized language code to its ISO 639-2/T code.
// Returns "und" for unrecognized 2-letter codes, passes through 3-letter codes.
func ToISO3(code string) string {
	code = strings.ToLower(strings.TrimSpace(code))
	if code == "" {
		return "und"
	}
	if r := resolve(code); r != nil {
		return Terminology(*r)
	}
	if len(code) == 3 {
		return code
	}
	return "und"
}

// DisplayName returns a human-readable language name for any recognized code.
// Returns "Unknown" for empty input, or the uppercased code for unrecognized input.
func DisplayName(code string) string {
	if strings.TrimSpace(code) == "" {
		return "Unknown"
	}
	if r := resolve(code); r != nil {
		if names := Names(*r); len(names) > 0 {
			return names[0]
		}
		return r.English
	}
	return strings.ToUpper(strings.TrimSpace(code))
}

// FrenchName returns the first French name for any recognized code, or "".
func FrenchName(code string) string {
	r := resolve(code)
	if r == nil {
		return ""
	}
	if names := FrenchNames(*r); len(names) > 0 {
		return names[0]
	}
	return r.French
}

// NormalizeList deduplicates and normalizes a list of language codes to ISO 639-1.
func NormalizeList(languages []string) []string {
	if len(languages) == 0 {
		return nil
	}
	normalized := make([]string, 0, len(languages))
	seen := make(map[string]struct{}, len(languages))
	for _, lang := range languages {
		trimmed := strings.ToLower(strings.TrimSpace(lang))
		if trimmed == "" {
			continue
		}
		if len(trimmed) > 2 {
			if mapped := ToISO2(trimmed); mapped != "" {
				trimmed = mapped
			}
		}
		if _, ok := seen[trimmed]; ok {
			continue
		}
		seen[trimmed] = struct{}{}
		normalized = append(normalized, trimmed)
	}
	return normalized
}
