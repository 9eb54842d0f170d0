package language

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestSearchCodeMatchesRankFirst(t *testing.T) {
	matches := Search("ger", 0)
	if len(matches) == 0 {
		t.Fatal("expected matches for ger")
	}
	first := matches[0]
	if first.Record.Code3 != "ger" || first.Kind != MatchCode || first.Field != "code3" {
		t.Fatalf("first match = %+v, want ger code3 match", first)
	}

	got := make(map[string]MatchKind, len(matches))
	for _, m := range matches {
		got[m.Record.Code3] = m.Kind
	}
	for _, code := range []string{"gem", "gmh", "goh", "nds"} {
		if got[code] != MatchPrefix {
			t.Errorf("%s kind = %v, want prefix", code, got[code])
		}
	}
	for _, code := range []string{"gsw", "lim", "nic"} {
		if got[code] != MatchSubstring {
			t.Errorf("%s kind = %v, want substring", code, got[code])
		}
	}
}

func TestSearchOrdering(t *testing.T) {
	matches := Search("an", 0)
	for i := 1; i < len(matches); i++ {
		prev, cur := matches[i-1], matches[i]
		if prev.Kind > cur.Kind {
			t.Fatalf("match %d (%s %v) ranks after %s %v", i, cur.Record.Code3, cur.Kind, prev.Record.Code3, prev.Kind)
		}
		if prev.Kind == cur.Kind && prev.Record.Code3 >= cur.Record.Code3 {
			t.Fatalf("ties not ordered by key at %d: %s >= %s", i, prev.Record.Code3, cur.Record.Code3)
		}
	}
}

func TestSearchAlternateAndTwoLetterCodes(t *testing.T) {
	tests := []struct {
		query string
		code  string
		field string
	}{
		{"deu", "ger", "alt_code3"},
		{"DEU", "ger", "alt_code3"},
		{"fr", "fre", "code2"},
		{"zh", "chi", "code2"},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			matches := Search(tt.query, 1)
			if len(matches) != 1 {
				t.Fatalf("Search(%q, 1) returned %d matches", tt.query, len(matches))
			}
			if matches[0].Record.Code3 != tt.code || matches[0].Field != tt.field {
				t.Errorf("Search(%q) = %s/%s, want %s/%s", tt.query, matches[0].Record.Code3, matches[0].Field, tt.code, tt.field)
			}
		})
	}
}

func TestSearchIgnoresCaseAndAccents(t *testing.T) {
	for _, query := range []string{"aleoute", "ALÉOUTE", "Aléoute"} {
		matches := Search(query, 0)
		if len(matches) != 1 {
			t.Fatalf("Search(%q) returned %d matches, want 1", query, len(matches))
		}
		if matches[0].Record.Code3 != "ale" || matches[0].Field != "french" {
			t.Errorf("Search(%q) = %+v", query, matches[0])
		}
	}
}

func TestSearchCollectiveEntries(t *testing.T) {
	matches := Search("bantu", 0)
	found := false
	for _, m := range matches {
		if m.Record.Code3 == "bnt" {
			found = true
		}
	}
	if !found {
		t.Fatal("expected Bantu languages in results")
	}
}

func TestSearchLimitAndBlank(t *testing.T) {
	if got := Search("", 5); got != nil {
		t.Fatalf("Search(\"\") = %v, want nil", got)
	}
	if got := Search("   ", 5); got != nil {
		t.Fatalf("Search(blank) = %v, want nil", got)
	}
	if got := Search("qqqqq", 0); len(got) != 0 {
		t.Fatalf("Search(qqqqq) = %v, want none", got)
	}
	all := Search("a", 0)
	if len(all) < 10 {
		t.Fatalf("expected many matches for 'a', got %d", len(all))
	}
	limited := Search("a", 3)
	if len(limited) != 3 {
		t.Fatalf("Search limit 3 returned %d", len(limited))
	}
	for i := range limited {
		if limited[i] != all[i] {
			t.Errorf("limited[%d] = %+v, want %+v", i, limited[i], all[i])
		}
	}
}

func TestMatchJSON(t *testing.T) {
	matches := Search("ger", 1)
	data, err := json.Marshal(matches[0])
	if err != nil {
		t.Fatalf("marshal match: %v", err)
	}
	s := string(data)
	for _, want := range []string{`"kind":"code"`, `"field":"code3"`, `"alt_code3":"deu"`, `"french":"allemand"`} {
		if !strings.Contains(s, want) {
			t.Errorf("match JSON %s missing %s", s, want)
		}
	}
}

func TestSearchWholeNameRanksBeforePrefix(t *testing.T) {
	matches := Search("german", 4)
	if len(matches) != 4 {
		t.Fatalf("Search(german, 4) returned %d matches", len(matches))
	}
	if matches[0].Record.Code3 != "ger" || matches[0].Kind != MatchName || matches[0].Field != "english" {
		t.Fatalf("first match = %+v, want ger whole-name match", matches[0])
	}
	if matches[1].Record.Code3 != "gem" || matches[1].Kind != MatchPrefix {
		t.Fatalf("second match = %+v, want gem prefix match", matches[1])
	}

	// Any synonym counts, in either language.
	for _, tt := range []struct{ query, code string }{
		{"Allemand", "ger"},
		{"castilian", "spa"},
		{"FRANÇAIS", "fre"},
	} {
		got := Search(tt.query, 1)
		if len(got) != 1 || got[0].Record.Code3 != tt.code || got[0].Kind != MatchName {
			t.Errorf("Search(%q, 1) = %+v, want %s name match", tt.query, got, tt.code)
		}
	}
}

func TestMatchKindString(t *testing.T) {
	for kind, want := range map[MatchKind]string{
		MatchCode:      "code",
		MatchName:      "name",
		MatchPrefix:    "prefix",
		MatchSubstring: "substring",
	} {
		if got := kind.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", kind, got, want)
		}
	}
}
