package main

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"isolang/internal/catalog"
	"isolang/internal/language"
	"isolang/internal/logging"
)

func TestCLILookup(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"lookup", "ger"}, env.configPath)
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	requireContains(t, out, "German")
	requireContains(t, out, "deu")
	requireContains(t, out, "allemand")

	out, _, err = runCLI(t, []string{"--json", "lookup", "ger", "ach"}, env.configPath)
	if err != nil {
		t.Fatalf("lookup --json: %v", err)
	}
	var result lookupResult
	if err := json.Unmarshal([]byte(out), &result); err != nil {
		t.Fatalf("decode lookup json: %v\n%s", err, out)
	}
	if len(result.Records) != 2 || len(result.Unknown) != 0 {
		t.Fatalf("unexpected lookup result: %+v", result)
	}
	if result.Records[0].Code2 != "de" || result.Records[1].Code2 != "" {
		t.Fatalf("unexpected two-letter codes: %+v", result.Records)
	}
}

func TestCLILookupUnknownCode(t *testing.T) {
	env := setupCLITestEnv(t)

	_, _, err := runCLI(t, []string{"lookup", "ger", "xyz"}, env.configPath)
	if err == nil {
		t.Fatal("expected error for unknown code")
	}
	requireContains(t, err.Error(), "xyz")

	// Terminology and two-letter codes are not table keys.
	if _, _, err := runCLI(t, []string{"lookup", "deu"}, env.configPath); err == nil {
		t.Fatal("expected strict lookup to reject terminology code")
	}
	out, _, err := runCLI(t, []string{"--json", "lookup", "--lenient", "deu", "de", "German"}, env.configPath)
	if err != nil {
		t.Fatalf("lenient lookup: %v", err)
	}
	var result lookupResult
	if err := json.Unmarshal([]byte(out), &result); err != nil {
		t.Fatalf("decode lookup json: %v", err)
	}
	for _, r := range result.Records {
		if r.Code3 != "ger" {
			t.Fatalf("lenient lookup resolved to %q, want ger", r.Code3)
		}
	}
}

func TestCLIISO2(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"iso2", "ger", "ach", "fre", "xyz"}, env.configPath)
	if err != nil {
		t.Fatalf("iso2: %v", err)
	}
	if out != "de\n\nfr\n\n" {
		t.Fatalf("unexpected iso2 output: %q", out)
	}

	out, _, err = runCLI(t, []string{"iso2", "--fallback", "ach", "eng"}, env.configPath)
	if err != nil {
		t.Fatalf("iso2 --fallback: %v", err)
	}
	if out != "en\nen\n" {
		t.Fatalf("unexpected fallback output: %q", out)
	}

	out, _, err = runCLI(t, []string{"--json", "iso2", "--fallback", "ach"}, env.configPath)
	if err != nil {
		t.Fatalf("iso2 --json: %v", err)
	}
	var results []iso2Result
	if err := json.Unmarshal([]byte(out), &results); err != nil {
		t.Fatalf("decode iso2 json: %v", err)
	}
	if len(results) != 1 || !results[0].Fallback || results[0].Code2 != "en" {
		t.Fatalf("unexpected iso2 json: %+v", results)
	}
}

func TestCLIList(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"list"}, env.configPath)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	requireContains(t, out, "487 languages")

	out, _, err = runCLI(t, []string{"--json", "list", "--with-iso1"}, env.configPath)
	if err != nil {
		t.Fatalf("list --with-iso1: %v", err)
	}
	var records []language.Record
	if err := json.Unmarshal([]byte(out), &records); err != nil {
		t.Fatalf("decode list json: %v", err)
	}
	if len(records) == 0 || len(records) >= language.Len() {
		t.Fatalf("unexpected filtered count %d", len(records))
	}
	for _, r := range records {
		if r.Code2 == "" {
			t.Fatalf("record %q has no two-letter code", r.Code3)
		}
	}

	out, _, err = runCLI(t, []string{"--json", "list", "--preferred"}, env.configPath)
	if err != nil {
		t.Fatalf("list --preferred: %v", err)
	}
	records = nil
	if err := json.Unmarshal([]byte(out), &records); err != nil {
		t.Fatalf("decode list json: %v", err)
	}
	if len(records) != language.Len() {
		t.Fatalf("preferred list dropped records: %d", len(records))
	}
	if records[0].Code3 != "fre" || records[1].Code3 != "ger" || records[2].Code3 != "aar" {
		t.Fatalf("unexpected preferred order: %s %s %s", records[0].Code3, records[1].Code3, records[2].Code3)
	}
}

func TestPreferredOrderIgnoresUnknownAndDuplicates(t *testing.T) {
	all := language.All()
	got := preferredOrder(all, []string{"zz", "de", "ger"})
	if len(got) != len(all) {
		t.Fatalf("preferredOrder changed length: %d", len(got))
	}
	if got[0].Code3 != "ger" || got[1].Code3 != "aar" {
		t.Fatalf("unexpected order: %s %s", got[0].Code3, got[1].Code3)
	}
}

func TestCLISearch(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"--json", "search", "fr"}, env.configPath)
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	var matches []struct {
		Record language.Record `json:"record"`
		Kind   string          `json:"kind"`
		Field  string          `json:"field"`
	}
	if err := json.Unmarshal([]byte(out), &matches); err != nil {
		t.Fatalf("decode search json: %v\n%s", err, out)
	}
	if len(matches) == 0 || matches[0].Record.Code3 != "fre" || matches[0].Kind != "code" {
		t.Fatalf("expected code match for fre first, got %+v", matches)
	}
	if len(matches) > 5 {
		t.Fatalf("config limit not applied: %d results", len(matches))
	}

	out, _, err = runCLI(t, []string{"--json", "search", "--limit", "2", "an"}, env.configPath)
	if err != nil {
		t.Fatalf("search --limit: %v", err)
	}
	matches = nil
	if err := json.Unmarshal([]byte(out), &matches); err != nil {
		t.Fatalf("decode search json: %v", err)
	}
	if len(matches) != 2 {
		t.Fatalf("expected 2 results, got %d", len(matches))
	}

	out, _, err = runCLI(t, []string{"search", "qqqqq"}, env.configPath)
	if err != nil {
		t.Fatalf("search without hits: %v", err)
	}
	requireContains(t, out, "No languages match")
}

func TestCLIExportAndVerifyCatalog(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"verify", "--catalog"}, env.configPath)
	if err != nil {
		t.Fatalf("verify before export: %v", err)
	}
	requireContains(t, out, "[WARN] not exported yet")

	out, _, err = runCLI(t, []string{"export"}, env.configPath)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	requireContains(t, out, "[OK] "+env.catalogPath)
	requireContains(t, out, "487")

	store, err := catalog.Open(context.Background(), env.catalogPath, logging.NewNop())
	if err != nil {
		t.Fatalf("open exported catalog: %v", err)
	}
	count, err := store.Count(context.Background())
	_ = store.Close()
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != language.Len() {
		t.Fatalf("exported %d rows, want %d", count, language.Len())
	}

	out, _, err = runCLI(t, []string{"--json", "verify", "--catalog"}, env.configPath)
	if err != nil {
		t.Fatalf("verify after export: %v", err)
	}
	var checks []verifyCheck
	if err := json.Unmarshal([]byte(out), &checks); err != nil {
		t.Fatalf("decode verify json: %v", err)
	}
	if len(checks) != 2 || !checks[0].OK || !checks[1].OK {
		t.Fatalf("unexpected verify checks: %+v", checks)
	}
}

func TestCLIExportCustomPath(t *testing.T) {
	env := setupCLITestEnv(t)
	target := filepath.Join(t.TempDir(), "custom", "codes.db")

	out, _, err := runCLI(t, []string{"--json", "export", "--db", target}, env.configPath)
	if err != nil {
		t.Fatalf("export --db: %v", err)
	}
	var result catalog.ExportResult
	if err := json.Unmarshal([]byte(out), &result); err != nil {
		t.Fatalf("decode export json: %v", err)
	}
	if result.Path != target || result.Rows != language.Len() || result.ID == "" {
		t.Fatalf("unexpected export result: %+v", result)
	}
	if _, err := os.Stat(env.catalogPath); !os.IsNotExist(err) {
		t.Fatalf("configured catalog should be untouched, stat err = %v", err)
	}
}

func TestCLIVerifyTable(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"verify"}, env.configPath)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	requireContains(t, out, "[OK] 487 entries")
	if strings.Contains(out, "Catalog") {
		t.Fatalf("catalog check should be opt-in: %q", out)
	}
}

func TestCLIRejectsInvalidConfig(t *testing.T) {
	env := setupCLITestEnv(t)
	if err := os.WriteFile(env.configPath, []byte("[search]\nlimit = -1\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, _, err := runCLI(t, []string{"lookup", "ger"}, env.configPath); err == nil {
		t.Fatal("expected invalid config to fail")
	}
}

func TestCLILookupSuggestsKeyForTerminologyCode(t *testing.T) {
	env := setupCLITestEnv(t)

	_, _, err := runCLI(t, []string{"lookup", "deu"}, env.configPath)
	if err == nil {
		t.Fatal("expected strict lookup of deu to fail")
	}
	requireContains(t, err.Error(), "deu is the terminology code for ger")

	_, _, err = runCLI(t, []string{"lookup", "xyz"}, env.configPath)
	if err == nil {
		t.Fatal("expected unknown code to fail")
	}
	if strings.Contains(err.Error(), "terminology") {
		t.Fatalf("unexpected hint for unknown code: %v", err)
	}
}

func TestCLIConvert(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"--json", "convert", "ger", "de", "German", "chi", "zz", "xyz", "??"}, env.configPath)
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	var results []convertResult
	if err := json.Unmarshal([]byte(out), &results); err != nil {
		t.Fatalf("decode convert json: %v\n%s", err, out)
	}
	want := []convertResult{
		{Input: "ger", Code2: "de", Code3: "deu", Name: "German", French: "allemand"},
		{Input: "de", Code2: "de", Code3: "deu", Name: "German", French: "allemand"},
		{Input: "German", Code2: "de", Code3: "deu", Name: "German", French: "allemand"},
		{Input: "chi", Code2: "zh", Code3: "zho", Name: "Chinese", French: "chinois"},
		{Input: "zz", Code2: "zz", Code3: "und", Name: "ZZ", French: ""},
		{Input: "xyz", Code2: "", Code3: "xyz", Name: "XYZ", French: ""},
		{Input: "??", Code2: "??", Code3: "und", Name: "??", French: ""},
	}
	if len(results) != len(want) {
		t.Fatalf("convert returned %d results, want %d", len(results), len(want))
	}
	for i := range want {
		if results[i] != want[i] {
			t.Errorf("convert[%d] = %+v, want %+v", i, results[i], want[i])
		}
	}

	out, _, err = runCLI(t, []string{"convert", "fre"}, env.configPath)
	if err != nil {
		t.Fatalf("convert table: %v", err)
	}
	requireContains(t, out, "fra")
	requireContains(t, out, "French")
}

func TestCLIVerifyCustomCatalogPath(t *testing.T) {
	env := setupCLITestEnv(t)
	target := filepath.Join(t.TempDir(), "custom", "codes.db")

	if _, _, err := runCLI(t, []string{"export", "--db", target}, env.configPath); err != nil {
		t.Fatalf("export --db: %v", err)
	}

	// The configured catalog was never written; --db points at the export.
	out, _, err := runCLI(t, []string{"verify", "--db", target}, env.configPath)
	if err != nil {
		t.Fatalf("verify --db: %v", err)
	}
	requireContains(t, out, "[OK] 487 rows match "+target)

	out, _, err = runCLI(t, []string{"verify", "--catalog"}, env.configPath)
	if err != nil {
		t.Fatalf("verify --catalog: %v", err)
	}
	requireContains(t, out, "[WARN] not exported yet")
}

func TestCLIVerifyDetectsStaleCatalog(t *testing.T) {
	env := setupCLITestEnv(t)
	target := filepath.Join(t.TempDir(), "stale.db")

	records := language.All()
	for i := range records {
		if records[i].Code3 == "ger" {
			records[i].French = "deutsch"
		}
	}
	store, err := catalog.Open(context.Background(), target, logging.NewNop())
	if err != nil {
		t.Fatalf("open catalog: %v", err)
	}
	if _, err := store.Export(context.Background(), records); err != nil {
		t.Fatalf("export stale rows: %v", err)
	}
	_ = store.Close()

	out, _, err := runCLI(t, []string{"verify", "--db", target}, env.configPath)
	if err == nil {
		t.Fatal("expected verify to fail on stale catalog")
	}
	requireContains(t, out, "[ERROR] 1 stale rows (ger)")
}
