package language

import (
	"strings"
	"testing"
)

func TestVerifyTable(t *testing.T) {
	if err := Verify(); err != nil {
		t.Fatalf("table invariants violated:\n%v", err)
	}
}

func TestVerifyRecordsReportsEveryViolation(t *testing.T) {
	bad := []Record{
		{"eng", "", "en", "English", "anglais"},
		{"eng", "", "en", "English", "anglais"},
		{"EN", "", "", "Upper", "haut"},
		{"abc", "de", "x", "", ""},
	}
	err := verifyRecords(bad)
	if err == nil {
		t.Fatal("expected violations")
	}
	msg := err.Error()
	for _, want := range []string{
		`key "eng": duplicate entry`,
		`key "EN": must be three lowercase letters`,
		`alternate code "de"`,
		`two-letter code "x"`,
		`key "abc": english name is empty`,
		`key "abc": french name is empty`,
	} {
		if !strings.Contains(msg, want) {
			t.Errorf("missing %q in:\n%s", want, msg)
		}
	}
}

func TestVerifyRecordsAcceptsEmptyOptionalCodes(t *testing.T) {
	ok := []Record{{"ach", "", "", "Acoli", "acoli"}}
	if err := verifyRecords(ok); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
