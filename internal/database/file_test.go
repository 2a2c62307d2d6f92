package database_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"agenda/internal/database"
)

func TestOpenCreatesMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db", "database.json")

	doc, err := database.Open(path)
	if err != nil {
		t.Fatalf("Open returned error: %v", err)
	}
	if len(doc.Years) != 0 || len(doc.TBA) != 0 {
		t.Fatalf("expected empty document, got %+v", doc)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("expected database file to be created: %v", err)
	}
	want := "{\n  \"eventos\": [],\n  \"tba\": []\n}\n"
	if string(data) != want {
		t.Fatalf("unexpected created content:\n%s", data)
	}
}

func TestOpenToleratesEmptyAndMalformedFiles(t *testing.T) {
	for _, content := range []string{"", "   \n", "{not json", "[]"} {
		path := filepath.Join(t.TempDir(), "database.json")
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("write fixture: %v", err)
		}

		doc, err := database.Open(path)
		if err != nil {
			t.Fatalf("Open(%q) returned error: %v", content, err)
		}
		if len(doc.Years) != 0 || len(doc.TBA) != 0 {
			t.Fatalf("Open(%q) expected empty document", content)
		}

		data, _ := os.ReadFile(path)
		if string(data) != content {
			t.Fatalf("Open(%q) rewrote the file: %q", content, data)
		}
	}
}

func TestReadIsStrict(t *testing.T) {
	dir := t.TempDir()
	if _, err := database.Read(filepath.Join(dir, "missing.json")); err == nil {
		t.Fatal("expected error for missing file")
	}

	bad := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(bad, []byte("{"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	if _, err := database.Read(bad); err == nil {
		t.Fatal("expected error for invalid JSON")
	}
}

func TestReadAcceptsStringYear(t *testing.T) {
	path := filepath.Join(t.TempDir(), "database.json")
	content := `{"eventos":[{"ano":"2026","arquivado":false,"meses":[{"mes":"maio","arquivado":false,"eventos":null}]},{"ano":2027,"meses":[]}],"tba":[]}`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	doc, err := database.Read(path)
	if err != nil {
		t.Fatalf("Read returned error: %v", err)
	}
	if got := doc.Years[0].Year; got != 2026 {
		t.Fatalf("got year %d want 2026", got)
	}
	if got := doc.Years[1].Year; got != 2027 {
		t.Fatalf("got year %d want 2027", got)
	}
	if doc.Years[0].Months[0].Events == nil {
		t.Fatal("expected null events to decode as empty list")
	}
}

func TestReadRejectsNonNumericYear(t *testing.T) {
	path := filepath.Join(t.TempDir(), "database.json")
	if err := os.WriteFile(path, []byte(`{"eventos":[{"ano":"soon"}]}`), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	if _, err := database.Read(path); err == nil {
		t.Fatal("expected error for non-numeric year")
	}
}

func TestWriteKeepsTextLiteral(t *testing.T) {
	path := filepath.Join(t.TempDir(), "database.json")
	doc := database.New()
	doc.Years = append(doc.Years, database.Year{
		Year: 2026,
		Months: []database.Month{{
			Name: "maio",
			Events: []database.Event{{
				Name:  "Encontro <Go> & Café",
				Days:  []string{"10"},
				URL:   "https://example.com/?a=1&b=2",
				City:  "São Paulo",
				State: "SP",
				Type:  "presencial",
			}},
		}},
	})

	if err := database.Write(path, doc); err != nil {
		t.Fatalf("Write returned error: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read written file: %v", err)
	}
	text := string(data)
	for _, want := range []string{`"São Paulo"`, `"Encontro <Go> & Café"`, `"https://example.com/?a=1&b=2"`, "\n  \"eventos\": ["} {
		if !strings.Contains(text, want) {
			t.Fatalf("expected %q in output:\n%s", want, text)
		}
	}
	if strings.Contains(text, "null") {
		t.Fatalf("unexpected null in output:\n%s", text)
	}
	if !strings.HasSuffix(text, "}\n") {
		t.Fatalf("expected trailing newline, got %q", text[len(text)-3:])
	}

	back, err := database.Read(path)
	if err != nil {
		t.Fatalf("Read returned error: %v", err)
	}
	if got := back.Years[0].Months[0].Events[0].City; got != "São Paulo" {
		t.Fatalf("got city %q want %q", got, "São Paulo")
	}
}

func TestEventMatchesIgnoresCaseAndURL(t *testing.T) {
	a := database.Event{Name: "GopherCon", Days: []string{"01"}, URL: "a", City: "Recife", State: "PE", Type: "presencial"}
	b := database.Event{Name: "gophercon", Days: []string{"01"}, URL: "b", City: "RECIFE", State: "PE", Type: "presencial"}
	if !a.Matches(b) {
		t.Fatal("expected events to match")
	}
	b.Days = []string{"02"}
	if a.Matches(b) {
		t.Fatal("expected different days to break identity")
	}
	b.Days = []string{"01"}
	b.State = "pe"
	if a.Matches(b) {
		t.Fatal("expected state comparison to be exact")
	}
}

func TestOpenReturnsEmptyDocumentForZeroByteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "database.json")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	doc, err := database.Open(path)
	if err != nil {
		t.Fatalf("Open returned error: %v", err)
	}
	if doc.Years == nil || doc.TBA == nil || len(doc.Years) != 0 || len(doc.TBA) != 0 {
		t.Fatalf("expected empty non-nil lists, got %+v", doc)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if info.Size() != 0 {
		t.Fatalf("expected zero-byte file to stay untouched, got %d bytes", info.Size())
	}
}

func TestOpenDecodesLooseFieldTypes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "database.json")
	content := `{
  "eventos": [
    {"ano": 2026.0, "arquivado": 0, "meses": [
      {"mes": "junho", "arquivado": "sim", "eventos": [
        {"nome": "Junina", "data": "10", "url": null, "cidade": "Campina Grande", "uf": "PB", "tipo": "presencial"},
        {"nome": 42, "data": [5, "06", null], "cidade": "Recife", "uf": "PE"}
      ]}
    ]},
    null,
    {"ano": "2.027e3", "meses": null}
  ],
  "tba": [{"nome": "Keep", "cidade": "Natal", "uf": "RN", "tipo": "online", "extra": {"x": 1}}]
}`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	doc, err := database.Open(path)
	if err != nil {
		t.Fatalf("Open returned error: %v", err)
	}
	if len(doc.Years) != 2 {
		t.Fatalf("expected 2 years, got %+v", doc.Years)
	}
	year := doc.Years[0]
	if year.Year != 2026 || year.Archived {
		t.Fatalf("unexpected first year %+v", year)
	}
	if doc.Years[1].Year != 2027 || doc.Years[1].Months == nil {
		t.Fatalf("unexpected second year %+v", doc.Years[1])
	}
	month := year.FindMonth("junho")
	if month == nil || month.Archived || len(month.Events) != 2 {
		t.Fatalf("unexpected month %+v", month)
	}
	first := month.Events[0]
	if len(first.Days) != 1 || first.Days[0] != "10" || first.URL != "" {
		t.Fatalf("unexpected first event %+v", first)
	}
	second := month.Events[1]
	if second.Name != "42" || strings.Join(second.Days, ",") != "5,06" || second.Type != "" {
		t.Fatalf("unexpected second event %+v", second)
	}
	if len(doc.TBA) != 1 || doc.TBA[0].Name != "Keep" {
		t.Fatalf("expected TBA entry to survive, got %+v", doc.TBA)
	}
}

func TestReadRejectsFractionalYear(t *testing.T) {
	path := filepath.Join(t.TempDir(), "database.json")
	if err := os.WriteFile(path, []byte(`{"eventos":[{"ano":2026.5}]}`), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	if _, err := database.Read(path); err == nil {
		t.Fatal("expected error for fractional year")
	}
}
