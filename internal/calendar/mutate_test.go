package calendar_test

import (
	"reflect"
	"slices"
	"testing"

	"agenda/internal/calendar"
	"agenda/internal/database"
	"agenda/internal/events"
	"agenda/internal/testsupport"
)

func entry(year int, month, name string, days ...string) events.Entry {
	return events.Entry{
		Year:  year,
		Month: month,
		Event: database.Event{
			Name:  name,
			Days:  days,
			URL:   "https://" + name,
			City:  "C",
			State: "SP",
			Type:  "online",
		},
	}
}

func eventNames(list []database.Event) []string {
	names := make([]string, 0, len(list))
	for _, e := range list {
		names = append(names, e.Name)
	}
	return names
}

func TestAddEventCreatesYearAndMonthSorted(t *testing.T) {
	doc := database.New()
	doc.Years = []database.Year{{Year: 2025, Months: []database.Month{{Name: "março", Events: []database.Event{}}}}}

	if !calendar.AddEvent(doc, entry(2024, "janeiro", "Evento A", "10", "11")) {
		t.Fatal("expected change")
	}

	years := []int{doc.Years[0].Year, doc.Years[1].Year}
	if !slices.Equal(years, []int{2024, 2025}) {
		t.Fatalf("got years %v want [2024 2025]", years)
	}
	first := doc.Years[0]
	if first.Archived || first.Months[0].Name != "janeiro" || first.Months[0].Archived {
		t.Fatalf("unexpected new year: %+v", first)
	}
	if got := first.Months[0].Events[0].Name; got != "Evento A" {
		t.Fatalf("got event %q want %q", got, "Evento A")
	}
}

func TestAddEventAppendsNewMonthInInsertionOrder(t *testing.T) {
	doc := database.New()
	calendar.AddEvent(doc, entry(2026, "maio", "A", "01"))
	calendar.AddEvent(doc, entry(2026, "abril", "B", "01"))

	months := doc.Years[0].Months
	if months[0].Name != "maio" || months[1].Name != "abril" {
		t.Fatalf("got months %q, %q", months[0].Name, months[1].Name)
	}
}

func TestAddEventSortsByDaysThenDuration(t *testing.T) {
	doc := database.New()
	calendar.AddEvent(doc, entry(2026, "abril", "Evento Longo", "15", "16"))
	calendar.AddEvent(doc, entry(2026, "abril", "Evento Curto", "15"))
	calendar.AddEvent(doc, entry(2026, "abril", "Evento Antes", "01"))

	got := eventNames(doc.Years[0].Months[0].Events)
	want := []string{"Evento Antes", "Evento Curto", "Evento Longo"}
	if !slices.Equal(got, want) {
		t.Fatalf("got %v want %v", got, want)
	}
}

func TestAddEventKeepsLexicographicDayOrder(t *testing.T) {
	doc := database.New()
	calendar.AddEvent(doc, entry(2026, "maio", "Dois", "2"))
	calendar.AddEvent(doc, entry(2026, "maio", "Dez", "10"))

	got := eventNames(doc.Years[0].Months[0].Events)
	if !slices.Equal(got, []string{"Dez", "Dois"}) {
		t.Fatalf("got %v want [Dez Dois]", got)
	}
}

func TestAddThenRemoveRestoresDocument(t *testing.T) {
	doc := testsupport.SampleDocument()
	before := testsupport.SampleDocument()

	e := entry(2027, "junho", "Novo", "03")
	calendar.AddEvent(doc, e)
	if !calendar.RemoveEvent(doc, e) {
		t.Fatal("expected removal")
	}
	if !reflect.DeepEqual(doc, before) {
		t.Fatalf("document differs after round trip:\n got %+v\nwant %+v", doc, before)
	}

	e = entry(2026, "janeiro", "Outro", "20")
	calendar.AddEvent(doc, e)
	calendar.RemoveEvent(doc, e)
	if !reflect.DeepEqual(doc, before) {
		t.Fatalf("document differs after round trip in existing month:\n got %+v\nwant %+v", doc, before)
	}
}

func TestRemoveEventMatchesCaseInsensitively(t *testing.T) {
	doc := testsupport.SampleDocument()
	e := events.Entry{
		Year:  2026,
		Month: "janeiro",
		Event: database.Event{
			Name:  "EVENTO a",
			Days:  []string{"10", "11"},
			URL:   "https://other.example",
			City:  "são paulo",
			State: "SP",
			Type:  "presencial",
		},
	}
	if !calendar.RemoveEvent(doc, e) {
		t.Fatal("expected removal")
	}
	if doc.Years[0].FindMonth("janeiro") != nil {
		t.Fatal("expected empty month to be pruned")
	}
	if doc.Years[0].FindMonth("fevereiro") == nil {
		t.Fatal("sibling month was removed")
	}
}

func TestRemoveEventPrunesEmptyYear(t *testing.T) {
	doc := database.New()
	e := entry(2026, "maio", "Solo", "01")
	calendar.AddEvent(doc, e)
	calendar.RemoveEvent(doc, e)
	if len(doc.Years) != 0 {
		t.Fatalf("expected year pruned, got %+v", doc.Years)
	}
}

func TestRemoveEventNotFoundIsNoop(t *testing.T) {
	tests := []events.Entry{
		entry(1999, "janeiro", "Evento A", "10", "11"),
		entry(2026, "dezembro", "Evento A", "10", "11"),
		entry(2026, "janeiro", "Evento A", "10"),
	}
	for _, e := range tests {
		doc := testsupport.SampleDocument()
		if calendar.RemoveEvent(doc, e) {
			t.Fatalf("RemoveEvent(%+v) reported change", e)
		}
		if !reflect.DeepEqual(doc, testsupport.SampleDocument()) {
			t.Fatalf("RemoveEvent(%+v) modified document", e)
		}
	}
}

func TestAddTBADeduplicates(t *testing.T) {
	doc := testsupport.SampleDocument()
	dup := database.TbaEvent{Name: "evento tba", URL: "https://elsewhere", City: "NATAL", State: "RN", Type: "presencial"}
	if calendar.AddTBA(doc, dup) {
		t.Fatal("expected duplicate to be ignored")
	}
	if len(doc.TBA) != 1 {
		t.Fatalf("got %d TBA entries want 1", len(doc.TBA))
	}

	fresh := database.TbaEvent{Name: "Evento Novo", URL: "https://novo", City: "São Paulo", State: "SP", Type: "presencial"}
	if !calendar.AddTBA(doc, fresh) {
		t.Fatal("expected new entry")
	}
	if calendar.AddTBA(doc, fresh) {
		t.Fatal("expected second add to be ignored")
	}
	if got := doc.TBA[len(doc.TBA)-1]; got != fresh {
		t.Fatalf("got %+v want %+v", got, fresh)
	}
}

func TestRemoveTBA(t *testing.T) {
	doc := testsupport.SampleDocument()
	other := database.TbaEvent{Name: "Evento TBA", City: "Natal", State: "RN", Type: "online"}
	if calendar.RemoveTBA(doc, other) {
		t.Fatal("type mismatch should not match")
	}
	target := database.TbaEvent{Name: "EVENTO TBA", City: "natal", State: "RN", Type: "presencial"}
	if !calendar.RemoveTBA(doc, target) {
		t.Fatal("expected removal")
	}
	if len(doc.TBA) != 0 {
		t.Fatalf("expected empty TBA list, got %+v", doc.TBA)
	}
}
