package testsupport

import (
	"testing"

	"agenda/internal/config"
	"agenda/internal/database"
)

// WriteDocument persists doc at path using the regular encoder.
func WriteDocument(t testing.TB, path string, doc *database.Document) {
	t.Helper()

	if err := database.Write(path, doc); err != nil {
		t.Fatalf("write document: %v", err)
	}
}

// ReadDocument strictly loads the document at path.
func ReadDocument(t testing.TB, path string) *database.Document {
	t.Helper()

	doc, err := database.Read(path)
	if err != nil {
		t.Fatalf("read document: %v", err)
	}
	return doc
}

// NewStore returns a store for the config's database with a nop logger.
func NewStore(cfg *config.Config) *database.Store {
	return database.NewStore(cfg.Paths.Database, database.Options{
		Backup:      cfg.Database.Backup,
		LockTimeout: cfg.LockTimeout(),
	}, nil)
}

// SampleDocument returns a document with one year holding two months and
// one TBA entry.
func SampleDocument() *database.Document {
	return &database.Document{
		Years: []database.Year{{
			Year: 2026,
			Months: []database.Month{
				{
					Name: "janeiro",
					Events: []database.Event{{
						Name:  "Evento A",
						Days:  []string{"10", "11"},
						URL:   "https://a.example",
						City:  "São Paulo",
						State: "SP",
						Type:  "presencial",
					}},
				},
				{
					Name:     "fevereiro",
					Archived: true,
					Events: []database.Event{{
						Name:  "Evento B",
						Days:  []string{"05"},
						URL:   "https://b.example",
						City:  "Recife",
						State: "PE",
						Type:  "online",
					}},
				},
			},
		}},
		TBA: []database.TbaEvent{{
			Name:  "Evento TBA",
			URL:   "https://tba.example",
			City:  "Natal",
			State: "RN",
			Type:  "presencial",
		}},
	}
}
