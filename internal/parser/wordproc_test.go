package parser

import (
	"testing"

	"github.com/suryakrishnakishore/Homeopath-Medicines-Search/internal/materia"
)

func assertEntries(t *testing.T, got, want []materia.Entry) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("expected %d entries, got %d: %+v", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("entry[%d]: expected %+v, got %+v", i, want[i], got[i])
		}
	}
}

func TestDashedHeader_Example(t *testing.T) {
	doc := &Document{Lines: []string{
		"BELLADONNA",
		"Atropa belladonna",
		"Mind.--Great excitement; delirium.",
		"Violent, wild.",
	}}
	assertEntries(t, (&DashedHeader{}).Extract(doc), []materia.Entry{
		{Remedy: "BELLADONNA", Section: materia.Section{Heading: "Mind", Content: "Great excitement; delirium. Violent, wild."}},
	})
}

func TestDashedHeader_GeneralAndMultipleRemedies(t *testing.T) {
	doc := &Document{Lines: []string{
		"Preface before any remedy.",
		"Head.--Dropped, no remedy yet.",
		"ACONITUM NAPELLUS",
		"Monkshood",
		"A state of fear and anxiety.",
		"Worse at night.",
		"Mind.--Great fear.",
		"ARNICA",
		"Leopard's bane",
		"Back.--Bruised.",
	}}
	assertEntries(t, (&DashedHeader{}).Extract(doc), []materia.Entry{
		{Remedy: "ACONITUM NAPELLUS", Section: materia.Section{Heading: GeneralHeading, Content: "A state of fear and anxiety. Worse at night."}},
		{Remedy: "ACONITUM NAPELLUS", Section: materia.Section{Heading: "Mind", Content: "Great fear."}},
		{Remedy: "ARNICA", Section: materia.Section{Heading: "Back", Content: "Bruised."}},
	})
}

func TestDashedHeader_ShortCapsLineIsNotRemedy(t *testing.T) {
	doc := &Document{Lines: []string{
		"BRYONIA",
		"Wild hops",
		"Head.--Bursting.",
		"AND",
	}}
	assertEntries(t, (&DashedHeader{}).Extract(doc), []materia.Entry{
		{Remedy: "BRYONIA", Section: materia.Section{Heading: "Head", Content: "Bursting. AND"}},
	})
}

func TestDashedHeader_LastLineOpensSection(t *testing.T) {
	doc := &Document{Lines: []string{"SEPIA", "Cuttlefish ink", "Skin.--Itching."}}
	entries := (&DashedHeader{}).Extract(doc)
	if len(entries) != 1 || entries[0].Section.Heading != "Skin" {
		t.Fatalf("expected final section to be emitted, got %+v", entries)
	}
}

func TestColonHeader_Extract(t *testing.T) {
	doc := &Document{Lines: []string{
		"preface text here",
		"Mind: dropped, no remedy yet.",
		"Arnica Montana",
		"Intro paragraph.",
		"Mind: Fears being touched.",
		"wants to be left alone.",
		"Sleep: Restless.",
		"Bryonia",
		"Mind: Irritable.",
	}}
	assertEntries(t, (&ColonHeader{}).Extract(doc), []materia.Entry{
		{Remedy: "Arnica Montana", Section: materia.Section{Heading: "Mind", Content: "Fears being touched. wants to be left alone."}},
		{Remedy: "Arnica Montana", Section: materia.Section{Heading: "Sleep", Content: "Restless."}},
		{Remedy: "Bryonia", Section: materia.Section{Heading: "Mind", Content: "Irritable."}},
	})
}

func TestColonHeader_RemedyWordLimit(t *testing.T) {
	tests := []struct {
		line string
		want bool
	}{
		{"Arnica", true},
		{"Arnica Montana", true},
		{"Kali Bichromicum Of Old", true},
		{"One Two Three Four Five", false},
		{"ARNICA", false},
		{"Arnica montana", false},
		{"Arnica.", false},
	}
	for _, tt := range tests {
		if got := colonRemedyRe.MatchString(tt.line); got != tt.want {
			t.Errorf("remedy match %q = %v, want %v", tt.line, got, tt.want)
		}
	}
}

func TestForFormat(t *testing.T) {
	for _, name := range []string{FormatCenteredTitle, FormatBracketed, FormatDashedHeader, FormatColonHeader} {
		f, err := ForFormat(name)
		if err != nil {
			t.Fatalf("ForFormat(%q): unexpected error: %v", name, err)
		}
		if len(f.Extensions()) == 0 {
			t.Errorf("format %q declares no extensions", name)
		}
	}
	if _, err := ForFormat("pdf"); err == nil {
		t.Error("expected error for unknown format")
	}
}

func TestAccepts(t *testing.T) {
	if !Accepts(&Bracketed{}, "acon.HTM") {
		t.Error("expected .HTM to be accepted")
	}
	if Accepts(&Bracketed{}, "acon.docx") {
		t.Error("expected .docx to be rejected by a markup format")
	}
	if !Accepts(&DashedHeader{}, "boericke.docx") {
		t.Error("expected .docx to be accepted")
	}
}

func TestExtract_MergesRemediesAcrossDocuments(t *testing.T) {
	docs := []*Document{
		{Lines: []string{"ARNICA", "Leopard's bane", "Back.--Bruised."}},
		{Lines: []string{"BRYONIA", "Wild hops", "Head.--Bursting."}},
		{Lines: []string{"ARNICA", "Leopard's bane", "Back.--Sore."}},
	}
	corpus := Extract("boericke", &DashedHeader{}, docs)
	if len(corpus.Remedies) != 2 {
		t.Fatalf("expected 2 remedies, got %d", len(corpus.Remedies))
	}
	arnica := corpus.Remedy("ARNICA")
	if arnica == nil || len(arnica.Sections) != 2 {
		t.Fatalf("expected ARNICA with 2 sections, got %+v", arnica)
	}
	if corpus.Remedies[0].Name != "ARNICA" {
		t.Errorf("expected discovery order to be kept, got %q first", corpus.Remedies[0].Name)
	}
}
