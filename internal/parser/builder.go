package parser

import "github.com/suryakrishnakishore/Homeopath-Medicines-Search/internal/materia"

// builder is the accumulate/flush skeleton shared by every format. At most
// one section is open; opening a heading, switching remedy, or finishing
// flushes it under the remedy that was current when it was opened.
type builder struct {
	remedy  string
	current *materia.Section
	entries []materia.Entry
}

func (b *builder) flush() {
	if b.current == nil {
		return
	}
	b.entries = append(b.entries, materia.Entry{Remedy: b.remedy, Section: *b.current})
	b.current = nil
}

// setRemedy closes the open section and starts attributing to name.
func (b *builder) setRemedy(name string) {
	b.flush()
	b.remedy = name
}

func (b *builder) open(heading, content string) {
	b.flush()
	b.current = &materia.Section{Heading: heading, Content: content}
}

// appendText adds text to the open section. It reports false when no
// section is open and the text was dropped.
func (b *builder) appendText(text string) bool {
	if b.current == nil {
		return false
	}
	if b.current.Content == "" {
		b.current.Content = text
	} else {
		b.current.Content += " " + text
	}
	return true
}

// finish flushes the last open section and returns everything emitted.
func (b *builder) finish() []materia.Entry {
	b.flush()
	return b.entries
}
