package materia

// Section is a titled block of text under a remedy.
type Section struct {
	Heading string // e.g. "Mind", "Head", "General"
	Content string // Accumulated text up to the next heading
}

// Entry is a single section emitted by a format parser, tagged with the
// remedy it was discovered under.
type Entry struct {
	Remedy  string
	Section Section
}

// Remedy is a named subject with its sections in discovery order.
// Headings may repeat.
type Remedy struct {
	Name     string
	Sections []Section
}

// Corpus is the ordered collection of remedies parsed from one source.
// Remedies with the same name found in different documents share a record.
type Corpus struct {
	Source   string
	Remedies []*Remedy

	index map[string]int
}

// NewCorpus returns an empty corpus for a source.
func NewCorpus(source string) *Corpus {
	return &Corpus{
		Source: source,
		index:  make(map[string]int),
	}
}

// Add appends a section to the named remedy, creating the record on first use.
func (c *Corpus) Add(remedy string, s Section) {
	if c.index == nil {
		c.index = make(map[string]int)
	}
	i, ok := c.index[remedy]
	if !ok {
		i = len(c.Remedies)
		c.index[remedy] = i
		c.Remedies = append(c.Remedies, &Remedy{Name: remedy})
	}
	c.Remedies[i].Sections = append(c.Remedies[i].Sections, s)
}

// AddEntries appends entries in order.
func (c *Corpus) AddEntries(entries []Entry) {
	for _, e := range entries {
		c.Add(e.Remedy, e.Section)
	}
}

// Remedy returns the record for a name, or nil.
func (c *Corpus) Remedy(name string) *Remedy {
	i, ok := c.index[name]
	if !ok {
		return nil
	}
	return c.Remedies[i]
}

// SectionCount returns the total number of sections across all remedies.
func (c *Corpus) SectionCount() int {
	n := 0
	for _, r := range c.Remedies {
		n += len(r.Sections)
	}
	return n
}
