package texreport

// OutlineEntry summarizes one section: its heading and the content attached
// directly to it (nested sections are separate entries).
type OutlineEntry struct {
	Level    Level  `yaml:"level" json:"level"`
	Title    string `yaml:"title" json:"title"`
	Depth    int    `yaml:"depth" json:"depth"`
	Figures  int    `yaml:"figures" json:"figures"`
	Tables   int    `yaml:"tables" json:"tables"`
	Prose    int    `yaml:"prose" json:"prose"`
	Breaks   int    `yaml:"breaks" json:"breaks"`
	Sections int    `yaml:"sections" json:"sections"`
}

// Outline returns one entry per section in reading order.
func (d *Document) Outline() []OutlineEntry {
	var entries []OutlineEntry
	_ = d.Walk(func(n Node, depth int) error {
		s, ok := n.(*Section)
		if !ok {
			return nil
		}
		e := OutlineEntry{Level: s.Level, Title: s.Title, Depth: depth}
		for _, c := range s.Children {
			switch c.(type) {
			case *Section:
				e.Sections++
			case *Figure:
				e.Figures++
			case *Table:
				e.Tables++
			case *Prose, *Markdown:
				e.Prose++
			case *PageFlush:
				e.Breaks++
			}
		}
		entries = append(entries, e)
		return nil
	})
	return entries
}
