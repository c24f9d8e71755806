package document

// DocumentSection is one navigable chapter of the document: a unique ID,
// a display title, an icon reference for the navigation surface, and the
// ordered blocks that make up its body. Sections are built once at
// startup and never mutated.
type DocumentSection struct {
	ID     string
	Title  string
	Icon   string
	Blocks []ContentBlock
}

// SectionByID returns the section with the given ID, or nil.
func SectionByID(sections []DocumentSection, id string) *DocumentSection {
	for i := range sections {
		if sections[i].ID == id {
			return &sections[i]
		}
	}
	return nil
}
