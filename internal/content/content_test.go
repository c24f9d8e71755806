package content

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"docview/internal/document"
)

func TestSections_AllBlocksWellFormed(t *testing.T) {
	seen := map[string]bool{}
	for _, s := range Sections() {
		assert.NotEmpty(t, s.ID)
		assert.NotEmpty(t, s.Title)
		assert.False(t, seen[s.ID], "duplicate section id %s", s.ID)
		seen[s.ID] = true
		for i, b := range s.Blocks {
			assert.True(t, document.IsWellFormed(b), "section %s block %d", s.ID, i)
		}
	}
}

func TestSections_EmbedsImageTool(t *testing.T) {
	s := document.SectionByID(Sections(), "image-engine")
	if !assert.NotNil(t, s) {
		return
	}
	found := false
	for _, b := range s.Blocks {
		if b.Kind == document.KindImageTool {
			found = true
		}
	}
	assert.True(t, found)
}
