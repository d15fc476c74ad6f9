// Package help renders the help screen: the menu entries and key bindings
// as markdown, cached per width.
package help

import (
	"context"
	"fmt"
	"strings"

	"github.com/campusctl/campus/internal/cachemanager"
	"github.com/campusctl/campus/internal/keys"
	"github.com/campusctl/campus/internal/log"
	"github.com/campusctl/campus/internal/ui/markdown"
	"github.com/campusctl/campus/internal/ui/styles"
)

type renderKey string

type renderInput struct {
	width int
	style string
	doc   string
}

// Model holds the help screen content and its render cache.
type Model struct {
	doc   string
	style string
	cache *cachemanager.ReadThroughCache[renderKey, string, renderInput]
}

// New builds the help document from the menu labels and key bindings.
// style is the glamour style name.
func New(km keys.KeyMap, menu []string, style string) Model {
	store := cachemanager.NewInMemoryCacheManager[renderKey, string](
		"help", cachemanager.DefaultExpiration, cachemanager.DefaultCleanupInterval)

	return Model{
		doc:   Document(km, menu),
		style: style,
		cache: cachemanager.NewReadThroughCache[renderKey, string, renderInput](store, render, false),
	}
}

// Document returns the markdown source of the help screen.
func Document(km keys.KeyMap, menu []string) string {
	var b strings.Builder
	b.WriteString("# Campus\n\n")
	b.WriteString("Keep track of students, instructors, departments and courses. ")
	b.WriteString("Everything lives in memory and is gone when you exit.\n\n")

	b.WriteString("## Menu\n\n")
	for i, entry := range menu {
		fmt.Fprintf(&b, "%d. %s\n", i+1, entry)
	}

	b.WriteString("\n## Keys\n\n| Key | Action |\n|---|---|\n")
	for _, binding := range km.All() {
		h := binding.Help()
		fmt.Fprintf(&b, "| `%s` | %s |\n", h.Key, h.Desc)
	}
	return b.String()
}

// View renders the help screen to fit width.
func (m Model) View(width int) string {
	width = max(width-4, 20)
	key := renderKey(fmt.Sprintf("%s:%d", m.style, width))

	out, err := m.cache.Get(context.Background(), key, renderInput{width: width, style: m.style, doc: m.doc}, cachemanager.DefaultExpiration)
	if err != nil {
		log.ErrorErr(log.CatUI, "Help render failed", err)
		out = m.doc
	}
	return strings.TrimRight(out, "\n") + "\n\n" + styles.HintStyle.Render("esc to return to the menu")
}

// CacheStats reports how often View reused a rendered screen.
func (m Model) CacheStats() cachemanager.Stats {
	return m.cache.Stats()
}

func render(_ context.Context, in renderInput) (string, error) {
	r, err := markdown.New(in.width, in.style)
	if err != nil {
		return "", fmt.Errorf("creating markdown renderer: %w", err)
	}
	return r.Render(in.doc)
}
