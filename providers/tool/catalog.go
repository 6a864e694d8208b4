package tool

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
)

// ErrToolNotFound is returned by [Catalog.Call] for a name that is not registered.
var ErrToolNotFound = errors.New("tool not found")

// Catalog is a registry of tools keyed by lower-cased name.
// It is safe for concurrent use.
type Catalog struct {
	mu    sync.RWMutex
	tools map[string]GenericTool
}

// NewCatalog creates an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{
		tools: make(map[string]GenericTool),
	}
}

// NewCatalogWithTools creates a catalog holding tools.
func NewCatalogWithTools(tools ...GenericTool) *Catalog {
	catalog := NewCatalog()
	catalog.Add(tools...)
	return catalog
}

// Add registers tools under ToolInfo().Name, replacing any tool already
// registered under the same name in any letter case.
func (c *Catalog) Add(tools ...GenericTool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, t := range tools {
		c.tools[normalizeName(t.ToolInfo().Name)] = t
	}
}

// Get looks a tool up by name, ignoring case and surrounding whitespace.
func (c *Catalog) Get(name string) (GenericTool, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	t, ok := c.tools[normalizeName(name)]
	return t, ok
}

// Has reports whether a tool is registered under name.
func (c *Catalog) Has(name string) bool {
	_, ok := c.Get(name)
	return ok
}

// Size returns the number of registered tools.
func (c *Catalog) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.tools)
}

// Names returns the registered tool names as reported by each tool, sorted.
func (c *Catalog) Names() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	names := make([]string, 0, len(c.tools))
	for _, t := range c.tools {
		names = append(names, t.ToolInfo().Name)
	}
	sort.Strings(names)
	return names
}

// Descriptions returns every tool's [ToolDescription], sorted by name.
func (c *Catalog) Descriptions() []ToolDescription {
	c.mu.RLock()
	descriptions := make([]ToolDescription, 0, len(c.tools))
	for _, t := range c.tools {
		descriptions = append(descriptions, t.ToolInfo())
	}
	c.mu.RUnlock()

	sort.Slice(descriptions, func(i, j int) bool {
		return descriptions[i].Name < descriptions[j].Name
	})
	return descriptions
}

// Call runs the tool registered under name on inputJSON.
func (c *Catalog) Call(ctx context.Context, name, inputJSON string) (string, error) {
	t, ok := c.Get(name)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrToolNotFound, name)
	}
	return t.Call(ctx, inputJSON)
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
