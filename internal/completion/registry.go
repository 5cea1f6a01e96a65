package completion

import (
	"sort"

	"github.com/samber/lo"
)

// Source produces completion candidates for the word being completed
type Source interface {
	Name() string
	Description() string
	Complete(text string) []string
}

// Registry manages the candidate sources offered on TAB
type Registry struct {
	sources map[string]Source
	order   []string
}

// NewRegistry creates a new source registry
func NewRegistry() *Registry {
	return &Registry{
		sources: make(map[string]Source),
	}
}

// RegisterSource adds a source to the registry. Registering a name
// twice replaces the earlier source but keeps its position.
func (r *Registry) RegisterSource(source Source) {
	if _, exists := r.sources[source.Name()]; !exists {
		r.order = append(r.order, source.Name())
	}
	r.sources[source.Name()] = source
}

// GetSource returns the source registered under name
func (r *Registry) GetSource(name string) (Source, bool) {
	source, ok := r.sources[name]
	return source, ok
}

// GetSourceDescriptions returns descriptions of all registered sources
func (r *Registry) GetSourceDescriptions() []map[string]string {
	names := append([]string(nil), r.order...)
	sort.Strings(names)

	var descriptions []map[string]string
	for _, name := range names {
		descriptions = append(descriptions, map[string]string{
			"name":        name,
			"description": r.sources[name].Description(),
		})
	}
	return descriptions
}

// Complete asks every source in registration order and merges the
// candidates, dropping duplicates and empty strings.
func (r *Registry) Complete(text string) []string {
	var all []string
	for _, name := range r.order {
		all = append(all, r.sources[name].Complete(text)...)
	}
	all = lo.Filter(all, func(candidate string, _ int) bool {
		return candidate != ""
	})
	return lo.Uniq(all)
}
