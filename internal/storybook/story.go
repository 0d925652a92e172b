package storybook

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/alexisbeaulieu97/antui/internal/ui/components"
)

// Story is one named rendering of a component or layout.
type Story struct {
	Name        string
	Group       string
	Description string
	Render      func(ctx components.RenderContext) string
}

// ID returns "group/name".
func (s Story) ID() string {
	return s.Group + "/" + s.Name
}

// Registry holds stories keyed by ID.
type Registry struct {
	mu      sync.RWMutex
	stories map[string]Story
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{stories: make(map[string]Story)}
}

// Register adds a story. Stories need a group, a name and a render function,
// and IDs must be unique.
func (r *Registry) Register(story Story) error {
	switch {
	case strings.TrimSpace(story.Group) == "":
		return fmt.Errorf("story %q has no group", story.Name)
	case strings.TrimSpace(story.Name) == "":
		return fmt.Errorf("story in group %q has no name", story.Group)
	case strings.ContainsAny(story.Name, "/@") || strings.ContainsAny(story.Group, "/@"):
		return fmt.Errorf("story %s: names must not contain '/' or '@'", story.ID())
	case story.Render == nil:
		return fmt.Errorf("story %s has no render function", story.ID())
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.stories[story.ID()]; exists {
		return fmt.Errorf("story %s already registered", story.ID())
	}
	r.stories[story.ID()] = story
	return nil
}

// MustRegister is Register for built-in stories.
func (r *Registry) MustRegister(stories ...Story) {
	for _, story := range stories {
		if err := r.Register(story); err != nil {
			panic(err)
		}
	}
}

// Get looks a story up by ID. A bare name is accepted when exactly one group
// has a story of that name.
func (r *Registry) Get(id string) (Story, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if story, ok := r.stories[id]; ok {
		return story, nil
	}

	var matches []Story
	for _, story := range r.stories {
		if story.Name == id {
			matches = append(matches, story)
		}
	}
	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return Story{}, fmt.Errorf("story not found: %s", id)
	default:
		ids := make([]string, len(matches))
		for i, m := range matches {
			ids[i] = m.ID()
		}
		sort.Strings(ids)
		return Story{}, fmt.Errorf("story name %s is ambiguous: %s", id, strings.Join(ids, ", "))
	}
}

// List returns every story sorted by group, then name.
func (r *Registry) List() []Story {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]Story, 0, len(r.stories))
	for _, story := range r.stories {
		result = append(result, story)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Group != result[j].Group {
			return result[i].Group < result[j].Group
		}
		return result[i].Name < result[j].Name
	})
	return result
}

// Groups returns the sorted group names.
func (r *Registry) Groups() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := make(map[string]struct{})
	for _, story := range r.stories {
		seen[story.Group] = struct{}{}
	}
	groups := make([]string, 0, len(seen))
	for group := range seen {
		groups = append(groups, group)
	}
	sort.Strings(groups)
	return groups
}

// Len returns the number of stories.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.stories)
}
