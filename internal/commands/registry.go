package commands

import (
	"fmt"
	"sort"
	"sync"
)

// Registry maps invocation names to commands. Each command claims its
// primary name plus any aliases (ls for list, stats for dashboard, and so
// on); a clash between two commands is a programming error.
type Registry struct {
	mu     sync.RWMutex
	byName map[string]Command
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		byName: make(map[string]Command),
	}
}

// Register adds a command under its name and all of its aliases. Fails when
// any of those names is already taken.
func (r *Registry) Register(c Command) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	names := append([]string{c.Name()}, c.Aliases()...)
	for _, name := range names {
		if prev, taken := r.byName[name]; taken {
			return fmt.Errorf("commands: %q already claimed by %q", name, prev.Name())
		}
	}
	for _, name := range names {
		r.byName[name] = c
	}
	return nil
}

// Find resolves an invocation name or alias to its command.
func (r *Registry) Find(name string) (Command, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	cmd, ok := r.byName[name]
	return cmd, ok
}

// All returns every registered command once, sorted by primary name.
func (r *Registry) All() []Command {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := make(map[string]Command)
	for _, cmd := range r.byName {
		seen[cmd.Name()] = cmd
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)

	result := make([]Command, len(names))
	for i, name := range names {
		result[i] = seen[name]
	}
	return result
}

// DefaultRegistry holds the taskboard command set; commands register
// themselves into it from init.
var DefaultRegistry = NewRegistry()

// Register adds a command to the default registry, panicking on a name
// clash since that can only happen at init time.
func Register(c Command) {
	if err := DefaultRegistry.Register(c); err != nil {
		panic(err)
	}
}
