package plugin

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"dalle-telegram-bot/internal/domain"
)

// Meta describes a plugin to the host. Higher Priority runs first.
type Meta struct {
	Name     string
	Priority int
	Hidden   bool
	Desc     string
	Version  string
	Author   string
}

type Plugin interface {
	Meta() Meta
	// Handle inspects ec and may write a reply into it. It never fails;
	// a plugin that has nothing to say leaves ec untouched.
	Handle(ctx context.Context, ec *domain.EventContext)
}

type Registry struct {
	mu      sync.RWMutex
	plugins []Plugin
}

func NewRegistry() *Registry {
	return &Registry{}
}

func (r *Registry) Register(p Plugin) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	name := p.Meta().Name
	for _, existing := range r.plugins {
		if existing.Meta().Name == name {
			return fmt.Errorf("plugin %q already registered", name)
		}
	}
	r.plugins = append(r.plugins, p)
	sort.SliceStable(r.plugins, func(i, j int) bool {
		return r.plugins[i].Meta().Priority > r.plugins[j].Meta().Priority
	})
	return nil
}

// Plugins returns the registered plugins in dispatch order.
func (r *Registry) Plugins() []Plugin {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]Plugin(nil), r.plugins...)
}

// Handle offers ec to each plugin in order until one replies.
func (r *Registry) Handle(ctx context.Context, ec *domain.EventContext) {
	for _, p := range r.Plugins() {
		p.Handle(ctx, ec)
		if _, ok := ec.Reply(); ok {
			return
		}
	}
}
