// Package render turns raw message templates and positional
// arguments into human-readable failure messages. Templates use
// "{0}", "{1}", ... placeholders; argument values are formatted
// through a pluggable Prettifier. Template banks can be
// overridden from YAML or JSON files for localization.
package render

import (
	"fmt"
	"strings"
	"sync"
)

// Renderable is implemented by message values that know how to
// render themselves. When a Renderable appears among a
// template's arguments it is rendered recursively instead of
// being handed to the prettifier.
type Renderable interface {
	RenderMessage(r *Renderer) string
}

// Renderer resolves template keys and substitutes prettified
// arguments. It is safe for concurrent use.
type Renderer struct {
	mu         sync.RWMutex
	templates  map[string]string
	prettifier Prettifier
}

// New creates a Renderer with the built-in English templates and
// the default prettifier.
func New() *Renderer {
	return NewWith(nil, nil)
}

// NewWith creates a Renderer with extra templates layered over
// the built-in bank and an optional prettifier override.
func NewWith(
	templates map[string]string,
	prettifier Prettifier,
) *Renderer {
	merged := make(map[string]string, len(defaultTemplates))
	for k, v := range defaultTemplates {
		merged[k] = v
	}
	for k, v := range templates {
		merged[k] = v
	}

	if prettifier == nil {
		prettifier = DefaultPrettifier
	}

	return &Renderer{
		templates:  merged,
		prettifier: prettifier,
	}
}

// SetTemplate registers or overrides a single template.
func (r *Renderer) SetTemplate(key, template string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.templates[key] = template
}

// Template returns the template registered for key.
func (r *Renderer) Template(key string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.templates[key]
	return t, ok
}

// Render resolves key and substitutes args into its
// placeholders. An unknown key falls back to the notation
// "key(arg0, arg1)" so the message stays diagnosable.
func (r *Renderer) Render(key string, args ...any) string {
	rendered := make([]string, len(args))
	for i, arg := range args {
		if nested, ok := arg.(Renderable); ok {
			rendered[i] = nested.RenderMessage(r)
			continue
		}
		rendered[i] = r.Decorate(arg)
	}

	template, ok := r.Template(key)
	if !ok {
		return fmt.Sprintf(
			"%s(%s)", key, strings.Join(rendered, ", "),
		)
	}

	out := template
	for i, s := range rendered {
		out = strings.ReplaceAll(
			out, fmt.Sprintf("{%d}", i), s,
		)
	}
	return out
}

// Decorate formats a single value with the renderer's
// prettifier, for embedding arbitrary values in messages.
func (r *Renderer) Decorate(v any) string {
	return r.prettifier(v)
}
