package match

import "digital.vasic.matchers/pkg/render"

// Message is a lazily-rendered failure message. Rendering is
// deferred until a renderer is available so that composing
// matchers never pays for messages that are not surfaced.
type Message interface {
	// RenderMessage produces the final human-readable string.
	RenderMessage(r *render.Renderer) string
}

// Templated is a Message backed by a template key and positional
// arguments. Arguments that are themselves Messages are rendered
// recursively.
type Templated struct {
	Key  string
	Args []any
}

// Msg builds a Templated message.
func Msg(key string, args ...any) Templated {
	return Templated{Key: key, Args: args}
}

// RenderMessage resolves the template and substitutes the
// prettified arguments.
func (t Templated) RenderMessage(r *render.Renderer) string {
	return r.Render(t.Key, t.Args...)
}

// Text is a pre-rendered literal Message.
type Text string

// RenderMessage returns the literal text.
func (t Text) RenderMessage(_ *render.Renderer) string {
	return string(t)
}

// Joined concatenates two sub-messages with a joining word:
// "and" when both sides independently contribute to one
// outcome, "but" when one side succeeded and the other failed.
type Joined struct {
	Left  Message
	Word  string
	Right Message
}

// RenderMessage renders "left, word right".
func (j Joined) RenderMessage(r *render.Renderer) string {
	return j.Left.RenderMessage(r) + ", " + j.Word + " " +
		j.Right.RenderMessage(r)
}
