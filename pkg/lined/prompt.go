package lined

import "src.lined.sh/pkg/ui"

// Prompt is the interface of prompt hooks. The editor calls Get on every
// render pass.
type Prompt interface {
	// Get returns the current prompt text.
	Get() ui.Text
}

// NewConstPrompt returns a Prompt that always shows the given text.
func NewConstPrompt(t ui.Text) Prompt {
	return constPrompt{t}
}

type constPrompt struct{ t ui.Text }

func (p constPrompt) Get() ui.Text { return p.t }

// NewFuncPrompt returns a Prompt whose content is recomputed by calling f on
// every render pass.
func NewFuncPrompt(f func() ui.Text) Prompt {
	return funcPrompt{f}
}

type funcPrompt struct{ f func() ui.Text }

func (p funcPrompt) Get() ui.Text { return p.f() }
