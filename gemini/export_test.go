package gemini

import "context"

// SetGenerate replaces the model call, letting tests script responses.
func (d *Definer) SetGenerate(fn func(ctx context.Context, prompt string) (string, error)) {
	d.generate = fn
}
