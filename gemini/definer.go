package gemini

import (
	"context"
	"fmt"
	"strings"

	"github.com/fwojciec/reactdict"
	"google.golang.org/genai"
)

// DefaultModel is the Gemini model used when none is configured.
const DefaultModel = "gemini-2.5-flash"

// Ensure Definer implements reactdict.Definer at compile time.
var _ reactdict.Definer = (*Definer)(nil)

// Definer implements reactdict.Definer using Google Gemini.
type Definer struct {
	client *genai.Client
	model  string

	// generate sends the prompt and returns the raw response text.
	generate func(ctx context.Context, prompt string) (string, error)
}

// NewDefiner creates a new Definer. A nil client yields a Definer that
// reports ENOTIMPLEMENTED for every request.
func NewDefiner(client *genai.Client, model string) *Definer {
	if model == "" {
		model = DefaultModel
	}
	d := &Definer{client: client, model: model}
	if client != nil {
		d.generate = d.generateContent
	}
	return d
}

// Define generates a definition for the requested term.
func (d *Definer) Define(ctx context.Context, req reactdict.DefineRequest) (*reactdict.Definition, error) {
	if strings.TrimSpace(req.Term) == "" {
		return nil, reactdict.Errorf(reactdict.EINVALID, "term required")
	}
	if d.generate == nil {
		return nil, reactdict.Errorf(reactdict.ENOTIMPLEMENTED, "language model API is not configured")
	}

	text, err := d.generate(ctx, BuildPrompt(req))
	if err != nil {
		return nil, err
	}

	return ParseDefinition(req.Term, text)
}

func (d *Definer) generateContent(ctx context.Context, prompt string) (string, error) {
	result, err := d.client.Models.GenerateContent(ctx, d.model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: prompt}},
		}},
		BuildConfig(),
	)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}
	if result == nil {
		return "", reactdict.Errorf(reactdict.EINTERNAL, "gemini returned nil result")
	}
	return result.Text(), nil
}

// BuildConfig returns the GenerateContentConfig for definition requests.
// The response is constrained to a JSON object carrying the five content keys.
func BuildConfig() *genai.GenerateContentConfig {
	temp := float32(0.7)
	return &genai.GenerateContentConfig{
		Temperature:      &temp,
		ResponseMIMEType: "application/json",
		ResponseSchema: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"purpose": {Type: genai.TypeString},
				"why": {
					Type:  genai.TypeArray,
					Items: &genai.Schema{Type: genai.TypeString},
				},
				"example": {Type: genai.TypeString},
				"code":    {Type: genai.TypeString},
				"summary": {Type: genai.TypeString},
			},
			Required:         []string{"purpose", "why", "example", "code", "summary"},
			PropertyOrdering: []string{"purpose", "why", "example", "code", "summary"},
		},
	}
}

// BuildPrompt builds the prompt asking the model to explain the term.
func BuildPrompt(req reactdict.DefineRequest) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Generate a JSON object explaining the React term %q in simple, easy-to-understand language for beginners with keys:\n", strings.TrimSpace(req.Term))
	sb.WriteString("- purpose: a short sentence describing what it does\n")
	sb.WriteString("- why: an array of 3-5 bullet points explaining why you'd use it\n")
	sb.WriteString("- example: a real-world use case description\n")
	sb.WriteString("- code: a concise copy-ready code snippet\n")
	sb.WriteString("- summary: a brief scenario showing how you'd use it in a React app\n")

	if details := strings.TrimSpace(req.Details); details != "" {
		fmt.Fprintf(&sb, "\nThe person who suggested this term added:\n<details>%s</details>\n", details)
	}

	if ref := req.Reference; ref != nil && ref.Content != "" {
		sb.WriteString("\nBase the explanation on the official documentation below.\n")
		sb.WriteString("<document>\n")
		fmt.Fprintf(&sb, "<title>%s</title>\n", ref.Title)
		fmt.Fprintf(&sb, "<source>%s</source>\n", ref.URL)
		fmt.Fprintf(&sb, "<content>%s</content>\n", ref.Content)
		sb.WriteString("</document>\n")
	}

	sb.WriteString("\nReturn only valid JSON. Do not include any other text.")
	return sb.String()
}
