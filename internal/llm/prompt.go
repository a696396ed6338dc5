package llm

import (
	"bytes"
	_ "embed"
	"strings"
	"text/template"
)

//go:embed system.tmpl
var systemInstruction string

//go:embed user.tmpl
var userTemplateSrc string

var userTemplate = template.Must(template.New("user").Parse(userTemplateSrc))

// PromptData holds the variables available in the user instruction template.
type PromptData struct {
	Seed string
}

// Instructions returns the fixed system instruction and the user instruction
// with the seed embedded.
func Instructions(seed string) (system, user string, err error) {
	var buf bytes.Buffer
	if err := userTemplate.Execute(&buf, PromptData{Seed: seed}); err != nil {
		return "", "", err
	}
	return strings.TrimSpace(systemInstruction), strings.TrimSpace(buf.String()), nil
}
