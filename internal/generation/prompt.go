package generation

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"github.com/phrazzld/ankigen/internal/domain"
)

// promptTemplateText is the instruction sent to the model. Its response
// format section is the other half of the marker grammar the parser in this
// package expects; the two must change together.
const promptTemplateText = `You are an expert in {{.Subject}}, helping a learner master the subject.

Generate exactly {{.TopicCount}} topics on {{.Subject}} in order of ascending difficulty, and for each topic exactly {{.CardsPerTopic}} flashcards. Questions should cover both sample problems and concepts. Use the explanation field to help the learner understand the reason behind things, and the example field for a short concrete illustration.
{{- if .PreferencePrompt}}

Keep the learner's preferences in mind: {{.PreferencePrompt}}
{{- end}}

Respond with plain text in exactly this format, with no commentary before or after:

TOPIC: <topic name>
Q: <question>
A: <answer>
EXPLANATION: <explanation>
EXAMPLE: <example>

Repeat the Q/A/EXPLANATION/EXAMPLE block for every card in a topic, and the whole section for every topic. Do not number the cards and do not use any markdown formatting.`

// promptTemplate is parsed once; BuildPrompt only executes it.
var promptTemplate = template.Must(template.New("deck").Parse(promptTemplateText))

// promptData is the data passed to the prompt template.
type promptData struct {
	Subject          string
	TopicCount       int
	CardsPerTopic    int
	PreferencePrompt string
}

// BuildPrompt produces the exact text payload sent to the language model for
// the given request. The output deterministically embeds the subject, both
// counts, and, when present, the preference prompt as an extra constraint
// clause; an absent preference adds nothing at all. BuildPrompt has no side
// effects and fails only on invalid input.
func BuildPrompt(req domain.GenerationRequest) (string, error) {
	if err := req.Validate(); err != nil {
		return "", err
	}

	data := promptData{
		Subject:          strings.TrimSpace(req.Subject),
		TopicCount:       req.TopicCount,
		CardsPerTopic:    req.CardsPerTopic,
		PreferencePrompt: strings.TrimSpace(req.PreferencePrompt),
	}

	var buf bytes.Buffer
	if err := promptTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute prompt template: %w", err)
	}

	return buf.String(), nil
}
