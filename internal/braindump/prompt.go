// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package braindump

import (
	"bytes"
	"strings"
	"text/template"

	"github.com/pdiddy/mailwright/pkg/types"
)

var promptFuncs = template.FuncMap{
	"emailTypes": func() string {
		names := make([]string, len(types.EmailTypes))
		for i, t := range types.EmailTypes {
			names[i] = string(t)
		}
		return strings.Join(names, ", ")
	},
	"tones": func() string {
		names := make([]string, len(types.Tones))
		for i, t := range types.Tones {
			names[i] = string(t)
		}
		last := len(names) - 1
		return strings.Join(names[:last], ", ") + ", or " + names[last]
	},
}

// extractionPromptTmpl asks the model to read a brain dump and answer with
// the six request fields as a single JSON object.
var extractionPromptTmpl = template.Must(template.New("braindump").Funcs(promptFuncs).Parse(`You are helping someone write an email. They've dumped all their thoughts below. Extract the key information and structure it into these fields:

1. emailType - choose ONE: {{emailTypes}}
2. recipient - who they're emailing
3. context - the situation/background (2-3 sentences max, clean and professional)
4. specificRequest - what they need from the recipient
5. deadline - any timeline/urgency mentioned
6. suggestedTone - recommend ONE: {{tones}}

Here's their brain dump:
"""
{{.BrainDump}}
"""

Return ONLY valid JSON in this exact format:
{
  "emailType": "...",
  "recipient": "...",
  "context": "...",
  "specificRequest": "...",
  "deadline": "...",
  "suggestedTone": "..."
}

If something isn't mentioned, use an empty string. Be concise and professional.`))

// renderPrompt executes the extraction prompt for one brain dump.
func renderPrompt(brainDump string) (string, error) {
	var buf bytes.Buffer
	if err := extractionPromptTmpl.Execute(&buf, struct{ BrainDump string }{BrainDump: brainDump}); err != nil {
		return "", err
	}
	return buf.String(), nil
}
