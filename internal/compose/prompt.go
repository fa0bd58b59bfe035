// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package compose

import (
	"bytes"
	"text/template"

	"github.com/pdiddy/mailwright/pkg/types"
)

// defaultLabel is used for missing or unrecognized email types.
const defaultLabel = "Follow-up / Reminder"

// notSpecified stands in for optional fields the caller left empty.
const notSpecified = "Not specified"

var typeLabels = map[types.EmailType]string{
	types.EmailProfessionalReply: "Professional Reply",
	types.EmailColdOutreach:      "Cold Outreach",
	types.EmailFollowUp:          "Follow-up / Reminder",
	types.EmailComplaint:         "Complaint / Escalation",
	types.EmailThankYou:          "Thank You",
	types.EmailNetworking:        "Networking",
}

// Label returns the human-readable name of t. Unknown types fall back to
// the follow-up label rather than failing.
func Label(t types.EmailType) string {
	if l, ok := typeLabels[t]; ok {
		return l
	}
	return defaultLabel
}

var draftPromptTmpl = template.Must(template.New("drafts").Parse(`You are an expert email writer. Generate 3 variations of an email based on these details:

Email Type: {{.Label}}
Recipient: {{.Recipient}}
Context/Background: {{.Context}}
Specific Request: {{.SpecificRequest}}
Deadline/Timeline: {{.Deadline}}
Primary Tone: {{.Tone}}

Generate 3 variations with these tones:
1. Friendly - warm, personable, but still professional
2. Formal - structured, respectful, traditional business tone
3. Direct - clear, concise, gets straight to the point

For each variation:
- Include a subject line
- Keep the email body concise (150-250 words)
- Make it ready to send (proper greeting, closing, etc.)
- Match the tone precisely
- Be natural, not robotic

Format your response as valid JSON:
{
  "friendly": {
    "subject": "...",
    "body": "..."
  },
  "formal": {
    "subject": "...",
    "body": "..."
  },
  "direct": {
    "subject": "...",
    "body": "..."
  }
}

Return ONLY the JSON, no other text.`))

type promptData struct {
	Label           string
	Recipient       string
	Context         string
	SpecificRequest string
	Deadline        string
	Tone            string
}

func orNotSpecified(s string) string {
	if s == "" {
		return notSpecified
	}
	return s
}

// renderPrompt executes the drafting prompt for req.
func renderPrompt(req types.EmailRequest) (string, error) {
	var buf bytes.Buffer
	err := draftPromptTmpl.Execute(&buf, promptData{
		Label:           Label(req.EmailType),
		Recipient:       req.Recipient,
		Context:         req.Context,
		SpecificRequest: orNotSpecified(req.SpecificRequest),
		Deadline:        orNotSpecified(req.Deadline),
		Tone:            string(req.Tone),
	})
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}
