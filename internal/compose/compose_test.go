// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package compose

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/mailwright/internal/gateway"
	"github.com/pdiddy/mailwright/pkg/types"
)

type fakeCompleter struct {
	reply string
	err   error
	calls []gateway.Request
}

func (f *fakeCompleter) Complete(_ context.Context, req gateway.Request) (string, error) {
	f.calls = append(f.calls, req)
	return f.reply, f.err
}

const draftsReply = `{
  "friendly": {"subject": "Quick favor on the Q3 report", "body": "Hi Sarah, ..."},
  "formal": {"subject": "Request for Q3 Report Extension", "body": "Dear Sarah, ..."},
  "direct": {"subject": "Q3 report: extension needed", "body": "Sarah, ..."}
}`

func sarahRequest() types.EmailRequest {
	return types.EmailRequest{
		EmailType: types.EmailProfessionalReply,
		Recipient: "Sarah",
		Context:   "Q3 report extension",
		Tone:      types.ToneFormal,
	}
}

func TestGenerate(t *testing.T) {
	fc := &fakeCompleter{reply: draftsReply}

	raw, err := NewGenerator(fc).Generate(context.Background(), sarahRequest())
	require.NoError(t, err)
	assert.JSONEq(t, draftsReply, string(raw))

	set, err := Decode(raw)
	require.NoError(t, err)
	assert.Equal(t, "Quick favor on the Q3 report", set.Friendly.Subject)
	assert.Equal(t, "Dear Sarah, ...", set.Formal.Body)
	assert.Equal(t, "Q3 report: extension needed", set.Direct.Subject)

	require.Len(t, fc.calls, 1)
	assert.Equal(t, MaxTokens, fc.calls[0].MaxTokens)
	assert.Equal(t, "drafts", fc.calls[0].Operation)
}

func TestGenerateFencedReply(t *testing.T) {
	fc := &fakeCompleter{reply: "```json\n" + draftsReply + "\n```"}

	raw, err := NewGenerator(fc).Generate(context.Background(), sarahRequest())
	require.NoError(t, err)
	assert.JSONEq(t, draftsReply, string(raw))
}

func TestGenerateValidation(t *testing.T) {
	tests := []struct {
		name string
		req  types.EmailRequest
	}{
		{"missing recipient", types.EmailRequest{Context: "c"}},
		{"missing context", types.EmailRequest{Recipient: "r"}},
		{"missing both", types.EmailRequest{EmailType: types.EmailThankYou}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fc := &fakeCompleter{reply: draftsReply}
			_, err := NewGenerator(fc).Generate(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrMissingFields)
			assert.Empty(t, fc.calls)
		})
	}
}

func TestGenerateUnknownTypeStillCallsModel(t *testing.T) {
	req := sarahRequest()
	req.EmailType = "birthday-card"
	fc := &fakeCompleter{reply: draftsReply}

	_, err := NewGenerator(fc).Generate(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, fc.calls, 1)
	assert.Contains(t, fc.calls[0].Prompt, "Email Type: Follow-up / Reminder")
}

func TestGenerateMissingDraft(t *testing.T) {
	fc := &fakeCompleter{reply: `{"friendly":{"subject":"s","body":"b"},"formal":{"subject":"s","body":"b"}}`}

	_, err := NewGenerator(fc).Generate(context.Background(), sarahRequest())

	var se *ShapeError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, types.ToneDirect, se.Tone)
}

func TestGenerateReplyShape(t *testing.T) {
	tests := []struct {
		name     string
		reply    string
		wantTone types.Tone
		wantOK   bool
	}{
		{"extra keys pass", `{"friendly":{"subject":"s","body":"b","signoff":"Best"},"formal":{"subject":"s","body":"b"},"direct":{"body":"b"},"note":"x"}`, "", true},
		{"subject only", `{"friendly":{"subject":"s"},"formal":{"subject":"s"},"direct":{"subject":"s"}}`, "", true},
		{"null draft", `{"friendly":{"subject":"s","body":"b"},"formal":null,"direct":{"subject":"s","body":"b"}}`, types.ToneFormal, false},
		{"blank draft", `{"friendly":{"subject":"","body":null},"formal":{"subject":"s"},"direct":{"subject":"s"}}`, types.ToneFriendly, false},
		{"draft not an object", `{"friendly":"hi","formal":{"subject":"s"},"direct":{"subject":"s"}}`, types.ToneFriendly, false},
		{"array reply", `[1,2,3]`, "", false},
		{"null reply", `null`, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fc := &fakeCompleter{reply: tt.reply}
			raw, err := NewGenerator(fc).Generate(context.Background(), sarahRequest())
			if tt.wantOK {
				require.NoError(t, err)
				assert.JSONEq(t, tt.reply, string(raw))
				return
			}
			var se *ShapeError
			require.True(t, errors.As(err, &se), "got %v", err)
			assert.Equal(t, tt.wantTone, se.Tone)
		})
	}
}

func TestGeneratePassesGatewayErrors(t *testing.T) {
	fc := &fakeCompleter{err: gateway.ErrUnexpectedFormat}

	_, err := NewGenerator(fc).Generate(context.Background(), sarahRequest())
	assert.ErrorIs(t, err, gateway.ErrUnexpectedFormat)
}

func TestLabel(t *testing.T) {
	tests := []struct {
		in   types.EmailType
		want string
	}{
		{types.EmailProfessionalReply, "Professional Reply"},
		{types.EmailColdOutreach, "Cold Outreach"},
		{types.EmailFollowUp, "Follow-up / Reminder"},
		{types.EmailComplaint, "Complaint / Escalation"},
		{types.EmailThankYou, "Thank You"},
		{types.EmailNetworking, "Networking"},
		{"", "Follow-up / Reminder"},
		{"Networking", "Follow-up / Reminder"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Label(tt.in), "Label(%q)", tt.in)
	}
}

func TestRenderPrompt(t *testing.T) {
	prompt, err := renderPrompt(types.EmailRequest{
		EmailType:       types.EmailComplaint,
		Recipient:       "Acme support",
		Context:         "Order arrived broken",
		SpecificRequest: "Replacement",
		Tone:            types.ToneDirect,
	})
	require.NoError(t, err)

	assert.Contains(t, prompt, "Email Type: Complaint / Escalation")
	assert.Contains(t, prompt, "Recipient: Acme support")
	assert.Contains(t, prompt, "Context/Background: Order arrived broken")
	assert.Contains(t, prompt, "Specific Request: Replacement")
	assert.Contains(t, prompt, "Deadline/Timeline: Not specified")
	assert.Contains(t, prompt, "Primary Tone: direct")
	assert.Contains(t, prompt, "150-250 words")
	assert.Contains(t, prompt, "Return ONLY the JSON, no other text.")
}
