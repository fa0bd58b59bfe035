// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types holds the data-transfer and configuration types shared by
// the mailwright packages.
package types

// EmailType classifies what kind of email the user wants to write.
type EmailType string

const (
	EmailProfessionalReply EmailType = "professional-reply"
	EmailColdOutreach      EmailType = "cold-outreach"
	EmailFollowUp          EmailType = "follow-up"
	EmailComplaint         EmailType = "complaint"
	EmailThankYou          EmailType = "thank-you"
	EmailNetworking        EmailType = "networking"
)

// EmailTypes lists every recognized email type in prompt order.
var EmailTypes = []EmailType{
	EmailProfessionalReply,
	EmailColdOutreach,
	EmailFollowUp,
	EmailComplaint,
	EmailThankYou,
	EmailNetworking,
}

// Tone is the voice a draft is written in.
type Tone string

const (
	ToneFriendly Tone = "friendly"
	ToneFormal   Tone = "formal"
	ToneDirect   Tone = "direct"
)

// Tones lists the draft tones in the order the model is asked to write them.
var Tones = []Tone{ToneFriendly, ToneFormal, ToneDirect}

// EmailRequest describes an email to be drafted. It is either supplied by a
// caller or built from a BrainDumpResult.
type EmailRequest struct {
	EmailType       EmailType `json:"emailType" yaml:"emailType"`
	Recipient       string    `json:"recipient" yaml:"recipient"`
	Context         string    `json:"context" yaml:"context"`
	SpecificRequest string    `json:"specificRequest,omitempty" yaml:"specificRequest,omitempty"`
	Deadline        string    `json:"deadline,omitempty" yaml:"deadline,omitempty"`
	Tone            Tone      `json:"tone,omitempty" yaml:"tone,omitempty"`
}

// BrainDumpResult is the structured reading of a free-text brain dump.
// Fields the user never mentioned are empty strings.
type BrainDumpResult struct {
	EmailType       EmailType `json:"emailType" yaml:"emailType"`
	Recipient       string    `json:"recipient" yaml:"recipient"`
	Context         string    `json:"context" yaml:"context"`
	SpecificRequest string    `json:"specificRequest" yaml:"specificRequest"`
	Deadline        string    `json:"deadline" yaml:"deadline"`
	SuggestedTone   Tone      `json:"suggestedTone" yaml:"suggestedTone"`
}

// Request converts the result into a request ready for drafting.
func (r BrainDumpResult) Request() EmailRequest {
	return EmailRequest{
		EmailType:       r.EmailType,
		Recipient:       r.Recipient,
		Context:         r.Context,
		SpecificRequest: r.SpecificRequest,
		Deadline:        r.Deadline,
		Tone:            r.SuggestedTone,
	}
}

// Draft is one ready-to-send email.
type Draft struct {
	Subject string `json:"subject" yaml:"subject"`
	Body    string `json:"body" yaml:"body"`
}

// DraftSet holds one draft per tone.
type DraftSet struct {
	Friendly Draft `json:"friendly" yaml:"friendly"`
	Formal   Draft `json:"formal" yaml:"formal"`
	Direct   Draft `json:"direct" yaml:"direct"`
}

// ByTone returns the draft written in tone t.
func (s DraftSet) ByTone(t Tone) (Draft, bool) {
	switch t {
	case ToneFriendly:
		return s.Friendly, true
	case ToneFormal:
		return s.Formal, true
	case ToneDirect:
		return s.Direct, true
	}
	return Draft{}, false
}
