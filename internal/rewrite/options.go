package rewrite

import "strings"

// Objective selects the rewrite vocabulary, the closing directive, and the
// constraint set attached to a result.
type Objective string

const (
	ObjectivePrecision  Objective = "precision"
	ObjectiveBrevity    Objective = "brevity"
	ObjectiveCreativity Objective = "creativity"
	ObjectiveSafety     Objective = "safety"
	ObjectiveSpeed      Objective = "speed"
)

// ReasoningLevel controls how much visible reasoning the rewritten prompt
// asks the responder for.
type ReasoningLevel string

const (
	ReasoningLow    ReasoningLevel = "low"
	ReasoningMedium ReasoningLevel = "medium"
	ReasoningHigh   ReasoningLevel = "high"
)

// ContentType selects the format directive and any format-specific
// constraints.
type ContentType string

const (
	ContentText         ContentType = "text"
	ContentVideo        ContentType = "video"
	ContentImage        ContentType = "image"
	ContentAudio        ContentType = "audio"
	ContentPresentation ContentType = "presentation"
)

// Format is the output shape detected from the raw prompt.
type Format string

const (
	FormatJSON         Format = "JSON"
	FormatMarkdown     Format = "Markdown"
	FormatBulletPoints Format = "BulletPoints"
	FormatText         Format = "Text"
)

// Defaults applied when an option is missing or outside the documented set.
const (
	DefaultLanguage = "en-US"
	DefaultRole     = "Subject-matter expert"
)

// Options configures a rewrite. Every field is optional: zero values take the
// documented defaults, and enum values outside the documented sets collapse
// to them, so the pipeline stays total over arbitrary caller input.
type Options struct {
	Language       string         `json:"language"`       // locale tag, e.g. "fr-FR"
	Objective      Objective      `json:"objective"`      // precision, brevity, creativity, safety, speed
	ReasoningLevel ReasoningLevel `json:"reasoningLevel"` // low, medium, high
	Role           string         `json:"role"`           // persona prefixed to the rewritten prompt
	ContentType    ContentType    `json:"contentType"`    // text, video, image, audio, presentation
}

// Parameters echoes the options a result was produced with, after defaulting,
// plus the output format detected from the raw prompt.
type Parameters struct {
	Role           string         `json:"role"`
	Objective      Objective      `json:"objective"`
	ReasoningLevel ReasoningLevel `json:"reasoningLevel"`
	Language       string         `json:"language"`
	ContentType    ContentType    `json:"contentType"`
	Format         Format         `json:"format"`
}

// resolve returns a copy with defaults filled in. A UI caller must never see
// an error for user-typed input, so unknown values are replaced rather than
// rejected.
func (o Options) resolve() Options {
	if strings.TrimSpace(o.Language) == "" {
		o.Language = DefaultLanguage
	}
	switch o.Objective {
	case ObjectivePrecision, ObjectiveBrevity, ObjectiveCreativity, ObjectiveSafety, ObjectiveSpeed:
	default:
		o.Objective = ObjectivePrecision
	}
	switch o.ReasoningLevel {
	case ReasoningLow, ReasoningMedium, ReasoningHigh:
	default:
		o.ReasoningLevel = ReasoningMedium
	}
	if strings.TrimSpace(o.Role) == "" {
		o.Role = DefaultRole
	}
	switch o.ContentType {
	case ContentText, ContentVideo, ContentImage, ContentAudio, ContentPresentation:
	default:
		o.ContentType = ContentText
	}
	return o
}
