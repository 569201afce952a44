package web

import (
	"encoding/base64"
	"encoding/json"
	"fmt"

	"promptforge/internal/rewrite"
)

// sharePayload is the JSON shape behind a share code.
type sharePayload struct {
	Prompt  string          `json:"prompt"`
	Options rewrite.Options `json:"options"`
}

// EncodeShare packs a prompt and its options into a URL-safe share code.
func EncodeShare(prompt string, opts rewrite.Options) string {
	data, err := json.Marshal(sharePayload{Prompt: prompt, Options: opts})
	if err != nil {
		return ""
	}
	return base64.RawURLEncoding.EncodeToString(data)
}

// DecodeShare unpacks a share code produced by EncodeShare.
func DecodeShare(code string) (string, rewrite.Options, error) {
	data, err := base64.RawURLEncoding.DecodeString(code)
	if err != nil {
		return "", rewrite.Options{}, fmt.Errorf("decode share code: %w", err)
	}
	var payload sharePayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return "", rewrite.Options{}, fmt.Errorf("decode share payload: %w", err)
	}
	return payload.Prompt, payload.Options, nil
}
