package model

import "strings"

// Prompt is a system/user message pair sent to the text generator
type Prompt struct {
	System string
	User   string
}

// NewPrompt fills the placeholder in userTemplate with text
func NewPrompt(system, userTemplate, placeholder, text string) Prompt {
	return Prompt{
		System: system,
		User:   strings.ReplaceAll(userTemplate, placeholder, text),
	}
}

// GenerationParams are the sampling parameters for one request
type GenerationParams struct {
	Model       string
	MaxTokens   int
	Temperature float32
}
