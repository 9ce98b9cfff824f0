// Package speech implements the companion voice: a two-step pipeline
// that rewrites a summary into a conversational monologue and then
// synthesizes it into WAV audio.
package speech

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/skillpath/mitra/internal/audio"
	"github.com/skillpath/mitra/internal/llm"
	"github.com/skillpath/mitra/internal/prompts"
	"github.com/skillpath/mitra/internal/schemas"
)

// Service runs the speak-summary pipeline against the model gateway.
type Service struct {
	gateway *llm.Gateway
}

// NewService creates a speech service.
func NewService(gateway *llm.Gateway) *Service {
	return &Service{gateway: gateway}
}

// SpeakRequest asks for a spoken rendition of a path summary.
type SpeakRequest struct {
	Summary  string
	Lang     prompts.Lang
	UserName string
}

// SpeakResult carries the synthesized audio and the text that was spoken.
type SpeakResult struct {
	AudioDataURI string `json:"audioDataUri"`
	SpokenText   string `json:"spokenText"`
}

type conversationalOutput struct {
	ConversationalText string `json:"conversational_text"`
}

// SpeakSummary rewrites the summary into a first-person monologue,
// falling back to a fixed per-language greeting when the rewrite fails,
// then synthesizes speech from whichever text resulted. Failure of the
// synthesis step is terminal: there is no audio to return.
func (s *Service) SpeakSummary(ctx context.Context, req SpeakRequest) (*SpeakResult, error) {
	if !req.Lang.Valid() {
		return nil, fmt.Errorf("unsupported language %q", req.Lang)
	}
	if strings.TrimSpace(req.Summary) == "" {
		return nil, fmt.Errorf("summary is required")
	}

	text := s.conversationalText(ctx, req)

	pcm, err := s.gateway.SynthesizeSpeech(ctx, text)
	if err != nil {
		return nil, err
	}
	uri, err := audio.WAVDataURI(pcm)
	if err != nil {
		return nil, err
	}

	return &SpeakResult{AudioDataURI: uri, SpokenText: text}, nil
}

// conversationalText runs the rewrite step, returning the fixed fallback
// greeting for the requested language on any failure.
func (s *Service) conversationalText(ctx context.Context, req SpeakRequest) string {
	prompt := prompts.BuildConversationalPrompt(req.Lang, req.UserName, req.Summary)
	raw, err := s.gateway.InvokeJSON(ctx, prompt, schemas.Conversational)
	if err != nil {
		log.Printf("[speech] conversational rewrite failed, using fallback greeting: %v", err)
		return prompts.FallbackGreeting(req.Lang, req.UserName)
	}

	var out conversationalOutput
	if err := json.Unmarshal([]byte(raw), &out); err != nil || strings.TrimSpace(out.ConversationalText) == "" {
		return prompts.FallbackGreeting(req.Lang, req.UserName)
	}
	return out.ConversationalText
}
