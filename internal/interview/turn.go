// Package interview advances a mock interview by one turn. Each call is
// stateless: the caller-supplied transcript is replayed in full and the
// gateway retains no conversation memory between calls.
package interview

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/skillpath/mitra/internal/audio"
	"github.com/skillpath/mitra/internal/llm"
	"github.com/skillpath/mitra/internal/prompts"
	"github.com/skillpath/mitra/internal/types"
)

// Service runs interview turns against the model gateway.
type Service struct {
	gateway *llm.Gateway
}

// NewService creates an interview service.
func NewService(gateway *llm.Gateway) *Service {
	return &Service{gateway: gateway}
}

// TurnRequest carries the course title and the full prior transcript.
type TurnRequest struct {
	CourseTitle string
	Session     types.InterviewSession
}

// TurnResult is exactly one new interviewer utterance, with optional
// synthesized audio. AudioDataURI is empty when speech synthesis failed;
// that is a successful text-only turn, not an error.
type TurnResult struct {
	Response     string `json:"response"`
	AudioDataURI string `json:"audioDataUri,omitempty"`
}

// Turn produces the next single interviewer utterance and, best-effort,
// its spoken form. Failure of the speech step degrades to a text-only
// result; failure of the text step fails the turn.
func (s *Service) Turn(ctx context.Context, req TurnRequest) (*TurnResult, error) {
	if strings.TrimSpace(req.CourseTitle) == "" {
		return nil, fmt.Errorf("course title is required")
	}

	historyJSON, err := json.Marshal(req.Session.Messages)
	if err != nil {
		return nil, fmt.Errorf("failed to encode transcript: %w", err)
	}

	prompt := prompts.BuildInterviewPrompt(req.CourseTitle, string(historyJSON), req.Session.ModelTurns())
	text, err := s.gateway.InvokeText(ctx, prompt)
	if err != nil {
		return nil, err
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, &llm.MalformedOutputError{Message: "interviewer produced no utterance"}
	}

	result := &TurnResult{Response: text}

	pcm, err := s.gateway.SynthesizeSpeech(ctx, text)
	if err != nil {
		var noAudio *llm.NoAudioError
		if !errors.As(err, &noAudio) {
			log.Printf("[interview] speech synthesis failed, returning text only: %v", err)
		}
		return result, nil
	}

	uri, err := audio.WAVDataURI(pcm)
	if err != nil {
		log.Printf("[interview] audio encoding failed, returning text only: %v", err)
		return result, nil
	}

	result.AudioDataURI = uri
	return result, nil
}
