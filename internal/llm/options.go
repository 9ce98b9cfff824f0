// Package llm provides the model gateway: client abstractions over the
// hosted model provider, credential pool rotation, and retry handling.
package llm

import "time"

// Options holds the model configuration for the gateway.
type Options struct {
	// TextModel handles text and structured JSON generation.
	TextModel string
	// TTSModel handles speech synthesis.
	TTSModel string
	// VoiceName selects the prebuilt TTS voice.
	VoiceName string
	// RequestTimeout bounds each individual remote call. Timeouts are
	// classified transient, the same as quota errors.
	RequestTimeout time.Duration
}

// DefaultOptions returns the default Gemini model configuration.
func DefaultOptions() Options {
	return Options{
		TextModel:      "gemini-2.5-flash",
		TTSModel:       "gemini-2.5-flash-preview-tts",
		VoiceName:      "Algenib",
		RequestTimeout: 90 * time.Second,
	}
}

// withDefaults fills zero-valued fields from DefaultOptions.
func (o Options) withDefaults() Options {
	def := DefaultOptions()
	if o.TextModel == "" {
		o.TextModel = def.TextModel
	}
	if o.TTSModel == "" {
		o.TTSModel = def.TTSModel
	}
	if o.VoiceName == "" {
		o.VoiceName = def.VoiceName
	}
	if o.RequestTimeout <= 0 {
		o.RequestTimeout = def.RequestTimeout
	}
	return o
}
