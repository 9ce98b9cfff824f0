// Package audio wraps raw linear PCM samples in a WAV container and
// produces the self-describing data URI used at the API boundary.
package audio

import (
	"bytes"
	"encoding/base64"
	"encoding/binary"
	"fmt"
)

// Default format of the PCM produced by the TTS model: 24 kHz mono,
// 16-bit samples.
const (
	DefaultSampleRate = 24000
	DefaultChannels   = 1
	DefaultBitDepth   = 16
)

// EncodeWAV wraps raw little-endian PCM samples in a RIFF/WAVE container.
// The header declares channel count, sample rate, bit depth, and byte
// length so any standard decoder can play the result without external
// metadata.
func EncodeWAV(pcm []byte, channels, sampleRate, bitDepth int) ([]byte, error) {
	if len(pcm) == 0 {
		return nil, fmt.Errorf("no PCM samples to encode")
	}
	if channels <= 0 || sampleRate <= 0 || bitDepth <= 0 || bitDepth%8 != 0 {
		return nil, fmt.Errorf("invalid format: channels=%d sampleRate=%d bitDepth=%d", channels, sampleRate, bitDepth)
	}

	blockAlign := channels * bitDepth / 8
	byteRate := sampleRate * blockAlign

	var buf bytes.Buffer
	// RIFF chunk
	buf.WriteString("RIFF")
	writeU32(&buf, uint32(36+len(pcm)))
	buf.WriteString("WAVE")
	// fmt sub-chunk (PCM)
	buf.WriteString("fmt ")
	writeU32(&buf, 16)
	writeU16(&buf, 1) // audio format 1 = linear PCM
	writeU16(&buf, uint16(channels))
	writeU32(&buf, uint32(sampleRate))
	writeU32(&buf, uint32(byteRate))
	writeU16(&buf, uint16(blockAlign))
	writeU16(&buf, uint16(bitDepth))
	// data sub-chunk
	buf.WriteString("data")
	writeU32(&buf, uint32(len(pcm)))
	buf.Write(pcm)

	return buf.Bytes(), nil
}

// DataURI encodes container bytes as a self-describing data URI embedding
// the MIME type and base64 payload.
func DataURI(mimeType string, data []byte) string {
	return fmt.Sprintf("data:%s;base64,%s", mimeType, base64.StdEncoding.EncodeToString(data))
}

// WAVDataURI encodes PCM with the default TTS format and returns the
// boundary representation.
func WAVDataURI(pcm []byte) (string, error) {
	container, err := EncodeWAV(pcm, DefaultChannels, DefaultSampleRate, DefaultBitDepth)
	if err != nil {
		return "", err
	}
	return DataURI("audio/wav", container), nil
}

func writeU16(buf *bytes.Buffer, v uint16) {
	_ = binary.Write(buf, binary.LittleEndian, v)
}

func writeU32(buf *bytes.Buffer, v uint32) {
	_ = binary.Write(buf, binary.LittleEndian, v)
}
