package audio

import (
	"encoding/base64"
	"encoding/binary"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeWAV_Header(t *testing.T) {
	pcm := make([]byte, 480) // 10 ms at 24 kHz mono 16-bit
	wav, err := EncodeWAV(pcm, DefaultChannels, DefaultSampleRate, DefaultBitDepth)
	require.NoError(t, err)
	require.Len(t, wav, 44+len(pcm))

	assert.Equal(t, "RIFF", string(wav[0:4]))
	assert.Equal(t, uint32(36+len(pcm)), binary.LittleEndian.Uint32(wav[4:8]))
	assert.Equal(t, "WAVE", string(wav[8:12]))
	assert.Equal(t, "fmt ", string(wav[12:16]))
	assert.Equal(t, uint32(16), binary.LittleEndian.Uint32(wav[16:20]))
	assert.Equal(t, uint16(1), binary.LittleEndian.Uint16(wav[20:22]))
	assert.Equal(t, uint16(1), binary.LittleEndian.Uint16(wav[22:24]))
	assert.Equal(t, uint32(24000), binary.LittleEndian.Uint32(wav[24:28]))
	assert.Equal(t, uint32(48000), binary.LittleEndian.Uint32(wav[28:32])) // byte rate
	assert.Equal(t, uint16(2), binary.LittleEndian.Uint16(wav[32:34]))    // block align
	assert.Equal(t, uint16(16), binary.LittleEndian.Uint16(wav[34:36]))
	assert.Equal(t, "data", string(wav[36:40]))
	assert.Equal(t, uint32(len(pcm)), binary.LittleEndian.Uint32(wav[40:44]))
}

func TestEncodeWAV_EmptyPCM(t *testing.T) {
	_, err := EncodeWAV(nil, DefaultChannels, DefaultSampleRate, DefaultBitDepth)
	require.Error(t, err)
}

func TestEncodeWAV_InvalidFormat(t *testing.T) {
	pcm := []byte{0, 0}
	_, err := EncodeWAV(pcm, 0, DefaultSampleRate, DefaultBitDepth)
	assert.Error(t, err)

	_, err = EncodeWAV(pcm, DefaultChannels, DefaultSampleRate, 12)
	assert.Error(t, err)
}

func TestWAVDataURI(t *testing.T) {
	pcm := []byte{1, 2, 3, 4}
	uri, err := WAVDataURI(pcm)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(uri, "data:audio/wav;base64,"))

	payload := strings.TrimPrefix(uri, "data:audio/wav;base64,")
	decoded, err := base64.StdEncoding.DecodeString(payload)
	require.NoError(t, err)
	assert.Equal(t, "RIFF", string(decoded[0:4]))
	assert.Equal(t, pcm, decoded[44:])
}
