package log

import (
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeEvent(t *testing.T) {
	event := Event{
		Timestamp:  time.Date(2026, 3, 14, 9, 26, 53, 589793000, time.UTC),
		Direction:  DirectionIn,
		RemoteAddr: "10.0.0.7:56700",
		Target:     "d0:73:d5:02:97:de",
		Type:       107,
		Sequence:   12,
		Size:       88,
		Data:       []byte{0x58, 0x00, 0x00, 0x14},
		Err:        "unknown message type 9999",
	}

	data, err := EncodeEvent(event)
	require.NoError(t, err)

	got, err := DecodeEvent(data)
	require.NoError(t, err)
	assert.True(t, event.Timestamp.Equal(got.Timestamp))
	got.Timestamp = event.Timestamp
	assert.Equal(t, event, got)
}

func TestFileLoggerRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "packets.trace")

	logger, err := NewFileLogger(path)
	require.NoError(t, err)

	logger.Log(Event{Timestamp: time.Now(), Direction: DirectionOut, Target: "all", Type: 2, Size: 36})
	logger.Log(Event{Timestamp: time.Now(), Direction: DirectionIn, Target: "d0:73:d5:02:97:de", Type: 3, Size: 41})
	require.NoError(t, logger.Close())

	// Log after Close must be ignored, not written or panic.
	logger.Log(Event{Direction: DirectionIn})
	require.NoError(t, logger.Close())

	reader, err := NewReader(path)
	require.NoError(t, err)
	defer reader.Close()

	first, err := reader.Next()
	require.NoError(t, err)
	assert.Equal(t, DirectionOut, first.Direction)
	assert.Equal(t, "all", first.Target)
	assert.Equal(t, uint16(2), first.Type)

	second, err := reader.Next()
	require.NoError(t, err)
	assert.Equal(t, uint16(3), second.Type)

	_, err = reader.Next()
	assert.Equal(t, io.EOF, err)
}

func TestFileLoggerAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "packets.trace")

	for i := 0; i < 2; i++ {
		logger, err := NewFileLogger(path)
		require.NoError(t, err)
		logger.Log(Event{Timestamp: time.Now(), Direction: DirectionOut, Type: 2, Size: 36})
		require.NoError(t, logger.Close())
	}

	reader, err := NewReader(path)
	require.NoError(t, err)
	defer reader.Close()

	count := 0
	for {
		if _, err := reader.Next(); err == io.EOF {
			break
		} else if err != nil {
			t.Fatalf("read trace: %v", err)
		}
		count++
	}
	assert.Equal(t, 2, count)
}

func TestFilteredReader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "packets.trace")

	logger, err := NewFileLogger(path)
	require.NoError(t, err)
	logger.Log(Event{Timestamp: time.Now(), Direction: DirectionOut, Target: "all", Type: 2, Size: 36})
	logger.Log(Event{Timestamp: time.Now(), Direction: DirectionIn, Target: "d0:73:d5:02:97:de", Type: 3, Size: 41})
	logger.Log(Event{Timestamp: time.Now(), Direction: DirectionIn, Size: 4, Err: "packet shorter than the declared size"})
	require.NoError(t, logger.Close())

	in := DirectionIn
	reader, err := NewFilteredReader(path, Filter{Direction: &in})
	require.NoError(t, err)
	defer reader.Close()

	first, err := reader.Next()
	require.NoError(t, err)
	assert.Equal(t, "d0:73:d5:02:97:de", first.Target)

	second, err := reader.Next()
	require.NoError(t, err)
	assert.NotEmpty(t, second.Err)

	_, err = reader.Next()
	assert.Equal(t, io.EOF, err)

	failed, err := NewFilteredReader(path, Filter{FailedOnly: true})
	require.NoError(t, err)
	defer failed.Close()

	got, err := failed.Next()
	require.NoError(t, err)
	assert.Equal(t, "packet shorter than the declared size", got.Err)
	_, err = failed.Next()
	assert.Equal(t, io.EOF, err)
}

func TestReaderMissingFile(t *testing.T) {
	_, err := NewReader(filepath.Join(t.TempDir(), "nope.trace"))
	assert.True(t, os.IsNotExist(err))
}
