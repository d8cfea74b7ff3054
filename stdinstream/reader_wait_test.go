//go:build unix

package stdinstream

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReader_WaitForInput_DataReady(t *testing.T) {
	f := newReaderFixture(t, 1024, time.Second)
	require.NoError(t, f.reader.Initialize())

	_, err := f.write.WriteString("step\n")
	require.NoError(t, err)

	available, err := f.reader.WaitForInput()
	require.NoError(t, err)
	assert.True(t, available)

	line, err := f.reader.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "step", string(line))
}

func TestReader_WaitForInput_DataArrivesWhileWaiting(t *testing.T) {
	f := newReaderFixture(t, 1024, 50*time.Millisecond)
	require.NoError(t, f.reader.Initialize())

	go func() {
		time.Sleep(100 * time.Millisecond)
		f.write.WriteString("continue\n")
	}()

	available, err := f.reader.WaitForInput()
	require.NoError(t, err)
	assert.True(t, available)
}

func TestReader_WaitForInput_BufferedBytesCountAsAvailable(t *testing.T) {
	f := newReaderFixture(t, 1024, time.Second)
	require.NoError(t, f.reader.Initialize())

	// One write carrying two lines: the second line sits in the
	// buffered reader where the descriptor poll cannot see it
	_, err := f.write.WriteString("break main\nrun\n")
	require.NoError(t, err)

	_, err = f.reader.ReadLine()
	require.NoError(t, err)

	available, err := f.reader.WaitForInput()
	require.NoError(t, err)
	assert.True(t, available)

	line, err := f.reader.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "run", string(line))
}

func TestReader_WaitForInput_InterruptWhileBlocked(t *testing.T) {
	f := newReaderFixture(t, 1024, 50*time.Millisecond)
	require.NoError(t, f.reader.Initialize())

	go func() {
		time.Sleep(20 * time.Millisecond)
		f.reader.Interrupt()
	}()

	start := time.Now()
	available, err := f.reader.WaitForInput()
	elapsed := time.Since(start)

	assert.ErrorIs(t, err, ErrInterrupted)
	assert.False(t, available)
	// Observed within one polling interval, with generous slack
	assert.Less(t, elapsed, time.Second)
}

func TestReader_WaitForInput_InterruptBeforeWait(t *testing.T) {
	f := newReaderFixture(t, 1024, time.Second)
	require.NoError(t, f.reader.Initialize())

	f.reader.Interrupt()

	available, err := f.reader.WaitForInput()
	assert.ErrorIs(t, err, ErrInterrupted)
	assert.False(t, available)
}

func TestReader_WaitForInput_InterruptIsMonotonic(t *testing.T) {
	f := newReaderFixture(t, 1024, time.Second)
	require.NoError(t, f.reader.Initialize())

	f.reader.Interrupt()

	// The flag stays cleared across shutdown and re-initialize
	require.NoError(t, f.reader.Shutdown())
	require.NoError(t, f.reader.Initialize())

	_, err := f.reader.WaitForInput()
	assert.ErrorIs(t, err, ErrInterrupted)
}

func TestReader_WaitForInput_ClosedStreamReportsReady(t *testing.T) {
	f := newReaderFixture(t, 1024, time.Second)
	require.NoError(t, f.reader.Initialize())

	require.NoError(t, f.write.Close())

	// Hangup means a read will not block; the read then reports the
	// clean end of input
	available, err := f.reader.WaitForInput()
	require.NoError(t, err)
	assert.True(t, available)

	line, err := f.reader.ReadLine()
	assert.NoError(t, err)
	assert.Nil(t, line)
}

func TestReader_WaitForInput_NotInitialized(t *testing.T) {
	f := newReaderFixture(t, 1024, time.Second)

	available, err := f.reader.WaitForInput()

	assert.ErrorIs(t, err, ErrNotInitialized)
	assert.False(t, available)
}
