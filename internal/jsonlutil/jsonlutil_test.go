package jsonlutil

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

func never(error) bool { return false }

func encodeInt(enc *json.Encoder, v int) error { return enc.Encode(v) }

func TestStartEncodesEachValue(t *testing.T) {
	var b bytes.Buffer
	in, done := Start[int](&b, 0, encodeInt, never)
	for i := 1; i <= 3; i++ {
		in <- i
	}
	close(in)
	assert.NoError(t, <-done)
	assert.Equal(t, "1\n2\n3\n", b.String())
}

func TestStartReportsEncodeError(t *testing.T) {
	boom := errors.New("boom")
	in, done := Start[int](&bytes.Buffer{}, 1, func(*json.Encoder, int) error { return boom }, never)
	in <- 1
	assert.ErrorIs(t, <-done, boom)
}

func TestWriteAll(t *testing.T) {
	var b bytes.Buffer
	assert.NoError(t, WriteAll(&b, []int{4, 5}, 1, encodeInt, never))
	assert.Equal(t, "4\n5\n", b.String())

	b.Reset()
	assert.NoError(t, WriteAll[int](&b, nil, 1, encodeInt, never))
	assert.Empty(t, b.String())
}

func TestWriteAllStopsOnError(t *testing.T) {
	boom := errors.New("boom")
	items := make([]int, 1000)
	err := WriteAll(&bytes.Buffer{}, items, 1, func(*json.Encoder, int) error { return boom }, never)
	assert.ErrorIs(t, err, boom)
}

type failWriter struct{ err error }

func (f failWriter) Write([]byte) (int, error) { return 0, f.err }

func TestQuietErrorsBecomeNil(t *testing.T) {
	quiet := func(err error) bool { return errors.Is(err, io.ErrClosedPipe) }
	assert.NoError(t, WriteAll(failWriter{io.ErrClosedPipe}, []int{1}, 1, encodeInt, quiet))
	assert.Error(t, WriteAll(failWriter{io.ErrUnexpectedEOF}, []int{1}, 1, encodeInt, quiet))
}
