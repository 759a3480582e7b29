// Package jsonlutil streams values as JSON Lines from a single goroutine.
package jsonlutil

import (
	"bufio"
	"encoding/json"
	"io"
)

// Encoder converts one value to its wire form and encodes it.
type Encoder[T any] func(*json.Encoder, T) error

// Start runs an encoder goroutine for values of type T.
//
// done yields exactly one value: after in is closed and the output is
// flushed, or on the first encode error. Errors for which quiet reports true
// (a closed reader, typically) are turned into nil.
func Start[T any](out io.Writer, bufSize int, encode Encoder[T], quiet func(error) bool) (chan<- T, <-chan error) {
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan T, bufSize)
	done := make(chan error, 1)

	report := func(err error) {
		if err != nil && quiet(err) {
			err = nil
		}
		done <- err
	}

	go func() {
		bw := bufio.NewWriterSize(out, 64<<10)
		enc := json.NewEncoder(bw)
		for v := range in {
			if err := encode(enc, v); err != nil {
				report(err)
				return
			}
		}
		report(bw.Flush())
	}()

	return in, done
}

// WriteAll streams items in order and waits for the writer to finish.
// It stops feeding as soon as the writer reports.
func WriteAll[T any](out io.Writer, items []T, bufSize int, encode Encoder[T], quiet func(error) bool) error {
	in, done := Start(out, bufSize, encode, quiet)
	for _, v := range items {
		select {
		case in <- v:
		case err := <-done:
			return err
		}
	}
	close(in)
	return <-done
}
