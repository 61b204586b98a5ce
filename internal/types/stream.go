package types

import "iter"

// Stream is a lazy, finite, non-restartable sequence of decoded response
// chunks from an audio endpoint. The underlying HTTP response body stays
// open while the stream is being consumed and is closed when the iterator
// finishes or the consumer breaks out of the loop; abandoning the loop
// early is how a caller cancels the stream.
type Stream[T any] struct {
	seq iter.Seq2[T, error]
}

// NewStream wraps a raw iterator. The iterator yields chunks with a nil
// error for normal progress and a non-nil error for a mid-stream failure,
// and must release any held resources when it returns or when yield
// reports the consumer stopped.
func NewStream[T any](seq iter.Seq2[T, error]) *Stream[T] {
	return &Stream[T]{seq: seq}
}

// Iter returns the chunk iterator for use with range.
func (s *Stream[T]) Iter() iter.Seq2[T, error] { return s.seq }

// Collect drains the stream and returns every chunk received before the
// stream ended or failed. Chunks delivered before a failure are returned
// alongside the error.
func (s *Stream[T]) Collect() ([]T, error) {
	var out []T
	for chunk, err := range s.seq {
		if err != nil {
			return out, err
		}
		out = append(out, chunk)
	}
	return out, nil
}
