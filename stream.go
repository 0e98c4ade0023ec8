package xlgrid

import (
	"io"
	"iter"
)

// WriteIter encodes the items of seq as one top-level sequence, the same
// layout [Write] produces for a slice, and drains the sink into w. Items are
// encoded as they arrive; the document is only materialized at the end.
func WriteIter[T any](w io.Writer, sink Sink, seq iter.Seq[T], opts ...Option) (err error) {
	enc := NewEncoder(sink, opts...)
	defer func() {
		if err != nil {
			enc.discard()
		}
	}()
	if err := EncodeIter(enc, seq); err != nil {
		return err
	}
	return enc.Finish(w)
}

// WriteChan encodes items received from ch until it is closed.
// It is a thin wrapper around [WriteIter].
func WriteChan[T any](w io.Writer, sink Sink, ch <-chan T, opts ...Option) error {
	return WriteIter(w, sink, chanToIter(ch), opts...)
}

// EncodeIter encodes the items of seq as one sequence composite. Iteration
// stops at the first error.
func EncodeIter[T any](enc *Encoder, seq iter.Seq[T]) error {
	if enc.done {
		return ErrFinished
	}
	return enc.Composite(func() error {
		for item := range seq {
			if err := enc.Encode(item); err != nil {
				return err
			}
		}
		return nil
	})
}

func chanToIter[T any](ch <-chan T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for item := range ch {
			if !yield(item) {
				return
			}
		}
	}
}
