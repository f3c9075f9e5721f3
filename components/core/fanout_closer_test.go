package core

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFanoutCloserClosesInReverseOrder(t *testing.T) {
	var closed []string

	closeErr := errors.New("close failed")

	closer := &FanoutCloser{}
	closer.Add("first", FuncCloser(func() error {
		closed = append(closed, "first")

		return nil
	}))
	closer.Add("second", FuncCloser(func() error {
		closed = append(closed, "second")

		return closeErr
	}))
	closer.Add("third", FuncCloser(func() error {
		closed = append(closed, "third")

		return nil
	}))

	require.ErrorIs(t, closer.Close(), closeErr)
	require.Equal(t, []string{"third", "second", "first"}, closed)
}

func TestFanoutCloserCloseTwice(t *testing.T) {
	count := 0

	closer := &FanoutCloser{}
	closer.Add("counter", FuncCloser(func() error {
		count++

		return nil
	}))

	require.Nil(t, closer.Close())
	require.Nil(t, closer.Close())
	require.Equal(t, 1, count)
}
