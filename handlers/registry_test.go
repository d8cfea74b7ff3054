package handlers

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_RegisterAndGet(t *testing.T) {
	r := NewRegistry()
	r.Register(HandlerFunc("step", "Step one instruction", func(ctx context.Context, args []string) error {
		return nil
	}))

	h, ok := r.Get("step")

	require.True(t, ok)
	assert.Equal(t, "step", h.Name())
	assert.Equal(t, "Step one instruction", h.Synopsis())
}

func TestRegistry_Get_Unknown(t *testing.T) {
	r := NewRegistry()

	_, ok := r.Get("nope")

	assert.False(t, ok)
}

func TestRegistry_Register_Replaces(t *testing.T) {
	r := NewRegistry()
	r.Register(HandlerFunc("run", "old", nil))
	r.Register(HandlerFunc("run", "new", nil))

	h, ok := r.Get("run")

	require.True(t, ok)
	assert.Equal(t, "new", h.Synopsis())
}

func TestRegistry_Names_Sorted(t *testing.T) {
	r := NewRegistry()
	r.Register(HandlerFunc("step", "", nil))
	r.Register(HandlerFunc("break", "", nil))
	r.Register(HandlerFunc("run", "", nil))

	assert.Equal(t, []string{"break", "run", "step"}, r.Names())
}

func TestRegistry_Dispatch(t *testing.T) {
	r := NewRegistry()
	var got []string
	r.Register(HandlerFunc("break", "Set a breakpoint", func(ctx context.Context, args []string) error {
		got = args
		return nil
	}))

	err := r.Dispatch(context.Background(), "break", []string{"main", "+4"})

	require.NoError(t, err)
	assert.Equal(t, []string{"main", "+4"}, got)
}

func TestRegistry_Dispatch_Unknown(t *testing.T) {
	r := NewRegistry()

	err := r.Dispatch(context.Background(), "nope", nil)

	assert.Error(t, err)
}

func TestRegistry_Dispatch_HandlerError(t *testing.T) {
	r := NewRegistry()
	boom := errors.New("no such symbol")
	r.Register(HandlerFunc("break", "", func(ctx context.Context, args []string) error {
		return boom
	}))

	err := r.Dispatch(context.Background(), "break", []string{"nope"})

	assert.ErrorIs(t, err, boom)
}
