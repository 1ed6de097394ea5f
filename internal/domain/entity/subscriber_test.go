package entity

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewSubscriber_DefaultState(t *testing.T) {
	s := NewSubscriber(1, 10)
	require.Equal(t, StateInactive, s.State)
	require.False(t, s.IsActive())
	require.Equal(t, int64(1), s.UserID)
	require.Equal(t, int64(10), s.ChatID)
}

func TestSubscriber_SetState(t *testing.T) {
	s := NewSubscriber(1, 10)
	s.SetState(StateActive)
	require.True(t, s.IsActive())
}
