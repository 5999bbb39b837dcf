package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from, to ActionState
		want     bool
	}{
		{StateSent, StateAccepted, true},
		{StateSent, StateRefused, true},
		{StateSent, StateCanceled, true},
		{StateSent, StateSent, false},
		{StateAccepted, StateCanceled, false},
		{StateRefused, StateAccepted, false},
		{StateCanceled, StateSent, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.want, CanTransition(tt.from, tt.to))
		})
	}
}

func TestTerminalStates(t *testing.T) {
	assert.False(t, StateSent.Terminal())
	assert.True(t, StateAccepted.Terminal())
	assert.True(t, StateRefused.Terminal())
	assert.True(t, StateCanceled.Terminal())
}

func TestStringListRoundTrip(t *testing.T) {
	v, err := StringList{"4", "Paris"}.Value()
	assert.NoError(t, err)
	assert.Equal(t, `["4","Paris"]`, v)

	var l StringList
	assert.NoError(t, l.Scan([]byte(`["a","b","c"]`)))
	assert.Equal(t, StringList{"a", "b", "c"}, l)

	assert.NoError(t, l.Scan(nil))
	assert.Empty(t, l)

	assert.Error(t, l.Scan(42))
}
