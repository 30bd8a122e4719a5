package guard_test

import (
	"errors"
	"sync"
	"testing"

	"shop/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	errNotConstructed := errors.New("entity not constructed")

	testCases := []struct {
		name     string
		guard    guard.ConstructorGuard
		input    error
		expected error
	}{
		{
			name:     "constructed guard with custom error",
			guard:    guard.NewConstructorGuard(),
			input:    errNotConstructed,
			expected: nil,
		},
		{
			name:     "constructed guard with nil error",
			guard:    guard.NewConstructorGuard(),
			input:    nil,
			expected: nil,
		},
		{
			name:     "zero value returns custom error",
			guard:    guard.ConstructorGuard{},
			input:    errNotConstructed,
			expected: errNotConstructed,
		},
		{
			name:     "zero value falls back to default error",
			guard:    guard.ConstructorGuard{},
			input:    nil,
			expected: guard.ErrDefaultConstructorGuard,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.guard.Validate(tc.input)
			if tc.expected == nil {
				require.NoError(t, err)
				return
			}
			assert.Equal(t, tc.expected, err)
		})
	}
}

func TestConstructorGuard_EmbeddedInCommand(t *testing.T) {
	type command struct {
		name  string
		guard guard.ConstructorGuard
	}
	errCommandNotConstructed := errors.New("command must be created via newCommand")

	newCommand := func(name string) command {
		return command{name: name, guard: guard.NewConstructorGuard()}
	}

	require.NoError(t, newCommand("register").guard.Validate(errCommandNotConstructed))
	require.ErrorIs(t, command{name: "register"}.guard.Validate(errCommandNotConstructed), errCommandNotConstructed)
}

func TestConstructorGuard_ConcurrentValidate(t *testing.T) {
	g := guard.NewConstructorGuard()

	var wg sync.WaitGroup
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, g.Validate(nil))
		}()
	}
	wg.Wait()
}

func TestErrDefaultConstructorGuard_Message(t *testing.T) {
	assert.Equal(t, "object must be created via its constructor", guard.ErrDefaultConstructorGuard.Error())
}
