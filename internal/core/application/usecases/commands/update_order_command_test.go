package commands_test

import (
	"testing"

	"shop/internal/core/application/usecases/commands"
	"shop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUpdateOrderCommand(t *testing.T) {
	cmd, err := commands.NewUpdateOrderCommand(1, 8, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(8), cmd.OrderID())
	assert.Zero(t, cmd.TotalPrice())

	_, err = commands.NewUpdateOrderCommand(1, 8, -3)
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

	assert.ErrorIs(t, commands.UpdateOrderCommand{}.Validate(), commands.ErrUpdateOrderCommandIsNotConstructed)
}
