package commands_test

import (
	"testing"

	"eta/internal/core/application/usecases/commands"
	"eta/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUpdatePolicyCommand_UsesGivenID(t *testing.T) {
	// Arrange
	id := kernel.NewUUID()
	params := fixedPolicyParams()
	params.ID = kernel.NewUUID()

	// Act
	cmd, err := commands.NewUpdatePolicyCommand(id, params)

	// Assert
	require.NoError(t, err)
	assert.True(t, cmd.PolicyID().IsEqual(id))
	assert.True(t, cmd.Policy().ID().IsEqual(id))
}

func TestNewUpdatePolicyCommand_MissingID(t *testing.T) {
	// Act
	_, err := commands.NewUpdatePolicyCommand(kernel.UUID{}, fixedPolicyParams())

	// Assert
	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestUpdatePolicyCommand_Validate_WhenNotConstructed_ShouldReturnError(t *testing.T) {
	var cmd commands.UpdatePolicyCommand

	require.ErrorIs(t, cmd.Validate(), commands.ErrUpdatePolicyCommandIsNotConstructed)
}
