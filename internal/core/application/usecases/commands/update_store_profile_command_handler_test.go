package commands_test

import (
	"testing"

	"storepanel/internal/core/application/usecases/commands"
	"storepanel/internal/core/domain/model/kernel"
	"storepanel/internal/core/domain/model/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testProfile(t *testing.T) *store.Profile {
	t.Helper()
	profile, err := store.NewProfile(
		kernel.NewUUID(), "AutoParts Plus", "+213 555 01 02 03", "08:00-18:00",
		store.CarParts, "Parts and accessories", "", "Algiers Centre", "",
		[]string{"Algiers"}, true,
	)
	require.NoError(t, err)
	return profile
}

func TestUpdateStoreProfileCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	profile := testProfile(t)

	newName := "AutoParts Plus DZ"
	newBio := "Parts, accessories and service"
	cmd, err := commands.NewUpdateStoreProfileCommand(store.ProfilePatch{
		Name: &newName,
		Bio:  &newBio,
	})
	require.NoError(t, err)

	repo := new(MockStoreProfileRepository)
	uow := new(MockProfileUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("StoreProfileRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything).Return(profile, nil).Once(),
		repo.On("Save", mock.Anything, profile).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockProfileUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateStoreProfileCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	assert.Equal(t, "AutoParts Plus DZ", profile.Name())
	assert.Equal(t, "Parts, accessories and service", profile.Bio())
	// Untouched fields keep their values.
	assert.Equal(t, "+213 555 01 02 03", profile.Phone())
}

func TestUpdateStoreProfileCommandHandler_Handle_EmptyNameRejected(t *testing.T) {
	ctx := t.Context()
	profile := testProfile(t)

	empty := ""
	cmd, err := commands.NewUpdateStoreProfileCommand(store.ProfilePatch{Name: &empty})
	require.NoError(t, err)

	repo := new(MockStoreProfileRepository)
	uow := new(MockProfileUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("StoreProfileRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything).Return(profile, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockProfileUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateStoreProfileCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.Equal(t, "AutoParts Plus", profile.Name())
	repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}
