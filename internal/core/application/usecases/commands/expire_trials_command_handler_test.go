package commands_test

import (
	"testing"
	"time"

	"orderboard/internal/core/application/usecases/commands"
	"orderboard/internal/core/domain/model/kernel"
	"orderboard/internal/core/domain/model/merchant"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func expiredMerchant(t *testing.T, slug string) *merchant.Merchant {
	t.Helper()

	m, err := merchant.RestoreMerchant(
		kernel.NewUUID(), "Shop "+slug, slug, "", merchant.SAR,
		time.Now().Add(-24*time.Hour), true)
	require.NoError(t, err)
	return m
}

func TestExpireTrialsCommandHandler_Handle_DeactivatesExpiredMerchants(t *testing.T) {
	// Arrange
	ctx := t.Context()
	cmd := commands.NewExpireTrialsCommand()

	first := expiredMerchant(t, "first")
	second := expiredMerchant(t, "second")

	mockRepo := new(MockMerchantRepository)
	mockUoW := new(MockMerchantUoW)
	mockFactory := new(MockMerchantUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("MerchantRepository").Return(mockRepo).Once(),
		mockRepo.On("GetAllWithExpiredTrial", ctx).
			Return([]*merchant.Merchant{first, second}, nil).Once(),
		mockRepo.On("Update", ctx, first).Return(nil).Once(),
		mockRepo.On("Update", ctx, second).Return(nil).Once(),
		mockUoW.On("Commit", ctx).Return(nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewExpireTrialsCommandHandler(mockFactory, discardLogger())

	// Act
	err := handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	assert.False(t, first.IsActive())
	assert.False(t, second.IsActive())
	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockRepo.AssertExpectations(t)
}

func TestExpireTrialsCommandHandler_Handle_NothingExpired(t *testing.T) {
	// Arrange
	ctx := t.Context()
	cmd := commands.NewExpireTrialsCommand()

	mockRepo := new(MockMerchantRepository)
	mockUoW := new(MockMerchantUoW)
	mockFactory := new(MockMerchantUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("MerchantRepository").Return(mockRepo).Once(),
		mockRepo.On("GetAllWithExpiredTrial", ctx).Return([]*merchant.Merchant{}, nil).Once(),
		mockUoW.On("Commit", ctx).Return(nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewExpireTrialsCommandHandler(mockFactory, discardLogger())

	// Act
	err := handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	mockRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockRepo.AssertExpectations(t)
}
