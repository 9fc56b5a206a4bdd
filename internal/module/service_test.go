package module

import (
	"context"
	"testing"

	"profrate/internal/apperr"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_CreateModule(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRepo := NewMockRepository(ctrl)
	service := NewService(mockRepo)

	t.Run("defaults credits and upper-cases code", func(t *testing.T) {
		mockRepo.EXPECT().CreateModule(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, m *Module) error {
			m.ID = 1
			return nil
		})

		m, err := service.CreateModule(context.Background(), CreateModuleInput{Code: " cs101 ", Title: "Programming"})
		require.NoError(t, err)
		assert.Equal(t, "CS101", m.Code)
		assert.Equal(t, DefaultCredit, m.Credits)
	})

	t.Run("code too long", func(t *testing.T) {
		_, err := service.CreateModule(context.Background(), CreateModuleInput{Code: "ABCDEFGHIJK", Title: "X"})
		assert.ErrorIs(t, err, apperr.ErrValidation)
	})
}

func TestService_CreateInstance(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRepo := NewMockRepository(ctrl)
	service := NewService(mockRepo)
	ctx := context.Background()

	cs101 := Module{ID: 3, Code: "CS101", Title: "Programming"}

	t.Run("year out of range", func(t *testing.T) {
		_, err := service.CreateInstance(ctx, CreateInstanceInput{ModuleCode: "CS101", Year: 1999, Semester: SemesterOne})
		assert.ErrorIs(t, err, apperr.ErrValidation)
	})

	t.Run("bad semester", func(t *testing.T) {
		_, err := service.CreateInstance(ctx, CreateInstanceInput{ModuleCode: "CS101", Year: 2024, Semester: 3})
		assert.ErrorIs(t, err, apperr.ErrValidation)
	})

	t.Run("unknown module", func(t *testing.T) {
		mockRepo.EXPECT().GetModuleByCode(gomock.Any(), "XX1").Return(Module{}, ErrModuleNotFound)
		_, err := service.CreateInstance(ctx, CreateInstanceInput{ModuleCode: "xx1", Year: 2024, Semester: SemesterOne})
		assert.ErrorIs(t, err, ErrModuleNotFound)
	})

	t.Run("duplicate offering", func(t *testing.T) {
		mockRepo.EXPECT().GetModuleByCode(gomock.Any(), "CS101").Return(cs101, nil)
		mockRepo.EXPECT().CreateInstance(gomock.Any(), gomock.Any(), gomock.Any()).Return(ErrDuplicateOffer)

		_, err := service.CreateInstance(ctx, CreateInstanceInput{ModuleCode: "CS101", Year: 2024, Semester: SemesterOne})
		assert.ErrorIs(t, err, apperr.ErrConflict)
	})

	t.Run("created with deduplicated professors", func(t *testing.T) {
		mockRepo.EXPECT().GetModuleByCode(gomock.Any(), "CS101").Return(cs101, nil)
		mockRepo.EXPECT().CreateInstance(gomock.Any(), gomock.Any(), []int64{1, 2}).
			DoAndReturn(func(_ context.Context, inst *Instance, _ []int64) error {
				assert.Equal(t, int64(3), inst.ModuleID)
				inst.ID = 11
				return nil
			})
		mockRepo.EXPECT().GetInstance(gomock.Any(), int64(11)).Return(Instance{ID: 11, ModuleCode: "CS101"}, nil)

		inst, err := service.CreateInstance(ctx, CreateInstanceInput{
			ModuleCode:   "CS101",
			Year:         2024,
			Semester:     SemesterTwo,
			ProfessorIDs: []int64{1, 2, 1},
		})
		require.NoError(t, err)
		assert.Equal(t, int64(11), inst.ID)
	})
}

func TestService_ListInstances(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRepo := NewMockRepository(ctrl)
	service := NewService(mockRepo)

	mockRepo.EXPECT().ListInstances(gomock.Any(), ListQuery{ModuleCode: "CS101", Limit: 20}).Return([]Instance{{ID: 1}}, 1, nil)

	got, total, err := service.ListInstances(context.Background(), ListQuery{ModuleCode: "cs101", Limit: 20})
	require.NoError(t, err)
	assert.Len(t, got, 1)
	assert.Equal(t, 1, total)

	_, _, err = service.ListInstances(context.Background(), ListQuery{Semester: 5})
	assert.ErrorIs(t, err, apperr.ErrValidation)

	_, _, err = service.ListInstances(context.Background(), ListQuery{Limit: 20, Offset: -20})
	assert.ErrorIs(t, err, apperr.ErrValidation)
}
