package rating_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"profrate/internal/apperr"
	"profrate/internal/memstore"
	"profrate/internal/module"
	"profrate/internal/professor"
	"profrate/internal/rating"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type world struct {
	store    *memstore.Store
	modules  *module.Service
	service  *rating.Service
	ada      professor.Professor
	alan     professor.Professor
	cs101    module.Instance
	cs101Old module.Instance
	ma201    module.Instance
}

// newWorld builds a catalog where Ada teaches both CS101 offerings and Alan
// teaches MA201 only.
func newWorld(t *testing.T) world {
	t.Helper()
	ctx := context.Background()
	store := memstore.New()
	profs := professor.NewService(store.Professors())
	modules := module.NewService(store.Modules())

	w := world{store: store, modules: modules}
	var err error
	w.ada, err = profs.Create(ctx, professor.CreateInput{Name: "Ada Lovelace", Email: "ada@uni.test", Department: "Computing"})
	require.NoError(t, err)
	w.alan, err = profs.Create(ctx, professor.CreateInput{Name: "Alan Turing", Email: "alan@uni.test", Department: "Maths"})
	require.NoError(t, err)

	_, err = modules.CreateModule(ctx, module.CreateModuleInput{Code: "CS101", Title: "Programming"})
	require.NoError(t, err)
	_, err = modules.CreateModule(ctx, module.CreateModuleInput{Code: "MA201", Title: "Logic"})
	require.NoError(t, err)

	w.cs101, err = modules.CreateInstance(ctx, module.CreateInstanceInput{ModuleCode: "CS101", Year: 2023, Semester: module.SemesterOne, ProfessorIDs: []int64{w.ada.ID}})
	require.NoError(t, err)
	w.cs101Old, err = modules.CreateInstance(ctx, module.CreateInstanceInput{ModuleCode: "CS101", Year: 2022, Semester: module.SemesterOne, ProfessorIDs: []int64{w.ada.ID}})
	require.NoError(t, err)
	w.ma201, err = modules.CreateInstance(ctx, module.CreateInstanceInput{ModuleCode: "MA201", Year: 2023, Semester: module.SemesterTwo, ProfessorIDs: []int64{w.alan.ID}})
	require.NoError(t, err)

	w.service = rating.NewService(store.Ratings(), profs, modules, zerolog.Nop())
	return w
}

func (w world) submit(t *testing.T, userID string, prof int64, inst int64, score int) (rating.Outcome, error) {
	t.Helper()
	outcome, _, err := w.service.Submit(context.Background(), userID, rating.SubmitInput{
		ProfessorID:      prof,
		ModuleInstanceID: inst,
		Score:            score,
	})
	return outcome, err
}

func (w world) ratingsFor(t *testing.T, userID string) []rating.Entry {
	t.Helper()
	entries, err := w.service.ListForUser(context.Background(), userID)
	require.NoError(t, err)
	return entries
}

func TestProperty_FreshSubmitCreatesOneRating(t *testing.T) {
	for score := rating.MinScore; score <= rating.MaxScore; score++ {
		t.Run(fmt.Sprintf("score %d", score), func(t *testing.T) {
			w := newWorld(t)
			outcome, err := w.submit(t, "u1", w.ada.ID, w.cs101.ID, score)
			require.NoError(t, err)
			assert.Equal(t, rating.OutcomeCreated, outcome)

			entries := w.ratingsFor(t, "u1")
			require.Len(t, entries, 1)
			assert.Equal(t, score, entries[0].Score)
			assert.Equal(t, "Ada Lovelace", entries[0].ProfessorName)
		})
	}
}

func TestProperty_ResubmitConverges(t *testing.T) {
	w := newWorld(t)
	scores := []int{1, 5, 3, 3, 2}
	for i, score := range scores {
		outcome, err := w.submit(t, "u1", w.ada.ID, w.cs101.ID, score)
		require.NoError(t, err)
		if i == 0 {
			assert.Equal(t, rating.OutcomeCreated, outcome)
		} else {
			assert.Equal(t, rating.OutcomeUpdated, outcome)
		}
	}

	entries := w.ratingsFor(t, "u1")
	require.Len(t, entries, 1)
	assert.Equal(t, 2, entries[0].Score)

	avg, err := w.service.AverageForProfessor(context.Background(), w.ada.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), avg.TotalRatings)
	assert.Equal(t, 2, avg.AverageRating)
}

func TestProperty_ConcurrentSubmitsConverge(t *testing.T) {
	w := newWorld(t)

	var wg sync.WaitGroup
	errs := make(chan error, 20)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(score int) {
			defer wg.Done()
			_, _, err := w.service.Submit(context.Background(), "u1", rating.SubmitInput{
				ProfessorID:      w.ada.ID,
				ModuleInstanceID: w.cs101.ID,
				Score:            score,
			})
			errs <- err
		}(i%5 + 1)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	entries := w.ratingsFor(t, "u1")
	require.Len(t, entries, 1)
	assert.GreaterOrEqual(t, entries[0].Score, rating.MinScore)
	assert.LessOrEqual(t, entries[0].Score, rating.MaxScore)
}

func TestProperty_AverageWithoutRatingsIsZero(t *testing.T) {
	w := newWorld(t)
	avg, err := w.service.AverageForProfessor(context.Background(), w.ada.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, avg.AverageRating)
	assert.Equal(t, int64(0), avg.TotalRatings)
}

func TestProperty_AverageRounding(t *testing.T) {
	tests := []struct {
		name   string
		scores []int
		want   int
	}{
		{name: "mean 4.0", scores: []int{4, 5, 3}, want: 4},
		{name: "mean 4.5 rounds up", scores: []int{4, 5}, want: 5},
		{name: "mean 2.5 rounds up", scores: []int{2, 3}, want: 3},
		{name: "mean 1.33 rounds down", scores: []int{1, 1, 2}, want: 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newWorld(t)
			for i, score := range tt.scores {
				_, err := w.submit(t, fmt.Sprintf("u%d", i), w.ada.ID, w.cs101.ID, score)
				require.NoError(t, err)
			}
			avg, err := w.service.AverageForProfessor(context.Background(), w.ada.ID)
			require.NoError(t, err)
			assert.Equal(t, tt.want, avg.AverageRating)
		})
	}
}

func TestProperty_ModuleAverage(t *testing.T) {
	ctx := context.Background()

	t.Run("teaching without ratings", func(t *testing.T) {
		w := newWorld(t)
		avg, err := w.service.AverageForProfessorInModule(ctx, w.ada.ID, "CS101")
		require.NoError(t, err)
		assert.Equal(t, 0, avg.AverageRating)
		assert.False(t, avg.HasRatings)
		assert.Equal(t, rating.NoRatingsMessage, avg.Message)
	})

	t.Run("not teaching is a conflict", func(t *testing.T) {
		w := newWorld(t)
		_, err := w.service.AverageForProfessorInModule(ctx, w.alan.ID, "CS101")
		assert.ErrorIs(t, err, rating.ErrNotTeachingModule)
		assert.ErrorIs(t, err, apperr.ErrConflict)
	})

	t.Run("averages across every offering", func(t *testing.T) {
		w := newWorld(t)
		_, err := w.submit(t, "u1", w.ada.ID, w.cs101.ID, 4)
		require.NoError(t, err)
		_, err = w.submit(t, "u2", w.ada.ID, w.cs101Old.ID, 5)
		require.NoError(t, err)

		avg, err := w.service.AverageForProfessorInModule(ctx, w.ada.ID, "cs101")
		require.NoError(t, err)
		assert.Equal(t, 5, avg.AverageRating)
		assert.Equal(t, int64(2), avg.TotalRatings)
		assert.Equal(t, "Programming", avg.ModuleTitle)
		assert.Empty(t, avg.Message)
	})

	t.Run("unknown module", func(t *testing.T) {
		w := newWorld(t)
		_, err := w.service.AverageForProfessorInModule(ctx, w.ada.ID, "ZZ999")
		assert.ErrorIs(t, err, apperr.ErrNotFound)
	})
}

func TestProperty_OutOfRangeScoreCreatesNothing(t *testing.T) {
	w := newWorld(t)
	for _, score := range []int{0, 6} {
		_, err := w.submit(t, "u1", w.ada.ID, w.cs101.ID, score)
		assert.ErrorIs(t, err, apperr.ErrValidation)
	}
	assert.Empty(t, w.ratingsFor(t, "u1"))
}

func TestProperty_UnassignedProfessorCreatesNothing(t *testing.T) {
	w := newWorld(t)
	_, err := w.submit(t, "u1", w.alan.ID, w.cs101.ID, 4)
	assert.ErrorIs(t, err, rating.ErrNotAssigned)
	assert.ErrorIs(t, err, apperr.ErrValidation)
	assert.Empty(t, w.ratingsFor(t, "u1"))

	avg, err := w.service.AverageForProfessor(context.Background(), w.alan.ID)
	require.NoError(t, err)
	assert.Zero(t, avg.TotalRatings)
}

func TestProperty_DuplicateOfferingFails(t *testing.T) {
	w := newWorld(t)
	_, err := w.modules.CreateInstance(context.Background(), module.CreateInstanceInput{
		ModuleCode: "CS101",
		Year:       2023,
		Semester:   module.SemesterOne,
	})
	assert.ErrorIs(t, err, module.ErrDuplicateOffer)
	assert.ErrorIs(t, err, apperr.ErrConflict)
}

func TestProperty_OverviewListsEveryProfessor(t *testing.T) {
	w := newWorld(t)
	_, err := w.submit(t, "u1", w.alan.ID, w.ma201.ID, 3)
	require.NoError(t, err)

	rows, err := w.service.Overview(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, 0, rows[0].AverageRating)
	assert.Equal(t, 3, rows[1].AverageRating)
}
