package query

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/google/uuid"

	"github.com/RichieRish05/ProRankAI/internal/common"
	"github.com/RichieRish05/ProRankAI/internal/entity"
)

func TestNormalizeCohortFlags(t *testing.T) {
	cases := []struct {
		name  string
		flags entity.FilterFlags
		want  []string
	}{
		{"none selects all", entity.FilterFlags{}, nil},
		{"single cohort", entity.FilterFlags{Junior: true}, []string{"Junior"}},
		{
			"cohorts combine as OR",
			entity.FilterFlags{Freshman: true, Senior: true},
			[]string{"Freshman", "Senior"},
		},
		{
			"all four is explicit everything",
			entity.FilterFlags{Freshman: true, Sophomore: true, Junior: true, Senior: true},
			[]string{"Freshman", "Sophomore", "Junior", "Senior"},
		},
	}
	for _, tc := range cases {
		got := Normalize(tc.flags)
		if !reflect.DeepEqual(got.Years, tc.want) {
			t.Errorf("%s: Years = %v, want %v", tc.name, got.Years, tc.want)
		}
	}
}

func TestNormalizeScoreFlags(t *testing.T) {
	cases := []struct {
		name  string
		flags entity.FilterFlags
		want  entity.ScoreFilter
	}{
		{"neither", entity.FilterFlags{}, entity.ScoreFilterNone},
		{"passed only", entity.FilterFlags{Passed: true}, entity.ScoreFilterPassed},
		{"failed only", entity.FilterFlags{Failed: true}, entity.ScoreFilterFailed},
		{"both cancel out", entity.FilterFlags{Passed: true, Failed: true}, entity.ScoreFilterNone},
	}
	for _, tc := range cases {
		if got := Normalize(tc.flags); got.Score != tc.want {
			t.Errorf("%s: Score = %q, want %q", tc.name, got.Score, tc.want)
		}
	}
}

// filterSpy records the filter the gateway hands to the repository.
type filterSpy struct {
	listFilter  *entity.TaskFilter
	statsFilter *entity.TaskFilter
	tasks       []*entity.ScoreTask
	stats       entity.TaskStats
	getErr      error
}

func (f *filterSpy) Create(context.Context, uuid.UUID, entity.DocumentRef) (*entity.ScoreTask, error) {
	panic("not used")
}

func (f *filterSpy) GetByID(_ context.Context, id uuid.UUID) (*entity.ScoreTask, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return &entity.ScoreTask{ID: id}, nil
}

func (f *filterSpy) ListByJob(_ context.Context, _ uuid.UUID, filter entity.TaskFilter) ([]*entity.ScoreTask, error) {
	f.listFilter = &filter
	return f.tasks, nil
}

func (f *filterSpy) Stats(_ context.Context, _ uuid.UUID, filter entity.TaskFilter) (entity.TaskStats, error) {
	f.statsFilter = &filter
	return f.stats, nil
}

func (f *filterSpy) CountActive(context.Context, uuid.UUID) (int, error) { return 0, nil }
func (f *filterSpy) MarkDownloaded(context.Context, uuid.UUID, string) error {
	panic("not used")
}
func (f *filterSpy) MarkScored(context.Context, uuid.UUID, entity.ScoreResult) error {
	panic("not used")
}
func (f *filterSpy) MarkFailed(context.Context, uuid.UUID, string) error { panic("not used") }

func TestListTasksUsesOneFilterForRowsAndStats(t *testing.T) {
	spy := &filterSpy{
		tasks: []*entity.ScoreTask{{ID: uuid.New()}},
		stats: entity.TaskStats{Count: 1, Average: 85, Max: 85, Min: 85},
	}
	g := NewGateway(nil, spy, nil)

	flags := entity.FilterFlags{Junior: true, Passed: true}
	tasks, stats, err := g.ListTasks(context.Background(), uuid.New(), flags)
	if err != nil {
		t.Fatalf("ListTasks: %v", err)
	}
	if len(tasks) != 1 || stats.Count != 1 {
		t.Errorf("tasks=%d stats.Count=%d", len(tasks), stats.Count)
	}
	want := Normalize(flags)
	if !reflect.DeepEqual(*spy.listFilter, want) {
		t.Errorf("list filter = %+v, want %+v", *spy.listFilter, want)
	}
	if !reflect.DeepEqual(*spy.statsFilter, want) {
		t.Errorf("stats filter = %+v, want %+v", *spy.statsFilter, want)
	}
}

func TestListTasksEmptySetZeroStats(t *testing.T) {
	spy := &filterSpy{stats: entity.TaskStats{}}
	g := NewGateway(nil, spy, nil)

	tasks, stats, err := g.ListTasks(context.Background(), uuid.New(), entity.FilterFlags{Senior: true})
	if err != nil {
		t.Fatalf("ListTasks: %v", err)
	}
	if len(tasks) != 0 {
		t.Errorf("tasks = %d, want 0", len(tasks))
	}
	if stats != (entity.TaskStats{}) {
		t.Errorf("stats = %+v, want zeros", stats)
	}
}

func TestGetTaskNotFound(t *testing.T) {
	spy := &filterSpy{getErr: common.ErrNotFound}
	g := NewGateway(nil, spy, nil)

	if _, err := g.GetTask(context.Background(), uuid.New()); !errors.Is(err, common.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}
