package domain_test

import (
	"testing"
	"time"

	"go-hackmate-backend/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestNewSkillSet(t *testing.T) {
	t.Run("Dedupes case-insensitively keeping first casing", func(t *testing.T) {
		set := domain.NewSkillSet("Go", "go", " Python ", "", "Python")
		assert.Equal(t, domain.SkillSet{"Go", "Python"}, set)
	})

	t.Run("Intersection preserves receiver order", func(t *testing.T) {
		a := domain.NewSkillSet("Go", "Python", "React")
		b := domain.NewSkillSet("react", "go")
		assert.Equal(t, domain.SkillSet{"Go", "React"}, a.Intersection(b))
		assert.True(t, a.Intersects(b))
		assert.False(t, a.Intersects(domain.NewSkillSet("Rust")))
	})
}

func TestExperienceLevelOrdinal(t *testing.T) {
	cases := map[domain.ExperienceLevel]int{
		domain.ExperienceBeginner:     0,
		domain.ExperienceIntermediate: 1,
		domain.ExperienceAdvanced:     2,
		domain.ExperienceExpert:       3,
	}
	for level, want := range cases {
		got, ok := level.Ordinal()
		assert.True(t, ok)
		assert.Equal(t, want, got)
	}

	_, ok := domain.ExperienceLevel("ninja").Ordinal()
	assert.False(t, ok)
}

func TestLocationPreferenceValid(t *testing.T) {
	assert.True(t, domain.LocationAny.Valid())
	assert.True(t, domain.LocationSameCity.Valid())
	assert.False(t, domain.LocationPreference("same_planet").Valid())
}

func TestProfileCountry(t *testing.T) {
	p := domain.Profile{Location: "Berlin, Germany"}
	assert.Equal(t, "Germany", p.Country())

	p.Location = "Berlin"
	assert.Equal(t, "", p.Country())

	p.Location = "Shinjuku, Tokyo, Japan"
	assert.Equal(t, "Japan", p.Country())
}

func TestTaskSetStatus(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Entering done freezes completed_at", func(t *testing.T) {
		task := domain.Task{Status: domain.TaskInProgress}
		task.SetStatus(domain.TaskDone, now)
		assert.NotNil(t, task.CompletedAt)
		assert.Equal(t, now, *task.CompletedAt)

		// A later done transition must not move the timestamp.
		task.SetStatus(domain.TaskDone, now.Add(time.Hour))
		assert.Equal(t, now, *task.CompletedAt)
	})

	t.Run("Leaving done clears completed_at", func(t *testing.T) {
		task := domain.Task{Status: domain.TaskInProgress}
		task.SetStatus(domain.TaskDone, now)
		task.SetStatus(domain.TaskReview, now.Add(time.Hour))
		assert.Nil(t, task.CompletedAt)
	})
}

func TestTaskIsOverdue(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	assert.True(t, (&domain.Task{Status: domain.TaskTodo, DueDate: &past}).IsOverdue(now))
	assert.False(t, (&domain.Task{Status: domain.TaskDone, DueDate: &past}).IsOverdue(now))
	assert.False(t, (&domain.Task{Status: domain.TaskTodo, DueDate: &future}).IsOverdue(now))
	assert.False(t, (&domain.Task{Status: domain.TaskTodo}).IsOverdue(now))
}

func TestMatchingPreferenceWantsExperience(t *testing.T) {
	pref := domain.MatchingPreference{}
	assert.True(t, pref.WantsExperience(domain.ExperienceBeginner))

	pref.ExperienceLevelPreference = []domain.ExperienceLevel{domain.ExperienceExpert}
	assert.True(t, pref.WantsExperience(domain.ExperienceExpert))
	assert.False(t, pref.WantsExperience(domain.ExperienceBeginner))
}
