package importer

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/julianstephens/prodhub/internal/models"
	"github.com/julianstephens/prodhub/internal/tracker"
)

// YAMLTask represents a single task in the YAML input.
type YAMLTask struct {
	Text      string `yaml:"text"`
	Category  string `yaml:"category,omitempty"`
	Goal      string `yaml:"goal,omitempty"` // linked by goal text
	Completed bool   `yaml:"completed,omitempty"`
}

// YAMLInput represents the root structure of the YAML input.
type YAMLInput struct {
	Goals  []string   `yaml:"goals,omitempty"`
	Tasks  []YAMLTask `yaml:"tasks,omitempty"`
	Habits []string   `yaml:"habits,omitempty"`
}

// Result counts what was created.
type Result struct {
	Goals  int
	Tasks  int
	Habits int
}

// Import parses a YAML document and creates goals, tasks and habits
// through the tracker's own operations, so blank texts are skipped and
// gamification fires as usual. Goals are created first so tasks can link
// to them by text; tasks naming an unknown goal are left unlinked.
func Import(t *tracker.Tracker, yamlStr string) (Result, error) {
	var input YAMLInput
	if err := yaml.Unmarshal([]byte(yamlStr), &input); err != nil {
		return Result{}, fmt.Errorf("YAML parse error: %w", err)
	}

	if len(input.Goals) == 0 && len(input.Tasks) == 0 && len(input.Habits) == 0 {
		return Result{}, fmt.Errorf("no goals, tasks or habits found in YAML")
	}

	var res Result

	goalIDs := make(map[string]int64)
	for _, g := range t.State().Goals {
		goalIDs[g.Text] = g.ID
	}
	for _, text := range input.Goals {
		if _, exists := goalIDs[text]; exists {
			continue
		}
		goal, ok := t.AddGoal(text)
		if !ok {
			continue
		}
		goalIDs[goal.Text] = goal.ID
		res.Goals++
	}

	for _, yt := range input.Tasks {
		category := models.Category(yt.Category)
		if category == "" {
			category = models.CategoryOther
		}

		var goalID *int64
		if yt.Goal != "" {
			if id, ok := goalIDs[yt.Goal]; ok {
				goalID = &id
			}
		}

		task, _, ok := t.AddTask(yt.Text, category, goalID)
		if !ok {
			continue
		}
		if yt.Completed {
			t.ToggleTask(task.ID)
		}
		res.Tasks++
	}

	for _, text := range input.Habits {
		if _, ok := t.AddHabit(text); ok {
			res.Habits++
		}
	}

	return res, nil
}
