package cli

import (
	"fmt"

	"github.com/julianstephens/prodhub/internal/models"
	"github.com/julianstephens/prodhub/internal/storage"
	"github.com/julianstephens/prodhub/internal/tracker"
)

// Context is shared by every command. The tracker is opened lazily so
// commands like init and keyring can run against uninitialized storage.
type Context struct {
	Store   storage.Provider
	Debug   bool
	tracker *tracker.Tracker
}

// Tracker loads the store on first use and builds the entity store over it.
func (c *Context) Tracker() (*tracker.Tracker, error) {
	if c.tracker == nil {
		if err := c.Store.Load(); err != nil {
			return nil, err
		}
		c.tracker = tracker.New(c.Store)
	}
	return c.tracker, nil
}

// announceAwards prints gamification results the way the presentation
// layer surfaces them: points quietly, badges loudly.
func announceAwards(award tracker.Award) {
	if award.Points > 0 {
		fmt.Printf("+%d points\n", award.Points)
	}
	for _, b := range award.Badges {
		fmt.Printf("Congratulations! You've earned the %q badge! %s\n", b.Name, b.Icon)
	}
}

// goalName resolves a goal id to its text for display.
func goalName(st *tracker.State, goalID *int64) string {
	if goalID == nil {
		return ""
	}
	for _, g := range st.Goals {
		if g.ID == *goalID {
			return g.Text
		}
	}
	return ""
}

// findGoalByText matches a goal by its exact text.
func findGoalByText(st *tracker.State, text string) (models.Goal, bool) {
	for _, g := range st.Goals {
		if g.Text == text {
			return g, true
		}
	}
	return models.Goal{}, false
}
