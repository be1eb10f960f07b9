package services

import (
	"context"
	"sync"

	"github.com/planhive/gateway/internal/upstream"
	"github.com/planhive/gateway/pkg/logger"
)

// Aggregator builds the unified "projects visible to this user" set and the
// flat goal/task list the schedule, calendar and Gantt views render.
type Aggregator struct {
	client *upstream.Client
}

func NewAggregator(client *upstream.Client) *Aggregator {
	return &Aggregator{client: client}
}

// TaskItem is one row of the flat schedule list: a task denormalized with its
// parent project and goal names so views need no further lookups.
type TaskItem struct {
	upstream.Task
	ProjectName string `json:"project_name"`
	GoalName    string `json:"goal_name"`
}

// AccessibleProjects merges owned and participated projects into one
// de-duplicated list. The owned fetch is mandatory and its error propagates;
// the participated fetch is optional and degrades to an empty set. Order is
// deterministic: owned first in backend order, then unseen participated.
func (a *Aggregator) AccessibleProjects(ctx context.Context, userID uint) ([]upstream.Project, error) {
	owned, err := a.client.ListOwnedProjects(ctx)
	if err != nil {
		return nil, err
	}

	participated, err := a.client.ListParticipatedProjects(ctx)
	if err != nil {
		logger.Warnf("[Aggregate] participated projects unavailable for user %d, continuing without: %v", userID, err)
		participated = nil
	}

	merged := make([]upstream.Project, 0, len(owned)+len(participated))
	seen := make(map[uint]bool, len(owned))

	for _, p := range owned {
		p.Role = upstream.RoleOwner
		if p.ID != nil {
			seen[*p.ID] = true
		}
		merged = append(merged, p)
	}
	for _, p := range participated {
		// Owner tag wins for an id present in both lists. Rows without an
		// id cannot be de-duplicated and pass through as-is.
		if p.ID != nil && seen[*p.ID] {
			continue
		}
		p.Role = upstream.RoleParticipant
		if p.ID != nil {
			seen[*p.ID] = true
		}
		merged = append(merged, p)
	}

	return merged, nil
}

// GoalsAndTasks fans out over every project's goals and every goal's tasks
// concurrently and returns the flat tagged task list. A failed fetch on any
// node yields an empty sub-list for that node only; siblings are unaffected.
// Output order follows input order, not completion order.
func (a *Aggregator) GoalsAndTasks(ctx context.Context, projects []upstream.Project) []TaskItem {
	perProject := make([][]TaskItem, len(projects))

	var wg sync.WaitGroup
	for i, p := range projects {
		if p.ID == nil {
			// No id, no goal endpoint to call.
			continue
		}
		wg.Add(1)
		go func(i int, p upstream.Project) {
			defer wg.Done()
			perProject[i] = a.collectProjectTasks(ctx, p)
		}(i, p)
	}
	wg.Wait()

	var flat []TaskItem
	for _, items := range perProject {
		flat = append(flat, items...)
	}
	return flat
}

func (a *Aggregator) collectProjectTasks(ctx context.Context, p upstream.Project) []TaskItem {
	goals, err := a.client.ListGoals(ctx, *p.ID)
	if err != nil {
		logger.Warnf("[Aggregate] goals unavailable for project %d (%s): %v", *p.ID, p.Name, err)
		return nil
	}

	perGoal := make([][]TaskItem, len(goals))

	var wg sync.WaitGroup
	for i, g := range goals {
		wg.Add(1)
		go func(i int, g upstream.Goal) {
			defer wg.Done()
			tasks, err := a.client.ListTasks(ctx, *p.ID, g.ID)
			if err != nil {
				logger.Warnf("[Aggregate] tasks unavailable for goal %d (%s): %v", g.ID, g.Name, err)
				return
			}
			items := make([]TaskItem, 0, len(tasks))
			for _, t := range tasks {
				items = append(items, TaskItem{
					Task:        t,
					ProjectName: p.Name,
					GoalName:    g.Name,
				})
			}
			perGoal[i] = items
		}(i, g)
	}
	wg.Wait()

	var flat []TaskItem
	for _, items := range perGoal {
		flat = append(flat, items...)
	}
	return flat
}
