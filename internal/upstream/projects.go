package upstream

import (
	"context"
	"encoding/json"
	"fmt"
)

// ListOwnedProjects returns the projects owned by the session user.
func (c *Client) ListOwnedProjects(ctx context.Context) ([]Project, error) {
	var data json.RawMessage
	if err := c.getJSON(ctx, "/project/list", &data); err != nil {
		return nil, fmt.Errorf("list owned projects: %w", err)
	}
	raws, err := decodeList[rawProject](data)
	if err != nil {
		return nil, fmt.Errorf("decode owned projects: %w", err)
	}
	projects := make([]Project, 0, len(raws))
	for _, r := range raws {
		projects = append(projects, normalizeProject(r))
	}
	return projects, nil
}

// ListParticipatedProjects returns the projects the session user joined as a
// participant.
func (c *Client) ListParticipatedProjects(ctx context.Context) ([]Project, error) {
	var data json.RawMessage
	if err := c.getJSON(ctx, "/users/me/participated-projects", &data); err != nil {
		return nil, fmt.Errorf("list participated projects: %w", err)
	}
	raws, err := decodeList[rawProject](data)
	if err != nil {
		return nil, fmt.Errorf("decode participated projects: %w", err)
	}
	projects := make([]Project, 0, len(raws))
	for _, r := range raws {
		projects = append(projects, normalizeProject(r))
	}
	return projects, nil
}

// ListGoals returns the goals of a project.
func (c *Client) ListGoals(ctx context.Context, projectID uint) ([]Goal, error) {
	var data json.RawMessage
	if err := c.getJSON(ctx, fmt.Sprintf("/project/%d/goals", projectID), &data); err != nil {
		return nil, fmt.Errorf("list goals for project %d: %w", projectID, err)
	}
	raws, err := decodeList[rawGoal](data)
	if err != nil {
		return nil, fmt.Errorf("decode goals for project %d: %w", projectID, err)
	}
	goals := make([]Goal, 0, len(raws))
	for _, r := range raws {
		g := normalizeGoal(r)
		if g.ProjectID == 0 {
			g.ProjectID = projectID
		}
		goals = append(goals, g)
	}
	return goals, nil
}

// ListTasks returns the tasks of a goal.
func (c *Client) ListTasks(ctx context.Context, projectID, goalID uint) ([]Task, error) {
	var data json.RawMessage
	if err := c.getJSON(ctx, fmt.Sprintf("/project/%d/goal/%d/tasks", projectID, goalID), &data); err != nil {
		return nil, fmt.Errorf("list tasks for goal %d: %w", goalID, err)
	}
	raws, err := decodeList[rawTask](data)
	if err != nil {
		return nil, fmt.Errorf("decode tasks for goal %d: %w", goalID, err)
	}
	tasks := make([]Task, 0, len(raws))
	for _, r := range raws {
		t := normalizeTask(r)
		if t.GoalID == 0 {
			t.GoalID = goalID
		}
		tasks = append(tasks, t)
	}
	return tasks, nil
}

// GetPermissions returns the backend's authoritative access answer for the
// session user on one project.
func (c *Client) GetPermissions(ctx context.Context, projectID uint) (*Permissions, error) {
	var raw rawPermissions
	if err := c.getJSON(ctx, fmt.Sprintf("/project/%d/permissions", projectID), &raw); err != nil {
		return nil, fmt.Errorf("get permissions for project %d: %w", projectID, err)
	}
	perms := normalizePermissions(raw)
	if perms.ProjectID == 0 {
		perms.ProjectID = projectID
	}
	return &perms, nil
}
