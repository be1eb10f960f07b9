package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/planhive/gateway/internal/middleware"
	"github.com/planhive/gateway/internal/services"
	"github.com/planhive/gateway/pkg/response"
)

type OverviewHandler struct {
	aggregator *services.Aggregator
}

func NewOverviewHandler(aggregator *services.Aggregator) *OverviewHandler {
	return &OverviewHandler{aggregator: aggregator}
}

// Projects returns every project the session user can see, owned and
// participated merged, tagged with the user's role.
// GET /api/overview/projects
func (h *OverviewHandler) Projects(c *gin.Context) {
	userID := middleware.GetUserID(c)

	projects, err := h.aggregator.AccessibleProjects(c.Request.Context(), userID)
	if err != nil {
		upstreamError(c, err)
		return
	}

	response.Success(c, gin.H{
		"projects": projects,
		"total":    len(projects),
	})
}

// Schedule returns the flat task list across all accessible projects plus the
// derived views: overdue, upcoming, calendar groups and the Gantt timeline.
// GET /api/overview/schedule
func (h *OverviewHandler) Schedule(c *gin.Context) {
	userID := middleware.GetUserID(c)
	ctx := c.Request.Context()

	projects, err := h.aggregator.AccessibleProjects(ctx, userID)
	if err != nil {
		upstreamError(c, err)
		return
	}

	tasks := h.aggregator.GoalsAndTasks(ctx, projects)
	now := time.Now()

	response.Success(c, gin.H{
		"tasks":    tasks,
		"overdue":  services.Overdue(tasks, now, services.DefaultScheduleLimit),
		"upcoming": services.Upcoming(tasks, now, services.DefaultScheduleLimit),
		"groups":   services.GroupByDueDate(tasks),
		"timeline": services.Timeline(tasks),
	})
}
