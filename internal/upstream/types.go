package upstream

import "time"

// Canonical shapes produced by the normalization boundary. Downstream code
// never sees the backend's raw JSON field spellings.

// User is a PlanHive account, as embedded in projects, participants,
// requests and invitations or fetched from the profile endpoint.
type User struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
	Avatar   string `json:"avatar,omitempty"`
}

// Project is a PlanHive project. ID is a pointer: the backend has been
// observed to return rows without an id, and such rows must stay renderable
// without ever being used for a request path.
type Project struct {
	ID           *uint         `json:"id,omitempty"`
	Name         string        `json:"name"`
	Description  string        `json:"description,omitempty"`
	Category     string        `json:"category,omitempty"`
	Private      bool          `json:"private"`
	DueDate      *time.Time    `json:"due_date,omitempty"`
	OwnerID      uint          `json:"owner_id"`
	Owner        *User         `json:"owner,omitempty"`
	Participants []Participant `json:"participants,omitempty"`
	// Role is the aggregation tag: "owner" or "participant" relative to the
	// requesting user. Empty outside aggregated lists.
	Role string `json:"role,omitempty"`
}

// Participant is a non-owner member of a project.
type Participant struct {
	ID        uint       `json:"id"`
	ProjectID uint       `json:"project_id"`
	UserID    uint       `json:"user_id"`
	User      *User      `json:"user,omitempty"`
	JoinedAt  *time.Time `json:"joined_at,omitempty"`
}

// ParticipationRequest is a pending ask to join a project. Requests are
// deleted upstream once accepted or rejected, so there is no status field.
type ParticipationRequest struct {
	ID        uint       `json:"id"`
	ProjectID uint       `json:"project_id"`
	UserID    uint       `json:"user_id"`
	User      *User      `json:"user,omitempty"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
}

// Invitation statuses.
const (
	InvitationPending  = "pending"
	InvitationAccepted = "accepted"
	InvitationRejected = "rejected"
)

// Invitation is an owner-initiated offer for a specific user to join.
type Invitation struct {
	ID         uint       `json:"id"`
	ProjectID  uint       `json:"project_id"`
	Project    *Project   `json:"project,omitempty"`
	FromUserID uint       `json:"from_user_id"`
	ToUserID   uint       `json:"to_user_id"`
	FromUser   *User      `json:"from_user,omitempty"`
	ToUser     *User      `json:"to_user,omitempty"`
	Status     string     `json:"status"`
	CreatedAt  *time.Time `json:"created_at,omitempty"`
}

// Permission roles as reported by the backend.
const (
	RoleOwner       = "owner"
	RoleParticipant = "participant"
	RoleNone        = "none"
)

// Permissions is the backend's authoritative access answer for one
// (project, user) pair. It is computed per request and never cached.
type Permissions struct {
	ProjectID uint   `json:"project_id"`
	UserID    uint   `json:"user_id"`
	HasAccess bool   `json:"has_access"`
	Role      string `json:"role"`
}

// Goal groups tasks inside a project.
type Goal struct {
	ID        uint       `json:"id"`
	ProjectID uint       `json:"project_id"`
	Name      string     `json:"name"`
	DueDate   *time.Time `json:"due_date,omitempty"`
}

// Task is a leaf work item under a goal.
type Task struct {
	ID        uint       `json:"id"`
	GoalID    uint       `json:"goal_id"`
	Name      string     `json:"name"`
	DueDate   *time.Time `json:"due_date,omitempty"`
	Completed bool       `json:"completed"`
}

// CommunityPage is the paginated envelope of the browse/search endpoints.
type CommunityPage struct {
	Results    []Project `json:"results"`
	Total      int       `json:"total"`
	Page       int       `json:"page"`
	Limit      int       `json:"limit"`
	TotalPages int       `json:"totalPages"`
}
