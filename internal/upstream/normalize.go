package upstream

import (
	"encoding/json"
	"time"
)

// Boundary adapters. The backend is inconsistent about field spellings
// (createdAt vs created_at, dueDate vs due_date) and about which relations it
// embeds, so every entity passes through exactly one normalize function and
// the rest of the gateway only ever sees the canonical structs in types.go.

type rawUser struct {
	ID       *uint  `json:"id"`
	UserID   *uint  `json:"userId"`
	Username string `json:"username"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Avatar   string `json:"avatar"`
}

type rawProject struct {
	ID           *uint            `json:"id"`
	Name         string           `json:"name"`
	Description  string           `json:"description"`
	Category     string           `json:"category"`
	Private      *bool            `json:"private"`
	IsPrivate    *bool            `json:"isPrivate"`
	DueDate      *string          `json:"due_date"`
	DueDateAlt   *string          `json:"dueDate"`
	Owner        *rawUser         `json:"owner"`
	OwnerID      *uint            `json:"owner_id"`
	OwnerIDAlt   *uint            `json:"ownerId"`
	UserID       *uint            `json:"userId"`
	Participants []rawParticipant `json:"participants"`
}

type rawParticipant struct {
	ID           uint     `json:"id"`
	ProjectID    *uint    `json:"project_id"`
	ProjectIDAlt *uint    `json:"projectId"`
	UserID       *uint    `json:"user_id"`
	UserIDAlt    *uint    `json:"userId"`
	User         *rawUser `json:"user"`
	JoinedAt     *string  `json:"joined_at"`
	JoinedAtAlt  *string  `json:"joinedAt"`
}

type rawRequest struct {
	ID           uint     `json:"id"`
	ProjectID    *uint    `json:"project_id"`
	ProjectIDAlt *uint    `json:"projectId"`
	UserID       *uint    `json:"user_id"`
	UserIDAlt    *uint    `json:"userId"`
	User         *rawUser `json:"user"`
	CreatedAt    *string  `json:"created_at"`
	CreatedAtAlt *string  `json:"createdAt"`
}

type rawInvitation struct {
	ID            uint        `json:"id"`
	ProjectID     *uint       `json:"project_id"`
	ProjectIDAlt  *uint       `json:"projectId"`
	Project       *rawProject `json:"project"`
	FromUserID    *uint       `json:"from_user_id"`
	FromUserIDAlt *uint       `json:"fromUserId"`
	ToUserID      *uint       `json:"to_user_id"`
	ToUserIDAlt   *uint       `json:"toUserId"`
	FromUser      *rawUser    `json:"fromUser"`
	FromUserAlt   *rawUser    `json:"from_user"`
	ToUser        *rawUser    `json:"toUser"`
	ToUserAlt     *rawUser    `json:"to_user"`
	Status        string      `json:"status"`
	CreatedAt     *string     `json:"created_at"`
	CreatedAtAlt  *string     `json:"createdAt"`
}

type rawPermissions struct {
	ProjectID    *uint  `json:"project_id"`
	ProjectIDAlt *uint  `json:"projectId"`
	UserID       *uint  `json:"user_id"`
	UserIDAlt    *uint  `json:"userId"`
	HasAccess    *bool  `json:"has_access"`
	HasAccessAlt *bool  `json:"hasAccess"`
	Role         string `json:"role"`
}

type rawGoal struct {
	ID           uint    `json:"id"`
	ProjectID    *uint   `json:"project_id"`
	ProjectIDAlt *uint   `json:"projectId"`
	Name         string  `json:"name"`
	Title        string  `json:"title"`
	DueDate      *string `json:"due_date"`
	DueDateAlt   *string `json:"dueDate"`
}

type rawTask struct {
	ID           uint    `json:"id"`
	GoalID       *uint   `json:"goal_id"`
	GoalIDAlt    *uint   `json:"goalId"`
	Name         string  `json:"name"`
	Title        string  `json:"title"`
	DueDate      *string `json:"due_date"`
	DueDateAlt   *string `json:"dueDate"`
	Completed    *bool   `json:"completed"`
	CompletedAlt *bool   `json:"isCompleted"`
}

type rawCommunityPage struct {
	Results    []rawProject `json:"results"`
	Total      int          `json:"total"`
	Page       int          `json:"page"`
	Limit      int          `json:"limit"`
	TotalPages int          `json:"totalPages"`
}

// --- pickers ---

func pickUint(candidates ...*uint) uint {
	for _, c := range candidates {
		if c != nil {
			return *c
		}
	}
	return 0
}

func pickBool(candidates ...*bool) bool {
	for _, c := range candidates {
		if c != nil {
			return *c
		}
	}
	return false
}

func pickString(candidates ...string) string {
	for _, c := range candidates {
		if c != "" {
			return c
		}
	}
	return ""
}

// parseTime accepts the two date formats the backend emits: RFC 3339
// timestamps and bare "2006-01-02" dates. Unparseable input maps to nil.
func parseTime(candidates ...*string) *time.Time {
	for _, c := range candidates {
		if c == nil || *c == "" {
			continue
		}
		if t, err := time.Parse(time.RFC3339, *c); err == nil {
			return &t
		}
		if t, err := time.Parse("2006-01-02", *c); err == nil {
			return &t
		}
	}
	return nil
}

// --- normalizers ---

func normalizeUser(r *rawUser) *User {
	if r == nil {
		return nil
	}
	return &User{
		ID:       pickUint(r.ID, r.UserID),
		Username: pickString(r.Username, r.Name),
		Email:    r.Email,
		Avatar:   r.Avatar,
	}
}

func normalizeProject(r rawProject) Project {
	p := Project{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		Category:    r.Category,
		Private:     pickBool(r.Private, r.IsPrivate),
		DueDate:     parseTime(r.DueDate, r.DueDateAlt),
		Owner:       normalizeUser(r.Owner),
	}
	p.OwnerID = pickUint(r.OwnerID, r.OwnerIDAlt, r.UserID)
	if p.OwnerID == 0 && p.Owner != nil {
		p.OwnerID = p.Owner.ID
	}
	if r.Participants != nil {
		p.Participants = make([]Participant, 0, len(r.Participants))
		for _, rp := range r.Participants {
			p.Participants = append(p.Participants, normalizeParticipant(rp))
		}
	}
	return p
}

func normalizeParticipant(r rawParticipant) Participant {
	p := Participant{
		ID:        r.ID,
		ProjectID: pickUint(r.ProjectID, r.ProjectIDAlt),
		UserID:    pickUint(r.UserID, r.UserIDAlt),
		User:      normalizeUser(r.User),
		JoinedAt:  parseTime(r.JoinedAt, r.JoinedAtAlt),
	}
	if p.UserID == 0 && p.User != nil {
		p.UserID = p.User.ID
	}
	return p
}

func normalizeRequest(r rawRequest) ParticipationRequest {
	req := ParticipationRequest{
		ID:        r.ID,
		ProjectID: pickUint(r.ProjectID, r.ProjectIDAlt),
		UserID:    pickUint(r.UserID, r.UserIDAlt),
		User:      normalizeUser(r.User),
		CreatedAt: parseTime(r.CreatedAt, r.CreatedAtAlt),
	}
	if req.UserID == 0 && req.User != nil {
		req.UserID = req.User.ID
	}
	return req
}

func normalizeInvitation(r rawInvitation) Invitation {
	inv := Invitation{
		ID:         r.ID,
		ProjectID:  pickUint(r.ProjectID, r.ProjectIDAlt),
		FromUserID: pickUint(r.FromUserID, r.FromUserIDAlt),
		ToUserID:   pickUint(r.ToUserID, r.ToUserIDAlt),
		FromUser:   normalizeUser(firstUser(r.FromUser, r.FromUserAlt)),
		ToUser:     normalizeUser(firstUser(r.ToUser, r.ToUserAlt)),
		Status:     pickString(r.Status, InvitationPending),
		CreatedAt:  parseTime(r.CreatedAt, r.CreatedAtAlt),
	}
	if inv.FromUserID == 0 && inv.FromUser != nil {
		inv.FromUserID = inv.FromUser.ID
	}
	if inv.ToUserID == 0 && inv.ToUser != nil {
		inv.ToUserID = inv.ToUser.ID
	}
	if r.Project != nil {
		p := normalizeProject(*r.Project)
		inv.Project = &p
		if inv.ProjectID == 0 && p.ID != nil {
			inv.ProjectID = *p.ID
		}
	}
	return inv
}

func firstUser(candidates ...*rawUser) *rawUser {
	for _, c := range candidates {
		if c != nil {
			return c
		}
	}
	return nil
}

func normalizePermissions(r rawPermissions) Permissions {
	role := r.Role
	if role == "" {
		role = RoleNone
	}
	return Permissions{
		ProjectID: pickUint(r.ProjectID, r.ProjectIDAlt),
		UserID:    pickUint(r.UserID, r.UserIDAlt),
		HasAccess: pickBool(r.HasAccess, r.HasAccessAlt),
		Role:      role,
	}
}

func normalizeGoal(r rawGoal) Goal {
	return Goal{
		ID:        r.ID,
		ProjectID: pickUint(r.ProjectID, r.ProjectIDAlt),
		Name:      pickString(r.Name, r.Title),
		DueDate:   parseTime(r.DueDate, r.DueDateAlt),
	}
}

func normalizeTask(r rawTask) Task {
	return Task{
		ID:        r.ID,
		GoalID:    pickUint(r.GoalID, r.GoalIDAlt),
		Name:      pickString(r.Name, r.Title),
		DueDate:   parseTime(r.DueDate, r.DueDateAlt),
		Completed: pickBool(r.Completed, r.CompletedAlt),
	}
}

func normalizeCommunityPage(r rawCommunityPage) *CommunityPage {
	page := &CommunityPage{
		Results:    make([]Project, 0, len(r.Results)),
		Total:      r.Total,
		Page:       r.Page,
		Limit:      r.Limit,
		TotalPages: r.TotalPages,
	}
	for _, rp := range r.Results {
		page.Results = append(page.Results, normalizeProject(rp))
	}
	return page
}

// decodeList tolerates both a bare JSON array and a {"results": [...]}
// wrapper, which the backend uses interchangeably on list endpoints.
func decodeList[T any](data json.RawMessage) ([]T, error) {
	var items []T
	if err := json.Unmarshal(data, &items); err == nil {
		return items, nil
	}
	var wrapped struct {
		Results []T `json:"results"`
	}
	if err := json.Unmarshal(data, &wrapped); err != nil {
		return nil, err
	}
	return wrapped.Results, nil
}
