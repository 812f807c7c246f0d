package domain

import "time"

// SessionSnapshot is a read-only view of one user's traversal state,
// published after each handled event for introspection dashboards. It is
// diagnostics only: live sessions stay in memory and are never restored from
// snapshots.
type SessionSnapshot struct {
	UserID     string    `json:"user_id"`
	Entered    bool      `json:"entered"`
	NodeName   string    `json:"node_name"` // "" while not entered or for unnamed nodes
	Depth      int       `json:"depth"`
	InsideNode bool      `json:"inside_node"`
	UpdatedAt  time.Time `json:"updated_at"`
}
