package domain

import "time"

// ReadStatus records when a user last acknowledged a project's content.
// Unique on (ProjectID, UserEmail); created lazily on first acknowledgment
// and overwritten on every subsequent one. No history is kept.
type ReadStatus struct {
	ProjectID  string    `json:"project_id" bson:"project_id"`
	UserEmail  string    `json:"user_email" bson:"user_email"`
	LastReadAt time.Time `json:"last_read_at" bson:"last_read_at"`
}
