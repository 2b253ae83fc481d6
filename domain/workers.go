package domain

import "context"

// RevalidateWorker schedules regeneration of static profile pages.
// Send is fire-and-forget and best-effort: a full queue drops the task.
type RevalidateWorker interface {
	Start(ctx context.Context)

	// Send enqueues regeneration of the given user's profile page.
	Send(userID string)
}
