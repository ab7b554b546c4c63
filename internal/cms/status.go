package cms

import (
	"fmt"
	"time"

	"github.com/daniilsolovey/clinic-cms/internal/db"
)

var transitions = map[db.PublishStatus][]db.PublishStatus{
	db.StatusDraft:     {db.StatusPublished, db.StatusArchived},
	db.StatusPublished: {db.StatusDraft, db.StatusArchived},
	db.StatusArchived:  {db.StatusDraft},
}

// CanTransition reports whether content may move from one status to another.
// Staying in the same status is always allowed.
func CanTransition(from, to db.PublishStatus) bool {
	if from == to {
		return to.IsValid()
	}
	for _, s := range transitions[from] {
		if s == to {
			return true
		}
	}

	return false
}

// applyStatus moves status to next, stamping publishedAt on first publish.
func applyStatus(status *db.PublishStatus, publishedAt **time.Time, next db.PublishStatus, now time.Time) error {
	if !next.IsValid() {
		return invalid("unknown status %q", next)
	}
	if !CanTransition(*status, next) {
		return fmt.Errorf("%w: %s to %s", ErrInvalidTransition, *status, next)
	}

	*status = next
	if next == db.StatusPublished && *publishedAt == nil {
		*publishedAt = &now
	}

	return nil
}

// initialStatus validates the status of new content, defaulting to DRAFT.
func initialStatus(status *db.PublishStatus, publishedAt **time.Time, now time.Time) error {
	if *status == "" {
		*status = db.StatusDraft
	}
	if !status.IsValid() {
		return invalid("unknown status %q", *status)
	}
	if *status == db.StatusPublished && *publishedAt == nil {
		*publishedAt = &now
	}

	return nil
}
