package services

import (
	"fmt"

	"github.com/plumehq/plume/pkg/internal/models"
)

// EditDecision makes the soft-deny pattern explicit: a non-author is not
// refused with an error, they are sent somewhere safe instead. Keeping the
// redirect target in the decision keeps that control flow visible at the
// handler.
type EditDecision struct {
	Allowed    bool
	RedirectTo string
}

func CheckPostEditable(item models.Post, actor models.Account) EditDecision {
	if item.AuthorID != actor.ID {
		return EditDecision{RedirectTo: fmt.Sprintf("/posts/%d", item.ID)}
	}
	return EditDecision{Allowed: true}
}
