package service

import (
	"github.com/google/uuid"

	"github.com/Marcosdev03/projeto-checklistv02/internal/domain"
)

// IsOwner reports whether callerID owns the given resource. A nil
// resource or a zero caller ID never matches.
func IsOwner(resource domain.Owned, callerID uuid.UUID) bool {
	if resource == nil || callerID == uuid.Nil {
		return false
	}
	return resource.OwnerID() == callerID
}
