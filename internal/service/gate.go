package service

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/adithya2152/devconnect/internal/domain"
	"github.com/adithya2152/devconnect/internal/repository"
)

// Access is the level of room access being requested. Read and write
// require the same approval level in this design; the distinction exists so
// callers state their intent.
type Access int

const (
	AccessRead Access = iota
	AccessWrite
)

// Decision is the outcome of a membership check.
type Decision int

const (
	DecisionAllowed Decision = iota
	DecisionDeniedNotMember
	DecisionDeniedPending
)

func (d Decision) String() string {
	switch d {
	case DecisionAllowed:
		return "allowed"
	case DecisionDeniedNotMember:
		return "denied:not_member"
	case DecisionDeniedPending:
		return "denied:pending_approval"
	}
	return "denied:unknown"
}

// MembershipGate decides whether a subject may access a room. It is a pure
// decision function over the store state; it never mutates anything.
type MembershipGate struct {
	rooms       repository.RoomRepository
	directRooms repository.DirectRoomRepository
	memberships repository.MembershipRepository
}

func NewMembershipGate(rooms repository.RoomRepository, directRooms repository.DirectRoomRepository, memberships repository.MembershipRepository) *MembershipGate {
	if rooms == nil || directRooms == nil || memberships == nil {
		panic("MembershipGate dependencies cannot be nil")
	}
	return &MembershipGate{rooms: rooms, directRooms: directRooms, memberships: memberships}
}

// Authorize returns the access decision for subjectID on roomID. A non-nil
// error means the store could not answer; callers must treat that as a
// failure, not a denial.
func (g *MembershipGate) Authorize(ctx context.Context, roomID, subjectID string, access Access) (Decision, error) {
	logCtx := logrus.WithFields(logrus.Fields{"room_id": roomID, "subject_id": subjectID})

	room, err := g.rooms.FindByID(ctx, roomID)
	if err != nil {
		if errors.Is(err, repository.ErrRoomNotFound) {
			logCtx.Debug("Gate: room does not exist")
			return DecisionDeniedNotMember, nil
		}
		return DecisionDeniedNotMember, err
	}

	switch room.Kind {
	case domain.RoomDirect:
		direct, err := g.directRooms.FindByRoomID(ctx, roomID)
		if err != nil {
			if errors.Is(err, repository.ErrRoomNotFound) {
				logCtx.Warn("Gate: direct room has no participant record")
				return DecisionDeniedNotMember, nil
			}
			return DecisionDeniedNotMember, err
		}
		if direct.HasParticipant(subjectID) {
			return DecisionAllowed, nil
		}
		return DecisionDeniedNotMember, nil

	case domain.RoomCommunity:
		membership, err := g.memberships.Find(ctx, roomID, subjectID)
		if err != nil {
			if errors.Is(err, repository.ErrMembershipNotFound) {
				return DecisionDeniedNotMember, nil
			}
			return DecisionDeniedNotMember, err
		}
		switch membership.Status {
		case domain.MembershipApproved:
			return DecisionAllowed, nil
		case domain.MembershipPending:
			return DecisionDeniedPending, nil
		}
		logCtx.Warnf("Gate: unknown membership status %q", membership.Status)
		return DecisionDeniedNotMember, nil
	}

	logCtx.Warnf("Gate: unknown room kind %q", room.Kind)
	return DecisionDeniedNotMember, nil
}

// DecisionError maps a denial to its service error. DecisionAllowed maps to
// nil.
func DecisionError(d Decision) error {
	switch d {
	case DecisionAllowed:
		return nil
	case DecisionDeniedPending:
		return ErrPendingApproval
	}
	return ErrNotMember
}
