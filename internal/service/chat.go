package service

import (
	"context"
	"errors"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/adithya2152/devconnect/internal/domain"
	"github.com/adithya2152/devconnect/internal/repository"
)

// Conversation is one entry in a user's direct-conversation list: the room,
// the peer, and the latest message if any.
type Conversation struct {
	RoomID      string           `json:"room_id"`
	RoomMeta    ConversationMeta `json:"room_meta"`
	OtherUser   ConversationPeer `json:"other_user"`
	LastMessage *domain.Message  `json:"last_message,omitempty"`
}

type ConversationMeta struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Description string `json:"description,omitempty"`
	CreatedAt   string `json:"created_at"`
}

type ConversationPeer struct {
	ID        string `json:"id"`
	FullName  string `json:"full_name"`
	Username  string `json:"username"`
	AvatarURL string `json:"avatar_url,omitempty"`
}

// ChatService covers direct rooms, conversation listings and message
// persistence. Its SaveMessage method doubles as the message store used by
// the hub.
type ChatService struct {
	rooms       repository.RoomRepository
	directRooms repository.DirectRoomRepository
	memberships repository.MembershipRepository
	messages    repository.MessageRepository
	profiles    repository.ProfileRepository
}

func NewChatService(
	rooms repository.RoomRepository,
	directRooms repository.DirectRoomRepository,
	memberships repository.MembershipRepository,
	messages repository.MessageRepository,
	profiles repository.ProfileRepository,
) *ChatService {
	if rooms == nil || directRooms == nil || memberships == nil || messages == nil || profiles == nil {
		panic("ChatService dependencies cannot be nil")
	}
	return &ChatService{
		rooms:       rooms,
		directRooms: directRooms,
		memberships: memberships,
		messages:    messages,
		profiles:    profiles,
	}
}

// Conversations lists every direct room the user participates in, enriched
// with peer profile data and the last message. Rooms whose peer profile
// cannot be loaded are skipped rather than failing the whole listing.
func (s *ChatService) Conversations(ctx context.Context, userID string) ([]Conversation, error) {
	logCtx := logrus.WithField("user_id", userID)

	directRooms, err := s.directRooms.FindByUser(ctx, userID)
	if err != nil {
		logCtx.WithError(err).Error("Failed to list direct rooms")
		return nil, ErrInternalServer
	}

	conversations := make([]Conversation, 0, len(directRooms))
	for _, dr := range directRooms {
		peerID := dr.OtherParticipant(userID)
		peer, err := s.profiles.FindByID(ctx, peerID)
		if err != nil {
			logCtx.WithError(err).WithField("peer_id", peerID).Warn("Skipping conversation with unloadable peer")
			continue
		}

		conv := Conversation{
			RoomID: dr.RoomID,
			OtherUser: ConversationPeer{
				ID:        peer.ID,
				FullName:  peer.FullName,
				Username:  peer.Username,
				AvatarURL: peer.AvatarURL,
			},
		}

		if room, err := s.rooms.FindByID(ctx, dr.RoomID); err == nil {
			conv.RoomMeta = ConversationMeta{
				Name:        room.Name,
				Type:        string(room.Kind),
				Description: room.Description,
				CreatedAt:   room.CreatedAt.Format("2006-01-02 15:04:05"),
			}
		}
		if last, err := s.messages.FindLast(ctx, dr.RoomID); err == nil {
			conv.LastMessage = last
		}

		conversations = append(conversations, conv)
	}
	return conversations, nil
}

// CreateDirectRoom returns the direct room between the two users, creating
// it (with both participants implicitly approved) when none exists.
func (s *ChatService) CreateDirectRoom(ctx context.Context, userID, otherUserID string) (*domain.DirectRoom, error) {
	logCtx := logrus.WithFields(logrus.Fields{"user_id": userID, "other_user_id": otherUserID})
	if otherUserID == "" || otherUserID == userID {
		return nil, ErrInvalidInput
	}

	existing, err := s.directRooms.FindByParticipants(ctx, userID, otherUserID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, repository.ErrRoomNotFound) {
		logCtx.WithError(err).Error("Failed to look up existing direct room")
		return nil, ErrInternalServer
	}

	room := &domain.Room{
		Kind:      domain.RoomDirect,
		Name:      "Private chat",
		CreatedBy: userID,
	}
	if err := s.rooms.Save(ctx, room); err != nil {
		logCtx.WithError(err).Error("Failed to create direct room")
		return nil, ErrInternalServer
	}

	direct := &domain.DirectRoom{RoomID: room.ID, User1ID: userID, User2ID: otherUserID}
	if err := s.directRooms.Save(ctx, direct); err != nil {
		logCtx.WithError(err).Error("Failed to record direct room participants")
		return nil, ErrInternalServer
	}

	// Direct participants are implicitly approved; the rows exist so the
	// member listing works uniformly across room kinds.
	for _, participant := range []string{userID, otherUserID} {
		m := &domain.Membership{
			RoomID: room.ID,
			UserID: participant,
			Role:   domain.RoleMember,
			Status: domain.MembershipApproved,
		}
		if err := s.memberships.Save(ctx, m); err != nil && !errors.Is(err, repository.ErrDuplicateEntry) {
			logCtx.WithError(err).Warn("Failed to record direct room membership")
		}
	}

	logCtx.WithField("room_id", room.ID).Info("Direct room created")
	return direct, nil
}

// History returns a room's messages in non-decreasing creation-time order.
func (s *ChatService) History(ctx context.Context, roomID string, limit, offset int) ([]domain.Message, error) {
	messages, err := s.messages.FindByRoom(ctx, roomID, limit, offset)
	if err != nil {
		logrus.WithError(err).WithField("room_id", roomID).Error("Failed to fetch message history")
		return nil, ErrInternalServer
	}
	return messages, nil
}

// SaveMessage persists one message and returns the durable record with its
// store-assigned ID and timestamp.
func (s *ChatService) SaveMessage(ctx context.Context, roomID, senderID, content string) (*domain.Message, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrInvalidInput
	}
	message := &domain.Message{RoomID: roomID, SenderID: senderID, Content: content}
	if err := s.messages.Save(ctx, message); err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"room_id":   roomID,
			"sender_id": senderID,
		}).Error("Failed to persist message")
		return nil, ErrInternalServer
	}
	return message, nil
}
