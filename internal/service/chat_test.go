package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/adithya2152/devconnect/internal/domain"
	"github.com/adithya2152/devconnect/internal/repository"
	"github.com/adithya2152/devconnect/internal/repository/mocks"
	"github.com/adithya2152/devconnect/internal/service"
)

func newChatService() (*service.ChatService, *mocks.RoomRepository, *mocks.DirectRoomRepository, *mocks.MembershipRepository, *mocks.MessageRepository, *mocks.ProfileRepository) {
	roomRepo := new(mocks.RoomRepository)
	directRepo := new(mocks.DirectRoomRepository)
	membershipRepo := new(mocks.MembershipRepository)
	messageRepo := new(mocks.MessageRepository)
	profileRepo := new(mocks.ProfileRepository)
	svc := service.NewChatService(roomRepo, directRepo, membershipRepo, messageRepo, profileRepo)
	return svc, roomRepo, directRepo, membershipRepo, messageRepo, profileRepo
}

func TestChatService_SaveMessage_Success(t *testing.T) {
	svc, _, _, _, messageRepo, _ := newChatService()
	ctx := context.Background()

	messageRepo.On("Save", ctx, mock.MatchedBy(func(m *domain.Message) bool {
		return m.RoomID == "room-1" && m.SenderID == "alice" && m.Content == "hello"
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*domain.Message).ID = "msg-1"
	}).Return(nil).Once()

	saved, err := svc.SaveMessage(ctx, "room-1", "alice", "hello")

	require.NoError(t, err)
	assert.Equal(t, "msg-1", saved.ID)
	messageRepo.AssertExpectations(t)
}

func TestChatService_SaveMessage_EmptyContent(t *testing.T) {
	svc, _, _, _, messageRepo, _ := newChatService()

	_, err := svc.SaveMessage(context.Background(), "room-1", "alice", "   ")

	require.Error(t, err)
	assert.True(t, errors.Is(err, service.ErrInvalidInput))
	messageRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestChatService_SaveMessage_StoreFailure(t *testing.T) {
	svc, _, _, _, messageRepo, _ := newChatService()
	ctx := context.Background()

	messageRepo.On("Save", ctx, mock.AnythingOfType("*domain.Message")).
		Return(errors.New("disk full")).Once()

	_, err := svc.SaveMessage(ctx, "room-1", "alice", "hello")

	require.Error(t, err)
	assert.True(t, errors.Is(err, service.ErrInternalServer))
}

func TestChatService_CreateDirectRoom_ReturnsExisting(t *testing.T) {
	svc, roomRepo, directRepo, _, _, _ := newChatService()
	ctx := context.Background()
	existing := &domain.DirectRoom{RoomID: "room-1", User1ID: "alice", User2ID: "bob"}

	directRepo.On("FindByParticipants", ctx, "alice", "bob").Return(existing, nil).Once()

	room, err := svc.CreateDirectRoom(ctx, "alice", "bob")

	require.NoError(t, err)
	assert.Equal(t, existing, room)
	roomRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	directRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestChatService_CreateDirectRoom_CreatesWhenAbsent(t *testing.T) {
	svc, roomRepo, directRepo, membershipRepo, _, _ := newChatService()
	ctx := context.Background()

	directRepo.On("FindByParticipants", ctx, "alice", "bob").
		Return(nil, repository.ErrRoomNotFound).Once()
	roomRepo.On("Save", ctx, mock.MatchedBy(func(r *domain.Room) bool {
		return r.Kind == domain.RoomDirect && r.CreatedBy == "alice"
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*domain.Room).ID = "room-9"
	}).Return(nil).Once()
	directRepo.On("Save", ctx, mock.MatchedBy(func(d *domain.DirectRoom) bool {
		return d.RoomID == "room-9" && d.HasParticipant("alice") && d.HasParticipant("bob")
	})).Return(nil).Once()
	membershipRepo.On("Save", ctx, mock.MatchedBy(func(m *domain.Membership) bool {
		return m.RoomID == "room-9" && m.Status == domain.MembershipApproved
	})).Return(nil).Twice()

	room, err := svc.CreateDirectRoom(ctx, "alice", "bob")

	require.NoError(t, err)
	assert.Equal(t, "room-9", room.RoomID)
	roomRepo.AssertExpectations(t)
	directRepo.AssertExpectations(t)
	membershipRepo.AssertExpectations(t)
}

func TestChatService_CreateDirectRoom_SelfChat(t *testing.T) {
	svc, _, _, _, _, _ := newChatService()

	_, err := svc.CreateDirectRoom(context.Background(), "alice", "alice")

	require.Error(t, err)
	assert.True(t, errors.Is(err, service.ErrInvalidInput))
}

func TestChatService_Conversations_SkipsUnloadablePeer(t *testing.T) {
	svc, roomRepo, directRepo, _, messageRepo, profileRepo := newChatService()
	ctx := context.Background()

	directRepo.On("FindByUser", ctx, "alice").Return([]domain.DirectRoom{
		{RoomID: "room-1", User1ID: "alice", User2ID: "bob"},
		{RoomID: "room-2", User1ID: "alice", User2ID: "ghost"},
	}, nil).Once()

	profileRepo.On("FindByID", ctx, "bob").
		Return(&domain.Profile{ID: "bob", Username: "bob", FullName: "Bob B"}, nil).Once()
	profileRepo.On("FindByID", ctx, "ghost").
		Return(nil, repository.ErrProfileNotFound).Once()

	roomRepo.On("FindByID", ctx, "room-1").
		Return(&domain.Room{ID: "room-1", Kind: domain.RoomDirect, Name: "Private chat"}, nil).Once()
	messageRepo.On("FindLast", ctx, "room-1").
		Return(&domain.Message{ID: "msg-1", RoomID: "room-1", SenderID: "bob", Content: "hey"}, nil).Once()

	conversations, err := svc.Conversations(ctx, "alice")

	require.NoError(t, err)
	require.Len(t, conversations, 1)
	assert.Equal(t, "room-1", conversations[0].RoomID)
	assert.Equal(t, "bob", conversations[0].OtherUser.ID)
	require.NotNil(t, conversations[0].LastMessage)
	assert.Equal(t, "hey", conversations[0].LastMessage.Content)
}

func TestChatService_History_StoreFailure(t *testing.T) {
	svc, _, _, _, messageRepo, _ := newChatService()
	ctx := context.Background()

	messageRepo.On("FindByRoom", ctx, "room-1", 50, 0).
		Return(nil, errors.New("timeout")).Once()

	_, err := svc.History(ctx, "room-1", 50, 0)

	require.Error(t, err)
	assert.True(t, errors.Is(err, service.ErrInternalServer))
}
