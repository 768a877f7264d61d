package service

import "errors"

var (
	// Credential verification.
	ErrUnauthenticated = errors.New("missing or malformed credential")
	ErrTokenExpired    = errors.New("token expired")
	ErrInvalidToken    = errors.New("invalid token")

	// Authorization.
	ErrNotMember       = errors.New("not a member of this room")
	ErrPendingApproval = errors.New("membership pending approval")
	ErrNotAdmin        = errors.New("admin privileges required")

	// Resources.
	ErrProfileNotFound    = errors.New("user not found")
	ErrRoomNotFound       = errors.New("room not found")
	ErrCommunityNotFound  = errors.New("community not found")
	ErrMembershipNotFound = errors.New("membership not found")

	// Follow graph.
	ErrSelfFollow       = errors.New("cannot follow yourself")
	ErrAlreadyFollowing = errors.New("already following")

	// Communities.
	ErrAlreadyMember = errors.New("already a member or pending")

	// OTP.
	ErrOTPNotFound = errors.New("no pending code for this email")
	ErrInvalidOTP  = errors.New("invalid code")

	// Generic.
	ErrInvalidInput   = errors.New("invalid input")
	ErrInternalServer = errors.New("internal server error")
)
