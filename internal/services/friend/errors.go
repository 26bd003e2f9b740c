package friend

// FriendError is a custom error type for friend-related errors
type FriendError string

// Error implements the error interface
func (e FriendError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrUserNotFound       FriendError = "user not found"
	ErrCannotFriendSelf   FriendError = "cannot send a friend request to yourself"
	ErrAlreadyFriends     FriendError = "already friends"
	ErrRequestAlreadySent FriendError = "friend request already sent"
	ErrRequestNotFound    FriendError = "friend request not found"
	ErrNotFriends         FriendError = "not friends"
	ErrInvalidInput       FriendError = "invalid input"
	ErrNilConfig          FriendError = "config cannot be nil"
	ErrNilFriendRepo      FriendError = "friend repository cannot be nil"
	ErrNilUserRepo        FriendError = "user repository cannot be nil"
	ErrNilSessionRepo     FriendError = "session repository cannot be nil"
	ErrNilClock           FriendError = "clock cannot be nil"
)
