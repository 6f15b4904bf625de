package engine

// Error is a custom error type for engine-related errors
type Error string

// Error implements the error interface
func (e Error) Error() string {
	return string(e)
}

// Failure reasons returned by engine operations. Every precondition
// violation maps to exactly one of these, so callers can assert on why
// an operation was rejected.
const (
	ErrGameNotFound        Error = "game not found"
	ErrUnauthorized        Error = "caller is not authorized"
	ErrInvalidState        Error = "operation not valid in current game state"
	ErrGameFull            Error = "game is at maximum capacity"
	ErrAlreadyJoined       Error = "player already joined this game"
	ErrInsufficientPlayers Error = "game needs at least 2 players"
	ErrCommitMismatch      Error = "revealed seed does not match commit hash"
	ErrNotResolved         Error = "game has not been resolved"
	ErrNotParticipant      Error = "caller is not a participant in this game"
	ErrNotWinner           Error = "caller is not the winner"
	ErrNoWinner            Error = "game resolved without a winner"
	ErrAlreadyClaimed      Error = "prize already claimed"
	ErrDuplicateAssetID    Error = "asset ID already exists for this game"
	ErrAssetNotFound       Error = "asset not found"
	ErrNotAssetOwner       Error = "caller is not the asset owner"
	ErrArithmeticOverflow  Error = "prize pool overflow"
)

// Argument validation errors
const (
	ErrNilInput           Error = "input cannot be nil"
	ErrEmptyCaller        Error = "caller identity cannot be empty"
	ErrEmptyRecipient     Error = "recipient identity cannot be empty"
	ErrInvalidMaxPlayers  Error = "max players must be at least 2"
	ErrInvalidCommitHash  Error = "commit hash must be exactly 32 bytes"
	ErrGameTypeTooLong    Error = "game type exceeds maximum length"
	ErrMetadataURLTooLong Error = "metadata URL exceeds maximum length"
)

// Constructor errors
const (
	ErrNilConfig          Error = "config cannot be nil"
	ErrNilGameRepo        Error = "game repository cannot be nil"
	ErrNilParticipantRepo Error = "participant repository cannot be nil"
	ErrNilResultRepo      Error = "result repository cannot be nil"
	ErrNilAssetRepo       Error = "asset repository cannot be nil"
	ErrNilHasher          Error = "hasher cannot be nil"
	ErrNilClock           Error = "clock cannot be nil"
	ErrNilUUIDGenerator   Error = "UUID generator cannot be nil"
)
