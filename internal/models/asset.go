package models

import (
	"time"
)

// Asset represents an in-game collectible with exclusive ownership.
// Assets are scoped by game ID purely as a namespace and live
// independently of the game's lifecycle state.
type Asset struct {
	// ID is a unique identifier for this asset record
	ID string

	// GameID is the ID of the game the asset is scoped to
	GameID uint64

	// AssetID is the asset's identifier within the game
	AssetID uint64

	// Owner is the principal that currently owns the asset
	Owner string

	// TokenID is an opaque external token reference
	TokenID uint64

	// MetadataURL points at the asset's metadata
	MetadataURL string

	// MintedAt is when the asset was minted
	MintedAt time.Time
}
