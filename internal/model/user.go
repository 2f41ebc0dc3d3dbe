package model

import (
	"regexp"
	"time"

	"github.com/google/uuid"
)

// ConnectionType is how a user registered.
type ConnectionType string

const (
	ConnectionEmail     ConnectionType = "email"
	ConnectionWallet    ConnectionType = "wallet"
	ConnectionAnonymous ConnectionType = "anonymous"
)

var walletAddressRe = regexp.MustCompile(`^0x[a-fA-F0-9]{40}$`)

// IsWalletAddress reports whether s looks like an EVM address. The checksum is not verified.
func IsWalletAddress(s string) bool {
	return walletAddressRe.MatchString(s)
}

type User struct {
	ID             int64          `json:"id"`
	Email          *string        `json:"email"`
	WalletAddress  *string        `json:"walletAddress"`
	AnonymousID    *uuid.UUID     `json:"anonymousId"`
	ConnectionType ConnectionType `json:"connectionType"`
	IdentityVector Vector         `json:"identityVector"`
	PreferredMood  Mood           `json:"preferredMood"`
	LastLoginAt    time.Time      `json:"lastLoginAt"`
	CreatedAt      time.Time      `json:"createdAt"`
	UpdatedAt      time.Time      `json:"updatedAt"`
}
