package domain

import "strings"

// Player is the identity record handed to the host login plugin when a user
// is found on the remote CMS. The empty Hash marks the account as externally
// managed: the plugin must not attempt local password verification.
type Player struct {
	// Nickname is the username exactly as known to the CMS.
	Nickname string `json:"nickname"`
	// LowercaseNickname is the case-normalized lookup key for Nickname.
	LowercaseNickname string `json:"lowercaseNickname"`
	// Hash is the local credential hash. Always empty for CMS-backed
	// accounts.
	Hash string `json:"hash"`
	// PremiumUUID is filled in by the host when the player connects; the
	// gateway leaves it unset.
	PremiumUUID string `json:"premiumUuid"`
}

// NewPlayer builds a Player for the given nickname with the lowercase lookup
// key derived and the credential hash left empty.
func NewPlayer(nickname string) Player {
	return Player{
		Nickname:          nickname,
		LowercaseNickname: strings.ToLower(nickname),
	}
}
