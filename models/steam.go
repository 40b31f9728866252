package models

// AchievementRecord is a single achievement row as returned by the Steam
// GetPlayerAchievements endpoint. Additional upstream fields are ignored.
type AchievementRecord struct {
	APIName    string `json:"apiname"`
	Achieved   int    `json:"achieved"`
	UnlockTime int64  `json:"unlocktime,omitempty"`
}
