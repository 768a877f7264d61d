package domain

import "time"

// Follow is one edge of the follow graph. The pair is unique; following
// someone twice is a conflict, not a second row.
type Follow struct {
	FollowerID  string    `gorm:"type:char(36);primaryKey" json:"follower_id"`
	FollowingID string    `gorm:"type:char(36);primaryKey" json:"following_id"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
}
