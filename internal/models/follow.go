package models

import "time"

// Follow is a directed edge recording that FollowerID follows FollowingID.
// The composite unique index allows at most one edge per ordered pair and is
// the only thing that stops two concurrent follows from duplicating it.
type Follow struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	FollowerID  uint      `json:"follower_id" gorm:"index;uniqueIndex:idx_follower_following"`
	FollowingID uint      `json:"following_id" gorm:"index;uniqueIndex:idx_follower_following"`
	CreatedAt   time.Time `json:"created_at"`
}
