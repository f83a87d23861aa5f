package model

import "time"

// Followship 关注关系（follower 关注 following）
type Followship struct {
    ID          string `gorm:"primaryKey;type:varchar(36)"`
    FollowerID  string `gorm:"type:varchar(36);index:idx_followship_follower;index:idx_followship_pair,unique;not null"`
    FollowingID string `gorm:"type:varchar(36);not null;index:idx_followship_following;index:idx_followship_pair,unique"`
    // 复合唯一键，避免重复关注
    // idx_followship_pair = (follower_id, following_id)
    CreatedAt time.Time
    UpdatedAt time.Time
}

func (Followship) TableName() string { return "followships" }
