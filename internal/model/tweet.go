package model

import "time"

// Tweet 推文主体（创建后不可变）
type Tweet struct {
    ID          string    `gorm:"primaryKey;type:varchar(36)"`
    AuthorID    string    `gorm:"type:varchar(36);index:idx_tweet_author;not null"`
    Description string    `gorm:"type:varchar(140);not null"`
    CreatedAt   time.Time `gorm:"index"`
    UpdatedAt   time.Time
}

func (Tweet) TableName() string { return "tweets" }
