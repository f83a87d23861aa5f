package model

import "time"

// Reply 推文回复
type Reply struct {
    ID        string    `gorm:"primaryKey;type:varchar(36)"`
    TweetID   string    `gorm:"type:varchar(36);index:idx_reply_tweet;not null"`
    AuthorID  string    `gorm:"type:varchar(36);index:idx_reply_author;not null"`
    Comment   string    `gorm:"type:text;not null"`
    CreatedAt time.Time
    UpdatedAt time.Time
}

func (Reply) TableName() string { return "replies" }
