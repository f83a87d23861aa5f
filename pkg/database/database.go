package database

import (
    "fmt"

    "gorm.io/driver/postgres"
    "gorm.io/driver/sqlite"
    "gorm.io/gorm"
    gormlogger "gorm.io/gorm/logger"

    "github.com/d60-Lab/simple-twitter/config"
    "github.com/d60-Lab/simple-twitter/internal/model"
)

// InitDB 按配置打开数据库并迁移 schema。
// TranslateError 打开后，唯一键冲突以 gorm.ErrDuplicatedKey 暴露，
// 上层据此识别重复关注 / 重复喜欢。
func InitDB(cfg *config.Config) (*gorm.DB, error) {
    var dialector gorm.Dialector
    switch cfg.Database.Driver {
    case "postgres":
        dialector = postgres.Open(cfg.Database.DSN)
    case "sqlite":
        dialector = sqlite.Open(cfg.Database.DSN)
    default:
        return nil, fmt.Errorf("unsupported database driver: %s", cfg.Database.Driver)
    }

    db, err := gorm.Open(dialector, &gorm.Config{
        TranslateError: true,
        Logger:         gormlogger.Default.LogMode(gormlogger.Warn),
    })
    if err != nil {
        return nil, err
    }
    if err := Migrate(db); err != nil {
        return nil, err
    }
    return db, nil
}

// Migrate 建表与索引（含复合唯一键）
func Migrate(db *gorm.DB) error {
    return db.AutoMigrate(
        &model.User{},
        &model.Tweet{},
        &model.Reply{},
        &model.Like{},
        &model.Followship{},
    )
}
