package storage

import (
	"sync"
	"time"

	"threatmap/internal/config"
	"threatmap/internal/util/logger"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gorm_logger "gorm.io/gorm/logger"
)

var (
	once sync.Once
	db   *gorm.DB
)

func GetDb() *gorm.DB {
	once.Do(func() {
		log := logger.GetLogger()
		env := config.GetEnv()

		gormConfig := &gorm.Config{
			Logger: gorm_logger.Default.LogMode(gorm_logger.Silent),
		}

		connection, err := gorm.Open(postgres.Open(env.DatabaseDsn), gormConfig)
		if err != nil {
			log.Error("Failed to connect to database", "error", err)
			panic(err)
		}

		sqlDb, err := connection.DB()
		if err != nil {
			log.Error("Failed to get underlying sql.DB", "error", err)
			panic(err)
		}

		sqlDb.SetMaxOpenConns(25)
		sqlDb.SetMaxIdleConns(10)
		sqlDb.SetConnMaxLifetime(30 * time.Minute)

		db = connection
	})

	return db
}
