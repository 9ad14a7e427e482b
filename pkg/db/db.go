package db

import (
	"log"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// Open dials MySQL with a few retries so the API container can start
// before the database finishes booting.
func Open(dsn string) *gorm.DB {
	var gdb *gorm.DB
	var err error
	for i := 0; i < 10; i++ {
		gdb, err = gorm.Open(mysql.Open(dsn), &gorm.Config{})
		if err == nil {
			sqlDB, _ := gdb.DB()
			if pingErr := sqlDB.Ping(); pingErr == nil {
				log.Println("[db] connected to MySQL")
				return gdb
			}
		}
		log.Println("[db] retrying connection...")
		time.Sleep(3 * time.Second)
	}
	log.Fatalf("[db] connection failed: %v", err)
	return nil
}
