// Wipes all articles and users. Local development only.
package main

import (
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/minwoopark/board-api/config"
	"github.com/minwoopark/board-api/database"
	"github.com/minwoopark/board-api/models"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}
	if cfg.AppEnv == "production" {
		logrus.Fatal("Refusing to run cleanup against a production environment")
	}

	db, err := database.Open(cfg.DSN(), false)
	if err != nil {
		logrus.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close(db)

	session := db.Session(&gorm.Session{AllowGlobalUpdate: true})
	if err := session.Delete(&models.Article{}).Error; err != nil {
		logrus.Fatalf("Failed to delete articles: %v", err)
	}
	if err := session.Delete(&models.User{}).Error; err != nil {
		logrus.Fatalf("Failed to delete users: %v", err)
	}
	logrus.Info("Cleanup complete")
}
