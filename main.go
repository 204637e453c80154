// @title           CNK Ceneka Real Estate API
// @version         1.0
// @description     API REST para la gestión de propiedades inmobiliarias, catálogos de referencia, ubicaciones e imágenes.

// @host      localhost:3000
// @BasePath  /api

// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 Enter the token with the `Bearer: ` prefix
package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Global-Manu-Man/cnk-ceneka/config"
	"github.com/Global-Manu-Man/cnk-ceneka/models"
	"github.com/Global-Manu-Man/cnk-ceneka/routes"
	"github.com/Global-Manu-Man/cnk-ceneka/services/container"
)

func main() {
	if err := config.SetupLogger(); err != nil {
		fmt.Printf("failed to set up logging: %v\n", err)
		os.Exit(1)
	}

	// Environment variables may come from the host instead of a .env file
	if err := godotenv.Load(); err != nil {
		config.Warning("no .env file loaded: %v", err)
	} else {
		config.Info(".env file loaded")
	}

	cfg := config.GetConfig()

	db, err := initDB(cfg)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := autoMigrate(db); err != nil {
		log.Fatalf("auto migration failed: %v", err)
	}

	serviceContainer, err := container.NewServiceContainer(db, cfg)
	if err != nil {
		log.Fatalf("failed to initialize services: %v", err)
	}

	// Seed the internal service account so the token endpoint works on a
	// fresh database
	if err := serviceContainer.GetAuthService().EnsureServiceAccount("internal-backend", cfg.InternalAPIKey); err != nil {
		config.Warning("failed to seed service account: %v", err)
	}

	r := routes.SetupRouter(serviceContainer)

	port := cfg.ServerPort
	if port == "" {
		port = "3000"
	}

	config.Info("server listening on: http://localhost:%s", port)
	if err := r.Run(":" + port); err != nil {
		config.Error("server failed: %v", err)
		os.Exit(1)
	}
}

// initDB opens the MySQL connection and configures the pool
func initDB(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(cfg.GetDSN()), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to access connection pool: %w", err)
	}
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(time.Hour)

	config.Info("database connection established")
	return db, nil
}

// autoMigrate creates missing tables and columns without dropping anything
func autoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.PropertyType{},
		&models.SaleType{},
		&models.LegalStatus{},
		&models.State{},
		&models.Municipality{},
		&models.Colony{},
		&models.Property{},
		&models.PropertyFeature{},
		&models.PropertyImage{},
		&models.ServiceAccount{},
	)
}
