package main

import (
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/Jamesakeluru/IHRIS/internal/app"
	"github.com/Jamesakeluru/IHRIS/internal/inventory"
	"github.com/Jamesakeluru/IHRIS/internal/shared/connection"
)

// Seeds the inventory with the standard issue kit: two sets of uniform,
// radio and boots.
var sampleItems = []inventory.Item{
	{ItemName: "Security Shirt", ItemType: inventory.TypeUniform, SerialNumber: "SHIRT001", Condition: inventory.ConditionNew},
	{ItemName: "Security Trousers", ItemType: inventory.TypeUniform, SerialNumber: "TROUS001", Condition: inventory.ConditionNew},
	{ItemName: "Radio Set", ItemType: inventory.TypeRadio, SerialNumber: "RADIO001", Condition: inventory.ConditionNew},
	{ItemName: "Security Boots", ItemType: inventory.TypeBoots, SerialNumber: "BOOTS001", Condition: inventory.ConditionNew},
	{ItemName: "Security Shirt", ItemType: inventory.TypeUniform, SerialNumber: "SHIRT002", Condition: inventory.ConditionNew},
	{ItemName: "Security Trousers", ItemType: inventory.TypeUniform, SerialNumber: "TROUS002", Condition: inventory.ConditionNew},
	{ItemName: "Radio Set", ItemType: inventory.TypeRadio, SerialNumber: "RADIO002", Condition: inventory.ConditionNew},
	{ItemName: "Security Boots", ItemType: inventory.TypeBoots, SerialNumber: "BOOTS002", Condition: inventory.ConditionNew},
}

func main() {
	_ = godotenv.Load()
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	gormDB, err := connection.ConnectGORMWithRetry(
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_SSLMODE"),
		5,
	)
	if err != nil {
		logger.Fatal("connect database failed", zap.Error(err))
	}

	if err := app.Migrate(gormDB); err != nil {
		logger.Fatal("migrate failed", zap.Error(err))
	}

	for _, item := range sampleItems {
		item := item
		if err := gormDB.Create(&item).Error; err != nil {
			logger.Warn("insert sample item failed",
				zap.String("serial_number", item.SerialNumber),
				zap.Error(err),
			)
			continue
		}
		logger.Info("sample item inserted", zap.String("serial_number", item.SerialNumber))
	}
}
