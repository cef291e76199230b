package app

import (
	"os"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Jamesakeluru/IHRIS/internal/attendance"
	"github.com/Jamesakeluru/IHRIS/internal/employee"
	"github.com/Jamesakeluru/IHRIS/internal/inventory"
	"github.com/Jamesakeluru/IHRIS/internal/leave"
	"github.com/Jamesakeluru/IHRIS/internal/middleware"
	"github.com/Jamesakeluru/IHRIS/internal/shared/connection"
	"github.com/Jamesakeluru/IHRIS/internal/shared/counter"
)

// BuildApp connects the infrastructure, migrates the schema and registers
// every module's routes on the router.
func BuildApp(router *gin.Engine) error {
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
		return err
	}

	if err := Migrate(gormDB); err != nil {
		return err
	}

	redisClient, err := connection.ConnectRedisWithRetry(os.Getenv("REDIS_ADDR"), 5)
	if err != nil {
		return err
	}

	router.Use(middleware.ContextLogger(zap.L()))
	router.Use(middleware.RateLimitByIP(50, 100))
	router.LoadHTMLGlob("web/templates/*.html")

	return registerModules(router, gormDB, redisClient)
}

// Migrate creates the four entity tables and the code counter table.
// Column defaults and uniqueness live in the schema, not application code.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&employee.Employee{},
		&attendance.Attendance{},
		&leave.LeaveRequest{},
		&inventory.Item{},
		&counter.Counter{},
	)
}
