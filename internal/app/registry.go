package app

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/Jamesakeluru/IHRIS/internal/attendance"
	"github.com/Jamesakeluru/IHRIS/internal/dashboard"
	"github.com/Jamesakeluru/IHRIS/internal/employee"
	"github.com/Jamesakeluru/IHRIS/internal/inventory"
	"github.com/Jamesakeluru/IHRIS/internal/leave"
	"github.com/Jamesakeluru/IHRIS/internal/shared/counter"
	"github.com/Jamesakeluru/IHRIS/internal/shared/statscache"
)

func registerModules(
	router *gin.Engine,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	db, err := gormDB.DB()
	if err != nil {
		return err
	}

	// --- Repositories ---
	counterRepo := counter.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)
	attendanceRepo := attendance.NewRepository(gormDB)
	leaveRepo := leave.NewRepository(gormDB)
	inventoryRepo := inventory.NewRepository(gormDB)

	// --- Services ---
	statsInvalidator := statscache.NewInvalidator(rdb)
	employeeService := employee.NewService(db, employeeRepo, counterRepo, statsInvalidator)
	attendanceService := attendance.NewService(db, attendanceRepo)
	leaveService := leave.NewService(db, leaveRepo, statsInvalidator)
	inventoryService := inventory.NewService(db, inventoryRepo)
	dashboardService := dashboard.NewService(employeeRepo, leaveRepo, rdb)

	// --- Handlers ---
	employeeHandler := employee.NewHandler(employeeService, attendanceService, inventoryService)
	attendanceHandler := attendance.NewHandler(attendanceService)
	leaveHandler := leave.NewHandler(leaveService)
	inventoryHandler := inventory.NewHandler(inventoryService)
	dashboardHandler := dashboard.NewHandler(dashboardService)

	// --- Routes Registration ---
	dashboard.RegisterRoutes(router, dashboardHandler)
	employee.RegisterRoutes(router, employeeHandler)
	attendance.RegisterRoutes(router, attendanceHandler)
	leave.RegisterRoutes(router, leaveHandler)
	inventory.RegisterRoutes(router, inventoryHandler)

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	return nil
}
