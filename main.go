package main

import (
	"log"

	_ "food_truck_finder/docs"
	"food_truck_finder/internal/auth"
	"food_truck_finder/internal/config"
	"food_truck_finder/internal/geocode"
	"food_truck_finder/internal/handlers"
	"food_truck_finder/internal/models"
	"food_truck_finder/internal/schedule"
	"food_truck_finder/internal/storage"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @Title	Food Truck Finder API
// @securityDefinitions.apikey	BearerAuth
// @in							header
// @name						Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Ошибка загрузки конфигурации: ", err.Error())
	}

	db, err := storage.Connect(cfg.DB)
	if err != nil {
		log.Fatal("Ошибка подключения к базе данных... ", err.Error())
	}

	if err := db.AutoMigrate(&models.Vendor{}, &models.Schedule{}); err != nil {
		log.Fatal("Ошибка при миграции... ", err.Error())
	}

	redisClient := storage.InitRedis(cfg.RedisAddr, cfg.RedisPassword)
	if redisClient == nil {
		log.Println("REDIS_ADDR не задан, кэширование списков отключено")
	}

	geocoder, err := geocode.NewGoogleGeocoder(cfg.GeocodingKey)
	if err != nil {
		log.Fatal("Ошибка создания геокодера... ", err.Error())
	}

	store := storage.NewScheduleStore(db)
	scheduleService := schedule.NewService(store, geocoder)

	scheduleHandler := handlers.NewScheduleHandler(scheduleService, redisClient)
	authHandler := handlers.NewAuthHandler(storage.NewVendorStore(db), cfg.AccessSecret, cfg.RefreshSecret)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", authHandler.Register)
		authGroup.POST("/login", authHandler.Login)
		authGroup.POST("/refresh", authHandler.RefreshToken)
	}

	api := r.Group("/api/v1")
	{
		api.GET("/schedules", scheduleHandler.GetSchedules)
		api.POST("/schedules", auth.OptionalMiddleware(cfg.AccessSecret), scheduleHandler.CreateSchedule)
		api.GET("/vendors/me/schedules", auth.Middleware(cfg.AccessSecret), scheduleHandler.GetMySchedules)
	}

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("Ошибка запуска сервера...", err.Error())
	}
}
