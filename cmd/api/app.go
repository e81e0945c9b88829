package main

import (
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/renato-dev-nws/autoshop-api/internal/adapter/api/controller"
	"github.com/renato-dev-nws/autoshop-api/internal/adapter/repository"
	"github.com/renato-dev-nws/autoshop-api/internal/domain/photo"
	"github.com/renato-dev-nws/autoshop-api/internal/domain/scope"
	"github.com/renato-dev-nws/autoshop-api/internal/domain/store"
	"github.com/renato-dev-nws/autoshop-api/internal/domain/taxonomy"
	"github.com/renato-dev-nws/autoshop-api/internal/domain/user"
	"github.com/renato-dev-nws/autoshop-api/internal/domain/vehicle"
	"github.com/renato-dev-nws/autoshop-api/internal/fipe"
	"github.com/renato-dev-nws/autoshop-api/internal/infrastructure/database"
	"github.com/renato-dev-nws/autoshop-api/pkg/auth"
	"github.com/renato-dev-nws/autoshop-api/pkg/logger"
	"github.com/renato-dev-nws/autoshop-api/pkg/ratelimit"
	"github.com/renato-dev-nws/autoshop-api/pkg/storage"
)

// App representa a aplicação e suas dependências
type App struct {
	router *gin.Engine
	db     *database.PostgresDB
	redis  *redis.Client
	log    logger.Logger

	jwtService *auth.JWTService

	authController     *controller.AuthController
	storeController    *controller.StoreController
	userController     *controller.UserController
	categoryController *controller.CategoryController
	brandController    *controller.BrandController
	modelController    *controller.ModelController
	vehicleController  *controller.VehicleController
	photoController    *controller.PhotoController
	publicController   *controller.PublicController
	fipeController     *controller.FipeController
}

// NewApp cria uma nova instância do aplicativo
func NewApp() (*App, error) {
	log := logger.NewLogger()

	// Configurar banco de dados
	db, err := database.NewPostgresDB()
	if err != nil {
		return nil, err
	}

	// Configurar Redis
	redisClient := newRedisClient()

	// Configurar armazenamento local de fotos
	uploadDir := getEnv("UPLOAD_DIR", "uploads")
	fileStorage, err := storage.NewLocalStorage(uploadDir, "/uploads")
	if err != nil {
		return nil, err
	}

	// Configurar JWT
	jwtService, err := auth.NewJWTService()
	if err != nil {
		return nil, err
	}

	// Criar repositórios
	storeRepo := repository.NewPostgresStoreRepository(db)
	userRepo := repository.NewPostgresUserRepository(db)
	categoryRepo := repository.NewPostgresCategoryRepository(db)
	brandRepo := repository.NewPostgresBrandRepository(db)
	modelRepo := repository.NewPostgresModelRepository(db)
	photoRepo := repository.NewPostgresPhotoRepository(db)
	vehicleRepo := repository.NewPostgresVehicleRepository(db, photoRepo)

	// Resolvedor de escopo de acesso às lojas
	resolver := scope.NewResolver(storeRepo)

	// Criar serviços
	storeService := store.NewService(storeRepo, vehicleRepo, log)
	userService := user.NewService(userRepo, storeRepo)
	taxonomyService := taxonomy.NewService(categoryRepo, brandRepo, modelRepo, vehicleRepo)
	vehicleService := vehicle.NewService(vehicleRepo, taxonomyService, resolver, log)
	photoService := photo.NewService(photoRepo, vehicleRepo, resolver, fileStorage, log)
	fipeService := fipe.NewService(fipe.NewClient(), fipe.NewRedisCache(redisClient), log)

	// Criar controllers
	app := &App{
		db:         db,
		redis:      redisClient,
		log:        log,
		jwtService: jwtService,

		authController:     controller.NewAuthController(userService, jwtService, log),
		storeController:    controller.NewStoreController(storeService),
		userController:     controller.NewUserController(userService),
		categoryController: controller.NewCategoryController(taxonomyService),
		brandController:    controller.NewBrandController(taxonomyService),
		modelController:    controller.NewModelController(taxonomyService),
		vehicleController:  controller.NewVehicleController(vehicleService),
		photoController:    controller.NewPhotoController(photoService),
		publicController:   controller.NewPublicController(vehicleRepo, taxonomyService, storeService),
		fipeController:     controller.NewFipeController(fipeService),
	}

	// Configurar router
	router := gin.Default()
	router.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:   []string{"Content-Length"},
		MaxAge:          12 * time.Hour,
	}))

	// Fotos servidas estaticamente
	router.Static("/uploads", uploadDir)

	app.router = router
	return app, nil
}

// SetupRoutes configura as rotas da aplicação
func (a *App) SetupRoutes(basePath string) {
	api := a.router.Group(basePath)

	// Health check
	api.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"version": "1.0.0",
		})
	})

	// Swagger
	a.router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Rotas públicas com limite de requisições
	publicLimiter := ratelimit.New(100, time.Minute)
	publicRoutes := api.Group("/public")
	publicRoutes.Use(ratelimit.Middleware(publicLimiter))
	{
		publicRoutes.GET("/vehicles", a.publicController.SearchVehicles)
		publicRoutes.GET("/vehicles/:id", a.publicController.GetVehicle)
		publicRoutes.GET("/categories", a.publicController.ListCategories)
		publicRoutes.GET("/brands", a.publicController.ListBrands)
		publicRoutes.GET("/brands/:brandId/models", a.publicController.ListModels)
		publicRoutes.GET("/stores", a.publicController.ListStores)
	}

	// Proxy FIPE, também público
	fipeRoutes := api.Group("/fipe")
	fipeRoutes.Use(ratelimit.Middleware(publicLimiter))
	{
		fipeRoutes.GET("/:tipo/marcas", a.fipeController.Brands)
		fipeRoutes.GET("/:tipo/marcas/:marca/modelos", a.fipeController.Models)
		fipeRoutes.GET("/:tipo/marcas/:marca/modelos/:modelo/anos", a.fipeController.Years)
		fipeRoutes.GET("/:tipo/marcas/:marca/modelos/:modelo/anos/:ano", a.fipeController.Value)
	}

	// Login
	api.POST("/auth/login", a.authController.Login)

	// Rotas autenticadas
	authenticated := api.Group("")
	authenticated.Use(auth.JWTAuthMiddleware(a.jwtService))

	authenticated.GET("/auth/me", a.authController.Me)

	// Veículos: admins e gestores, restritos pelo escopo das lojas
	vehicleRoutes := authenticated.Group("/vehicles")
	{
		vehicleRoutes.GET("", a.vehicleController.List)
		vehicleRoutes.POST("", a.vehicleController.Create)
		vehicleRoutes.GET("/:id", a.vehicleController.GetByID)
		vehicleRoutes.PUT("/:id", a.vehicleController.Update)
		vehicleRoutes.PATCH("/:id/status", a.vehicleController.UpdateStatus)
		vehicleRoutes.DELETE("/:id", a.vehicleController.Delete)

		vehicleRoutes.GET("/:id/photos", a.photoController.List)
		vehicleRoutes.POST("/:id/photos", a.photoController.Upload)
		vehicleRoutes.PATCH("/:id/photos/:photoId/cover", a.photoController.SetCover)
		vehicleRoutes.PATCH("/:id/photos/:photoId/order", a.photoController.UpdateOrder)
		vehicleRoutes.DELETE("/:id/photos/:photoId", a.photoController.Delete)
	}

	// Rotas restritas a administradores
	adminRoutes := authenticated.Group("")
	adminRoutes.Use(auth.RoleAuthMiddleware("admin"))

	storeRoutes := adminRoutes.Group("/stores")
	{
		storeRoutes.GET("", a.storeController.List)
		storeRoutes.POST("", a.storeController.Create)
		storeRoutes.GET("/:id", a.storeController.GetByID)
		storeRoutes.PUT("/:id", a.storeController.Update)
		storeRoutes.DELETE("/:id", a.storeController.Delete)
	}

	userRoutes := adminRoutes.Group("/users")
	{
		userRoutes.GET("", a.userController.List)
		userRoutes.POST("", a.userController.Create)
		userRoutes.GET("/:id", a.userController.GetByID)
		userRoutes.PUT("/:id", a.userController.Update)
		userRoutes.DELETE("/:id", a.userController.Delete)
	}

	categoryRoutes := adminRoutes.Group("/categories")
	{
		categoryRoutes.GET("", a.categoryController.List)
		categoryRoutes.POST("", a.categoryController.Create)
		categoryRoutes.GET("/:id", a.categoryController.GetByID)
		categoryRoutes.PUT("/:id", a.categoryController.Update)
		categoryRoutes.DELETE("/:id", a.categoryController.Delete)
	}

	brandRoutes := adminRoutes.Group("/brands")
	{
		brandRoutes.GET("", a.brandController.List)
		brandRoutes.POST("", a.brandController.Create)
		brandRoutes.GET("/:id", a.brandController.GetByID)
		brandRoutes.PUT("/:id", a.brandController.Update)
		brandRoutes.DELETE("/:id", a.brandController.Delete)
	}

	modelRoutes := adminRoutes.Group("/models")
	{
		modelRoutes.GET("", a.modelController.List)
		modelRoutes.POST("", a.modelController.Create)
		modelRoutes.GET("/:id", a.modelController.GetByID)
		modelRoutes.PUT("/:id", a.modelController.Update)
		modelRoutes.DELETE("/:id", a.modelController.Delete)
	}
}

// Start inicia o servidor HTTP
func (a *App) Start() error {
	port := getEnv("PORT", "8080")
	a.log.Info("servidor iniciado", "port", port)
	return a.router.Run(":" + port)
}

// Close libera os recursos da aplicação
func (a *App) Close() {
	if a.db != nil {
		a.db.Close()
	}
	if a.redis != nil {
		a.redis.Close()
	}
}

func newRedisClient() *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       0,
	})
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
