package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/haircareai/follicle-api/internal/config"
	"github.com/haircareai/follicle-api/internal/handlers"
	"github.com/haircareai/follicle-api/internal/inference"
	"github.com/haircareai/follicle-api/internal/middleware"
	"github.com/haircareai/follicle-api/internal/models"
	"github.com/haircareai/follicle-api/internal/services"
	"github.com/haircareai/follicle-api/internal/storage"
	"github.com/haircareai/follicle-api/internal/store"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables.")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if cfg.JWTSecret == "" {
		log.Println("WARNING: JWT_SECRET is not set; logins and reset links will fail.")
	}

	// --- Database Connection ---
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	db, err := store.Open(ctx, cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer db.Close(context.Background())
	log.Println("Successfully connected to MongoDB!")

	// --- Upload Storage ---
	files, err := storage.NewFileStore(cfg.UploadsRoot)
	if err != nil {
		log.Fatalf("Failed to prepare upload directories: %v", err)
	}

	// --- Services ---
	mailer := services.NewNotificationService(cfg.Mail)
	classifier := inference.NewClient(cfg.Inference)
	accountSvc := services.NewAccountService(db.Users, files, mailer, cfg)
	adminSvc := services.NewAdminService(db.Users)
	scanSvc := services.NewScanService(db.Scans, db.Reports, files, classifier)

	h := handlers.NewHandler(accountSvc, adminSvc, scanSvc)

	// --- Gin Router ---
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.Origin},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	// Uploaded degrees and scans are served statically.
	r.Static("/static", cfg.UploadsRoot)

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Server is running!"})
	})

	// --- Routes ---
	authRoutes := r.Group("/api/auth")
	{
		authRoutes.POST("/signup/patient", h.SignupPatient)
		authRoutes.POST("/signup/doctor", h.SignupDoctor)
		authRoutes.POST("/login", h.Login)
		authRoutes.POST("/forgot-password", h.ForgotPassword)
		authRoutes.POST("/reset-password/:token", h.ResetPassword)
	}

	secret := []byte(cfg.JWTSecret)
	adminRoutes := r.Group("/api/admin")
	adminRoutes.Use(middleware.AuthMiddleware(secret), middleware.RequireRole(models.RoleAdmin))
	{
		adminRoutes.GET("/users", h.ListUsers)
		adminRoutes.PUT("/verify-doctor/:userId", h.VerifyDoctor)
		adminRoutes.DELETE("/delete-user/:userId", h.DeleteUser)
	}

	doctorRoutes := r.Group("/api/doctors")
	{
		doctorRoutes.GET("/list", h.ListDoctors)
	}

	analysisRoutes := r.Group("/api/analysis")
	{
		analysisRoutes.POST("/upload", h.UploadScan)
		analysisRoutes.PUT("/process-patient/:scanId", h.ProcessScan)
		analysisRoutes.GET("/doctor-data/:doctorName", h.DoctorData)
		analysisRoutes.GET("/patient-data/:patientName", h.PatientData)
	}

	log.Printf("Starting server on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}
