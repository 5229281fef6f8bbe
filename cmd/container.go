package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/go-redis/redis/v8"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"github.com/mehrab1899/ats-backend/api/graphqlapi"
	"github.com/mehrab1899/ats-backend/pkg/fsx"
	"github.com/mehrab1899/ats-backend/pkg/fsx/fsxlocal"
	"github.com/mehrab1899/ats-backend/pkg/fsx/fsxs3"
	"github.com/mehrab1899/ats-backend/pkg/iam/admin/admininfra"
	"github.com/mehrab1899/ats-backend/pkg/iam/admin/adminsrv"
	"github.com/mehrab1899/ats-backend/pkg/iam/auth"
	"github.com/mehrab1899/ats-backend/pkg/logx"
	"github.com/mehrab1899/ats-backend/recruitment/analytics/analyticsinfra"
	"github.com/mehrab1899/ats-backend/recruitment/analytics/analyticssrv"
	"github.com/mehrab1899/ats-backend/recruitment/applicant/applicantinfra"
	"github.com/mehrab1899/ats-backend/recruitment/applicant/applicantsrv"
	"github.com/mehrab1899/ats-backend/recruitment/job/jobinfra"
	"github.com/mehrab1899/ats-backend/recruitment/job/jobsrv"
)

const adminTokenTTL = 7 * 24 * time.Hour

// Container holds all application dependencies
type Container struct {
	// Infrastructure
	DB         *sqlx.DB
	Redis      *redis.Client
	FileSystem fsx.FileSystem

	// Set when STORAGE_DRIVER is "local"; used for static serving of uploads.
	LocalUploads *fsxlocal.LocalFileSystem

	// Services
	TokenService     *auth.TokenService
	AdminService     *adminsrv.AdminService
	JobService       *jobsrv.JobService
	ApplicantService *applicantsrv.ApplicantService
	AnalyticsService *analyticssrv.AnalyticsService

	// API
	GraphQLHandler *graphqlapi.Handler
}

// NewContainer initializes the dependency injection container
func NewContainer() *Container {
	if err := godotenv.Load(); err != nil {
		logx.Debugf("no .env file loaded: %v", err)
	}

	c := &Container{}
	c.initInfrastructure()
	c.initServices()
	return c
}

func (c *Container) initInfrastructure() {
	// 1. Database Connection
	dbHost := os.Getenv("DB_HOST")
	dbPort := os.Getenv("DB_PORT")
	dbUser := os.Getenv("DB_USER")
	dbPass := os.Getenv("DB_PASS")
	dbName := os.Getenv("DB_NAME")
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		dbHost, dbPort, dbUser, dbPass, dbName)

	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		logx.Fatalf("Failed to connect to database: %v", err)
	}
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)
	c.DB = db

	// 2. Redis Connection
	redisAddr := os.Getenv("REDIS_ADDR")
	redisPass := os.Getenv("REDIS_PASS")
	c.Redis = redis.NewClient(&redis.Options{
		Addr:     redisAddr,
		Password: redisPass,
		DB:       0,
	})
	if _, err := c.Redis.Ping(context.Background()).Result(); err != nil {
		logx.Warnf("Failed to connect to Redis: %v", err)
	}

	// 3. Blob Storage
	baseURL := os.Getenv("APP_BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}

	switch os.Getenv("STORAGE_DRIVER") {
	case "s3":
		awsRegion := os.Getenv("AWS_REGION")
		awsBucket := os.Getenv("AWS_BUCKET")
		cfg, err := config.LoadDefaultConfig(context.TODO(), config.WithRegion(awsRegion))
		if err != nil {
			logx.Fatalf("unable to load SDK config, %v", err)
		}
		c.FileSystem = fsxs3.NewS3FileSystem(s3.NewFromConfig(cfg), awsBucket, "uploads")
	default:
		uploadDir := os.Getenv("UPLOAD_DIR")
		if uploadDir == "" {
			uploadDir = "./uploads"
		}
		local := fsxlocal.NewLocalFileSystem(uploadDir, baseURL+"/uploads")
		c.LocalUploads = local
		c.FileSystem = local
	}

	// 4. Token Service
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		logx.Warn("JWT_SECRET is not set, using default (unsafe for production)")
		jwtSecret = "super-secret-key-please-change-me-in-production"
	}
	c.TokenService = auth.NewTokenService(jwtSecret, adminTokenTTL, "ats-backend")
}

func (c *Container) initServices() {
	// --- Repositories ---
	adminRepo := admininfra.NewPostgresAdminRepository(c.DB)
	jobRepo := jobinfra.NewPostgresJobRepository(c.DB)
	applicantRepo := applicantinfra.NewPostgresApplicantRepository(c.DB)
	analyticsRepo := analyticsinfra.NewPostgresAnalyticsRepository(c.DB)

	// --- Domain Services ---
	c.AdminService = adminsrv.NewAdminService(adminRepo, c.TokenService)
	c.JobService = jobsrv.NewJobService(jobRepo)
	c.ApplicantService = applicantsrv.NewApplicantService(applicantRepo, jobRepo, c.FileSystem)
	c.AnalyticsService = analyticssrv.NewAnalyticsService(analyticsRepo, c.Redis)

	// --- API ---
	schema, err := graphqlapi.NewSchema(&graphqlapi.Resolver{
		Admins:     c.AdminService,
		Jobs:       c.JobService,
		Applicants: c.ApplicantService,
		Analytics:  c.AnalyticsService,
	})
	if err != nil {
		logx.Fatalf("Failed to build GraphQL schema: %v", err)
	}
	c.GraphQLHandler = graphqlapi.NewHandler(schema)
}
