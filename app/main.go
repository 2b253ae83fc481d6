package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	_ "github.com/go-sql-driver/mysql"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/birdfeed/birdfeed/internal/repository"
	mysqlRepo "github.com/birdfeed/birdfeed/internal/repository/mysql"
	redisRepo "github.com/birdfeed/birdfeed/internal/repository/redis"
	"github.com/birdfeed/birdfeed/internal/rest"
	"github.com/birdfeed/birdfeed/internal/rest/middleware"
	"github.com/birdfeed/birdfeed/internal/rest/request"
	"github.com/birdfeed/birdfeed/internal/usecase/follow"
	"github.com/birdfeed/birdfeed/internal/usecase/tweet"
	"github.com/birdfeed/birdfeed/internal/usecase/user"
	"github.com/birdfeed/birdfeed/internal/workers"
)

const (
	defaultTimeout      = 30
	defaultAddress      = ":9090"
	defaultCacheDB      = 0
	defaultBloomBitSize = 10000000
	dbMaxRetry          = 10
	dbRetryIntervalSec  = 2
)

func init() {
	err := godotenv.Load()
	if err != nil {
		log.Fatal("Error loading .env file")
	}
}

func main() {
	//prepare database
	dbHost := os.Getenv("DATABASE_HOST")
	dbPort := os.Getenv("DATABASE_PORT")
	dbUser := os.Getenv("DATABASE_USER")
	dbPass := os.Getenv("DATABASE_PASS")
	dbName := os.Getenv("DATABASE_NAME")
	connection := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s", dbUser, dbPass, dbHost, dbPort, dbName)
	val := url.Values{}
	val.Add("parseTime", "1")
	dsn := fmt.Sprintf("%s?%s", connection, val.Encode())

	var (
		db  *gorm.DB
		err error
	)

	for i := 0; i < dbMaxRetry; i++ {
		db, err = gorm.Open(mysql.Open(dsn), &gorm.Config{TranslateError: true})
		if err != nil {
			log.Printf("failed to open connection to database (attempt %d/%d): %v", i+1, dbMaxRetry, err)
		} else {
			sqlDB, err := db.DB()
			if err != nil {
				log.Printf("failed to get sql.DB from gorm.DB (attempt %d/%d): %v", i+1, dbMaxRetry, err)
				continue
			}
			err = sqlDB.Ping()
			if err == nil {
				break
			}
			log.Printf("failed to ping database (attempt %d/%d): %v", i+1, dbMaxRetry, err)
			_ = sqlDB.Close()
		}

		time.Sleep(dbRetryIntervalSec * time.Second)
	}

	if err != nil {
		log.Fatal("could not connect to database after retries:", err)
	}

	defer func() {
		sqlDB, err := db.DB()
		if err != nil {
			log.Fatal("got error when getting sql.DB from gorm.DB", err)
		}
		if err := sqlDB.Close(); err != nil {
			log.Fatal("got error when closing the DB connection", err)
		}
	}()

	// prepare cache
	cacheHost := os.Getenv("CACHE_HOST")
	cachePort := os.Getenv("CACHE_PORT")
	cachePass := os.Getenv("CACHE_PASS")
	cacheDBStr := os.Getenv("CACHE_DB")
	cacheDB, err := strconv.Atoi(cacheDBStr)
	if err != nil {
		log.Println("failed to parse cacheDB, using default cacheDB")
		cacheDB = defaultCacheDB
	}
	client := redis.NewClient(&redis.Options{
		Addr:     cacheHost + ":" + cachePort,
		Password: cachePass,
		DB:       cacheDB,
	})
	defer func() {
		err = client.Close()
		if err != nil {
			log.Fatal("got error when closing the cache connection", err)
		}
	}()

	_, err = client.Ping(context.Background()).Result()
	if err != nil {
		log.Fatal("failed to open connection to cache", err)
		return
	}

	// prepare gin
	route := gin.Default()
	route.Use(middleware.CORS())
	timeoutStr := os.Getenv("CONTEXT_TIMEOUT")
	timeout, err := strconv.Atoi(timeoutStr)
	if err != nil {
		log.Println("failed to parse timeout, using default timeout")
		timeout = defaultTimeout
	}
	timeoutContext := time.Duration(timeout) * time.Second
	route.Use(middleware.SetRequestContextWithTimeout(timeoutContext))

	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := v.RegisterValidation("tweetcontent", request.TweetContent); err != nil {
			log.Fatal("failed to register tweet content validation", err)
		}
	}

	// Prepare Repository
	userRepo := mysqlRepo.NewUserRepository(db)
	tweetDBRepo := mysqlRepo.NewTweetRepository(db)
	likeRepo := mysqlRepo.NewLikeRepository(db)
	followRepo := mysqlRepo.NewFollowRepository(db)

	feedCache := redisRepo.NewFeedCache(client)
	feedRepo := repository.NewFeedRepository(tweetDBRepo, feedCache)

	bloomBitSizeStr := os.Getenv("BLOOM_FILTER_SIZE")
	bloomBitSize, err := strconv.ParseUint(bloomBitSizeStr, 10, 64)
	if err != nil {
		log.Printf("failed to parse bloom bit size, using default size")
		bloomBitSize = defaultBloomBitSize
	}
	bloomRepo := redisRepo.NewRedisBloomRepo(client, bloomBitSize)

	// Start worker
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	revalidator := workers.NewRevalidateWorker(os.Getenv("REVALIDATE_URL"))
	go revalidator.Start(ctx)

	// Build service Layer
	jwtSecret := []byte(os.Getenv("JWT_SECRET"))
	jwtTTLStr := os.Getenv("JWT_EXPIRE_HOURS")
	jwtTTL, err := strconv.Atoi(jwtTTLStr)
	if err != nil {
		log.Println("failed to parse JWT TTL, using default 24 hours")
		jwtTTL = 24
	}
	tweetSvc := tweet.NewService(feedRepo, tweetDBRepo, likeRepo, feedCache, bloomRepo, revalidator)
	userSvc := user.NewService(userRepo, jwtSecret, time.Duration(jwtTTL)*time.Hour)
	followSvc := follow.NewService(followRepo, userRepo)
	tweetHandler := rest.NewTweetHandler(tweetSvc)
	userHandler := rest.NewUserHandler(userSvc)
	followHandler := rest.NewFollowHandler(followSvc)

	authMiddleware := middleware.AuthMiddleware(string(jwtSecret))
	optionalAuth := middleware.OptionalAuthMiddleware(string(jwtSecret))

	// Prepare bloom filter
	if err := tweetSvc.WarmBloomFilter(ctx); err != nil {
		log.Printf("failed to warm bloom filter: %v\n", err)
		return
	}

	// Register routes
	route.POST("/register", userHandler.Register)
	route.POST("/login", userHandler.Login)

	feeds := route.Group("/")
	feeds.Use(optionalAuth)
	{
		feeds.GET("/tweets", tweetHandler.InfiniteFeed)
		feeds.GET("/profiles/:id/tweets", tweetHandler.InfiniteProfileFeed)
	}

	authorized := route.Group("/")
	authorized.Use(authMiddleware)
	{
		authorized.GET("/me", userHandler.Me)
		authorized.POST("/tweets", tweetHandler.Create)
		authorized.POST("/tweets/:id/like", tweetHandler.ToggleLike)
		authorized.POST("/profiles/:id/follow", followHandler.Follow)
		authorized.DELETE("/profiles/:id/follow", followHandler.Unfollow)
	}

	// Start Server
	address := os.Getenv("SERVER_ADDRESS")
	if address == "" {
		address = defaultAddress
	}
	srv := &http.Server{
		Addr:    address,
		Handler: route,
	}
	go func() {
		log.Printf("Server is running on %s\n", address)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err) // nolint
		}
	}()

	// shutdown
	<-ctx.Done()
	log.Println("Shutdown signal received, stopping server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown: ", err)
	}

	log.Println("Waiting for worker to cleanup...")
	time.Sleep(2 * time.Second)

	log.Println("Server exiting")
}
