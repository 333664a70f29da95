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
	_ "github.com/go-sql-driver/mysql"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/filmorate/backend/internal/repository"
	"github.com/filmorate/backend/internal/repository/mysql/model"
	"github.com/filmorate/backend/internal/rest"
	"github.com/filmorate/backend/internal/rest/middleware"
	"github.com/filmorate/backend/internal/usecase/catalog"
	"github.com/filmorate/backend/internal/usecase/director"
	"github.com/filmorate/backend/internal/usecase/feed"
	"github.com/filmorate/backend/internal/usecase/film"
	"github.com/filmorate/backend/internal/usecase/recommend"
	"github.com/filmorate/backend/internal/usecase/review"
	"github.com/filmorate/backend/internal/usecase/user"

	mysqlRepo "github.com/filmorate/backend/internal/repository/mysql"
	redisCache "github.com/filmorate/backend/internal/repository/redis"
)

const (
	defaultTimeout     = 30
	defaultAddress     = ":8080"
	defaultCacheDB     = 0
	dbMaxRetry         = 10
	dbRetryIntervalSec = 2
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
	val.Add("loc", "UTC")
	dsn := fmt.Sprintf("%s?%s", connection, val.Encode())

	var (
		db  *gorm.DB
		err error
	)

	for i := range dbMaxRetry {
		db, err = gorm.Open(mysql.Open(dsn), &gorm.Config{})
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

	if err := db.AutoMigrate(
		&model.MpaRating{},
		&model.Genre{},
		&model.Director{},
		&model.Film{},
		&model.FilmGenre{},
		&model.FilmDirector{},
		&model.User{},
		&model.Friendship{},
		&model.FilmLike{},
		&model.Review{},
		&model.ReviewLike{},
		&model.Event{},
	); err != nil {
		log.Fatal("failed to migrate database schema:", err)
	}

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

	// Prepare Repository
	userRepo := mysqlRepo.NewUserRepository(db)
	likeRepo := mysqlRepo.NewLikeRepository(db)
	genreRepo := mysqlRepo.NewGenreRepository(db)
	mpaRepo := mysqlRepo.NewMpaRepository(db)
	directorRepo := mysqlRepo.NewDirectorRepository(db)
	reviewRepo := mysqlRepo.NewReviewRepository(db)
	eventRepo := mysqlRepo.NewEventRepository(db)

	filmDBRepo := mysqlRepo.NewFilmRepository(db)
	filmCache := redisCache.NewFilmCache(client)
	filmRepo := repository.NewFilmRepository(filmDBRepo, filmCache)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Build service Layer
	feedSvc := feed.NewService(eventRepo, userRepo)
	recommendSvc := recommend.NewService(likeRepo, filmRepo)
	filmSvc := film.NewService(filmRepo, userRepo, likeRepo, genreRepo, mpaRepo, directorRepo, feedSvc)
	userSvc := user.NewService(userRepo, feedSvc, recommendSvc)
	reviewSvc := review.NewService(reviewRepo, userRepo, filmRepo, feedSvc)
	directorSvc := director.NewService(directorRepo)
	catalogSvc := catalog.NewService(genreRepo, mpaRepo)

	filmHandler := rest.NewFilmHandler(filmSvc)
	userHandler := rest.NewUserHandler(userSvc, feedSvc)
	reviewHandler := rest.NewReviewHandler(reviewSvc)
	directorHandler := rest.NewDirectorHandler(directorSvc)
	catalogHandler := rest.NewCatalogHandler(catalogSvc)

	// Register routes
	route.GET("/films", filmHandler.GetAll)
	route.POST("/films", filmHandler.Store)
	route.PUT("/films", filmHandler.Update)
	route.GET("/films/popular", filmHandler.GetPopular)
	route.GET("/films/common", filmHandler.GetCommon)
	route.GET("/films/search", filmHandler.Search)
	route.GET("/films/director/:directorId", filmHandler.GetByDirector)
	route.GET("/films/:id", filmHandler.GetByID)
	route.DELETE("/films/:id", filmHandler.Delete)
	route.PUT("/films/:id/like/:userId", filmHandler.Like)
	route.DELETE("/films/:id/like/:userId", filmHandler.Unlike)

	route.GET("/users", userHandler.GetAll)
	route.POST("/users", userHandler.Store)
	route.PUT("/users", userHandler.Update)
	route.GET("/users/:id", userHandler.GetByID)
	route.DELETE("/users/:id", userHandler.Delete)
	route.PUT("/users/:id/friends/:friendId", userHandler.AddFriend)
	route.DELETE("/users/:id/friends/:friendId", userHandler.RemoveFriend)
	route.GET("/users/:id/friends", userHandler.GetFriends)
	route.GET("/users/:id/friends/common/:otherId", userHandler.GetCommonFriends)
	route.GET("/users/:id/recommendations", userHandler.GetRecommendations)
	route.GET("/users/:id/feed", userHandler.GetFeed)

	route.GET("/reviews", reviewHandler.Fetch)
	route.POST("/reviews", reviewHandler.Store)
	route.PUT("/reviews", reviewHandler.Update)
	route.GET("/reviews/:id", reviewHandler.GetByID)
	route.DELETE("/reviews/:id", reviewHandler.Delete)
	route.PUT("/reviews/:id/like/:userId", reviewHandler.Like)
	route.DELETE("/reviews/:id/like/:userId", reviewHandler.RemoveReaction)
	route.PUT("/reviews/:id/dislike/:userId", reviewHandler.Dislike)
	route.DELETE("/reviews/:id/dislike/:userId", reviewHandler.RemoveReaction)

	route.GET("/genres", catalogHandler.GetGenres)
	route.GET("/genres/:id", catalogHandler.GetGenreByID)
	route.GET("/mpa", catalogHandler.GetMpaRatings)
	route.GET("/mpa/:id", catalogHandler.GetMpaByID)

	route.GET("/directors", directorHandler.GetAll)
	route.POST("/directors", directorHandler.Store)
	route.PUT("/directors", directorHandler.Update)
	route.GET("/directors/:id", directorHandler.GetByID)
	route.DELETE("/directors/:id", directorHandler.Delete)

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

	log.Println("Server exiting")
}
