package container

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/saulo-duarte/quizforge-lambda/internal/aiquiz"
	"github.com/saulo-duarte/quizforge-lambda/internal/config"
	"github.com/saulo-duarte/quizforge-lambda/internal/quiz"
	"github.com/saulo-duarte/quizforge-lambda/internal/router"
	"github.com/saulo-duarte/quizforge-lambda/internal/status"
	"github.com/saulo-duarte/quizforge-lambda/internal/web"
)

type Container struct {
	Settings        *config.Settings
	AIQuizContainer *aiquiz.AIQuizContainer
	QuizContainer   *quiz.QuizContainer
	StatusContainer *status.StatusContainer
	WebHandler      *web.Handler

	store io.Closer
}

func New(ctx context.Context) (*Container, error) {
	settings, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}
	config.InitLogger(settings.LogLevel)

	c := &Container{
		Settings:   settings,
		WebHandler: web.NewHandler(settings.StaticDir),
	}

	switch settings.StoreDriver {
	case config.StoreDriverRedis:
		rdb, err := config.ConnectRedis(ctx, settings)
		if err != nil {
			return nil, err
		}
		c.store = rdb
		c.initRedis(rdb)
	default:
		db, err := config.Connect(ctx, settings.DatabaseDSN, settings.DBName)
		if err != nil {
			return nil, err
		}
		c.store = sqlCloser{db: db}
		if err := c.initPostgres(db); err != nil {
			_ = c.Close()
			return nil, err
		}
	}

	if settings.Gemini.APIKey == "" {
		config.Logger.Warn("GEMINI_API_KEY is not set, quiz generation will fail")
	}

	aiQuizContainer, err := aiquiz.NewAIQuizContainer(ctx, aiquiz.GeminiConfig{
		APIKey:    settings.Gemini.APIKey,
		Model:     settings.Gemini.Model,
		MaxTokens: settings.Gemini.MaxTokens,
	}, c.QuizContainer.Repo, aiquiz.NormalizeOptions{Strict: settings.StrictValidation})
	if err != nil {
		_ = c.Close()
		return nil, err
	}
	c.AIQuizContainer = aiQuizContainer

	return c, nil
}

func (c *Container) initPostgres(db *gorm.DB) error {
	if err := quiz.Migrate(db); err != nil {
		return fmt.Errorf("migrate quizzes: %w", err)
	}
	if err := status.Migrate(db); err != nil {
		return fmt.Errorf("migrate status checks: %w", err)
	}

	c.QuizContainer = quiz.NewQuizContainer(db)
	c.StatusContainer = status.NewStatusContainer(db)
	return nil
}

func (c *Container) initRedis(rdb *redis.Client) {
	prefix := c.Settings.DBName
	c.QuizContainer = quiz.NewRedisQuizContainer(rdb, prefix)
	c.StatusContainer = status.NewRedisStatusContainer(rdb, prefix)
}

func (c *Container) Router() http.Handler {
	return router.New(router.RouterConfig{
		AIQuizHandler:      c.AIQuizContainer.Handler,
		StatusHandler:      c.StatusContainer.Handler,
		WebHandler:         c.WebHandler,
		CORSAllowedOrigins: c.Settings.CORSAllowedOrigins,
	})
}

// Close releases the storage handle. It is called once, on shutdown.
func (c *Container) Close() error {
	if c.store == nil {
		return nil
	}
	err := c.store.Close()
	c.store = nil
	return err
}

type sqlCloser struct {
	db *gorm.DB
}

func (s sqlCloser) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
