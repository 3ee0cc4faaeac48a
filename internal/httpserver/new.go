package httpserver

import (
	"database/sql"
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	goredis "github.com/redis/go-redis/v9"

	"meeting-task-extractor/config"
	extractionUC "meeting-task-extractor/internal/extraction/usecase"
	"meeting-task-extractor/pkg/datemath"
	"meeting-task-extractor/pkg/encrypter"
	"meeting-task-extractor/pkg/gcalendar"
	"meeting-task-extractor/pkg/log"
	"meeting-task-extractor/pkg/mq"
	"meeting-task-extractor/pkg/scope"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin            *gin.Engine
	l              log.Logger
	port           int
	mode           string
	environment    string
	metricsEnabled bool

	// Storage: exactly one of postgresDB and sqliteDB is set. redis is optional.
	postgresDB *pgxpool.Pool
	sqliteDB   *sql.DB
	redis      *goredis.Client

	// Integrations
	llm       extractionUC.Generator
	dateMath  *datemath.Parser
	calendar  gcalendar.Calendar
	publisher mq.Publisher

	// Auth
	jwtManager scope.Manager
	encrypter  encrypter.Encrypter
	jwtConfig  config.JWTConfig
	cookie     config.CookieConfig

	// Pipeline
	extraction     config.ExtractionConfig
	review         config.ReviewConfig
	tasks          config.TasksConfig
	googleCalendar config.GoogleCalendarConfig
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger         log.Logger
	Port           int
	Mode           string
	Environment    string
	MetricsEnabled bool

	PostgresDB *pgxpool.Pool
	SQLiteDB   *sql.DB
	Redis      *goredis.Client

	// LLM is required. Calendar and Publisher are optional.
	LLM       extractionUC.Generator
	DateMath  *datemath.Parser
	Calendar  gcalendar.Calendar
	Publisher mq.Publisher

	JWTManager scope.Manager
	Encrypter  encrypter.Encrypter
	JWT        config.JWTConfig
	Cookie     config.CookieConfig

	Extraction     config.ExtractionConfig
	Review         config.ReviewConfig
	Tasks          config.TasksConfig
	GoogleCalendar config.GoogleCalendarConfig
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:              logger,
		gin:            gin.New(),
		port:           cfg.Port,
		mode:           cfg.Mode,
		environment:    cfg.Environment,
		metricsEnabled: cfg.MetricsEnabled,
		postgresDB:     cfg.PostgresDB,
		sqliteDB:       cfg.SQLiteDB,
		redis:          cfg.Redis,
		llm:            cfg.LLM,
		dateMath:       cfg.DateMath,
		calendar:       cfg.Calendar,
		publisher:      cfg.Publisher,
		jwtManager:     cfg.JWTManager,
		encrypter:      cfg.Encrypter,
		jwtConfig:      cfg.JWT,
		cookie:         cfg.Cookie,
		extraction:     cfg.Extraction,
		review:         cfg.Review,
		tasks:          cfg.Tasks,
		googleCalendar: cfg.GoogleCalendar,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if (srv.postgresDB == nil) == (srv.sqliteDB == nil) {
		return errors.New("exactly one of postgres or sqlite storage is required")
	}
	if srv.llm == nil {
		return errors.New("llm is required")
	}
	if srv.dateMath == nil {
		return errors.New("date parser is required")
	}
	if srv.jwtManager == nil || srv.encrypter == nil {
		return errors.New("jwt manager and encrypter are required")
	}
	return nil
}
