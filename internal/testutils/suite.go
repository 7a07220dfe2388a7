package testutils

import (
	"database/sql"
	"fmt"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"pandoro-backend/internal/config"
	"pandoro-backend/internal/database"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

const (
	pgUser     = "pandoro"
	pgPassword = "pandoro"
	pgDatabase = "pandoro_test"
)

// postgresContainer is started once per test binary and shared by every suite
type postgresContainer struct {
	once     sync.Once
	err      error
	pool     *dockertest.Pool
	resource *dockertest.Resource
	db       *gorm.DB
	tables   []string
	config   *config.Config
}

var shared postgresContainer

// BaseTestSuite gives repository suites access to the shared database
type BaseTestSuite struct {
	suite.Suite
	DB        *gorm.DB
	Config    *config.Config
	Factories *FactorySet
	tables    []string
}

// SetupTestSuite starts the shared Postgres container on first use and returns a suite bound to it
func SetupTestSuite(t *testing.T) *BaseTestSuite {
	shared.once.Do(func() { shared.err = shared.start() })
	if shared.err != nil {
		t.Fatalf("postgres test container: %v", shared.err)
	}
	return &BaseTestSuite{
		DB:        shared.db,
		Config:    shared.config,
		Factories: NewFactorySet(),
		tables:    shared.tables,
	}
}

// CleanupSharedContainer closes the connection and purges the container. Called from TestMain.
func CleanupSharedContainer() {
	if shared.db != nil {
		if sqlDB, err := shared.db.DB(); err == nil {
			_ = sqlDB.Close()
		}
		shared.db = nil
	}
	if shared.pool == nil || shared.resource == nil {
		return
	}
	name := shared.resource.Container.Name
	if err := shared.pool.Purge(shared.resource); err != nil {
		logrus.WithError(err).WithField("container", name).Warn("could not purge postgres container")
	} else {
		logrus.WithField("container", name).Info("purged postgres container")
	}
	shared.pool, shared.resource = nil, nil
}

// RunWithTestSuite runs fn against a clean database
func RunWithTestSuite(t *testing.T, fn func(*BaseTestSuite)) {
	s := SetupTestSuite(t)
	s.CleanTestDB()
	defer s.TeardownTestSuite()
	fn(s)
}

func (s *BaseTestSuite) SetupTest()    { s.CleanTestDB() }
func (s *BaseTestSuite) TearDownTest() { s.CleanTestDB() }

// TeardownTestSuite only empties the tables, the container outlives the suite
func (s *BaseTestSuite) TeardownTestSuite() { s.CleanTestDB() }

// CleanTestDB empties every Pandoro table in a single statement
func (s *BaseTestSuite) CleanTestDB() {
	if s.DB == nil || len(s.tables) == 0 {
		return
	}
	quoted := make([]string, len(s.tables))
	for i, table := range s.tables {
		quoted[i] = `"` + table + `"`
	}
	if err := s.DB.Exec("TRUNCATE TABLE " + strings.Join(quoted, ", ") + " RESTART IDENTITY CASCADE").Error; err != nil {
		logrus.WithError(err).Warn("could not truncate test tables")
	}
}

func (c *postgresContainer) start() error {
	pool, err := dockertest.NewPool("")
	if err != nil {
		return fmt.Errorf("connect to docker: %w", err)
	}
	pool.MaxWait = 2 * time.Minute
	c.pool = pool

	tag := os.Getenv("PANDORO_TEST_POSTGRES_TAG")
	if tag == "" {
		tag = "15-alpine"
	}
	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        tag,
		Env: []string{
			"POSTGRES_USER=" + pgUser,
			"POSTGRES_PASSWORD=" + pgPassword,
			"POSTGRES_DB=" + pgDatabase,
		},
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		return fmt.Errorf("run postgres %s: %w", tag, err)
	}
	c.resource = resource

	port := resource.GetPort("5432/tcp")
	dsn := fmt.Sprintf("postgres://%s:%s@127.0.0.1:%s/%s?sslmode=disable", pgUser, pgPassword, port, pgDatabase)

	// the server accepts connections before it finishes initdb, so ping before migrating
	if err := pool.Retry(func() error {
		conn, err := sql.Open("pgx", dsn)
		if err != nil {
			return err
		}
		defer conn.Close()
		return conn.Ping()
	}); err != nil {
		return fmt.Errorf("wait for postgres: %w", err)
	}

	db, err := database.Initialize(dsn, nil)
	if err != nil {
		return err
	}
	tables, err := database.TableNames(db)
	if err != nil {
		return err
	}
	c.db = db
	c.tables = tables
	c.config = &config.Config{
		DatabaseURL: dsn,
		Port:        "8080",
		LogLevel:    "debug",
		Environment: "test",
		JWTSecret:   "test-secret",
	}

	logrus.WithFields(logrus.Fields{"port": port, "tables": tables}).Info("postgres test container ready")
	return nil
}
