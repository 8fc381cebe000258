package repositories

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-todo-boards/internal/migrations"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// testDB is shared by the integration tests; nil when Docker is unavailable.
var testDB *sqlx.DB

func TestMain(m *testing.M) {
	ctx := context.Background()

	db, teardown, err := startPostgres(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "postgres container unavailable, integration tests will be skipped: %v\n", err)
	} else {
		testDB = db
	}

	code := m.Run()

	if teardown != nil {
		teardown()
	}
	os.Exit(code)
}

func startPostgres(ctx context.Context) (*sqlx.DB, func(), error) {
	req := testcontainers.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_PASSWORD": "secret", "POSTGRES_DB": "testdb", "POSTGRES_USER": "postgres"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		return nil, nil, err
	}
	terminate := func() { _ = container.Terminate(ctx) }

	host, err := container.Host(ctx)
	if err != nil {
		terminate()
		return nil, nil, err
	}
	port, err := container.MappedPort(ctx, "5432")
	if err != nil {
		terminate()
		return nil, nil, err
	}

	dsn := fmt.Sprintf("postgres://postgres:secret@%s:%s/testdb?sslmode=disable", host, port.Port())

	var db *sqlx.DB
	for i := 0; i < 10; i++ {
		db, err = sqlx.Connect("pgx", dsn)
		if err == nil {
			break
		}
		time.Sleep(time.Second)
	}
	if err != nil {
		terminate()
		return nil, nil, err
	}

	if err := migrations.Up(ctx, db.DB); err != nil {
		db.Close()
		terminate()
		return nil, nil, err
	}

	return db, func() {
		db.Close()
		terminate()
	}, nil
}

// setupDB returns the shared database with every table emptied.
func setupDB(t *testing.T) *sqlx.DB {
	t.Helper()
	if testDB == nil {
		t.Skip("postgres container not available")
	}
	_, err := testDB.Exec(`TRUNCATE todos, boards, tokens, users RESTART IDENTITY CASCADE`)
	require.NoError(t, err)
	return testDB
}

// createUser inserts a user directly and returns its id.
func createUser(t *testing.T, db *sqlx.DB, email string) int64 {
	t.Helper()
	var id int64
	err := db.Get(&id, `INSERT INTO users (email, password_hash) VALUES ($1, 'hash') RETURNING id`, email)
	require.NoError(t, err)
	return id
}
