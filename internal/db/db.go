package db

import (
	"context"

	"github.com/collectorlists/collectorsrv/internal/db/dbmanager"
	"github.com/collectorlists/collectorsrv/internal/db/models"
	"github.com/collectorlists/collectorsrv/internal/db/postgresql"
	"github.com/collectorlists/collectorsrv/pkg/types"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// DB_ is an interface for the database connection. It wraps the underlying
// sql.Conn while adding the ability to manage scopes.
type DB_ interface {
	// Schema bootstrap
	EnsureSchema(ctx context.Context) error

	// Users
	CreateUser(ctx context.Context, user *models.User) error
	GetUser(ctx context.Context, userID types.UserId) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	DeleteUser(ctx context.Context, userID types.UserId) error

	// Collections. All lookups are scoped to the owner in the context;
	// rows owned by anyone else are indistinguishable from absent rows.
	CreateCollection(ctx context.Context, collection *models.Collection) error
	GetCollection(ctx context.Context, collectionID uuid.UUID) (*models.Collection, error)
	ListCollections(ctx context.Context) ([]models.Collection, error)
	DeleteCollection(ctx context.Context, collectionID uuid.UUID) error

	// Field catalog
	CreateCollectionField(ctx context.Context, field *models.CollectionField) error
	ListCollectionFields(ctx context.Context, collectionID uuid.UUID) ([]models.CollectionField, error)

	// Items and values
	CreateItem(ctx context.Context, item *models.Item) error
	GetItem(ctx context.Context, itemID uuid.UUID) (*models.Item, error)
	ListItems(ctx context.Context, collectionID uuid.UUID) ([]models.Item, error)
	DeleteItem(ctx context.Context, itemID uuid.UUID) error
	UpsertItemValues(ctx context.Context, itemID uuid.UUID, values []models.ItemFieldValue) ([]models.ItemFieldValue, error)
	ListItemValues(ctx context.Context, itemID uuid.UUID) ([]models.ItemFieldValueDetail, error)

	// Scope Management
	AddScopes(ctx context.Context, scopes map[string]string)
	DropScopes(ctx context.Context, scopes []string) error
	AddScope(ctx context.Context, scope, value string)
	DropScope(ctx context.Context, scope string) error
	DropAllScopes(ctx context.Context) error

	// Close the connection to the database.
	Close(ctx context.Context)
}

const (
	Scope_UserId string = "collector.curr_userid"
)

var configuredScopes = []string{
	Scope_UserId,
}

var pool dbmanager.ScopedDb

func init() {
	ctx := log.Logger.WithContext(context.Background())
	pg := dbmanager.NewScopedDb(ctx, "postgresql", configuredScopes)
	if pg == nil {
		panic("unable to create db pool")
	}
	pool = pg
}

// Stats reports connection checkouts and returns for the pool; the two
// counts diverging over time means a handler is leaking connections.
func Stats() (requests, returns uint64) {
	return pool.Stats()
}

func Conn(ctx context.Context) dbmanager.ScopedConn {
	if pool != nil {
		conn, err := pool.Conn(ctx)
		if err == nil {
			return conn
		}
		log.Ctx(ctx).Error().Err(err).Msg("unable to get db connection")
	}
	return nil
}

type ctxDbKeyType string

const ctxDbKey ctxDbKeyType = "CollectorDb"

func ConnCtx(ctx context.Context) context.Context {
	conn := Conn(ctx)
	return context.WithValue(ctx, ctxDbKey, conn)
}

func DB(ctx context.Context) DB_ {
	if conn, ok := ctx.Value(ctxDbKey).(dbmanager.ScopedConn); ok {
		collectorDb := postgresql.NewCollectorDb(conn)
		return collectorDb
	}
	log.Ctx(ctx).Error().Msg("unable to get db connection from context")
	return nil
}
