package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/multierr"
	"gorm.io/gorm"
)

// Repositories bundles the stores behind one backend together with its lifecycle hooks.
type Repositories struct {
	Driver string
	Events EventRepositoryInterface
	Teams  TeamRepositoryInterface

	ping    func(ctx context.Context) error
	closers []func(ctx context.Context) error
}

// NewGormRepositories builds SQL-backed repositories over db.
func NewGormRepositories(driver string, db *gorm.DB) *Repositories {
	return &Repositories{
		Driver: driver,
		Events: NewEventRepository(db),
		Teams:  NewTeamRepository(db),
		ping: func(ctx context.Context) error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.PingContext(ctx)
		},
		closers: []func(ctx context.Context) error{
			func(context.Context) error {
				sqlDB, err := db.DB()
				if err != nil {
					return err
				}
				return sqlDB.Close()
			},
		},
	}
}

// NewMongoRepositories builds document-store repositories over db.
func NewMongoRepositories(driver string, db *mongo.Database) *Repositories {
	client := db.Client()
	return &Repositories{
		Driver: driver,
		Events: NewMongoEventRepository(db),
		Teams:  NewMongoTeamRepository(db),
		ping: func(ctx context.Context) error {
			return client.Ping(ctx, readpref.Primary())
		},
		closers: []func(ctx context.Context) error{
			client.Disconnect,
		},
	}
}

// OnClose registers an extra release hook run by Close.
func (r *Repositories) OnClose(fn func(ctx context.Context) error) {
	r.closers = append(r.closers, fn)
}

// Ping checks that the backing store answers.
func (r *Repositories) Ping(ctx context.Context) error {
	if r.ping == nil {
		return nil
	}
	return r.ping(ctx)
}

// Close releases every resource, returning all failures combined.
func (r *Repositories) Close(ctx context.Context) error {
	var err error
	for i := len(r.closers) - 1; i >= 0; i-- {
		if cerr := r.closers[i](ctx); cerr != nil {
			err = multierr.Append(err, fmt.Errorf("%s store: %w", r.Driver, cerr))
		}
	}
	r.closers = nil
	return err
}
