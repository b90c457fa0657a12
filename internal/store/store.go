// Package store persists all resources of the finance tracker.
//
// Every operation on an owned resource is scoped by the owner ID,
// rows of other owners are never read or written.
package store

import (
	"context"
	"errors"
	"reflect"
	"time"

	"github.com/fincontrol/backend/internal/models"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Store is the ledger store.
type Store struct {
	db                *gorm.DB
	defaultCategories []models.Category
}

// Option configures a Store.
type Option func(*Store)

// WithDefaultCategories makes EnsureUser create categories for every new user.
func WithDefaultCategories(categories []models.Category) Option {
	return func(s *Store) {
		s.defaultCategories = categories
	}
}

// New returns a store backed by db.
func New(db *gorm.DB, opts ...Option) *Store {
	s := &Store{db: db}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Ping verifies that the database can be reached.
func (s *Store) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return models.Classify(err)
	}

	return models.Classify(sqlDB.PingContext(ctx))
}

// Transaction runs fn in a database transaction. The store passed to fn
// operates inside of the transaction.
func (s *Store) Transaction(ctx context.Context, fn func(tx *Store) error) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&Store{db: tx, defaultCategories: s.defaultCategories})
	})

	return models.Classify(err)
}

// scoped returns a query for rows of owner.
func (s *Store) scoped(ctx context.Context, owner uuid.UUID) *gorm.DB {
	return s.db.WithContext(ctx).Where("owner_id = ?", owner)
}

// locking adds a row lock on databases that support it. SQLite only
// has one connection, so transactions are serialized anyway.
func (s *Store) locking(q *gorm.DB) *gorm.DB {
	if s.db.Dialector.Name() == "postgres" {
		return q.Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate})
	}
	return q
}

// degrade decides how reads react to an unavailable database.
//
// List and sum reads return the fallback so that the dashboard can still
// render during an outage. All other errors are returned.
func degrade[T any](what string, value, fallback T, err error) (T, error) {
	if err == nil {
		return value, nil
	}

	if models.IsUnavailable(err) {
		log.Warn().Str("read", what).Err(err).Msg("database unavailable, returning empty result")
		return fallback, nil
	}

	return value, err
}

// Create inserts a new resource. The owner must be set by the caller.
func Create[M models.Owned](ctx context.Context, s *Store, m *M) error {
	return s.db.WithContext(ctx).Create(m).Error
}

// Get returns the resource with id if it belongs to owner.
func Get[M models.Owned](ctx context.Context, s *Store, owner, id uuid.UUID) (M, error) {
	var m M
	err := s.scoped(ctx, owner).Where("id = ?", id).First(&m).Error
	return m, err
}

// Update sets the named fields of the resource with id to the values in
// values. It reports false without error when owner has no such resource.
func Update[M models.Owned](ctx context.Context, s *Store, owner, id uuid.UUID, fields []string, values M) (M, bool, error) {
	if len(fields) > 0 {
		selected := make([]any, 0, len(fields))
		for _, f := range fields {
			selected = append(selected, f)
		}

		if n, ok := any(&values).(models.TimeNormalizer); ok {
			n.NormalizeTimes()
		}

		tx := s.scoped(ctx, owner).Model(new(M)).Where("id = ?", id).Select("", selected...).Updates(&values)
		if tx.Error != nil {
			var zero M
			return zero, false, tx.Error
		}

		if tx.RowsAffected == 0 {
			var zero M
			return zero, false, nil
		}
	}

	m, err := Get[M](ctx, s, owner, id)
	if err != nil {
		if errors.Is(err, models.ErrResourceNotFound) {
			return m, false, nil
		}
		return m, false, err
	}

	return m, true, nil
}

// Delete deletes the resource with id. Deleting a resource that does not
// exist for owner is not an error.
func Delete[M models.Owned](ctx context.Context, s *Store, owner, id uuid.UUID) error {
	return s.scoped(ctx, owner).Where("id = ?", id).Delete(new(M)).Error
}

// DeleteOwnerData deletes all resources of owner in one transaction.
func (s *Store) DeleteOwnerData(ctx context.Context, owner uuid.UUID) error {
	return s.Transaction(ctx, func(tx *Store) error {
		for _, model := range models.Registry {
			err := tx.scoped(ctx, owner).Delete(reflect.New(reflect.TypeOf(model)).Interface()).Error
			if err != nil {
				return err
			}
		}
		return nil
	})
}

// EnsureUser returns the user with the openId of user, creating it if it
// does not exist yet. The sign in time is updated.
//
// A new user gets the default categories of the store in the same
// transaction.
func (s *Store) EnsureUser(ctx context.Context, user models.User) (models.User, error) {
	now := time.Now().UTC()

	var u models.User
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Where(models.User{OpenID: user.OpenID}).First(&u).Error
		if err == nil {
			u.LastSignedIn = now
			return tx.Model(&u).Update("last_signed_in", now).Error
		}

		if !errors.Is(err, models.ErrResourceNotFound) {
			return err
		}

		u = user
		u.LastSignedIn = now
		err = tx.Create(&u).Error
		if err != nil {
			return err
		}

		// One insert per category keeps their creation order
		for _, c := range s.defaultCategories {
			category := models.Category{
				OwnedModel: models.OwnedModel{OwnerID: u.ID},
				Name:       c.Name,
				Icon:       c.Icon,
			}

			err := tx.Create(&category).Error
			if err != nil {
				return err
			}
		}

		return nil
	})

	return u, models.Classify(err)
}

// User returns the user with id.
func (s *Store) User(ctx context.Context, id uuid.UUID) (models.User, error) {
	var u models.User
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&u).Error
	return u, err
}
