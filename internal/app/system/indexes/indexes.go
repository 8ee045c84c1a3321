// Package indexes declares and reconciles the Mongo indexes the stores
// rely on. Uniqueness for organization names, member auth IDs, and the
// accepted-category and favorite pairs is enforced here rather than by
// read-then-write checks in the stores.
package indexes

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/givehubapp/givehub/internal/app/system/collections"
)

// EnsureAll runs at startup. Each ensure* function is idempotent; errors
// are aggregated so every problem is visible and startup can fail fast.
func EnsureAll(ctx context.Context, db *mongo.Database) error {
	var problems []string

	if err := ensureOrganizations(ctx, db); err != nil {
		problems = append(problems, collections.Name(collections.Organizations)+": "+err.Error())
	}
	if err := ensureAcceptedCategories(ctx, db); err != nil {
		problems = append(problems, collections.Name(collections.AcceptedCategories)+": "+err.Error())
	}
	if err := ensureMembers(ctx, db); err != nil {
		problems = append(problems, collections.Name(collections.Members)+": "+err.Error())
	}
	if err := ensureFavorites(ctx, db); err != nil {
		problems = append(problems, collections.Name(collections.Favorites)+": "+err.Error())
	}
	if err := ensureAssignments(ctx, db); err != nil {
		problems = append(problems, collections.Name(collections.Assignments)+": "+err.Error())
	}
	if err := ensureOAuthStates(ctx, db); err != nil {
		problems = append(problems, collections.Name(collections.OAuthStates)+": "+err.Error())
	}

	if len(problems) > 0 {
		return errors.New(strings.Join(problems, "; "))
	}
	return nil
}

/* -------------------------------------------------------------------------- */
/* Core helper: reconcile a set of desired indexes for one collection         */
/* -------------------------------------------------------------------------- */

type existingIndex struct {
	Name   string `bson:"name"`
	Key    bson.D `bson:"key"`
	Unique *bool  `bson:"unique,omitempty"`
}

func keySig(keys bson.D) string {
	parts := make([]string, 0, len(keys))
	for _, kv := range keys {
		parts = append(parts, fmt.Sprintf("%s:%v", kv.Key, kv.Value))
	}
	return strings.Join(parts, ", ")
}

func sameUnique(a, b *bool) bool {
	av := a != nil && *a
	bv := b != nil && *b
	return av == bv
}

func isDuplicateKeyErr(err error) bool {
	if err == nil {
		return false
	}
	var we mongo.WriteException
	if errors.As(err, &we) {
		for _, e := range we.WriteErrors {
			if e.Code == 11000 {
				return true
			}
		}
	}
	var ce mongo.CommandError
	if errors.As(err, &ce) && ce.Code == 11000 {
		return true
	}
	s := err.Error()
	return strings.Contains(s, "E11000") || strings.Contains(strings.ToLower(s), "duplicate key")
}

func ensureIndexSet(ctx context.Context, coll *mongo.Collection, models []mongo.IndexModel) error {
	// Load existing indexes once; the set per collection is small.
	existing := map[string]existingIndex{} // key signature -> index
	cur, err := coll.Indexes().List(ctx)
	if err == nil {
		defer cur.Close(ctx)
		for cur.Next(ctx) {
			var idx existingIndex
			if err := cur.Decode(&idx); err != nil {
				zap.L().Warn("failed to decode existing index",
					zap.String("collection", coll.Name()),
					zap.Error(err))
				continue
			}
			existing[keySig(idx.Key)] = idx
		}
	}

	var errs []string
	for _, m := range models {
		var desiredName string
		var desiredUnique *bool
		if m.Options != nil {
			if m.Options.Name != nil {
				desiredName = *m.Options.Name
			}
			desiredUnique = m.Options.Unique
		}
		desiredSig := keySig(m.Keys.(bson.D))
		start := time.Now()

		if ex, ok := existing[desiredSig]; ok {
			if sameUnique(desiredUnique, ex.Unique) {
				zap.L().Info("reusing existing index",
					zap.String("collection", coll.Name()),
					zap.String("name", ex.Name),
					zap.String("keys", desiredSig))
				continue
			}
			// Options mismatch, typically an upgrade to unique. Drop and recreate.
			if _, err := coll.Indexes().DropOne(ctx, ex.Name); err != nil {
				errs = append(errs, fmt.Sprintf("%s(%s): drop failed: %v", coll.Name(), desiredName, err))
				continue
			}
		}

		if _, err := coll.Indexes().CreateOne(ctx, m); err != nil {
			if isDuplicateKeyErr(err) && desiredUnique != nil && *desiredUnique {
				errs = append(errs, fmt.Sprintf("%s(%s): cannot create unique index, duplicates present", coll.Name(), desiredName))
			} else {
				errs = append(errs, fmt.Sprintf("%s(%s): %v", coll.Name(), desiredName, err))
			}
			continue
		}
		zap.L().Info("index ensured",
			zap.String("collection", coll.Name()),
			zap.String("name", desiredName),
			zap.String("keys", desiredSig),
			zap.Bool("unique", desiredUnique != nil && *desiredUnique),
			zap.String("took", time.Since(start).String()))
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

/* -------------------------------------------------------------------------- */
/* Collection-specific index sets                                             */
/* -------------------------------------------------------------------------- */

func ensureOrganizations(ctx context.Context, db *mongo.Database) error {
	c := collections.C(db, collections.Organizations)
	return ensureIndexSet(ctx, c, []mongo.IndexModel{
		// Organization names are globally unique (case/diacritics folded).
		{
			Keys:    bson.D{{Key: "name_ci", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("uniq_orgs_nameci"),
		},
		// Name prefix search with a stable sort tiebreak.
		{
			Keys:    bson.D{{Key: "name_ci", Value: 1}, {Key: "_id", Value: 1}},
			Options: options.Index().SetName("idx_orgs_nameci__id"),
		},
	})
}

func ensureAcceptedCategories(ctx context.Context, db *mongo.Database) error {
	c := collections.C(db, collections.AcceptedCategories)
	return ensureIndexSet(ctx, c, []mongo.IndexModel{
		// One entry per (organization, category); upserts key on this pair.
		{
			Keys:    bson.D{{Key: "organization_id", Value: 1}, {Key: "category_id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("uniq_accepted_org_category"),
		},
		// Reverse lookup: organizations accepting a category.
		{
			Keys:    bson.D{{Key: "category_id", Value: 1}, {Key: "organization_id", Value: 1}},
			Options: options.Index().SetName("idx_accepted_category_org"),
		},
	})
}

func ensureMembers(ctx context.Context, db *mongo.Database) error {
	c := collections.C(db, collections.Members)
	return ensureIndexSet(ctx, c, []mongo.IndexModel{
		// External auth subject is the member's identity; lazy creation
		// upserts key on it.
		{
			Keys:    bson.D{{Key: "auth_id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("uniq_members_authid"),
		},
	})
}

func ensureFavorites(ctx context.Context, db *mongo.Database) error {
	c := collections.C(db, collections.Favorites)
	return ensureIndexSet(ctx, c, []mongo.IndexModel{
		// A member favorites an organization at most once.
		{
			Keys:    bson.D{{Key: "member_id", Value: 1}, {Key: "organization_id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("uniq_fav_member_org"),
		},
		// Cascade deletes and "who favorited this org" lookups.
		{
			Keys:    bson.D{{Key: "organization_id", Value: 1}},
			Options: options.Index().SetName("idx_fav_org"),
		},
	})
}

func ensureAssignments(ctx context.Context, db *mongo.Database) error {
	c := collections.C(db, collections.Assignments)
	return ensureIndexSet(ctx, c, []mongo.IndexModel{
		// One staff assignment per (member, organization).
		{
			Keys:    bson.D{{Key: "member_id", Value: 1}, {Key: "organization_id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("uniq_assign_member_org"),
		},
		// Staff roster for an organization.
		{
			Keys:    bson.D{{Key: "organization_id", Value: 1}},
			Options: options.Index().SetName("idx_assign_org"),
		},
	})
}

func ensureOAuthStates(ctx context.Context, db *mongo.Database) error {
	c := collections.C(db, collections.OAuthStates)
	return ensureIndexSet(ctx, c, []mongo.IndexModel{
		// State tokens are single use and looked up by value.
		{
			Keys:    bson.D{{Key: "state", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("uniq_oauth_state"),
		},
		// TTL cleanup of abandoned flows.
		{
			Keys:    bson.D{{Key: "expires_at", Value: 1}},
			Options: options.Index().SetExpireAfterSeconds(0).SetName("idx_oauth_ttl"),
		},
	})
}
