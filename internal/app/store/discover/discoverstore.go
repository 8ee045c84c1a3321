// internal/app/store/discover/discoverstore.go
package discoverstore

import (
	"context"
	"sort"

	"github.com/dalemusser/waffle/pantry/text"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	acceptedcategorystore "github.com/givehubapp/givehub/internal/app/store/acceptedcategories"
	categorystore "github.com/givehubapp/givehub/internal/app/store/categories"
	favoritestore "github.com/givehubapp/givehub/internal/app/store/favorites"
	organizationstore "github.com/givehubapp/givehub/internal/app/store/organizations"
	"github.com/givehubapp/givehub/internal/domain/models"
)

// Store answers the directory's discover queries. It is a read-side
// composition over the organization, category, accepted-category, and
// favorite collections.
type Store struct {
	orgs      *organizationstore.Store
	cats      *categorystore.Store
	accepted  *acceptedcategorystore.Store
	favorites *favoritestore.Store
}

func New(db *mongo.Database) *Store {
	return &Store{
		orgs:      organizationstore.New(db),
		cats:      categorystore.New(db),
		accepted:  acceptedcategorystore.New(db),
		favorites: favoritestore.New(db),
	}
}

// CategoryDetail is one accepted category on a directory entry, joined
// with the category's display name.
type CategoryDetail struct {
	CategoryID        string `json:"category_id"`
	Name              string `json:"name"`
	QualityGuidelines string `json:"quality_guidelines"`
	Instructions      string `json:"instructions"`
}

// Entry is one organization in a discover result: the organization, the
// categories it accepts, and whether the querying member favorited it.
type Entry struct {
	Organization models.Organization `json:"organization"`
	Accepted     []CategoryDetail    `json:"accepted_categories"`
	Favorite     bool                `json:"favorite"`
}

// Search backs the directory page's free-text box: organizations whose
// name starts with filter, plus organizations accepting a category whose
// slug starts with it. An empty filter returns every organization.
// Category-exact queries go through CategoryFilter instead. memberID may
// be zero for anonymous callers; their Favorite flags are all false.
func (s *Store) Search(ctx context.Context, filter string, memberID primitive.ObjectID) ([]Entry, error) {
	fq := text.Fold(filter)

	orgs, err := s.orgs.SearchByName(ctx, fq)
	if err != nil {
		return nil, err
	}

	if fq != "" {
		more, err := s.orgsByCategoryPrefix(ctx, fq, orgs)
		if err != nil {
			return nil, err
		}
		orgs = append(orgs, more...)
		sort.Slice(orgs, func(i, j int) bool { return orgs[i].NameCI < orgs[j].NameCI })
	}

	return s.annotate(ctx, orgs, memberID)
}

// orgsByCategoryPrefix finds organizations accepting a category whose slug
// starts with fq, excluding those already in have.
func (s *Store) orgsByCategoryPrefix(ctx context.Context, fq string, have []models.Organization) ([]models.Organization, error) {
	cats, err := s.cats.SearchBySlugPrefix(ctx, fq)
	if err != nil {
		return nil, err
	}
	if len(cats) == 0 {
		return nil, nil
	}

	seen := make(map[primitive.ObjectID]bool, len(have))
	for _, o := range have {
		seen[o.ID] = true
	}

	var orgIDs []primitive.ObjectID
	for _, cat := range cats {
		entries, err := s.accepted.ListByCategory(ctx, cat.ID)
		if err != nil {
			return nil, err
		}
		for _, e := range entries {
			if !seen[e.OrganizationID] {
				seen[e.OrganizationID] = true
				orgIDs = append(orgIDs, e.OrganizationID)
			}
		}
	}
	return s.orgs.GetByIDs(ctx, orgIDs)
}

// annotate joins each organization with its accepted categories and the
// member's favorite flag.
func (s *Store) annotate(ctx context.Context, orgs []models.Organization, memberID primitive.ObjectID) ([]Entry, error) {
	orgIDs := make([]primitive.ObjectID, 0, len(orgs))
	for _, o := range orgs {
		orgIDs = append(orgIDs, o.ID)
	}

	accepted, err := s.accepted.ListByOrganizations(ctx, orgIDs)
	if err != nil {
		return nil, err
	}

	// One category lookup for the whole result set.
	slugSet := make(map[string]bool)
	for _, ac := range accepted {
		slugSet[ac.CategoryID] = true
	}
	slugs := make([]string, 0, len(slugSet))
	for slug := range slugSet {
		slugs = append(slugs, slug)
	}
	cats, err := s.cats.GetByIDs(ctx, slugs)
	if err != nil {
		return nil, err
	}
	catName := make(map[string]string, len(cats))
	for _, c := range cats {
		catName[c.ID] = c.Name
	}

	byOrg := make(map[primitive.ObjectID][]CategoryDetail)
	for _, ac := range accepted {
		byOrg[ac.OrganizationID] = append(byOrg[ac.OrganizationID], CategoryDetail{
			CategoryID:        ac.CategoryID,
			Name:              catName[ac.CategoryID],
			QualityGuidelines: ac.QualityGuidelines,
			Instructions:      ac.Instructions,
		})
	}

	favs, err := s.favorites.FavoriteSet(ctx, memberID, orgIDs)
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(orgs))
	for _, o := range orgs {
		details := byOrg[o.ID]
		sort.Slice(details, func(i, j int) bool { return details[i].CategoryID < details[j].CategoryID })
		entries = append(entries, Entry{
			Organization: o,
			Accepted:     details,
			Favorite:     favs[o.ID],
		})
	}
	return entries, nil
}

// CategoryFilter restricts entries to organizations accepting the given
// category slug. Used by the directory page's category chips.
func (s *Store) CategoryFilter(ctx context.Context, categoryID string, memberID primitive.ObjectID) ([]Entry, error) {
	accepted, err := s.accepted.ListByCategory(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	orgIDs := make([]primitive.ObjectID, 0, len(accepted))
	for _, e := range accepted {
		orgIDs = append(orgIDs, e.OrganizationID)
	}
	orgs, err := s.orgs.GetByIDs(ctx, orgIDs)
	if err != nil {
		return nil, err
	}
	sort.Slice(orgs, func(i, j int) bool { return orgs[i].NameCI < orgs[j].NameCI })
	return s.annotate(ctx, orgs, memberID)
}
