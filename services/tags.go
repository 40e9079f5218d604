package services

import (
	"github.com/inkwell-app/inkwell-backend/database"
	"github.com/inkwell-app/inkwell-backend/errs"
	"github.com/inkwell-app/inkwell-backend/models"
)

// TagResolver turns requested tag names into persisted Tag rows,
// reusing existing rows by slug and creating the rest.
type TagResolver struct {
	tagRepo *database.TagRepo
}

func NewTagResolver(tagRepo *database.TagRepo) TagResolver {
	return TagResolver{tagRepo: tagRepo}
}

// Resolve deduplicates names by exact string equality, then upserts one
// tag per unique name keyed by its slug. When a concurrent request
// creates the same slug between the lookup and the insert, the unique
// index rejects our insert and the existing row is re-read and reused.
// The result order is not guaranteed to match the input order.
func (s TagResolver) Resolve(names []string) ([]models.Tag, error) {
	seen := make(map[string]struct{}, len(names))
	unique := make([]string, 0, len(names))
	for _, name := range names {
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		unique = append(unique, name)
	}

	tags := make([]models.Tag, 0, len(unique))
	for _, name := range unique {
		slug := Slugify(name)

		existing, err := s.tagRepo.FindBySlug(slug)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			tags = append(tags, *existing)
			continue
		}

		tag := models.Tag{Name: name, Slug: slug}
		if err := s.tagRepo.Add(&tag); err != nil {
			if errs.IsDuplicateKey(err) {
				winner, findErr := s.tagRepo.FindBySlug(slug)
				if findErr != nil {
					return nil, findErr
				}
				if winner != nil {
					tags = append(tags, *winner)
					continue
				}
			}
			return nil, err
		}
		tags = append(tags, tag)
	}

	return tags, nil
}
