package resolution

import (
	"context"
	"regexp"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/wallprints/catalog-backend/internal/reference"
	"github.com/wallprints/catalog-backend/pkg/db/models"
)

// Room image URLs embed the room id in their last path segment under either a
// lowercase or capitalized directory. The first matching pattern wins.
var roomIDPatterns = []*regexp.Regexp{
	regexp.MustCompile(`rooms/([a-zA-Z0-9_-]+)`),
	regexp.MustCompile(`Rooms/([a-zA-Z0-9_-]+)`),
}

func extractRoomID(url string) string {
	for _, pattern := range roomIDPatterns {
		if match := pattern.FindStringSubmatch(url); match != nil {
			return match[1]
		}
	}
	return ""
}

type roomResolver struct {
	store reference.Store
}

// resolve turns a preview layout's image sequence into resolved room entries.
// A nil preview resolves to an empty sequence. Room metadata is looked up in a
// batch-prefetched map of the preview's chosen rooms first; misses fall back to
// individual suffix lookups, issued concurrently. A room whose metadata does
// not exist resolves with empty attribute sets rather than failing.
func (r *roomResolver) resolve(ctx context.Context, preview *models.ProductPreviewLayout, allRooms bool) ([]ResolvedRoom, error) {
	if preview == nil {
		return []ResolvedRoom{}, nil
	}

	prefetched, err := r.prefetchChosen(ctx, preview.ChosenRoomIDs)
	if err != nil {
		return nil, err
	}

	images := preview.Images
	if !allRooms && len(images) > 1 {
		images = images[:1]
	}

	entries := make([]ResolvedRoom, len(images))
	type pending struct {
		idx int
		id  string
	}
	var misses []pending

	for i, image := range images {
		id := extractRoomID(image.URL)
		roomID := id
		if roomID == "" {
			roomID = uuid.NewString()
		}
		imageURL := image.URL
		if image.CDNURL != "" {
			imageURL = image.CDNURL
		}
		entries[i] = ResolvedRoom{ID: roomID, ImageURL: imageURL}

		if id == "" {
			applyRoomTags(&entries[i], nil)
			continue
		}
		if room, ok := prefetched[id]; ok {
			applyRoomTags(&entries[i], room.Tags)
			continue
		}
		misses = append(misses, pending{idx: i, id: id})
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, miss := range misses {
		miss := miss
		g.Go(func() error {
			room, err := r.store.RoomImageByURLSuffix(gctx, miss.id)
			if err != nil {
				return err
			}
			var tags []string
			if room != nil {
				tags = room.Tags
			}
			applyRoomTags(&entries[miss.idx], tags)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return entries, nil
}

// prefetchChosen batch-loads the preview's chosen rooms keyed by the id
// embedded in each record's URL.
func (r *roomResolver) prefetchChosen(ctx context.Context, ids []string) (map[string]models.RoomImage, error) {
	byID := make(map[string]models.RoomImage, len(ids))
	if len(ids) == 0 {
		return byID, nil
	}
	rooms, err := r.store.RoomImages(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, room := range rooms {
		if id := extractRoomID(room.URL); id != "" {
			byID[id] = room
		}
	}
	return byID, nil
}

// syntheticRoom is the single room entry used for hexagon layouts, which have
// no captured room photography and render the product image instead. The id is
// derived from the image URL so repeated resolutions of the same product
// produce identical output.
func syntheticRoom(imageURL string) ResolvedRoom {
	return ResolvedRoom{
		ID:       uuid.NewSHA1(uuid.NameSpaceURL, []byte(imageURL)).String(),
		ImageURL: imageURL,
		Styles:   []string{},
		Colors:   []string{},
		Unique:   []string{},
	}
}

// applyRoomTags derives the four room attributes from a record's tag set. The
// room type is the first vocabulary term present; the remaining attributes are
// the full subset of their vocabulary present, in vocabulary order.
func applyRoomTags(entry *ResolvedRoom, tags []string) {
	tagSet := make(map[string]struct{}, len(tags))
	for _, tag := range tags {
		tagSet[tag] = struct{}{}
	}

	for _, term := range roomTypeVocabulary {
		if _, ok := tagSet[term]; ok {
			entry.RoomType = term
			break
		}
	}
	entry.Styles = vocabularySubset(styleVocabulary, tagSet)
	entry.Colors = vocabularySubset(colorVocabulary, tagSet)
	entry.Unique = vocabularySubset(uniquenessVocabulary, tagSet)
}

func vocabularySubset(vocabulary []string, tagSet map[string]struct{}) []string {
	subset := []string{}
	for _, term := range vocabulary {
		if _, ok := tagSet[term]; ok {
			subset = append(subset, term)
		}
	}
	return subset
}
