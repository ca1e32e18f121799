package resolution

import (
	"context"
	"strings"
	"sync"

	"github.com/wallprints/catalog-backend/pkg/db/models"
)

// fakeStore serves canned reference data and records lookup traffic.
type fakeStore struct {
	prices  map[string][]models.VariantPriceEntry
	preview *models.ProductPreview
	handles map[string]string
	rooms   []models.RoomImage

	pricesErr  error
	previewErr error
	handlesErr error

	mu          sync.Mutex
	priceCalls  int
	batchCalls  [][]string
	suffixCalls []string
}

func (f *fakeStore) VariantPriceEntries(_ context.Context, layoutKeys []string, _ bool) (map[string][]models.VariantPriceEntry, error) {
	f.mu.Lock()
	f.priceCalls++
	f.mu.Unlock()
	if f.pricesErr != nil {
		return nil, f.pricesErr
	}
	out := make(map[string][]models.VariantPriceEntry)
	for _, key := range layoutKeys {
		if entries, ok := f.prices[key]; ok {
			out[key] = entries
		}
	}
	return out, nil
}

func (f *fakeStore) ProductPreview(context.Context, string) (*models.ProductPreview, error) {
	if f.previewErr != nil {
		return nil, f.previewErr
	}
	return f.preview, nil
}

func (f *fakeStore) VariantConfigHandles(context.Context) (map[string]string, error) {
	if f.handlesErr != nil {
		return nil, f.handlesErr
	}
	return f.handles, nil
}

func (f *fakeStore) RoomImages(_ context.Context, ids []string) ([]models.RoomImage, error) {
	f.mu.Lock()
	f.batchCalls = append(f.batchCalls, ids)
	f.mu.Unlock()
	var out []models.RoomImage
	for _, room := range f.rooms {
		for _, id := range ids {
			if strings.Contains(room.URL, id) {
				out = append(out, room)
				break
			}
		}
	}
	return out, nil
}

func (f *fakeStore) RoomImageByURLSuffix(_ context.Context, id string) (*models.RoomImage, error) {
	f.mu.Lock()
	f.suffixCalls = append(f.suffixCalls, id)
	f.mu.Unlock()
	for i := range f.rooms {
		if strings.Contains(f.rooms[i].URL, id) {
			return &f.rooms[i], nil
		}
	}
	return nil, nil
}
