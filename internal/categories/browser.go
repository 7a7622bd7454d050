package categories

import (
	"fmt"

	"github.com/go-logr/logr"
)

// Loader gathers the current Source.
type Loader func() (Source, error)

// Browser holds the category model shown next to the book list.
type Browser struct {
	load       Loader
	log        logr.Logger
	categories []Category
}

func NewBrowser(load Loader, log logr.Logger) *Browser {
	return &Browser{load: load, log: log}
}

// Rebuild reloads the source and recomputes the model.
func (b *Browser) Rebuild() error {
	src, err := b.load()
	if err != nil {
		return fmt.Errorf("categories: %w", err)
	}
	b.categories = Build(src)
	b.log.V(1).Info("category model rebuilt", "categories", len(b.categories))
	return nil
}

func (b *Browser) Categories() []Category {
	return append([]Category(nil), b.categories...)
}

// Find returns the category with key.
func (b *Browser) Find(key string) (Category, bool) {
	for _, c := range b.categories {
		if c.Key == key {
			return c, true
		}
	}
	return Category{}, false
}
