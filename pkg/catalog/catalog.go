package catalog

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/geosick/pitchdeck/pkg/domain"
)

// Catalog is the ordered, read-only slide deck. Changing deck content is a
// configuration redeploy, not a runtime operation.
type Catalog struct {
	slides []domain.Slide
}

func New(slides []domain.Slide) (*Catalog, error) {
	if err := validate(slides); err != nil {
		return nil, err
	}
	return &Catalog{slides: slides}, nil
}

// NewBuiltin returns the catalog for the built-in GeoSick deck.
func NewBuiltin() (*Catalog, error) {
	return New(builtinDeck())
}

// LoadFile reads a deck override from a JSON file.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading deck file: %w", err)
	}

	var slides []domain.Slide
	if err := json.Unmarshal(data, &slides); err != nil {
		return nil, fmt.Errorf("decoding deck file: %w", err)
	}

	return New(slides)
}

func (c *Catalog) Count() int { return len(c.slides) }

func (c *Catalog) Get(index int) (domain.Slide, error) {
	if index < 0 || index >= len(c.slides) {
		return domain.Slide{}, fmt.Errorf("index %d: %w", index, domain.ErrOutOfRange)
	}
	return c.slides[index], nil
}

func validate(slides []domain.Slide) error {
	if len(slides) < 2 {
		return fmt.Errorf("deck needs at least a title and a closing slide, got %d slides", len(slides))
	}

	for i, s := range slides {
		if s.ID != i+1 {
			return fmt.Errorf("slide at position %d has id %d, ids must be contiguous from 1", i, s.ID)
		}
	}

	for i, s := range slides {
		switch s.Layout {
		case domain.LayoutTitle:
			if i != 0 {
				return fmt.Errorf("title slide must be first, found at position %d", i)
			}
		case domain.LayoutClosing:
			if i != len(slides)-1 {
				return fmt.Errorf("closing slide must be last, found at position %d", i)
			}
		case domain.LayoutContentLeft, domain.LayoutContentRight, domain.LayoutCentered,
			domain.LayoutProcess, domain.LayoutGrid, domain.LayoutLiveAnalysis, domain.LayoutLiveChat:
		default:
			return fmt.Errorf("slide %d has unknown layout %q", s.ID, s.Layout)
		}
	}

	if slides[0].Layout != domain.LayoutTitle {
		return fmt.Errorf("first slide must use the title layout, got %q", slides[0].Layout)
	}
	if slides[len(slides)-1].Layout != domain.LayoutClosing {
		return fmt.Errorf("last slide must use the closing layout, got %q", slides[len(slides)-1].Layout)
	}

	return nil
}
