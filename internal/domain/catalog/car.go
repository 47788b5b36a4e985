package catalog

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/carshowroom/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Car represents a car model offered by the showroom.
// It is the aggregate root for catalog operations.
type Car struct {
	shared.BaseAggregateRoot
	Model     string          `gorm:"type:varchar(100);not null"`
	Year      int             `gorm:"not null"`
	Engine    string          `gorm:"type:varchar(100);not null"`
	Price     decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`
	ImagePath string          `gorm:"type:varchar(255)"`
	Slug      string          `gorm:"type:varchar(150);not null;uniqueIndex"`
	Featured  bool            `gorm:"not null;default:false"`
	Available bool            `gorm:"not null;default:true"`
}

// TableName returns the table name for GORM
func (Car) TableName() string {
	return "cars"
}

// NewCar creates a new car. When slug is empty it is derived from the
// model and year ("Model X", 2020 -> "model-x-2020"); uniqueness is
// enforced by the repository before commit.
func NewCar(model string, year int, engine string, price decimal.Decimal, slug string) (*Car, error) {
	if err := validateModel(model); err != nil {
		return nil, err
	}
	if err := validateYear(year); err != nil {
		return nil, err
	}
	if err := validateEngine(engine); err != nil {
		return nil, err
	}
	if price.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Price cannot be negative")
	}

	if slug == "" {
		slug = DeriveSlug(model, year)
	} else {
		slug = Slugify(slug)
	}
	if slug == "" {
		return nil, shared.NewDomainError("INVALID_SLUG", "Slug cannot be derived from model and year")
	}

	return &Car{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Model:             model,
		Year:              year,
		Engine:            engine,
		Price:             price,
		Slug:              slug,
		Available:         true,
	}, nil
}

// Update updates the car's descriptive fields. The slug is left
// untouched so existing links keep working.
func (c *Car) Update(model string, year int, engine string, price decimal.Decimal) error {
	if err := validateModel(model); err != nil {
		return err
	}
	if err := validateYear(year); err != nil {
		return err
	}
	if err := validateEngine(engine); err != nil {
		return err
	}
	if price.IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "Price cannot be negative")
	}

	c.Model = model
	c.Year = year
	c.Engine = engine
	c.Price = price
	c.UpdatedAt = time.Now()
	c.IncrementVersion()

	return nil
}

// SetImagePath sets the path of the showcase image
func (c *Car) SetImagePath(path string) error {
	if len(path) > 255 {
		return shared.NewDomainError("INVALID_IMAGE_PATH", "Image path cannot exceed 255 characters")
	}
	c.ImagePath = path
	c.UpdatedAt = time.Now()
	c.IncrementVersion()
	return nil
}

// SetFeatured toggles whether the car appears in the featured list
func (c *Car) SetFeatured(featured bool) {
	c.Featured = featured
	c.UpdatedAt = time.Now()
	c.IncrementVersion()
}

// MarkSold marks the car as no longer available
func (c *Car) MarkSold() error {
	if !c.Available {
		return shared.NewDomainError("ALREADY_SOLD", "Car is already marked as sold")
	}
	c.Available = false
	c.UpdatedAt = time.Now()
	c.IncrementVersion()
	return nil
}

// MarkAvailable puts the car back on offer
func (c *Car) MarkAvailable() {
	c.Available = true
	c.UpdatedAt = time.Now()
	c.IncrementVersion()
}

// DeriveSlug builds the canonical slug for a model and year
func DeriveSlug(model string, year int) string {
	return Slugify(fmt.Sprintf("%s-%d", model, year))
}

var slugFold = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Slugify lowercases the input, strips diacritics and replaces every
// non-alphanumeric run with a single hyphen
func Slugify(s string) string {
	folded, _, err := transform.String(slugFold, s)
	if err != nil {
		folded = s
	}

	var b strings.Builder
	lastHyphen := true
	for _, r := range strings.ToLower(folded) {
		switch {
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'):
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	return strings.TrimRight(b.String(), "-")
}

func validateModel(model string) error {
	if model == "" {
		return shared.NewDomainError("INVALID_MODEL", "Model cannot be empty")
	}
	if len(model) > 100 {
		return shared.NewDomainError("INVALID_MODEL", "Model cannot exceed 100 characters")
	}
	return nil
}

func validateYear(year int) error {
	if year < 1886 || year > time.Now().Year()+1 {
		return shared.NewDomainError("INVALID_YEAR", "Year is outside the accepted range")
	}
	return nil
}

func validateEngine(engine string) error {
	if engine == "" {
		return shared.NewDomainError("INVALID_ENGINE", "Engine cannot be empty")
	}
	if len(engine) > 100 {
		return shared.NewDomainError("INVALID_ENGINE", "Engine cannot exceed 100 characters")
	}
	return nil
}
