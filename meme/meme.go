// Package meme defines the immutable content item whose spread is simulated:
// its persuasive attributes, its identity and its lineage.
//
// Attributes:
//
//	PoliticalBias      [-1,1]  ideological direction of the content
//	EmotionalIntensity [0,1]   boosts re-sharing
//	FactualAccuracy    [0,1]   below 0.5 critical thinkers push back
//	Complexity         [0,1]   mismatch with education lowers acceptance
//	Virality           [0,1]   intrinsic shareability
//	SourceCredibility  [0,1]   trust in the originating source
//
// Lineage (Parent, Generation) is bookkeeping for derived variants; no
// component of this module mutates content.
package meme

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// ErrBadAttribute indicates a content attribute outside its documented range.
var ErrBadAttribute = errors.New("meme: attribute out of range")

// Attributes are the persuasive properties of a content item.
type Attributes struct {
	PoliticalBias      float64 `yaml:"political_bias" json:"political_bias" validate:"gte=-1,lte=1"`
	EmotionalIntensity float64 `yaml:"emotional_intensity" json:"emotional_intensity" validate:"gte=0,lte=1"`
	FactualAccuracy    float64 `yaml:"factual_accuracy" json:"factual_accuracy" validate:"gte=0,lte=1"`
	Complexity         float64 `yaml:"complexity" json:"complexity" validate:"gte=0,lte=1"`
	Virality           float64 `yaml:"virality" json:"virality" validate:"gte=0,lte=1"`
	SourceCredibility  float64 `yaml:"source_credibility" json:"source_credibility" validate:"gte=0,lte=1"`
}

// Content is an immutable content item. Construct it with New or Derive.
type Content struct {
	ID         string
	Name       string
	Parent     string // ID of the item this one was derived from; "" for originals
	Generation int    // 0 for originals
	Attributes
}

// Option customizes New.
type Option func(*Content)

// WithID pins the identifier instead of generating a UUID.
func WithID(id string) Option {
	if id == "" {
		panic("meme: WithID(\"\")")
	}
	return func(c *Content) { c.ID = id }
}

// WithName attaches a human-readable name.
func WithName(name string) Option {
	return func(c *Content) { c.Name = name }
}

var validate = validator.New()

// New validates attrs and returns an original (generation 0) content item
// with a fresh UUID unless WithID is given.
func New(attrs Attributes, opts ...Option) (Content, error) {
	if err := attrs.Validate(); err != nil {
		return Content{}, err
	}
	c := Content{Attributes: attrs}
	for _, opt := range opts {
		opt(&c)
	}
	if c.ID == "" {
		c.ID = uuid.NewString()
	}

	return c, nil
}

// Derive returns a new item descending from parent with the given attributes.
func Derive(parent Content, attrs Attributes, opts ...Option) (Content, error) {
	c, err := New(attrs, opts...)
	if err != nil {
		return Content{}, err
	}
	c.Parent = parent.ID
	c.Generation = parent.Generation + 1

	return c, nil
}

// Validate checks every attribute against its documented range.
func (a Attributes) Validate() error {
	err := validate.Struct(a)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrBadAttribute, err)
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		parts = append(parts, fmt.Sprintf("%s %s=%s (got %v)", fe.Field(), fe.Tag(), fe.Param(), fe.Value()))
	}

	return fmt.Errorf("%w: %s", ErrBadAttribute, strings.Join(parts, "; "))
}

// Misinformation reports whether the item is factually weak enough to trigger
// the critical-thinking penalty.
func (a Attributes) Misinformation() bool {
	return a.FactualAccuracy < 0.5
}
