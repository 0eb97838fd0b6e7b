package models

import (
	"time"

	"github.com/google/uuid"
)

// Validate checks if the post meets all validation requirements
func (p *Post) Validate() error {
	return structError(validate.Struct(p))
}

// BeforeCreate sets up any necessary fields before creation
func (p *Post) BeforeCreate() {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	now := time.Now()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	if p.UpdatedAt.IsZero() {
		p.UpdatedAt = p.CreatedAt
	}
	if p.Tags == nil {
		p.Tags = []string{}
	}
}

// HasTag reports whether the post carries the tag (exact string match).
func (p *Post) HasTag(tag string) bool {
	for _, t := range p.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Apply overwrites the fields present in the patch and leaves the rest alone.
func (p *Post) Apply(patch *PostPatch) {
	if patch == nil {
		return
	}
	if patch.Title != nil {
		p.Title = *patch.Title
	}
	if patch.Contents != nil {
		p.Contents = *patch.Contents
	}
	if patch.Tags != nil {
		p.Tags = patch.Tags
	}
}
