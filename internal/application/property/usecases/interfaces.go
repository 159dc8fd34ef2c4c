package usecases

import (
	"context"
	"time"

	vo "github.com/nhadat/marketplace/internal/domain/property/valueobjects"
)

// ModerationNotice tells a seller how their listing was moderated.
type ModerationNotice struct {
	To     string
	Name   string
	Title  string
	Status vo.PropertyStatus
	Reason string
	// DecidedAt is the moderation time in UTC.
	DecidedAt time.Time
}

type ModerationNotifier interface {
	NotifyModeration(ctx context.Context, notice ModerationNotice) error
}

// ImageRemover deletes stored photos that a listing no longer references.
type ImageRemover interface {
	Remove(url string) error
}

type DescriptionRenderer interface {
	Render(markdown string) (string, error)
}
