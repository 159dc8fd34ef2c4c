package usecases

import (
	"github.com/nhadat/marketplace/internal/application/chat/dto"
)

// MessagePublisher pushes committed messages to connected participants.
// Delivery is best-effort and must not block.
type MessagePublisher interface {
	PublishMessage(recipients []uint, msg *dto.MessageResponse)
}
