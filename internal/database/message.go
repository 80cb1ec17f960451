package database

import (
	"fmt"

	"github.com/thereayou/courier-lite/internal/models"
)

// DefaultHistoryLimit caps history queries when the caller passes no limit.
const DefaultHistoryLimit = 50

func (d *Database) SaveMessage(message *models.Message) error {
	if err := d.db.Create(message).Error; err != nil {
		return fmt.Errorf("save message: %w", err)
	}
	return nil
}

// Conversation returns the thread between two users, newest first.
// The filter is symmetric, so Conversation(a, b) and Conversation(b, a)
// yield the same sequence.
func (d *Database) Conversation(user, peer string, limit int) ([]models.Message, error) {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}

	var messages []models.Message
	err := d.db.
		Where("(sender = ? AND receiver = ?) OR (sender = ? AND receiver = ?)", user, peer, peer, user).
		Order("id DESC").
		Limit(limit).
		Find(&messages).Error
	if err != nil {
		return nil, fmt.Errorf("load conversation: %w", err)
	}

	return messages, nil
}

// SentBy returns messages a user has sent, newest first. Only the
// sender side is filtered; there is no receiver-side counterpart.
func (d *Database) SentBy(username string, limit int) ([]models.Message, error) {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}

	var messages []models.Message
	err := d.db.
		Where("sender = ?", username).
		Order("id DESC").
		Limit(limit).
		Find(&messages).Error
	if err != nil {
		return nil, fmt.Errorf("load sent messages: %w", err)
	}

	return messages, nil
}
