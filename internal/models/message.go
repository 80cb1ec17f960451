package models

// Message is append-only: once saved it is never updated or deleted.
// The id is assigned by the database and strictly increases, so
// "ORDER BY id DESC" is the newest-first ordering for history queries.
type Message struct {
	ID        uint   `gorm:"primaryKey"`
	Sender    string `gorm:"not null;index"`
	Receiver  string `gorm:"not null;index"`
	Content   string `gorm:"not null"`
	Timestamp string `gorm:"not null"`
}
