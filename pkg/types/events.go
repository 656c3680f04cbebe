package types

import (
	"encoding/json"
	"time"
)

type ReadingCreated struct {
	ReadingID int64     `json:"readingID"`
	PotID     string    `json:"potID"`
	Timestamp time.Time `json:"timestamp"`
}

func (r *ReadingCreated) Body() []byte {
	b, _ := json.Marshal(r)
	return b
}
func (r *ReadingCreated) ContentType() string {
	return "application/json"
}
func (r *ReadingCreated) TopicName() string {
	return "reading.created"
}

type ReadingsDeleted struct {
	Count     int64     `json:"count"`
	Timestamp time.Time `json:"timestamp"`
}

func (r *ReadingsDeleted) Body() []byte {
	b, _ := json.Marshal(r)
	return b
}
func (r *ReadingsDeleted) ContentType() string {
	return "application/json"
}
func (r *ReadingsDeleted) TopicName() string {
	return "reading.deleted"
}
