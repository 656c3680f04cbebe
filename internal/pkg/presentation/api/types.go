package api

import (
	"encoding/json"
	"time"
)

type apiResponse struct {
	Success bool   `json:"success"`
	PotID   string `json:"pot_id,omitempty"`
	Count   *int   `json:"count,omitempty"`
	Deleted *int64 `json:"deleted,omitempty"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

func (r apiResponse) Byte() []byte {
	b, _ := json.Marshal(r)
	return b
}

type errorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details"`
}

func (r errorResponse) Byte() []byte {
	b, _ := json.Marshal(r)
	return b
}

type healthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Service   string    `json:"service"`
	Version   string    `json:"version"`
}

func (r healthResponse) Byte() []byte {
	b, _ := json.Marshal(r)
	return b
}

func count(n int) *int {
	return &n
}

func deleted(n int64) *int64 {
	return &n
}
