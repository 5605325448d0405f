package ws

import (
	"encoding/json"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

type MatchesRecomputedEvent struct {
	Type      string `json:"type"`
	JobID     string `json:"job_id"`
	Matches   int    `json:"matches"`
	Fallback  bool   `json:"fallback"`
	Timestamp string `json:"timestamp"`
}

var defaultHub atomic.Pointer[Hub]

func SetDefaultHub(h *Hub) {
	defaultHub.Store(h)
}

// NotifyMatchesRecomputed broadcasts that a job's match set changed. Safe
// to call before a hub is installed; the event is simply dropped.
func NotifyMatchesRecomputed(jobID uuid.UUID, matches int, fallback bool) {
	h := defaultHub.Load()
	if h == nil {
		return
	}
	if jobID == uuid.Nil {
		return
	}

	evt := MatchesRecomputedEvent{
		Type:      "matches_recomputed",
		JobID:     jobID.String(),
		Matches:   matches,
		Fallback:  fallback,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	b, err := json.Marshal(evt)
	if err != nil {
		return
	}

	h.Broadcast(b)
}
