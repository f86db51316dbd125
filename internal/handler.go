package internal

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

type Handler interface {
	SnapshotHandler(w http.ResponseWriter, r *http.Request)
	SnapshotEventsHandler(w http.ResponseWriter, r *http.Request)
	HealthHandler(w http.ResponseWriter, r *http.Request)
}

type HandlerImpl struct {
	store SnapshotStore
}

func NewHandler(store SnapshotStore) *HandlerImpl {
	return &HandlerImpl{store: store}
}

type errorResponse struct {
	Error string `json:"error"`
}

// SnapshotHandler returns the latest published snapshot.
func (h *HandlerImpl) SnapshotHandler(w http.ResponseWriter, r *http.Request) {
	snapshot, ok, err := h.store.Read(r.Context(), SnapshotKey)
	if err != nil {
		slog.Error("failed to read snapshot", slog.Any("error", err))
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "failed to read snapshot"})
		return
	}
	if !ok {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "no snapshot has been published yet"})
		return
	}

	if r.URL.Query().Get("withMessages") == "true" {
		snapshot.Queues = snapshot.FilterWithMessages()
	}

	writeJSON(w, http.StatusOK, snapshot)
}

// SnapshotEventsHandler streams every new snapshot as a server-sent event
// until the client disconnects.
func (h *HandlerImpl) SnapshotEventsHandler(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	events := make(chan SnapshotEvent, 1)
	sub, err := h.store.Subscribe(r.Context(), SnapshotKey, func(ev SnapshotEvent) {
		select {
		case events <- ev:
		case <-r.Context().Done():
		}
	})
	if err != nil {
		slog.Error("failed to subscribe to snapshots", slog.Any("error", err))
		http.Error(w, "failed to subscribe", http.StatusInternalServerError)
		return
	}
	defer sub.Cancel()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	for {
		select {
		case <-r.Context().Done():
			return
		case ev := <-events:
			name, payload := "snapshot", any(ev.Snapshot)
			if ev.Err != nil {
				name, payload = "error", errorResponse{Error: ev.Err.Error()}
			}
			b, err := json.Marshal(payload)
			if err != nil {
				slog.Error("failed to encode snapshot event", slog.Any("error", err))
				return
			}
			if _, err := w.Write([]byte("event: " + name + "\ndata: ")); err != nil {
				return
			}
			if _, err := w.Write(b); err != nil {
				return
			}
			if _, err := w.Write([]byte("\n\n")); err != nil {
				return
			}
			flusher.Flush()
		}
	}
}

func (h *HandlerImpl) HealthHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Warn("failed to write response", slog.Any("error", err))
	}
}
