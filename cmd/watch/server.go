package watch

import (
	"fmt"
	"net/http"
	"sync"
)

// broker manages SSE client connections and broadcasts graph JSON snapshots.
type broker struct {
	mu      sync.Mutex
	clients map[chan string]struct{}
	latest  string
}

func newBroker() *broker {
	return &broker{
		clients: make(map[chan string]struct{}),
	}
}

func (b *broker) subscribe() chan string {
	ch := make(chan string, 1)
	b.mu.Lock()
	b.clients[ch] = struct{}{}
	if b.latest != "" {
		ch <- b.latest
	}
	b.mu.Unlock()
	return ch
}

func (b *broker) unsubscribe(ch chan string) {
	b.mu.Lock()
	delete(b.clients, ch)
	close(ch)
	b.mu.Unlock()
}

func (b *broker) publish(graphJSON string) {
	b.mu.Lock()
	b.latest = graphJSON
	for ch := range b.clients {
		// Evict an undelivered snapshot so a slow subscriber sees the
		// newest one, not the oldest.
		select {
		case <-ch:
		default:
		}
		select {
		case ch <- graphJSON:
		default:
		}
	}
	b.mu.Unlock()
}

func (b *broker) snapshot() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.latest
}

// newServer serves the current graph snapshot at /graph and a live JSON
// stream at /events. The viewer is a separate application; only the graph
// model crosses this boundary.
func newServer(b *broker, port int) *http.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/graph", handleSnapshot(b))
	mux.HandleFunc("/events", handleSSE(b))

	return &http.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: mux,
	}
}

func handleSnapshot(b *broker) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Access-Control-Allow-Origin", "*")
		latest := b.snapshot()
		if latest == "" {
			latest = `{"nodes":[],"edges":[]}`
		}
		if _, err := w.Write([]byte(latest)); err != nil {
			http.Error(w, "failed to write graph", http.StatusInternalServerError)
		}
	}
}

func handleSSE(b *broker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		flusher, ok := w.(http.Flusher)
		if !ok {
			http.Error(w, "streaming unsupported", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "text/event-stream")
		w.Header().Set("Cache-Control", "no-cache")
		w.Header().Set("Connection", "keep-alive")
		w.Header().Set("Access-Control-Allow-Origin", "*")

		ch := b.subscribe()
		defer b.unsubscribe(ch)

		for {
			select {
			case <-r.Context().Done():
				return
			case graphJSON, open := <-ch:
				if !open {
					return
				}
				if err := writeSSE(w, graphJSON); err != nil {
					return
				}
				flusher.Flush()
			}
		}
	}
}

// writeSSE frames a payload as one SSE message. Payload lines each get a
// "data:" prefix so multi-line JSON survives the framing.
func writeSSE(w http.ResponseWriter, payload string) error {
	if _, err := fmt.Fprintf(w, "event: graph\n"); err != nil {
		return err
	}
	for _, line := range splitLines(payload) {
		if _, err := fmt.Fprintf(w, "data: %s\n", line); err != nil {
			return err
		}
	}
	_, err := fmt.Fprint(w, "\n")
	return err
}

func splitLines(s string) []string {
	var lines []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			lines = append(lines, s[start:i])
			start = i + 1
		}
	}
	return append(lines, s[start:])
}
