package mirror

import (
	"bytes"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"folio/models"
)

// Pusher mirrors the document to a remote blob endpoint after each local
// mutation. Pushes are fire-and-forget: the local store is the source of
// truth and the remote is at best an eventually-consistent copy, so a failed
// push is only logged.
type Pusher struct {
	url    string
	client *http.Client
}

// NewPusher returns nil when no remote URL is configured; a nil Pusher is
// safe to call.
func NewPusher(url string) *Pusher {
	if url == "" {
		return nil
	}
	return &Pusher{
		url:    url,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

func (p *Pusher) Push(data models.PortfolioData) {
	if p == nil {
		return
	}
	go func() {
		raw, err := json.Marshal(data)
		if err != nil {
			log.Printf("mirror push: serializing document: %v", err)
			return
		}
		req, err := http.NewRequest(http.MethodPut, p.url, bytes.NewReader(raw))
		if err != nil {
			log.Printf("mirror push: building request: %v", err)
			return
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := p.client.Do(req)
		if err != nil {
			log.Printf("mirror push: %v", err)
			return
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			log.Printf("mirror push: remote responded %d", resp.StatusCode)
		}
	}()
}
