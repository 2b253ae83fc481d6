package workers

import (
	"context"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/birdfeed/birdfeed/domain"
)

// revalidateWorker batches profile-page regeneration requests and fires
// them at the configured revalidation endpoint. Delivery is best
// effort: a full queue drops tasks and failed requests are only logged.
type revalidateWorker struct {
	endpoint string
	client   *http.Client
	ch       chan string
}

var _ domain.RevalidateWorker = (*revalidateWorker)(nil)

func NewRevalidateWorker(endpoint string) *revalidateWorker {
	return &revalidateWorker{
		endpoint: endpoint,
		client:   &http.Client{Timeout: 10 * time.Second},
		ch:       make(chan string, 1024),
	}
}

// Send enqueues regeneration of the given user's profile page.
func (w *revalidateWorker) Send(userID string) {
	select {
	case w.ch <- userID:
	default:
		logrus.Info("RevalidateWorker's channel is full, task dropped")
	}
}

func (w *revalidateWorker) Start(ctx context.Context) {
	ticker := time.NewTicker(1 * time.Second)
	defer ticker.Stop()

	pending := make(map[string]struct{})
	for {
		select {
		case userID := <-w.ch:
			pending[userID] = struct{}{}
		case <-ticker.C:
			w.flush(ctx, pending)
			pending = make(map[string]struct{})
		case <-ctx.Done():
			logrus.Info("shutting down RevalidateWorker, flushing remaining tasks...")
			w.flush(context.Background(), pending)
			return
		}
	}
}

func (w *revalidateWorker) flush(ctx context.Context, pending map[string]struct{}) {
	if w.endpoint == "" {
		return
	}
	for userID := range pending {
		url := w.endpoint + "/profiles/" + userID
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			logrus.Errorf("failed to build revalidation request for %s: %v", userID, err)
			continue
		}
		resp, err := w.client.Do(req)
		if err != nil {
			logrus.Warnf("revalidation request for %s failed: %v", userID, err)
			continue
		}
		resp.Body.Close()
		if resp.StatusCode >= http.StatusBadRequest {
			logrus.Warnf("revalidation for %s returned %d", userID, resp.StatusCode)
		}
	}
}
