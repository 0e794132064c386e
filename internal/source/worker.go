// Package source implements catalog.Source over the Cloudflare D1 worker and
// over a local SQLite mirror of it.
package source

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"americanclave/pkg/models"
)

// DefaultWorkerURL is the production D1 worker.
const DefaultWorkerURL = "https://d1-worker.americanclaveuser.workers.dev"

// Worker reads the catalog from the D1 worker's JSON endpoints:
//
//	GET {BaseURL}/albums                      [album, ...]
//	GET {BaseURL}/albums/{id}                 [album] or album, 404 when unknown
//	GET {BaseURL}/albums/{id}/player-songs    [junction row, ...]
//	GET {BaseURL}/players                     [player, ...]
//
// Records are decoded with json.Number so ids survive untouched; their field
// shapes are left for the fields package to sort out.
type Worker struct {
	BaseURL string
	Client  *http.Client
}

// NewWorker creates a Worker with its own HTTP client.
func NewWorker(baseURL string, timeout time.Duration) *Worker {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Worker{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Client: &http.Client{
			Timeout: timeout,
		},
	}
}

func (w *Worker) Name() string {
	return "worker"
}

// get fetches path and returns the body, or found=false on 404.
func (w *Worker) get(ctx context.Context, path string) (body []byte, found bool, err error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, w.BaseURL+path, nil)
	if err != nil {
		return nil, false, fmt.Errorf("worker: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := w.Client.Do(req)
	if err != nil {
		return nil, false, fmt.Errorf("worker: do request: %w", err)
	}
	defer resp.Body.Close()

	body, err = io.ReadAll(resp.Body)
	if err != nil {
		return nil, false, fmt.Errorf("worker: read body: %w", err)
	}
	if resp.StatusCode == http.StatusNotFound {
		return nil, false, nil
	}
	if resp.StatusCode != http.StatusOK {
		log.Printf("[source] worker GET %s: status %d", path, resp.StatusCode)
		return nil, false, fmt.Errorf("worker: GET %s: status %d: %s", path, resp.StatusCode, strings.TrimSpace(string(body)))
	}
	return body, true, nil
}

func (w *Worker) list(ctx context.Context, path string) ([]models.RawRecord, error) {
	body, found, err := w.get(ctx, path)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("worker: GET %s: status 404", path)
	}
	recs, err := decodeRecords(body)
	if err != nil {
		return nil, fmt.Errorf("worker: decode %s: %w", path, err)
	}
	return recs, nil
}

func (w *Worker) ListAlbums(ctx context.Context) ([]models.RawRecord, error) {
	return w.list(ctx, "/albums")
}

func (w *Worker) ListPlayers(ctx context.Context) ([]models.RawRecord, error) {
	return w.list(ctx, "/players")
}

// GetAlbum returns (nil, nil) on 404 and on an empty array.
func (w *Worker) GetAlbum(ctx context.Context, id int64) (models.RawRecord, error) {
	path := "/albums/" + strconv.FormatInt(id, 10)
	body, found, err := w.get(ctx, path)
	if err != nil || !found {
		return nil, err
	}
	recs, err := decodeRecords(body)
	if err != nil {
		return nil, fmt.Errorf("worker: decode %s: %w", path, err)
	}
	if len(recs) == 0 {
		return nil, nil
	}
	return recs[0], nil
}

// ListAlbumPlayers treats 404 as an album without players.
func (w *Worker) ListAlbumPlayers(ctx context.Context, albumID int64) ([]models.RawRecord, error) {
	path := "/albums/" + strconv.FormatInt(albumID, 10) + "/player-songs"
	body, found, err := w.get(ctx, path)
	if err != nil {
		return nil, err
	}
	if !found {
		return []models.RawRecord{}, nil
	}
	recs, err := decodeRecords(body)
	if err != nil {
		return nil, fmt.Errorf("worker: decode %s: %w", path, err)
	}
	return recs, nil
}

// Ping checks that the worker answers at all.
func (w *Worker) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, w.BaseURL+"/albums", nil)
	if err != nil {
		return fmt.Errorf("worker: build request: %w", err)
	}
	resp, err := w.Client.Do(req)
	if err != nil {
		return fmt.Errorf("worker: ping: %w", err)
	}
	resp.Body.Close()
	if resp.StatusCode >= http.StatusInternalServerError {
		return fmt.Errorf("worker: ping: status %d", resp.StatusCode)
	}
	return nil
}

// decodeRecords accepts a JSON array of objects or a single object.
// Non-object array elements are dropped.
func decodeRecords(data []byte) ([]models.RawRecord, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	out := []models.RawRecord{}
	switch t := v.(type) {
	case []any:
		for _, item := range t {
			if m, ok := item.(map[string]any); ok {
				out = append(out, models.RawRecord(m))
			}
		}
	case map[string]any:
		out = append(out, models.RawRecord(t))
	case nil:
	default:
		return nil, fmt.Errorf("unexpected JSON %T", v)
	}
	return out, nil
}

// decodeRecord decodes one stored record.
func decodeRecord(data string) (models.RawRecord, error) {
	dec := json.NewDecoder(strings.NewReader(data))
	dec.UseNumber()
	var rec models.RawRecord
	if err := dec.Decode(&rec); err != nil {
		return nil, err
	}
	return rec, nil
}
