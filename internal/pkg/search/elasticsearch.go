package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/3Eeeecho/go-fileportal/internal/models"
	"github.com/3Eeeecho/go-fileportal/internal/pkg/logger"
	"github.com/elastic/go-elasticsearch/v8"
	"go.uber.org/zap"
)

type ESIndexer struct {
	client *elasticsearch.Client
	index  string
}

var _ Indexer = (*ESIndexer)(nil)

func NewESIndexer(client *elasticsearch.Client, index string) *ESIndexer {
	return &ESIndexer{client: client, index: index}
}

func (e *ESIndexer) IndexLog(ctx context.Context, entry *models.FileLog) error {
	body, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("marshal file log: %w", err)
	}
	res, err := e.client.Index(
		e.index,
		bytes.NewReader(body),
		e.client.Index.WithContext(ctx),
		e.client.Index.WithDocumentID(strconv.FormatUint(entry.ID, 10)),
	)
	if err != nil {
		return fmt.Errorf("index file log: %w", err)
	}
	defer res.Body.Close()
	if res.IsError() {
		return fmt.Errorf("index file log: %s", res.Status())
	}
	logger.Debug("file log indexed", zap.String("index", e.index), zap.Uint64("id", entry.ID))
	return nil
}

type searchResponse struct {
	Hits struct {
		Hits []struct {
			Source models.FileLog `json:"_source"`
		} `json:"hits"`
	} `json:"hits"`
}

func (e *ESIndexer) SearchLogs(ctx context.Context, keyword string, limit int) ([]models.FileLog, error) {
	query := map[string]any{
		"query": map[string]any{
			"multi_match": map[string]any{
				"query":  keyword,
				"fields": []string{"filename", "user_email"},
			},
		},
		"sort": []any{map[string]any{"created_at": map[string]string{"order": "desc"}}},
	}
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(query); err != nil {
		return nil, fmt.Errorf("encode search query: %w", err)
	}

	res, err := e.client.Search(
		e.client.Search.WithContext(ctx),
		e.client.Search.WithIndex(e.index),
		e.client.Search.WithBody(&buf),
		e.client.Search.WithSize(limit),
	)
	if err != nil {
		return nil, fmt.Errorf("search file logs: %w", err)
	}
	defer res.Body.Close()
	if res.IsError() {
		return nil, fmt.Errorf("search file logs: %s", res.Status())
	}

	var parsed searchResponse
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("decode search response: %w", err)
	}
	logs := make([]models.FileLog, 0, len(parsed.Hits.Hits))
	for _, hit := range parsed.Hits.Hits {
		logs = append(logs, hit.Source)
	}
	return logs, nil
}
