// internal/repository/search_index.go
package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"

	"ai-readiness-workers/internal/scoring"
)

// occupationDocument is the search-occupations source document.
type occupationDocument struct {
	Name               string  `json:"name"`
	Description        string  `json:"description,omitempty"`
	AIEnhancementScore float64 `json:"aiEnhancementScore"`
	JobGrowthRate      float64 `json:"jobGrowthRate"`
}

const occupationMapping = `{
  "mappings": {
    "properties": {
      "name": {"type": "text", "fields": {"keyword": {"type": "keyword"}}},
      "description": {"type": "text"},
      "aiEnhancementScore": {"type": "float"},
      "jobGrowthRate": {"type": "float"}
    }
  }
}`

// IndexOccupations creates index when missing and bulk-upserts occupations
// keyed by name. It returns the number of documents written.
func IndexOccupations(ctx context.Context, es *elasticsearch.Client, index string, occupations []scoring.OccupationRecord) (int, error) {
	exists, err := esapi.IndicesExistsRequest{Index: []string{index}}.Do(ctx, es)
	if err != nil {
		return 0, fmt.Errorf("check index %s: %w", index, err)
	}
	exists.Body.Close()

	if exists.StatusCode == 404 {
		res, err := esapi.IndicesCreateRequest{
			Index: index,
			Body:  bytes.NewReader([]byte(occupationMapping)),
		}.Do(ctx, es)
		if err != nil {
			return 0, fmt.Errorf("create index %s: %w", index, err)
		}
		defer res.Body.Close()
		if res.IsError() {
			return 0, fmt.Errorf("create index %s: %s", index, res.Status())
		}
	}

	if len(occupations) == 0 {
		return 0, nil
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	for _, o := range occupations {
		meta := map[string]interface{}{"index": map[string]interface{}{"_index": index, "_id": o.Name}}
		if err := enc.Encode(meta); err != nil {
			return 0, err
		}
		if err := enc.Encode(occupationDocument{
			Name:               o.Name,
			Description:        o.Description,
			AIEnhancementScore: o.AIEnhancementScore,
			JobGrowthRate:      o.JobGrowthRate,
		}); err != nil {
			return 0, err
		}
	}

	res, err := esapi.BulkRequest{Body: &buf, Refresh: "true"}.Do(ctx, es)
	if err != nil {
		return 0, fmt.Errorf("bulk index occupations: %w", err)
	}
	defer res.Body.Close()
	if res.IsError() {
		return 0, fmt.Errorf("bulk index occupations: %s", res.Status())
	}

	var bulk struct {
		Errors bool `json:"errors"`
		Items  []map[string]struct {
			Status int `json:"status"`
			Error  *struct {
				Reason string `json:"reason"`
			} `json:"error"`
		} `json:"items"`
	}
	body, err := io.ReadAll(res.Body)
	if err != nil {
		return 0, err
	}
	if err := json.Unmarshal(body, &bulk); err != nil {
		return 0, fmt.Errorf("decode bulk response: %w", err)
	}
	if bulk.Errors {
		for _, item := range bulk.Items {
			for _, op := range item {
				if op.Error != nil {
					return 0, fmt.Errorf("bulk index occupations: %s", op.Error.Reason)
				}
			}
		}
	}
	return len(bulk.Items), nil
}
