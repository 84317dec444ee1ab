// internal/workers/data-access/search-occupations/query.go
package searchoccupations

import (
	"bytes"
	"encoding/json"

	"github.com/elastic/go-elasticsearch/v8/esapi"
)

func buildSearchRequest(index, query string, size int) (*esapi.SearchRequest, error) {
	body := map[string]interface{}{
		"query": map[string]interface{}{
			"multi_match": map[string]interface{}{
				"query":     query,
				"fields":    []string{"name^3", "description"},
				"type":      "best_fields",
				"fuzziness": "AUTO",
			},
		},
		"sort": []interface{}{
			"_score",
			map[string]interface{}{"name.keyword": map[string]interface{}{"order": "asc", "unmapped_type": "keyword"}},
		},
	}

	data, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}

	return &esapi.SearchRequest{
		Index:          []string{index},
		Body:           bytes.NewReader(data),
		Size:           &size,
		TrackTotalHits: true,
	}, nil
}

type searchResponse struct {
	Took int64 `json:"took"`
	Hits struct {
		Total struct {
			Value int64 `json:"value"`
		} `json:"total"`
		MaxScore *float64 `json:"max_score"`
		Hits     []struct {
			Score  *float64      `json:"_score"`
			Source OccupationHit `json:"_source"`
		} `json:"hits"`
	} `json:"hits"`
}

func (r *searchResponse) toOutput() *Output {
	out := &Output{
		Occupations: make([]OccupationHit, 0, len(r.Hits.Hits)),
		TotalHits:   r.Hits.Total.Value,
		Took:        r.Took,
	}
	if r.Hits.MaxScore != nil {
		out.MaxScore = *r.Hits.MaxScore
	}
	for _, h := range r.Hits.Hits {
		hit := h.Source
		if h.Score != nil {
			hit.Score = *h.Score
		}
		out.Occupations = append(out.Occupations, hit)
	}
	return out
}
