package store

import (
	"encoding/json"
	"fmt"

	"taskman/internal/models"
)

// codecVersion is bumped whenever the persisted document shape changes.
const codecVersion = 1

// storeDocument is the persisted representation of a full store. Project
// order in the slice is display order; decoding an encoded document must
// reproduce the same projects in the same order.
type storeDocument struct {
	Version  int              `json:"version"`
	Projects []models.Project `json:"projects"`
}

func encodeStore(projects []models.Project) ([]byte, error) {
	doc := storeDocument{
		Version:  codecVersion,
		Projects: projects,
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode store: %w", err)
	}
	return append(data, '\n'), nil
}

func decodeStore(data []byte) ([]models.Project, error) {
	var doc storeDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode store: %w", err)
	}

	if doc.Version != codecVersion {
		return nil, fmt.Errorf("unsupported store version %d", doc.Version)
	}

	seen := make(map[string]bool, len(doc.Projects))
	for _, p := range doc.Projects {
		if p.ID == "" {
			return nil, fmt.Errorf("project %q has no id", p.Name)
		}
		if seen[p.ID] {
			return nil, fmt.Errorf("duplicate project id %s", p.ID)
		}
		seen[p.ID] = true
	}

	return doc.Projects, nil
}
