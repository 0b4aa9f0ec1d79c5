package store

import (
	"encoding/json"
	"fmt"

	"github.com/acpilot/acpilot/internal/rules"
)

// DocumentVersion is the version of the stored document layout.
const DocumentVersion = 1

// Document is the persisted form of the rule store.
type Document struct {
	Rules   []rules.Rule `json:"rules"`
	Count   int          `json:"count"`
	Version int          `json:"version"`
}

func encode(r []rules.Rule) ([]byte, error) {
	return json.Marshal(Document{Rules: r, Count: len(r), Version: DocumentVersion})
}

// Decode returns the rules held by a stored document.
func Decode(body []byte) ([]rules.Rule, error) {
	if len(body) == 0 {
		return nil, ErrNoDocument
	}
	var doc Document
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorruptDocument, err)
	}
	if doc.Version != DocumentVersion {
		return nil, fmt.Errorf("%w: unsupported version %d", ErrCorruptDocument, doc.Version)
	}
	if len(doc.Rules) == 0 {
		return nil, ErrNoDocument
	}
	ids := make(map[int]struct{}, len(doc.Rules))
	for _, r := range doc.Rules {
		if _, ok := ids[r.ID]; ok || r.ID <= 0 {
			return nil, fmt.Errorf("%w: invalid rule id %d", ErrCorruptDocument, r.ID)
		}
		ids[r.ID] = struct{}{}
		if err := r.Validate(); err != nil {
			return nil, fmt.Errorf("%w: rule %d: %w", ErrCorruptDocument, r.ID, err)
		}
	}
	return doc.Rules, nil
}
