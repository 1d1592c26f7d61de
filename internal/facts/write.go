package facts

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Fact is one ground atom: a relation applied to constant arguments.
type Fact struct {
	Relation string   `yaml:"relation"`
	Args     []string `yaml:"args"`
}

// factFile is the YAML document shape accepted by LoadYAML.
type factFile struct {
	Facts []Fact `yaml:"facts"`
}

// InsertFact inserts one fact into the store.
// Uses ON CONFLICT DO NOTHING for idempotency - re-inserting the same
// fact is silently ignored, so loading a fixture twice is safe.
func (s *Store) InsertFact(ctx context.Context, f Fact) error {
	if f.Relation == "" {
		return fmt.Errorf("insert fact: empty relation")
	}

	argsJSON, err := json.Marshal(f.Args)
	if err != nil {
		return fmt.Errorf("insert fact: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO facts (relation, arity, args)
		VALUES (?, ?, ?)
		ON CONFLICT DO NOTHING
	`,
		f.Relation,
		len(f.Args),
		string(argsJSON),
	)
	if err != nil {
		return fmt.Errorf("insert fact: %w", err)
	}

	return nil
}

// LoadYAML reads a fact fixture document and inserts every fact it
// lists. Returns the number of facts processed. The document shape:
//
//	facts:
//	  - relation: Inheritance
//	    args: [Allen, man]
//
// Loading is idempotent: facts already present are skipped.
func (s *Store) LoadYAML(ctx context.Context, r io.Reader) (int, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return 0, fmt.Errorf("load facts: %w", err)
	}

	var doc factFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return 0, fmt.Errorf("load facts: parse yaml: %w", err)
	}

	for i, f := range doc.Facts {
		if err := s.InsertFact(ctx, f); err != nil {
			return i, fmt.Errorf("load facts: fact %d: %w", i, err)
		}
	}

	return len(doc.Facts), nil
}
