package itembank

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// bankFile is the on-disk shape of an item bank.
type bankFile struct {
	Subject Subject `json:"subject"`
	Items   []Item  `json:"items"`
}

var (
	compileOnce  sync.Once
	bankSchema   *jsonschema.Schema
	compileError error
)

// compiledBankSchema returns the compiled bank schema, compiling it once.
func compiledBankSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		// The jsonschema library expects a parsed JSON value (any), not
		// raw bytes. Marshal then unmarshal for a clean representation.
		defBytes, err := json.Marshal(bankSchemaDef)
		if err != nil {
			compileError = fmt.Errorf("marshal bank schema: %w", err)
			return
		}
		var defParsed any
		if err := json.Unmarshal(defBytes, &defParsed); err != nil {
			compileError = fmt.Errorf("parse bank schema: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		if err := c.AddResource("schema://item-bank.json", defParsed); err != nil {
			compileError = fmt.Errorf("add bank schema resource: %w", err)
			return
		}
		bankSchema, compileError = c.Compile("schema://item-bank.json")
	})
	return bankSchema, compileError
}

// ParseBank decodes and validates raw item bank JSON for a subject.
// The file shape is schema-validated; individual records that fail
// semantic validation are silently dropped.
func ParseBank(raw []byte, subject Subject) ([]Item, error) {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("invalid bank JSON: %w", err)
	}

	schema, err := compiledBankSchema()
	if err != nil {
		return nil, err
	}
	if err := schema.Validate(parsed); err != nil {
		return nil, fmt.Errorf("bank schema validation: %w", err)
	}

	var file bankFile
	if err := json.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("decode bank: %w", err)
	}
	if file.Subject != subject {
		return nil, fmt.Errorf("bank subject %q does not match requested %q", file.Subject, subject)
	}

	items := make([]Item, 0, len(file.Items))
	seen := make(map[string]bool)
	for i := range file.Items {
		item := file.Items[i]
		if !ValidItem(&item, subject) {
			continue
		}
		if seen[item.ID] {
			continue
		}
		seen[item.ID] = true
		items = append(items, item)
	}
	return items, nil
}

// FileProvider loads item banks from JSON files, one file per subject.
type FileProvider struct {
	// Paths maps each subject to its bank file.
	Paths map[Subject]string
}

// LoadItemBank reads and validates the bank file for a subject.
func (p *FileProvider) LoadItemBank(subject Subject) ([]Item, error) {
	path, ok := p.Paths[subject]
	if !ok {
		return nil, fmt.Errorf("no bank file configured for subject %q", subject)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read bank file: %w", err)
	}
	return ParseBank(raw, subject)
}

// SeedProvider serves the built-in item banks.
type SeedProvider struct{}

// LoadItemBank returns the embedded bank for a subject.
func (SeedProvider) LoadItemBank(subject Subject) ([]Item, error) {
	items, ok := seedBanks[subject]
	if !ok {
		return nil, fmt.Errorf("no seed bank for subject %q", subject)
	}
	out := make([]Item, 0, len(items))
	for i := range items {
		item := items[i]
		if ValidItem(&item, subject) {
			out = append(out, item)
		}
	}
	return out, nil
}
