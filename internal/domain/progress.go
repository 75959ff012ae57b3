package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Progress is the per-user checklist: task and paywall keys mapped to a
// completion flag. Insertion order defines the task sequence, so a plain
// map[string]bool is not enough; keys are kept in the order they first
// appeared in the stored JSON object.
type Progress struct {
	keys []string
	done map[string]bool
}

func NewProgress() Progress {
	return Progress{done: make(map[string]bool)}
}

// ProgressFromPairs builds a Progress in the given key order. Used by tests
// and by the default checklist template.
func ProgressFromPairs(pairs ...ProgressPair) Progress {
	p := NewProgress()
	for _, pair := range pairs {
		p.Set(pair.Key, pair.Done)
	}
	return p
}

type ProgressPair struct {
	Key  string
	Done bool
}

// Keys returns the checklist keys in sequence order. The returned slice is
// shared; callers must not mutate it.
func (p *Progress) Keys() []string {
	return p.keys
}

func (p *Progress) Get(key string) (done bool, ok bool) {
	done, ok = p.done[key]
	return done, ok
}

func (p *Progress) Done(key string) bool {
	return p.done[key]
}

// Set records a flag, appending the key to the sequence on first sight.
func (p *Progress) Set(key string, done bool) {
	if p.done == nil {
		p.done = make(map[string]bool)
	}
	if _, ok := p.done[key]; !ok {
		p.keys = append(p.keys, key)
	}
	p.done[key] = done
}

// Index returns the position of key in sequence order, or -1.
func (p *Progress) Index(key string) int {
	for i, k := range p.keys {
		if k == key {
			return i
		}
	}
	return -1
}

func (p *Progress) Len() int {
	return len(p.keys)
}

// CountDone returns how many keys are complete.
func (p *Progress) CountDone() int {
	n := 0
	for _, k := range p.keys {
		if p.done[k] {
			n++
		}
	}
	return n
}

// Reset sets every flag back to false, keeping the sequence intact.
func (p *Progress) Reset() {
	for _, k := range p.keys {
		p.done[k] = false
	}
}

// MarshalJSON writes the flat key→bool object in sequence order.
func (p Progress) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range p.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		name, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(name)
		buf.WriteByte(':')
		if p.done[k] {
			buf.WriteString("true")
		} else {
			buf.WriteString("false")
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads a flat JSON object preserving key order. encoding/json
// maps lose ordering, so the object is walked token by token.
func (p *Progress) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("progress: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("progress: expected object, got %v", tok)
	}

	*p = NewProgress()
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("progress: %w", err)
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("progress: expected string key, got %v", keyTok)
		}
		valTok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("progress: %w", err)
		}
		val, ok := valTok.(bool)
		if !ok {
			return fmt.Errorf("progress: expected bool for %q, got %v", key, valTok)
		}
		p.Set(key, val)
	}

	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("progress: %w", err)
	}
	return nil
}
