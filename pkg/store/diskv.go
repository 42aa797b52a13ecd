package store

import (
	"context"
	"encoding/json"
	"os"

	"github.com/peterbourgon/diskv/v3"

	"tableflip.dev/ambit/pkg/state"
)

const snapshotKey = "state"

// Persistence is the durable-store contract: it accepts a full-state
// snapshot and later supplies one back. Saves are whole-document overwrites,
// so the last writer wins.
type Persistence interface {
	Load(ctx context.Context) (*state.AppState, error)
	Save(st *state.AppState) error
}

// Load creates a Persistence backed by diskv using the provided config.
func Load(cfg Config) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	return &persistence{d: diskv.New(diskv.Options{
		BasePath:     basePath,
		Transform:    func(string) []string { return nil },
		CacheSizeMax: 1024 * 1024, // 1MB
	})}, nil
}

type persistence struct {
	d *diskv.Diskv
}

func (p *persistence) Load(_ context.Context) (*state.AppState, error) {
	if !p.d.Has(snapshotKey) {
		return state.New(), nil
	}
	raw, err := p.d.Read(snapshotKey)
	if err != nil {
		if os.IsNotExist(err) {
			return state.New(), nil
		}
		return nil, err
	}
	st := &state.AppState{}
	if err := json.Unmarshal(raw, st); err != nil {
		return nil, err
	}
	st.Normalize()
	return st, nil
}

func (p *persistence) Save(st *state.AppState) error {
	data, err := json.Marshal(st)
	if err != nil {
		return err
	}
	return p.d.Write(snapshotKey, data)
}
