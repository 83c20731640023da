package kvstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"

	"github.com/peterbourgon/diskv/v3"
)

// Diskv is a Store backed by one file per key under a base directory.
type Diskv struct {
	d *diskv.Diskv
}

func NewDiskv(basePath string) *Diskv {
	return &Diskv{d: diskv.New(diskv.Options{
		BasePath:     basePath,
		CacheSizeMax: 1024 * 1024, // 1MB
	})}
}

func (s *Diskv) Get(ctx context.Context, chave string, out interface{}) (bool, error) {
	raw, err := s.d.Read(chave)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("read %q: %w", chave, err)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return false, fmt.Errorf("decode %q: %w", chave, err)
	}
	return true, nil
}

func (s *Diskv) Set(ctx context.Context, chave string, valor interface{}) error {
	raw, err := json.Marshal(valor)
	if err != nil {
		return fmt.Errorf("encode %q: %w", chave, err)
	}
	if err := s.d.Write(chave, raw); err != nil {
		return fmt.Errorf("write %q: %w", chave, err)
	}
	return nil
}
