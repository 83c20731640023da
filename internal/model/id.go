package model

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"
)

// NovoID generates an opaque unique id: "<prefixo>_<unixMilli>_<hex>".
// Ids are never reused; the random suffix covers ids minted in the same
// millisecond.
func NovoID(prefixo string) string {
	b := make([]byte, 4)
	if _, err := rand.Read(b); err != nil {
		return fmt.Sprintf("%s_%d", prefixo, time.Now().UnixNano())
	}
	return fmt.Sprintf("%s_%d_%s", prefixo, time.Now().UnixMilli(), hex.EncodeToString(b))
}
