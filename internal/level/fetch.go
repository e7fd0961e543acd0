package level

import (
	"fmt"

	getter "github.com/hashicorp/go-getter"
)

// Fetch downloads a level pack into dst. The source string accepts any
// go-getter URL, so packs can live in git repos, plain HTTP archives, or
// local directories:
//
//	git::https://example.com/packs.git//levels
//	https://example.com/levels.zip
//	./assets/levels
func Fetch(dst, src string) error {
	if dst == "" || src == "" {
		return fmt.Errorf("fetch: destination and source are required")
	}
	if err := getter.Get(dst, src); err != nil {
		return fmt.Errorf("fetch level pack %s: %w", src, err)
	}
	return nil
}
