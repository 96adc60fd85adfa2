// Package seed holds the default catalog compiled into the binary and
// the first-use seeding of the backing file. The seed data lives in a
// YAML document under catalog/ and is embedded at build time.
package seed

import (
	"embed"
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/rs/zerolog"

	"github.com/jhuntleyit/bookshelf/pkg/books"
	"github.com/jhuntleyit/bookshelf/pkg/constants"
	"github.com/jhuntleyit/bookshelf/pkg/errors"
)

//go:embed catalog/books.yaml
var fs embed.FS

// defaultCatalog is parsed from the embedded YAML once at startup.
var defaultCatalog []books.Seed

func init() {
	data, err := fs.ReadFile("catalog/books.yaml")
	if err != nil {
		panic(fmt.Sprintf("seed: reading embedded catalog: %v", err))
	}
	if err := yaml.Unmarshal(data, &defaultCatalog); err != nil {
		panic(fmt.Sprintf("seed: parsing embedded catalog: %v", err))
	}
}

// Default returns the embedded default catalog in file order.
func Default() []books.Seed {
	out := make([]books.Seed, len(defaultCatalog))
	copy(out, defaultCatalog)
	return out
}

// IfEmpty writes one record per entry to the backing file, ids assigned
// sequentially starting at 1 in list order and every record available,
// iff the file is absent or exactly zero bytes long. A file holding
// only a blank line is left alone. Only the file is written; the caller
// is expected to load it back afterwards. Reports whether it seeded.
//
// Open and write failures are reported to the logger and tolerated.
func IfEmpty(path string, entries []books.Seed, log zerolog.Logger) bool {
	if !fileEmpty(path) {
		return false
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, constants.FilePermissions)
	if err != nil {
		log.Error().Err(errors.WrapIO("seed", path, err)).Msg("Could not open backing file for seeding")
		return false
	}
	defer f.Close()

	for i, entry := range entries {
		line := books.EncodeLine(books.Book{
			ID:     i + 1,
			Title:  entry.Title,
			Author: entry.Author,
		})
		if _, err := fmt.Fprintln(f, line); err != nil {
			log.Error().Err(errors.WrapIO("seed", path, err)).Msg("Could not write seed record")
			return false
		}
	}

	log.Info().Int("count", len(entries)).Str("path", path).Msg("Seeded initial library")
	return true
}

// fileEmpty reports whether the backing file is absent or zero bytes.
func fileEmpty(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return true
	}
	return info.Size() == 0
}
