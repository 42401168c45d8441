package mygit

import (
	"context"
	"fmt"
	"os"

	"github.com/sourcegraph/conc/pool"
)

// DefaultConcurrency bounds the number of files HashFiles works on at once.
const DefaultConcurrency = 4

// HashFiles hashes the content of each file as an object of the given
// kind. When w is non-nil every object is also persisted through it.
// Digests are returned in the order of paths; the first failure cancels
// the remaining work.
func HashFiles(ctx context.Context, w Writer, kind Kind, paths []string) ([]Digest, error) {
	digests := make([]Digest, len(paths))

	p := pool.New().WithMaxGoroutines(DefaultConcurrency).WithContext(ctx).WithCancelOnError().WithFirstError()

	for i, path := range paths {
		p.Go(func(ctx context.Context) error {
			if err := ctx.Err(); err != nil {
				return err
			}

			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("hash %s: %w", path, err)
			}

			if w == nil {
				digests[i] = HashObject(kind, data)
				return nil
			}

			d, err := w.Write(kind, data)
			if err != nil {
				return fmt.Errorf("hash %s: %w", path, err)
			}
			digests[i] = d
			return nil
		})
	}

	if err := p.Wait(); err != nil {
		return nil, err
	}
	return digests, nil
}
