package headsum

import (
	"context"
	"io"
	"os"

	"github.com/pkg/errors"

	"github.com/zeebo/headsum/internal/consts"
)

// MaxPrefix is the number of leading bytes of a file that contribute to its
// fingerprint.
const MaxPrefix = consts.MaxPrefix

// Result is the outcome of fingerprinting one input. Exactly one of Digest and
// Err is set.
type Result struct {
	Path   string
	Digest string
	Err    error
}

// DigestFirstMebibyte reads at most MaxPrefix bytes from r and returns the
// hex digest of exactly those bytes. Inputs that share their first MaxPrefix
// bytes alias to the same digest.
//
// A failed read is returned as an error wrapping the cause; no digest is
// produced for a partial read. If ctx is done by the time the read finishes
// the result is discarded and ctx.Err() is returned.
func DigestFirstMebibyte(ctx context.Context, r io.Reader) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	buf, err := io.ReadAll(io.LimitReader(r, MaxPrefix))
	if err != nil {
		return "", errors.Wrap(err, "read prefix")
	}

	if err := ctx.Err(); err != nil {
		return "", err
	}
	return HexSum(buf), nil
}

// DigestFile opens path and fingerprints its first MaxPrefix bytes.
func DigestFile(ctx context.Context, path string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	fh, err := os.Open(path)
	if err != nil {
		return "", errors.WithStack(err)
	}
	defer func() { _ = fh.Close() }()

	return DigestFirstMebibyte(ctx, fh)
}

// Go runs DigestFirstMebibyte on its own goroutine. The returned channel
// receives exactly one Result and is never closed. Callers that lose interest
// may stop receiving; the goroutine does not block on delivery.
func Go(ctx context.Context, r io.Reader) <-chan Result {
	out := make(chan Result, 1)
	go func() {
		digest, err := DigestFirstMebibyte(ctx, r)
		out <- Result{Digest: digest, Err: err}
	}()
	return out
}
