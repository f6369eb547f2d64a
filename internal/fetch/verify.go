package fetch

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/IshanviChauhan/Interview-Bot/internal/types"
)

// DefaultVerifyConcurrency bounds parallel link checks.
const DefaultVerifyConcurrency = 4

// VerifiedResource is one suggested resource after a link check.
type VerifiedResource struct {
	types.Resource
	// Reachable is true when the URL answered 200. Resources without a
	// URL are left unverified and reported as reachable.
	Reachable  bool
	StatusCode int
}

// Verifier checks suggested-resource links and fills missing titles from
// the fetched pages.
type Verifier struct {
	opts        *Options
	concurrency int
	log         *zap.Logger
}

// NewVerifier returns a verifier with default fetch options.
func NewVerifier(logger *zap.Logger) *Verifier {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Verifier{
		opts:        DefaultOptions(),
		concurrency: DefaultVerifyConcurrency,
		log:         logger,
	}
}

// Verify checks every resource with a URL concurrently. Output order
// matches input order. A fetch failure marks the resource unreachable
// but never fails the whole batch.
func (v *Verifier) Verify(ctx context.Context, resources []types.Resource) []VerifiedResource {
	verified := make([]VerifiedResource, len(resources))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(v.concurrency)

	for i, r := range resources {
		verified[i] = VerifiedResource{Resource: r}

		if r.URL == "" {
			verified[i].Reachable = true
			continue
		}

		g.Go(func() error {
			result, err := URL(ctx, r.URL, v.opts)
			if result != nil {
				verified[i].StatusCode = result.StatusCode
			}
			if err != nil {
				v.log.Warn("resource link unreachable",
					zap.String("url", r.URL),
					zap.Error(err))
				return nil
			}

			verified[i].Reachable = true
			if verified[i].Title == "" {
				if title, err := ExtractTitle(result.HTML); err == nil && title != "" {
					verified[i].Title = title
				}
			}
			return nil
		})
	}

	// workers only return nil; Wait is for completion, not errors
	_ = g.Wait()
	return verified
}
