package preimage

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"triecodec/mpt/node"
)

// Hydrate resolves n if it is a Blinded node: it fetches the
// commitment's preimage from oracle and re-invokes node.Decode on the
// result. Any other node kind is returned unchanged. Hydrate never
// recurses past the one node it was given — a decoded child may
// itself be Blinded, and hydrating it is a separate call.
func Hydrate(ctx context.Context, n node.Node, oracle Oracle) (node.Node, error) {
	blinded, ok := n.(node.Blinded)
	if !ok {
		return n, nil
	}

	raw, err := oracle.Get(ctx, blinded.Commitment)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch preimage for %x: %w", blinded.Commitment, err)
	}

	decoded, err := node.Decode(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to decode preimage for %x: %w", blinded.Commitment, err)
	}
	return decoded, nil
}

// HydrateChildren hydrates every Blinded slot of a Branch, or the
// child of an Extension, concurrently via an errgroup, honoring ctx
// for cancellation. Any other node kind is returned unchanged.
func HydrateChildren(ctx context.Context, n node.Node, oracle Oracle) (node.Node, error) {
	switch v := n.(type) {
	case node.Extension:
		child, err := Hydrate(ctx, v.Child, oracle)
		if err != nil {
			return nil, err
		}
		return node.Extension{Prefix: v.Prefix, Child: child}, nil

	case node.Branch:
		hydrated := v.Stack
		g, gctx := errgroup.WithContext(ctx)
		for i := range hydrated {
			i := i
			g.Go(func() error {
				h, err := Hydrate(gctx, hydrated[i], oracle)
				if err != nil {
					return err
				}
				hydrated[i] = h
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
		return node.Branch{Stack: hydrated}, nil

	default:
		return n, nil
	}
}
