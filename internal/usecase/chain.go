package usecase

import (
	"context"

	"github.com/totegamma/logistics-backend/internal/domain"
)

// Node is the part of a record the ownership walk needs.
type Node struct {
	Kind     domain.Kind
	ID       string
	ParentID string
}

// NodeResolver fetches a node by kind and id, returning domain.NotFound
// for the kind when it does not exist.
type NodeResolver interface {
	Resolve(ctx context.Context, kind domain.Kind, id string) (Node, error)
}

// Link is one expected ancestor: the record of Kind with ID.
type Link struct {
	Kind domain.Kind
	ID   string
}

// ChainWalker checks that a record really sits under the ancestors a
// request names.
type ChainWalker struct {
	resolver NodeResolver
}

func NewChainWalker(resolver NodeResolver) *ChainWalker {
	return &ChainWalker{resolver: resolver}
}

// Verify fetches the leaf and walks ancestors from nearest to farthest.
// A missing ancestor fails with its NotFound before its link is compared;
// a link that points elsewhere fails with NotInParent. The walk stops at
// the first failure.
func (w *ChainWalker) Verify(ctx context.Context, leaf domain.Kind, leafID string, ancestors ...Link) (Node, error) {
	node, err := w.resolver.Resolve(ctx, leaf, leafID)
	if err != nil {
		return Node{}, err
	}

	current := node
	for _, link := range ancestors {
		parent, err := w.resolver.Resolve(ctx, link.Kind, link.ID)
		if err != nil {
			return Node{}, err
		}
		if current.ParentID != parent.ID {
			return Node{}, domain.NotInParent(current.Kind, link.Kind, current.ID)
		}
		current = parent
	}

	return node, nil
}

// LocationChain lists the ancestors of a location in tree.
func LocationChain(tree domain.PartyTree, partyID string) []Link {
	return []Link{{Kind: tree.Root, ID: partyID}}
}

// ContactChain lists the ancestors of a contact in tree.
func ContactChain(tree domain.PartyTree, partyID, locationID string) []Link {
	return []Link{
		{Kind: tree.Location, ID: locationID},
		{Kind: tree.Root, ID: partyID},
	}
}
