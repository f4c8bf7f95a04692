package notiontohtml

import (
	"context"
	"errors"
	"fmt"

	"github.com/guillermoap/notion-to-html/notion"
)

// maxDepth bounds block tree recursion so pathological content cannot
// exhaust the call stack.
const maxDepth = 64

// ErrMaxDepth is returned when a block tree nests deeper than maxDepth.
var ErrMaxDepth = errors.New("block tree exceeds maximum nesting depth")

// assemble turns the flat child list of blockID into a tree. Blocks
// are processed in returned order with a single list anchor: a
// contiguous run of numbered list items sharing a parent collapses
// into the first item's sibling list. Children are assembled
// depth-first; any fetch failure propagates unchanged.
func (s *Service) assemble(ctx context.Context, blockID string, depth int) ([]*Block, error) {
	if depth >= maxDepth {
		return nil, fmt.Errorf("%w: block %s at depth %d", ErrMaxDepth, blockID, depth)
	}

	list, err := s.fetchBlockChildren(ctx, blockID)
	if err != nil {
		return nil, err
	}

	var result []*Block
	anchor := -1
	for _, raw := range list.Results {
		raw, err := s.refreshExpiredMedia(ctx, raw)
		if err != nil {
			return nil, err
		}
		block := NewBlock(raw)

		absorbed := false
		if raw.Type == notion.TypeNumberedListItem {
			if anchor >= 0 && anchor != len(result) && sameListGroup(result[anchor], block) {
				result[anchor].Siblings = append(result[anchor].Siblings, block)
				absorbed = true
			} else {
				anchor = len(result)
			}
		} else {
			anchor = -1
		}

		if raw.HasChildren {
			children, err := s.assemble(ctx, raw.ID, depth+1)
			if err != nil {
				return nil, err
			}
			block.Children = children
		}

		if !absorbed {
			result = append(result, block)
		}
	}
	return result, nil
}

// sameListGroup reports whether two blocks share type and parent, the
// condition for collapsing them into one sibling group.
func sameListGroup(anchor, b *Block) bool {
	return anchor.Type() == b.Type() && anchor.Parent() == b.Parent()
}

// refreshExpiredMedia re-fetches a media block whose hosted file URL
// has expired. Stale timed URLs must never reach the renderer. The
// re-fetch bypasses the cache.
func (s *Service) refreshExpiredMedia(ctx context.Context, raw notion.Block) (notion.Block, error) {
	media := mediaFile(raw)
	if media == nil || media.ExpiryTime.IsZero() || media.ExpiryTime.After(s.now()) {
		return raw, nil
	}

	s.log.Debug().Str("block_id", raw.ID).Time("expired_at", media.ExpiryTime).Msg("refreshing expired media url")
	fresh, err := s.client.GetBlock(ctx, raw.ID)
	if err != nil {
		return notion.Block{}, fmt.Errorf("failed to refresh block %s: %w", raw.ID, err)
	}
	return *fresh, nil
}

// mediaFile returns the hosted file descriptor of a media-bearing
// block, or nil when the block carries none.
func mediaFile(raw notion.Block) *notion.FileData {
	switch raw.Type {
	case notion.TypeImage:
		if raw.Image != nil {
			return raw.Image.File
		}
	case notion.TypeVideo:
		if raw.Video != nil {
			return raw.Video.File
		}
	case notion.TypeEmbed:
		if raw.Embed != nil {
			return raw.Embed.File
		}
	}
	return nil
}
