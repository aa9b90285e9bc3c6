// Package light computes per-voxel light for chunked voxel worlds: sunlight
// plus three independent colored torch channels, spread by multi-source BFS
// flood fill over a padded Space snapshot.
package light

import (
	"github.com/voxelworks/voxlight/internal/blocks"
	"github.com/voxelworks/voxlight/internal/world"
)

// Channel selects one of the four independent light channels.
type Channel uint8

const (
	Sunlight Channel = iota
	Red
	Green
	Blue
)

func (c Channel) String() string {
	switch c {
	case Sunlight:
		return "sunlight"
	case Red:
		return "red"
	case Green:
		return "green"
	case Blue:
		return "blue"
	}
	return "unknown"
}

// accessor is a channel's read/write pair on a Space, resolved once per flood
// call instead of branching per voxel.
type accessor struct {
	get func(s *world.Space, vx, vy, vz int) int
	set func(s *world.Space, vx, vy, vz, level int)
}

func (c Channel) access() accessor {
	switch c {
	case Red:
		return accessor{(*world.Space).GetRedLight, (*world.Space).SetRedLight}
	case Green:
		return accessor{(*world.Space).GetGreenLight, (*world.Space).SetGreenLight}
	case Blue:
		return accessor{(*world.Space).GetBlueLight, (*world.Space).SetBlueLight}
	default:
		return accessor{(*world.Space).GetSunlight, (*world.Space).SetSunlight}
	}
}

// emission returns the block's emission strength on this channel. Sunlight is
// never block-emitted.
func (c Channel) emission(b blocks.Block) int {
	switch c {
	case Red:
		return b.RedLight
	case Green:
		return b.GreenLight
	case Blue:
		return b.BlueLight
	}
	return 0
}
