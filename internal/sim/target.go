package sim

// TargetContext is the per-frame world view the targeting strategies read.
// ChaserTile is needed by the flanking strategy, which reflects a point
// ahead of the player through the chaser's position.
type TargetContext struct {
	PlayerTile TileCoord
	PlayerDir  Dir
	ChaserTile TileCoord
}

// TargetStrategy computes a ghost's chase-mode target tile. One fixed
// variant is bound to each ghost at construction; scatter, frightened, and
// dead movement never consult it. Targets may fall outside the grid.
type TargetStrategy interface {
	ChaseTarget(g *Ghost, ctx TargetContext) TileCoord
}

// directTargeting heads straight for the player's tile.
type directTargeting struct{}

func (directTargeting) ChaseTarget(_ *Ghost, ctx TargetContext) TileCoord {
	return ctx.PlayerTile
}

// ambushTargeting aims four tiles ahead of the player's facing.
type ambushTargeting struct{}

func (ambushTargeting) ChaseTarget(_ *Ghost, ctx TargetContext) TileCoord {
	dx, dy := ctx.PlayerDir.Delta()
	return TileCoord{
		Col: ctx.PlayerTile.Col + dx*4,
		Row: ctx.PlayerTile.Row + dy*4,
	}
}

// flankTargeting reflects the point two tiles ahead of the player through
// the chaser's tile: target = ahead + (ahead - chaser). The result often
// leaves the grid; distance comparisons tolerate that.
type flankTargeting struct{}

func (flankTargeting) ChaseTarget(_ *Ghost, ctx TargetContext) TileCoord {
	dx, dy := ctx.PlayerDir.Delta()
	ahead := TileCoord{
		Col: ctx.PlayerTile.Col + dx*2,
		Row: ctx.PlayerTile.Row + dy*2,
	}
	return TileCoord{
		Col: ahead.Col + (ahead.Col - ctx.ChaserTile.Col),
		Row: ahead.Row + (ahead.Row - ctx.ChaserTile.Row),
	}
}

// shyRetreatDistance is the tile distance below which the shy ghost gives
// up the chase and heads for its scatter corner.
const shyRetreatDistance = 8.0

// shyTargeting pursues the player only from afar: within shyRetreatDistance
// (Euclidean, ghost tile to player tile) it retreats to its own corner.
type shyTargeting struct{}

func (shyTargeting) ChaseTarget(g *Ghost, ctx TargetContext) TileCoord {
	col, row := g.Tile()
	if tileDistance(col, row, ctx.PlayerTile) < shyRetreatDistance {
		return g.scatterCorner
	}
	return ctx.PlayerTile
}
