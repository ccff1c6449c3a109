package scene

// Default scene proportions and sizes
const (
	DefaultSkyRatio       = 0.5
	DefaultGrassRatio     = 0.3
	DefaultSoilRows       = 2
	DefaultSoilCols       = 4
	DefaultTileSize       = 50.0
	DefaultTilePadding    = 8.0
	DefaultSoilOffsetX    = 40.0
	DefaultCharacterSize  = 48.0
	DefaultCharacterSpeed = 5.0
)

// Movement keys, compared lowercased
const (
	KeyArrowLeft  = "arrowleft"
	KeyArrowRight = "arrowright"
	KeyArrowUp    = "arrowup"
	KeyArrowDown  = "arrowdown"
	KeyA          = "a"
	KeyD          = "d"
	KeyW          = "w"
	KeyS          = "s"
)
