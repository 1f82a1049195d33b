// Package flapper implements a side-scrolling arcade game: a circle falls under
// gravity, is boosted by input and must pass through an endless stream of
// procedurally generated gap obstacles while eating score markers.
//
// All geometry is in world units (a 480x720 stage). The renderer maps world
// units onto whatever terminal size the platform provides.
package flapper

// Stage geometry
const (
	StageWidth   = 480.0
	StageHeight  = 720.0
	GroundHeight = 60.0
	LawnHeight   = 20.0
	BorderHeight = 2.0
)

// Scroll layers: speed is per tick, period is the wrap-around width.
const (
	BackgroundScrollSpeed = 1.0
	BackgroundPeriod      = 130.0
	BackgroundTiles       = 5

	LawnScrollSpeed = 2.0
	LawnTileWidth   = LawnHeight
	LawnPeriod      = 2 * LawnTileWidth

	AreaScrollSpeed = 2.0
)

// Obstacle layout
const (
	ObstacleWidth     = 150.0
	ObstacleInterval  = 150.0
	GapHeight         = 300.0
	ObstacleMinHeight = 5.0
)

// Score markers
const (
	MarkerRadiusNormal = 8.0
	MarkerRadiusLarge  = 24.0
	MarkerScoreNormal  = 10
	MarkerScoreLarge   = 50
	LadderNormalCount  = 16
	AreaBonusScore     = 200
)

// Player physics. Velocity is in world units per tick; gravity is per second.
const (
	PlayerDrawRadius = 50.0
	PlayerHitRadius  = 40.0
	Gravity          = 9.8 * 6
	VelBoost         = 9.8 * 1.5
	AngleLimit       = 45.0

	mouthOpenTime  = (1.0 / 60.0) * 4
	mouthCycleTime = (1.0 / 60.0) * 8
	mouthHalfAngle = 30.0
)

// Controller timing (seconds)
const (
	ReadyDuration    = 0.25
	GameOverDuration = 1.0
)
