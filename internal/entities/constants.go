package entities

// Stat tags as reported by the provider
const (
	StatHP             = "hp"
	StatAttack         = "attack"
	StatDefense        = "defense"
	StatSpecialAttack  = "special-attack"
	StatSpecialDefense = "special-defense"
	StatSpeed          = "speed"
)

// Stat defaults for missing tags
const (
	DefaultHP         = 100
	DefaultSpeed      = 0
	DefaultCombatStat = 50
)

// Type tags
const (
	TypeNormal   = "normal"
	TypeFire     = "fire"
	TypeWater    = "water"
	TypeGrass    = "grass"
	TypeElectric = "electric"
	TypeIce      = "ice"
	TypeFighting = "fighting"
	TypePoison   = "poison"
	TypeGround   = "ground"
	TypeFlying   = "flying"
	TypePsychic  = "psychic"
	TypeBug      = "bug"
	TypeRock     = "rock"
	TypeGhost    = "ghost"
	TypeDragon   = "dragon"
	TypeDark     = "dark"
	TypeSteel    = "steel"
	TypeFairy    = "fairy"
)

// MaxKnownMoves is how many moves a resolved profile carries
const MaxKnownMoves = 4
