package constants

// BadgeKey identifies one badge in the static catalog. Keys are persisted on
// users, so they must stay stable across releases.
type BadgeKey string

const (
	BadgeWelcomeUser          BadgeKey = "welcome-user"
	BadgeEcoNewbie            BadgeKey = "eco-newbie"
	BadgeEnergySaverBronze    BadgeKey = "energy-saver-bronze"
	BadgeGreenGuruLevel1      BadgeKey = "green-guru-level1"
	BadgeCarbonCrusaderNovice BadgeKey = "carbon-crusader-novice"
)
