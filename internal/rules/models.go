package rules

// PlayerFacts is the read-only view of a player a trigger condition sees.
type PlayerFacts struct {
	TurnCount  int
	HP         int
	MaxHP      int
	Block      int
	Energy     int
	MaxEnergy  int
	Gold       int
	Faction    string
	RealmIndex int
	Statuses   map[string]int
}
