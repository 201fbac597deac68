package parser

// Command represents one line of the battle command language
type Command struct {
	Play   *PlayCmd   `parser:"( @@"`
	End    *EndCmd    `parser:"| @@"`
	Status *StatusCmd `parser:"| @@"`
	Help   *HelpCmd   `parser:"| @@ )"`
}

// PlayCmd plays a card from the hand. Positions are 1-based as shown to the player.
type PlayCmd struct {
	Keyword string      `parser:"@(\"play\"|\"Play\"|\"PLAY\")"`
	Card    int         `parser:"@Int"`
	Target  *TargetExpr `parser:"@@?"`
}

// TargetExpr maps parsing the optional "to: N" block
type TargetExpr struct {
	Keyword string `parser:"\"to\" \":\""`
	Index   int    `parser:"@Int"`
}

// EndCmd ends the player turn. "end turn" is accepted too.
type EndCmd struct {
	Keyword string `parser:"@(\"end\"|\"End\"|\"END\")"`
	Turn    bool   `parser:"@(\"turn\"|\"Turn\"|\"TURN\")?"`
}

// StatusCmd asks for the current battle snapshot
type StatusCmd struct {
	Keyword string `parser:"@(\"status\"|\"Status\"|\"STATUS\")"`
}

// HelpCmd provides guidance, optionally for a single command
type HelpCmd struct {
	Keyword string `parser:"@(\"help\"|\"Help\"|\"HELP\")"`
	Command string `parser:"@(Ident|Keyword)?"`
}

// CardIndex converts the 1-based card position into a hand index.
func (p *PlayCmd) CardIndex() int {
	return p.Card - 1
}

// TargetIndex converts the optional 1-based target into an enemy index, -1 when absent.
func (p *PlayCmd) TargetIndex() int {
	if p.Target == nil {
		return -1
	}
	return p.Target.Index - 1
}
