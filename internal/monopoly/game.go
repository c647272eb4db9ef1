// Package monopoly is a self-contained, Monopoly-like turn simulation.
//
// The game owns the bank, board, roads, properties and chest deck; players
// reference purchasables by name only, so no player holds a pointer into
// another player or into shared state.
package monopoly

import (
	"math/rand"
	"time"
)

const (
	startingCash = 1500
	goSalary     = 200
	jailCell     = 9
)

// Player is one participant. Holdings are road/property names, not pointers.
type Player struct {
	Name       string   `yaml:"name"`
	Position   int      `yaml:"position"`
	Cash       int      `yaml:"cash"`
	Roads      []string `yaml:"roads"`
	Properties []string `yaml:"properties"`
	Lost       bool     `yaml:"lost"`
}

// HasLost reports whether the player has gone bankrupt.
func (p *Player) HasLost() bool {
	return p.Lost
}

// Game owns all shared state for one match.
type Game struct {
	Bank       *Bank
	Cells      []Cell
	Roads      []Road
	Properties []Property
	Chest      []ChestCard
	Players    []*Player
	Round      int

	rng       *rand.Rand
	chestNext int
}

// New creates a game with the default board and one player per name.
func New(names ...string) *Game {
	return NewSeeded(time.Now().UnixNano(), names...)
}

// NewSeeded creates a game whose dice and chest draws are reproducible.
func NewSeeded(seed int64, names ...string) *Game {
	g := &Game{
		Bank:       defaultBank(),
		Cells:      defaultCells(),
		Roads:      defaultRoads(),
		Properties: defaultProperties(),
		Chest:      defaultChest(),
		rng:        rand.New(rand.NewSource(seed)),
	}
	for _, name := range names {
		g.Players = append(g.Players, &Player{Name: name, Cash: startingCash})
	}
	return g
}

// Over reports whether any player has lost.
func (g *Game) Over() bool {
	for _, p := range g.Players {
		if p.Lost {
			return true
		}
	}
	return false
}

// PlayRound gives every solvent player one turn and advances the round count.
func (g *Game) PlayRound() {
	for _, p := range g.Players {
		if !p.Lost {
			g.PlayTurn(p)
		}
	}
	g.Round++
}

// PlayTurn rolls for one player, moves them, and resolves the landing cell.
func (g *Game) PlayTurn(p *Player) {
	roll := g.rng.Intn(6) + g.rng.Intn(6) + 2
	next := p.Position + roll
	if next >= len(g.Cells) {
		next -= len(g.Cells)
		g.pay(p, nil, -goSalary) // passed Go, collect from the bank
	}
	p.Position = next

	cell := g.Cells[p.Position]
	switch cell.Kind {
	case CellRoad:
		g.landOnRoad(p, cell.Name)
	case CellProperty:
		g.landOnProperty(p, cell.Name)
	case CellTax:
		g.pay(p, nil, cell.Amount)
	case CellChest:
		g.drawChest(p)
	case CellGoToJail:
		p.Position = jailCell
	}

	if p.Cash < 0 {
		p.Lost = true
	}
}

func (g *Game) landOnRoad(p *Player, name string) {
	road := g.road(name)
	if road == nil {
		return
	}
	switch {
	case road.Owner == "":
		if p.Cash >= road.Price {
			g.pay(p, nil, road.Price)
			road.Owner = p.Name
			p.Roads = append(p.Roads, road.Name)
		}
	case road.Owner != p.Name && !road.Mortgaged:
		g.pay(p, g.player(road.Owner), road.Rent)
	}
}

func (g *Game) landOnProperty(p *Player, name string) {
	prop := g.property(name)
	if prop == nil {
		return
	}
	switch {
	case prop.Owner == "":
		if p.Cash >= prop.Price {
			g.pay(p, nil, prop.Price)
			prop.Owner = p.Name
			p.Properties = append(p.Properties, prop.Name)
		}
	case prop.Owner != p.Name && !prop.Mortgaged:
		g.pay(p, g.player(prop.Owner), prop.Rent)
	}
}

func (g *Game) drawChest(p *Player) {
	if len(g.Chest) == 0 {
		return
	}
	card := g.Chest[g.chestNext%len(g.Chest)]
	g.chestNext++
	g.pay(p, nil, -card.Amount)
}

// pay moves amount from p to the recipient, or to/from the bank when the
// recipient is nil. A negative amount is a payout to p.
func (g *Game) pay(p *Player, to *Player, amount int) {
	p.Cash -= amount
	if to != nil {
		to.Cash += amount
	} else {
		g.Bank.Cash += amount
	}
}

func (g *Game) road(name string) *Road {
	for i := range g.Roads {
		if g.Roads[i].Name == name {
			return &g.Roads[i]
		}
	}
	return nil
}

func (g *Game) property(name string) *Property {
	for i := range g.Properties {
		if g.Properties[i].Name == name {
			return &g.Properties[i]
		}
	}
	return nil
}

func (g *Game) player(name string) *Player {
	for _, p := range g.Players {
		if p.Name == name {
			return p
		}
	}
	return nil
}
