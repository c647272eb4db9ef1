package monopoly

// CellKind discriminates what happens when a player lands on a board cell.
type CellKind string

const (
	CellGo       CellKind = "go"
	CellRoad     CellKind = "road"
	CellProperty CellKind = "property"
	CellChest    CellKind = "chest"
	CellTax      CellKind = "tax"
	CellJail     CellKind = "jail"
	CellFreePark CellKind = "free-parking"
	CellGoToJail CellKind = "go-to-jail"
)

// Cell is one square on the board. Road and property cells carry the name of
// the purchasable they point at; tax cells carry the amount owed.
type Cell struct {
	Name   string   `yaml:"name"`
	Kind   CellKind `yaml:"kind"`
	Amount int      `yaml:"amount,omitempty"`
}

// Road is a street with a color group.
type Road struct {
	Name      string `yaml:"name"`
	Color     string `yaml:"color"`
	Price     int    `yaml:"price"`
	Rent      int    `yaml:"rent"`
	Mortgage  int    `yaml:"mortgage"`
	Owner     string `yaml:"owner,omitempty"`
	Mortgaged bool   `yaml:"mortgaged,omitempty"`
}

// Property is a non-street purchasable: a station or a utility.
type Property struct {
	Name      string `yaml:"name"`
	Kind      string `yaml:"kind"` // "station" or "utility"
	Price     int    `yaml:"price"`
	Rent      int    `yaml:"rent"`
	Owner     string `yaml:"owner,omitempty"`
	Mortgaged bool   `yaml:"mortgaged,omitempty"`
}

// Bank tracks the money and buildings not yet in player hands.
type Bank struct {
	Cash   int `yaml:"cash"`
	Houses int `yaml:"houses"`
	Hotels int `yaml:"hotels"`
}

// ChestCard is a community chest card with a cash effect on the drawer.
type ChestCard struct {
	Text   string `yaml:"text"`
	Amount int    `yaml:"amount"`
}

func defaultBank() *Bank {
	return &Bank{Cash: 20580, Houses: 32, Hotels: 12}
}

func defaultRoads() []Road {
	return []Road{
		{Name: "Old Kent Road", Color: "brown", Price: 60, Rent: 2, Mortgage: 30},
		{Name: "Whitechapel Road", Color: "brown", Price: 60, Rent: 4, Mortgage: 30},
		{Name: "Angel Road", Color: "lightblue", Price: 100, Rent: 6, Mortgage: 50},
		{Name: "Euston Road", Color: "lightblue", Price: 100, Rent: 6, Mortgage: 50},
		{Name: "Pentonville Road", Color: "lightblue", Price: 120, Rent: 8, Mortgage: 60},
		{Name: "Pall Mall", Color: "pink", Price: 140, Rent: 10, Mortgage: 70},
		{Name: "Whitehall", Color: "pink", Price: 140, Rent: 10, Mortgage: 70},
		{Name: "Bow Street", Color: "orange", Price: 180, Rent: 14, Mortgage: 90},
		{Name: "Marlborough Street", Color: "orange", Price: 180, Rent: 14, Mortgage: 90},
		{Name: "Strand", Color: "red", Price: 220, Rent: 18, Mortgage: 110},
		{Name: "Fleet Street", Color: "red", Price: 220, Rent: 18, Mortgage: 110},
		{Name: "Regent Street", Color: "green", Price: 300, Rent: 26, Mortgage: 150},
		{Name: "Oxford Street", Color: "green", Price: 300, Rent: 26, Mortgage: 150},
		{Name: "Park Lane", Color: "blue", Price: 350, Rent: 35, Mortgage: 175},
		{Name: "Mayfair", Color: "blue", Price: 400, Rent: 50, Mortgage: 200},
	}
}

func defaultProperties() []Property {
	return []Property{
		{Name: "Kings Cross Station", Kind: "station", Price: 200, Rent: 25},
		{Name: "Marylebone Station", Kind: "station", Price: 200, Rent: 25},
		{Name: "Electric Company", Kind: "utility", Price: 150, Rent: 20},
		{Name: "Water Works", Kind: "utility", Price: 150, Rent: 20},
	}
}

func defaultChest() []ChestCard {
	return []ChestCard{
		{Text: "Bank error in your favour. Collect 200.", Amount: 200},
		{Text: "Doctor's fee. Pay 50.", Amount: -50},
		{Text: "From sale of stock you get 50.", Amount: 50},
		{Text: "Holiday fund matures. Receive 100.", Amount: 100},
		{Text: "Pay hospital fees of 100.", Amount: -100},
		{Text: "Income tax refund. Collect 20.", Amount: 20},
		{Text: "Pay school fees of 50.", Amount: -50},
		{Text: "You inherit 100.", Amount: 100},
	}
}

// defaultCells lays out a 27-square board that references every default road
// and property by name.
func defaultCells() []Cell {
	return []Cell{
		{Name: "Go", Kind: CellGo},
		{Name: "Old Kent Road", Kind: CellRoad},
		{Name: "Community Chest", Kind: CellChest},
		{Name: "Whitechapel Road", Kind: CellRoad},
		{Name: "Income Tax", Kind: CellTax, Amount: 200},
		{Name: "Kings Cross Station", Kind: CellProperty},
		{Name: "Angel Road", Kind: CellRoad},
		{Name: "Euston Road", Kind: CellRoad},
		{Name: "Pentonville Road", Kind: CellRoad},
		{Name: "Jail", Kind: CellJail},
		{Name: "Pall Mall", Kind: CellRoad},
		{Name: "Electric Company", Kind: CellProperty},
		{Name: "Whitehall", Kind: CellRoad},
		{Name: "Bow Street", Kind: CellRoad},
		{Name: "Community Chest", Kind: CellChest},
		{Name: "Marlborough Street", Kind: CellRoad},
		{Name: "Free Parking", Kind: CellFreePark},
		{Name: "Strand", Kind: CellRoad},
		{Name: "Fleet Street", Kind: CellRoad},
		{Name: "Go To Jail", Kind: CellGoToJail},
		{Name: "Regent Street", Kind: CellRoad},
		{Name: "Oxford Street", Kind: CellRoad},
		{Name: "Water Works", Kind: CellProperty},
		{Name: "Marylebone Station", Kind: CellProperty},
		{Name: "Park Lane", Kind: CellRoad},
		{Name: "Super Tax", Kind: CellTax, Amount: 100},
		{Name: "Mayfair", Kind: CellRoad},
	}
}
