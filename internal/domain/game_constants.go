package domain

// Constants describing the default configuration of an Otvoreni Remi deck.
const (
	// MaxCardValue is the canonical value of a King.
	MaxCardValue = 13
	// MaxHandSize is the largest number of cards a player may hold.
	MaxHandSize = 15
	// UniqueCards counts the distinct card identities: 52 regular cards plus the joker.
	UniqueCards = 53
	// DuplicateCount is the number of copies of each regular card (two decks).
	DuplicateCount = 2
	// JokerTotal is the number of jokers shuffled into the deck.
	JokerTotal = 4
	// RegularCardTotal is the number of non-joker cards in a full deck.
	RegularCardTotal = (UniqueCards - 1) * DuplicateCount
	// DeckTotal is the size of a full deck (108).
	DeckTotal = RegularCardTotal + JokerTotal
)

// JokerIndex is the canonical index reserved for the joker.
const JokerIndex = UniqueCards - 1
