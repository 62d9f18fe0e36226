package bgm

import (
	"iter"
	"strings"
)

// DefaultCreditValue is the unit credit value applied to a game whose value
// is missing, blank, or zero. It is what the partner store pays per surplus
// unit by default.
var DefaultCreditValue = M(59.0)

// Game is one row of the ledger, keyed by its name under case-insensitive,
// whitespace-trimmed comparison.
type Game struct {
	Name   string
	Won    int   // cumulative units acquired
	Keep   int   // units the owner intends to retain
	Credit int   // derived: max(0, Won-Keep), never set directly
	Value  Money // unit credit value, never zero after a recompute
}

// TotalCredit returns the monetary value of the game's surplus units.
func (g Game) TotalCredit() Money { return g.Value.Mul(g.Credit) }

// Ledger represents the full set of game records.
//
// Games keep their registration order; the index maps the normalized name to
// a position so an upsert never scans the whole table.
type Ledger struct {
	games []Game
	index map[string]int
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{
		games: make([]Game, 0),
		index: make(map[string]int),
	}
}

// key normalizes a game name for uniqueness comparison.
func key(name string) string { return strings.ToLower(strings.TrimSpace(name)) }

// Len returns the number of records in the ledger.
func (l *Ledger) Len() int { return len(l.games) }

// Get returns the record registered under this name, matched
// case-insensitively on the trimmed name.
func (l *Ledger) Get(name string) (Game, bool) {
	i, ok := l.index[key(name)]
	if !ok {
		return Game{}, false
	}
	return l.games[i], true
}

// append adds a record preserving order and keeps the name index current.
// When a duplicate name slips in from a malformed store, the first
// occurrence stays the one the index resolves to.
func (l *Ledger) append(g Game) {
	l.games = append(l.games, g)
	k := key(g.Name)
	if _, ok := l.index[k]; !ok {
		l.index[k] = len(l.games) - 1
	}
}

// Games returns an iterator that yields records in registration order.
// With filters, a record is yielded when any filter accepts it.
func (l *Ledger) Games(filters ...func(Game) bool) iter.Seq[Game] {
	return func(yield func(Game) bool) {
		for _, g := range l.games {
			accept := len(filters) == 0
			for _, filter := range filters {
				if filter(g) {
					accept = true
					break
				}
			}
			if !accept {
				continue
			}
			if !yield(g) {
				return
			}
		}
	}
}

// WantsToBring selects games the owner plans to take home.
func WantsToBring(g Game) bool { return g.Keep > 0 }

// HasCredit selects games with surplus units to convert into credit.
func HasCredit(g Game) bool { return g.Credit > 0 }

// Update describes one registration of a game. Nil fields leave the stored
// record untouched.
//
// Won is a delta: registering the same game again adds newly acquired units
// to the running tally. Keep and Value are absolute: they state the current
// intent and unit price, replacing whatever was stored.
type Update struct {
	Name  string
	Won   *int
	Keep  *int
	Value *Money
}

// Upsert inserts or mutates the single record matching u.Name and recomputes
// the ledger. A blank name is a no-op: the ledger is left unchanged.
func (l *Ledger) Upsert(u Update) {
	name := strings.TrimSpace(u.Name)
	if name == "" {
		return
	}
	if i, ok := l.index[key(name)]; ok {
		g := &l.games[i]
		if u.Won != nil {
			g.Won += *u.Won
		}
		if u.Keep != nil {
			g.Keep = *u.Keep
		}
		if u.Value != nil {
			g.Value = *u.Value
		}
	} else {
		g := Game{Name: name, Value: DefaultCreditValue}
		if u.Won != nil {
			g.Won = *u.Won
		}
		if u.Keep != nil {
			g.Keep = *u.Keep
		}
		if u.Value != nil {
			g.Value = *u.Value
		}
		l.append(g)
	}
	l.Recompute()
}

// Recompute normalizes every record: quantities are floored at zero, the
// credited quantity is derived from won and keep, and a missing or zero unit
// value is replaced by DefaultCreditValue. It is idempotent and performs
// no I/O.
//
// Note: a deliberately zero value is also replaced. The store never records
// a free credit.
func (l *Ledger) Recompute() {
	for i := range l.games {
		g := &l.games[i]
		if g.Won < 0 {
			g.Won = 0
		}
		if g.Keep < 0 {
			g.Keep = 0
		}
		g.Credit = g.Won - g.Keep
		if g.Credit < 0 {
			g.Credit = 0
		}
		if !g.Value.IsPositive() {
			g.Value = DefaultCreditValue
		}
	}
}
