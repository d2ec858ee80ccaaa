package wordnum

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/Jeronymous/words2num/vocab"
)

// state is the FST position: the class of the last word consumed.
type state uint8

const (
	stateStart state = iota
	stateZero
	stateDigit
	stateTeen
	stateTens
	stateHundred
	stateScale
	stateFinal
)

var stateNames = [...]string{
	stateStart:   "start",
	stateZero:    "zero",
	stateDigit:   "digit",
	stateTeen:    "teen",
	stateTens:    "tens",
	stateHundred: "hundred",
	stateScale:   "scale",
	stateFinal:   "end of number",
}

func (s state) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return fmt.Sprintf("state(%d)", int(s))
}

func stateOf(c vocab.Class) state {
	switch c {
	case vocab.Zero:
		return stateZero
	case vocab.Digit:
		return stateDigit
	case vocab.Teen:
		return stateTeen
	case vocab.Tens:
		return stateTens
	case vocab.Hundred:
		return stateHundred
	case vocab.Scale:
		return stateScale
	default:
		return stateFinal
	}
}

// combinator is the action taken on an edge.
type combinator uint8

const (
	opAdd      combinator = iota + 1 // acc += v
	opMultiply                       // acc *= v; a scale also emits acc and resets it
	opZero                           // acc = 0
	opIgnore                         // emit acc, restart at v
	opReturn                         // emit acc at end of input
)

type edge struct {
	from, to state
}

// transitions is the grammar. Pairs missing from the table are invalid.
var transitions = map[edge]combinator{
	{stateStart, stateZero}:    opZero,     // 0
	{stateStart, stateDigit}:   opAdd,      // 9
	{stateStart, stateTeen}:    opAdd,      // 19
	{stateStart, stateTens}:    opAdd,      // 90
	{stateStart, stateHundred}: opAdd,      // 100
	{stateStart, stateScale}:   opAdd,      // 1000
	{stateStart, stateFinal}:   opReturn,   // nothing before the decimal marker
	{stateZero, stateFinal}:    opReturn,   // 0
	{stateDigit, stateHundred}: opMultiply, // 900
	{stateDigit, stateScale}:   opMultiply, // 9000
	{stateDigit, stateFinal}:   opReturn,   // 9
	{stateTeen, stateDigit}:    opAdd,      // 17
	{stateTeen, stateHundred}:  opMultiply, // 1900
	{stateTeen, stateScale}:    opMultiply, // 19000
	{stateTeen, stateFinal}:    opReturn,   // 19
	{stateTens, stateDigit}:    opAdd,      // 99
	{stateTens, stateTeen}:     opAdd,      // 70 (soixante-dix), 91
	{stateTens, stateScale}:    opMultiply, // 90000
	{stateTens, stateFinal}:    opReturn,   // 90
	{stateHundred, stateDigit}: opAdd,      // 909
	{stateHundred, stateTeen}:  opAdd,      // 919
	{stateHundred, stateTens}:  opAdd,      // 990
	{stateHundred, stateScale}: opMultiply, // 900000
	{stateHundred, stateFinal}: opReturn,   // 900
	{stateScale, stateDigit}:   opIgnore,   // 9009
	{stateScale, stateTeen}:    opAdd,      // 9019
	{stateScale, stateTens}:    opAdd,      // 9090
	{stateScale, stateHundred}: opAdd,      // 9900
	{stateScale, stateFinal}:   opReturn,   // 9000
}

// fst folds integer-part tokens into a list of emitted components whose
// place values strictly decrease.
type fst struct {
	state state
	acc   decimal.Decimal
	prev  token

	components []decimal.Decimal
	lastPlace  int
}

// evaluateInteger runs the FST over tokens and returns the emitted
// components. Their sum is the integer value.
func evaluateInteger(tokens []token) ([]decimal.Decimal, error) {
	f := &fst{state: stateStart}
	for _, tok := range tokens {
		if err := f.step(tok); err != nil {
			return nil, err
		}
	}
	if err := f.finish(); err != nil {
		return nil, err
	}
	return f.components, nil
}

func (f *fst) step(tok token) error {
	to := stateOf(tok.entry.Class)
	op, ok := transitions[edge{f.state, to}]
	if !ok {
		return tokenError(ErrInvalidTransition, tok,
			fmt.Sprintf("%s word cannot follow %s", tok.entry.Class, f.state))
	}

	v := tok.entry.Value
	switch op {
	case opAdd:
		f.acc = f.acc.Add(v)
	case opZero:
		f.acc = decimal.Zero
	case opIgnore:
		if err := f.emit(f.acc, tok); err != nil {
			return err
		}
		f.acc = v
	case opMultiply:
		// "cent trois cent": 103 × 100 would read a hundred twice.
		if !f.acc.IsZero() && vocab.PlaceValue(f.acc) >= tok.place {
			return tokenError(ErrDescendingOrder, tok,
				fmt.Sprintf("%s cannot be multiplied by %s", f.acc, v))
		}
		f.acc = f.acc.Mul(v)
		if tok.entry.Class == vocab.Scale {
			if err := f.emit(f.acc, tok); err != nil {
				return err
			}
			f.acc = decimal.Zero
		}
	}

	f.state = to
	f.prev = tok
	return nil
}

func (f *fst) finish() error {
	if _, ok := transitions[edge{f.state, stateFinal}]; !ok {
		return tokenError(ErrInvalidTransition, f.prev,
			fmt.Sprintf("number cannot end with a %s word", f.state))
	}
	return f.emit(f.acc, f.prev)
}

// emit records a completed component. Zero components are dropped.
func (f *fst) emit(v decimal.Decimal, at token) error {
	if v.IsZero() {
		return nil
	}
	place := vocab.PlaceValue(v)
	if f.lastPlace != 0 && place >= f.lastPlace {
		return tokenError(ErrDescendingOrder, at,
			fmt.Sprintf("%s follows %s", v, f.components[len(f.components)-1]))
	}
	f.components = append(f.components, v)
	f.lastPlace = place
	return nil
}

func sum(components []decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, c := range components {
		total = total.Add(c)
	}
	return total
}
