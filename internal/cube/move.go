package cube

import "fmt"

// Amount is how far a face is turned: a quarter turn, a half turn, or a
// quarter turn the other way.
type Amount uint8

const (
	Single  Amount = 1
	Double  Amount = 2
	Reverse Amount = 3
)

func (a Amount) u8() uint8 { return uint8(a) }

func amountFromU8(x uint8) Amount {
	switch x {
	case 1:
		return Single
	case 2:
		return Double
	case 3:
		return Reverse
	default:
		panic(fmt.Sprintf("cube: invalid amount %d", x))
	}
}

// Reversed returns the amount that undoes self: Single<->Reverse, Double
// stays Double.
func (a Amount) Reversed() Amount {
	switch a {
	case Single:
		return Reverse
	case Double:
		return Double
	case Reverse:
		return Single
	default:
		panic(fmt.Sprintf("cube: invalid amount %d", uint8(a)))
	}
}

// MulDirection composes an amount with a direction: a positive direction
// leaves the amount unchanged, a negative direction mirrors it (Single <->
// Reverse, Double unchanged).
func (a Amount) MulDirection(dir Direction) Amount {
	if dir == Positive {
		return a
	}
	return amountFromU8(4 - a.u8())
}

func (a Amount) String() string {
	switch a {
	case Single:
		return " "
	case Double:
		return "2"
	case Reverse:
		return "'"
	default:
		panic(fmt.Sprintf("cube: invalid amount %d", uint8(a)))
	}
}

// Move is a single quarter/half turn of one face, packed as ---aafff: the
// low 3 bits are the face, the next 2 bits are the amount.
type Move struct {
	data uint8
}

// NewMove builds the move that turns face by amount.
func NewMove(face Face, amount Amount) Move {
	return Move{data: face.u8() + (amount.u8() << 3)}
}

// Face returns which face this move turns.
func (m Move) Face() Face { return faceFromU8(m.data & 0b111) }

// Amount returns how far this move turns its face.
func (m Move) Amount() Amount { return amountFromU8(m.data >> 3) }

// Axis returns the axis of the turned face.
func (m Move) Axis() Axis { return m.Face().Axis() }

// Inverse returns the move that undoes m.
func (m Move) Inverse() Move { return NewMove(m.Face(), m.Amount().Reversed()) }

func (m Move) String() string {
	amt := m.Amount().String()
	if amt == " " {
		return m.Face().String()
	}
	return m.Face().String() + amt
}

// ParseMove parses a single move in standard cube notation: a face letter
// optionally followed by "2" (half turn) or "'" (reverse quarter turn).
func ParseMove(s string) (Move, error) {
	if len(s) == 0 {
		return Move{}, fmt.Errorf("cube: empty move")
	}
	face, err := FaceFromByte(s[0])
	if err != nil {
		return Move{}, err
	}
	switch s[1:] {
	case "", "1":
		return NewMove(face, Single), nil
	case "2":
		return NewMove(face, Double), nil
	case "'", "3":
		return NewMove(face, Reverse), nil
	default:
		return Move{}, fmt.Errorf("cube: invalid move suffix %q in %q", s[1:], s)
	}
}

// ParseAlg parses a whitespace-separated sequence of moves, e.g. "R U R' U'".
func ParseAlg(s string) ([]Move, error) {
	var moves []Move
	start := -1
	flush := func(end int) error {
		if start < 0 {
			return nil
		}
		m, err := ParseMove(s[start:end])
		if err != nil {
			return err
		}
		moves = append(moves, m)
		start = -1
		return nil
	}
	for i := 0; i < len(s); i++ {
		if s[i] == ' ' || s[i] == '\t' || s[i] == '\n' {
			if err := flush(i); err != nil {
				return nil, err
			}
			continue
		}
		if start < 0 {
			start = i
		}
	}
	if err := flush(len(s)); err != nil {
		return nil, err
	}
	return moves, nil
}

// AlgString renders a move sequence back into standard notation.
func AlgString(moves []Move) string {
	s := ""
	for i, m := range moves {
		if i > 0 {
			s += " "
		}
		s += m.String()
	}
	return s
}

// InverseAlg returns the move sequence that undoes alg, applied in reverse
// order with each move inverted.
func InverseAlg(alg []Move) []Move {
	out := make([]Move, len(alg))
	for i, m := range alg {
		out[len(alg)-1-i] = m.Inverse()
	}
	return out
}

// AllMoves lists the 18 legal face turns of a 3x3x3 cube: each of the six
// faces turned Single, Double, and Reverse.
var AllMoves = func() [18]Move {
	var all [18]Move
	i := 0
	for _, f := range faces {
		for _, a := range [3]Amount{Single, Double, Reverse} {
			all[i] = NewMove(f, a)
			i++
		}
	}
	return all
}()

// Named moves, one per face/amount combination, mirroring the 18 named
// moves of standard cube notation (R, R2, R', U, U2, U', ...). Move is a
// struct, not an integer, so these are package-level vars rather than
// consts.
var (
	R, R2, RP = NewMove(FaceR, Single), NewMove(FaceR, Double), NewMove(FaceR, Reverse)
	U, U2, UP = NewMove(FaceU, Single), NewMove(FaceU, Double), NewMove(FaceU, Reverse)
	F, F2, FP = NewMove(FaceF, Single), NewMove(FaceF, Double), NewMove(FaceF, Reverse)
	L, L2, LP = NewMove(FaceL, Single), NewMove(FaceL, Double), NewMove(FaceL, Reverse)
	D, D2, DP = NewMove(FaceD, Single), NewMove(FaceD, Double), NewMove(FaceD, Reverse)
	B, B2, BP = NewMove(FaceB, Single), NewMove(FaceB, Double), NewMove(FaceB, Reverse)
)

// G1Moves are the ten moves that stay within the G1 subgroup used by phase
// two of the two-phase solver: U, D in any amount, and R2, L2, F2, B2.
var G1Moves = []Move{
	NewMove(FaceU, Single), NewMove(FaceU, Double), NewMove(FaceU, Reverse),
	NewMove(FaceD, Single), NewMove(FaceD, Double), NewMove(FaceD, Reverse),
	NewMove(FaceR, Double), NewMove(FaceL, Double), NewMove(FaceF, Double), NewMove(FaceB, Double),
}
