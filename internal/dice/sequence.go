package dice

// Sequence is a scripted Source. IntN pops the next value from Ints and
// reduces it into range; Bool pops from Bools. When a queue is empty the
// Fallback source is used, or zero/false if there is none.
type Sequence struct {
	Ints     []int
	Bools    []bool
	Fallback Source

	IntCalls  int
	BoolCalls int
}

func (s *Sequence) IntN(n int) int {
	s.IntCalls++
	if len(s.Ints) == 0 {
		if s.Fallback != nil {
			return s.Fallback.IntN(n)
		}
		return 0
	}
	v := s.Ints[0]
	s.Ints = s.Ints[1:]
	if v < 0 {
		v = -v
	}
	return v % n
}

func (s *Sequence) Bool() bool {
	s.BoolCalls++
	if len(s.Bools) == 0 {
		if s.Fallback != nil {
			return s.Fallback.Bool()
		}
		return false
	}
	v := s.Bools[0]
	s.Bools = s.Bools[1:]
	return v
}

// Constant is a Source that always returns the same draw.
type Constant struct {
	Int  int
	Flip bool
}

func (c Constant) IntN(n int) int {
	if c.Int >= n {
		return n - 1
	}
	return c.Int
}

func (c Constant) Bool() bool { return c.Flip }
