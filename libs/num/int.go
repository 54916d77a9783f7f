package num

// Int a wrapper to a signed big int.
type Int struct {
	// The unsigned version of the integer
	U *Uint
	// The sign of the integer true = positive, false = negative
	s bool
}

// NewInt creates a new Int with the value of the
// int64 passed as a parameter.
func NewInt(val int64) *Int {
	if val < 0 {
		return &Int{
			U: NewUint(uint64(-val)),
			s: false,
		}
	}
	return &Int{
		U: NewUint(uint64(val)),
		s: true,
	}
}

// IntZero returns a new Int set to zero.
func IntZero() *Int {
	return NewInt(0)
}

// IntFromUint returns a new Int with the value of the
// given uint, the sign flag tells us if the value is
// to be considered positive or negative.
func IntFromUint(u *Uint, s bool) *Int {
	return &Int{
		U: u.Clone(),
		s: s,
	}
}

// IsNegative tests if the stored value is negative
// true if < 0
// false if >= 0.
func (i *Int) IsNegative() bool {
	return !i.s && !i.U.IsZero()
}

// IsPositive tests if the stored value is positive
// true if > 0
// false if <= 0.
func (i *Int) IsPositive() bool {
	return i.s && !i.U.IsZero()
}

// IsZero tests if the stored value is zero.
func (i *Int) IsZero() bool {
	return i.U.IsZero()
}

// FlipSign changes the sign of the number from - to + and back again.
func (i *Int) FlipSign() {
	i.s = !i.s
}

// Clone creates a copy of this value.
func (i *Int) Clone() *Int {
	return &Int{
		U: i.U.Clone(),
		s: i.s,
	}
}

// Add will add the passed in value to the base value
// i = i + a.
func (i *Int) Add(a *Int) *Int {
	if i.s == a.s {
		i.U.AddSum(a.U)
		return i
	}
	if i.U.GTE(a.U) {
		i.U.Sub(i.U, a.U)
		return i
	}
	i.U.Sub(a.U.Clone(), i.U)
	i.s = a.s
	return i
}

// AddSum adds all of the parameters to i
// i = i + a + b + c.
func (i *Int) AddSum(vals ...*Int) *Int {
	for _, x := range vals {
		i.Add(x)
	}
	return i
}

// Int64 returns the value of the Int as an int64
// if the value is negative it is returned negated.
func (i *Int) Int64() int64 {
	v := int64(i.U.Uint64())
	if i.IsNegative() {
		return -v
	}
	return v
}

// GT returns true if i > o.
func (i *Int) GT(o *Int) bool {
	if i.s != o.s {
		return i.IsPositive() || (i.IsZero() && o.IsNegative())
	}
	if i.s {
		return i.U.GT(o.U)
	}
	return i.U.LT(o.U)
}

// LT returns true if i < o.
func (i *Int) LT(o *Int) bool {
	return !i.EQ(o) && !i.GT(o)
}

// EQ returns true if i == o.
func (i *Int) EQ(o *Int) bool {
	if i.U.IsZero() && o.U.IsZero() {
		return true
	}
	return i.s == o.s && i.U.EQ(o.U)
}

// String returns a string version of the number.
func (i *Int) String() string {
	s := ""
	if i.IsNegative() {
		s = "-"
	}
	return s + i.U.String()
}
