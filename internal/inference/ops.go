package inference

// Ops counts the additions and multiplications performed by an operation.
// Operations return their own counts; callers sum them.
type Ops struct {
	Additions       int
	Multiplications int
}

// Plus returns the element-wise sum of o and p.
func (o Ops) Plus(p Ops) Ops {
	return Ops{
		Additions:       o.Additions + p.Additions,
		Multiplications: o.Multiplications + p.Multiplications,
	}
}
