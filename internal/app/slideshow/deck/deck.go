package deck

// Deck is the position within a slide list. Moves clamp at both ends and
// never wrap; every move returns a new value.
type Deck struct {
	index int
	size  int
}

func New(size int) Deck {
	if size < 0 {
		size = 0
	}
	return Deck{size: size}
}

func (this Deck) Index() int { return this.index }

func (this Deck) Size() int { return this.size }

func (this Deck) IsFirst() bool { return this.index == 0 }

func (this Deck) IsLast() bool { return this.size == 0 || this.index == this.size-1 }

func (this Deck) Next() Deck {
	return this.Goto(this.index + 1)
}

func (this Deck) Previous() Deck {
	return this.Goto(this.index - 1)
}

// Tap advances like Next.
func (this Deck) Tap() Deck {
	return this.Next()
}

func (this Deck) Goto(index int) Deck {
	if this.size == 0 {
		return this
	}
	this.index = max(0, min(index, this.size-1))
	return this
}
