package prototype

import "slices"

// Person is a sample prototype.
type Person struct {
	Name string
	Age  int
	Tags []string
}

var _ Cloner[*Person] = (*Person)(nil)

// Clone copies p. A shallow clone shares Tags with p.
func (p *Person) Clone(deep bool) *Person {
	c := *p
	if deep {
		c.Tags = slices.Clone(p.Tags)
	}
	return &c
}

// WithName overrides the Name of a clone.
func WithName(name string) Override[*Person] {
	return func(p *Person) *Person {
		p.Name = name
		return p
	}
}

// WithAge overrides the Age of a clone.
func WithAge(age int) Override[*Person] {
	return func(p *Person) *Person {
		p.Age = age
		return p
	}
}
