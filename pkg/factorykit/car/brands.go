package car

// Benz makes the Gla SUV and the Cls coupe.
type Benz struct{}

var _ Factory = Benz{}

func (Benz) SUV() SUV     { return Gla{model{BrandBenz, "Gla", "suv"}} }
func (Benz) Coupe() Coupe { return Cls{model{BrandBenz, "Cls", "coupe"}} }

// Bmw makes the X1 SUV and the M2 coupe.
type Bmw struct{}

var _ Factory = Bmw{}

func (Bmw) SUV() SUV     { return X1{model{BrandBmw, "X1", "suv"}} }
func (Bmw) Coupe() Coupe { return M2{model{BrandBmw, "M2", "coupe"}} }

// Gla is the Benz SUV.
type Gla struct{ model }

// Cls is the Benz coupe.
type Cls struct{ model }

// X1 is the Bmw SUV.
type X1 struct{ model }

// M2 is the Bmw coupe.
type M2 struct{ model }
