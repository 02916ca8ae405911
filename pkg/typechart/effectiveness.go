package typechart

//go:generate enumer -type=Effectiveness -text -transform=lower -output=effectiveness_enumer.go

// Effectiveness labels a directed edge of the type chart. The numeric values
// match the ids of the effectiveness reference table.
type Effectiveness int

const (
	Weak Effectiveness = iota + 1
	Strong
)
