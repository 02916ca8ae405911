package moveset

//go:generate enumer -type=SpeedClass -text -transform=lower -output=speed_enumer.go

// SpeedClass partitions attacks for selection. The numeric values match the
// ids of the attack_speed reference table.
type SpeedClass int

const (
	Fast SpeedClass = iota + 1
	Charge
)
