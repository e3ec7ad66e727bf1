package eurorack

import (
	"strconv"
	"strings"
)

// Kind selects which board is generated.
type Kind int

const (
	// Faceplate is the front panel of a module.
	Faceplate Kind = iota
	// PCB is the circuit board mounted behind the faceplate.
	PCB
)

func (k Kind) String() string {
	switch k {
	case Faceplate:
		return "Faceplate"
	case PCB:
		return "PCB"
	default:
		return "Unknown"
	}
}

// ParseKind returns Faceplate for "Faceplate" (ignoring case and
// surrounding space) and PCB for anything else.
func ParseKind(s string) Kind {
	if strings.EqualFold(strings.TrimSpace(s), "faceplate") {
		return Faceplate
	}
	return PCB
}

// Input is the raw record produced by input collection. Numeric fields are
// kept as text exactly as typed by the operator.
type Input struct {
	Type      string `yaml:"type" json:"type"`
	HP        string `yaml:"hp" json:"hp"`
	Rad       string `yaml:"rad" json:"rad"`
	MHW       string `yaml:"mh_w" json:"mh_w"`
	PCBMounts bool   `yaml:"pcb_mh" json:"pcb_mh"`
}

// InputFromRecord builds an Input from a string keyed record using the keys
// type, hp, rad, mh_w and pcb_mh. Missing keys read as empty.
func InputFromRecord(rec map[string]string) Input {
	return Input{
		Type:      rec["type"],
		HP:        rec["hp"],
		Rad:       rec["rad"],
		MHW:       rec["mh_w"],
		PCBMounts: parseBool(rec["pcb_mh"]),
	}
}

// Record returns the string keyed form of in.
func (in Input) Record() map[string]string {
	return map[string]string{
		"type":   in.Type,
		"hp":     in.HP,
		"rad":    in.Rad,
		"mh_w":   in.MHW,
		"pcb_mh": strconv.FormatBool(in.PCBMounts),
	}
}

// Request is a parsed Input.
type Request struct {
	Kind Kind
	// HP is the module width in HP units.
	HP float64
	// Radius is the outline corner radius.
	Radius float64
	// SlotLength is the extra length of faceplate mounting holes.
	SlotLength float64
	// PCBMounts adds rear PCB mounting holes to either board kind.
	PCBMounts bool
}

// ParseRequest converts an Input into a Request. It never fails: numeric
// fields that do not parse are read as zero so an empty form still
// produces a (degenerate) preview the operator can correct.
func ParseRequest(in Input) Request {
	return Request{
		Kind:       ParseKind(in.Type),
		HP:         parseFloat(in.HP),
		Radius:     parseFloat(in.Rad),
		SlotLength: parseFloat(in.MHW),
		PCBMounts:  in.PCBMounts,
	}
}

func parseFloat(s string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return f
}

// parseBool accepts strconv booleans and otherwise any nonzero number.
func parseBool(s string) bool {
	if b, err := strconv.ParseBool(strings.TrimSpace(s)); err == nil {
		return b
	}
	return parseFloat(s) != 0
}
