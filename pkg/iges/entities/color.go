package entities

import "github.com/ironplane/ironplane/pkg/iges"

// Color is the E314 entity: a CIE color definition (percent red, green,
// blue) with an optional name, referenced from another entity's DE
// ColorRef field.
type Color struct {
	iges.BaseEntity

	Red, Green, Blue float64
	Name             string
}

// NewColor is the iges.Factory for type code 314.
func NewColor(handle, typeCode int) iges.Entity {
	c := &Color{}
	c.InitBaseEntity(handle, typeCode)
	return c
}

// ReadDE implements iges.Entity.
func (c *Color) ReadDE(de iges.DirectoryEntry) error {
	c.SetDE(de)
	return nil
}

// ReadPD implements iges.Entity. Layout: Red,Green,Blue[,Name].
func (c *Color) ReadPD(pd iges.PDRecord) error {
	if err := requireLen(pd.Params, 3); err != nil {
		return err
	}
	vals, err := parseFloats(pd.Params[:3])
	if err != nil {
		return err
	}
	c.Red, c.Green, c.Blue = vals[0], vals[1], vals[2]
	if len(pd.Params) > 3 {
		c.Name = pd.Params[3]
	}
	return nil
}

// Associate implements iges.Entity. Color has no pointer fields.
func (c *Color) Associate(m *iges.Model) error {
	c.MarkAssociated()
	return nil
}

// Rescale implements iges.Entity: color percentages are scale-invariant.
func (c *Color) Rescale(sf float64) error { return nil }

// Format implements the writeout package's formattable interface.
func (c *Color) Format(pdLineStart int, assigned map[int]int) (iges.PDRecord, int, error) {
	params := []string{formatFloat(c.Red), formatFloat(c.Green), formatFloat(c.Blue)}
	if c.Name != "" {
		params = append(params, c.Name)
	}
	return iges.PDRecord{TypeCode: c.TypeCode(), Params: params}, 1, nil
}
