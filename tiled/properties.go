package tiled

// PropertyValue is a custom property authored in Tiled. The concrete types are
// StringValue, FloatValue, IntValue, BoolValue and ClassValue.
type PropertyValue interface {
	isPropertyValue()
}

type (
	StringValue string
	FloatValue  float64
	IntValue    int64
	BoolValue   bool
)

// ClassValue is a class-typed property holding nested members
type ClassValue struct {
	Type       string
	Properties Properties
}

func (StringValue) isPropertyValue() {}
func (FloatValue) isPropertyValue()  {}
func (IntValue) isPropertyValue()    {}
func (BoolValue) isPropertyValue()   {}
func (ClassValue) isPropertyValue()  {}

// Properties maps property names to values
type Properties map[string]PropertyValue

// GetString returns a string property. Other variants count as absent.
func (p Properties) GetString(name string) (string, bool) {
	v, ok := p[name].(StringValue)
	return string(v), ok
}

// GetFloat returns a float property. Other variants count as absent.
func (p Properties) GetFloat(name string) (float64, bool) {
	v, ok := p[name].(FloatValue)
	return float64(v), ok
}

// GetClass returns the members of a class property. Other variants count as absent.
func (p Properties) GetClass(name string) (Properties, bool) {
	v, ok := p[name].(ClassValue)
	if !ok {
		return nil, false
	}
	return v.Properties, true
}
