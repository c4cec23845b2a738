package jsondoc

// importText renders one top-level value for the host namespace, using the
// query rendering rules except that arrays collapse to the literal "!array!"
// placeholder instead of being expanded.
func importText(v *Value) string {
	switch v.Type() {
	case TypeBool:
		if v.Bool() {
			return "1"
		}
		return "0"
	case TypeNull:
		return ""
	case TypeNumber:
		return formatNumber(v.Float64())
	case TypeString:
		return v.Str()
	case TypeArray:
		return "!array!"
	case TypeObject:
		return Serialize(v)
	}
	return ""
}
