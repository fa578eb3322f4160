package registration

// UserData is one registration request: field name to raw field value.
// A missing key is treated as "not supplied", which is different from "".
type UserData map[string]string

// Lookup returns the value of field and whether it was supplied.
func (d UserData) Lookup(field string) (string, bool) {
	if d == nil {
		return "", false
	}
	v, ok := d[field]
	return v, ok
}
