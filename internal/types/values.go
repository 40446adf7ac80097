// Package types contains value types shared across the module.
package types

// Values maps a query parameter name to its value.
// It is produced by splitting a query string on '&' and '='.
type Values map[string]string

// Get returns the value associated with the given key and a bool flag
// indicating whether the key is present.
func (vals Values) Get(key string) (string, bool) {
	v, ok := vals[key]
	return v, ok
}

// Set sets the key to value. It replaces any existing value.
func (vals Values) Set(key, value string) Values {
	vals[key] = value
	return vals
}

// Del deletes the value associated with the key.
func (vals Values) Del(key string) Values {
	delete(vals, key)
	return vals
}

// Has checks whether a given key is in the map.
func (vals Values) Has(key string) bool {
	_, ok := vals[key]
	return ok
}

// Clone returns a copy of the map.
func (vals Values) Clone() Values {
	var vals2 Values
	for k, v := range vals {
		if vals2 == nil {
			vals2 = make(Values, len(vals))
		}
		vals2[k] = v
	}
	return vals2
}
