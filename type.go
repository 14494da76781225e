// File: lixenwraith/dotenv/type.go
package dotenv

import (
	"strconv"
	"strings"
)

// String retrieves the raw value of key.
func (s *Store) String(key string) (string, error) {
	val, found := s.Get(key)
	if !found {
		return "", &CoercionError{Key: key, Type: "string", Err: ErrKeyNotSet}
	}
	return val, nil
}

// Int retrieves key as a base-10 int.
func (s *Store) Int(key string) (int, error) {
	val, found := s.Get(key)
	if !found {
		return 0, &CoercionError{Key: key, Type: "int", Err: ErrKeyNotSet}
	}
	i, err := parseInt(val, strconv.IntSize)
	if err != nil {
		return 0, &CoercionError{Key: key, Value: val, Type: "int", Err: err}
	}
	return int(i), nil
}

// Int64 retrieves key as a base-10 int64.
func (s *Store) Int64(key string) (int64, error) {
	val, found := s.Get(key)
	if !found {
		return 0, &CoercionError{Key: key, Type: "int64", Err: ErrKeyNotSet}
	}
	i, err := parseInt(val, 64)
	if err != nil {
		return 0, &CoercionError{Key: key, Value: val, Type: "int64", Err: err}
	}
	return i, nil
}

// Bool retrieves key as a bool. Only "true", in any case, is true; every
// other value is false. The only failure is an absent key.
func (s *Store) Bool(key string) (bool, error) {
	val, found := s.Get(key)
	if !found {
		return false, &CoercionError{Key: key, Type: "bool", Err: ErrKeyNotSet}
	}
	return parseBool(val), nil
}

// Float64 retrieves key as a float64.
func (s *Store) Float64(key string) (float64, error) {
	val, found := s.Get(key)
	if !found {
		return 0, &CoercionError{Key: key, Type: "float64", Err: ErrKeyNotSet}
	}
	f, err := parseFloat(val, 64)
	if err != nil {
		return 0, &CoercionError{Key: key, Value: val, Type: "float64", Err: err}
	}
	return f, nil
}

// parseBool is the permissive boolean grammar shared by accessors and binding
func parseBool(s string) bool {
	return strings.EqualFold(s, "true")
}

// parseInt accepts an optional sign followed by decimal digits
func parseInt(s string, bitSize int) (int64, error) {
	i, err := strconv.ParseInt(s, 10, bitSize)
	if err != nil {
		return 0, unwrapNumError(err)
	}
	return i, nil
}

func parseUint(s string, bitSize int) (uint64, error) {
	u, err := strconv.ParseUint(s, 10, bitSize)
	if err != nil {
		return 0, unwrapNumError(err)
	}
	return u, nil
}

func parseFloat(s string, bitSize int) (float64, error) {
	f, err := strconv.ParseFloat(s, bitSize)
	if err != nil {
		return 0, unwrapNumError(err)
	}
	return f, nil
}

// unwrapNumError drops the strconv prefix; CoercionError already names the value
func unwrapNumError(err error) error {
	if numErr, ok := err.(*strconv.NumError); ok {
		return numErr.Err
	}
	return err
}
