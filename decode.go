// FILE: lixenwraith/dotenv/decode.go
package dotenv

import (
	"fmt"
	"net"
	"net/url"
	"reflect"
	"time"

	"github.com/go-viper/mapstructure/v2"
)

// DefaultRegistry returns a new registry preloaded with coercions for
// common standard library types and the integer and float widths the binder
// does not handle natively. Each call returns an independent registry.
func DefaultRegistry() *Registry {
	r := NewRegistry()

	// Standard hooks
	r.coercions[reflect.TypeFor[time.Duration]()] = HookCoercion(reflect.TypeFor[time.Duration](), mapstructure.StringToTimeDurationHookFunc())
	r.coercions[reflect.TypeFor[time.Time]()] = HookCoercion(reflect.TypeFor[time.Time](), mapstructure.StringToTimeHookFunc(time.RFC3339))
	r.coercions[reflect.TypeFor[[]string]()] = HookCoercion(reflect.TypeFor[[]string](), mapstructure.StringToSliceHookFunc(","))

	// Network types
	r.coercions[reflect.TypeFor[net.IP]()] = coerceNetIP
	r.coercions[reflect.TypeFor[net.IPNet]()] = func(raw string, _ map[string]string) (any, error) {
		ipnet, err := parseCIDR(raw)
		if err != nil {
			return nil, err
		}
		return *ipnet, nil
	}
	r.coercions[reflect.TypeFor[*net.IPNet]()] = func(raw string, _ map[string]string) (any, error) {
		return parseCIDR(raw)
	}
	r.coercions[reflect.TypeFor[url.URL]()] = func(raw string, _ map[string]string) (any, error) {
		u, err := parseURL(raw)
		if err != nil {
			return nil, err
		}
		return *u, nil
	}
	r.coercions[reflect.TypeFor[*url.URL]()] = func(raw string, _ map[string]string) (any, error) {
		return parseURL(raw)
	}

	// Widths outside the native set
	r.coercions[reflect.TypeFor[int8]()] = intCoercion[int8](8)
	r.coercions[reflect.TypeFor[int16]()] = intCoercion[int16](16)
	r.coercions[reflect.TypeFor[uint]()] = uintCoercion[uint](0)
	r.coercions[reflect.TypeFor[uint8]()] = uintCoercion[uint8](8)
	r.coercions[reflect.TypeFor[uint16]()] = uintCoercion[uint16](16)
	r.coercions[reflect.TypeFor[uint32]()] = uintCoercion[uint32](32)
	r.coercions[reflect.TypeFor[uint64]()] = uintCoercion[uint64](64)
	r.coercions[reflect.TypeFor[float32]()] = func(raw string, _ map[string]string) (any, error) {
		f, err := parseFloat(raw, 32)
		if err != nil {
			return nil, err
		}
		return float32(f), nil
	}

	return r
}

// HookCoercion adapts a mapstructure decode hook into a CoercionFunc producing typ.
// The raw string is decoded into a fresh value of typ with the hook applied.
func HookCoercion(typ reflect.Type, hook mapstructure.DecodeHookFunc) CoercionFunc {
	return func(raw string, _ map[string]string) (any, error) {
		target := reflect.New(typ)
		decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
			Result:     target.Interface(),
			DecodeHook: hook,
		})
		if err != nil {
			return nil, fmt.Errorf("decoder creation failed: %w", err)
		}
		if err := decoder.Decode(raw); err != nil {
			return nil, err
		}
		return target.Elem().Interface(), nil
	}
}

func coerceNetIP(raw string, _ map[string]string) (any, error) {
	if len(raw) > 45 { // Max IPv6 length
		return nil, fmt.Errorf("invalid IP length: %d", len(raw))
	}
	ip := net.ParseIP(raw)
	if ip == nil {
		return nil, fmt.Errorf("invalid IP address: %s", raw)
	}
	return ip, nil
}

func parseCIDR(raw string) (*net.IPNet, error) {
	if len(raw) > 49 { // Max IPv6 CIDR length
		return nil, fmt.Errorf("invalid CIDR length: %d", len(raw))
	}
	_, ipnet, err := net.ParseCIDR(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid CIDR: %w", err)
	}
	return ipnet, nil
}

func parseURL(raw string) (*url.URL, error) {
	if len(raw) > 2048 {
		return nil, fmt.Errorf("URL too long: %d bytes", len(raw))
	}
	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid URL: %w", err)
	}
	return u, nil
}

func intCoercion[T int8 | int16](bitSize int) CoercionFunc {
	return func(raw string, _ map[string]string) (any, error) {
		i, err := parseInt(raw, bitSize)
		if err != nil {
			return nil, err
		}
		return T(i), nil
	}
}

func uintCoercion[T uint | uint8 | uint16 | uint32 | uint64](bitSize int) CoercionFunc {
	return func(raw string, _ map[string]string) (any, error) {
		u, err := parseUint(raw, bitSize)
		if err != nil {
			return nil, err
		}
		return T(u), nil
	}
}
