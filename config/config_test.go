package config

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	t.Run("no zero fields", func(t *testing.T) {
		for _, field := range zeroFields(reflect.ValueOf(*Default()), "Config", false) {
			assert.Fail(t, "zero-value field", field)
		}
	})

	t.Run("independent instances", func(t *testing.T) {
		a, b := Default(), Default()
		a.NET.MaxConnections = 10
		require.Zero(t, b.NET.MaxConnections)
	})

	t.Run("head buffer boundaries", func(t *testing.T) {
		cfg := Default()
		require.LessOrEqual(t, cfg.Headers.Space.Default, cfg.Headers.Space.Maximal)
	})
}

func zeroFields(v reflect.Value, name string, nullable bool) (fields []string) {
	if v.Kind() == reflect.Struct {
		for i := range v.NumField() {
			field := v.Type().Field(i)
			isNullable := field.Tag.Get("test") == "nullable"
			fields = append(fields, zeroFields(v.Field(i), name+"."+field.Name, isNullable)...)
		}

		return fields
	}

	if v.IsZero() && !nullable {
		return []string{name}
	}

	return nil
}
