package options

import (
	"context"
	"errors"
	"os"
	"reflect"
	"strings"
	"testing"
	"time"

	"gotest.tools/v3/assert"
)

// clearEnv unsets every variable read by FromEnv for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	typ := reflect.TypeOf(Options{})
	for i := range typ.NumField() {
		key := typ.Field(i).Tag.Get("env")
		if key == "" {
			continue
		}
		t.Setenv(key, "")
		assert.NilError(t, os.Unsetenv(key))
	}
}

func TestFromEnv_Defaults(t *testing.T) {
	clearEnv(t)
	o, err := FromEnv()
	assert.NilError(t, err)
	assert.DeepEqual(t, o, defaultOptions())
}

func TestFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("FMAP_VALUES", "3, 5 7")
	t.Setenv("FMAP_FACTOR", "10")
	t.Setenv("FMAP_OFFSET", " -1 ")
	o, err := FromEnv()
	assert.NilError(t, err)
	assert.DeepEqual(t, o.Values, []int{3, 5, 7})
	assert.Equal(t, o.Factor, 10)
	assert.Equal(t, o.Offset, -1)
	assert.Equal(t, o.TimeoutSeconds, defaultOptions().TimeoutSeconds)
}

func TestFromEnv_Invalid(t *testing.T) {
	clearEnv(t)
	t.Run("values", func(t *testing.T) {
		t.Setenv("FMAP_VALUES", "1,two")
		_, err := FromEnv()
		assert.ErrorContains(t, err, "failed to parse FMAP_VALUES")
	})
	t.Run("factor", func(t *testing.T) {
		t.Setenv("FMAP_FACTOR", "x")
		_, err := FromEnv()
		assert.ErrorContains(t, err, "invalid value for FMAP_FACTOR")
	})
	t.Run("empty values", func(t *testing.T) {
		t.Setenv("FMAP_VALUES", " , ")
		_, err := FromEnv()
		assert.ErrorContains(t, err, "at least one value")
	})
}

func TestFromJSON(t *testing.T) {
	o, err := FromJSON(strings.NewReader(`{"Values":[9],"Factor":3}`))
	assert.NilError(t, err)
	assert.DeepEqual(t, o.Values, []int{9})
	assert.Equal(t, o.Factor, 3)

	_, err = FromJSON(strings.NewReader(`{`))
	assert.ErrorContains(t, err, "failed to decode JSON")
}

func TestContextWithTimeout(t *testing.T) {
	o := &Options{TimeoutSeconds: 0}
	ctx, cancel := o.ContextWithTimeout(context.Background())
	defer cancel()
	deadline, ok := ctx.Deadline()
	assert.Assert(t, ok)
	assert.Assert(t, time.Until(deadline) > 4*time.Second)

	cancel()
	assert.Assert(t, errors.Is(ctx.Err(), context.Canceled))
}
