// Package options provides configuration structures and utilities for the fmap command.
package options

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"reflect"
	"strconv"
	"strings"
	"time"
	"unicode"
)

// Options holds configuration values for the fmap command, loaded from environment variables or JSON.
type Options struct {
	Values         []int `env:"FMAP_VALUES" json:","`
	Factor         int   `env:"FMAP_FACTOR" json:","`
	Offset         int   `env:"FMAP_OFFSET" json:",omitempty"`
	TimeoutSeconds int   `env:"FMAP_TIMEOUT_SECONDS" json:","`
}

// defaultOptions creates a new Options instance with default values.
func defaultOptions() *Options {
	return &Options{
		Values:         []int{1, 2, 3, 4},
		Factor:         2,
		TimeoutSeconds: 5,
	}
}

// FromEnv populates Options from environment variables dynamically.
// Returns an Options pointer or an error if a value is invalid.
func FromEnv() (*Options, error) {
	options := defaultOptions()
	v := reflect.ValueOf(options).Elem()
	t := v.Type()

	for i := range v.NumField() {
		field := v.Field(i)
		envKey := t.Field(i).Tag.Get("env")
		if envKey == "" {
			continue
		}
		envValue, exists := os.LookupEnv(envKey)
		if !exists {
			continue
		}

		switch field.Kind() {
		case reflect.Slice:
			if field.Type().Elem().Kind() != reflect.Int {
				return nil, fmt.Errorf("unsupported slice type for %s", envKey)
			}
			ints, err := splitInts(envValue)
			if err != nil {
				return nil, fmt.Errorf("failed to parse %s: %w", envKey, err)
			}
			field.Set(reflect.ValueOf(ints))
		case reflect.Int:
			intValue, err := strconv.Atoi(strings.TrimSpace(envValue))
			if err != nil {
				return nil, fmt.Errorf("invalid value for %s: %w", envKey, err)
			}
			field.SetInt(int64(intValue))
		}
	}

	if err := options.validate(); err != nil {
		return nil, err
	}
	return options, nil
}

// FromStdin reads JSON from standard input and populates Options.
func FromStdin() (*Options, error) {
	return FromJSON(os.Stdin)
}

// FromJSON decodes JSON from r over the default Options.
func FromJSON(r io.Reader) (*Options, error) {
	options := defaultOptions()
	if err := json.NewDecoder(r).Decode(options); err != nil {
		return nil, fmt.Errorf("failed to decode JSON: %w", err)
	}
	if err := options.validate(); err != nil {
		return nil, err
	}
	return options, nil
}

// ContextWithTimeout creates a context with the timeout duration.
// This context bounds how long the command waits for asynchronous results.
func (o *Options) ContextWithTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	timeout := o.TimeoutSeconds
	if timeout <= 0 {
		timeout = defaultOptions().TimeoutSeconds
	}
	return context.WithTimeoutCause(ctx, time.Duration(timeout)*time.Second, fmt.Errorf("gave up waiting after %d seconds", timeout))
}

func (o *Options) validate() error {
	if len(o.Values) == 0 {
		return errors.New("`FMAP_VALUES` must contain at least one value")
	}
	return nil
}

// splitInts parses a list of integers separated by commas or white space.
func splitInts(s string) ([]int, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool { return r == ',' || unicode.IsSpace(r) })
	ints := make([]int, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, err
		}
		ints = append(ints, n)
	}
	return ints, nil
}
