package config

import (
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"
)

// envOverride is one configuration key replaced from the environment
type envOverride struct {
	Key string // yaml path, e.g. storage.bucket
	Var string // environment variable name
}

// applyEnvOverrides copies every set `env` variable onto its config field and
// reports which keys were replaced. Section structs are walked recursively and
// their yaml names form the key prefix used in errors.
func applyEnvOverrides(cfg *Config) ([]envOverride, error) {
	var applied []envOverride
	err := walkEnvFields(reflect.ValueOf(cfg).Elem(), "", &applied)
	return applied, err
}

func walkEnvFields(section reflect.Value, prefix string, applied *[]envOverride) error {
	typ := section.Type()
	for i := 0; i < section.NumField(); i++ {
		field := section.Field(i)
		meta := typ.Field(i)
		key := yamlKey(prefix, meta)

		if field.Kind() == reflect.Struct {
			if err := walkEnvFields(field, key, applied); err != nil {
				return err
			}
			continue
		}

		name := meta.Tag.Get("env")
		if name == "" {
			continue
		}
		raw, ok := os.LookupEnv(name)
		if !ok {
			continue
		}

		if err := assignEnvValue(field, strings.TrimSpace(raw)); err != nil {
			return fmt.Errorf("%s (from %s): %w", key, name, err)
		}
		*applied = append(*applied, envOverride{Key: key, Var: name})
	}
	return nil
}

func yamlKey(prefix string, field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("yaml"), ",")
	if name == "" {
		name = strings.ToLower(field.Name)
	}
	if prefix == "" {
		return name
	}
	return prefix + "." + name
}

// assignEnvValue parses raw into the kinds the config sections use
func assignEnvValue(field reflect.Value, raw string) error {
	switch field.Kind() {
	case reflect.String:
		field.SetString(raw)
	case reflect.Int, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(raw, 10, field.Type().Bits())
		if err != nil {
			return fmt.Errorf("expected an integer, got %q", raw)
		}
		field.SetInt(n)
	case reflect.Bool:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return fmt.Errorf("expected a boolean, got %q", raw)
		}
		field.SetBool(b)
	default:
		return fmt.Errorf("unsupported config field kind %s", field.Kind())
	}
	return nil
}
