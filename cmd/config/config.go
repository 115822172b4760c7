package config

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/statcalc/statcalc/internal/app/service"
	"github.com/statcalc/statcalc/internal/app/subsystems/api/http"
	"github.com/statcalc/statcalc/internal/app/subsystems/store"
	"github.com/statcalc/statcalc/internal/app/subsystems/store/file"
	"github.com/statcalc/statcalc/internal/app/subsystems/store/postgres"
	"github.com/statcalc/statcalc/internal/app/subsystems/store/sqlite"
)

type Config struct {
	API         API            `flag:"api"`
	History     service.Config `flag:"history"`
	Store       Store          `flag:"store"`
	MetricsAddr string         `flag:"metrics-addr" desc:"prometheus metrics server address" default:":9090"`
	LogLevel    string         `flag:"log-level" desc:"can be one of: debug, info, warn, error, off" default:"info"`
	LogFormat   string         `flag:"log-format" desc:"can be one of: text, json" default:"text"`
}

type API struct {
	Http http.Config `flag:"http"`
}

type Store struct {
	Kind     store.Kind      `flag:"kind" desc:"can be one of: file, sqlite, postgres" default:"file"`
	File     file.Config     `flag:"file"`
	Sqlite   sqlite.Config   `flag:"sqlite"`
	Postgres postgres.Config `flag:"postgres"`
}

// New instantiates the configured store, it is not started.
func (s *Store) New() (store.Store, error) {
	switch s.Kind {
	case store.File:
		return file.New(&s.File)
	case store.Sqlite:
		return sqlite.New(&s.Sqlite)
	case store.Postgres:
		return postgres.New(&s.Postgres)
	default:
		return nil, fmt.Errorf("unsupported store kind %q", s.Kind)
	}
}

// Hooks are the decode hooks used for every config, they allow
// durations and comma separated lists to be given as strings.
func Hooks() mapstructure.DecodeHookFunc {
	return mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	)
}

// Bind registers a flag for every field of cfg on flags and binds each
// flag to the matching viper key.
func Bind(cfg any, flags *pflag.FlagSet, vip *viper.Viper) {
	if err := bind(cfg, flags, vip, "", ""); err != nil {
		panic(err)
	}
}

// Parse decodes everything viper knows into cfg.
func Parse(cfg any, vip *viper.Viper) error {
	return vip.Unmarshal(cfg, viper.DecodeHook(Hooks()))
}

// Helper functions

func bind(cfg any, flags *pflag.FlagSet, vip *viper.Viper, fPrefix string, kPrefix string) error {
	v := reflect.ValueOf(cfg).Elem()
	t := v.Type()

	for i := 0; i < v.NumField(); i++ {
		field := t.Field(i)
		flag := field.Tag.Get("flag")
		desc := field.Tag.Get("desc")
		value := field.Tag.Get("default")

		var n string
		if fPrefix == "" {
			n = flag
		} else if flag == "-" {
			n = fPrefix
		} else {
			n = fmt.Sprintf("%s-%s", fPrefix, flag)
		}

		var k string
		if kPrefix == "" {
			k = field.Name
		} else {
			k = fmt.Sprintf("%s.%s", kPrefix, field.Name)
		}

		switch field.Type.Kind() {
		case reflect.String:
			flags.String(n, value, desc)
		case reflect.Bool:
			flags.Bool(n, value == "true", desc)
		case reflect.Int:
			v, _ := strconv.Atoi(value)
			flags.Int(n, v, desc)
		case reflect.Int64:
			if field.Type == reflect.TypeOf(time.Duration(0)) {
				v, _ := time.ParseDuration(value)
				flags.Duration(n, v, desc)
			} else {
				v, _ := strconv.ParseInt(value, 10, 64)
				flags.Int64(n, v, desc)
			}
		case reflect.Float64:
			v, _ := strconv.ParseFloat(value, 64)
			flags.Float64(n, v, desc)
		case reflect.Slice:
			if field.Type.Elem().Kind() != reflect.String {
				return fmt.Errorf("unsupported slice type %s", field.Type)
			}
			var v []string
			if value != "" {
				v = strings.Split(value, ",")
			}
			flags.StringSlice(n, v, desc)
		case reflect.Map:
			if field.Type != reflect.TypeOf(map[string]string{}) {
				return fmt.Errorf("unsupported map type %s", field.Type)
			}
			if value == "" {
				value = "{}"
			}
			var v map[string]string
			if err := json.Unmarshal([]byte(value), &v); err != nil {
				return err
			}
			flags.StringToString(n, v, desc)
		case reflect.Struct:
			if err := bind(v.Field(i).Addr().Interface(), flags, vip, n, k); err != nil {
				return err
			}
			continue
		default:
			return fmt.Errorf("unsupported type %s", field.Type.Kind())
		}

		_ = vip.BindPFlag(k, flags.Lookup(n))
	}

	return nil
}
