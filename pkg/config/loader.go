package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type entry struct {
	once  sync.Once
	value any
	err   error
}

var (
	cache      sync.Map // reflect.Type -> *entry
	dotenvOnce sync.Once
)

// Load parses environment variables into v based on its env tags.
// Each configuration type is parsed once; later calls copy the cached value.
//
//	type Config struct {
//		Addr       string `env:"HTTP_ADDR" envDefault:":8080"`
//		CookieName string `env:"FLASH_COOKIE_NAME" envDefault:"_flash"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
func Load[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}

	dotenvOnce.Do(func() {
		// The .env file is optional.
		_ = godotenv.Load()
	})

	e, _ := cache.LoadOrStore(reflect.TypeFor[T](), &entry{})
	ent := e.(*entry)
	ent.once.Do(func() {
		var cfg T
		if err := env.Parse(&cfg); err != nil {
			ent.err = errors.Join(ErrParsingConfig, err)
			return
		}
		ent.value = cfg
	})
	if ent.err != nil {
		return ent.err
	}

	*v = ent.value.(T)
	return nil
}

// MustLoad works like Load but panics if the configuration cannot be loaded.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}
