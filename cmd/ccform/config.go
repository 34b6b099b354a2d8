package main

import (
	"errors"
	"fmt"

	"github.com/ardanlabs/conf"
)

// Config is read from CCFORM_* variables or flags. Card fields left empty
// are prompted for.
type Config struct {
	Endpoint            string `conf:"default:http://localhost:8080/ect/cc-det/api,env:ENDPOINT"`
	Ref                 string `conf:"required,env:REF"`
	Name                string `conf:"default:Guest,env:NAME"`
	CardNumber          string `conf:"noprint,env:CARD_NUMBER"`
	CardName            string `conf:"env:CARD_NAME"`
	CardExpirationMonth string `conf:"env:CARD_EXPIRATION_MONTH"`
	CardExpirationYear  string `conf:"env:CARD_EXPIRATION_YEAR"`
}

func ReadConfig() (*Config, error) {
	var cfg Config
	help, err := conf.ParseOSArgs("CCFORM", &cfg)

	if err != nil {
		if errors.Is(err, conf.ErrHelpWanted) {
			fmt.Println(help)
		}
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	return &cfg, nil
}
