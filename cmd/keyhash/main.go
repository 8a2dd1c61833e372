// Command keyhash prints the bcrypt hash of a webhook API key for WEBHOOK_KEY_HASH.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/GlebRadaev/sellerpayout/pkg/auth"
)

func main() {
	key := strings.Join(os.Args[1:], " ")
	if key == "" {
		reader := bufio.NewReader(os.Stdin)
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			log.Fatal().Err(err).Msg("usage: keyhash <api-key>")
		}
		key = strings.TrimSpace(line)
	}

	hash, err := (&auth.HashService{}).HashKey(key)
	if err != nil {
		log.Fatal().Err(err).Msg("can't hash key")
	}
	fmt.Println(hash)
}
