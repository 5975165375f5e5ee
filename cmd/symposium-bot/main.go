package main

import (
	"log"

	"symposiumbot/core/cmd"
	"symposiumbot/internal/bot"
)

func main() {
	err := cmd.Run(cmd.Options{
		DefaultConfigPath: "config.yaml",
		LoadConfig:        bot.LoadCarrier,
		Bootstrap:         bot.Bootstrap,
	})
	if err != nil {
		log.Fatalf("symposium-bot: %v", err)
	}
}
