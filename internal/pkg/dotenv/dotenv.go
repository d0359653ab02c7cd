package dotenv

import (
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Load подхватывает .env и даёт переопределить порт флагом при
// локальном запуске нескольких инстансов.
func Load() error {
	if err := godotenv.Load(); err != nil {
		return err
	}

	var portFlag string
	flag.StringVar(&portFlag, "port", "", "Server port (overrides PORT environment variable)")
	flag.Parse()

	if portFlag == "" {
		return nil
	}
	if err := os.Setenv("PORT", portFlag); err != nil {
		return fmt.Errorf("failed to set PORT environment variable: %w", err)
	}
	return nil
}
